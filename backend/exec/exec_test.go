/*
 * MIT License
 *
 * Copyright (c) 2024 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package exec_test

import (
	"context"
	"time"

	"github.com/nabbar/evalbroker/backend/exec"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Backend", func() {
	var ctx context.Context
	var cancel context.CancelFunc

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	})

	AfterEach(func() {
		cancel()
	})

	It("captures stdout on success", func() {
		b := exec.New([]string{"/bin/sh", "-c", "cat"}, "")

		out, err := b.Eval(ctx, 0, nil, "hello")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("hello"))
	})

	It("appends an exit-status diagnostic on non-zero exit", func() {
		b := exec.New([]string{"/bin/sh", "-c", "echo oops 1>&2; exit 3"}, "")

		out, err := b.Eval(ctx, 0, nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("oops"))
		Expect(out).To(ContainSubstring("exited with status 3"))
	})

	It("substitutes {TIMEOUT} in the argument list", func() {
		b := exec.New([]string{"/bin/sh", "-c", "echo -n \"$0\"", "{TIMEOUT}"}, "")

		timeout := uint32(7)
		out, err := b.Eval(ctx, timeout, nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("7"))
	})

	It("prefixes the substituted timeout when a prefix is configured", func() {
		b := exec.New([]string{"/bin/sh", "-c", "echo -n \"$0\"", "{TIMEOUT}"}, "--timeout=")

		timeout := uint32(4)
		out, err := b.Eval(ctx, timeout, nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("--timeout=4"))
	})

	It("reports a signalled child by name", func() {
		b := exec.New([]string{"/bin/sh", "-c", "kill -SEGV $$"}, "")

		out, err := b.Eval(ctx, 0, nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(ContainSubstring("signalled with Segmentation fault (SIGSEGV)"))
	})

	It("kills the child when the context is cancelled", func() {
		childCtx, childCancel := context.WithCancel(context.Background())
		b := exec.New([]string{"/bin/sh", "-c", "sleep 30"}, "")

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = b.Eval(childCtx, 0, nil, "")
		}()

		childCancel()

		Eventually(done, 2*time.Second).Should(BeClosed())
	})
})
