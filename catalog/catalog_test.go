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

package catalog_test

import (
	"context"
	"strings"
	"time"

	"github.com/nabbar/evalbroker/catalog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const sampleDoc = `
timeout = 5

[languages.python]
code_before = "# before\n"
code_after = "\n# after"
cmdline = ["/bin/sh", "-c", "cat"]

[languages.ruby]
timeout = 9
socket_addr = "/run/evalbroker/ruby.sock"

[languages.perl]
network_addr = "127.0.0.1:9000"
timeout_cmdline = ["/usr/bin/true"]
`

var _ = Describe("Configuration loading", func() {
	It("builds a registry from a TOML document", func() {
		svc, err := catalog.FromReader(strings.NewReader(sampleDoc), "toml")
		Expect(err).ToNot(HaveOccurred())
		Expect(svc.DefaultTimeout()).To(Equal(uint32(5)))

		py, ok := svc.Get("python")
		Expect(ok).To(BeTrue())
		Expect(py.Kind()).To(Equal(catalog.KindExec))
		Expect(py.Timeout()).To(Equal(uint32(5)))

		rb, ok := svc.Get("ruby")
		Expect(ok).To(BeTrue())
		Expect(rb.Kind()).To(Equal(catalog.KindUnixSocket))
		Expect(rb.Timeout()).To(Equal(uint32(9)))

		pl, ok := svc.Get("perl")
		Expect(ok).To(BeTrue())
		Expect(pl.Kind()).To(Equal(catalog.KindNetwork))
	})

	It("reports NotFound for an unregistered language", func() {
		svc, err := catalog.FromReader(strings.NewReader(sampleDoc), "toml")
		Expect(err).ToNot(HaveOccurred())

		_, ok := svc.Get("cobol")
		Expect(ok).To(BeFalse())
	})

	It("rejects a language with no backend discriminator", func() {
		doc := `
[languages.broken]
code_before = ""
`
		_, err := catalog.FromReader(strings.NewReader(doc), "toml")
		Expect(err).To(HaveOccurred())
	})

	It("rejects a language with two backend discriminators", func() {
		doc := `
[languages.broken]
cmdline = ["/bin/true"]
socket_addr = "/tmp/x.sock"
`
		_, err := catalog.FromReader(strings.NewReader(doc), "toml")
		Expect(err).To(HaveOccurred())
	})

	It("round-trips through ToTOML", func() {
		svc, err := catalog.FromReader(strings.NewReader(sampleDoc), "toml")
		Expect(err).ToNot(HaveOccurred())

		again, err := catalog.FromReader(strings.NewReader(catalog.ToTOML(svc)), "toml")
		Expect(err).ToNot(HaveOccurred())

		Expect(again.DefaultTimeout()).To(Equal(svc.DefaultTimeout()))
		Expect(again.Languages()).To(HaveLen(len(svc.Languages())))

		for _, l := range svc.Languages() {
			rl, ok := again.Get(l.Name())
			Expect(ok).To(BeTrue())
			Expect(rl.Kind()).To(Equal(l.Kind()))
			Expect(rl.Timeout()).To(Equal(l.Timeout()))
		}
	})
})

var _ = Describe("Dispatch", func() {
	It("wraps code with code_before/code_after and dispatches to the exec backend", func() {
		doc := `
timeout = 3

[languages.python]
code_before = ">>"
code_after = "<<"
cmdline = ["/bin/sh", "-c", "cat"]
`
		svc, err := catalog.FromReader(strings.NewReader(doc), "toml")
		Expect(err).ToNot(HaveOccurred())

		py, ok := svc.Get("python")
		Expect(ok).To(BeTrue())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		out, err := py.Eval(ctx, nil, nil, "mid")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal(">>mid<<"))
	})

	It("lets a caller-supplied timeout override the language default", func() {
		doc := `
[languages.python]
timeout = 99
cmdline = ["/bin/sh", "-c", "echo -n \"$0\"", "{TIMEOUT}"]
`
		svc, err := catalog.FromReader(strings.NewReader(doc), "toml")
		Expect(err).ToNot(HaveOccurred())

		py, ok := svc.Get("python")
		Expect(ok).To(BeTrue())

		override := uint32(2)
		out, err := py.Eval(context.Background(), &override, nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("2"))
	})

	It("disables the deadline when the caller passes catalog.NoTimeout", func() {
		doc := `
[languages.python]
timeout = 99
cmdline = ["/bin/sh", "-c", "echo -n \"$0\"", "{TIMEOUT}"]
`
		svc, err := catalog.FromReader(strings.NewReader(doc), "toml")
		Expect(err).ToNot(HaveOccurred())

		py, ok := svc.Get("python")
		Expect(ok).To(BeTrue())

		out, err := py.Eval(context.Background(), &catalog.NoTimeout, nil, "")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("0"))
	})
})
