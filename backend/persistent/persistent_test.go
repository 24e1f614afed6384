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

package persistent_test

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nabbar/evalbroker/backend/persistent"
	"github.com/nabbar/evalbroker/wire"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// fakeDaemon listens once and hands each accepted connection to handle.
func fakeDaemon(handle func(net.Conn)) (addr string, stop func()) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	Expect(err).ToNot(HaveOccurred())

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go handle(conn)
		}
	}()

	return ln.Addr().String(), func() { _ = ln.Close() }
}

var _ = Describe("Backend", func() {
	It("round-trips a request and response", func() {
		addr, stop := fakeDaemon(func(conn net.Conn) {
			defer func() { _ = conn.Close() }()
			_, _, code, err := wire.DecodeRequest(conn)
			if err != nil {
				return
			}
			_, _ = conn.Write(wire.EncodeResponse([]byte(strings.ToUpper(string(code)))))
		})
		defer stop()

		b := persistent.New("tcp", addr, nil, 0)
		out, err := b.Eval(context.Background(), 0, []byte("ctx"), "hello")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("HELLO"))
	})

	It("truncates a response larger than maxPayload", func() {
		addr, stop := fakeDaemon(func(conn net.Conn) {
			defer func() { _ = conn.Close() }()
			_, _, _, err := wire.DecodeRequest(conn)
			if err != nil {
				return
			}
			_, _ = conn.Write(wire.EncodeResponse([]byte(strings.Repeat("x", 2048))))
		})
		defer stop()

		b := persistent.New("tcp", addr, nil, 16)
		out, err := b.Eval(context.Background(), 0, nil, "code")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal(strings.Repeat("x", 16)))
	})

	It("falls back to the wire default cap when maxPayload is zero", func() {
		addr, stop := fakeDaemon(func(conn net.Conn) {
			defer func() { _ = conn.Close() }()
			_, _, _, err := wire.DecodeRequest(conn)
			if err != nil {
				return
			}
			_, _ = conn.Write(wire.EncodeResponse([]byte(strings.Repeat("y", 2048))))
		})
		defer stop()

		b := persistent.New("tcp", addr, nil, 0)
		out, err := b.Eval(context.Background(), 0, nil, "code")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(HaveLen(wire.DefaultMaxPayload))
	})

	It("resolves to time limit exceeded and escalates on a slow daemon", func() {
		addr, stop := fakeDaemon(func(conn net.Conn) {
			defer func() { _ = conn.Close() }()
			_, _, _, err := wire.DecodeRequest(conn)
			if err != nil {
				return
			}
			time.Sleep(2 * time.Second)
			_, _ = conn.Write(wire.EncodeResponse([]byte("too late")))
		})
		defer stop()

		dir := GinkgoT().TempDir()
		marker := filepath.Join(dir, "escalated")

		b := persistent.New("tcp", addr, []string{"/usr/bin/touch", marker}, 0)

		timeout := uint32(1)
		out, err := b.Eval(context.Background(), timeout, nil, "code")
		Expect(err).ToNot(HaveOccurred())
		Expect(out).To(Equal("time limit exceeded"))

		Eventually(func() error {
			_, err := os.Stat(marker)
			return err
		}, 2*time.Second).Should(Succeed())
	})
})
