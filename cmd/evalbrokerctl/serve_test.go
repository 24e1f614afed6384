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

package main

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/nabbar/evalbroker/catalog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const serveTestDoc = `
[languages.python]
cmdline = ["/bin/sh", "-c", "cat"]
`

var _ = Describe("serveLoop", func() {
	It("evaluates each request line and writes a response line", func() {
		svc, err := catalog.FromReader(strings.NewReader(serveTestDoc), "toml")
		Expect(err).ToNot(HaveOccurred())

		in := strings.NewReader(`{"language":"python","code":"hi"}` + "\n")
		var out bytes.Buffer

		Expect(serveLoop(in, &out, svc)).To(Succeed())

		var resp serveResponse
		Expect(json.Unmarshal(out.Bytes(), &resp)).To(Succeed())
		Expect(resp.Result).To(Equal("hi"))
		Expect(resp.Error).To(BeEmpty())
	})

	It("reports unknown languages without aborting the loop", func() {
		svc, err := catalog.FromReader(strings.NewReader(serveTestDoc), "toml")
		Expect(err).ToNot(HaveOccurred())

		in := strings.NewReader(`{"language":"cobol","code":"hi"}` + "\n")
		var out bytes.Buffer

		Expect(serveLoop(in, &out, svc)).To(Succeed())

		var resp serveResponse
		Expect(json.Unmarshal(out.Bytes(), &resp)).To(Succeed())
		Expect(resp.Error).To(ContainSubstring("cobol"))
	})
})
