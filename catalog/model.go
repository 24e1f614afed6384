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

// Package catalog holds the broker's declarative language catalogue: the
// Language/Backend model, the service registry built from it, and the
// dispatch that wraps code and picks a backend driver.
package catalog

import (
	"context"
)

// Driver runs one evaluation against a concrete backend. timeoutSeconds is
// the already-resolved deadline in seconds, 0 meaning "no deadline".
// contextKey is forwarded as-is; Exec drivers ignore it.
type Driver interface {
	Eval(ctx context.Context, timeoutSeconds uint32, contextKey []byte, code string) (string, error)
}

// Kind names a Backend's concrete shape, for reporting (cmd/evalbrokerctl
// languages) without leaking the Driver interface.
type Kind string

const (
	KindExec       Kind = "exec"
	KindUnixSocket Kind = "unix_socket"
	KindNetwork    Kind = "network"
)

// Language is one catalogue entry: immutable after construction, safe to share by
// pointer across concurrently running evaluations.
type Language struct {
	name       string
	codeBefore string
	codeAfter  string
	timeout    uint32 // seconds; 0 means "no deadline"
	kind       Kind
	driver     Driver
	raw        rawLanguage // retained for ToTOML re-serialization
}

// Name returns the language's adapter-visible key.
func (l *Language) Name() string {
	return l.name
}

// Kind reports which Backend shape this language uses.
func (l *Language) Kind() Kind {
	return l.kind
}

// Timeout returns the language's effective default timeout in seconds, 0
// meaning no deadline.
func (l *Language) Timeout() uint32 {
	return l.timeout
}
