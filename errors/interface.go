/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

// Package errors provides error classification and call-site tracing for the
// broker's config/catalog/backend layers.
//
// It is a narrowed form of the numeric-code, parent-chain error style used
// across this module's sibling packages: every Error carries a CodeError,
// a message, an optional parent chain, and the call site that created it.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Error extends the standard error with a numeric code, a parent chain and
// the call site where it was created.
type Error interface {
	error

	// IsCode reports whether this error's own code equals code.
	IsCode(code CodeError) bool
	// HasCode reports whether this error or any parent carries code.
	HasCode(code CodeError) bool
	// GetCode returns this error's own code.
	GetCode() CodeError

	// Add appends non-nil errors to the parent chain.
	Add(parent ...error)

	// GetTrace returns the "file#line" call site that created this error.
	GetTrace() string

	// Unwrap gives errors.Is/errors.As access to the parent chain.
	Unwrap() []error
}

// Is reports whether e can be asserted to Error.
func Is(e error) bool {
	var err Error
	return stderrors.As(e, &err)
}

// Get returns e as an Error if it is one, nil otherwise.
func Get(e error) Error {
	var err Error
	if stderrors.As(e, &err) {
		return err
	}
	return nil
}

// Has reports whether e or any of its parents carries code.
func Has(e error, code CodeError) bool {
	if err := Get(e); err == nil {
		return false
	} else {
		return err.HasCode(code)
	}
}

// Make wraps e as an Error, leaving it untouched if it already is one.
func Make(e error) Error {
	if e == nil {
		return nil
	}

	var err Error
	if stderrors.As(e, &err) {
		return err
	}

	return &ers{
		c: 0,
		e: e.Error(),
		p: nil,
	}
}

// New creates an Error with the given code, message and parent errors.
func New(code uint16, message string, parent ...error) Error {
	p := make([]Error, 0, len(parent))

	for _, e := range parent {
		if er := Make(e); er != nil {
			p = append(p, er)
		}
	}

	return &ers{
		c: code,
		e: message,
		p: p,
		t: getFrame(),
	}
}

// Newf creates an Error whose message is built with fmt.Sprintf semantics.
func Newf(code uint16, pattern string, args ...any) Error {
	return &ers{
		c: code,
		e: fmt.Sprintf(pattern, args...),
		p: make([]Error, 0),
		t: getFrame(),
	}
}
