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

package catalog

import (
	libctx "github.com/nabbar/evalbroker/context"
)

// EvalService is the broker's language registry: built once from
// configuration, immutable thereafter, safe to share across every
// concurrent evaluation. Callers receive *Language handles by reference;
// the registry never mutates a Language after insertion.
type EvalService struct {
	reg     libctx.Config[string]
	timeout uint32
}

func newEvalService(defaultTimeout uint32) *EvalService {
	return &EvalService{
		reg:     libctx.NewConfig[string](),
		timeout: defaultTimeout,
	}
}

func (s *EvalService) insert(l *Language) {
	s.reg.Store(l.name, l)
}

// Get returns the named language, or ok=false if no such language is
// registered (the NotFound case; callers render their own "no such
// language" message).
func (s *EvalService) Get(name string) (l *Language, ok bool) {
	v, found := s.reg.Load(name)
	if !found {
		return nil, false
	}

	l, ok = v.(*Language)
	return l, ok
}

// Languages returns every registered language, in no particular order.
func (s *EvalService) Languages() []*Language {
	res := make([]*Language, 0)

	s.reg.Walk(func(_ string, val interface{}) bool {
		if l, ok := val.(*Language); ok {
			res = append(res, l)
		}
		return true
	})

	return res
}

// DefaultTimeout returns the service-wide timeout, in seconds, used to
// back-fill any Language whose own timeout was left unset.
func (s *EvalService) DefaultTimeout() uint32 {
	return s.timeout
}
