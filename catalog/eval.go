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
	"context"
	"time"

	"github.com/nabbar/evalbroker/logger"
	"github.com/nabbar/evalbroker/logger/level"
)

// NoTimeout, passed as the timeout pointer to Eval, disables the deadline
// entirely regardless of the language's configured default.
var NoTimeout uint32 = 0

// Eval wraps raw with the language's code_before/code_after, resolves the
// effective timeout and dispatches to the backend driver.
//
// timeout follows the caller-override contract: nil means "use the
// language's own default"; a non-nil *0 disables the deadline; any other
// value is the number of seconds to use.
func (l *Language) Eval(ctx context.Context, timeout *uint32, contextKey []byte, raw string) (string, error) {
	resolved := l.timeout
	if timeout != nil {
		resolved = *timeout
	}

	wrapped := l.codeBefore + raw + l.codeAfter

	logger.Default().NewEntry(level.DebugLevel, "dispatching evaluation").
		FieldAdd("language", l.name).
		FieldAdd("backend", string(l.kind)).
		FieldAdd("timeout_seconds", resolved).
		FieldAdd("wrapped_code", wrapped).
		Log()

	// Exec gets no client-side wall-clock deadline: the evaluator is trusted
	// to self-limit on the substituted {TIMEOUT} argument (or the sandbox
	// around it). Only an externally cancelled ctx reaps the child. The
	// Persistent driver arms its own deadline around the reply-length read;
	// the context deadline set here for it only bounds the dial.
	evalCtx := ctx
	if l.kind != KindExec && resolved > 0 {
		var cancel context.CancelFunc
		evalCtx, cancel = context.WithTimeout(ctx, time.Duration(resolved)*time.Second)
		defer cancel()
	}

	return l.driver.Eval(evalCtx, resolved, contextKey, wrapped)
}
