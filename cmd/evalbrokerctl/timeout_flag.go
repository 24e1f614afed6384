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
	"time"

	"github.com/nabbar/evalbroker/duration"
)

// timeoutFlag is a pflag.Value accepting the duration package's extended
// notation ("5s", "2m", "1d12h") on the command line, then exposing it as
// the whole seconds Language.Eval expects.
type timeoutFlag struct {
	seconds uint32
	set     bool
}

func (t *timeoutFlag) String() string {
	if !t.set {
		return ""
	}
	return duration.Seconds(int64(t.seconds)).String()
}

func (t *timeoutFlag) Set(s string) error {
	d, err := duration.Parse(s)
	if err != nil {
		return err
	}

	secs := int64(d.Time() / time.Second)
	if secs < 0 {
		secs = 0
	}

	t.seconds = uint32(secs)
	t.set = true
	return nil
}

func (t *timeoutFlag) Type() string {
	return "duration"
}
