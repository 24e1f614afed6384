//go:build unix

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

package exec

import (
	"os/exec"

	"golang.org/x/sys/unix"
)

// waitStatus adapts unix.WaitStatus to the narrow surface diagnostic needs.
type waitStatus unix.WaitStatus

func (w waitStatus) signaled() bool { return unix.WaitStatus(w).Signaled() }
func (w waitStatus) exited() bool   { return unix.WaitStatus(w).Exited() }
func (w waitStatus) signal() int    { return int(unix.WaitStatus(w).Signal()) }
func (w waitStatus) exitCode() int  { return unix.WaitStatus(w).ExitStatus() }

// exitStatus extracts the platform wait status from an *exec.ExitError
// returned by cmd.Wait. ok is false for any other error shape (e.g. the
// child never started).
func exitStatus(err error) (waitStatus, bool) {
	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		return waitStatus{}, false
	}

	ws, ok := exitErr.Sys().(unix.WaitStatus)
	if !ok {
		return waitStatus{}, false
	}

	return waitStatus(ws), true
}
