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

// Package exec drives the one-shot child-process backend: spawn, feed code
// on stdin, capture merged stdout/stderr, classify the exit.
package exec

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"

	"github.com/nabbar/evalbroker/internal/signame"
)

const timeoutToken = "{TIMEOUT}"

// Backend runs a fresh child process per evaluation.
type Backend struct {
	cmdline       []string
	timeoutPrefix string
}

// New builds a Backend for the given cmdline (first element is the binary,
// remainder are arguments); timeoutPrefix is prepended to the substituted
// {TIMEOUT} value, if any.
func New(cmdline []string, timeoutPrefix string) *Backend {
	return &Backend{cmdline: cmdline, timeoutPrefix: timeoutPrefix}
}

// Eval substitutes {TIMEOUT} in the argument list, spawns the child with
// code on stdin, and composes stderr++stdout plus an exit diagnostic.
//
// ctx cancellation kills the child: exec.CommandContext arms that contract
// for us, so dropping/cancelling an in-flight evaluation reaps the process
// without any extra bookkeeping here.
func (b *Backend) Eval(ctx context.Context, timeoutSeconds uint32, _ []byte, code string) (string, error) {
	if len(b.cmdline) == 0 {
		return "", ErrorEmptyCmdline.Error()
	}

	args := substituteTimeout(b.cmdline[1:], timeoutSeconds, b.timeoutPrefix)

	cmd := exec.CommandContext(ctx, b.cmdline[0], args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return "", ErrorStdinPipe.Error(err)
	}

	if err = cmd.Start(); err != nil {
		return "", ErrorSpawn.Error(err)
	}

	go func() {
		_, _ = io.WriteString(stdin, code)
		_ = stdin.Close()
	}()

	waitErr := cmd.Wait()
	out := stderr.String() + stdout.String()

	if waitErr == nil {
		return out, nil
	}

	return ensureTrailingNewline(out) + diagnostic(waitErr), nil
}

func substituteTimeout(args []string, timeoutSeconds uint32, prefix string) []string {
	value := prefix + strconv.FormatUint(uint64(timeoutSeconds), 10)

	res := make([]string, len(args))
	for i, a := range args {
		if a == timeoutToken {
			res[i] = value
		} else {
			res[i] = a
		}
	}

	return res
}

// diagnostic composes the trailing exit/signal line appended to the
// captured output on non-zero termination.
func diagnostic(waitErr error) string {
	status, ok := exitStatus(waitErr)
	if !ok {
		return ensureTrailingNewline("") + "exited with unknown failure\n"
	}

	var line string
	if status.signaled() {
		long, abbrev := signame.Lookup(status.signal())
		if long == "" {
			line = fmt.Sprintf("signalled with unknown signal (%s)\n", abbrev)
		} else {
			line = fmt.Sprintf("signalled with %s (%s)\n", long, abbrev)
		}
	} else if status.exited() {
		line = fmt.Sprintf("exited with status %d\n", status.exitCode())
	} else {
		line = "exited with unknown failure\n"
	}

	return ensureTrailingNewline("") + line
}

func ensureTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
