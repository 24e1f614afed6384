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

// Package persistent drives the long-lived socket (unix or network)
// evaluation backend: one connection per evaluation, framed per package
// wire, with a client-side deadline around the response length read only.
package persistent

import (
	"context"
	"net"
	"os/exec"
	"time"

	"github.com/nabbar/evalbroker/logger"
	"github.com/nabbar/evalbroker/logger/level"
	"github.com/nabbar/evalbroker/wire"
)

// timedOut reports "time limit exceeded" to callers without treating it as
// a transport error: the daemon is still running, it was just too slow.
const timedOut = "time limit exceeded"

// Backend dials network (or addr) fresh for every evaluation.
type Backend struct {
	network        string
	addr           string
	timeoutCmdline []string
	maxPayload     uint32
}

// New builds a Backend. network is "unix" or "tcp"; timeoutCmdline, if
// non-empty, is a best-effort escalation command run after a read timeout;
// maxPayload of 0 falls back to wire.DefaultMaxPayload.
func New(network, addr string, timeoutCmdline []string, maxPayload uint32) *Backend {
	if maxPayload == 0 {
		maxPayload = wire.DefaultMaxPayload
	}

	return &Backend{
		network:        network,
		addr:           addr,
		timeoutCmdline: timeoutCmdline,
		maxPayload:     maxPayload,
	}
}

// Eval opens one connection, sends the framed request and reads back the
// framed response. A read-length timeout drops the connection, fires the
// best-effort escalation command and resolves to "time limit exceeded"
// rather than an error: the evaluation is complete as far as the caller is
// concerned.
func (b *Backend) Eval(ctx context.Context, timeoutSeconds uint32, contextKey []byte, code string) (string, error) {
	var d net.Dialer

	conn, err := d.DialContext(ctx, b.network, b.addr)
	if err != nil {
		return "", ErrorDial.Error(err)
	}
	defer func() { _ = conn.Close() }()

	req := wire.EncodeRequest(timeoutSeconds*1000, contextKey, []byte(code))
	if _, err = conn.Write(req); err != nil {
		return "", ErrorWriteRequest.Error(err)
	}

	if timeoutSeconds > 0 {
		if err = conn.SetReadDeadline(time.Now().Add(time.Duration(timeoutSeconds) * time.Second)); err != nil {
			return "", ErrorArmDeadline.Error(err)
		}
	}

	declared, err := wire.ReadLength(conn)
	if err != nil {
		if ne, ok := err.(net.Error); ok && ne.Timeout() {
			_ = conn.Close()
			b.escalate()
			return timedOut, nil
		}
		return "", ErrorReadLength.Error(err)
	}

	// The deadline only guards the length read: once the daemon has
	// committed to a response it is trusted to stream the declared payload
	// promptly.
	if err = conn.SetReadDeadline(time.Time{}); err != nil {
		return "", ErrorClearDeadline.Error(err)
	}

	payload, err := wire.ReadPayload(conn, declared, b.maxPayload)
	if err != nil {
		return "", err
	}

	return string(payload), nil
}

// escalate best-effort runs the operator-supplied timeout_cmdline after a
// read timeout; failures are logged, never propagated, since the
// evaluation already resolved to "time limit exceeded".
func (b *Backend) escalate() {
	if len(b.timeoutCmdline) == 0 {
		return
	}

	cmd := exec.Command(b.timeoutCmdline[0], b.timeoutCmdline[1:]...)
	if err := cmd.Run(); err != nil {
		logger.Default().NewEntry(level.WarnLevel, "timeout escalation command failed").
			FieldAdd("cmdline", b.timeoutCmdline).
			ErrorAdd(err).
			Log()
	}
}
