/*
 * MIT License
 *
 * Copyright (c) 2021 Nicolas JUHEL
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

// Package logger wires the broker's structured log entries (package entry)
// onto a logrus.Logger, the way the rest of this module's ambient stack does.
package logger

import (
	"os"
	"sync/atomic"

	"github.com/nabbar/evalbroker/logger/entry"
	"github.com/nabbar/evalbroker/logger/level"
	"github.com/sirupsen/logrus"
)

// Logger is the broker's single logging facade: every component obtains its
// entries through NewEntry so the severity filter and output live in one
// place, set once at startup from configuration.
type Logger interface {
	SetLevel(lvl level.Level)
	NewEntry(lvl level.Level, msg string) entry.Entry
	Raw() *logrus.Logger
}

type logger struct {
	l *logrus.Logger
}

// New returns a Logger writing structured fields to stderr at lvl.
func New(lvl level.Level) Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(lvl.Logrus())

	return &logger{l: l}
}

func (g *logger) SetLevel(lvl level.Level) {
	g.l.SetLevel(lvl.Logrus())
}

func (g *logger) NewEntry(lvl level.Level, msg string) entry.Entry {
	l := g.l
	return entry.New(lvl, msg).SetLogger(func() *logrus.Logger { return l })
}

func (g *logger) Raw() *logrus.Logger {
	return g.l
}

// defaultLogger lets a process-wide default be swapped without a lock on the
// read path.
var defaultLogger atomic.Value

func init() {
	defaultLogger.Store(New(level.InfoLevel))
}

// SetDefault replaces the process-wide default Logger.
func SetDefault(l Logger) {
	defaultLogger.Store(l)
}

// Default returns the process-wide default Logger.
func Default() Logger {
	return defaultLogger.Load().(Logger)
}
