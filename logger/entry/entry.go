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

// Package entry builds single structured log lines for the broker: a level,
// a message, free-form fields and an optional error chain, flushed through a
// logrus.Logger.
package entry

import (
	"time"

	"github.com/nabbar/evalbroker/logger/level"
	"github.com/sirupsen/logrus"
)

// Entry is a single structured log line under construction.
type Entry interface {
	SetLogger(fct func() *logrus.Logger) Entry
	SetLevel(lvl level.Level) Entry

	FieldAdd(key string, val interface{}) Entry
	ErrorAdd(err ...error) Entry

	Log()
}

type entry struct {
	log   func() *logrus.Logger
	lvl   level.Level
	time  time.Time
	msg   string
	field map[string]interface{}
	err   []error
}

// New returns a new Entry at the given level carrying msg.
func New(lvl level.Level, msg string) Entry {
	return &entry{
		lvl:   lvl,
		time:  time.Now(),
		msg:   msg,
		field: make(map[string]interface{}),
		err:   make([]error, 0),
	}
}

func (e *entry) SetLogger(fct func() *logrus.Logger) Entry {
	e.log = fct
	return e
}

func (e *entry) SetLevel(lvl level.Level) Entry {
	e.lvl = lvl
	return e
}

func (e *entry) FieldAdd(key string, val interface{}) Entry {
	e.field[key] = val
	return e
}

func (e *entry) ErrorAdd(err ...error) Entry {
	for _, v := range err {
		if v != nil {
			e.err = append(e.err, v)
		}
	}
	return e
}

// Log flushes the entry through the configured logrus.Logger. A nil logger
// (or nil factory) silently discards the entry.
func (e *entry) Log() {
	if e.log == nil {
		return
	}

	l := e.log()
	if l == nil {
		return
	}

	fds := logrus.Fields{"time": e.time}
	for k, v := range e.field {
		fds[k] = v
	}

	if len(e.err) > 0 {
		msgs := make([]string, 0, len(e.err))
		for _, er := range e.err {
			msgs = append(msgs, er.Error())
		}
		fds["errors"] = msgs
	}

	l.WithFields(fds).Log(e.lvl.Logrus(), e.msg)
}
