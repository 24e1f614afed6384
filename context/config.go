/*
MIT License

Copyright (c) 2019 Nicolas JUHEL

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.
*/

// Package context holds the concurrent typed map catalog.EvalService stores
// its languages in: a keyed Store/Load/Delete/Walk/Clean surface, nothing
// else. The teacher's context.Config[T] also carries a context.Context,
// Clone/Merge and LoadOrStore/LoadAndDelete for component trees that revise
// and fork their own view of the map; EvalService's registry is built once
// from a catalogue file and never revised or cloned, so none of that is
// kept here.
package context

import (
	"sync"
)

type FuncWalk[T comparable] func(key T, val interface{}) bool

// Config is a concurrency-safe map keyed by T, used as the backing store
// for catalog.EvalService's language registry.
type Config[T comparable] interface {
	Clean()
	Load(key T) (val interface{}, ok bool)
	Store(key T, cfg interface{})
	Delete(key T)
	Walk(fct FuncWalk[T]) bool
}

func NewConfig[T comparable]() Config[T] {
	return &configMap[T]{}
}

type configMap[T comparable] struct {
	n sync.RWMutex
	m sync.Map
}

func (c *configMap[T]) Load(key T) (val interface{}, ok bool) {
	c.n.RLock()
	defer c.n.RUnlock()

	return c.m.Load(key)
}

func (c *configMap[T]) Store(key T, cfg interface{}) {
	c.n.RLock()
	defer c.n.RUnlock()

	c.m.Store(key, cfg)
}

func (c *configMap[T]) Delete(key T) {
	c.n.RLock()
	defer c.n.RUnlock()

	c.m.Delete(key)
}

func (c *configMap[T]) Walk(fct FuncWalk[T]) bool {
	c.n.RLock()
	defer c.n.RUnlock()

	c.m.Range(func(key, value any) bool {
		if i, ok := key.(T); ok {
			return fct(i, value)
		}
		return true
	})

	return true
}

func (c *configMap[T]) Clean() {
	c.n.Lock()
	defer c.n.Unlock()

	c.m = sync.Map{}
}
