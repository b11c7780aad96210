// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// Waker is the handle an I/O implementation uses to request that the task
// currently polling it be scheduled again.
//
// Wake must be safe for concurrent use and must tolerate spurious calls:
// waking a task that is already runnable, or that has since completed, is a
// no-op, never an error. Implementations that return ErrWouldBlock from a
// poll method must arrange for Wake to be called once progress is possible.
type Waker interface {
	Wake()
}

// WakerFunc adapts a plain function to the Waker interface.
type WakerFunc func()

func (f WakerFunc) Wake() { f() }

type nopWaker struct{}

func (nopWaker) Wake() {}

// NopWaker returns a Waker that does nothing.
//
// It is intended for callers that drive polls in a loop themselves (busy
// polling, Backoff loops, tests) and therefore need no notification.
var NopWaker Waker = nopWaker{}

// Context carries the scheduling state for one poll call: the Waker of the
// task performing the poll.
//
// A Context is supplied by the task driver and threaded, unmodified, through
// every poll method an operation touches. Combinators never call scheduling
// primitives beyond passing the Context down.
type Context struct {
	waker Waker
}

// NewContext returns a Context that wakes w. A nil w yields a no-op waker.
func NewContext(w Waker) *Context {
	if w == nil {
		w = NopWaker
	}
	return &Context{waker: w}
}

// Waker returns the Waker associated with the polling task.
func (cx *Context) Waker() Waker { return cx.waker }
