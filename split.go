// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

import "sync"

// biLock is the lock cell shared by the two halves of a split resource. It
// guards the inner ReadWriter with real cross-thread mutual exclusion (the
// two halves may be driven by different scheduler threads) while staying
// poll-shaped: acquisition never blocks, it either succeeds or parks the
// caller's waker.
//
// The mutex protects only the lock state itself; the inner resource is used
// outside it, under the held flag.
type biLock struct {
	mu     sync.Mutex
	held   bool
	waiter Waker
	inner  ReadWriter
}

// pollLock tries to acquire the cell. On contention it parks cx's waker and
// reports false; the waker fires when the holder releases.
func (l *biLock) pollLock(cx *Context) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.held {
		l.waiter = cx.Waker()
		return false
	}
	l.held = true
	return true
}

// unlock releases the cell and wakes the parked half, if any. The wake runs
// outside the mutex so the woken task may poll immediately.
func (l *biLock) unlock() {
	l.mu.Lock()
	w := l.waiter
	l.waiter = nil
	l.held = false
	l.mu.Unlock()
	if w != nil {
		w.Wake()
	}
}

// Split consumes a ReadWriter and returns two handles sharing it: a ReadHalf
// implementing Reader and a WriteHalf implementing Writer. The caller must
// not use rw directly afterwards.
//
// Each poll call on a half acquires the shared lock, delegates once to the
// underlying resource, and releases before returning, so a single poll call
// is the unit of mutual exclusion. A combinator driving one half may
// therefore be interleaved, call by call, with operations on the other half,
// but never concurrently against the resource. When the lock is contended
// the half returns ErrWouldBlock with its waker parked; to the caller this
// is indistinguishable from the resource itself being not ready, and the
// retry path is identical.
func Split(rw ReadWriter) (*ReadHalf, *WriteHalf) {
	l := &biLock{inner: rw}
	return &ReadHalf{lock: l}, &WriteHalf{lock: l}
}

// ReadHalf is the readable half of a split ReadWriter.
type ReadHalf struct {
	lock *biLock
}

// PollRead implements Reader, delegating one read to the shared resource
// under the split lock.
func (h *ReadHalf) PollRead(cx *Context, buf *ReadBuf) (int, error) {
	if !h.lock.pollLock(cx) {
		return 0, ErrWouldBlock
	}
	defer h.lock.unlock()
	return h.lock.inner.PollRead(cx, buf)
}

// PollReadVectored implements VectoredReader, using the shared resource's
// native vectored read when it has one.
func (h *ReadHalf) PollReadVectored(cx *Context, bufs [][]byte) (int, error) {
	if !h.lock.pollLock(cx) {
		return 0, ErrWouldBlock
	}
	defer h.lock.unlock()
	return PollReadVectored(h.lock.inner, cx, bufs)
}

// Initializer reports the shared resource's buffer initialization
// requirement. It is a pure capability query and takes no lock.
func (h *ReadHalf) Initializer() Initializer {
	return InitializerOf(h.lock.inner)
}

// WriteHalf is the writable half of a split ReadWriter.
type WriteHalf struct {
	lock *biLock
}

// PollWrite implements Writer, delegating one write to the shared resource
// under the split lock.
func (h *WriteHalf) PollWrite(cx *Context, p []byte) (int, error) {
	if !h.lock.pollLock(cx) {
		return 0, ErrWouldBlock
	}
	defer h.lock.unlock()
	return h.lock.inner.PollWrite(cx, p)
}

// PollWriteVectored implements VectoredWriter, using the shared resource's
// native vectored write when it has one.
func (h *WriteHalf) PollWriteVectored(cx *Context, bufs [][]byte) (int, error) {
	if !h.lock.pollLock(cx) {
		return 0, ErrWouldBlock
	}
	defer h.lock.unlock()
	return PollWriteVectored(h.lock.inner, cx, bufs)
}

// PollFlush implements Writer.
func (h *WriteHalf) PollFlush(cx *Context) error {
	if !h.lock.pollLock(cx) {
		return ErrWouldBlock
	}
	defer h.lock.unlock()
	return h.lock.inner.PollFlush(cx)
}

// PollClose implements Writer. Closing through the write half is the
// deterministic release path for the shared resource.
func (h *WriteHalf) PollClose(cx *Context) error {
	if !h.lock.pollLock(cx) {
		return ErrWouldBlock
	}
	defer h.lock.unlock()
	return h.lock.inner.PollClose(cx)
}
