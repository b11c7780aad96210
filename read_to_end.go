// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

import "slices"

// readToEndGrow is the minimum spare capacity reserved per iteration. Small
// on purpose: reserving (and for untrusted readers, zeroing) a large chunk
// up front is wasted work when the source only has a few bytes, while the
// append growth curve inside slices.Grow still gives large readers large
// reads. The initialized cursor makes the repeated small reservations cheap:
// spare bytes are zero-filled at most once, not once per read.
const readToEndGrow = 32

// ReadToEnd reads from a Reader until end-of-stream, appending everything to
// a growable buffer. It resolves to the final buffer and the number of bytes
// appended.
type ReadToEnd struct {
	reader Reader
	buf    []byte
	start  int
	// initialized counts bytes of spare capacity past len(buf) that some
	// earlier read already wrote, carried between iterations so they are
	// never re-zeroed.
	initialized int
	done        bool
}

// NewReadToEnd returns a ReadToEnd of r appending to buf. buf may be nil;
// existing contents are preserved and counted toward neither the result
// total nor the initialized tracking.
func NewReadToEnd(r Reader, buf []byte) *ReadToEnd {
	return &ReadToEnd{reader: r, buf: buf, start: len(buf)}
}

// Poll advances the read. On completion it returns the grown buffer and the
// number of bytes appended since construction. While suspended it returns
// (nil, 0, ErrWouldBlock) with all progress kept. Polling again after
// completion panics.
func (r *ReadToEnd) Poll(cx *Context) ([]byte, int, error) {
	if r.done {
		panic("aio: poll of completed ReadToEnd")
	}
	zeroing := InitializerOf(r.reader).ShouldInitialize()
	for {
		if cap(r.buf) == len(r.buf) {
			oldCap := cap(r.buf)
			r.buf = slices.Grow(r.buf, readToEndGrow)
			if cap(r.buf) != oldCap {
				// Fresh backing array; the old initialized tail is gone.
				r.initialized = 0
			}
		}

		spare := r.buf[len(r.buf):cap(r.buf)]
		rb := NewUninitReadBuf(spare)
		rb.AssumeInit(min(r.initialized, len(spare)))
		if zeroing {
			rb.InitializeUnfilled()
		}

		n, err := r.reader.PollRead(cx, &rb)
		if err != nil {
			if IsWouldBlock(err) {
				return nil, 0, err
			}
			r.done = true
			return nil, 0, err
		}
		r.initialized = len(rb.Initialized()) - len(rb.Filled())
		if n == 0 {
			r.done = true
			return r.buf, len(r.buf) - r.start, nil
		}
		r.buf = r.buf[:len(r.buf)+n]
	}
}
