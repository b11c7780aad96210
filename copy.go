// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// DefaultCopyBufferSize is the staging buffer size Copy allocates when the
// caller supplies none.
const DefaultCopyBufferSize = 2048

// Copy drives all bytes from a Reader into a Writer. It completes once the
// reader reports end-of-stream, every staged byte has been written, and the
// writer has flushed; it then resolves to the total byte count.
//
// Each Poll loops over {refill the staging buffer if exhausted and not at
// EOF; drain it into the writer; on EOF with the buffer drained, flush}.
// ErrWouldBlock from either side suspends the loop with all progress kept,
// so the next Poll resumes exactly where this one stopped: a partially
// drained buffer is drained further, never re-read.
//
// A writer consuming zero bytes of a non-empty slice fails the copy with
// ErrWriteZero immediately; it is never retried.
type Copy struct {
	reader   Reader
	writer   Writer
	buf      []byte
	pos, cap int
	amt      int64
	readDone bool
	done     bool
}

// NewCopy returns a Copy from r into w staging through buf.
// If buf is nil, a buffer of DefaultCopyBufferSize is allocated.
// If buf has zero length, NewCopy panics.
func NewCopy(r Reader, w Writer, buf []byte) *Copy {
	if buf == nil {
		buf = make([]byte, DefaultCopyBufferSize)
	}
	if len(buf) == 0 {
		panic("aio: empty buffer in NewCopy")
	}
	return &Copy{reader: r, writer: w, buf: buf}
}

// Poll advances the copy. It returns the total byte count on completion,
// (0, ErrWouldBlock) while suspended, or the fatal error that ended the
// copy. Polling again after completion panics: the operation's resources
// have already been handed back to the caller.
func (c *Copy) Poll(cx *Context) (int64, error) {
	if c.done {
		panic("aio: poll of completed Copy")
	}
	for {
		// If the staging buffer is exhausted, read more unless the source
		// already reported EOF.
		if c.pos == c.cap && !c.readDone {
			rb := NewReadBuf(c.buf)
			n, err := c.reader.PollRead(cx, &rb)
			if err != nil {
				if IsWouldBlock(err) {
					return 0, err
				}
				c.done = true
				return 0, err
			}
			if n == 0 {
				c.readDone = true
			} else {
				c.pos, c.cap = 0, n
			}
		}

		for c.pos < c.cap {
			n, err := c.writer.PollWrite(cx, c.buf[c.pos:c.cap])
			if err != nil {
				if IsWouldBlock(err) {
					return 0, err
				}
				c.done = true
				return 0, err
			}
			if n == 0 {
				c.done = true
				return 0, WriteZeroError("write zero byte into writer")
			}
			c.pos += n
			c.amt += int64(n)
		}

		if c.pos == c.cap && c.readDone {
			if err := c.writer.PollFlush(cx); err != nil {
				if IsWouldBlock(err) {
					return 0, err
				}
				c.done = true
				return 0, err
			}
			c.done = true
			return c.amt, nil
		}
	}
}
