// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// ReadExact reads from a Reader until p is completely full. A zero-byte
// read before then means the stream ended early and fails the operation
// with ErrUnexpectedEOF; the bytes read so far stay in p but the operation
// reports no success.
type ReadExact struct {
	reader Reader
	buf    []byte
	pos    int
	done   bool
}

// NewReadExact returns a ReadExact of r into p.
func NewReadExact(r Reader, p []byte) *ReadExact {
	return &ReadExact{reader: r, buf: p}
}

// Poll advances the read. It returns nil once p is full, ErrWouldBlock
// while suspended with progress kept, or the fatal error that ended the
// operation. Polling again after completion panics.
func (x *ReadExact) Poll(cx *Context) error {
	if x.done {
		panic("aio: poll of completed ReadExact")
	}
	for x.pos < len(x.buf) {
		rb := NewReadBuf(x.buf[x.pos:])
		n, err := x.reader.PollRead(cx, &rb)
		if err != nil {
			if IsWouldBlock(err) {
				return err
			}
			x.done = true
			return err
		}
		if n == 0 {
			x.done = true
			return UnexpectedEOFError("early eof")
		}
		x.pos += n
	}
	x.done = true
	return nil
}
