// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// Read performs a single best-effort read into p. Unlike ReadExact it never
// loops: the first read that produces bytes (or EOF) completes it, resolving
// to the byte count. Only ErrWouldBlock keeps it active.
type Read struct {
	reader Reader
	buf    []byte
	done   bool
}

// NewRead returns a Read of r into p.
func NewRead(r Reader, p []byte) *Read {
	return &Read{reader: r, buf: p}
}

// Poll attempts the read once. Polling again after completion panics.
func (r *Read) Poll(cx *Context) (int, error) {
	if r.done {
		panic("aio: poll of completed Read")
	}
	rb := NewReadBuf(r.buf)
	n, err := r.reader.PollRead(cx, &rb)
	if err != nil {
		if IsWouldBlock(err) {
			return 0, err
		}
		r.done = true
		return 0, err
	}
	r.done = true
	return n, nil
}
