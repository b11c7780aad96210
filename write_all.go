// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// WriteAll writes the entirety of p into a Writer, driving PollWrite until
// every byte is consumed. A writer reporting zero bytes consumed for a
// non-empty slice fails the operation with ErrWriteZero immediately.
type WriteAll struct {
	writer Writer
	buf    []byte
	done   bool
}

// NewWriteAll returns a WriteAll of p into w.
func NewWriteAll(w Writer, p []byte) *WriteAll {
	return &WriteAll{writer: w, buf: p}
}

// Poll advances the write. It returns nil once all bytes are consumed,
// ErrWouldBlock while suspended with progress kept, or the fatal error that
// ended the operation. Polling again after completion panics.
func (w *WriteAll) Poll(cx *Context) error {
	if w.done {
		panic("aio: poll of completed WriteAll")
	}
	for len(w.buf) > 0 {
		n, err := w.writer.PollWrite(cx, w.buf)
		if err != nil {
			if IsWouldBlock(err) {
				return err
			}
			w.done = true
			return err
		}
		if n == 0 {
			w.done = true
			return WriteZeroError("write zero byte into writer")
		}
		w.buf = w.buf[n:]
	}
	w.done = true
	return nil
}
