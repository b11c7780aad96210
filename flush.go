// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// Flush repeatedly polls a Writer's flush operation, resolving to the
// writer itself once all buffered data has reached its destination.
type Flush struct {
	writer Writer
	done   bool
}

// NewFlush returns a Flush of w.
func NewFlush(w Writer) *Flush {
	return &Flush{writer: w}
}

// Poll attempts the flush. On completion it returns the underlying writer,
// handing it back to the caller. Polling again after completion panics.
func (f *Flush) Poll(cx *Context) (Writer, error) {
	if f.done {
		panic("aio: poll of completed Flush")
	}
	if err := f.writer.PollFlush(cx); err != nil {
		if IsWouldBlock(err) {
			return nil, err
		}
		f.done = true
		return nil, err
	}
	f.done = true
	return f.writer, nil
}
