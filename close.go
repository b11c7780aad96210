// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// Close repeatedly polls a Writer's close operation, resolving to the
// writer itself once the close completes.
type Close struct {
	writer Writer
	done   bool
}

// NewClose returns a Close of w.
func NewClose(w Writer) *Close {
	return &Close{writer: w}
}

// Poll attempts the close. On completion it returns the underlying writer,
// handing it back to the caller. Polling again after completion panics.
func (c *Close) Poll(cx *Context) (Writer, error) {
	if c.done {
		panic("aio: poll of completed Close")
	}
	if err := c.writer.PollClose(cx); err != nil {
		if IsWouldBlock(err) {
			return nil, err
		}
		c.done = true
		return nil, err
	}
	c.done = true
	return c.writer, nil
}
