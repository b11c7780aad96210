// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

import "fmt"

// Window is a movable sub-range view over a byte slice. It lets callers
// submit successive portions of one buffer to operations like WriteAll
// without reslicing away the underlying data.
type Window struct {
	data       []byte
	start, end int
}

// NewWindow returns a Window over the entirety of p.
func NewWindow(p []byte) Window {
	return Window{data: p, end: len(p)}
}

// Bytes returns the currently windowed portion of the slice.
func (w Window) Bytes() []byte { return w.data[w.start:w.end] }

// Range returns the current [start, end) offsets.
func (w Window) Range() (start, end int) { return w.start, w.end }

// Set moves the window to [start, end). It panics if the range is invalid
// or falls outside the underlying slice.
func (w *Window) Set(start, end int) {
	if start < 0 || start > end || end > len(w.data) {
		panic(fmt.Sprintf("aio: Window.Set(%d, %d) out of range for %d bytes", start, end, len(w.data)))
	}
	w.start, w.end = start, end
}

// Advance moves the window start forward by n bytes, typically by the count
// a partial write reported. It panics if n exceeds the window length.
func (w *Window) Advance(n int) {
	if n < 0 || w.start+n > w.end {
		panic(fmt.Sprintf("aio: Window.Advance(%d) beyond window of %d bytes", n, w.end-w.start))
	}
	w.start += n
}
