// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// Reader is the poll-based analog of io.Reader. Unlike Read, PollRead never
// blocks the calling goroutine: when no bytes are available it registers the
// Context's Waker and returns ErrWouldBlock.
type Reader interface {
	// PollRead attempts a non-blocking read into the unfilled region of buf.
	//
	// On success it returns the number of bytes added to buf's filled
	// region. (0, nil) with unfilled space remaining is genuine
	// end-of-stream. (0, ErrWouldBlock) means no bytes are available yet;
	// the implementation MUST have arranged for cx.Waker() to fire when
	// data arrives or the stream closes. Failing to register the wake-up
	// is a liveness bug, not a safety bug, and can only be caught by test
	// harnesses with fake schedulers.
	//
	// Implementations fill buf through its cursor operations (Append, or
	// Unfilled plus AssumeInit and AddFilled) and must never shrink its
	// initialized region.
	PollRead(cx *Context, buf *ReadBuf) (int, error)
}

// Writer is the poll-based analog of io.Writer with explicit flush and close
// phases. Every method follows the same suspension contract as
// Reader.PollRead: ErrWouldBlock means "not ready, wake-up registered".
type Writer interface {
	// PollWrite attempts a non-blocking write of p, returning the number of
	// bytes consumed. It never returns (0, nil) for non-empty p; a writer
	// that can make no progress returns ErrWouldBlock instead.
	PollWrite(cx *Context, p []byte) (int, error)

	// PollFlush attempts to push all buffered data to its destination.
	PollFlush(cx *Context) error

	// PollClose attempts to close the object, flushing as required.
	PollClose(cx *Context) error
}

// ReadWriter groups the poll-based Reader and Writer contracts. Split
// consumes a ReadWriter.
type ReadWriter interface {
	Reader
	Writer
}

// VectoredReader is implemented by Readers that can scatter one read across
// multiple buffer segments in a single operation.
type VectoredReader interface {
	Reader

	// PollReadVectored reads into bufs in order, returning the total number
	// of bytes read. Same suspension and EOF contract as PollRead.
	PollReadVectored(cx *Context, bufs [][]byte) (int, error)
}

// VectoredWriter is implemented by Writers that can gather one write from
// multiple buffer segments in a single operation.
type VectoredWriter interface {
	Writer

	// PollWriteVectored writes from bufs in order, returning the total
	// number of bytes consumed. Same suspension contract as PollWrite.
	PollWriteVectored(cx *Context, bufs [][]byte) (int, error)
}

// PollReadVectored performs a vectored read on r, using its native
// implementation when r is a VectoredReader and otherwise forwarding to a
// plain PollRead on the first segment (correct but unoptimized). An empty
// segment list reads zero bytes immediately.
func PollReadVectored(r Reader, cx *Context, bufs [][]byte) (int, error) {
	if vr, ok := r.(VectoredReader); ok {
		return vr.PollReadVectored(cx, bufs)
	}
	if len(bufs) == 0 {
		return 0, nil
	}
	rb := NewReadBuf(bufs[0])
	return r.PollRead(cx, &rb)
}

// PollWriteVectored performs a vectored write on w, using its native
// implementation when w is a VectoredWriter and otherwise forwarding to a
// plain PollWrite of the first segment. An empty segment list writes zero
// bytes immediately.
func PollWriteVectored(w Writer, cx *Context, bufs [][]byte) (int, error) {
	if vw, ok := w.(VectoredWriter); ok {
		return vw.PollWriteVectored(cx, bufs)
	}
	if len(bufs) == 0 {
		return 0, nil
	}
	return w.PollWrite(cx, bufs[0])
}

// Initializer describes whether buffer memory handed to a Reader must be
// zero-filled before the read.
type Initializer struct {
	zeroing bool
}

// ZeroingInitializer returns an Initializer that zero-fills buffers. This is
// the safe default every Reader gets unless it explicitly opts out.
func ZeroingInitializer() Initializer { return Initializer{zeroing: true} }

// NopInitializer returns an Initializer that skips zero-filling.
//
// Only a Reader that never reads from the buffer before writing into it, and
// whose reported count covers exactly the bytes it wrote, may return this
// from its Initializer method. Declaring it incorrectly exposes stale memory
// through the filled region. Every call site of NopInitializer is that
// reader's explicit safety acknowledgment; keep them auditable.
func NopInitializer() Initializer { return Initializer{} }

// ShouldInitialize reports whether buffers must be zero-filled before use.
func (i Initializer) ShouldInitialize() bool { return i.zeroing }

// Initialize zero-fills p if this Initializer requires it.
func (i Initializer) Initialize(p []byte) {
	if i.zeroing {
		clear(p)
	}
}

// ReaderInitializer is implemented by Readers that declare their buffer
// initialization requirement. Readers without the method are assumed to need
// zeroed buffers.
type ReaderInitializer interface {
	Reader

	Initializer() Initializer
}

// InitializerOf returns r's declared Initializer, defaulting to zeroing.
func InitializerOf(r Reader) Initializer {
	if ri, ok := r.(ReaderInitializer); ok {
		return ri.Initializer()
	}
	return ZeroingInitializer()
}
