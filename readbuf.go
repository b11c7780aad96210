// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

import "fmt"

// ReadBuf is a double-cursor view over a fixed-capacity byte region that is
// incrementally filled and initialized.
//
// It tracks three nested regions: [0, filled) holds logically committed
// data, [filled, initialized) holds bytes that were written at some point
// (safe to hand out, not yet meaningful), and [initialized, capacity) is
// untrusted and must never be exposed. The invariant
// 0 <= filled <= initialized <= capacity holds after every operation, and
// initialized never decreases.
//
// Tracking initialized separately pays off when the same region is read into
// repeatedly: a growing read-to-end loop zero-fills each byte at most once
// instead of once per iteration.
//
// A ReadBuf borrows its slice for the duration of one read operation;
// invariant violations are programmer errors and panic rather than return.
type ReadBuf struct {
	buf         []byte
	filled      int
	initialized int
}

// NewReadBuf returns a ReadBuf over p treating its entire contents as
// initialized. Use it for buffers whose bytes are already trusted.
func NewReadBuf(p []byte) ReadBuf {
	return ReadBuf{buf: p, initialized: len(p)}
}

// NewUninitReadBuf returns a ReadBuf over p treating its contents as
// untrusted garbage (for example a recycled scratch buffer). Nothing is
// exposed until the region is initialized or a caller vouches for it with
// AssumeInit.
func NewUninitReadBuf(p []byte) ReadBuf {
	return ReadBuf{buf: p}
}

// Capacity returns the full size of the underlying region.
func (b *ReadBuf) Capacity() int { return len(b.buf) }

// Remaining returns the number of unfilled bytes.
func (b *ReadBuf) Remaining() int { return len(b.buf) - b.filled }

// Filled returns the region holding logically committed data.
func (b *ReadBuf) Filled() []byte { return b.buf[:b.filled] }

// Initialized returns the region known safe to read, including the filled
// prefix.
func (b *ReadBuf) Initialized() []byte { return b.buf[:b.initialized] }

// Unfilled returns the unfilled region without any initialization
// guarantee: bytes past the initialized offset are garbage.
//
// Callers writing into it must account for what they wrote with AssumeInit
// (or AddFilled after AssumeInit) and must not treat already-initialized
// bytes as de-initialized. This precondition is documented, not enforced.
func (b *ReadBuf) Unfilled() []byte { return b.buf[b.filled:] }

// InitializeUnfilled zero-fills whatever part of the unfilled region is not
// yet initialized and returns the whole unfilled region, now safe to read.
// Thanks to the initialized cursor this is effectively free after the first
// call.
func (b *ReadBuf) InitializeUnfilled() []byte {
	b.InitializeUnfilledTo(len(b.buf))
	return b.buf[b.filled:]
}

// InitializeUnfilledTo zero-fills [initialized, n) and advances the
// initialized offset to max(initialized, n). Bytes a previous call already
// initialized are left untouched. It panics if n exceeds the capacity.
func (b *ReadBuf) InitializeUnfilledTo(n int) {
	if n > len(b.buf) {
		panic(fmt.Sprintf("aio: ReadBuf.InitializeUnfilledTo(%d) exceeds capacity %d", n, len(b.buf)))
	}
	if n <= b.initialized {
		return
	}
	clear(b.buf[b.initialized:n])
	b.initialized = n
}

// AddFilled grows the filled region by n bytes. It panics if the filled
// region would outgrow the initialized region.
func (b *ReadBuf) AddFilled(n int) {
	if n < 0 || b.filled+n > b.initialized {
		panic(fmt.Sprintf("aio: ReadBuf.AddFilled(%d) with filled=%d initialized=%d", n, b.filled, b.initialized))
	}
	b.filled += n
}

// SetFilled sets the filled offset to n, which may shrink the filled region
// (for example after decompressing in place). It panics if n exceeds the
// initialized offset.
func (b *ReadBuf) SetFilled(n int) {
	if n < 0 || n > b.initialized {
		panic(fmt.Sprintf("aio: ReadBuf.SetFilled(%d) with initialized=%d", n, b.initialized))
	}
	b.filled = n
}

// AssumeInit asserts that the first n bytes of the buffer are initialized,
// advancing the initialized offset to max(initialized, n) without
// zero-filling. Use it when a lower layer provably wrote the bytes (a read
// syscall, a previous pass over a recycled buffer). Vouching for bytes that
// were never written exposes garbage through Filled and Initialized.
// It panics if n exceeds the capacity.
func (b *ReadBuf) AssumeInit(n int) {
	if n > len(b.buf) {
		panic(fmt.Sprintf("aio: ReadBuf.AssumeInit(%d) exceeds capacity %d", n, len(b.buf)))
	}
	if n > b.initialized {
		b.initialized = n
	}
}

// Append copies p into the unfilled region, advancing the filled offset and,
// when the copy reaches past it, the initialized offset. It panics if p does
// not fit in the remaining capacity.
func (b *ReadBuf) Append(p []byte) {
	if len(p) > b.Remaining() {
		panic(fmt.Sprintf("aio: ReadBuf.Append of %d bytes with %d remaining", len(p), b.Remaining()))
	}
	copy(b.buf[b.filled:], p)
	b.filled += len(p)
	if b.filled > b.initialized {
		b.initialized = b.filled
	}
}

// Clear resets the filled region to empty. The initialized offset is
// unchanged, so already-written memory stays eligible for reuse without
// re-zeroing.
func (b *ReadBuf) Clear() { b.filled = 0 }
