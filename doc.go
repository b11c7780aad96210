// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package aio provides a readiness-driven asynchronous I/O core: poll-based
// Reader and Writer contracts, a partial-initialization buffer cursor
// (ReadBuf), a split primitive that shares one resource between two
// independently pollable halves, and combinators that repeatedly drive a
// poll contract to completion (Copy, Read, ReadExact, ReadToEnd, WriteAll,
// Flush, Close).
//
// Extended result semantics
//   - ErrWouldBlock: the operation cannot make progress now without waiting.
//     The implementation has registered the Context's Waker and the caller's
//     task will be woken when another attempt can succeed. Return
//     immediately; poll again after the wake-up.
//   - (0, nil) from PollRead with unfilled space available is genuine
//     end-of-stream, never "no data yet". Backpressure and stream end travel
//     on separate channels.
//
// ErrWouldBlock is expected control flow; treat it like a readiness state,
// not a failure. An implementation that returns ErrWouldBlock without
// arranging a wake-up has a liveness bug that no type can catch; see the
// fake-scheduler tests in this package for how to pin one down.
//
// aio assumes the task scheduler and the readiness-notification backend are
// supplied externally. Nothing here blocks the calling goroutine: a
// combinator "suspends" by returning ErrWouldBlock to whoever drives it.
package aio
