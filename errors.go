// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

import (
	"errors"
	"io"
)

// aio carries backpressure and hard failures on separate channels.
//
// Mental model:
//   - ErrWouldBlock: retry later (the Waker has been registered; wait for
//     the wake-up, then poll again).
//   - ErrWriteZero / ErrUnexpectedEOF: fatal to the in-flight operation;
//     combinators surface them immediately and never retry.

// ErrWouldBlock means “no further progress without waiting”.
// Linux analogy: EAGAIN/EWOULDBLOCK / not-ready / no completion available.
// Next step: wait for the registered wake-up, then poll again.
//
// ErrWouldBlock is a readiness state, not a failure. A poll method returning
// it must first arrange for the Context's Waker to fire.
var ErrWouldBlock = errors.New("io: would block")

// ErrWriteZero means a writer reported zero bytes written while a non-empty
// slice remained to write. Progress was required and none is forthcoming,
// so combinators treat it as fatal.
var ErrWriteZero = errors.New("io: write zero")

// ErrUnexpectedEOF means end-of-stream was reached before a required byte
// count was met. It aliases io.ErrUnexpectedEOF so adapters wrapping
// standard readers match it with errors.Is either way.
var ErrUnexpectedEOF = io.ErrUnexpectedEOF

// kindError attaches a call-site message to one of the taxonomy sentinels
// while staying matchable via errors.Is.
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.kind }

// WriteZeroError returns an error matching ErrWriteZero that carries msg.
// It is the constructor adapters use to report a zero-byte write in their
// own words; an empty msg yields the bare sentinel.
func WriteZeroError(msg string) error {
	if msg == "" {
		return ErrWriteZero
	}
	return &kindError{kind: ErrWriteZero, msg: msg}
}

// UnexpectedEOFError returns an error matching ErrUnexpectedEOF that carries
// msg. An empty msg yields the bare sentinel.
func UnexpectedEOFError(msg string) error {
	if msg == "" {
		return ErrUnexpectedEOF
	}
	return &kindError{kind: ErrUnexpectedEOF, msg: msg}
}

// IsWouldBlock reports whether err carries the would-block readiness state.
// It returns true for ErrWouldBlock and wrappers (via errors.Is).
func IsWouldBlock(err error) bool { return errors.Is(err, ErrWouldBlock) }

// IsWriteZero reports whether err matches ErrWriteZero, including wrapped
// forms produced by WriteZeroError.
func IsWriteZero(err error) bool { return errors.Is(err, ErrWriteZero) }

// IsUnexpectedEOF reports whether err matches ErrUnexpectedEOF, including
// wrapped forms produced by UnexpectedEOFError.
func IsUnexpectedEOF(err error) bool { return errors.Is(err, ErrUnexpectedEOF) }

// IsNonFailure reports whether err should be treated as a non-failure in
// non-blocking control flow: nil or ErrWouldBlock.
//
// Typical usage: decide whether to keep an operation active without logging
// an error or tearing it down.
func IsNonFailure(err error) bool { return err == nil || IsWouldBlock(err) }
