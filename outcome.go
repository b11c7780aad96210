// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package aio

// Outcome classifies a poll result.
//
// OutcomeReady:   the operation produced its value; no retry needed.
// OutcomePending: no progress is possible right now; the Waker has been
// registered and the caller should poll again after wake-up.
// OutcomeFailure: any other error (taxonomy or adapter-specific).
type Outcome uint8

const (
	OutcomeFailure Outcome = iota
	OutcomeReady
	OutcomePending
)

func (o Outcome) String() string {
	switch o {
	case OutcomeReady:
		return "Ready"
	case OutcomePending:
		return "Pending"
	default:
		return "Failure"
	}
}

// Classify maps a poll error to its readiness outcome: nil is OutcomeReady,
// ErrWouldBlock (and wrappers) is OutcomePending, everything else is
// OutcomeFailure.
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeReady
	case IsWouldBlock(err):
		return OutcomePending
	default:
		return OutcomeFailure
	}
}
