package ttt

import "fmt"

// OracleInconsistency reports that the membership oracle answered two
// equivalent queries differently within the same learning run, violating
// the determinism a membership oracle must guarantee. The learner cannot
// recover from this on its own.
type OracleInconsistency struct {
	Message string
}

func (e *OracleInconsistency) Error() string {
	return fmt.Sprintf("ttt: oracle inconsistency: %s", e.Message)
}

// IllegalState reports a misuse of Learner's API (Refine before Start,
// Start called twice, a counterexample that does not actually contradict
// the current hypothesis).
type IllegalState struct {
	Message string
}

func (e *IllegalState) Error() string {
	return fmt.Sprintf("ttt: illegal state: %s", e.Message)
}

// Cancelled reports that the caller's context was done before a learning
// round (Start or Refine) finished. Returned between rounds, never
// mid-round: the hypothesis and discrimination tree are left consistent.
type Cancelled struct {
	Err error
}

func (e *Cancelled) Error() string {
	return fmt.Sprintf("ttt: cancelled: %v", e.Err)
}

func (e *Cancelled) Unwrap() error {
	return e.Err
}
