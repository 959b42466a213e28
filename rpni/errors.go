package rpni

import "fmt"

// IllegalState reports a misuse of Driver's API (Run called a second time
// on the same Driver).
type IllegalState struct {
	Message string
}

func (e *IllegalState) Error() string {
	return fmt.Sprintf("rpni: illegal state: %s", e.Message)
}

// Cancelled reports that the caller's context was done before the blue
// worklist finished draining. Returned only between blue dequeues, never
// mid-merge: the PTA is left in an invariant-consistent, if non-minimal,
// state.
type Cancelled struct {
	Err error
}

func (e *Cancelled) Error() string {
	return fmt.Sprintf("rpni: cancelled: %v", e.Err)
}

func (e *Cancelled) Unwrap() error {
	return e.Err
}
