package dtree

import "fmt"

// TreeError reports a discrimination-tree structural-invariant violation
// (e.g. calling Split on an inner node, or Finalize on a non-block node).
// These indicate a bug in the calling learner, not an oracle or input
// problem.
type TreeError struct {
	Message string
}

// Error implements the error interface.
func (e *TreeError) Error() string {
	return fmt.Sprintf("dtree: %s", e.Message)
}
