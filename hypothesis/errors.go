package hypothesis

import "fmt"

// AutomatonError reports a hypothesis-automaton structural-invariant
// violation — a bug in the calling learner, not an oracle or input
// problem.
type AutomatonError struct {
	Message string
}

// Error implements the error interface.
func (e *AutomatonError) Error() string {
	return fmt.Sprintf("hypothesis: %s", e.Message)
}
