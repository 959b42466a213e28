// Package oracle defines the external collaborator interfaces this module
// drives but does not implement: the membership oracle, the equivalence
// oracle, and the read-only view of a learned hypothesis a caller-supplied
// equivalence oracle needs to search for counterexamples against.
//
// The oracle implementations themselves (wrapping a SUL, a sample file, a
// BFS/W-method conformance test, etc.) are out of scope; only these
// contracts are specified here.
package oracle

import "github.com/fatimatuzzuhra/learnlib/alphabet"

// Membership answers membership queries: is prefix.suffix accepted by the
// target system? Must be deterministic (same input -> same output across a
// learning run) and total over Sigma*.
type Membership[S comparable] interface {
	Query(prefix, suffix alphabet.Word[S]) (bool, error)
}

// MembershipFunc adapts a plain function to Membership.
type MembershipFunc[S comparable] func(prefix, suffix alphabet.Word[S]) (bool, error)

// Query implements Membership.
func (f MembershipFunc[S]) Query(prefix, suffix alphabet.Word[S]) (bool, error) {
	return f(prefix, suffix)
}

// DFAView is the read-only view of a learned hypothesis exposed to an
// Equivalence oracle and to callers wanting the final Result: states are
// addressed by a plain int, which is stable only between calls that don't
// mutate the hypothesis (an active learner may renumber nothing, but may
// add states between counterexamples).
type DFAView[S comparable] interface {
	InitialState() int
	NumStates() int
	// Transition returns the state reached from state on symbol index
	// symIdx. The alphabet symbol itself is resolved by the caller via its
	// own Alphabet.
	Transition(state int, symIdx int) int
	Accepting(state int) bool
}

// Counterexample is a word (as prefix.suffix, with the split point
// significant for transform_access_sequence-style handlers) on which the
// hypothesis and the target disagree, and the expected (target) answer.
type Counterexample[S comparable] struct {
	Prefix, Suffix alphabet.Word[S]
	Expected       bool
}

// Equivalence searches for a counterexample to hypothesis, or returns nil
// if hypothesis and the target agree on every input the oracle checks
// (this is never a guarantee of true equivalence unless the oracle
// performs exhaustive/characteristic testing).
type Equivalence[S comparable] interface {
	FindCounterexample(hypothesis DFAView[S], alphabet *alphabet.Alphabet[S]) (*Counterexample[S], error)
}
