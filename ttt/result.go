package ttt

import "github.com/fatimatuzzuhra/learnlib"

// Result fully resolves the hypothesis into an immutable learnlib.Result:
// every non-tree transition still outstanding is forced to a concrete
// successor state (sifting, and materializing new states, as needed),
// exactly as an equivalence oracle's DFAView walk would, so the emitted
// automaton is total.
//
// Call once the learner has converged (no more counterexamples); calling
// it mid-refinement is legal but simply snapshots the hypothesis as it
// stands, which close_transitions already guarantees is
// invariant-consistent.
func (l *Learner[S]) Result() *learnlib.Result[S] {
	v := l.View()
	size := l.alphabet.Size()

	// Walking every (state, symbol) pair may realize new states (a
	// non-tree transition resolving to a fresh leaf); re-scan until the
	// state count stops growing.
	for i := 0; i < v.NumStates(); i++ {
		for sym := 0; sym < size; sym++ {
			v.Transition(i, sym)
		}
	}

	n := v.NumStates()
	trans := make([][]int, n)
	accepting := make([]bool, n)
	for s := 0; s < n; s++ {
		row := make([]int, size)
		for sym := 0; sym < size; sym++ {
			row[sym] = v.Transition(s, sym)
		}
		trans[s] = row
		accepting[s] = v.Accepting(s)
	}

	return learnlib.NewResult(l.alphabet, v.InitialState(), trans, accepting)
}
