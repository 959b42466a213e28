// Package learnlib is the core of an active- and passive-automata-learning
// toolkit: the TTT discrimination-tree learner (package ttt) and the
// Blue-Fringe RPNI passive learner (package rpni) infer a minimal DFA
// equivalent to a black-box target, reachable only through a membership
// oracle and, for TTT, an equivalence oracle (package oracle).
//
// This root package hosts only what both learners produce: the Result DFA
// view. The oracle-facing interfaces their external collaborators
// implement live in package oracle. It does not itself
// implement a learner; see ttt.Learner and rpni.Driver, each a thin
// public surface over a heavier internal engine.
package learnlib

import "github.com/fatimatuzzuhra/learnlib/alphabet"

// Result is the read-only, total DFA a learner emits once it converges
// (TTT) or once RPNI has folded every blue state: it exposes the initial
// state, a transition function, per-state acceptance, and a state
// enumeration.
//
// Unlike the mutable hypothesis.Automaton a TTT run refines in place,
// Result is an immutable snapshot: building one fully resolves every
// transition (TTT) or introduces an explicit reject sink for samples that
// never covered a (state, symbol) pair (RPNI), so every state has a
// transition defined for every symbol.
type Result[S comparable] struct {
	alphabet  *alphabet.Alphabet[S]
	initial   int
	trans     [][]int
	accepting []bool
}

// NewResult builds a Result from a fully-resolved transition table.
// trans[state][symIdx] and accepting[state] must be defined for every
// state in 0..len(accepting)-1; callers (ttt.Learner.Result,
// rpni.Driver.Run) are responsible for that completeness.
func NewResult[S comparable](a *alphabet.Alphabet[S], initial int, trans [][]int, accepting []bool) *Result[S] {
	return &Result[S]{alphabet: a, initial: initial, trans: trans, accepting: accepting}
}

// Alphabet returns the input alphabet Result's transitions are indexed
// over.
func (r *Result[S]) Alphabet() *alphabet.Alphabet[S] { return r.alphabet }

// InitialState returns the DFA's initial state.
func (r *Result[S]) InitialState() int { return r.initial }

// NumStates returns the number of states.
func (r *Result[S]) NumStates() int { return len(r.accepting) }

// States enumerates every state, 0..NumStates()-1.
func (r *Result[S]) States() []int {
	ids := make([]int, len(r.accepting))
	for i := range ids {
		ids[i] = i
	}
	return ids
}

// Transition returns the state reached from state on the symbol at
// alphabet index symIdx.
func (r *Result[S]) Transition(state, symIdx int) int {
	return r.trans[state][symIdx]
}

// Accepting reports whether state is an accepting state.
func (r *Result[S]) Accepting(state int) bool {
	return r.accepting[state]
}

// Accepts runs w from the initial state and reports whether it lands on
// an accepting state.
func (r *Result[S]) Accepts(w alphabet.Word[S]) bool {
	s := r.initial
	for i := 0; i < w.Len(); i++ {
		s = r.Transition(s, w.IndexAt(i))
	}
	return r.Accepting(s)
}
