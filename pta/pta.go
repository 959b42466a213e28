// Package pta implements the prefix-tree acceptor RPNI folds into a DFA:
// a trie over the sample words, with states addressed by a stable StateID
// arena rather than pointers, following the same arena idiom as
// hypothesis.Automaton and dtree.Tree.
package pta

import "github.com/fatimatuzzuhra/learnlib/alphabet"

// StateID identifies a PTA state within a Tree's arena.
type StateID uint32

// InvalidState is the sentinel StateID meaning "no state" (an absent
// transition, or the root's nonexistent parent).
const InvalidState StateID = 0xFFFFFFFF

// Color is the Blue-Fringe coloring of a PTA state.
type Color uint8

const (
	// None is an uncolored state: not yet on the red/blue frontier.
	None Color = iota
	// Red states are confirmed states of the learned automaton.
	Red
	// Blue states are merge candidates on the worklist.
	Blue
)

// Label is a state's observed acceptance, if any. Only states that are
// themselves some sample's full word (a "leaf" in the insertion sense,
// though it may still have children from longer samples) carry a label;
// every other state is Unlabeled.
type Label uint8

const (
	Unlabeled Label = iota
	Accept
	Reject
)

// State is a single PTA state.
type State[S comparable] struct {
	id         StateID
	trans      []StateID // one per alphabet symbol index, InvalidState if absent
	label      Label
	color      Color
	parent     StateID
	parentSym  int // the symbol labelling the edge from parent to this state; meaningless at the root
}

// ID returns the state's handle.
func (s *State[S]) ID() StateID { return s.id }

// Label returns the state's observed acceptance, if any.
func (s *State[S]) Label() Label { return s.label }

// Color returns the state's current Blue-Fringe coloring.
func (s *State[S]) Color() Color { return s.color }

// Transition returns the state reached on symbol index sym, or
// InvalidState if the PTA has no sample passing through that edge.
func (s *State[S]) Transition(sym int) StateID { return s.trans[sym] }

// Tree is a prefix-tree acceptor: the trie of every inserted sample word,
// plus Blue-Fringe coloring and merge machinery for RPNI.
type Tree[S comparable] struct {
	alphabet *alphabet.Alphabet[S]
	states   []State[S]
}

// New creates a Tree with just a root state (unlabeled, uncolored).
func New[S comparable](a *alphabet.Alphabet[S]) *Tree[S] {
	t := &Tree[S]{alphabet: a}
	t.states = append(t.states, State[S]{
		id:     0,
		trans:  make([]StateID, a.Size()),
		parent: InvalidState,
	})
	for i := range t.states[0].trans {
		t.states[0].trans[i] = InvalidState
	}
	return t
}

// Root returns the PTA's root state.
func (t *Tree[S]) Root() StateID { return 0 }

// State returns a pointer into the state arena. Invalidated by Insert,
// which may grow the arena; callers must not retain it across Insert
// calls.
func (t *Tree[S]) State(id StateID) *State[S] { return &t.states[id] }

// StateCount returns the number of states in the arena.
func (t *Tree[S]) StateCount() int { return len(t.states) }

// Alphabet returns the PTA's input alphabet.
func (t *Tree[S]) Alphabet() *alphabet.Alphabet[S] { return t.alphabet }

// AccessSequenceOf rebuilds the word labelling the unique trie path from
// the root to s.
func (t *Tree[S]) AccessSequenceOf(s StateID) alphabet.Word[S] {
	var idx []int
	for s != t.Root() {
		st := &t.states[s]
		idx = append(idx, st.parentSym)
		s = st.parent
	}
	for i, j := 0, len(idx)-1; i < j; i, j = i+1, j-1 {
		idx[i], idx[j] = idx[j], idx[i]
	}
	return alphabet.FromIndices[S](idx)
}

// Insert adds the labeled sample (w, accept) to the trie, creating
// whatever intermediate states are missing. Fails with ConflictingSample
// if w was already inserted with the opposite label.
func (t *Tree[S]) Insert(w alphabet.Word[S], accept bool) error {
	cur := t.Root()
	for i := 0; i < w.Len(); i++ {
		sym := w.IndexAt(i)
		next := t.states[cur].trans[sym]
		if next == InvalidState {
			next = t.allocState(cur, sym)
		}
		cur = next
	}

	want := Reject
	if accept {
		want = Accept
	}
	s := &t.states[cur]
	if s.label != Unlabeled && s.label != want {
		return &ConflictingSample{Message: "word " + w.String() + " already inserted with the opposite label"}
	}
	s.label = want
	return nil
}

func (t *Tree[S]) allocState(parent StateID, parentSym int) StateID {
	id := StateID(len(t.states))
	trans := make([]StateID, len(t.states[parent].trans))
	for i := range trans {
		trans[i] = InvalidState
	}
	t.states = append(t.states, State[S]{
		id:        id,
		trans:     trans,
		parent:    parent,
		parentSym: parentSym,
	})
	t.states[parent].trans[parentSym] = id
	return id
}

// Init colors the root red and returns its immediate successors, newly
// colored blue.
func (t *Tree[S]) Init() []StateID {
	t.states[t.Root()].color = Red
	return t.colorBlueSuccessors(t.Root())
}

// colorBlueSuccessors colors s's immediate non-red, uncolored successors
// blue and returns them.
func (t *Tree[S]) colorBlueSuccessors(s StateID) []StateID {
	var blue []StateID
	st := &t.states[s]
	for _, c := range st.trans {
		if c == InvalidState {
			continue
		}
		cs := &t.states[c]
		if cs.color == None {
			cs.color = Blue
			blue = append(blue, c)
		}
	}
	return blue
}

// RedStates returns every state currently colored red, in arena
// (creation) order.
func (t *Tree[S]) RedStates() []StateID {
	var reds []StateID
	for i := range t.states {
		if t.states[i].color == Red {
			reds = append(reds, StateID(i))
		}
	}
	return reds
}

// Promote turns qb red and returns its immediate non-red successors,
// newly colored blue.
func (t *Tree[S]) Promote(qb StateID) []StateID {
	t.states[qb].color = Red
	return t.colorBlueSuccessors(qb)
}
