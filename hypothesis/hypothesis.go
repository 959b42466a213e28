// Package hypothesis implements the mutable DFA the active learner (ttt)
// refines: states with per-symbol transitions, where a spanning subset of
// those transitions ("tree" transitions) gives every state a unique access
// sequence. States and transitions are addressed by stable arena IDs, not
// pointers.
package hypothesis

import (
	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/dtree"
)

// StateID identifies a hypothesis state within an Automaton's arena.
type StateID uint32

// InvalidState is the sentinel StateID meaning "no state".
const InvalidState StateID = 0xFFFFFFFF

// TransitionID identifies a transition within an Automaton's arena.
type TransitionID uint32

// InvalidTransition is the sentinel TransitionID meaning "no transition"
// (used for the initial state's non-existent parent transition).
const InvalidTransition TransitionID = 0xFFFFFFFF

// TransitionKind distinguishes tree transitions (which define a state's
// access sequence) from non-tree transitions (which point into the
// discrimination tree and must be sifted to resolve their real target).
type TransitionKind uint8

const (
	// NonTree transitions target a dtree.NodeID that has not yet been
	// confirmed to be a specific state's leaf.
	NonTree TransitionKind = iota
	// Tree transitions target a confirmed StateID and contribute to the
	// spanning arborescence that gives states their access sequences.
	Tree
)

// State is a single hypothesis automaton state.
type State[S comparable] struct {
	id        StateID
	trans     []TransitionID // one per alphabet symbol index
	dtLeaf    dtree.NodeID
	access    alphabet.Word[S]
	parent    TransitionID // the tree transition that created this state; InvalidTransition for the initial state
	accepting bool
}

// ID returns the state's handle.
func (s *State[S]) ID() StateID { return s.id }

// AccessSequence returns the word labelling the unique tree path from the
// initial state to s.
func (s *State[S]) AccessSequence() alphabet.Word[S] { return s.access }

// DTLeaf returns the discrimination-tree leaf this state is currently
// linked to.
func (s *State[S]) DTLeaf() dtree.NodeID { return s.dtLeaf }

// Transition returns the TransitionID for the given alphabet symbol index.
func (s *State[S]) Transition(symIdx int) TransitionID { return s.trans[symIdx] }

// Accepting reports whether s is a DFA accepting state.
func (s *State[S]) Accepting() bool { return s.accepting }

// Transition is a single per-symbol edge out of a state.
type Transition[S comparable] struct {
	id     TransitionID
	src    StateID
	symIdx int
	kind   TransitionKind
	tgt    StateID      // valid if kind == Tree
	node   dtree.NodeID // current DT node, valid if kind == NonTree
	// property caches the best currently-known output fingerprint of this
	// transition's target (the target's accepting-ness once resolved to a
	// state-linked leaf; false until then). Used by the Splitter's purely
	// property-based case without re-querying the oracle; for a Mealy
	// machine this would instead hold the output symbol.
	property bool
}

// ID returns the transition's handle.
func (t *Transition[S]) ID() TransitionID { return t.id }

// Source returns the transition's originating state.
func (t *Transition[S]) Source() StateID { return t.src }

// Symbol returns the alphabet index this transition fires on.
func (t *Transition[S]) Symbol() int { return t.symIdx }

// Kind reports whether this is a tree or non-tree transition.
func (t *Transition[S]) Kind() TransitionKind { return t.kind }

// TargetState returns the transition's target state. Valid only if
// Kind() == Tree.
func (t *Transition[S]) TargetState() StateID { return t.tgt }

// TargetNode returns the DT node this non-tree transition currently points
// to. Valid only if Kind() == NonTree.
func (t *Transition[S]) TargetNode() dtree.NodeID { return t.node }

// Property returns the transition's cached output fingerprint.
func (t *Transition[S]) Property() bool { return t.property }

// Automaton is the mutable hypothesis DFA under construction.
type Automaton[S comparable] struct {
	alphabet    *alphabet.Alphabet[S]
	states      []State[S]
	transitions []Transition[S]
	initial     StateID
}

// New creates an Automaton with no states yet; call CreateInitialState to
// seed it.
func New[S comparable](a *alphabet.Alphabet[S]) *Automaton[S] {
	return &Automaton[S]{alphabet: a, initial: InvalidState}
}

// Alphabet returns the automaton's input alphabet.
func (h *Automaton[S]) Alphabet() *alphabet.Alphabet[S] { return h.alphabet }

// Initial returns the initial state's ID, or InvalidState before
// CreateInitialState is called.
func (h *Automaton[S]) Initial() StateID { return h.initial }

// State returns a pointer into the state arena. Invalidated by any
// mutating method that may grow the arena (CreateInitialState,
// CreateState); callers must not retain it across those calls.
func (h *Automaton[S]) State(id StateID) *State[S] { return &h.states[id] }

// Transition returns a pointer into the transition arena. Invalidated by
// any mutating method that may grow the arena.
func (h *Automaton[S]) Transition(id TransitionID) *Transition[S] { return &h.transitions[id] }

// StateCount returns the number of states in the arena.
func (h *Automaton[S]) StateCount() int { return len(h.states) }

// States returns every live StateID, in creation order (which, given the
// ordering close_transitions enforces, is also increasing
// access-sequence length order).
func (h *Automaton[S]) States() []StateID {
	ids := make([]StateID, len(h.states))
	for i := range h.states {
		ids[i] = h.states[i].id
	}
	return ids
}

// CreateInitialState creates the initial state, whose access sequence is
// empty and which has no parent transition.
func (h *Automaton[S]) CreateInitialState() StateID {
	id := StateID(len(h.states))
	h.states = append(h.states, State[S]{
		id:     id,
		trans:  make([]TransitionID, h.alphabet.Size()),
		dtLeaf: dtree.InvalidNode,
		access: alphabet.Empty[S](),
		parent: InvalidTransition,
	})
	h.initial = id
	return id
}

// CreateState promotes parentTransition (currently non-tree) into a tree
// transition targeting a freshly created state, whose access sequence is
// parent.AccessSequence() . symbol(parentTransition.Symbol()).
func (h *Automaton[S]) CreateState(parentTransition TransitionID) StateID {
	pt := &h.transitions[parentTransition]
	parent := &h.states[pt.src]

	id := StateID(len(h.states))
	access := parent.access.AppendSymbol(pt.symIdx)
	h.states = append(h.states, State[S]{
		id:     id,
		trans:  make([]TransitionID, h.alphabet.Size()),
		dtLeaf: dtree.InvalidNode,
		access: access,
		parent: parentTransition,
	})

	pt = &h.transitions[parentTransition] // append above may have reallocated neither slice, but be defensive
	pt.kind = Tree
	pt.tgt = id
	return id
}

// SetDTLeaf records which discrimination-tree leaf s is currently linked
// to.
func (h *Automaton[S]) SetDTLeaf(s StateID, leaf dtree.NodeID) {
	h.states[s].dtLeaf = leaf
}

// SetAccepting records whether s is a DFA accepting state. Set once, when
// s is created, from a direct membership query on (access sequence, ε).
func (h *Automaton[S]) SetAccepting(s StateID, accepting bool) {
	h.states[s].accepting = accepting
}

// InitializeState creates |Sigma| non-tree transitions out of s, each
// pointing at dtRoot, meant to be enqueued into the open-transitions
// list. The caller (ttt.Learner) is responsible for enqueuing the
// returned IDs.
func (h *Automaton[S]) InitializeState(s StateID, dtRoot dtree.NodeID) []TransitionID {
	n := h.alphabet.Size()
	ids := make([]TransitionID, n)
	for sym := 0; sym < n; sym++ {
		id := TransitionID(len(h.transitions))
		h.transitions = append(h.transitions, Transition[S]{
			id:     id,
			src:    s,
			symIdx: sym,
			kind:   NonTree,
			node:   dtRoot,
		})
		h.states[s].trans[sym] = id
		ids[sym] = id
	}
	return ids
}

// SetNonTreeTarget repoints a non-tree transition at a new DT node
// (produced by a soft or hard sift).
func (h *Automaton[S]) SetNonTreeTarget(t TransitionID, node dtree.NodeID) {
	tr := &h.transitions[t]
	tr.kind = NonTree
	tr.node = node
}

// MakeTree converts t into a tree transition targeting tgt.
func (h *Automaton[S]) MakeTree(t TransitionID, tgt StateID) {
	tr := &h.transitions[t]
	tr.kind = Tree
	tr.tgt = tgt
}

// SetProperty updates a transition's cached output fingerprint.
func (h *Automaton[S]) SetProperty(t TransitionID, property bool) {
	h.transitions[t].property = property
}

// AccessSequenceOf is the hypothesis's implementation of the
// access-sequence transformer external interface: given a word,
// return the access sequence of the state that word deterministically
// reaches by following only already-resolved tree transitions as far as
// possible. It does not sift; non-tree transitions encountered make the
// result approximate (callers that need exact resolution use
// ttt.Learner.GetDeterministicState instead, which can sift).
func (h *Automaton[S]) AccessSequenceOf(w alphabet.Word[S]) alphabet.Word[S] {
	cur := h.initial
	for i := 0; i < w.Len(); i++ {
		t := &h.transitions[h.states[cur].trans[w.IndexAt(i)]]
		if t.kind != Tree {
			return h.states[cur].access.AppendSymbol(w.IndexAt(i)).Append(w.Suffix(i + 1))
		}
		cur = t.tgt
	}
	return h.states[cur].access
}
