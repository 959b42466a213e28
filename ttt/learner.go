// Package ttt implements the TTT active-learning algorithm: a discrimination
// tree (dtree) keeps a small set of distinguishing suffixes, a hypothesis
// automaton (hypothesis) is refined against it, and each counterexample
// localizes exactly one new distinguishing suffix via abstract-counterexample
// analysis (acex), after which any output inconsistencies the refinement
// exposed are resolved before the next counterexample is accepted.
//
// Learner is a struct wrapping several cooperating internal packages
// behind a small public method set (Start, Refine, Hypothesis), with the
// heavy lifting delegated to dtree and hypothesis.
package ttt

import (
	"context"

	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/dtree"
	"github.com/fatimatuzzuhra/learnlib/hypothesis"
	"github.com/fatimatuzzuhra/learnlib/internal/sparse"
	"github.com/fatimatuzzuhra/learnlib/oracle"
)

// Learner runs the TTT algorithm against a membership oracle, building up a
// hypothesis.Automaton a caller-supplied equivalence oracle can search for
// counterexamples against.
type Learner[S comparable] struct {
	alphabet *alphabet.Alphabet[S]
	oracle   oracle.Membership[S]
	cfg      Config

	hyp  *hypothesis.Automaton[S]
	tree *dtree.Tree[S]

	open      *sparse.Set[hypothesis.TransitionID]
	blockList *sparse.Set[dtree.NodeID]

	started bool
}

// New creates a Learner over the given alphabet and membership oracle. Call
// Start before Refine or Hypothesis.
func New[S comparable](a *alphabet.Alphabet[S], m oracle.Membership[S], cfg Config) *Learner[S] {
	return &Learner[S]{
		alphabet:  a,
		oracle:    m,
		cfg:       cfg,
		hyp:       hypothesis.New(a),
		tree:      dtree.New[S](),
		open:      sparse.New[hypothesis.TransitionID](a.Size()),
		blockList: sparse.New[dtree.NodeID](4),
	}
}

// query adapts the Learner's membership oracle to dtree's Query signature.
func (l *Learner[S]) query(prefix, suffix alphabet.Word[S]) (bool, error) {
	return l.oracle.Query(prefix, suffix)
}

// Start builds the one-state hypothesis and closes it into a consistent
// DFA: create the initial state, sift its empty access sequence into the
// DT root, link it, initialize its |Sigma| non-tree transitions, and
// close them.
func (l *Learner[S]) Start(ctx context.Context) error {
	if l.started {
		return &IllegalState{Message: "Start called twice"}
	}
	if err := ctx.Err(); err != nil {
		return &Cancelled{Err: err}
	}

	init := l.hyp.CreateInitialState()
	leaf, err := l.tree.Sift(l.tree.Root(), dtree.WordAccessSequence(alphabet.Empty[S]()), true, l.query)
	if err != nil {
		return err
	}
	if err := l.tree.LinkState(leaf, dtree.StateRef(init)); err != nil {
		return err
	}
	l.hyp.SetDTLeaf(init, leaf)

	accepting, err := l.oracle.Query(alphabet.Empty[S](), alphabet.Empty[S]())
	if err != nil {
		return err
	}
	l.hyp.SetAccepting(init, accepting)

	l.enqueueNewTransitions(init)

	if err := l.closeTransitions(ctx); err != nil {
		return err
	}
	l.started = true
	return nil
}

// enqueueNewTransitions initializes s's |Sigma| non-tree transitions
// (pointing at the DT root) and enqueues them onto the open worklist.
func (l *Learner[S]) enqueueNewTransitions(s hypothesis.StateID) {
	root := l.tree.Root()
	for _, id := range l.hyp.InitializeState(s, root) {
		l.tree.AddIncoming(root, dtree.TransitionRef(id))
		l.open.Insert(id)
	}
}

// Hypothesis returns the current learned automaton. It does not itself
// implement oracle.DFAView; View wraps the learner as one for use by an
// equivalence oracle.
func (l *Learner[S]) Hypothesis() *hypothesis.Automaton[S] { return l.hyp }

// Alphabet returns the learner's input alphabet.
func (l *Learner[S]) Alphabet() *alphabet.Alphabet[S] { return l.alphabet }

// View wraps the Learner as an oracle.DFAView.
func (l *Learner[S]) View() oracle.DFAView[S] { return view[S]{l} }

type view[S comparable] struct{ l *Learner[S] }

func (v view[S]) InitialState() int { return int(v.l.hyp.Initial()) }
func (v view[S]) NumStates() int    { return v.l.hyp.StateCount() }

// Transition forces full resolution of the transition (sifting, and
// materializing a new state, if needed) rather than assuming the
// hypothesis is already fully closed: an equivalence oracle must be able
// to walk the DFAView to any depth regardless of how much of the
// discrimination tree close_transitions has drained so far.
func (v view[S]) Transition(state int, symIdx int) int {
	t := v.l.hyp.State(hypothesis.StateID(state)).Transition(symIdx)
	s, err := v.l.requireSuccessor(t)
	if err != nil {
		panic(err)
	}
	return int(s)
}

func (v view[S]) Accepting(state int) bool {
	return v.l.hyp.State(hypothesis.StateID(state)).Accepting()
}

// Predict returns the hypothesis's current answer for w, resolving any
// non-tree transitions along the way.
func (l *Learner[S]) Predict(w alphabet.Word[S]) (bool, error) {
	s, err := l.getDeterministicState(l.hyp.Initial(), w)
	if err != nil {
		return false, err
	}
	return l.hyp.State(s).Accepting(), nil
}

// TransformAccessSequence resolves w to the access sequence of the
// hypothesis state it deterministically reaches, sifting as needed.
func (l *Learner[S]) TransformAccessSequence(w alphabet.Word[S]) (alphabet.Word[S], error) {
	s, err := l.getDeterministicState(l.hyp.Initial(), w)
	if err != nil {
		return alphabet.Word[S]{}, err
	}
	return l.hyp.State(s).AccessSequence(), nil
}
