package ttt

import (
	"errors"

	"github.com/fatimatuzzuhra/learnlib/acex"
	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/dtree"
	"github.com/fatimatuzzuhra/learnlib/hypothesis"
)

// outputInconsistency is a (state, suffix, expected) triple witnessing that
// the target disagrees with the hypothesis's prediction for
// state.AccessSequence() . suffix.
type outputInconsistency[S comparable] struct {
	state    hypothesis.StateID
	suffix   alphabet.Word[S]
	expected bool
}

// splitState localizes the exact symbol position within inc.suffix where
// the disagreement arises (via acex), then splits the discrimination-tree
// leaf of the hypothesis state reached at that position into two temporary
// leaves, one keeping the old state's identity and one seeding a new state.
func (l *Learner[S]) splitState(inc outputInconsistency[S]) error {
	n := inc.suffix.Len()

	m := newEffMemo(inc.expected)
	eff := func(i int) (bool, error) {
		if i == 0 {
			return inc.expected, nil
		}
		if v, ok := m.get(i); ok {
			return v, nil
		}
		state, err := l.getDeterministicState(inc.state, inc.suffix.Prefix(i))
		if err != nil {
			return false, err
		}
		v, err := l.oracle.Query(l.hyp.State(state).AccessSequence(), inc.suffix.Suffix(i))
		if err != nil {
			return false, err
		}
		m.put(i, v)
		return v, nil
	}

	analyzer := acex.New(l.cfg.ACEXStrategy)
	k, err := analyzer.Analyze(n, eff)
	if errors.Is(err, acex.ErrNotMonotone) {
		return &OracleInconsistency{Message: err.Error()}
	}
	if err != nil {
		return err
	}

	pred, err := l.getDeterministicState(inc.state, inc.suffix.Prefix(k))
	if err != nil {
		return err
	}
	succ, err := l.getDeterministicState(inc.state, inc.suffix.Prefix(k+1))
	if err != nil {
		return err
	}
	sym := inc.suffix.IndexAt(k)
	splitSuffix := inc.suffix.Suffix(k + 1)

	oldOut, err := eff(k + 1)
	if err != nil {
		return err
	}
	newOut, err := eff(k)
	if err != nil {
		return err
	}

	t := l.hyp.State(pred).Transition(sym)
	l.tree.RemoveIncoming(l.hyp.Transition(t).TargetNode(), dtree.TransitionRef(t))
	newState := l.hyp.CreateState(t)

	oldLeaf := l.hyp.State(succ).DTLeaf()
	leafForOld, leafForNew, err := l.tree.Split(oldLeaf, splitSuffix, oldOut, newOut, true)
	if err != nil {
		return err
	}

	if err := l.tree.LinkState(leafForOld, dtree.StateRef(succ)); err != nil {
		return err
	}
	l.hyp.SetDTLeaf(succ, leafForOld)
	if err := l.tree.LinkState(leafForNew, dtree.StateRef(newState)); err != nil {
		return err
	}
	l.hyp.SetDTLeaf(newState, leafForNew)
	accepting, err := l.oracle.Query(l.hyp.State(newState).AccessSequence(), alphabet.Empty[S]())
	if err != nil {
		return err
	}
	l.hyp.SetAccepting(newState, accepting)
	l.refreshProperty(t)
	l.enqueueNewTransitions(newState)

	parent := l.tree.Node(oldLeaf).Parent()
	if parent == dtree.InvalidNode || !l.tree.Node(parent).IsTemp() {
		l.blockList.Insert(oldLeaf)
	}
	return nil
}

// effMemo caches eff(i) values computed during a single splitState call so
// the breakpoint's neighbouring values (needed again after Analyze
// returns) are never re-queried against the oracle.
type effMemo struct {
	values map[int]bool
}

func newEffMemo(atZero bool) *effMemo {
	return &effMemo{values: map[int]bool{0: atZero}}
}

func (m *effMemo) get(i int) (bool, bool) {
	v, ok := m.values[i]
	return v, ok
}

func (m *effMemo) put(i int, v bool) {
	m.values[i] = v
}
