package ttt

import (
	"context"

	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/dtree"
	"github.com/fatimatuzzuhra/learnlib/hypothesis"
	"github.com/fatimatuzzuhra/learnlib/internal/sparse"
)

// resift re-sifts a non-tree transition, updating its target node and the
// DT incoming-list bookkeeping that goes with it: a node's incoming list
// is an intrusive list of the non-tree transitions currently pointing at
// it.
func (l *Learner[S]) resift(t hypothesis.TransitionID, hard bool) (dtree.NodeID, error) {
	tr := l.hyp.Transition(t)
	old := tr.TargetNode()
	src := l.hyp.State(tr.Source())
	asp := dtree.WordAccessSequence(src.AccessSequence().AppendSymbol(tr.Symbol()))

	node, err := l.tree.Sift(old, asp, hard, l.query)
	if err != nil {
		return dtree.InvalidNode, err
	}
	if node != old {
		l.tree.RemoveIncoming(old, dtree.TransitionRef(t))
		l.tree.AddIncoming(node, dtree.TransitionRef(t))
	}
	l.hyp.SetNonTreeTarget(t, node)
	l.refreshProperty(t)
	return node, nil
}

// refreshProperty updates t's cached output fingerprint from its current
// target, if that target is resolved to a known accepting-ness; otherwise
// it is left at its previous (possibly stale) value, since a transition
// pointing at an inner node or unlinked leaf has no known output yet.
func (l *Learner[S]) refreshProperty(t hypothesis.TransitionID) {
	tr := l.hyp.Transition(t)
	if tr.Kind() == hypothesis.Tree {
		l.hyp.SetProperty(t, l.hyp.State(tr.TargetState()).Accepting())
		return
	}
	node := l.tree.Node(tr.TargetNode())
	if node.IsLeaf() && node.State() != dtree.NoState {
		l.hyp.SetProperty(t, l.hyp.State(hypothesis.StateID(node.State())).Accepting())
	}
}

// closeTransitions drains the open-transitions worklist, soft-sifting each
// non-tree transition, and promotes any resulting unlinked leaf that has
// exactly one incoming transition into a brand-new hypothesis state.
// Promoting a state enqueues its own |Sigma| fresh transitions, so the
// whole process repeats until both worklists are empty.
func (l *Learner[S]) closeTransitions(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return &Cancelled{Err: err}
		}
		newLeaves := sparse.New[dtree.NodeID](4)

		for {
			t, ok := l.open.PopFront()
			if !ok {
				break
			}
			node, err := l.resift(t, false)
			if err != nil {
				return err
			}
			n := l.tree.Node(node)
			if n.IsLeaf() && n.State() == dtree.NoState && len(n.Incoming()) == 1 {
				newLeaves.Insert(node)
			}
		}

		if newLeaves.IsEmpty() {
			return nil
		}

		best, ok := l.pickShortestAccessSequence(newLeaves)
		if !ok {
			return nil
		}

		leaf := l.tree.Node(best)
		parentTransition := hypothesis.TransitionID(leaf.Incoming()[0])
		newState := l.hyp.CreateState(parentTransition)
		l.tree.RemoveIncoming(best, dtree.TransitionRef(parentTransition))
		l.hyp.SetDTLeaf(newState, best)
		if err := l.tree.LinkState(best, dtree.StateRef(newState)); err != nil {
			return err
		}

		accepting, err := l.oracle.Query(l.hyp.State(newState).AccessSequence(), alphabet.Empty[S]())
		if err != nil {
			return err
		}
		l.hyp.SetAccepting(newState, accepting)
		l.refreshProperty(parentTransition)

		l.enqueueNewTransitions(newState)
	}
}

// pickShortestAccessSequence scans newLeaves (in insertion order, so ties
// favor the one discovered first) for the leaf whose sole incoming
// transition would give the new state the shortest access sequence.
func (l *Learner[S]) pickShortestAccessSequence(newLeaves *sparse.Set[dtree.NodeID]) (dtree.NodeID, bool) {
	best := dtree.InvalidNode
	bestLen := -1
	for _, node := range newLeaves.Values() {
		n := l.tree.Node(node)
		if !n.IsLeaf() || n.State() != dtree.NoState || len(n.Incoming()) != 1 {
			continue
		}
		t := hypothesis.TransitionID(n.Incoming()[0])
		tr := l.hyp.Transition(t)
		length := l.hyp.State(tr.Source()).AccessSequence().Len() + 1
		if best == dtree.InvalidNode || length < bestLen {
			best, bestLen = node, length
		}
	}
	return best, best != dtree.InvalidNode
}

// requireSuccessor hard-sifts t, materializing a brand-new hypothesis state
// immediately (rather than deferring to the open-transitions worklist, the
// way closeTransitions does) if the resulting leaf has no linked state yet.
// Used by getDeterministicState, which needs a definite StateID right now.
func (l *Learner[S]) requireSuccessor(t hypothesis.TransitionID) (hypothesis.StateID, error) {
	tr := l.hyp.Transition(t)
	if tr.Kind() == hypothesis.Tree {
		return tr.TargetState(), nil
	}

	node, err := l.resift(t, true)
	if err != nil {
		return hypothesis.InvalidState, err
	}
	if s := l.tree.Node(node).State(); s != dtree.NoState {
		return hypothesis.StateID(s), nil
	}

	l.tree.RemoveIncoming(node, dtree.TransitionRef(t))
	newState := l.hyp.CreateState(t)
	l.hyp.SetDTLeaf(newState, node)
	if err := l.tree.LinkState(node, dtree.StateRef(newState)); err != nil {
		return hypothesis.InvalidState, err
	}

	accepting, err := l.oracle.Query(l.hyp.State(newState).AccessSequence(), alphabet.Empty[S]())
	if err != nil {
		return hypothesis.InvalidState, err
	}
	l.hyp.SetAccepting(newState, accepting)
	l.refreshProperty(t)

	l.enqueueNewTransitions(newState)
	return newState, nil
}

// getDeterministicState walks word from start through tree transitions
// directly and, for a non-tree transition whose current DT target is
// ambiguous (an inner node) or an as-yet-unlinked leaf, forces resolution
// via requireSuccessor, giving the definite StateID word deterministically
// reaches.
func (l *Learner[S]) getDeterministicState(start hypothesis.StateID, word alphabet.Word[S]) (hypothesis.StateID, error) {
	cur := start
	for i := 0; i < word.Len(); i++ {
		sym := word.IndexAt(i)
		t := l.hyp.State(cur).Transition(sym)
		tr := l.hyp.Transition(t)

		if tr.Kind() == hypothesis.Tree {
			cur = tr.TargetState()
			continue
		}

		node := l.tree.Node(tr.TargetNode())
		if node.IsLeaf() && node.State() != dtree.NoState {
			cur = hypothesis.StateID(node.State())
			continue
		}

		next, err := l.requireSuccessor(t)
		if err != nil {
			return hypothesis.InvalidState, err
		}
		cur = next
	}
	return cur, nil
}
