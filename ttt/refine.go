package ttt

import (
	"context"

	"github.com/fatimatuzzuhra/learnlib/oracle"
)

// Refine processes one counterexample: the state the hypothesis reaches
// on ce.Prefix disagrees with ce.Expected for ce.Suffix, so that (state,
// suffix, expected) triple seeds the first splitState call; afterwards
// any output inconsistency the split exposed elsewhere in the hypothesis
// is found and resolved the same way, until none remain.
func (l *Learner[S]) Refine(ctx context.Context, ce *oracle.Counterexample[S]) error {
	if !l.started {
		return &IllegalState{Message: "Refine called before Start"}
	}

	state, err := l.getDeterministicState(l.hyp.Initial(), ce.Prefix)
	if err != nil {
		return err
	}
	final, err := l.getDeterministicState(state, ce.Suffix)
	if err != nil {
		return err
	}
	if l.hyp.State(final).Accepting() == ce.Expected {
		return &IllegalState{Message: "counterexample does not contradict the current hypothesis"}
	}

	inc := outputInconsistency[S]{state: state, suffix: ce.Suffix, expected: ce.Expected}

	for {
		if err := ctx.Err(); err != nil {
			return &Cancelled{Err: err}
		}
		if err := l.splitState(inc); err != nil {
			return err
		}
		if err := l.closeTransitions(ctx); err != nil {
			return err
		}
		for {
			did, err := l.finalizeAny()
			if err != nil {
				return err
			}
			if !did {
				break
			}
			if err := l.closeTransitions(ctx); err != nil {
				return err
			}
		}

		next, err := l.findOutputInconsistency()
		if err != nil {
			return err
		}
		if next == nil {
			return nil
		}
		inc = *next
	}
}

// findOutputInconsistency scans every live state and every ancestor of its
// DT leaf, comparing the oracle's answer for
// state.AccessSequence() . ancestor.Discriminator() against the branch
// label the state's leaf actually took below that ancestor. The shortest
// such mismatching discriminator wins; nil means the hypothesis is fully
// consistent with the discrimination tree.
func (l *Learner[S]) findOutputInconsistency() (*outputInconsistency[S], error) {
	var best *outputInconsistency[S]
	bestLen := -1

	for _, sid := range l.hyp.States() {
		state := l.hyp.State(sid)
		leaf := state.DTLeaf()

		cur := leaf
		for cur != l.tree.Root() {
			parent := l.tree.Node(cur).Parent()
			wantLabel := l.tree.Node(cur).ParentLabel()
			disc := l.tree.Node(parent).Discriminator()

			got, err := l.oracle.Query(state.AccessSequence(), disc)
			if err != nil {
				return nil, err
			}
			if got != wantLabel {
				if best == nil || disc.Len() < bestLen {
					best = &outputInconsistency[S]{state: sid, suffix: disc, expected: got}
					bestLen = disc.Len()
				}
			}
			cur = parent
		}
	}
	return best, nil
}
