package ttt

import (
	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/dtree"
	"github.com/fatimatuzzuhra/learnlib/hypothesis"
)

// splitter is a candidate discriminator-finalization choice for a block:
// either a purely property-based split on symIdx (succSep == InvalidNode)
// or a discriminator-based split whose finalized discriminator is
// symIdx . succSep.Discriminator().
type splitter struct {
	symIdx  int
	succSep dtree.NodeID
	length  int // the finalized discriminator's length, for tie-breaking across blocks
}

// finalizeAny finalizes one pending block's discriminator and returns
// whether it did so. With Config.OptimizeGlobalSplitter it compares every
// block's candidate splitter and finalizes only the block with the
// globally shortest resulting discriminator; otherwise it finalizes the
// first block for which any splitter can be found.
func (l *Learner[S]) finalizeAny() (bool, error) {
	blocks := l.blockList.Values()

	if !l.cfg.OptimizeGlobalSplitter {
		for _, block := range blocks {
			sp, ok, err := l.findSplitter(block)
			if err != nil {
				return false, err
			}
			if ok {
				return true, l.finalizeBlock(block, sp)
			}
		}
		return false, nil
	}

	bestBlock := dtree.InvalidNode
	var best splitter
	for _, block := range blocks {
		sp, ok, err := l.findSplitter(block)
		if err != nil {
			return false, err
		}
		if !ok {
			continue
		}
		if bestBlock == dtree.InvalidNode || sp.length < best.length {
			bestBlock, best = block, sp
		}
	}
	if bestBlock == dtree.InvalidNode {
		return false, nil
	}
	return true, l.finalizeBlock(bestBlock, best)
}

// findSplitter implements per-block splitter selection: for
// each input symbol, a property disagreement among the block's states
// wins immediately (its one-symbol discriminator is never beaten), but
// only when every one of those transitions targets a state-linked leaf,
// so each property is the target's known accepting-ness; otherwise the least common ancestor of the states' current transition
// targets is a discriminator-based candidate if it is a finalized
// (non-temp) inner node. Ties among discriminator-based candidates break
// on smallest symbol index.
func (l *Learner[S]) findSplitter(block dtree.NodeID) (splitter, bool, error) {
	leaves := l.blockLeaves(block)
	if len(leaves) == 0 {
		return splitter{}, false, nil
	}

	n := l.alphabet.Size()
	best := splitter{symIdx: -1}

	for sym := 0; sym < n; sym++ {
		var propVal bool
		sawProp := false
		disagree, unknown := false, false
		targets := make([]dtree.NodeID, 0, len(leaves))

		for _, leaf := range leaves {
			state := hypothesis.StateID(l.tree.Node(leaf).State())
			tr := l.hyp.Transition(l.hyp.State(state).Transition(sym))
			if tn := l.tree.Node(l.transitionTargetNode(tr)); !tn.IsLeaf() || tn.State() == dtree.NoState {
				unknown = true
			}
			if !sawProp {
				propVal, sawProp = tr.Property(), true
			} else if tr.Property() != propVal {
				disagree = true
			}
			targets = append(targets, l.transitionTargetNode(tr))
		}

		if disagree && !unknown {
			return splitter{symIdx: sym, succSep: dtree.InvalidNode, length: 1}, true, nil
		}

		lca := targets[0]
		for _, t := range targets[1:] {
			lca = l.tree.LCA(lca, t)
		}
		lnode := l.tree.Node(lca)
		if lnode.IsLeaf() || lnode.IsTemp() {
			continue
		}
		length := lnode.Discriminator().Len() + 1
		if best.symIdx == -1 || length < best.length {
			best = splitter{symIdx: sym, succSep: lca, length: length}
		}
	}

	if best.symIdx == -1 {
		return splitter{}, false, nil
	}
	return best, true, nil
}

// blockLeaves collects the block subtree's leaves, skipping (and thereby
// disqualifying the whole block for now) if any leaf is still unlinked:
// such a leaf was created by a split but nothing has sifted into it yet,
// so its eventual state and hence its transition properties are unknown.
func (l *Learner[S]) blockLeaves(block dtree.NodeID) []dtree.NodeID {
	var leaves []dtree.NodeID
	var incomplete bool
	var walk func(id dtree.NodeID)
	walk = func(id dtree.NodeID) {
		n := l.tree.Node(id)
		if n.IsLeaf() {
			if n.State() == dtree.NoState {
				incomplete = true
				return
			}
			leaves = append(leaves, id)
			return
		}
		if c, ok := n.Child(true); ok {
			walk(c)
		}
		if c, ok := n.Child(false); ok {
			walk(c)
		}
	}
	walk(block)
	if incomplete {
		return nil
	}
	return leaves
}

func (l *Learner[S]) transitionTargetNode(tr *hypothesis.Transition[S]) dtree.NodeID {
	if tr.Kind() == hypothesis.Tree {
		return l.hyp.State(tr.TargetState()).DTLeaf()
	}
	return tr.TargetNode()
}

// finalizeBlock builds the final discriminator and label predictor for sp
// and applies dtree.Finalize, re-enqueuing the block-list and
// open-transitions effects it reports.
func (l *Learner[S]) finalizeBlock(block dtree.NodeID, sp splitter) error {
	symWord := alphabet.FromIndices[S]([]int{sp.symIdx})
	var finalDisc alphabet.Word[S]
	if sp.succSep == dtree.InvalidNode {
		finalDisc = symWord
	} else {
		finalDisc = symWord.Append(l.tree.Node(sp.succSep).Discriminator())
	}

	predict := func(s dtree.StateRef) (bool, error) {
		tr := l.hyp.Transition(l.hyp.State(hypothesis.StateID(s)).Transition(sp.symIdx))
		if sp.succSep == dtree.InvalidNode {
			return tr.Property(), nil
		}
		target := l.transitionTargetNode(tr)
		return l.tree.BranchFrom(sp.succSep, target)
	}

	newRoots, reopened, err := l.tree.Finalize(block, finalDisc, predict)
	if err != nil {
		return err
	}

	l.blockList.Remove(block)
	for _, r := range newRoots {
		l.blockList.Insert(r)
	}
	for _, ref := range reopened {
		l.open.Insert(hypothesis.TransitionID(ref))
	}
	return nil
}
