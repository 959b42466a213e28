package dtree

import "github.com/fatimatuzzuhra/learnlib/alphabet"

// LabelPredictor predicts, without any new oracle query, the boolean
// answer a linked leaf's state would give under the block's prospective
// final discriminator. The ttt package supplies this by either reading a
// transition's cached property (the purely property-based Splitter case)
// or walking the DT from the transition's current target up to the
// Splitter's succ_sep node (the discriminator-based case).
type LabelPredictor func(leafState StateRef) (bool, error)

// Finalize implements discriminator finalization: given a block root and
// its prospective final discriminator, either declares the block final in
// place (if its temporary discriminator already equals the final one) or
// rebuilds its subtree via extractSubtree per label and then declares it
// final.
//
// It returns the NodeIDs of any new block roots created by the
// restructuring (immediate children of block that are themselves temp
// inner nodes) and the TransitionRefs that were in block's incoming list,
// which the caller (ttt.Learner) must re-enqueue onto its open-transitions
// worklist.
func (t *Tree[S]) Finalize(block NodeID, finalDiscriminator alphabet.Word[S], predict LabelPredictor) (newBlockRoots []NodeID, reopened []TransitionRef, err error) {
	b := &t.nodes[block]
	if b.leaf || !b.temp {
		return nil, nil, &TreeError{Message: "Finalize called on a non-block node"}
	}

	if !b.discriminator.Equal(finalDiscriminator) {
		trueRoot, err := t.extractSubtree(block, predict, true)
		if err != nil {
			return nil, nil, err
		}
		falseRoot, err := t.extractSubtree(block, predict, false)
		if err != nil {
			return nil, nil, err
		}

		b = &t.nodes[block] // extractSubtree may have grown the arena
		incoming := b.incoming
		*b = Node[S]{
			id:            block,
			leaf:          false,
			discriminator: finalDiscriminator,
			parent:        b.parent,
			parentLabel:   b.parentLabel,
			incoming:      incoming,
		}
		if trueRoot != InvalidNode {
			b.children[idx(true)] = trueRoot
			b.hasChild[idx(true)] = true
			t.nodes[trueRoot].parent = block
			t.nodes[trueRoot].parentLabel = true
		}
		if falseRoot != InvalidNode {
			b.children[idx(false)] = falseRoot
			b.hasChild[idx(false)] = true
			t.nodes[falseRoot].parent = block
			t.nodes[falseRoot].parentLabel = false
		}
	}

	b = &t.nodes[block]
	b.temp = false
	reopened = b.incoming
	b.incoming = nil

	for _, lbl := range [2]bool{false, true} {
		if child, ok := b.Child(lbl); ok && !t.nodes[child].leaf && t.nodes[child].temp {
			newBlockRoots = append(newBlockRoots, child)
		}
	}
	return newBlockRoots, reopened, nil
}

// extractSubtree produces a reduced copy of old's subtree containing only
// the portion relevant to label: leaves whose predicted outcome matches
// label survive (reused in place, not copied, since a leaf belongs to
// exactly one label's projection); inner nodes whose both children survive
// are copied fresh (they cannot be shared between the true- and
// false-projections); inner nodes with only one surviving child collapse,
// hoisting that child up.
func (t *Tree[S]) extractSubtree(old NodeID, predict LabelPredictor, label bool) (NodeID, error) {
	n := &t.nodes[old]
	if n.leaf {
		if n.state == NoState {
			return InvalidNode, &TreeError{Message: "extractSubtree encountered an unlinked leaf"}
		}
		got, err := predict(n.state)
		if err != nil {
			return InvalidNode, err
		}
		if got == label {
			return old, nil
		}
		return InvalidNode, nil
	}

	var kept [2]NodeID
	count := 0
	for _, lbl := range [2]bool{false, true} {
		kept[idx(lbl)] = InvalidNode
		if child, ok := n.Child(lbl); ok {
			r, err := t.extractSubtree(child, predict, label)
			if err != nil {
				return InvalidNode, err
			}
			if r != InvalidNode {
				kept[idx(lbl)] = r
				count++
			}
		}
	}

	switch count {
	case 0:
		return InvalidNode, nil
	case 1:
		if kept[idx(false)] != InvalidNode {
			return kept[idx(false)], nil
		}
		return kept[idx(true)], nil
	}

	n = &t.nodes[old] // recursion may have grown the arena
	newID := t.allocInner(n.discriminator, InvalidNode, false, n.temp)
	nn := &t.nodes[newID]
	for _, lbl := range [2]bool{false, true} {
		c := kept[idx(lbl)]
		nn.children[idx(lbl)] = c
		nn.hasChild[idx(lbl)] = true
		t.nodes[c].parent = newID
		t.nodes[c].parentLabel = lbl
	}
	return newID, nil
}

func (t *Tree[S]) allocInner(d alphabet.Word[S], parent NodeID, parentLabel bool, temp bool) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, Node[S]{
		id:            id,
		leaf:          false,
		discriminator: d,
		parent:        parent,
		parentLabel:   parentLabel,
		temp:          temp,
	})
	return id
}
