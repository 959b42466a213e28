package dtree

import "github.com/fatimatuzzuhra/learnlib/alphabet"

// Split converts leaf into an inner node with the given (possibly
// temporary) discriminator and two fresh leaves.
//
// The converted node keeps its prior incoming list (still a valid ancestor
// of whatever those transitions ultimately resolve to) and its parent
// linkage; its former leaf-only state, if any, is the caller's
// responsibility to re-link onto whichever of the two new leaves should
// keep that state's identity.
func (t *Tree[S]) Split(leaf NodeID, discriminator alphabet.Word[S], outA, outB bool, temp bool) (leafA, leafB NodeID, err error) {
	n := &t.nodes[leaf]
	if !n.leaf {
		return InvalidNode, InvalidNode, &TreeError{Message: "Split called on a non-leaf node"}
	}
	if outA == outB {
		return InvalidNode, InvalidNode, &TreeError{Message: "Split requires two distinct outcomes"}
	}

	parent, parentLabel, incoming := n.parent, n.parentLabel, n.incoming
	*n = Node[S]{
		id:            leaf,
		leaf:          false,
		discriminator: discriminator,
		temp:          temp,
		parent:        parent,
		parentLabel:   parentLabel,
		incoming:      incoming,
	}

	leafA = t.allocLeaf(leaf, outA)
	leafB = t.allocLeaf(leaf, outB)
	n = &t.nodes[leaf] // allocLeaf may have resliced the arena
	n.children[idx(outA)] = leafA
	n.hasChild[idx(outA)] = true
	n.children[idx(outB)] = leafB
	n.hasChild[idx(outB)] = true
	return leafA, leafB, nil
}
