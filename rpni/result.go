package rpni

import (
	"github.com/fatimatuzzuhra/learnlib"
	"github.com/fatimatuzzuhra/learnlib/pta"
)

// result builds the quotient automaton from the fully-folded PTA: every
// red state becomes a Result state, compacted to 0..len(reds)-1 in arena
// (creation) order, with the root (always red after Init) mapped to
// index 0. An extra non-accepting sink state absorbs every transition the
// samples left undefined, making the emitted automaton total the way
// Result requires. The sink is always emitted, even when the samples
// define every (state, symbol) pair and nothing reaches it.
func (d *Driver[S]) result() *learnlib.Result[S] {
	reds := d.pta.RedStates()
	idx := make(map[pta.StateID]int, len(reds))
	for i, r := range reds {
		idx[r] = i
	}

	size := d.pta.Alphabet().Size()
	sink := len(reds)
	n := len(reds) + 1

	trans := make([][]int, n)
	accepting := make([]bool, n)
	for i, r := range reds {
		row := make([]int, size)
		st := d.pta.State(r)
		for sym := 0; sym < size; sym++ {
			tgt := st.Transition(sym)
			if tgt == pta.InvalidState {
				row[sym] = sink
				continue
			}
			j, ok := idx[tgt]
			if !ok {
				// Every state reachable from a red state is, once the
				// worklist has drained, itself either folded into a red
				// state or promoted to one; this is unreachable in a
				// correctly-drained run but routed to the sink rather
				// than panicking.
				j = sink
			}
			row[sym] = j
		}
		trans[i] = row
		accepting[i] = st.Label() == pta.Accept
	}

	sinkRow := make([]int, size)
	for sym := range sinkRow {
		sinkRow[sym] = sink
	}
	trans[sink] = sinkRow

	return learnlib.NewResult(d.pta.Alphabet(), idx[d.pta.Root()], trans, accepting)
}
