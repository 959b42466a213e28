package rpni

import "github.com/fatimatuzzuhra/learnlib/pta"

// less reports whether the blue state at worklist index i should be
// dequeued before the one at index j, per d.cfg.ProcessingOrder.
func (d *Driver[S]) less(i, j int) bool {
	wi := d.pta.AccessSequenceOf(d.worklist[i])
	wj := d.pta.AccessSequenceOf(d.worklist[j])

	switch d.cfg.ProcessingOrder {
	case LexMin:
		return lexLess(wi.Indices(), wj.Indices())
	case Canonical:
		if wi.Len() != wj.Len() {
			return wi.Len() < wj.Len()
		}
		return lexLess(wi.Indices(), wj.Indices())
	default: // FIFO: never reorders; dequeue handled separately.
		return i < j
	}
}

// lexLess compares two alphabet-index sequences lexicographically; a
// shorter sequence that is a prefix of the other sorts first.
func lexLess(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// popNext removes and returns the next blue state per the configured
// processing order.
func (d *Driver[S]) popNext() pta.StateID {
	if d.cfg.ProcessingOrder == FIFO {
		qb := d.worklist[0]
		d.worklist = d.worklist[1:]
		return qb
	}
	best := 0
	for i := 1; i < len(d.worklist); i++ {
		if d.less(i, best) {
			best = i
		}
	}
	qb := d.worklist[best]
	d.worklist = append(d.worklist[:best], d.worklist[best+1:]...)
	return qb
}
