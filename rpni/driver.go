// Package rpni implements the Blue-Fringe RPNI passive learner: it drains
// a worklist of blue prefix-tree-acceptor states, trying a fold-merge into
// each red state in the configured order before promoting the blue state
// to red if no merge is valid, until the PTA (pta.Tree) is fully folded
// into the quotient DFA.
//
package rpni

import (
	"context"
	"sync"

	"github.com/fatimatuzzuhra/learnlib"
	"github.com/fatimatuzzuhra/learnlib/pta"
)

// Decider approves or rejects a staged Merge ("decide_on_valid_merge").
// Must be pure: it may be called concurrently across red-state
// candidates during a parallel scan, and must depend only on m, never
// on external state or call order.
type Decider[S comparable] func(m *pta.Merge[S]) bool

// AcceptAny is the default Decider: any merge pta.TryMerge staged (i.e.
// one that did not already fail on a label conflict) is accepted.
func AcceptAny[S comparable](m *pta.Merge[S]) bool { return m != nil }

// Driver runs Blue-Fringe RPNI over a prefix-tree acceptor.
type Driver[S comparable] struct {
	pta      *pta.Tree[S]
	cfg      Config
	decider  Decider[S]
	worklist []pta.StateID
	started  bool
}

// New creates a Driver over t. t must not have had Init called yet; New
// calls it, coloring the root red and seeding the worklist with its
// immediate successors as blue.
//
// decider may be nil, in which case AcceptAny is used.
func New[S comparable](t *pta.Tree[S], cfg Config, decider Decider[S]) *Driver[S] {
	if decider == nil {
		decider = AcceptAny[S]
	}
	d := &Driver[S]{pta: t, cfg: cfg, decider: decider}
	d.worklist = t.Init()
	return d
}

// Run drains the blue worklist: for each dequeued blue state, it tries a
// merge into every red state (honoring the configured parallelism and
// determinism knobs) and either commits the first accepted merge or
// promotes the blue state to red, until the worklist is empty. It then
// emits the quotient automaton as a Result.
//
// Cancellation is cooperative, checked between blue dequeues only; a
// cancelled run returns the Cancelled error with the PTA left in an
// invariant-consistent (possibly non-minimal) state.
func (d *Driver[S]) Run(ctx context.Context) (*learnlib.Result[S], error) {
	if d.started {
		return nil, &IllegalState{Message: "Run called twice"}
	}
	d.started = true

	for len(d.worklist) > 0 {
		if err := ctx.Err(); err != nil {
			return nil, &Cancelled{Err: err}
		}

		qb := d.popNext()
		if m := d.findMerge(qb); m != nil {
			d.worklist = append(d.worklist, d.pta.Apply(m)...)
		} else {
			d.worklist = append(d.worklist, d.pta.Promote(qb)...)
		}
	}

	return d.result(), nil
}

// findMerge tries qb against every red state in arena order, returning the
// first Decider-accepted Merge, or nil if none is valid.
func (d *Driver[S]) findMerge(qb pta.StateID) *pta.Merge[S] {
	reds := d.pta.RedStates()
	if !d.cfg.Parallel {
		for _, qr := range reds {
			if m := d.pta.TryMerge(qr, qb); m != nil && d.decider(m) {
				return m
			}
		}
		return nil
	}
	return d.findMergeParallel(qb, reds)
}

// findMergeParallel scans every red state concurrently; the PTA is
// read-only during the scan (pta.Tree.TryMerge never mutates), so this is
// a pure parallel fold over independent candidates, with an associative
// min-by-index combinator in deterministic mode.
func (d *Driver[S]) findMergeParallel(qb pta.StateID, reds []pta.StateID) *pta.Merge[S] {
	if d.cfg.Deterministic {
		results := make([]*pta.Merge[S], len(reds))
		var wg sync.WaitGroup
		for i, qr := range reds {
			wg.Add(1)
			go func(i int, qr pta.StateID) {
				defer wg.Done()
				if m := d.pta.TryMerge(qr, qb); m != nil && d.decider(m) {
					results[i] = m
				}
			}(i, qr)
		}
		wg.Wait()
		// Ordered (min red-index) reduce: reproducible given identical
		// input, independent of goroutine completion order.
		for _, m := range results {
			if m != nil {
				return m
			}
		}
		return nil
	}

	// Non-deterministic mode: the first goroutine to report a valid
	// merge wins, regardless of red-state index.
	found := make(chan *pta.Merge[S], len(reds))
	for _, qr := range reds {
		go func(qr pta.StateID) {
			if m := d.pta.TryMerge(qr, qb); m != nil && d.decider(m) {
				found <- m
				return
			}
			found <- nil
		}(qr)
	}
	for range reds {
		if m := <-found; m != nil {
			return m
		}
	}
	return nil
}
