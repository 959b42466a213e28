// Package acex implements abstract-counterexample analysis: given a
// monotone boolean-ish function over an index range, locate the single
// index where it flips. TTT uses this to binary- or linear-search a
// counterexample suffix for the exact position where the hypothesis and
// the target first disagree.
package acex

// Eff is the monotone effect function being analyzed: Eff(i) for
// i in [0, n]. Values need only support equality; D is typically bool but
// is left generic so Mealy-style output domains can reuse the same
// analyzers.
type Eff[D comparable] func(i int) (D, error)

// Strategy selects which analyzer implementation Analyze uses.
type Strategy int

const (
	// LinearForward scans i = 0, 1, 2, ... until a breakpoint is found.
	LinearForward Strategy = iota
	// LinearBackward scans i = n-1, n-2, ... until a breakpoint is found.
	LinearBackward
	// BinarySearch performs a Rivest-Schapire binary search over [lo, hi].
	BinarySearch
)

// String returns a human-readable strategy name.
func (s Strategy) String() string {
	switch s {
	case LinearForward:
		return "LinearForward"
	case LinearBackward:
		return "LinearBackward"
	case BinarySearch:
		return "BinarySearch"
	default:
		return "Unknown"
	}
}

// Analyzer locates the breakpoint of a monotone Eff over [0, n].
type Analyzer interface {
	// Analyze returns the index i in [0, n) such that Eff(i) != Eff(i+1).
	// Eff(0) and Eff(n) must already disagree; Analyze never calls eff
	// outside [0, n] and memoizes to avoid duplicate evaluations.
	Analyze(n int, eff Eff[bool]) (int, error)
}

// New returns the Analyzer for the given strategy.
func New(s Strategy) Analyzer {
	switch s {
	case LinearBackward:
		return linearBackward{}
	case BinarySearch:
		return binarySearch{}
	default:
		return linearForward{}
	}
}

// memo wraps an Eff[bool] with a cache so repeated probes of the same index
// (which binary search never does, but callers composing analyzers might)
// never re-invoke the underlying function.
type memo struct {
	eff    Eff[bool]
	values map[int]bool
}

func newMemo(eff Eff[bool]) *memo {
	return &memo{eff: eff, values: make(map[int]bool)}
}

func (m *memo) at(i int) (bool, error) {
	if v, ok := m.values[i]; ok {
		return v, nil
	}
	v, err := m.eff(i)
	if err != nil {
		return false, err
	}
	m.values[i] = v
	return v, nil
}
