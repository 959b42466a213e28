package acex

import "errors"

// ErrNotMonotone indicates Eff(0) and Eff(n) agreed, so no breakpoint
// exists in the claimed range. Surfaced by TTT as OracleInconsistency: the
// membership oracle answered two queries in a way that violates the
// invariant the analyzer was built to exploit.
var ErrNotMonotone = errors.New("acex: effect function is not monotone over the given range")
