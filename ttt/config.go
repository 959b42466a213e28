package ttt

import "github.com/fatimatuzzuhra/learnlib/acex"

// Config holds the learner's tunable knobs as a per-package Config struct
// rather than a long constructor argument list.
type Config struct {
	// ACEXStrategy selects how split_state localizes an output
	// inconsistency within a counterexample suffix.
	ACEXStrategy acex.Strategy

	// OptimizeGlobalSplitter, when true, makes finalize_any compare every
	// pending block's candidate splitter and finalize only the globally
	// shortest one; when false (the default), it finalizes the first
	// block for which any splitter is found. Both are sound; the global
	// variant does fewer discriminator-length-driven redundant splits at
	// the cost of scanning every block on each call.
	OptimizeGlobalSplitter bool
}

// DefaultConfig returns the recommended default configuration:
// Rivest-Schapire binary search with the cheaper first-match splitter
// scan.
func DefaultConfig() Config {
	return Config{
		ACEXStrategy:           acex.BinarySearch,
		OptimizeGlobalSplitter: false,
	}
}
