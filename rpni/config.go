package rpni

// ProcessingOrder selects the order the Driver dequeues blue states from
// its worklist.
type ProcessingOrder int

const (
	// Canonical orders by shortest access sequence first, breaking ties
	// lexicographically over alphabet indices. This is the recommended
	// default.
	Canonical ProcessingOrder = iota
	// FIFO processes blue states in the order they were first colored
	// blue (insertion order into the worklist), ignoring access-sequence
	// shape entirely.
	FIFO
	// LexMin orders purely lexicographically over alphabet indices,
	// without preferring shorter words first.
	LexMin
)

// String returns a human-readable order name.
func (o ProcessingOrder) String() string {
	switch o {
	case FIFO:
		return "FIFO"
	case LexMin:
		return "LexMin"
	default:
		return "Canonical"
	}
}

// Config holds the RPNI driver's tunable knobs as a per-package Config
// struct rather than a long constructor argument list.
type Config struct {
	// ProcessingOrder selects the blue-worklist dequeue order.
	// Default: Canonical.
	ProcessingOrder ProcessingOrder

	// Parallel, when true, evaluates candidate merges for the current
	// blue state against every red state concurrently (the PTA is
	// read-only during this scan). Default: false.
	Parallel bool

	// Deterministic, when true and combined with Parallel, reduces
	// concurrent merge candidates with an ordered (min red-index) fold
	// so repeated runs over identical input return byte-identical models.
	// When false under Parallel, the driver accepts whichever valid merge
	// its goroutines report first. Ignored when Parallel is false, since
	// a sequential scan is already first-in-iteration-order deterministic.
	// Default: true.
	Deterministic bool
}

// DefaultConfig returns the recommended default configuration: canonical
// ordering, sequential (non-parallel) merge evaluation.
func DefaultConfig() Config {
	return Config{
		ProcessingOrder: Canonical,
		Parallel:        false,
		Deterministic:   true,
	}
}
