package alphabet

import "fmt"

// Word is an immutable finite sequence of symbol indices over some Alphabet.
// Word stores indices (not raw symbols) so it needs no reference back to the
// Alphabet for Len/At/equality; callers resolve indices back to symbols via
// Alphabet.Symbol when needed.
//
// Prepend/Subword/Prefix/Suffix return views that share the underlying
// buffer where possible, the same zero-copy-slice idiom used elsewhere in
// this module for transition slices.
type Word[S comparable] struct {
	idx []int
}

// Empty is the zero-length word, the access sequence of the initial state.
func Empty[S comparable]() Word[S] {
	return Word[S]{}
}

// FromSymbols builds a Word by resolving each symbol through a.
func FromSymbols[S comparable](a *Alphabet[S], syms ...S) (Word[S], error) {
	idx := make([]int, len(syms))
	for i, s := range syms {
		n, err := a.IndexOf(s)
		if err != nil {
			return Word[S]{}, err
		}
		idx[i] = n
	}
	return Word[S]{idx: idx}, nil
}

// FromIndices builds a Word directly from already-resolved alphabet indices.
// Used internally where the index, not the symbol, is already in hand (e.g.
// composing a discriminator from a symbol index and a suffix word).
func FromIndices[S comparable](indices []int) Word[S] {
	cp := make([]int, len(indices))
	copy(cp, indices)
	return Word[S]{idx: cp}
}

// Len returns the word's length in symbols.
func (w Word[S]) Len() int {
	return len(w.idx)
}

// IndexAt returns the alphabet index of the symbol at position i.
func (w Word[S]) IndexAt(i int) int {
	return w.idx[i]
}

// SymbolAt resolves the symbol at position i through a.
func (w Word[S]) SymbolAt(a *Alphabet[S], i int) S {
	return a.Symbol(w.idx[i])
}

// Subword returns the view w[from:to], sharing storage with w.
func (w Word[S]) Subword(from, to int) Word[S] {
	return Word[S]{idx: w.idx[from:to]}
}

// Prefix returns the first n symbols of w.
func (w Word[S]) Prefix(n int) Word[S] {
	return w.Subword(0, n)
}

// Suffix returns the symbols of w starting at position i (inclusive).
func (w Word[S]) Suffix(i int) Word[S] {
	return w.Subword(i, w.Len())
}

// Prepend returns a new word consisting of idx followed by w. This always
// allocates since it cannot share w's backing array with a prior element.
func (w Word[S]) Prepend(idx int) Word[S] {
	out := make([]int, 0, w.Len()+1)
	out = append(out, idx)
	out = append(out, w.idx...)
	return Word[S]{idx: out}
}

// Append returns a new word consisting of w followed by suffix. The common
// case for composing a discriminator (symbol index + successor's
// discriminator) or an access sequence (parent access sequence + symbol).
func (w Word[S]) Append(suffix Word[S]) Word[S] {
	out := make([]int, 0, w.Len()+suffix.Len())
	out = append(out, w.idx...)
	out = append(out, suffix.idx...)
	return Word[S]{idx: out}
}

// AppendSymbol returns w with a single alphabet index appended.
func (w Word[S]) AppendSymbol(idx int) Word[S] {
	out := make([]int, 0, w.Len()+1)
	out = append(out, w.idx...)
	out = append(out, idx)
	return Word[S]{idx: out}
}

// Equal reports whether w and o denote the same sequence of indices.
func (w Word[S]) Equal(o Word[S]) bool {
	if w.Len() != o.Len() {
		return false
	}
	for i := range w.idx {
		if w.idx[i] != o.idx[i] {
			return false
		}
	}
	return true
}

// Indices exposes the raw index slice for callers that need to resolve an
// entire word against an Alphabet (e.g. the oracle boundary, which must
// translate indices back to symbols before calling out).
func (w Word[S]) Indices() []int {
	return w.idx
}

// String renders the word as its index sequence; a human-readable rendering
// over the alphabet's symbols requires the Alphabet and is left to callers
// via SymbolAt.
func (w Word[S]) String() string {
	if w.Len() == 0 {
		return "ε"
	}
	return fmt.Sprint(w.idx)
}
