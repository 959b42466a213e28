package rpni

import (
	"context"

	"github.com/fatimatuzzuhra/learnlib"
	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/pta"
)

// Sample is one labeled example: Word is accepted iff Accept is true.
type Sample[S comparable] struct {
	Word   alphabet.Word[S]
	Accept bool
}

// BuildPTA constructs a prefix-tree acceptor from samples, failing with
// *pta.ConflictingSample if two samples disagree on the same word's
// label. The returned tree has not yet had Init called; pass it to New.
func BuildPTA[S comparable](a *alphabet.Alphabet[S], samples []Sample[S]) (*pta.Tree[S], error) {
	t := pta.New(a)
	for _, s := range samples {
		if err := t.Insert(s.Word, s.Accept); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Learn is the convenience entry point: build a PTA from samples and run
// Blue-Fringe RPNI over it with cfg, returning the learned quotient
// automaton.
func Learn[S comparable](ctx context.Context, a *alphabet.Alphabet[S], samples []Sample[S], cfg Config) (*learnlib.Result[S], error) {
	t, err := BuildPTA(a, samples)
	if err != nil {
		return nil, err
	}
	return New(t, cfg, nil).Run(ctx)
}
