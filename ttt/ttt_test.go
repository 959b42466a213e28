package ttt

import (
	"context"
	"testing"

	"github.com/fatimatuzzuhra/learnlib/acex"
	"github.com/fatimatuzzuhra/learnlib/alphabet"
	"github.com/fatimatuzzuhra/learnlib/dtree"
	"github.com/fatimatuzzuhra/learnlib/oracle"
)

func mustAlphabet(t *testing.T, syms ...rune) *alphabet.Alphabet[rune] {
	t.Helper()
	a, err := alphabet.New(syms...)
	if err != nil {
		t.Fatalf("alphabet.New(%v): %v", syms, err)
	}
	return a
}

func mustWord(t *testing.T, a *alphabet.Alphabet[rune], s string) alphabet.Word[rune] {
	t.Helper()
	w, err := alphabet.FromSymbols(a, []rune(s)...)
	if err != nil {
		t.Fatalf("FromSymbols(%q): %v", s, err)
	}
	return w
}

func membershipOf(target func(idx []int) bool) oracle.MembershipFunc[rune] {
	return func(prefix, suffix alphabet.Word[rune]) (bool, error) {
		idx := make([]int, 0, prefix.Len()+suffix.Len())
		idx = append(idx, prefix.Indices()...)
		idx = append(idx, suffix.Indices()...)
		return target(idx), nil
	}
}

// bfsCounterexample performs a BFS up to depth maxLen for a word where the
// hypothesis disagrees with target, entirely in terms of Learner.Predict
// (package oracle defines only the Equivalence interface, with no
// implementation; that collaborator is out of scope here).
func bfsCounterexample(t *testing.T, l *Learner[rune], a *alphabet.Alphabet[rune], target func(idx []int) bool, maxLen int) *oracle.Counterexample[rune] {
	t.Helper()
	n := a.Size()
	queue := [][]int{{}}
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		w := alphabet.FromIndices[rune](idx)
		got, err := l.Predict(w)
		if err != nil {
			t.Fatalf("Predict(%v): %v", idx, err)
		}
		want := target(idx)
		if got != want {
			return &oracle.Counterexample[rune]{Prefix: alphabet.Empty[rune](), Suffix: w, Expected: want}
		}

		if len(idx) < maxLen {
			for s := 0; s < n; s++ {
				next := make([]int, len(idx)+1)
				copy(next, idx)
				next[len(idx)] = s
				queue = append(queue, next)
			}
		}
	}
	return nil
}

// learnUntilConverged drives Refine with BFS-found counterexamples until
// none remain (or maxRounds is exceeded, which fails the test), returning
// the number of counterexample rounds it took.
func learnUntilConverged(t *testing.T, l *Learner[rune], a *alphabet.Alphabet[rune], target func(idx []int) bool, maxLen, maxRounds int) int {
	t.Helper()
	rounds := 0
	for {
		ce := bfsCounterexample(t, l, a, target, maxLen)
		if ce == nil {
			return rounds
		}
		rounds++
		if rounds > maxRounds {
			t.Fatalf("did not converge within %d counterexample rounds", maxRounds)
		}
		if err := l.Refine(context.Background(), ce); err != nil {
			t.Fatalf("Refine(round %d): %v", rounds, err)
		}
	}
}

// countReachable walks the discrimination tree from its root, counting
// live leaves and inner nodes (any binary tree has exactly leaves-1 inner
// nodes, independent of which nodes happen to still be temp).
func countReachable(tree *dtree.Tree[rune], id dtree.NodeID) (leaves, inner int) {
	n := tree.Node(id)
	if n.IsLeaf() {
		return 1, 0
	}
	inner = 1
	if c, ok := n.Child(true); ok {
		l, i := countReachable(tree, c)
		leaves += l
		inner += i
	}
	if c, ok := n.Child(false); ok {
		l, i := countReachable(tree, c)
		leaves += l
		inner += i
	}
	return leaves, inner
}

func TestStartCreatesSingleStateHypothesis(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	l := New[rune](a, membershipOf(func([]int) bool { return false }), DefaultConfig())
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if l.Hypothesis().StateCount() != 1 {
		t.Fatalf("StateCount = %d, want 1", l.Hypothesis().StateCount())
	}
	if l.Hypothesis().State(l.Hypothesis().Initial()).Accepting() {
		t.Error("initial state should not be accepting for an always-false oracle")
	}
	if err := l.Start(context.Background()); err == nil {
		t.Error("second Start() call should return IllegalState")
	}
}

func TestRefineBeforeStartIsIllegalState(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	l := New[rune](a, membershipOf(func([]int) bool { return false }), DefaultConfig())
	ce := &oracle.Counterexample[rune]{Suffix: mustWord(t, a, "a"), Expected: false}
	if err := l.Refine(context.Background(), ce); err == nil {
		t.Error("Refine before Start should return IllegalState")
	}
}

// TestScenarioAStar learns the language a*.
func TestScenarioAStar(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	bIdx, _ := a.IndexOf('b')
	target := func(idx []int) bool {
		for _, s := range idx {
			if s != 0 {
				return false
			}
		}
		return true
	}

	l := New[rune](a, membershipOf(target), DefaultConfig())
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	learnUntilConverged(t, l, a, target, 6, 10)

	if got := l.Hypothesis().StateCount(); got != 2 {
		t.Fatalf("StateCount = %d, want 2", got)
	}
	init := l.Hypothesis().Initial()
	if !l.Hypothesis().State(init).Accepting() {
		t.Error("initial state should be accepting")
	}

	sinkT := l.Hypothesis().State(init).Transition(bIdx)
	sink, err := l.requireSuccessor(sinkT)
	if err != nil {
		t.Fatalf("requireSuccessor: %v", err)
	}
	if l.Hypothesis().State(sink).Accepting() {
		t.Error("the sink state reached on 'b' should not be accepting")
	}
	if sinkB, err := l.requireSuccessor(l.Hypothesis().State(sink).Transition(bIdx)); err != nil || sinkB != sink {
		t.Errorf("sink should be closed under 'b': got %v, err %v", sinkB, err)
	}

	for _, s := range []string{"", "a", "aaaa", "b", "ab", "ba", "aab"} {
		w := mustWord(t, a, s)
		got, err := l.Predict(w)
		if err != nil {
			t.Fatalf("Predict(%q): %v", s, err)
		}
		if want := target(w.Indices()); got != want {
			t.Errorf("Predict(%q) = %v, want %v", s, got, want)
		}
	}
}

// TestScenarioEvenACountBinarySearch learns the language of strings with an
// even number of a's, exercising the binary-search ACEX strategy.
func TestScenarioEvenACountBinarySearch(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	target := func(idx []int) bool {
		count := 0
		for _, s := range idx {
			if s == 0 {
				count++
			}
		}
		return count%2 == 0
	}

	cfg := DefaultConfig()
	cfg.ACEXStrategy = acex.BinarySearch
	l := New[rune](a, membershipOf(target), cfg)
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}

	first := &oracle.Counterexample[rune]{
		Prefix:   alphabet.Empty[rune](),
		Suffix:   mustWord(t, a, "a"),
		Expected: false,
	}
	if err := l.Refine(context.Background(), first); err != nil {
		t.Fatalf("Refine(first CE): %v", err)
	}
	rounds := 1 + learnUntilConverged(t, l, a, target, 6, 1)

	if rounds > 2 {
		t.Errorf("converged in %d counterexample rounds, want <= 2", rounds)
	}
	if got := l.Hypothesis().StateCount(); got != 2 {
		t.Errorf("StateCount = %d, want 2", got)
	}
}

// TestScenarioContainsABB learns the language of strings containing "abb"
// as a substring.
func TestScenarioContainsABB(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	target := func(idx []int) bool {
		for i := 0; i+3 <= len(idx); i++ {
			if idx[i] == 0 && idx[i+1] == 1 && idx[i+2] == 1 {
				return true
			}
		}
		return false
	}

	l := New[rune](a, membershipOf(target), DefaultConfig())
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	learnUntilConverged(t, l, a, target, 8, 20)

	if got := l.Hypothesis().StateCount(); got != 4 {
		t.Fatalf("StateCount = %d, want 4", got)
	}

	leaves, inner := countReachable(l.tree, l.tree.Root())
	if leaves != 4 {
		t.Errorf("reachable DT leaves = %d, want 4", leaves)
	}
	if inner != 3 {
		t.Errorf("reachable DT inner nodes = %d, want 3", inner)
	}

	for _, s := range []string{"", "a", "ab", "abb", "aabb", "babb", "abba", "ba", "bb"} {
		w := mustWord(t, a, s)
		got, err := l.Predict(w)
		if err != nil {
			t.Fatalf("Predict(%q): %v", s, err)
		}
		if want := target(w.Indices()); got != want {
			t.Errorf("Predict(%q) = %v, want %v", s, got, want)
		}
	}
}

// TestViewForcesResolution exercises the oracle.DFAView adapter's
// guarantee that Transition always returns a resolved StateID, even for a
// hypothesis whose non-tree transitions haven't been walked yet.
func TestViewForcesResolution(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	target := func(idx []int) bool { return len(idx) > 0 && idx[0] == 0 }
	l := New[rune](a, membershipOf(target), DefaultConfig())
	if err := l.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := l.Refine(context.Background(), &oracle.Counterexample[rune]{
		Prefix: alphabet.Empty[rune](), Suffix: mustWord(t, a, "a"), Expected: true,
	}); err != nil {
		t.Fatalf("Refine: %v", err)
	}

	v := l.View()
	if v.NumStates() != l.Hypothesis().StateCount() {
		t.Errorf("View.NumStates() = %d, want %d", v.NumStates(), l.Hypothesis().StateCount())
	}
	init := v.InitialState()
	aIdx, _ := a.IndexOf('a')
	next := v.Transition(init, aIdx)
	if next < 0 || next >= v.NumStates() {
		t.Errorf("View.Transition returned out-of-range state %d", next)
	}
	if !v.Accepting(next) {
		t.Error("state reached on 'a' from initial should be accepting")
	}
}
