package pta

import (
	"testing"

	"github.com/fatimatuzzuhra/learnlib/alphabet"
)

func mustAlphabet(t *testing.T, syms ...rune) *alphabet.Alphabet[rune] {
	t.Helper()
	a, err := alphabet.New(syms...)
	if err != nil {
		t.Fatalf("alphabet.New: %v", err)
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

// scenario4Samples builds a small sample set exercising red/blue merging:
// {(ε,-), (a,+), (b,-), (aa,+), (ab,-), (ba,-), (bb,-)}.
func scenario4Samples(t *testing.T) (*Tree[rune], *alphabet.Alphabet[rune]) {
	t.Helper()
	a := mustAlphabet(t, 'a', 'b')
	tree := New[rune](a)
	samples := []struct {
		w string
		y bool
	}{
		{"", false}, {"a", true}, {"b", false},
		{"aa", true}, {"ab", false}, {"ba", false}, {"bb", false},
	}
	for _, s := range samples {
		if err := tree.Insert(mustWord(t, a, s.w), s.y); err != nil {
			t.Fatalf("Insert(%q): %v", s.w, err)
		}
	}
	return tree, a
}

func TestInsertSharesPrefixes(t *testing.T) {
	tree, _ := scenario4Samples(t)
	// "a" and "aa" share the state reached by "a".
	if tree.StateCount() != 7 { // root(ε), a, b, aa, ab, ba, bb
		t.Errorf("StateCount = %d, want 7", tree.StateCount())
	}
}

func TestInsertConflictingSampleFails(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	tree := New[rune](a)
	if err := tree.Insert(mustWord(t, a, "a"), true); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	err := tree.Insert(mustWord(t, a, "a"), false)
	if _, ok := err.(*ConflictingSample); !ok {
		t.Fatalf("Insert conflicting label: err = %v, want *ConflictingSample", err)
	}
}

func TestRootLabelUnlabeledWithoutEmptySample(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	tree := New[rune](a)
	if err := tree.Insert(mustWord(t, a, "a"), true); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if tree.State(tree.Root()).Label() != Unlabeled {
		t.Error("root should stay Unlabeled when ε was never inserted")
	}
}

func TestInitColorsRootRedAndImmediateBlue(t *testing.T) {
	tree, a := scenario4Samples(t)
	blue := tree.Init()
	if tree.State(tree.Root()).Color() != Red {
		t.Error("root should be Red after Init")
	}
	if len(blue) != 2 {
		t.Fatalf("Init() returned %d blue states, want 2 (a, b)", len(blue))
	}
	aIdx, _ := a.IndexOf('a')
	wantA := tree.State(tree.Root()).Transition(aIdx)
	found := false
	for _, b := range blue {
		if b == wantA {
			found = true
		}
		if tree.State(b).Color() != Blue {
			t.Errorf("state %d should be Blue", b)
		}
	}
	if !found {
		t.Error("the state reached on 'a' should be among the initial blue states")
	}
}

func TestTryMergeFailsOnLabelConflict(t *testing.T) {
	tree, a := scenario4Samples(t)
	tree.Init()
	aIdx, _ := a.IndexOf('a')
	bIdx, _ := a.IndexOf('b')
	qa := tree.State(tree.Root()).Transition(aIdx) // label Accept
	qb := tree.State(tree.Root()).Transition(bIdx) // label Reject

	if m := tree.TryMerge(qa, qb); m != nil {
		t.Error("merging states with conflicting labels should fail")
	}
}

func TestPromoteColorsImmediateSuccessorsBlue(t *testing.T) {
	tree, a := scenario4Samples(t)
	tree.Init()
	aIdx, _ := a.IndexOf('a')
	qa := tree.State(tree.Root()).Transition(aIdx)

	// Promote qa ("a") to red; its two children "aa" and "ab" should become blue.
	newBlue := tree.Promote(qa)
	if tree.State(qa).Color() != Red {
		t.Error("qa should be Red after Promote")
	}
	if len(newBlue) != 2 {
		t.Fatalf("Promote(qa) returned %d new blue states, want 2 (aa, ab)", len(newBlue))
	}
	if tree.State(newBlue[0]).Color() != Blue {
		t.Error("the newly promoted state's successor should be colored Blue")
	}
}

func TestTryMergeRejectsConflictingLabelsAfterPromote(t *testing.T) {
	tree, a := scenario4Samples(t)
	tree.Init()
	aIdx, _ := a.IndexOf('a')
	bIdx, _ := a.IndexOf('b')
	qa := tree.State(tree.Root()).Transition(aIdx) // "a", Accept
	tree.Promote(qa)
	qb := tree.State(tree.Root()).Transition(bIdx) // "b", Reject

	// Merging "b" (Reject) into "a" (Accept) must fail: the top-level pair
	// itself already disagrees.
	if m := tree.TryMerge(qa, qb); m != nil {
		t.Error("merging Accept-labeled qa with Reject-labeled qb should fail")
	}
}

func TestApplyGraftsUnmatchedTransitions(t *testing.T) {
	a := mustAlphabet(t, 'a', 'b')
	tree := New[rune](a)
	// Build two small, label-compatible branches: "a" (unlabeled) with
	// child "ab" (reject); "b" (unlabeled) with child "ba" (reject).
	for _, s := range []struct {
		w string
		y bool
	}{{"ab", false}, {"ba", false}} {
		if err := tree.Insert(mustWord(t, a, s.w), s.y); err != nil {
			t.Fatalf("Insert(%q): %v", s.w, err)
		}
	}
	tree.Init()
	aIdx, _ := a.IndexOf('a')
	bIdx, _ := a.IndexOf('b')
	qa := tree.State(tree.Root()).Transition(aIdx)
	qb := tree.State(tree.Root()).Transition(bIdx)
	// Promote qa to red, as the RPNI driver does before attempting merges
	// against it; qb stays blue.
	tree.Promote(qa)

	m := tree.TryMerge(qa, qb)
	if m == nil {
		t.Fatal("expected a valid merge: both states are unlabeled with disjoint symbol transitions")
	}
	newBlue := tree.Apply(m)

	// qa should have gained qb's transition on 'a' (since qa had none,
	// qb's "ba"-reaching edge grafts wholesale), while keeping its own
	// transition on 'b' (towards the old "ab" state).
	qaAfter := tree.State(qa)
	if qaAfter.Transition(aIdx) == InvalidState {
		t.Error("qa should have gained a transition on 'a' from qb")
	}
	if qaAfter.Transition(bIdx) == InvalidState {
		t.Error("qa should keep its own transition on 'b'")
	}

	found := false
	for _, b := range newBlue {
		if tree.State(b).Color() == Blue {
			found = true
		}
	}
	if !found {
		t.Error("Apply should have colored at least one newly reachable successor blue")
	}
}
