package sparse

import "testing"

type nodeID uint32

func TestSetInsertContainsRemove(t *testing.T) {
	s := New[nodeID](4)
	if !s.IsEmpty() {
		t.Fatal("expected empty set")
	}
	s.Insert(2)
	s.Insert(3)
	s.Insert(2) // duplicate, no-op
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if !s.Contains(2) || !s.Contains(3) {
		t.Fatal("expected 2 and 3 to be present")
	}
	if s.Contains(5) {
		t.Fatal("5 should not be present")
	}
	s.Remove(2)
	if s.Contains(2) {
		t.Fatal("2 should have been removed")
	}
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
}

func TestSetGrowsPastInitialCapacity(t *testing.T) {
	s := New[nodeID](1)
	s.Insert(10)
	if !s.Contains(10) {
		t.Fatal("expected growth to accommodate value 10")
	}
}

func TestSetPopFrontFIFO(t *testing.T) {
	s := New[nodeID](8)
	s.Insert(1)
	s.Insert(2)
	s.Insert(3)

	v, ok := s.PopFront()
	if !ok || v != 1 {
		t.Fatalf("PopFront() = (%d, %v), want (1, true)", v, ok)
	}
	v, ok = s.PopFront()
	if !ok || v != 2 {
		t.Fatalf("PopFront() = (%d, %v), want (2, true)", v, ok)
	}
	v, ok = s.PopFront()
	if !ok || v != 3 {
		t.Fatalf("PopFront() = (%d, %v), want (3, true)", v, ok)
	}
	if _, ok := s.PopFront(); ok {
		t.Fatal("expected empty set after draining")
	}
}

func TestSetValuesReflectsCurrentMembers(t *testing.T) {
	s := New[nodeID](4)
	s.Insert(0)
	s.Insert(1)
	s.Remove(0)
	vals := s.Values()
	if len(vals) != 1 || vals[0] != 1 {
		t.Fatalf("Values() = %v, want [1]", vals)
	}
}
