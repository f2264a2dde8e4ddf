package rng

import "testing"

func TestDeterministicSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 10; i++ {
		x, y := a.Uint64(), b.Uint64()
		if x != y {
			t.Fatalf("sequence diverged at step %d: %d != %d", i, x, y)
		}
	}
}

func TestFloat64InUnitInterval(t *testing.T) {
	s := New(1)
	for i := 0; i < 1000; i++ {
		f := s.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %v, want [0, 1)", f)
		}
	}
}

func TestZeroSeedRemapped(t *testing.T) {
	s := New(0)
	if s.state == 0 {
		t.Error("zero seed should be remapped to a nonzero state")
	}
}

func TestSubstreamsIndependentOfCreationOrder(t *testing.T) {
	base := uint64(12345)

	s1 := NewSubstream(base, 0)
	s2 := NewSubstream(base, 1)
	firstInOrder := s1.Uint64()

	// Recreate in reverse order; substream 0's first value must be unchanged.
	s2b := NewSubstream(base, 1)
	s1b := NewSubstream(base, 0)
	_ = s2b
	secondCreationFirstValue := s1b.Uint64()

	if firstInOrder != secondCreationFirstValue {
		t.Error("substream output depends on creation order")
	}
	_ = s2
}

func TestDeriveSeedVariesByIndex(t *testing.T) {
	a := DeriveSeed(7, 0)
	b := DeriveSeed(7, 1)
	if a == b {
		t.Error("DeriveSeed should vary by index")
	}
}
