package randutil

import "testing"

func TestNewIsDeterministicForSeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Int63() != b.Int63() {
			t.Fatal("same seed produced different sequences")
		}
	}
}

func TestNewZeroSeedUsesClock(t *testing.T) {
	a := New(0)
	b := New(0)

	// Astronomically unlikely to collide over 10 draws if seeded from
	// the clock independently
	same := true
	for i := 0; i < 10; i++ {
		if a.Int63() != b.Int63() {
			same = false
		}
	}
	if same {
		t.Error("zero seed should produce distinct sequences")
	}
}
