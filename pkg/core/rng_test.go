package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("sequences diverged at %d", i)
		}
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(1)
	for i := 0; i < 1000; i++ {
		if v := r.Range(2, 5); v < 2 || v >= 5 {
			t.Fatalf("Range = %f", v)
		}
		if v := r.Range(5, 2); v < 2 || v >= 5 {
			t.Fatalf("swapped Range = %f", v)
		}
		if v := r.Jitter(0.25); v < -0.25 || v >= 0.25 {
			t.Fatalf("Jitter = %f", v)
		}
		if v := r.IntRange(200, 500); v < 200 || v >= 500 {
			t.Fatalf("IntRange = %d", v)
		}
	}
	if r.IntRange(4, 4) != 4 || r.IntN(0) != 0 {
		t.Fatal("degenerate ranges should return the lower bound")
	}
	if r.Chance(0) || !r.Chance(1) {
		t.Fatal("Chance bounds wrong")
	}
}
