package rng

import "testing"

func TestSeededIsReplicable(t *testing.T) {
	a, b := NewSeeded(7), NewSeeded(7)
	for i := 0; i < 100; i++ {
		if x, y := a.Float64(), b.Float64(); x != y {
			t.Fatalf("draw %d differs: %v vs %v", i, x, y)
		}
	}
}

func TestRangeBounds(t *testing.T) {
	src := NewSeeded(1)
	for i := 0; i < 10000; i++ {
		v := Range(src, 20, 30)
		if v < 20 || v >= 30 {
			t.Fatalf("Range out of bounds: %v", v)
		}
	}
}

func TestIntN(t *testing.T) {
	src := NewSeeded(3)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		n := IntN(src, 3)
		if n < 0 || n >= 3 {
			t.Fatalf("IntN out of bounds: %d", n)
		}
		seen[n] = true
	}
	if len(seen) != 3 {
		t.Fatalf("expected all 3 values, saw %v", seen)
	}
	if IntN(src, 0) != 0 {
		t.Fatalf("IntN(0) should be 0")
	}
}

func TestChanceApprox(t *testing.T) {
	const p = 0.3
	const n = 100000
	src := NewSeeded(42)
	hit := 0
	for i := 0; i < n; i++ {
		if Chance(src, p) {
			hit++
		}
	}
	freq := float64(hit) / float64(n)
	if diff := freq - p; diff > 0.01 || diff < -0.01 {
		t.Fatalf("freq=%f not close to p=%f", freq, p)
	}
}

func TestDefaultProducesUnitInterval(t *testing.T) {
	src := Default()
	for i := 0; i < 1000; i++ {
		if v := src.Float64(); v < 0 || v >= 1 {
			t.Fatalf("Default out of [0,1): %v", v)
		}
	}
}
