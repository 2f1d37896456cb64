package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 64; i++ {
		if a.Chance(0.5) != b.Chance(0.5) {
			t.Fatalf("draw %d diverged for equal seeds", i)
		}
	}
}

func TestFillDensityExtremes(t *testing.T) {
	r := NewRNG(1)
	buf := make([]bool, 100)
	if n := r.FillDensity(buf, 0); n != 0 {
		t.Fatalf("density 0 set %d cells", n)
	}
	if n := r.FillDensity(buf, 1); n != len(buf) {
		t.Fatalf("density 1 set %d of %d cells", n, len(buf))
	}
	n := r.FillDensity(buf, 0.5)
	if n < 20 || n > 80 {
		t.Fatalf("density 0.5 set %d of 100 cells", n)
	}
}
