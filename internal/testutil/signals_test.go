package testutil

import (
	"math"
	"testing"
)

func TestPeriodicSine(t *testing.T) {
	s := PeriodicSine(64, 4, 2)
	if len(s) != 64 {
		t.Fatalf("len = %d, want 64", len(s))
	}
	if math.Abs(s[0]) > 1e-15 {
		t.Fatalf("s[0] = %v, want 0", s[0])
	}
	// A quarter period is 4 samples.
	if math.Abs(s[4]-2) > 1e-12 {
		t.Fatalf("s[4] = %v, want peak 2", s[4])
	}
}

func TestHarmonicSum(t *testing.T) {
	s := HarmonicSum(32, 1, 0, 1)
	want := PeriodicSine(32, 2, 1)
	d, err := MaxAbsDiff(s, want)
	if err != nil {
		t.Fatal(err)
	}
	if d > 1e-12 {
		t.Fatalf("second harmonic differs from a sine at twice the cycles: %v", d)
	}
}

func TestHardClip(t *testing.T) {
	x := HardClip([]float64{-3, -0.5, 0, 0.5, 3}, 1)
	want := []float64{-1, -0.5, 0, 0.5, 1}
	for i := range want {
		if x[i] != want[i] {
			t.Fatalf("x[%d] = %v, want %v", i, x[i], want[i])
		}
	}
}
