package activefilter

import (
	"math"
	"testing"
)

func TestStageMagnitude_Limits(t *testing.T) {
	lp := buildStage(0, Lowpass, 1000, 10e-9, 1.3065)
	hp := buildStage(0, Highpass, 1000, 10e-9, 1.3065)

	if got := lp.Magnitude(0); !almostEqual(got, lp.Gain, tol) {
		t.Fatalf("LP DC magnitude=%v, want gain %v", got, lp.Gain)
	}
	if got := hp.Magnitude(0); got != 0 {
		t.Fatalf("HP DC magnitude=%v, want 0", got)
	}
	if got := hp.Magnitude(1e9); !almostEqual(got, hp.Gain, 1e-6) {
		t.Fatalf("HP far above cutoff=%v, want gain %v", got, hp.Gain)
	}
}

func TestStageMagnitude_PeakAtPoleFrequency(t *testing.T) {
	for _, resp := range []Response{Lowpass, Highpass} {
		s := buildStage(0, resp, 1000, 10e-9, 0.9)
		got := s.Magnitude(s.ActualCutoff)
		want := s.Gain * s.ActualQ
		if !almostEqual(got, want, 1e-9) {
			t.Fatalf("%v: |H(f0)|=%v, want K·Q=%v", resp, got, want)
		}
	}
}

func TestDesignMagnitude_ProductOfStages(t *testing.T) {
	d := Chebyshev(Lowpass, 6, 0.5, 1000, 10e-9)
	for _, f := range []float64{10, 500, 1000, 5000} {
		want := 1.0
		for _, s := range d.Stages {
			want *= s.Magnitude(f)
		}
		if got := d.Magnitude(f); !almostEqual(got, want, 1e-12*math.Max(1, want)) {
			t.Fatalf("f=%v: Magnitude=%v, want %v", f, got, want)
		}
	}

	var nilDesign *Design
	if nilDesign.Magnitude(100) != 0 || nilDesign.IdealMagnitude(100) != 0 {
		t.Fatal("nil design should have zero response")
	}
}

func TestIdealMagnitude_ButterworthCorner(t *testing.T) {
	for _, resp := range []Response{Lowpass, Highpass} {
		d := Butterworth(resp, 4, 1000, 10e-9)

		// Exact Butterworth poles give -3.01 dB at fc regardless of rounding.
		got := 20 * math.Log10(d.IdealMagnitude(1000))
		if !almostEqual(got, -3.0103, 2e-3) {
			t.Fatalf("%v: ideal gain at fc=%.4f dB, want -3.01", resp, got)
		}
	}

	d := Butterworth(Lowpass, 4, 1000, 10e-9)
	if got := d.IdealMagnitude(0); !almostEqual(got, 1, tol) {
		t.Fatalf("ideal DC gain=%v, want 1", got)
	}
}
