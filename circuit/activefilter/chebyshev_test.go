package activefilter

import (
	"math"
	"testing"
)

// ---------------------------------------------------------------------------
// Chebyshev tests
// ---------------------------------------------------------------------------

func TestChebyshev_StageCount(t *testing.T) {
	for order := 1; order <= 9; order++ {
		d := Chebyshev(Lowpass, order, 1, 1000, 10e-9)
		if d == nil {
			t.Fatalf("order %d: nil design", order)
		}
		if len(d.Stages) != order/2 {
			t.Fatalf("order %d: stages=%d, want %d", order, len(d.Stages), order/2)
		}
		if d.RealPoleOmitted != (order%2 != 0) {
			t.Fatalf("order %d: RealPoleOmitted=%v", order, d.RealPoleOmitted)
		}
	}
}

func TestChebyshev_Order4SortedByQ(t *testing.T) {
	d := Chebyshev(Lowpass, 4, 1, 1000, 10e-9)

	// Tabulated 1 dB, 4th order: Q = 0.785 and 3.559, f0 = 0.529·fc and 0.993·fc.
	wantQ := []float64{0.785, 3.559}
	wantF := []float64{529, 993}
	for i, s := range d.Stages {
		if !almostEqual(s.TargetQ, wantQ[i], 2e-3) {
			t.Fatalf("stage %d: TargetQ=%.4f, want %.3f", i, s.TargetQ, wantQ[i])
		}
		if !almostEqual(s.TargetCutoff, wantF[i], 1) {
			t.Fatalf("stage %d: TargetCutoff=%.1f, want %.0f", i, s.TargetCutoff, wantF[i])
		}
	}

	for i := 1; i < len(d.Stages); i++ {
		if d.Stages[i].ActualQ < d.Stages[i-1].ActualQ {
			t.Fatalf("stages not ascending by achieved Q: %v then %v", d.Stages[i-1].ActualQ, d.Stages[i].ActualQ)
		}
		if d.Stages[i].Index != i {
			t.Fatalf("stage %d reports Index %d", i, d.Stages[i].Index)
		}
	}
}

func TestChebyshev_PolesReorderedFromAngleOrder(t *testing.T) {
	poles := chebyshevPoles(6, 0.5)
	for i := 1; i < len(poles); i++ {
		if poles[i].q >= poles[i-1].q {
			t.Fatalf("pole-angle order should have descending Q, got %v then %v", poles[i-1].q, poles[i].q)
		}
	}

	d := Chebyshev(Lowpass, 6, 0.5, 1000, 10e-9)
	for i := 1; i < len(d.Stages); i++ {
		if d.Stages[i].TargetQ <= d.Stages[i-1].TargetQ {
			t.Fatalf("design stages not ascending: %v then %v", d.Stages[i-1].TargetQ, d.Stages[i].TargetQ)
		}
	}
}

func TestChebyshev_HighpassInvertsStageFrequencies(t *testing.T) {
	lp := Chebyshev(Lowpass, 4, 1, 1000, 10e-9)
	hp := Chebyshev(Highpass, 4, 1, 1000, 10e-9)
	for i := range lp.Stages {
		prod := lp.Stages[i].TargetCutoff * hp.Stages[i].TargetCutoff
		if !almostEqual(prod, 1e6, 1e-6) {
			t.Fatalf("stage %d: LP·HP stage frequency %v, want fc²", i, prod)
		}
		if lp.Stages[i].TargetQ != hp.Stages[i].TargetQ {
			t.Fatalf("stage %d: Q differs between LP and HP", i)
		}
	}
}

func TestChebyshev_StagesInternallyConsistent(t *testing.T) {
	for _, resp := range []Response{Lowpass, Highpass} {
		for order := 2; order <= 8; order++ {
			for _, ripple := range []float64{0.1, 0.5, 1, 3} {
				d := Chebyshev(resp, order, ripple, 2500, 2.2e-9)
				for _, s := range d.Stages {
					assertStageConsistent(t, s)
				}
			}
		}
	}
}

func TestChebyshev_InvalidInputs(t *testing.T) {
	if Chebyshev(Lowpass, 0, 1, 1000, 10e-9) != nil {
		t.Fatal("expected nil for order 0")
	}
	if Chebyshev(Lowpass, 4, 0, 1000, 10e-9) != nil {
		t.Fatal("expected nil for zero ripple")
	}
	if Chebyshev(Lowpass, 4, math.NaN(), 1000, 10e-9) != nil {
		t.Fatal("expected nil for NaN ripple")
	}
	if Chebyshev(Lowpass, 4, 1, -1000, 10e-9) != nil {
		t.Fatal("expected nil for negative cutoff")
	}
}

func TestChebyshev_OrderOneHasNoStages(t *testing.T) {
	d := Chebyshev(Highpass, 1, 1, 1000, 10e-9)
	if d == nil || len(d.Stages) != 0 || !d.RealPoleOmitted {
		t.Fatalf("order 1: got %+v, want empty design with RealPoleOmitted", d)
	}
	if d.Magnitude(1000) != 0 {
		t.Fatal("empty design should have zero response")
	}
}
