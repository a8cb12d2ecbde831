package harmonics

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/cwbudde/algo-circuit/internal/testutil"
)

func TestAnalyze_KnownHarmonics(t *testing.T) {
	sig := testutil.HarmonicSum(256, 4, 1, 0, 0.1, 0, 0.01)

	s, err := Analyze(sig, 4, 5)
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}

	testutil.RequireSliceNearlyEqual(t, s.Amplitudes, []float64{1, 0, 0.1, 0, 0.01}, 1e-9)

	if math.Abs(s.Levels[0]) > 1e-9 {
		t.Fatalf("H1 level=%v dB, want 0", s.Levels[0])
	}
	if math.Abs(s.Levels[2]+20) > 1e-6 || math.Abs(s.Levels[4]+40) > 1e-6 {
		t.Fatalf("H3/H5 levels=%v/%v dB, want -20/-40", s.Levels[2], s.Levels[4])
	}
	if s.Levels[1] > -150 {
		t.Fatalf("H2 level=%v dB, want far below the fundamental", s.Levels[1])
	}

	wantTHD := math.Sqrt(0.1*0.1 + 0.01*0.01)
	if math.Abs(s.THD-wantTHD) > 1e-9 {
		t.Fatalf("THD=%v, want %v", s.THD, wantTHD)
	}
	if math.Abs(s.THDPercent()-100*wantTHD) > 1e-7 {
		t.Fatalf("THDPercent=%v", s.THDPercent())
	}
}

func TestAnalyze_ClippedSineHasOddHarmonicsOnly(t *testing.T) {
	sig := testutil.HardClip(testutil.PeriodicSine(512, 2, 1), 0.6)

	s, err := Analyze(sig, 2, 7)
	if err != nil {
		t.Fatal(err)
	}
	for k := 2; k <= 7; k += 2 {
		if s.Levels[k-1] > -100 {
			t.Fatalf("symmetric clipping produced even harmonic H%d at %v dB", k, s.Levels[k-1])
		}
	}
	if s.Levels[2] < -40 {
		t.Fatalf("H3 at %v dB, expected audible distortion", s.Levels[2])
	}
	if s.THD <= 0.01 {
		t.Fatalf("THD=%v, want > 1%%", s.THD)
	}
}

func TestAnalyze_LimitsToNyquist(t *testing.T) {
	s, err := Analyze(testutil.HarmonicSum(64, 8, 1), 8, 20)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Levels) != 4 {
		t.Fatalf("harmonics=%d, want 4 below Nyquist", len(s.Levels))
	}
	testutil.RequireFinite(t, s.Amplitudes)
}

func TestAnalyze_Errors(t *testing.T) {
	tests := []struct {
		name        string
		signal      []float64
		cycles, max int
		want        error
	}{
		{"empty", nil, 1, 5, ErrEmptySignal},
		{"zero cycles", testutil.HarmonicSum(64, 1, 1), 0, 5, ErrCycles},
		{"too many cycles", testutil.HarmonicSum(64, 1, 1), 40, 5, ErrCycles},
		{"max harmonic", testutil.HarmonicSum(64, 1, 1), 1, 0, ErrMaxHarmonic},
		{"silence", make([]float64, 64), 1, 5, ErrNoFundamental},
	}
	for _, tt := range tests {
		if _, err := Analyze(tt.signal, tt.cycles, tt.max); !errors.Is(err, tt.want) {
			t.Errorf("%s: err=%v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestSpectrum_Plot(t *testing.T) {
	s, err := Analyze(testutil.HarmonicSum(256, 4, 1, 0, 0.1), 4, 3)
	if err != nil {
		t.Fatal(err)
	}
	doc := s.Plot().Render()
	for _, want := range []string{">H1</text>", ">H2</text>", ">H3</text>", ">-20.0</text>", "THD 10.00%"} {
		if !strings.Contains(doc, want) {
			t.Errorf("spectrum chart lacks %q", want)
		}
	}
}
