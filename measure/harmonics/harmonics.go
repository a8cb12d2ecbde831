// Package harmonics measures the harmonic content of one periodic waveform,
// such as the output of a clipping stage, for display as a spectrum chart.
package harmonics

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-circuit/draw/plot"
)

var (
	ErrEmptySignal   = errors.New("harmonics: signal is empty")
	ErrCycles        = errors.New("harmonics: cycles must be positive and fit the signal")
	ErrMaxHarmonic   = errors.New("harmonics: max harmonic must be >= 1")
	ErrNoFundamental = errors.New("harmonics: fundamental has zero amplitude")
)

// Spectrum holds the harmonic amplitudes of a waveform.
type Spectrum struct {
	// Amplitudes[k-1] is the peak amplitude of harmonic k.
	Amplitudes []float64
	// Levels[k-1] is harmonic k in dB relative to the fundamental.
	Levels []float64
	// THD is the RMS sum of harmonics 2..n divided by the fundamental.
	THD float64
}

// Analyze measures harmonics 1..maxHarmonic of signal, which must hold
// exactly cycles periods of the fundamental so every harmonic falls on an
// FFT bin and no window is needed. Harmonics above Nyquist are left out.
func Analyze(signal []float64, cycles, maxHarmonic int) (Spectrum, error) {
	n := len(signal)
	if n == 0 {
		return Spectrum{}, ErrEmptySignal
	}
	if cycles <= 0 || 2*cycles > n {
		return Spectrum{}, fmt.Errorf("%w: %d cycles in %d samples", ErrCycles, cycles, n)
	}
	if maxHarmonic < 1 {
		return Spectrum{}, fmt.Errorf("%w: %d", ErrMaxHarmonic, maxHarmonic)
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Spectrum{}, fmt.Errorf("harmonics: fft plan for %d samples: %w", n, err)
	}

	in := make([]complex128, n)
	for i, v := range signal {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Spectrum{}, fmt.Errorf("harmonics: forward fft: %w", err)
	}

	count := min(maxHarmonic, (n/2)/cycles)
	re := make([]float64, count)
	im := make([]float64, count)
	for k := 1; k <= count; k++ {
		x := out[k*cycles]
		re[k-1], im[k-1] = real(x), imag(x)
	}

	amps := make([]float64, count)
	vecmath.Magnitude(amps, re, im)
	vecmath.ScaleBlockInPlace(amps, 2/float64(n))

	fund := amps[0]
	if !(fund > 0) {
		return Spectrum{}, ErrNoFundamental
	}

	levels := make([]float64, count)
	for i, a := range amps {
		levels[i] = 20 * math.Log10(a/fund)
	}

	thd := 0.0
	if count > 1 {
		rest := amps[1:]
		thd = math.Sqrt(vecmath.DotProduct(rest, rest)) / fund
	}

	return Spectrum{Amplitudes: amps, Levels: levels, THD: thd}, nil
}

// THDPercent returns THD in percent.
func (s Spectrum) THDPercent() float64 {
	return 100 * s.THD
}

// Plot returns a bar chart with one bar per harmonic, labelled H1..Hn.
func (s Spectrum) Plot(opts ...plot.Option) *plot.BarPlot {
	base := []plot.Option{
		plot.WithTitle("THD " + strconv.FormatFloat(s.THDPercent(), 'f', 2, 64) + "%"),
		plot.WithXLabel("Harmonic"),
	}
	p := plot.NewBarPlot(append(base, opts...)...)
	for i, level := range s.Levels {
		p.AddBar("H"+strconv.Itoa(i+1), level, plot.Style{})
	}
	return p
}
