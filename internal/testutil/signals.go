package testutil

import "math"

// HarmonicSum returns n samples holding cycles whole periods of
// sum(amps[k-1]·sin(k·x)). Each harmonic lands exactly on an FFT bin.
func HarmonicSum(n, cycles int, amps ...float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		x := 2 * math.Pi * float64(cycles) * float64(i) / float64(n)
		for k, a := range amps {
			out[i] += a * math.Sin(float64(k+1)*x)
		}
	}
	return out
}

// PeriodicSine returns n samples of a sine with the given peak amplitude and
// a whole number of cycles.
func PeriodicSine(n, cycles int, amplitude float64) []float64 {
	return HarmonicSum(n, cycles, amplitude)
}

// HardClip limits every sample of x to [-limit, limit] in place and returns x.
func HardClip(x []float64, limit float64) []float64 {
	for i, v := range x {
		x[i] = math.Max(-limit, math.Min(limit, v))
	}
	return x
}
