package activefilter

import "math"

// Magnitude returns |H(j2πf)| of the realized stage, computed from the actual
// gain, Q and cutoff. The pass-band value is the stage gain.
func (s Stage) Magnitude(freq float64) float64 {
	return sectionMagnitude(s.Response, s.Gain, s.ActualQ, s.ActualCutoff, freq)
}

// IdealMagnitude returns the magnitude the stage would have with exact
// parts: target Q and target cutoff, normalized to unity pass-band gain.
func (s Stage) IdealMagnitude(freq float64) float64 {
	return sectionMagnitude(s.Response, 1, s.TargetQ, s.TargetCutoff, freq)
}

func sectionMagnitude(resp Response, gain, q, f0, freq float64) float64 {
	if !(f0 > 0) || freq < 0 {
		return 0
	}

	x := freq / f0

	damping := 0.0
	if !math.IsInf(q, 1) && q > 0 {
		damping = x / q
	}

	den := math.Hypot(1-x*x, damping)
	if den == 0 {
		return math.Inf(1)
	}

	if resp == Highpass {
		return gain * x * x / den
	}

	return gain / den
}

// Magnitude returns the cascade magnitude at freq, the product of all stage
// magnitudes. A nil design has zero response.
func (d *Design) Magnitude(freq float64) float64 {
	if d == nil || len(d.Stages) == 0 {
		return 0
	}

	m := 1.0
	for _, s := range d.Stages {
		m *= s.Magnitude(freq)
	}

	return m
}

// IdealMagnitude is the unity-gain cascade response of the requested poles,
// ignoring part rounding.
func (d *Design) IdealMagnitude(freq float64) float64 {
	if d == nil || len(d.Stages) == 0 {
		return 0
	}

	m := 1.0
	for _, s := range d.Stages {
		m *= s.IdealMagnitude(freq)
	}

	return m
}
