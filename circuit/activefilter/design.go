package activefilter

import (
	"math"

	"github.com/cwbudde/algo-circuit/circuit/eseries"
)

// gainReferenceOhms is the fixed lower resistor Ra of every stage's gain
// network.
const gainReferenceOhms = 10000.0

// Response selects the pass band of a design.
type Response int

const (
	Lowpass Response = iota
	Highpass
)

// String returns the lowercase response name.
func (r Response) String() string {
	switch r {
	case Lowpass:
		return "lowpass"
	case Highpass:
		return "highpass"
	default:
		return "unknown"
	}
}

// Family identifies the approximation used to place the poles.
type Family int

const (
	FamilyButterworth Family = iota
	FamilyChebyshev
)

// String returns the lowercase family name.
func (f Family) String() string {
	switch f {
	case FamilyButterworth:
		return "butterworth"
	case FamilyChebyshev:
		return "chebyshev"
	default:
		return "unknown"
	}
}

// Stage is one realized second-order section.
//
// Resistance, GainResistorA and GainResistorB are E24 values. GainResistorB
// is 0 when the stage needs unity gain (the feedback resistor is a short and
// Ra may be omitted). Actual* fields are computed from the rounded parts;
// Target* fields hold the ideal request.
type Stage struct {
	Index    int
	Response Response

	Resistance    float64
	Capacitance   float64
	GainResistorA float64
	GainResistorB float64

	Gain         float64
	TargetQ      float64
	ActualQ      float64
	TargetCutoff float64
	ActualCutoff float64
}

// Design is a complete cascade. Stages are in signal-path order.
type Design struct {
	Family      Family
	Response    Response
	Order       int
	Cutoff      float64
	RippleDB    float64
	Capacitance float64
	Stages      []Stage

	// RealPoleOmitted is set for odd orders: the unpaired real pole would need
	// a first-order section, which this topology does not realize.
	RealPoleOmitted bool
}

// PassbandGain returns the product of all stage gains.
func (d *Design) PassbandGain() float64 {
	if d == nil {
		return 0
	}

	g := 1.0
	for _, s := range d.Stages {
		g *= s.Gain
	}

	return g
}

// buildStage realizes one section with pole frequency cutoff and quality
// factor q on the given capacitor.
func buildStage(index int, resp Response, cutoff, capacitance, q float64) Stage {
	r := eseries.RoundResistance(1 / (2 * math.Pi * cutoff * capacitance))

	k := 3 - 1/q
	ra := eseries.RoundResistance(gainReferenceOhms)
	rb := eseries.RoundResistance((k - 1) * ra)

	gain := 1 + rb/ra

	actualQ := math.Inf(1)
	if gain < 3 {
		actualQ = 1 / (3 - gain)
	}

	return Stage{
		Index:         index,
		Response:      resp,
		Resistance:    r,
		Capacitance:   capacitance,
		GainResistorA: ra,
		GainResistorB: rb,
		Gain:          gain,
		TargetQ:       q,
		ActualQ:       actualQ,
		TargetCutoff:  cutoff,
		ActualCutoff:  1 / (2 * math.Pi * r * capacitance),
	}
}

func validInputs(cutoff, capacitance float64) bool {
	return cutoff > 0 && capacitance > 0 && !math.IsInf(cutoff, 0) && !math.IsInf(capacitance, 0)
}
