package activefilter

import (
	"math"
	"sort"
)

// pole is a normalized (1 rad/s passband edge) conjugate pole pair.
type pole struct {
	w0 float64
	q  float64
}

// chebyshevPoles returns one pole per conjugate pair of the order-N Type I
// prototype with the given pass-band ripple, in pole-angle order.
func chebyshevPoles(order int, rippleDB float64) []pole {
	eps := math.Sqrt(math.Pow(10, rippleDB/10) - 1)
	a := math.Asinh(1/eps) / float64(order)

	poles := make([]pole, 0, order/2)
	for k := 1; k <= order/2; k++ {
		theta := float64(2*k-1) * math.Pi / (2 * float64(order))
		sigma := -math.Sinh(a) * math.Sin(theta)
		omega := math.Cosh(a) * math.Cos(theta)

		w0 := math.Hypot(sigma, omega)
		poles = append(poles, pole{w0: w0, q: w0 / (-2 * sigma)})
	}

	return poles
}

// Chebyshev designs an order-N Chebyshev Type I cascade with rippleDB of
// pass-band ripple. cutoff is the pass-band edge.
//
// Stages are sorted by ascending Q so the most peaked section comes last.
// Odd orders yield floor(N/2) stages with RealPoleOmitted set. Orders below
// 1, non-positive ripple, cutoff or capacitance return nil.
func Chebyshev(resp Response, order int, rippleDB, cutoff, capacitance float64) *Design {
	if order < 1 || !(rippleDB > 0) || !validInputs(cutoff, capacitance) {
		return nil
	}

	poles := chebyshevPoles(order, rippleDB)
	sort.SliceStable(poles, func(i, j int) bool { return poles[i].q < poles[j].q })

	stages := make([]Stage, 0, len(poles))
	for i, p := range poles {
		// Lowpass-to-highpass maps s -> 1/s, which inverts pole frequencies.
		fc := cutoff * p.w0
		if resp == Highpass {
			fc = cutoff / p.w0
		}

		stages = append(stages, buildStage(i, resp, fc, capacitance, p.q))
	}

	return &Design{
		Family:          FamilyChebyshev,
		Response:        resp,
		Order:           order,
		Cutoff:          cutoff,
		RippleDB:        rippleDB,
		Capacitance:     capacitance,
		Stages:          stages,
		RealPoleOmitted: order%2 != 0,
	}
}
