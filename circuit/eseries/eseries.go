package eseries

import "math"

// picoPerFarad converts between farads and the picofarad scale the capacitor
// series is tabulated in.
const picoPerFarad = 1e12

// Series is an ordered set of preferred mantissas.
//
// Mantissas are stored in tenths (10 = 1.0, 47 = 4.7, 100 = 10) so that a
// rounded value is always an exact decimal scaled by a power of ten.
type Series struct {
	name   string
	tenths []int
}

// E24 is the 24-entry resistor series (5% tolerance).
var E24 = Series{
	name: "E24",
	tenths: []int{
		10, 11, 12, 13, 15, 16, 18, 20, 22, 24, 27, 30,
		33, 36, 39, 43, 47, 51, 56, 62, 68, 75, 82, 91,
	},
}

// Capacitor is the 19-entry capacitor series. The first twelve entries are
// the E12 mantissas; the trailing entries (10 … 33) only extend the range of
// pickers that list absolute values and do not take part in rounding beyond
// the decade boundary.
var Capacitor = Series{
	name: "capacitor",
	tenths: []int{
		10, 12, 15, 18, 22, 27, 33, 39, 47, 56, 68, 82,
		100, 120, 150, 180, 220, 270, 330,
	},
}

// Name returns the series name.
func (s Series) Name() string { return s.name }

// Len returns the number of tabulated entries, including range-extension
// entries above 10.
func (s Series) Len() int { return len(s.tenths) }

// Mantissas returns the tabulated mantissas as floating-point values.
func (s Series) Mantissas() []float64 {
	out := make([]float64, len(s.tenths))
	for i, t := range s.tenths {
		out[i] = float64(t) / 10
	}

	return out
}

// Round returns the series value closest to v.
//
// Candidates are the series mantissas <= 10 scaled to v's decade, plus the
// next decade's base value, which wins only when it is strictly closer.
// Non-positive and NaN input returns 0.
func (s Series) Round(v float64) float64 {
	if !(v > 0) {
		return 0
	}

	if math.IsInf(v, 1) {
		return v
	}

	exp := decade(v)
	mant := mantissa(v, exp)

	best := 0
	bestDiff := math.Inf(1)

	for _, t := range s.tenths {
		if t > 100 {
			continue
		}

		d := math.Abs(mant - float64(t)/10)
		if d < bestDiff {
			best, bestDiff = t, d
		}
	}

	// Values just below a decade boundary (9.6) belong to the next decade.
	if math.Abs(mant-10) < bestDiff {
		return scale(1, exp+1)
	}

	return scale(best, exp-1)
}

// Contains reports whether v is a member of the series (any decade), within
// floating-point rounding.
func (s Series) Contains(v float64) bool {
	if !(v > 0) || math.IsInf(v, 0) {
		return false
	}

	mant := mantissa(v, decade(v))
	for _, t := range s.tenths {
		if t > 100 {
			continue
		}

		if math.Abs(mant-float64(t)/10) <= 1e-9*mant {
			return true
		}
	}

	return false
}

// RoundResistance snaps ohms to the nearest E24 value. Non-positive input
// returns 0.
func RoundResistance(ohms float64) float64 {
	return E24.Round(ohms)
}

// RoundCapacitance snaps farads to the nearest capacitor-series value. The
// rounding happens on the picofarad scale; the result is returned in farads.
// Non-positive input returns 0.
func RoundCapacitance(farads float64) float64 {
	if !(farads > 0) {
		return 0
	}

	return Capacitor.Round(farads*picoPerFarad) / picoPerFarad
}

// decade returns floor(log10(v)), corrected for math.Log10 inexactness at
// exact powers of ten.
func decade(v float64) int {
	exp := int(math.Floor(math.Log10(v)))
	if scale(1, exp) > v {
		exp--
	} else if scale(1, exp+1) <= v {
		exp++
	}

	return exp
}

// maxPow10 bounds a single scaling step; 10^±300 stays inside the normal
// float64 range, so subnormal inputs are scaled in several steps.
const maxPow10 = 300

// mantissa returns v normalized into [1, 10) for the given decade.
func mantissa(v float64, exp int) float64 {
	for exp < -maxPow10 {
		v *= math.Pow10(maxPow10)
		exp += maxPow10
	}

	if exp < 0 {
		return v * math.Pow10(-exp)
	}

	return v / math.Pow10(exp)
}

// scale returns m·10^p. Negative powers divide by an exact power of ten so
// the result is the double nearest the decimal value.
func scale(m, p int) float64 {
	v := float64(m)
	for p < -maxPow10 {
		v /= math.Pow10(maxPow10)
		p += maxPow10
	}

	if p < 0 {
		return v / math.Pow10(-p)
	}

	return v * math.Pow10(p)
}
