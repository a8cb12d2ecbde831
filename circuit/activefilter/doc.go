// Package activefilter designs analog active filters as cascades of
// equal-component Sallen-Key second-order stages.
//
// Each stage uses one resistor value R and one capacitor value C for both
// frequency-setting positions and a non-inverting amplifier of gain
// K = 1 + Rb/Ra. For this topology the pole frequency is 1/(2πRC) and the
// pole quality factor is Q = 1/(3-K), so Q is set by the gain alone.
//
// Designers pick R from the requested cutoff and a caller-chosen C, round R,
// Ra and Rb to E24 values (see package eseries), and report the cutoff and Q
// that the rounded parts actually achieve.
//
// [Butterworth] uses a fixed table of pole Q values for orders 2, 4, 6 and 8
// and keeps the table order. [Chebyshev] computes Type I poles for any order
// and emits stages sorted by ascending Q.
//
// Unsupported input yields a nil [*Design]; callers check for nil instead of
// handling an error.
package activefilter
