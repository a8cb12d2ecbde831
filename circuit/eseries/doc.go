// Package eseries snaps computed component values to preferred (E-series)
// values.
//
// Resistors use the 24-entry E24 series. Capacitors use a shorter series
// (the E12 mantissas) because capacitor values outside E12 are rarely
// stocked. Both rounders return 0 for non-positive input, which callers treat
// as "no component needed" rather than as an error.
//
// Example:
//
//	r := eseries.RoundResistance(15923) // 16000
//	c := eseries.RoundCapacitance(9.5e-9) // 1e-08
package eseries
