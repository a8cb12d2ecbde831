// Package units formats electrical quantities with engineering prefixes for
// diagram labels and result tables.
package units

import (
	"math"
	"strconv"
	"strings"
)

// Unit identifies the physical quantity of a value.
type Unit int

const (
	Ohm Unit = iota
	Farad
	Volt
	Amp
	Hertz
	// MilliAmp formats a value that is already expressed in milliamps.
	MilliAmp
	Henry
)

// Style selects the label layout.
type Style int

const (
	// Schematic is the compact style used on diagrams: "4.7kΩ".
	Schematic Style = iota
	// Table pads a space between number and unit: "4.7 kΩ".
	Table
)

type prefix struct {
	min    float64
	scale  float64
	symbol string
}

var prefixes = map[Unit][]prefix{
	Ohm: {
		{min: 1e6, scale: 1e6, symbol: "MΩ"},
		{min: 1e3, scale: 1e3, symbol: "kΩ"},
		{min: 0, scale: 1, symbol: "Ω"},
	},
	Farad: {
		{min: 1e-6, scale: 1e-6, symbol: "µF"},
		{min: 1e-9, scale: 1e-9, symbol: "nF"},
		{min: 0, scale: 1e-12, symbol: "pF"},
	},
	Volt: {
		{min: 1, scale: 1, symbol: "V"},
		{min: 0, scale: 1e-3, symbol: "mV"},
	},
	Amp: {
		{min: 1, scale: 1, symbol: "A"},
		{min: 1e-3, scale: 1e-3, symbol: "mA"},
		{min: 0, scale: 1e-6, symbol: "µA"},
	},
	Hertz: {
		{min: 1e6, scale: 1e6, symbol: "MHz"},
		{min: 1e3, scale: 1e3, symbol: "kHz"},
		{min: 0, scale: 1, symbol: "Hz"},
	},
	MilliAmp: {
		{min: 0, scale: 1, symbol: "mA"},
	},
	Henry: {
		{min: 1, scale: 1, symbol: "H"},
		{min: 1e-3, scale: 1e-3, symbol: "mH"},
		{min: 0, scale: 1e-6, symbol: "µH"},
	},
}

// Format renders v in unit u. Prefix selection uses the magnitude of v, so
// negative voltages keep the prefix of their absolute value. Non-finite
// values render as "—".
func Format(v float64, u Unit, style Style) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "—"
	}

	table, ok := prefixes[u]
	if !ok {
		return formatNumber(v)
	}

	p := table[len(table)-1]
	mag := math.Abs(v)
	for _, cand := range table {
		if mag >= cand.min {
			p = cand
			break
		}
	}

	num := formatNumber(v / p.scale)
	if style == Table {
		return num + " " + p.symbol
	}

	return num + p.symbol
}

// formatNumber keeps three significant digits and trims trailing zeros.
func formatNumber(v float64) string {
	if v == 0 {
		return "0"
	}

	digits := 2 - int(math.Floor(math.Log10(math.Abs(v))))
	if digits < 0 {
		digits = 0
	}

	s := strconv.FormatFloat(v, 'f', digits, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}

	if s == "-0" {
		return "0"
	}

	return s
}
