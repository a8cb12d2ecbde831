package schematic

import (
	"math"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-circuit/circuit/units"
)

// twoTerminal is the pin table shared by resistors, capacitors and inductors.
var twoTerminal = PinTable{"a": {X: -32, Y: 0}, "b": {X: 32, Y: 0}}

func caption(p *Pen, label, value string) {
	p.Text(Point{X: 0, Y: -16}, label)
	p.Text(Point{X: 0, Y: 20}, value)
}

type resistor struct{ params Params }

func (resistor) Pins() PinTable { return twoTerminal }

func (r resistor) Draw(p *Pen) {
	p.Line(Point{X: -32}, Point{X: -20})
	zig := []Point{{X: -20}}
	for i := 1; i <= 6; i++ {
		y := 6.0
		if i%2 == 1 {
			y = -6
		}
		zig = append(zig, Point{X: -20 + (float64(i)-0.5)*40/6, Y: y})
	}
	zig = append(zig, Point{X: 20})
	p.Polyline(zig...)
	p.Line(Point{X: 20}, Point{X: 32})
	caption(p, r.params.Label, valueText(r.params.Value, units.Ohm))
}

func (resistor) SimPins() PinTable { return nil }

func (r resistor) Export(at func(Point) Point) string {
	return simLine("r", []Point{at(twoTerminal["a"]), at(twoTerminal["b"])}, "0", simNum(r.params.Value))
}

type capacitor struct{ params Params }

func (capacitor) Pins() PinTable { return twoTerminal }

func (c capacitor) Draw(p *Pen) {
	p.Line(Point{X: -32}, Point{X: -4})
	p.Line(Point{X: -4, Y: -12}, Point{X: -4, Y: 12})
	p.Line(Point{X: 4, Y: -12}, Point{X: 4, Y: 12})
	p.Line(Point{X: 4}, Point{X: 32})
	caption(p, c.params.Label, valueText(c.params.Value, units.Farad))
}

func (capacitor) SimPins() PinTable { return nil }

func (c capacitor) Export(at func(Point) Point) string {
	return simLine("c", []Point{at(twoTerminal["a"]), at(twoTerminal["b"])}, "0", simNum(c.params.Value), "0")
}

type inductor struct{ params Params }

func (inductor) Pins() PinTable { return twoTerminal }

func (l inductor) Draw(p *Pen) {
	p.Line(Point{X: -32}, Point{X: -24})
	for i := 0; i < 4; i++ {
		x := -24 + float64(i)*12
		p.Arc(Point{X: x}, Point{X: x + 12}, 6, true)
	}
	p.Line(Point{X: 24}, Point{X: 32})
	caption(p, l.params.Label, valueText(l.params.Value, units.Henry))
}

func (inductor) SimPins() PinTable { return nil }

func (l inductor) Export(at func(Point) Point) string {
	return simLine("l", []Point{at(twoTerminal["a"]), at(twoTerminal["b"])}, "0", simNum(l.params.Value), "0")
}

var diodePins = PinTable{"a": {X: -32, Y: 0}, "k": {X: 32, Y: 0}}

type diode struct{ params Params }

func (diode) Pins() PinTable { return diodePins }

func (d diode) Draw(p *Pen) {
	p.Line(Point{X: -32}, Point{X: -8})
	p.Polygon(true, Point{X: -8, Y: -10}, Point{X: -8, Y: 10}, Point{X: 8})
	p.Line(Point{X: 8, Y: -10}, Point{X: 8, Y: 10})
	p.Line(Point{X: 8}, Point{X: 32})
	p.Text(Point{Y: -16}, d.params.Label)
}

func (diode) SimPins() PinTable { return nil }

func (diode) Export(at func(Point) Point) string {
	return simLine("d", []Point{at(diodePins["a"]), at(diodePins["k"])}, "2", "default")
}

// singlePin is the table of symbols that connect at their anchor.
var singlePin = PinTable{"p": {}}

type ground struct{}

func (ground) Pins() PinTable { return singlePin }

func (ground) Draw(p *Pen) {
	p.Line(Point{}, Point{Y: 10})
	p.Line(Point{X: -12, Y: 10}, Point{X: 12, Y: 10})
	p.Line(Point{X: -8, Y: 15}, Point{X: 8, Y: 15})
	p.Line(Point{X: -4, Y: 20}, Point{X: 4, Y: 20})
}

func (ground) SimPins() PinTable { return nil }

func (ground) Export(at func(Point) Point) string {
	return simLine("g", []Point{at(Point{}), at(Point{Y: 16})}, "0", "0")
}

type rail struct{ params Params }

func (rail) Pins() PinTable { return singlePin }

func (r rail) Draw(p *Pen) {
	p.Line(Point{}, Point{Y: -12})
	p.Line(Point{X: -10, Y: -12}, Point{X: 10, Y: -12})
	text := units.Format(r.params.Value, units.Volt, units.Schematic)
	if r.params.Value > 0 {
		text = "+" + text
	}
	if r.params.Label != "" {
		text = r.params.Label + " " + text
	}
	p.Text(Point{Y: -22}, text)
}

func (rail) SimPins() PinTable { return nil }

func (r rail) Export(at func(Point) Point) string {
	return simLine("R", []Point{at(Point{}), at(Point{Y: -16})}, "0", "0", "40", simNum(r.params.Value), "0", "0", "0.5")
}

// source is a DC or AC voltage source with its positive terminal on top.
type source struct {
	params Params
	ac     bool
}

var sourcePins = PinTable{"p": {X: 0, Y: -32}, "n": {X: 0, Y: 32}}

func (source) Pins() PinTable { return sourcePins }

func (s source) Draw(p *Pen) {
	p.Line(Point{Y: -32}, Point{Y: -16})
	p.Circle(Point{}, 16, false)
	p.Line(Point{Y: 16}, Point{Y: 32})

	if s.ac {
		p.Arc(Point{X: -8}, Point{}, 4, true)
		p.Arc(Point{}, Point{X: 8}, 4, false)
		p.Text(Point{X: 44, Y: -6}, valueText(s.params.Value, units.Volt))
		p.Text(Point{X: 44, Y: 8}, valueText(s.params.Frequency, units.Hertz))
	} else {
		p.Line(Point{X: -4, Y: -8}, Point{X: 4, Y: -8})
		p.Line(Point{X: 0, Y: -12}, Point{X: 0, Y: -4})
		p.Line(Point{X: -4, Y: 8}, Point{X: 4, Y: 8})
		p.Text(Point{X: 44}, valueText(s.params.Value, units.Volt))
	}
	p.Text(Point{X: -36}, s.params.Label)
}

func (source) SimPins() PinTable { return nil }

func (s source) Export(at func(Point) Point) string {
	ends := []Point{at(sourcePins["n"]), at(sourcePins["p"])}
	if s.ac {
		return simLine("v", ends, "0", "1", simNum(s.params.Frequency), simNum(s.params.Value), "0", "0", "0.5")
	}
	return simLine("v", ends, "0", "0", "40", simNum(s.params.Value), "0", "0", "0.5")
}

// probe marks a measurement point. It has no simulator counterpart.
type probe struct{ params Params }

func (probe) Pins() PinTable { return singlePin }

func (pr probe) Draw(p *Pen) {
	p.Circle(Point{}, 4, false)
	p.Text(Point{Y: -12}, pr.params.Label)
}

type opAmp struct{ params Params }

var (
	opAmpPins    = PinTable{"in-": {X: -40, Y: -20}, "in+": {X: -40, Y: 20}, "out": {X: 40, Y: 0}}
	opAmpSimPins = PinTable{"in-": {X: -40, Y: -16}, "in+": {X: -40, Y: 16}, "out": {X: 40, Y: 0}}
)

func (opAmp) Pins() PinTable { return opAmpPins }

func (o opAmp) Draw(p *Pen) {
	p.Polygon(false, Point{X: -28, Y: -32}, Point{X: -28, Y: 32}, Point{X: 28})
	p.Line(Point{X: -40, Y: -20}, Point{X: -28, Y: -20})
	p.Line(Point{X: -40, Y: 20}, Point{X: -28, Y: 20})
	p.Line(Point{X: 28}, Point{X: 40})

	p.Line(Point{X: -23, Y: -20}, Point{X: -17, Y: -20})
	p.Line(Point{X: -23, Y: 20}, Point{X: -17, Y: 20})
	p.Line(Point{X: -20, Y: 17}, Point{X: -20, Y: 23})
	p.Text(Point{X: 4, Y: -30}, o.params.Label)
}

func (opAmp) SimPins() PinTable { return opAmpSimPins }

const (
	opAmpFlagGain = 8
	opAmpFlagSwap = 1

	defaultOpAmpSwing = 15.0
)

// Export places the simulator's op-amp between the input side and the
// output. The simulator derives the inverting input position from the
// element direction; the swap flag is set when that disagrees with ours.
// A positive value sets the symmetric output swing in volts.
func (o opAmp) Export(at func(Point) Point) string {
	in := at(Point{X: -40})
	out := at(opAmpSimPins["out"])
	flags := opAmpFlagGain
	if !near(in.Add(simNormal(in, out, 16)), at(opAmpSimPins["in-"])) {
		flags |= opAmpFlagSwap
	}
	swing := defaultOpAmpSwing
	if o.params.Value > 0 {
		swing = o.params.Value
	}
	return simLine("a", []Point{in, out}, strconv.Itoa(flags), simNum(swing), simNum(-swing), "0")
}

type transistor struct {
	params   Params
	polarity float64 // +1 NPN, -1 PNP
}

func (t transistor) Pins() PinTable {
	return PinTable{
		"b": {X: -30, Y: 0},
		"c": {X: 0, Y: -30 * t.polarity},
		"e": {X: 0, Y: 30 * t.polarity},
	}
}

func (t transistor) Draw(p *Pen) {
	s := t.polarity
	p.Line(Point{X: -30}, Point{X: -10})
	p.Line(Point{X: -10, Y: -14}, Point{X: -10, Y: 14})
	p.Polyline(Point{X: -10, Y: -7 * s}, Point{X: 0, Y: -18 * s}, Point{X: 0, Y: -30 * s})
	p.Polyline(Point{X: -10, Y: 7 * s}, Point{X: 0, Y: 18 * s}, Point{X: 0, Y: 30 * s})

	// Emitter arrow: outward for NPN, towards the base for PNP.
	tip, tail := Point{X: 0, Y: 18 * s}, Point{X: -10, Y: 7 * s}
	if s < 0 {
		tip, tail = tail, tip
	}
	dx, dy := tip.X-tail.X, tip.Y-tail.Y
	l := math.Hypot(dx, dy)
	ux, uy := dx/l, dy/l
	base := Point{X: tip.X - 7*ux, Y: tip.Y - 7*uy}
	p.Polygon(true, tip,
		Point{X: base.X - 3.5*uy, Y: base.Y + 3.5*ux},
		Point{X: base.X + 3.5*uy, Y: base.Y - 3.5*ux})

	p.Text(Point{X: 22}, t.params.Label)
}

func (t transistor) SimPins() PinTable {
	return PinTable{
		"b": {X: -32, Y: 0},
		"c": {X: 0, Y: -16 * t.polarity},
		"e": {X: 0, Y: 16 * t.polarity},
	}
}

const transistorFlagFlip = 1

// Export places the simulator's transistor from the base to the point between
// collector and emitter. As with the op-amp, the flip flag corrects the
// collector side when the simulator would put it elsewhere.
func (t transistor) Export(at func(Point) Point) string {
	b := at(Point{X: -32})
	mid := at(Point{})
	flags := 0
	if !near(mid.Add(simNormal(b, mid, 16*t.polarity)), at(t.SimPins()["c"])) {
		flags |= transistorFlagFlip
	}
	return simLine("t", []Point{b, mid}, strconv.Itoa(flags), simNum(t.polarity), "0", "0", "100")
}

// simNormal returns the offset of length h perpendicular to a->b, on the
// side the simulator treats as positive for that element direction.
func simNormal(a, b Point, h float64) Point {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return Point{}
	}
	sign := math.Copysign(1, dy)
	if dy == 0 {
		sign = math.Copysign(1, dx)
	}
	h *= sign
	return Point{X: h * dy / l, Y: -h * dx / l}
}

func near(a, b Point) bool {
	return math.Abs(a.X-b.X) < 0.5 && math.Abs(a.Y-b.Y) < 0.5
}

func valueText(v float64, u units.Unit) string {
	if v == 0 {
		return ""
	}
	return units.Format(v, u, units.Schematic)
}

// simLine formats one simulator element: tag, integer endpoint coordinates,
// then the type-specific fields.
func simLine(tag string, pts []Point, fields ...string) string {
	parts := make([]string, 0, 1+2*len(pts)+len(fields))
	parts = append(parts, tag)
	for _, p := range pts {
		parts = append(parts, simCoord(p.X), simCoord(p.Y))
	}
	parts = append(parts, fields...)
	return strings.Join(parts, " ")
}

func simCoord(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

func simNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
