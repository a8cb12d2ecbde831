package calc

import (
	"fmt"
	"strconv"

	"github.com/cwbudde/algo-circuit/circuit/activefilter"
	"github.com/cwbudde/algo-circuit/circuit/units"
	"github.com/cwbudde/algo-circuit/draw/schematic"
)

const (
	signalY     = 100.0
	firstStageX = 60.0
	stageWidth  = 320.0
	sourceX     = 20.0
)

// builder places parts with sequential reference designators and keeps the
// first error, so a layout reads as a flat list of placements and wires.
type builder struct {
	s   *schematic.Schematic
	ids map[string]int
	err error
}

func newBuilder() *builder {
	return &builder{s: schematic.New(), ids: make(map[string]int)}
}

func (b *builder) place(prefix string, kind schematic.Kind, x, y float64, opts ...schematic.PlaceOption) string {
	b.ids[prefix]++
	id := prefix + strconv.Itoa(b.ids[prefix])
	if b.err == nil {
		opts = append([]schematic.PlaceOption{schematic.WithLabel(id)}, opts...)
		b.err = b.s.Place(id, kind, x, y, opts...)
	}
	return id
}

func (b *builder) wire(from, to schematic.Endpoint, route schematic.Route, opts ...schematic.WireOption) {
	if b.err == nil {
		b.err = b.s.Wire(from, to, route, opts...)
	}
}

func (b *builder) node(at schematic.Endpoint) {
	if b.err == nil {
		b.err = b.s.Node(at)
	}
}

func pin(id, name string) schematic.Endpoint {
	return schematic.Pin(id + "." + name)
}

// sallenKeyCascade lays out the design as an AC source followed by one
// equal-component Sallen-Key section per stage and an output probe.
func sallenKeyCascade(d *activefilter.Design) (*schematic.Schematic, error) {
	b := newBuilder()

	src := b.place("V", schematic.KindAC, sourceX, signalY+50,
		schematic.WithValue(1), schematic.WithFrequency(d.Cutoff))
	gnd := b.place("G", schematic.KindGround, sourceX, signalY+100)
	b.wire(pin(src, "n"), pin(gnd, "p"), schematic.Direct)

	in, route := pin(src, "p"), schematic.VH
	x0 := firstStageX
	for _, st := range d.Stages {
		in = b.sallenKeyStage(x0, st, in, route)
		route = schematic.HVH
		x0 += stageWidth
	}

	out := b.place("P", schematic.KindProbe, x0, signalY+20, schematic.WithLabel("Vout"))
	b.wire(in, pin(out, "p"), schematic.Direct)

	if b.err != nil {
		return nil, fmt.Errorf("layout %s %s: %w", d.Family, d.Response, b.err)
	}
	return b.s, nil
}

// sallenKeyStage draws one section with its input at x0 and returns the
// output junction. Lowpass sections use series resistors with the capacitors
// in the feedback and shunt positions; highpass swaps the two.
func (b *builder) sallenKeyStage(x0 float64, st activefilter.Stage, in schematic.Endpoint, route schematic.Route) schematic.Endpoint {
	y := signalY

	seriesKind, seriesPrefix, seriesValue := schematic.KindResistor, "R", st.Resistance
	otherKind, otherPrefix, otherValue := schematic.KindCapacitor, "C", st.Capacitance
	if st.Response == activefilter.Highpass {
		seriesKind, otherKind = otherKind, seriesKind
		seriesPrefix, otherPrefix = otherPrefix, seriesPrefix
		seriesValue, otherValue = otherValue, seriesValue
	}

	s1 := b.place(seriesPrefix, seriesKind, x0+40, y, schematic.WithValue(seriesValue))
	s2 := b.place(seriesPrefix, seriesKind, x0+120, y, schematic.WithValue(seriesValue))
	fb := b.place(otherPrefix, otherKind, x0+120, y-60, schematic.WithValue(otherValue))
	u := b.place("U", schematic.KindOpAmp, x0+240, y+20, schematic.WithFlip())
	sh := b.place(otherPrefix, otherKind, x0+176, y+40, schematic.WithRotation(90), schematic.WithValue(otherValue))
	g := b.place("G", schematic.KindGround, x0+176, y+90)

	out := schematic.At(x0+300, y+20)

	// The series mid-point and the in+ junction are wire ends, so the
	// feedback and shunt parts share a post with the signal path. The in+
	// pin sits 4 units below the signal line in the simulator.
	mid, plus := schematic.At(x0+80, y), schematic.At(x0+176, y)

	b.wire(in, pin(s1, "a"), route)
	b.wire(pin(s1, "b"), mid, schematic.Direct)
	b.wire(mid, pin(s2, "a"), schematic.Direct)
	b.wire(mid, pin(fb, "a"), schematic.VH)
	b.node(mid)
	b.wire(pin(s2, "b"), plus, schematic.Direct)
	b.wire(plus, pin(u, "in+"), schematic.HV)
	b.wire(plus, pin(sh, "a"), schematic.Direct)
	b.node(plus)
	b.wire(pin(sh, "b"), pin(g, "p"), schematic.Direct)
	b.wire(pin(u, "out"), out, schematic.Direct)
	b.wire(pin(fb, "b"), out, schematic.HV)

	if st.GainResistorB > 0 {
		rb := b.place("R", schematic.KindResistor, x0+240, y+80, schematic.WithValue(st.GainResistorB))
		ra := b.place("R", schematic.KindResistor, x0+200, y+120, schematic.WithRotation(90), schematic.WithValue(st.GainResistorA))
		g2 := b.place("G", schematic.KindGround, x0+200, y+170)

		b.wire(pin(u, "in-"), pin(rb, "a"), schematic.VH)
		b.wire(pin(rb, "b"), out, schematic.HV)
		b.wire(schematic.At(x0+200, y+80), pin(ra, "a"), schematic.Direct)
		b.node(schematic.At(x0+200, y+80))
		b.wire(pin(ra, "b"), pin(g2, "p"), schematic.Direct)
	} else {
		b.wire(pin(u, "in-"), out, schematic.VHV, schematic.WithBend(y+60))
	}
	b.node(out)

	if b.err == nil {
		b.s.Label(x0+160, y-90, fmt.Sprintf("Stage %d: Q=%.3f f0=%s",
			st.Index+1, st.ActualQ, units.Format(st.ActualCutoff, units.Hertz, units.Schematic)))
	}
	return out
}

// nonInvertingAmp lays out a single op-amp gain stage: source into in+,
// feedback rf from the output to in-, rg from in- to ground.
func nonInvertingAmp(rf, rg, swing, amplitude, freq float64) (*schematic.Schematic, error) {
	b := newBuilder()
	y := signalY

	src := b.place("V", schematic.KindAC, sourceX+20, y+50,
		schematic.WithValue(amplitude), schematic.WithFrequency(freq))
	g1 := b.place("G", schematic.KindGround, sourceX+20, y+100)
	u := b.place("U", schematic.KindOpAmp, 200, y+20, schematic.WithFlip(), schematic.WithValue(swing))
	f := b.place("R", schematic.KindResistor, 200, y+80, schematic.WithValue(rf))
	g := b.place("R", schematic.KindResistor, 160, y+120, schematic.WithRotation(90), schematic.WithValue(rg))
	g2 := b.place("G", schematic.KindGround, 160, y+170)
	out := b.place("P", schematic.KindProbe, 300, y+20, schematic.WithLabel("Vout"))

	junction := schematic.At(260, y+20)

	b.wire(pin(src, "n"), pin(g1, "p"), schematic.Direct)
	b.wire(pin(src, "p"), pin(u, "in+"), schematic.VH)
	b.wire(pin(u, "in-"), pin(f, "a"), schematic.VH)
	b.wire(pin(f, "b"), junction, schematic.HV)
	b.wire(pin(u, "out"), junction, schematic.Direct)
	b.node(junction)
	b.wire(schematic.At(160, y+80), pin(g, "a"), schematic.Direct)
	b.node(schematic.At(160, y+80))
	b.wire(pin(g, "b"), pin(g2, "p"), schematic.Direct)
	b.wire(junction, pin(out, "p"), schematic.Direct)

	if b.err != nil {
		return nil, fmt.Errorf("layout amplifier: %w", b.err)
	}
	b.s.Label(200, y-30, "±"+units.Format(swing, units.Volt, units.Schematic)+" swing")
	return b.s, nil
}
