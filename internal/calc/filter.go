package calc

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-circuit/circuit/activefilter"
	"github.com/cwbudde/algo-circuit/circuit/eseries"
	"github.com/cwbudde/algo-circuit/circuit/units"
	"github.com/cwbudde/algo-circuit/draw/plot"
	"github.com/cwbudde/algo-circuit/draw/schematic"
)

const (
	minOrder      = 2
	maxOrder      = 8
	responsePoint = 256
	// responseSpan is how many decades the plot reaches on either side of fc.
	responseSpan = 2.0
)

// ErrNoDesign is returned when the filter parameters yield no cascade.
var ErrNoDesign = errors.New("calc: no filter design for parameters")

// FilterParams defines the active filter calculator inputs.
type FilterParams struct {
	Family      activefilter.Family
	Response    activefilter.Response
	Order       int
	RippleDB    float64
	CutoffHz    float64
	Capacitance float64
}

// FilterResult holds everything derived from one parameter set.
type FilterResult struct {
	Params FilterParams
	Design *activefilter.Design

	// Realized and Ideal are normalized responses in dB over the plot range.
	Realized []plot.Point
	Ideal    []plot.Point

	ResponseSVG  string
	SchematicSVG string
	Simulator    string
	Link         string
}

// FilterCalculator turns filter parameters into a design, its plots, the
// schematic and a simulator export.
type FilterCalculator struct {
	params FilterParams
	codec  schematic.Codec
}

// NewFilterCalculator returns a calculator preset to a 4th-order 1 kHz
// Butterworth lowpass with 10 nF capacitors. A nil codec selects the
// simulator's own link compression.
func NewFilterCalculator(codec schematic.Codec) *FilterCalculator {
	return &FilterCalculator{
		params: FilterParams{
			Family:      activefilter.FamilyButterworth,
			Response:    activefilter.Lowpass,
			Order:       4,
			RippleDB:    1,
			CutoffHz:    1000,
			Capacitance: 10e-9,
		},
		codec: codec,
	}
}

// Params returns the current, clamped parameters.
func (c *FilterCalculator) Params() FilterParams {
	return c.params
}

// SetParams clamps p into the supported range and stores it. Butterworth
// orders are rounded up to the next even order; the capacitance snaps to the
// nearest standard value. The stored parameters are returned.
func (c *FilterCalculator) SetParams(p FilterParams) FilterParams {
	if p.Family != activefilter.FamilyChebyshev {
		p.Family = activefilter.FamilyButterworth
	}
	if p.Response != activefilter.Highpass {
		p.Response = activefilter.Lowpass
	}

	if p.Order < minOrder {
		p.Order = minOrder
	}
	if p.Order > maxOrder {
		p.Order = maxOrder
	}
	if p.Family == activefilter.FamilyButterworth && p.Order%2 != 0 {
		p.Order++
	}

	p.RippleDB = clamp(p.RippleDB, 0.01, 3)
	p.CutoffHz = clamp(p.CutoffHz, 1, 1e6)
	p.Capacitance = eseries.RoundCapacitance(clamp(p.Capacitance, 10e-12, 10e-6))

	c.params = p
	return p
}

// Calculate designs the filter for the current parameters.
func (c *FilterCalculator) Calculate() (*FilterResult, error) {
	p := c.params

	var d *activefilter.Design
	switch p.Family {
	case activefilter.FamilyChebyshev:
		d = activefilter.Chebyshev(p.Response, p.Order, p.RippleDB, p.CutoffHz, p.Capacitance)
	default:
		d = activefilter.Butterworth(p.Response, p.Order, p.CutoffHz, p.Capacitance)
	}
	if d == nil || len(d.Stages) == 0 {
		return nil, fmt.Errorf("%w: %s %s order %d", ErrNoDesign, p.Family, p.Response, p.Order)
	}

	fMin, fMax := responseRange(p.CutoffHz)
	res := &FilterResult{
		Params:   p,
		Design:   d,
		Realized: plot.SampleResponse(d.Magnitude, fMin, fMax, responsePoint, true),
		Ideal:    plot.SampleResponse(d.IdealMagnitude, fMin, fMax, responsePoint, true),
	}

	title := fmt.Sprintf("%s %s, order %d, fc %s", p.Family, p.Response, p.Order,
		units.Format(p.CutoffHz, units.Hertz, units.Schematic))
	res.ResponseSVG = plot.NewResponsePlot(
		plot.WithXRange(fMin, fMax),
		plot.WithYRange(-80, 10),
		plot.WithTitle(title),
	).
		AddCurve(res.Ideal, plot.Style{Label: "ideal", Dash: plot.DashDotted}).
		AddCurve(res.Realized, plot.Style{Label: "E24 parts"}).
		AddHLine(-3, plot.Style{Label: "-3 dB"}).
		AddVLine(p.CutoffHz, plot.Style{}).
		Render()

	sch, err := sallenKeyCascade(d)
	if err != nil {
		return nil, err
	}
	res.SchematicSVG = sch.Render()
	res.Simulator = sch.Export(schematic.WithTimeStep(1 / (200 * p.CutoffHz)))

	res.Link, err = schematic.Link(res.Simulator, c.codec)
	if err != nil {
		return nil, fmt.Errorf("simulator link: %w", err)
	}
	return res, nil
}

func responseRange(fc float64) (fMin, fMax float64) {
	span := math.Pow(10, responseSpan)
	return fc / span, fc * span
}

func clamp(v, minV, maxV float64) float64 {
	if math.IsNaN(v) {
		return minV
	}
	if v < minV {
		return minV
	}
	if v > maxV {
		return maxV
	}
	return v
}
