package calc

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-circuit/circuit/eseries"
	"github.com/cwbudde/algo-circuit/draw/plot"
	"github.com/cwbudde/algo-circuit/draw/schematic"
	"github.com/cwbudde/algo-circuit/measure/harmonics"
)

const (
	groundLegOhms   = 10000.0
	clipperSamples  = 1024
	clipperCycles   = 4
	clipperHarmonic = 9
	transferPoints  = 121
)

// ClipperParams defines the op-amp clipping calculator inputs.
type ClipperParams struct {
	Gain        float64
	SwingV      float64
	AmplitudeV  float64
	FrequencyHz float64
}

// ClipperResult describes a non-inverting stage driven into its output
// limits.
type ClipperResult struct {
	Params ClipperParams

	FeedbackOhms float64
	GroundOhms   float64
	Gain         float64
	Spectrum     harmonics.Spectrum

	WaveformSVG  string
	TransferSVG  string
	SpectrumSVG  string
	SchematicSVG string
	Simulator    string
	Link         string
}

// ClipperCalculator models a non-inverting amplifier with hard output
// limits: gain from standard resistors, waveforms, transfer curve and the
// resulting harmonic spectrum.
type ClipperCalculator struct {
	params ClipperParams
	codec  schematic.Codec
}

// NewClipperCalculator returns a calculator preset to a gain of 10 with
// ±12 V swing driven by a 2 V, 1 kHz sine.
func NewClipperCalculator(codec schematic.Codec) *ClipperCalculator {
	return &ClipperCalculator{
		params: ClipperParams{Gain: 10, SwingV: 12, AmplitudeV: 2, FrequencyHz: 1000},
		codec:  codec,
	}
}

// Params returns the current, clamped parameters.
func (c *ClipperCalculator) Params() ClipperParams {
	return c.params
}

// SetParams clamps p and stores it.
func (c *ClipperCalculator) SetParams(p ClipperParams) ClipperParams {
	p.Gain = clamp(p.Gain, 1.1, 1000)
	p.SwingV = clamp(p.SwingV, 0.5, 50)
	p.AmplitudeV = clamp(p.AmplitudeV, 0.001, 50)
	p.FrequencyHz = clamp(p.FrequencyHz, 1, 1e6)
	c.params = p
	return p
}

// Calculate evaluates the stage for the current parameters.
func (c *ClipperCalculator) Calculate() (*ClipperResult, error) {
	p := c.params

	res := &ClipperResult{
		Params:       p,
		GroundOhms:   groundLegOhms,
		FeedbackOhms: eseries.RoundResistance((p.Gain - 1) * groundLegOhms),
	}
	res.Gain = 1 + res.FeedbackOhms/res.GroundOhms

	transfer := func(v float64) float64 {
		return clamp(res.Gain*v, -p.SwingV, p.SwingV)
	}

	input := make([]float64, clipperSamples)
	output := make([]float64, clipperSamples)
	for i := range input {
		input[i] = p.AmplitudeV * math.Sin(2*math.Pi*clipperCycles*float64(i)/clipperSamples)
		output[i] = transfer(input[i])
	}

	spec, err := harmonics.Analyze(output, clipperCycles, clipperHarmonic)
	if err != nil {
		return nil, fmt.Errorf("clipper spectrum: %w", err)
	}
	res.Spectrum = spec
	res.SpectrumSVG = spec.Plot(plot.WithYRange(-80, 0)).Render()

	res.WaveformSVG = waveformPlot(p, input, output).Render()
	res.TransferSVG = transferPlot(p, transfer).Render()

	sch, err := nonInvertingAmp(res.FeedbackOhms, res.GroundOhms, p.SwingV, p.AmplitudeV, p.FrequencyHz)
	if err != nil {
		return nil, err
	}
	res.SchematicSVG = sch.Render()
	res.Simulator = sch.Export(
		schematic.WithTimeStep(1/(200*p.FrequencyHz)),
		schematic.WithVoltageRange(p.SwingV),
	)

	res.Link, err = schematic.Link(res.Simulator, c.codec)
	if err != nil {
		return nil, fmt.Errorf("simulator link: %w", err)
	}
	return res, nil
}

// waveformPlot shows the first two periods of input and output against
// time in milliseconds.
func waveformPlot(p ClipperParams, input, output []float64) *plot.WaveformPlot {
	n := clipperSamples * 2 / clipperCycles
	periodMS := 1000 / p.FrequencyHz
	in := make([]plot.Point, n)
	out := make([]plot.Point, n)
	for i := 0; i < n; i++ {
		t := periodMS * clipperCycles * float64(i) / clipperSamples
		in[i] = plot.Point{X: t, Y: input[i]}
		out[i] = plot.Point{X: t, Y: output[i]}
	}

	return plot.NewWaveformPlot(plot.WithXLabel("Time (ms)"), plot.WithYLabel("Voltage (V)")).
		AddCurve(in, plot.Style{Label: "input"}).
		AddCurve(out, plot.Style{Label: "output"}).
		AddHLine(p.SwingV, plot.Style{Label: "swing"}).
		AddHLine(-p.SwingV, plot.Style{})
}

func transferPlot(p ClipperParams, transfer func(float64) float64) *plot.TransferPlot {
	pts := make([]plot.Point, transferPoints)
	for i := range pts {
		v := -p.AmplitudeV + 2*p.AmplitudeV*float64(i)/float64(transferPoints-1)
		pts[i] = plot.Point{X: v, Y: transfer(v)}
	}

	return plot.NewTransferPlot(
		plot.WithXLabel("Input (V)"),
		plot.WithYLabel("Output (V)"),
		plot.WithLinearReference(),
	).
		AddCurve(pts, plot.Style{Label: "transfer"}).
		AddHLine(p.SwingV, plot.Style{}).
		AddHLine(-p.SwingV, plot.Style{})
}
