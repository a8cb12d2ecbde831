//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/cwbudde/algo-circuit/circuit/activefilter"
	"github.com/cwbudde/algo-circuit/circuit/eseries"
	"github.com/cwbudde/algo-circuit/circuit/units"
	"github.com/cwbudde/algo-circuit/internal/calc"
)

var (
	filter  = calc.NewFilterCalculator(nil)
	clipper = calc.NewClipperCalculator(nil)
	funcs   []js.Func
)

var unitNames = map[string]units.Unit{
	"ohm":   units.Ohm,
	"farad": units.Farad,
	"henry": units.Henry,
	"volt":  units.Volt,
	"amp":   units.Amp,
	"hertz": units.Hertz,
	"ma":    units.MilliAmp,
}

func main() {
	api := js.Global().Get("Object").New()

	api.Set("setFilter", export(func(args []js.Value) any {
		if len(args) < 1 {
			return filterParams(filter.Params())
		}
		p := args[0]
		family := activefilter.FamilyButterworth
		if p.Get("family").String() == "chebyshev" {
			family = activefilter.FamilyChebyshev
		}
		response := activefilter.Lowpass
		if p.Get("type").String() == "highpass" {
			response = activefilter.Highpass
		}
		return filterParams(filter.SetParams(calc.FilterParams{
			Family:      family,
			Response:    response,
			Order:       p.Get("order").Int(),
			RippleDB:    p.Get("ripple").Float(),
			CutoffHz:    p.Get("fc").Float(),
			Capacitance: p.Get("cap").Float(),
		}))
	}))

	api.Set("designFilter", export(func(args []js.Value) any {
		res, err := filter.Calculate()
		if err != nil {
			return err.Error()
		}
		stages := make([]any, len(res.Design.Stages))
		for i, s := range res.Design.Stages {
			stages[i] = map[string]any{
				"r":       s.Resistance,
				"c":       s.Capacitance,
				"ra":      s.GainResistorA,
				"rb":      s.GainResistorB,
				"gain":    s.Gain,
				"targetQ": s.TargetQ,
				"actualQ": s.ActualQ,
				"targetF": s.TargetCutoff,
				"actualF": s.ActualCutoff,
			}
		}
		return map[string]any{
			"params":          filterParams(res.Params),
			"stages":          stages,
			"passbandGain":    res.Design.PassbandGain(),
			"realPoleOmitted": res.Design.RealPoleOmitted,
			"responseSVG":     res.ResponseSVG,
			"schematicSVG":    res.SchematicSVG,
			"simulator":       res.Simulator,
			"link":            res.Link,
		}
	}))

	api.Set("setClipper", export(func(args []js.Value) any {
		if len(args) < 1 {
			return clipperParams(clipper.Params())
		}
		p := args[0]
		return clipperParams(clipper.SetParams(calc.ClipperParams{
			Gain:        p.Get("gain").Float(),
			SwingV:      p.Get("swing").Float(),
			AmplitudeV:  p.Get("amplitude").Float(),
			FrequencyHz: p.Get("freq").Float(),
		}))
	}))

	api.Set("clipper", export(func(args []js.Value) any {
		res, err := clipper.Calculate()
		if err != nil {
			return err.Error()
		}
		levels := make([]any, len(res.Spectrum.Levels))
		for i, v := range res.Spectrum.Levels {
			levels[i] = v
		}
		return map[string]any{
			"params":       clipperParams(res.Params),
			"rf":           res.FeedbackOhms,
			"rg":           res.GroundOhms,
			"gain":         res.Gain,
			"thdPercent":   res.Spectrum.THDPercent(),
			"levels":       levels,
			"waveformSVG":  res.WaveformSVG,
			"transferSVG":  res.TransferSVG,
			"spectrumSVG":  res.SpectrumSVG,
			"schematicSVG": res.SchematicSVG,
			"simulator":    res.Simulator,
			"link":         res.Link,
		}
	}))

	api.Set("roundResistance", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return eseries.RoundResistance(args[0].Float())
	}))

	api.Set("roundCapacitance", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return eseries.RoundCapacitance(args[0].Float())
	}))

	api.Set("format", export(func(args []js.Value) any {
		if len(args) < 2 {
			return ""
		}
		u, ok := unitNames[args[1].String()]
		if !ok {
			return ""
		}
		return units.Format(args[0].Float(), u, units.Schematic)
	}))

	js.Global().Set("AlgoCircuit", api)
	select {}
}

func filterParams(p calc.FilterParams) map[string]any {
	return map[string]any{
		"family": p.Family.String(),
		"type":   p.Response.String(),
		"order":  p.Order,
		"ripple": p.RippleDB,
		"fc":     p.CutoffHz,
		"cap":    p.Capacitance,
	}
}

func clipperParams(p calc.ClipperParams) map[string]any {
	return map[string]any{
		"gain":      p.Gain,
		"swing":     p.SwingV,
		"amplitude": p.AmplitudeV,
		"freq":      p.FrequencyHz,
	}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
