// Command filterinfo designs a Sallen-Key active filter cascade from
// standard parts and prints the stage table.
//
// Usage:
//
//	filterinfo [flags]
//
// Examples:
//
//	filterinfo -order 4 -fc 1000
//	filterinfo -family chebyshev -ripple 0.5 -order 6 -type highpass -fc 250
//	filterinfo -fc 3400 -cap 4.7e-9 -svg response.svg -schematic cascade.svg
//	filterinfo -fc 1000 -png response.png -falstad
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-circuit/circuit/activefilter"
	"github.com/cwbudde/algo-circuit/circuit/units"
	"github.com/cwbudde/algo-circuit/draw/raster"
	"github.com/cwbudde/algo-circuit/internal/calc"
)

func main() {
	family := flag.String("family", "butterworth", "approximation: butterworth or chebyshev")
	typ := flag.String("type", "lowpass", "response: lowpass or highpass")
	order := flag.Int("order", 4, "filter order (2-8; butterworth orders are even)")
	ripple := flag.Float64("ripple", 1, "chebyshev pass-band ripple in dB")
	fc := flag.Float64("fc", 1000, "cutoff frequency in Hz")
	capacitance := flag.Float64("cap", 10e-9, "capacitor value in farads, snapped to the nearest standard value")
	svgPath := flag.String("svg", "", "write the response plot as SVG to this file")
	schematicPath := flag.String("schematic", "", "write the schematic as SVG to this file")
	exportPath := flag.String("export", "", "write the circuit simulator text to this file")
	pngPath := flag.String("png", "", "write the response plot as PNG to this file")
	link := flag.Bool("falstad", false, "print a circuit simulator link")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: filterinfo [flags]\n\n")
		fmt.Fprintf(os.Stderr, "Designs a unity-capacitor Sallen-Key cascade with E24 resistors.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -order 4 -fc 1000\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -family chebyshev -ripple 0.5 -order 6 -type highpass -fc 250\n")
		fmt.Fprintf(os.Stderr, "  filterinfo -fc 1000 -png response.png -falstad\n")
	}
	flag.Parse()

	fam, err := parseFamily(*family)
	if err != nil {
		fatal(err)
	}
	resp, err := parseResponse(*typ)
	if err != nil {
		fatal(err)
	}

	c := calc.NewFilterCalculator(nil)
	p := c.SetParams(calc.FilterParams{
		Family:      fam,
		Response:    resp,
		Order:       *order,
		RippleDB:    *ripple,
		CutoffHz:    *fc,
		Capacitance: *capacitance,
	})
	if p.Order != *order {
		fmt.Fprintf(os.Stderr, "warning: order %d adjusted to %d\n", *order, p.Order)
	}

	res, err := c.Calculate()
	if err != nil {
		fatal(err)
	}

	printDesign(res.Design)

	if err := writeFile(*svgPath, res.ResponseSVG); err != nil {
		fatal(err)
	}
	if err := writeFile(*schematicPath, res.SchematicSVG); err != nil {
		fatal(err)
	}
	if err := writeFile(*exportPath, res.Simulator); err != nil {
		fatal(err)
	}
	if err := writePNG(*pngPath, res); err != nil {
		fatal(err)
	}
	if *link {
		fmt.Println()
		fmt.Println(res.Link)
	}
}

func parseFamily(s string) (activefilter.Family, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "butterworth", "bw":
		return activefilter.FamilyButterworth, nil
	case "chebyshev", "cheby":
		return activefilter.FamilyChebyshev, nil
	}
	return 0, fmt.Errorf("unknown family %q (use butterworth or chebyshev)", s)
}

func parseResponse(s string) (activefilter.Response, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lowpass", "lp":
		return activefilter.Lowpass, nil
	case "highpass", "hp":
		return activefilter.Highpass, nil
	}
	return 0, fmt.Errorf("unknown type %q (use lowpass or highpass)", s)
}

func printDesign(d *activefilter.Design) {
	fmt.Printf("%s %s, order %d, fc %s, C %s\n", d.Family, d.Response, d.Order,
		units.Format(d.Cutoff, units.Hertz, units.Table),
		units.Format(d.Capacitance, units.Farad, units.Table))
	if d.RealPoleOmitted {
		fmt.Println("note: odd order, the real pole has no section")
	}
	fmt.Println()

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintf(tw, "Stage\tR\tRa\tRb\tGain\tQ target\tQ actual\tf0 target\tf0 actual\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}
	if _, err := fmt.Fprintf(tw, "-----\t-\t--\t--\t----\t--------\t--------\t---------\t---------\n"); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output header: %v\n", err)
		return
	}

	for _, s := range d.Stages {
		rb := "short"
		if s.GainResistorB > 0 {
			rb = units.Format(s.GainResistorB, units.Ohm, units.Table)
		}
		if _, err := fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%.3f\t%.4f\t%.4f\t%s\t%s\n",
			s.Index+1,
			units.Format(s.Resistance, units.Ohm, units.Table),
			units.Format(s.GainResistorA, units.Ohm, units.Table),
			rb,
			s.Gain,
			s.TargetQ,
			s.ActualQ,
			units.Format(s.TargetCutoff, units.Hertz, units.Table),
			units.Format(s.ActualCutoff, units.Hertz, units.Table),
		); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "error: failed to write output row: %v\n", err)
			return
		}
	}
	if err := tw.Flush(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: failed to flush output: %v\n", err)
	}

	fmt.Printf("\npass-band gain %.3f\n", d.PassbandGain())
}

func writeFile(path, content string) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

func writePNG(path string, res *calc.FilterResult) (err error) {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
	}()

	fMin, fMax := res.Realized[0].X, res.Realized[len(res.Realized)-1].X
	return raster.ResponsePNG(f, []raster.Curve{
		{Label: "ideal", Points: res.Ideal},
		{Label: "E24 parts", Points: res.Realized},
	},
		raster.WithTitle(fmt.Sprintf("%s %s, order %d", res.Design.Family, res.Design.Response, res.Design.Order)),
		raster.WithFrequencyRange(fMin, fMax),
		raster.WithLevelRange(-80, 10),
	)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
