// Package raster renders frequency responses as PNG images for command-line
// output, where an SVG string is less convenient than an image file.
package raster

import (
	"errors"
	"fmt"
	"io"
	"math"

	gplot "gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/cwbudde/algo-circuit/draw/plot"
)

// ErrNoCurves is returned when no curve has two points inside the frequency range.
var ErrNoCurves = errors.New("raster: no curve has plottable points")

// Curve is one labelled response trace; X is frequency in Hz, Y is dB.
type Curve struct {
	Label  string
	Points []plot.Point
}

// Config holds the image layout.
type Config struct {
	Width, Height vg.Length
	Title         string
	FMin, FMax    float64
	DBMin, DBMax  float64
}

// Option mutates a Config.
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		Width:  16 * vg.Centimeter,
		Height: 10 * vg.Centimeter,
		FMin:   10,
		FMax:   100e3,
		DBMin:  -60,
		DBMax:  10,
	}
}

// WithSize sets the image size.
func WithSize(width, height vg.Length) Option {
	return func(cfg *Config) {
		if width > 0 && height > 0 {
			cfg.Width, cfg.Height = width, height
		}
	}
}

// WithTitle sets the caption above the plot.
func WithTitle(title string) Option {
	return func(cfg *Config) { cfg.Title = title }
}

// WithFrequencyRange sets the x axis in Hz. Ignored unless 0 < min < max.
func WithFrequencyRange(min, max float64) Option {
	return func(cfg *Config) {
		if min > 0 && min < max {
			cfg.FMin, cfg.FMax = min, max
		}
	}
}

// WithLevelRange sets the y axis in dB. Ignored unless min < max.
func WithLevelRange(min, max float64) Option {
	return func(cfg *Config) {
		if min < max {
			cfg.DBMin, cfg.DBMax = min, max
		}
	}
}

// ResponsePNG draws curves over a logarithmic frequency axis and writes the
// PNG image to w. Points outside the level range are clamped to it; NaN
// points and points outside the frequency range are skipped.
func ResponsePNG(w io.Writer, curves []Curve, opts ...Option) error {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	p := gplot.New()
	p.Title.Text = cfg.Title
	p.X.Label.Text = "Frequency (Hz)"
	p.Y.Label.Text = "Gain (dB)"
	p.X.Scale = gplot.LogScale{}
	p.X.Tick.Marker = gplot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	drawn := 0
	for i, c := range curves {
		xys := clampedXYs(c.Points, cfg)
		if len(xys) < 2 {
			continue
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("raster: curve %q: %w", c.Label, err)
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
		if c.Label != "" {
			p.Legend.Add(c.Label, line)
		}
		drawn++
	}
	if drawn == 0 {
		return ErrNoCurves
	}

	p.X.Min, p.X.Max = cfg.FMin, cfg.FMax
	p.Y.Min, p.Y.Max = cfg.DBMin, cfg.DBMax
	p.Legend.Top = true

	canvas := vgimg.New(cfg.Width, cfg.Height)
	p.Draw(draw.New(canvas))
	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(w); err != nil {
		return fmt.Errorf("raster: write png: %w", err)
	}
	return nil
}

func clampedXYs(pts []plot.Point, cfg Config) plotter.XYs {
	xys := make(plotter.XYs, 0, len(pts))
	for _, pt := range pts {
		if math.IsNaN(pt.X) || math.IsNaN(pt.Y) || pt.X < cfg.FMin || pt.X > cfg.FMax {
			continue
		}
		xys = append(xys, plotter.XY{X: pt.X, Y: math.Max(cfg.DBMin, math.Min(cfg.DBMax, pt.Y))})
	}
	return xys
}
