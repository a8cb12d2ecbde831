package plot

import (
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/cwbudde/algo-vecmath"
)

// WaveformPlot draws time-domain signals. The x range follows the data
// extent unless fixed with WithXRange; the y range is always symmetric about
// zero at 1.1 times the largest magnitude seen, reference lines included.
type WaveformPlot struct {
	cfg Config
	layers
}

// NewWaveformPlot returns an empty waveform plot.
func NewWaveformPlot(opts ...Option) *WaveformPlot {
	base := defaultConfig()
	base.XLabel = "Time (s)"
	base.YLabel = "Amplitude"
	return &WaveformPlot{cfg: applyOptions(base, opts)}
}

// AddCurve appends a signal; X is time, Y is amplitude.
func (p *WaveformPlot) AddCurve(points []Point, style Style) *WaveformPlot {
	p.addCurve(points, style)
	return p
}

// AddHLine adds a horizontal reference line, for example a clipping level.
func (p *WaveformPlot) AddHLine(y float64, style Style) *WaveformPlot {
	p.addHLine(y, style)
	return p
}

// Range returns the axis ranges Render uses.
func (p *WaveformPlot) Range() (xMin, xMax, yMin, yMax float64) {
	xMin, xMax = p.cfg.XMin, p.cfg.XMax
	if !p.cfg.xFixed {
		xMin, xMax = extent(p.curves, func(pt Point) float64 { return pt.X })
	}

	ys := finiteValues(p.curves, func(pt Point) float64 { return pt.Y })
	for _, h := range p.hlines {
		if isFinite(h.value) {
			ys = append(ys, h.value)
		}
	}
	yMax = symmetricLimit(ys)
	return xMin, xMax, -yMax, yMax
}

// Render returns the plot as an SVG document.
func (p *WaveformPlot) Render() string {
	xMin, xMax, yMin, yMax := p.Range()
	f := frame{cfg: p.cfg, x: axis{min: xMin, max: xMax}, y: axis{min: yMin, max: yMax}}
	return f.document(func(c *svg.SVG) {
		f.grid(c, linearTicks(f.x), linearTicks(f.y))
		y0 := f.mapY(0)
		c.Line(f.left(), y0, f.right(), y0, "stroke:#555555;stroke-width:1")
		f.layers(c, &p.layers)
	})
}

// symmetricLimit returns 1.1 times the largest magnitude in vs, or 1 when vs
// holds nothing but zeros.
func symmetricLimit(vs []float64) float64 {
	if len(vs) == 0 {
		return 1
	}
	m := vecmath.MaxAbs(vs)
	if !(m > 0) {
		return 1
	}
	return 1.1 * m
}

func extent(curves []curve, pick func(Point) float64) (float64, float64) {
	vs := finiteValues(curves, pick)
	if len(vs) == 0 {
		return 0, 1
	}
	lo, hi := vs[0], vs[0]
	for _, v := range vs[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if lo == hi {
		return lo - 0.5, hi + 0.5
	}
	return lo, hi
}

func finiteValues(curves []curve, pick func(Point) float64) []float64 {
	var vs []float64
	for _, cv := range curves {
		for _, pt := range cv.points {
			if v := pick(pt); isFinite(v) {
				vs = append(vs, v)
			}
		}
	}
	return vs
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
