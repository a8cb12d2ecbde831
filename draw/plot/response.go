package plot

import (
	"math"

	svg "github.com/ajstarks/svgo/float"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-circuit/circuit/units"
)

// ResponsePlot draws magnitude responses over a logarithmic frequency axis.
type ResponsePlot struct {
	cfg Config
	layers
}

// NewResponsePlot returns an empty response plot spanning 10 Hz to 100 kHz
// and -60 dB to +10 dB unless overridden by options.
func NewResponsePlot(opts ...Option) *ResponsePlot {
	base := defaultConfig()
	base.XMin, base.XMax = 10, 100e3
	base.YMin, base.YMax = -60, 10
	base.XLabel = "Frequency"
	base.YLabel = "Gain (dB)"
	cfg := applyOptions(base, opts)
	if cfg.XMin <= 0 {
		cfg.XMin, cfg.XMax = 10, 100e3
	}
	return &ResponsePlot{cfg: cfg}
}

// AddCurve appends a response curve; X is frequency in Hz, Y is dB.
func (p *ResponsePlot) AddCurve(points []Point, style Style) *ResponsePlot {
	p.addCurve(points, style)
	return p
}

// AddHLine adds a horizontal reference line at db.
func (p *ResponsePlot) AddHLine(db float64, style Style) *ResponsePlot {
	p.addHLine(db, style)
	return p
}

// AddVLine adds a vertical reference line at hz.
func (p *ResponsePlot) AddVLine(hz float64, style Style) *ResponsePlot {
	p.addVLine(hz, style)
	return p
}

func (p *ResponsePlot) frame() frame {
	return frame{
		cfg: p.cfg,
		x:   axis{min: p.cfg.XMin, max: p.cfg.XMax, log: true},
		y:   axis{min: p.cfg.YMin, max: p.cfg.YMax},
	}
}

// Render returns the plot as an SVG document.
func (p *ResponsePlot) Render() string {
	f := p.frame()
	return f.document(func(c *svg.SVG) {
		f.grid(c, decadeTicks(f.x, frequencyLabel), linearTicks(f.y))
		f.layers(c, &p.layers)
	})
}

func frequencyLabel(hz float64) string {
	return units.Format(hz, units.Hertz, units.Schematic)
}

// SampleResponse evaluates mag at n logarithmically spaced frequencies
// between fMin and fMax and returns the levels in dB. With normalize set the
// curve is shifted so its maximum is 0 dB. Invalid ranges or n < 2 return nil.
func SampleResponse(mag func(f float64) float64, fMin, fMax float64, n int, normalize bool) []Point {
	if mag == nil || n < 2 || !(fMin > 0) || !(fMax > fMin) || math.IsInf(fMax, 0) {
		return nil
	}

	freqs := make([]float64, n)
	levels := make([]float64, n)
	ratio := math.Log(fMax / fMin)
	for i := range freqs {
		freqs[i] = fMin * math.Exp(ratio*float64(i)/float64(n-1))
		levels[i] = mag(freqs[i])
	}
	freqs[n-1] = fMax

	if normalize {
		peak := 0.0
		for _, v := range levels {
			if !math.IsNaN(v) && !math.IsInf(v, 0) && math.Abs(v) > peak {
				peak = math.Abs(v)
			}
		}
		if peak > 0 {
			vecmath.ScaleBlock(levels, levels, 1/peak)
		}
	}

	points := make([]Point, n)
	for i := range points {
		points[i] = Point{X: freqs[i], Y: 20 * math.Log10(math.Abs(levels[i]))}
	}
	return points
}
