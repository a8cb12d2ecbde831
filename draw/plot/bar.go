package plot

import (
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

// BarPlot draws one bar per category over a fixed y range, -60 dB to 0 dB by
// default. Bars grow from the bottom of the range and are clamped into it.
type BarPlot struct {
	cfg  Config
	bars []bar
}

type bar struct {
	label string
	value float64
	style Style
}

// minLabelHeight is the bar height in pixels below which no value is drawn.
const minLabelHeight = 16

// NewBarPlot returns an empty bar plot.
func NewBarPlot(opts ...Option) *BarPlot {
	base := defaultConfig()
	base.YMin, base.YMax = -60, 0
	base.YLabel = "Level (dB)"
	return &BarPlot{cfg: applyOptions(base, opts)}
}

// AddBar appends a bar for category label.
func (p *BarPlot) AddBar(label string, value float64, style Style) *BarPlot {
	p.bars = append(p.bars, bar{label: label, value: value, style: barStyle(style, len(p.bars))})
	return p
}

// Range returns the y range Render uses.
func (p *BarPlot) Range() (yMin, yMax float64) {
	return p.cfg.YMin, p.cfg.YMax
}

// Render returns the plot as an SVG document.
func (p *BarPlot) Render() string {
	f := frame{
		cfg: p.cfg,
		x:   axis{min: 0, max: math.Max(1, float64(len(p.bars)))},
		y:   axis{min: p.cfg.YMin, max: p.cfg.YMax},
	}
	return f.document(func(c *svg.SVG) {
		f.grid(c, nil, linearTicks(f.y))
		if len(p.bars) == 0 {
			return
		}

		slot := (f.right() - f.left()) / float64(len(p.bars))
		width := 0.7 * slot
		for i, b := range p.bars {
			cx := f.left() + (float64(i)+0.5)*slot
			c.Text(cx, f.bottom()+14, b.label, tickText+";text-anchor:middle")
			if math.IsNaN(b.value) {
				continue
			}

			top := f.mapY(b.value)
			height := f.bottom() - top
			if height <= 0 {
				continue
			}
			c.Rect(cx-width/2, top, width, height, "fill:"+b.style.Color)

			if p.cfg.BarValueLabels && height >= minLabelHeight {
				c.Text(cx, top+12, formatBarValue(b.value), tickText+";text-anchor:middle;fill:#ffffff")
			}
		}
	})
}

func formatBarValue(v float64) string {
	if math.IsInf(v, 1) {
		return "+inf"
	}
	if math.IsInf(v, -1) {
		return "-inf"
	}
	return strconv.FormatFloat(v, 'f', 1, 64)
}
