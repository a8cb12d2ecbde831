package plot

import (
	svg "github.com/ajstarks/svgo/float"
)

// TransferPlot draws output against input, with each axis independently
// symmetric about zero. WithLinearReference adds the diagonal from the
// bottom-left to the top-right corner, which is the undistorted transfer
// when both axes share a scale.
type TransferPlot struct {
	cfg Config
	layers
}

// NewTransferPlot returns an empty transfer-curve plot.
func NewTransferPlot(opts ...Option) *TransferPlot {
	base := defaultConfig()
	base.XLabel = "Input"
	base.YLabel = "Output"
	return &TransferPlot{cfg: applyOptions(base, opts)}
}

// AddCurve appends a transfer curve.
func (p *TransferPlot) AddCurve(points []Point, style Style) *TransferPlot {
	p.addCurve(points, style)
	return p
}

// AddHLine adds a horizontal reference line at output level y.
func (p *TransferPlot) AddHLine(y float64, style Style) *TransferPlot {
	p.addHLine(y, style)
	return p
}

// AddVLine adds a vertical reference line at input level x.
func (p *TransferPlot) AddVLine(x float64, style Style) *TransferPlot {
	p.addVLine(x, style)
	return p
}

// Range returns the axis ranges Render uses.
func (p *TransferPlot) Range() (xMin, xMax, yMin, yMax float64) {
	xs := finiteValues(p.curves, func(pt Point) float64 { return pt.X })
	for _, v := range p.vlines {
		if isFinite(v.value) {
			xs = append(xs, v.value)
		}
	}
	ys := finiteValues(p.curves, func(pt Point) float64 { return pt.Y })
	for _, h := range p.hlines {
		if isFinite(h.value) {
			ys = append(ys, h.value)
		}
	}
	xMax = symmetricLimit(xs)
	yMax = symmetricLimit(ys)
	return -xMax, xMax, -yMax, yMax
}

// Render returns the plot as an SVG document.
func (p *TransferPlot) Render() string {
	xMin, xMax, yMin, yMax := p.Range()
	f := frame{cfg: p.cfg, x: axis{min: xMin, max: xMax}, y: axis{min: yMin, max: yMax}}
	return f.document(func(c *svg.SVG) {
		f.grid(c, linearTicks(f.x), linearTicks(f.y))
		x0, y0 := f.mapX(0), f.mapY(0)
		c.Line(f.left(), y0, f.right(), y0, "stroke:#555555;stroke-width:1")
		c.Line(x0, f.top(), x0, f.bottom(), "stroke:#555555;stroke-width:1")
		if p.cfg.LinearReference {
			ref := referenceStyle(Style{})
			c.Line(f.left(), f.bottom(), f.right(), f.top(), ref.stroke())
		}
		f.layers(c, &p.layers)
	})
}
