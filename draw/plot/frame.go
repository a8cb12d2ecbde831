package plot

import (
	"bytes"
	"math"
	"strconv"

	svg "github.com/ajstarks/svgo/float"
)

// Point is one sample of a curve in data coordinates.
type Point struct {
	X, Y float64
}

type axis struct {
	min, max float64
	log      bool
}

// norm maps v to [0,1] across the axis, clamping values outside the range.
func (a axis) norm(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	v = math.Max(a.min, math.Min(a.max, v))
	if a.log {
		lo, hi := math.Log10(a.min), math.Log10(a.max)
		return (math.Log10(v) - lo) / (hi - lo)
	}
	return (v - a.min) / (a.max - a.min)
}

type tick struct {
	value float64
	label string
	minor bool
}

// frame maps data coordinates into the plot area of one SVG document.
type frame struct {
	cfg  Config
	x, y axis
}

func (f frame) left() float64   { return f.cfg.Margin.Left }
func (f frame) top() float64    { return f.cfg.Margin.Top }
func (f frame) right() float64  { return f.cfg.Width - f.cfg.Margin.Right }
func (f frame) bottom() float64 { return f.cfg.Height - f.cfg.Margin.Bottom }

func (f frame) mapX(v float64) float64 {
	return f.left() + f.x.norm(v)*(f.right()-f.left())
}

func (f frame) mapY(v float64) float64 {
	return f.bottom() - f.y.norm(v)*(f.bottom()-f.top())
}

// document writes the SVG prologue, runs body and closes the document.
func (f frame) document(body func(c *svg.SVG)) string {
	var buf bytes.Buffer
	c := svg.New(&buf)
	w, h := f.cfg.Width, f.cfg.Height
	c.Startview(w, h, 0, 0, w, h)
	c.Rect(0, 0, w, h, "fill:#ffffff")
	body(c)
	c.End()
	return buf.String()
}

const (
	gridMajor = "stroke:#d0d0d0;stroke-width:1"
	gridMinor = "stroke:#ececec;stroke-width:1"
	axisStyle = "fill:none;stroke:#333333;stroke-width:1"
	tickText  = "font-family:sans-serif;font-size:10px;fill:#333333"
	labelText = "font-family:sans-serif;font-size:12px;fill:#000000"
)

// grid draws grid lines, the plot border, tick labels and captions.
func (f frame) grid(c *svg.SVG, xticks, yticks []tick) {
	for _, t := range xticks {
		x := f.mapX(t.value)
		style := gridMajor
		if t.minor {
			style = gridMinor
		}
		c.Line(x, f.top(), x, f.bottom(), style)
		if t.label != "" {
			c.Text(x, f.bottom()+14, t.label, tickText+";text-anchor:middle")
		}
	}
	for _, t := range yticks {
		y := f.mapY(t.value)
		style := gridMajor
		if t.minor {
			style = gridMinor
		}
		c.Line(f.left(), y, f.right(), y, style)
		if t.label != "" {
			c.Text(f.left()-6, y+3, t.label, tickText+";text-anchor:end")
		}
	}

	c.Rect(f.left(), f.top(), f.right()-f.left(), f.bottom()-f.top(), axisStyle)
	f.captions(c)
}

func (f frame) captions(c *svg.SVG) {
	if f.cfg.Title != "" {
		c.Text(f.cfg.Width/2, f.top()-10, f.cfg.Title, labelText+";text-anchor:middle;font-weight:bold")
	}
	if f.cfg.XLabel != "" {
		c.Text((f.left()+f.right())/2, f.cfg.Height-8, f.cfg.XLabel, labelText+";text-anchor:middle")
	}
	if f.cfg.YLabel != "" {
		x, y := 14.0, (f.top()+f.bottom())/2
		c.Text(x, y, f.cfg.YLabel, labelText+";text-anchor:middle",
			"transform=\"rotate(-90 "+formatCoord(x)+" "+formatCoord(y)+")\"")
	}
}

// polyline draws the finite points of pts; NaN samples are skipped and
// out-of-range values clamp to the plot edge.
func (f frame) polyline(c *svg.SVG, pts []Point, style Style) {
	xs := make([]float64, 0, len(pts))
	ys := make([]float64, 0, len(pts))
	for _, p := range pts {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			continue
		}
		xs = append(xs, f.mapX(p.X))
		ys = append(ys, f.mapY(p.Y))
	}
	if len(xs) == 0 {
		return
	}
	c.Polyline(xs, ys, style.stroke())
}

func (f frame) hline(c *svg.SVG, l refLine) {
	if math.IsNaN(l.value) {
		return
	}
	y := f.mapY(l.value)
	c.Line(f.left(), y, f.right(), y, l.style.stroke())
}

func (f frame) vline(c *svg.SVG, l refLine) {
	if math.IsNaN(l.value) {
		return
	}
	x := f.mapX(l.value)
	c.Line(x, f.top(), x, f.bottom(), l.style.stroke())
}

// layers draws curves over reference lines, then the legend.
func (f frame) layers(c *svg.SVG, l *layers) {
	for _, h := range l.hlines {
		f.hline(c, h)
	}
	for _, v := range l.vlines {
		f.vline(c, v)
	}
	for _, cv := range l.curves {
		f.polyline(c, cv.points, cv.style)
	}
	f.legend(c, l.legend)
}

func (f frame) legend(c *svg.SVG, entries []legendEntry) {
	if len(entries) == 0 {
		return
	}

	const (
		row    = 16.0
		sample = 22.0
		pad    = 6.0
	)
	width := 0.0
	for _, e := range entries {
		// Rough glyph width for 10px sans-serif.
		width = math.Max(width, float64(len([]rune(e.label)))*6)
	}
	width += sample + 3*pad
	height := float64(len(entries))*row + pad

	x := f.right() - width - 8
	y := f.top() + 8
	c.Rect(x, y, width, height, "fill:#ffffff;fill-opacity:0.85;stroke:#bbbbbb;stroke-width:1")
	for i, e := range entries {
		ly := y + pad + float64(i)*row + row/2 - 2
		c.Line(x+pad, ly, x+pad+sample, ly, e.style.stroke())
		c.Text(x+2*pad+sample, ly+3, e.label, tickText)
	}
}

// linearTicks returns ticks at multiples of NiceStep(max-min).
func linearTicks(a axis) []tick {
	step := NiceStep(a.max - a.min)
	if step <= 0 {
		return nil
	}
	start := math.Ceil(a.min/step-1e-9) * step
	var ticks []tick
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v > a.max+step*1e-9 {
			break
		}
		ticks = append(ticks, tick{value: v, label: formatTick(v, step)})
	}
	return ticks
}

// decadeTicks returns labelled ticks at powers of ten and unlabelled minor
// ticks at 2..9 times each power.
func decadeTicks(a axis, label func(float64) string) []tick {
	lo := int(math.Floor(math.Log10(a.min)))
	hi := int(math.Ceil(math.Log10(a.max)))
	var ticks []tick
	for d := lo; d <= hi; d++ {
		base := math.Pow10(d)
		for m := 1; m <= 9; m++ {
			v := float64(m) * base
			if v < a.min*(1-1e-9) || v > a.max*(1+1e-9) {
				continue
			}
			t := tick{value: v, minor: m != 1}
			if m == 1 {
				t.label = label(v)
			}
			ticks = append(ticks, t)
		}
	}
	return ticks
}

// NiceStep returns span/8 rounded to the nearest 1, 2 or 5 times a power of
// ten. Non-positive or non-finite spans return 0.
func NiceStep(span float64) float64 {
	if !(span > 0) || math.IsInf(span, 0) {
		return 0
	}
	raw := span / 8
	exp := int(math.Floor(math.Log10(raw)))
	frac := raw / math.Pow10(exp)

	best := 1.0
	for _, c := range []float64{2, 5, 10} {
		if math.Abs(frac-c) < math.Abs(frac-best) {
			best = c
		}
	}
	if exp < 0 {
		return best / math.Pow10(-exp)
	}
	return best * math.Pow10(exp)
}

func formatTick(v, step float64) string {
	decimals := 0
	if step < 1 {
		decimals = int(math.Ceil(-math.Log10(step) - 1e-9))
	}
	s := strconv.FormatFloat(v, 'f', decimals, 64)
	if s == "-0" || (decimals > 0 && math.Abs(v) < step*1e-6) {
		return strconv.FormatFloat(0, 'f', decimals, 64)
	}
	return s
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}
