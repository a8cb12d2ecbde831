package schematic

import (
	"strconv"
	"strings"
	"unicode/utf8"

	svg "github.com/ajstarks/svgo/float"
)

const (
	strokeStyle = "fill:none;stroke:#000000;stroke-width:2;stroke-linecap:round;stroke-linejoin:round"
	fillStyle   = "fill:#000000;stroke:#000000;stroke-width:1"
	captionText = "font-family:sans-serif;font-size:11px;fill:#000000;text-anchor:middle"
)

// Pen draws a symbol in its local coordinates. Every primitive is placed at
// the component anchor after the component's flip and rotation; text stays
// upright.
type Pen struct {
	c  *svg.SVG
	at Point
	o  orientation
	b  *bounds
}

func (p *Pen) place(local Point) Point {
	q := p.at.Add(p.o.apply(local))
	p.b.add(q)
	return q
}

// Line draws a straight stroke from a to b.
func (p *Pen) Line(a, b Point) {
	pa, pb := p.place(a), p.place(b)
	p.c.Line(pa.X, pa.Y, pb.X, pb.Y, strokeStyle)
}

// Polyline draws connected strokes through pts.
func (p *Pen) Polyline(pts ...Point) {
	xs, ys := p.coords(pts)
	p.c.Polyline(xs, ys, strokeStyle)
}

// Polygon draws a closed shape, filled or outlined.
func (p *Pen) Polygon(filled bool, pts ...Point) {
	xs, ys := p.coords(pts)
	style := strokeStyle
	if filled {
		style = fillStyle
	}
	p.c.Polygon(xs, ys, style)
}

// Circle draws a circle of radius r around center.
func (p *Pen) Circle(center Point, r float64, filled bool) {
	c := p.place(center)
	p.b.addBox(c, r, r)
	style := strokeStyle
	if filled {
		style = fillStyle
	}
	p.c.Circle(c.X, c.Y, r, style)
}

// Arc draws a circular arc of radius r from a to b. sweep selects the
// clockwise arc in local coordinates.
func (p *Pen) Arc(a, b Point, r float64, sweep bool) {
	pa, pb := p.place(a), p.place(b)
	if p.o.mirrored() {
		sweep = !sweep
	}
	mid := Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	p.b.addBox(p.at.Add(p.o.apply(mid)), r, r)

	var d strings.Builder
	d.WriteString("M")
	d.WriteString(pair(pa))
	d.WriteString(" A")
	d.WriteString(num(r) + "," + num(r) + " 0 0,")
	if sweep {
		d.WriteString("1 ")
	} else {
		d.WriteString("0 ")
	}
	d.WriteString(pair(pb))
	p.c.Path(d.String(), strokeStyle)
}

// Text writes s centered on the placed position of local.
func (p *Pen) Text(local Point, s string) {
	if s == "" {
		return
	}
	q := p.at.Add(p.o.apply(local))
	p.b.addBox(q, textHalfWidth(s), 11)
	p.c.Text(q.X, q.Y+4, s, captionText)
}

func (p *Pen) coords(pts []Point) ([]float64, []float64) {
	xs := make([]float64, len(pts))
	ys := make([]float64, len(pts))
	for i, pt := range pts {
		q := p.place(pt)
		xs[i], ys[i] = q.X, q.Y
	}
	return xs, ys
}

// textHalfWidth approximates half the rendered width of s at 11px.
func textHalfWidth(s string) float64 {
	return float64(utf8.RuneCountInString(s)) * 3.3
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func pair(p Point) string {
	return strconv.FormatFloat(p.X, 'f', 2, 64) + "," + strconv.FormatFloat(p.Y, 'f', 2, 64)
}
