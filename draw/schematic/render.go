package schematic

import (
	"bytes"
	"html"

	svg "github.com/ajstarks/svgo/float"
)

const (
	wireStyle  = "fill:none;stroke:#000000;stroke-width:2;stroke-linejoin:round"
	nodeStyle  = "fill:#000000"
	labelStyle = "font-family:sans-serif;font-size:12px;fill:#000000;text-anchor:middle"
	viewPad    = 20
	nodeRadius = 3.5
)

// Render returns the diagram as an SVG document. Wires are painted first,
// then components, junction nodes and labels. The view box covers the drawn
// content with a small margin.
func (s *Schematic) Render() string {
	var body bytes.Buffer
	c := svg.New(&body)
	var b bounds

	for _, w := range s.wires {
		xs := make([]float64, len(w.diagram))
		ys := make([]float64, len(w.diagram))
		for i, p := range w.diagram {
			xs[i], ys[i] = p.X, p.Y
			b.add(p)
		}
		c.Polyline(xs, ys, wireStyle)
	}

	for _, id := range s.order {
		comp := s.components[id]
		c.Group(`id="` + html.EscapeString(id) + `"`)
		comp.symbol.Draw(&Pen{c: c, at: comp.at, o: comp.orient, b: &b})
		c.Gend()
	}

	for _, n := range s.nodes {
		b.addBox(n.diagram, nodeRadius, nodeRadius)
		c.Circle(n.diagram.X, n.diagram.Y, nodeRadius, nodeStyle)
	}

	for _, l := range s.labels {
		b.addBox(l.at, textHalfWidth(l.text), 12)
		c.Text(l.at.X, l.at.Y+4, l.text, labelStyle)
	}

	minX, minY, w, h := 0.0, 0.0, 100.0, 100.0
	if b.set {
		minX, minY = b.minX-viewPad, b.minY-viewPad
		w, h = b.maxX-b.minX+2*viewPad, b.maxY-b.minY+2*viewPad
	}

	var out bytes.Buffer
	doc := svg.New(&out)
	doc.Startview(w, h, minX, minY, w, h)
	doc.Rect(minX, minY, w, h, "fill:#ffffff")
	out.Write(body.Bytes())
	doc.End()
	return out.String()
}
