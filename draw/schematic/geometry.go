package schematic

import "math"

// Point is a position in diagram units. The y axis points down.
type Point struct {
	X, Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// PinTable maps pin names to offsets from the component anchor in the
// unrotated orientation.
type PinTable map[string]Point

// orientation is a flip across the x axis followed by a clockwise rotation.
type orientation struct {
	quarter int // clockwise quarter turns, 0..3
	flip    bool
}

func (o orientation) apply(p Point) Point {
	if o.flip {
		p.Y = -p.Y
	}
	switch o.quarter {
	case 1:
		return Point{X: -p.Y, Y: p.X}
	case 2:
		return Point{X: -p.X, Y: -p.Y}
	case 3:
		return Point{X: p.Y, Y: -p.X}
	}
	return p
}

// mirrored reports whether the orientation reverses the winding of shapes.
func (o orientation) mirrored() bool { return o.flip }

// bounds accumulates the extent of everything drawn.
type bounds struct {
	minX, minY, maxX, maxY float64
	set                    bool
}

func (b *bounds) add(p Point) {
	if !b.set {
		b.minX, b.maxX, b.minY, b.maxY = p.X, p.X, p.Y, p.Y
		b.set = true
		return
	}
	b.minX = math.Min(b.minX, p.X)
	b.maxX = math.Max(b.maxX, p.X)
	b.minY = math.Min(b.minY, p.Y)
	b.maxY = math.Max(b.maxY, p.Y)
}

func (b *bounds) addBox(center Point, halfW, halfH float64) {
	b.add(Point{X: center.X - halfW, Y: center.Y - halfH})
	b.add(Point{X: center.X + halfW, Y: center.Y + halfH})
}
