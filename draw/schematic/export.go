package schematic

import (
	"math"
	"sort"
	"strings"
)

type exportConfig struct {
	timeStep     float64
	simSpeed     float64
	voltageRange float64
}

// ExportOption configures the simulator header line.
type ExportOption func(*exportConfig)

// WithTimeStep sets the simulation time step in seconds.
func WithTimeStep(seconds float64) ExportOption {
	return func(c *exportConfig) {
		if seconds > 0 {
			c.timeStep = seconds
		}
	}
}

// WithSimSpeed sets the simulator's speed slider value.
func WithSimSpeed(speed float64) ExportOption {
	return func(c *exportConfig) {
		if speed > 0 {
			c.simSpeed = speed
		}
	}
}

// WithVoltageRange sets the voltage span used for the simulator's color scale.
func WithVoltageRange(volts float64) ExportOption {
	return func(c *exportConfig) {
		if volts > 0 {
			c.voltageRange = volts
		}
	}
}

// Export returns the circuit in the Falstad simulator text format: a header
// line, one line per exportable component in placement order, then the wire
// segments. Multi-segment routes emit one line per segment; zero-length
// segments are left out. The simulator joins elements only at shared end
// points, so a segment is cut wherever another wire ends or a junction node
// sits strictly inside it.
func (s *Schematic) Export(opts ...ExportOption) string {
	cfg := exportConfig{timeStep: 5e-6, simSpeed: 10.2, voltageRange: 5}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	lines := []string{strings.Join([]string{
		"$", "1", simNum(cfg.timeStep), simNum(cfg.simSpeed), "50", simNum(cfg.voltageRange), "50", "5e-11",
	}, " ")}

	for _, id := range s.order {
		c := s.components[id]
		e, ok := c.symbol.(Exporter)
		if !ok {
			continue
		}
		if line := e.Export(c.place); line != "" {
			lines = append(lines, line)
		}
	}

	for _, seg := range s.wireSegments() {
		lines = append(lines, simLine("w", []Point{seg[0].point(), seg[1].point()}, "0"))
	}

	return strings.Join(lines, "\n") + "\n"
}

// gridPoint is a simulator coordinate after rounding.
type gridPoint struct{ x, y int64 }

func snap(p Point) gridPoint {
	return gridPoint{x: int64(math.Round(p.X)), y: int64(math.Round(p.Y))}
}

func (g gridPoint) point() Point { return Point{X: float64(g.x), Y: float64(g.y)} }

// wireSegments returns the non-degenerate simulator segments of all wires,
// each split at the junctions lying inside it.
func (s *Schematic) wireSegments() [][2]gridPoint {
	var segs [][2]gridPoint
	for _, w := range s.wires {
		for i := 1; i < len(w.sim); i++ {
			a, b := snap(w.sim[i-1]), snap(w.sim[i])
			if a != b {
				segs = append(segs, [2]gridPoint{a, b})
			}
		}
	}

	junctions := make([]gridPoint, 0, 2*len(segs)+len(s.nodes))
	for _, seg := range segs {
		junctions = append(junctions, seg[0], seg[1])
	}
	for _, n := range s.nodes {
		junctions = append(junctions, snap(n.sim))
	}

	var out [][2]gridPoint
	for _, seg := range segs {
		out = append(out, splitSegment(seg[0], seg[1], junctions)...)
	}
	return out
}

// splitSegment cuts a-b at every point of cuts lying strictly between a and
// b on the segment. Points are ordered from a to b and duplicates collapse.
func splitSegment(a, b gridPoint, cuts []gridPoint) [][2]gridPoint {
	dx, dy := b.x-a.x, b.y-a.y
	length := dx*dx + dy*dy

	type cut struct {
		t int64
		p gridPoint
	}
	var inner []cut
	for _, p := range cuts {
		px, py := p.x-a.x, p.y-a.y
		if px*dy-py*dx != 0 {
			continue
		}
		if t := px*dx + py*dy; t > 0 && t < length {
			inner = append(inner, cut{t: t, p: p})
		}
	}
	sort.Slice(inner, func(i, j int) bool { return inner[i].t < inner[j].t })

	out := make([][2]gridPoint, 0, len(inner)+1)
	prev := a
	for _, c := range inner {
		if c.p == prev {
			continue
		}
		out = append(out, [2]gridPoint{prev, c.p})
		prev = c.p
	}
	return append(out, [2]gridPoint{prev, b})
}
