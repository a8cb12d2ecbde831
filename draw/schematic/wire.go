package schematic

import "fmt"

// Route selects how a wire travels between its endpoints.
type Route int

const (
	// Direct is a single straight segment.
	Direct Route = iota
	// HV runs horizontally first, then vertically.
	HV
	// VH runs vertically first, then horizontally.
	VH
	// HVH runs horizontally to the bend x, vertically, then horizontally.
	HVH
	// VHV runs vertically to the bend y, horizontally, then vertically.
	VHV
)

type wire struct {
	diagram []Point
	sim     []Point
}

type wireConfig struct {
	bend    float64
	hasBend bool
}

// WireOption configures one wire.
type WireOption func(*wireConfig)

// WithBend sets the x (HVH) or y (VHV) coordinate of the middle segment.
// Without it the middle segment sits halfway between the endpoints.
func WithBend(v float64) WireOption {
	return func(c *wireConfig) {
		c.bend = v
		c.hasBend = true
	}
}

// Wire connects a and b. Both endpoints are resolved now, so the components
// they name must already be placed.
func (s *Schematic) Wire(a, b Endpoint, route Route, opts ...WireOption) error {
	if route < Direct || route > VHV {
		return fmt.Errorf("schematic: unknown wire route %d", route)
	}

	var cfg wireConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	da, sa, err := s.endpoint(a)
	if err != nil {
		return err
	}
	db, sb, err := s.endpoint(b)
	if err != nil {
		return err
	}

	s.wires = append(s.wires, wire{
		diagram: routePath(da, db, route, cfg),
		sim:     routePath(sa, sb, route, cfg),
	})
	return nil
}

func routePath(a, b Point, route Route, cfg wireConfig) []Point {
	switch route {
	case HV:
		return []Point{a, {X: b.X, Y: a.Y}, b}
	case VH:
		return []Point{a, {X: a.X, Y: b.Y}, b}
	case HVH:
		x := (a.X + b.X) / 2
		if cfg.hasBend {
			x = cfg.bend
		}
		return []Point{a, {X: x, Y: a.Y}, {X: x, Y: b.Y}, b}
	case VHV:
		y := (a.Y + b.Y) / 2
		if cfg.hasBend {
			y = cfg.bend
		}
		return []Point{a, {X: a.X, Y: y}, {X: b.X, Y: y}, b}
	}
	return []Point{a, b}
}
