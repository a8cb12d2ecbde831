package schematic

import (
	"fmt"
	"strings"
)

// Schematic owns the placed components, wires, junction nodes and labels of
// one diagram.
type Schematic struct {
	registry   *Registry
	components map[string]*component
	order      []string
	wires      []wire
	nodes      []junction
	labels     []label
}

type component struct {
	id     string
	kind   Kind
	at     Point
	orient orientation
	params Params
	symbol Symbol
}

// junction is a node dot with its diagram and simulator positions.
type junction struct {
	diagram, sim Point
}

type label struct {
	at   Point
	text string
}

// Option configures a Schematic.
type Option func(*Schematic)

// WithRegistry replaces the built-in component kinds.
func WithRegistry(r *Registry) Option {
	return func(s *Schematic) {
		if r != nil {
			s.registry = r
		}
	}
}

// New returns an empty schematic using the built-in kinds.
func New(opts ...Option) *Schematic {
	s := &Schematic{components: make(map[string]*component)}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	if s.registry == nil {
		s.registry = DefaultRegistry()
	}
	return s
}

type placement struct {
	params  Params
	degrees int
	flip    bool
}

// PlaceOption configures one placed component.
type PlaceOption func(*placement)

// WithValue sets the component value: Ω, F, H or V depending on the kind.
// For an op-amp it is the symmetric output swing used by Export.
func WithValue(v float64) PlaceOption {
	return func(p *placement) { p.params.Value = v }
}

// WithFrequency sets the frequency of an AC source.
func WithFrequency(hz float64) PlaceOption {
	return func(p *placement) { p.params.Frequency = hz }
}

// WithLabel sets the caption drawn next to the component.
func WithLabel(text string) PlaceOption {
	return func(p *placement) { p.params.Label = text }
}

// WithRotation turns the component clockwise by degrees, a multiple of 90.
func WithRotation(degrees int) PlaceOption {
	return func(p *placement) { p.degrees = degrees }
}

// WithFlip mirrors the component across its horizontal axis before rotation.
// On an op-amp this puts the non-inverting input on top.
func WithFlip() PlaceOption {
	return func(p *placement) { p.flip = true }
}

// Place adds a component of kind at (x, y).
func (s *Schematic) Place(id string, kind Kind, x, y float64, opts ...PlaceOption) error {
	if id == "" || strings.Contains(id, ".") {
		return fmt.Errorf("%w: component id %q", ErrBadReference, id)
	}
	if _, exists := s.components[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	factory := s.registry.Lookup(kind)
	if factory == nil {
		return fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	var pl placement
	for _, opt := range opts {
		if opt != nil {
			opt(&pl)
		}
	}

	deg := pl.degrees % 360
	if deg < 0 {
		deg += 360
	}
	if deg%90 != 0 {
		return fmt.Errorf("%w: %d", ErrBadRotation, pl.degrees)
	}

	s.components[id] = &component{
		id:     id,
		kind:   kind,
		at:     Point{X: x, Y: y},
		orient: orientation{quarter: deg / 90, flip: pl.flip},
		params: pl.params,
		symbol: factory(pl.params),
	}
	s.order = append(s.order, id)

	return nil
}

// Components returns the component ids in placement order.
func (s *Schematic) Components() []string {
	return append([]string(nil), s.order...)
}

// PinPosition returns the diagram position of a pin given as "id.pin".
func (s *Schematic) PinPosition(ref string) (Point, error) {
	c, pin, err := s.resolve(ref)
	if err != nil {
		return Point{}, err
	}
	return c.at.Add(c.orient.apply(c.symbol.Pins()[pin])), nil
}

// SimPinPosition returns the simulator position of a pin given as "id.pin".
// Kinds without their own simulator geometry use the diagram pin table.
func (s *Schematic) SimPinPosition(ref string) (Point, error) {
	c, pin, err := s.resolve(ref)
	if err != nil {
		return Point{}, err
	}
	return c.at.Add(c.orient.apply(c.simPins()[pin])), nil
}

func (c *component) simPins() PinTable {
	if e, ok := c.symbol.(Exporter); ok {
		if pins := e.SimPins(); pins != nil {
			return pins
		}
	}
	return c.symbol.Pins()
}

// place maps a local offset to absolute coordinates.
func (c *component) place(local Point) Point {
	return c.at.Add(c.orient.apply(local))
}

func (s *Schematic) resolve(ref string) (*component, string, error) {
	i := strings.LastIndexByte(ref, '.')
	if i <= 0 || i == len(ref)-1 {
		return nil, "", fmt.Errorf("%w: %q", ErrBadReference, ref)
	}
	id, pin := ref[:i], ref[i+1:]

	c, ok := s.components[id]
	if !ok {
		return nil, "", fmt.Errorf("%w: %q in %q", ErrUnknownComponent, id, ref)
	}
	if _, ok := c.symbol.Pins()[pin]; !ok {
		return nil, "", fmt.Errorf("%w: %q, %s has no pin %q", ErrUnknownPin, ref, c.kind, pin)
	}
	if _, ok := c.simPins()[pin]; !ok {
		return nil, "", fmt.Errorf("%w: %q, %s has no simulator pin %q", ErrUnknownPin, ref, c.kind, pin)
	}
	return c, pin, nil
}

// Endpoint is one end of a wire: a component pin or a fixed point.
type Endpoint struct {
	ref string
	at  Point
}

// Pin refers to a component pin as "id.pin".
func Pin(ref string) Endpoint { return Endpoint{ref: ref} }

// At refers to a fixed point, the same in the diagram and the simulator.
func At(x, y float64) Endpoint { return Endpoint{at: Point{X: x, Y: y}} }

func (s *Schematic) endpoint(e Endpoint) (diagram, sim Point, err error) {
	if e.ref == "" {
		return e.at, e.at, nil
	}
	if diagram, err = s.PinPosition(e.ref); err != nil {
		return Point{}, Point{}, err
	}
	sim, err = s.SimPinPosition(e.ref)
	return diagram, sim, err
}

// Node adds a junction dot at e. Export also cuts wires passing through it.
func (s *Schematic) Node(e Endpoint) error {
	diagram, sim, err := s.endpoint(e)
	if err != nil {
		return err
	}
	s.nodes = append(s.nodes, junction{diagram: diagram, sim: sim})
	return nil
}

// Label adds free text centered at (x, y).
func (s *Schematic) Label(x, y float64, text string) {
	s.labels = append(s.labels, label{at: Point{X: x, Y: y}, text: text})
}
