package schematic

import (
	"errors"
	"fmt"
	"sort"
)

// Kind names a component type.
type Kind string

const (
	KindOpAmp     Kind = "opamp"
	KindResistor  Kind = "resistor"
	KindCapacitor Kind = "capacitor"
	KindInductor  Kind = "inductor"
	KindDiode     Kind = "diode"
	KindGround    Kind = "ground"
	KindRail      Kind = "rail"
	KindDC        Kind = "dc"
	KindAC        Kind = "ac"
	KindProbe     Kind = "probe"
	KindNPN       Kind = "npn"
	KindPNP       Kind = "pnp"
)

// Params are the per-instance values a symbol is built from.
type Params struct {
	Value     float64 // Ω, F, H or V depending on the kind
	Frequency float64 // Hz, AC sources only
	Label     string
}

// Symbol is a component type's diagram geometry.
type Symbol interface {
	Pins() PinTable
	Draw(p *Pen)
}

// Exporter is implemented by symbols the simulator understands. SimPins may
// return nil to reuse the diagram pin table. Export returns one line of
// simulator text; at maps local offsets to absolute simulator coordinates.
type Exporter interface {
	SimPins() PinTable
	Export(at func(local Point) Point) string
}

// Factory builds a symbol for one placed component.
type Factory func(p Params) Symbol

// Registry maps kinds to their factories.
type Registry struct {
	factories map[Kind]Factory
}

var errDuplicateKind = errors.New("duplicate component kind")

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[Kind]Factory)}
}

// Register adds a factory for kind.
func (r *Registry) Register(kind Kind, factory Factory) error {
	if kind == "" {
		return errors.New("empty component kind")
	}

	if factory == nil {
		return errors.New("nil factory")
	}

	if _, exists := r.factories[kind]; exists {
		return fmt.Errorf("%w: %s", errDuplicateKind, kind)
	}

	r.factories[kind] = factory

	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(kind Kind, factory Factory) {
	err := r.Register(kind, factory)
	if err != nil {
		panic("schematic registry: " + err.Error())
	}
}

// Lookup returns the factory for kind, or nil.
func (r *Registry) Lookup(kind Kind) Factory {
	return r.factories[kind]
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, 0, len(r.factories))
	for k := range r.factories {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// DefaultRegistry returns a registry holding every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.MustRegister(KindOpAmp, func(p Params) Symbol { return opAmp{params: p} })
	r.MustRegister(KindResistor, func(p Params) Symbol { return resistor{params: p} })
	r.MustRegister(KindCapacitor, func(p Params) Symbol { return capacitor{params: p} })
	r.MustRegister(KindInductor, func(p Params) Symbol { return inductor{params: p} })
	r.MustRegister(KindDiode, func(p Params) Symbol { return diode{params: p} })
	r.MustRegister(KindGround, func(p Params) Symbol { return ground{} })
	r.MustRegister(KindRail, func(p Params) Symbol { return rail{params: p} })
	r.MustRegister(KindDC, func(p Params) Symbol { return source{params: p} })
	r.MustRegister(KindAC, func(p Params) Symbol { return source{params: p, ac: true} })
	r.MustRegister(KindProbe, func(p Params) Symbol { return probe{params: p} })
	r.MustRegister(KindNPN, func(p Params) Symbol { return transistor{params: p, polarity: 1} })
	r.MustRegister(KindPNP, func(p Params) Symbol { return transistor{params: p, polarity: -1} })
	return r
}
