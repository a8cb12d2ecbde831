// Package schematic describes a circuit once and renders it two ways: as an
// SVG schematic diagram and as a Falstad circuit simulator text file.
//
// A Schematic is filled by placing components of a registered Kind at anchor
// coordinates, then connecting their pins with routed wires:
//
//	s := schematic.New()
//	_ = s.Place("R1", schematic.KindResistor, 100, 100, schematic.WithValue(10e3))
//	_ = s.Place("GND", schematic.KindGround, 140, 160)
//	_ = s.Wire(schematic.Pin("R1.b"), schematic.Pin("GND.p"), schematic.HV)
//	svgDoc := s.Render()
//	text := s.Export()
//
// Every kind carries two pin tables: one used for the diagram and one that
// matches the simulator's own element geometry. Kinds without a simulator
// table share the diagram table. Pin references are resolved when a wire or
// node is added, so unknown components or pins fail immediately.
package schematic
