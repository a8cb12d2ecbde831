package schematic_test

import (
	"fmt"

	"github.com/cwbudde/algo-circuit/draw/schematic"
)

func ExampleSchematic_Export() {
	s := schematic.New()
	if err := s.Place("R1", schematic.KindResistor, 100, 100, schematic.WithValue(1000)); err != nil {
		panic(err)
	}
	if err := s.Place("GND", schematic.KindGround, 132, 140); err != nil {
		panic(err)
	}
	if err := s.Wire(schematic.Pin("R1.b"), schematic.Pin("GND.p"), schematic.Direct); err != nil {
		panic(err)
	}
	fmt.Print(s.Export())
	// Output:
	// $ 1 5e-06 10.2 50 5 50 5e-11
	// r 68 100 132 100 0 1000
	// g 132 140 132 156 0 0
	// w 132 100 132 140 0
}

func ExampleSchematic_PinPosition() {
	s := schematic.New()
	_ = s.Place("U1", schematic.KindOpAmp, 200, 100)

	p, _ := s.PinPosition("U1.in-")
	q, _ := s.SimPinPosition("U1.in-")
	_, err := s.PinPosition("U1.vcc")
	fmt.Println(p, q)
	fmt.Println(err)
	// Output:
	// {160 80} {160 84}
	// schematic: unknown pin: "U1.vcc", opamp has no pin "vcc"
}
