package schematic

import (
	"fmt"
	"strings"
	"testing"
)

func exportLines(t *testing.T, s *Schematic, opts ...ExportOption) []string {
	t.Helper()
	out := s.Export(opts...)
	if !strings.HasSuffix(out, "\n") {
		t.Fatal("export must end with a newline")
	}
	return strings.Split(strings.TrimSuffix(out, "\n"), "\n")
}

func TestExport_GroundResistorWire(t *testing.T) {
	s := New()
	mustPlace(t, s, "R1", KindResistor, 100, 100, WithValue(1000))
	mustPlace(t, s, "GND", KindGround, 132, 140)
	if err := s.Wire(Pin("R1.b"), Pin("GND.p"), Direct); err != nil {
		t.Fatal(err)
	}

	lines := exportLines(t, s)
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want header + 3:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	want := []string{
		"$ 1 5e-06 10.2 50 5 50 5e-11",
		"r 68 100 132 100 0 1000",
		"g 132 140 132 156 0 0",
		"w 132 100 132 140 0",
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d=%q, want %q", i, lines[i], want[i])
		}
	}
	for i, tag := range []string{"$", "r", "g", "w"} {
		if !strings.HasPrefix(lines[i], tag+" ") {
			t.Errorf("line %d=%q, want tag %q", i, lines[i], tag)
		}
	}
}

func TestExport_HeaderOptions(t *testing.T) {
	lines := exportLines(t, New(), WithTimeStep(1e-7), WithSimSpeed(50), WithVoltageRange(15), WithTimeStep(-1))
	if len(lines) != 1 || lines[0] != "$ 1 1e-07 50 50 15 50 5e-11" {
		t.Fatalf("header=%q", lines)
	}
}

func TestExport_ComponentLines(t *testing.T) {
	tests := []struct {
		kind Kind
		opts []PlaceOption
		want string
	}{
		{KindCapacitor, []PlaceOption{WithValue(10e-9)}, "c 68 100 132 100 0 1e-08 0"},
		{KindInductor, []PlaceOption{WithValue(0.01)}, "l 68 100 132 100 0 0.01 0"},
		{KindDiode, nil, "d 68 100 132 100 2 default"},
		{KindRail, []PlaceOption{WithValue(15)}, "R 100 100 100 84 0 0 40 15 0 0 0.5"},
		{KindDC, []PlaceOption{WithValue(5)}, "v 100 132 100 68 0 0 40 5 0 0 0.5"},
		{KindAC, []PlaceOption{WithValue(1), WithFrequency(1000)}, "v 100 132 100 68 0 1 1000 1 0 0 0.5"},
		{KindOpAmp, nil, "a 60 100 140 100 8 15 -15 0"},
		{KindOpAmp, []PlaceOption{WithFlip()}, "a 60 100 140 100 9 15 -15 0"},
		{KindOpAmp, []PlaceOption{WithRotation(90)}, "a 100 60 100 140 8 15 -15 0"},
		{KindOpAmp, []PlaceOption{WithRotation(180)}, "a 140 100 60 100 9 15 -15 0"},
		{KindOpAmp, []PlaceOption{WithValue(9)}, "a 60 100 140 100 8 9 -9 0"},
		{KindNPN, nil, "t 68 100 100 100 0 1 0 0 100"},
		{KindNPN, []PlaceOption{WithFlip()}, "t 68 100 100 100 1 1 0 0 100"},
		{KindPNP, nil, "t 68 100 100 100 0 -1 0 0 100"},
		{KindGround, []PlaceOption{WithRotation(180)}, "g 100 100 100 84 0 0"},
	}
	for _, tt := range tests {
		s := New()
		mustPlace(t, s, "X", tt.kind, 100, 100, tt.opts...)
		lines := exportLines(t, s)
		if len(lines) != 2 || lines[1] != tt.want {
			t.Errorf("%s: export %q, want %q", tt.kind, lines[1:], tt.want)
		}
	}
}

func TestExport_ProbeIsDiagramOnly(t *testing.T) {
	s := New()
	mustPlace(t, s, "P", KindProbe, 0, 0)
	if lines := exportLines(t, s); len(lines) != 1 {
		t.Fatalf("probe exported: %q", lines)
	}
}

func TestExport_WiresUseSimulatorPins(t *testing.T) {
	s := New()
	mustPlace(t, s, "OA", KindOpAmp, 200, 100)
	if err := s.Wire(At(100, 84), Pin("OA.in-"), Direct); err != nil {
		t.Fatal(err)
	}
	lines := exportLines(t, s)
	if lines[len(lines)-1] != "w 100 84 160 84 0" {
		t.Fatalf("wire line %q, want simulator geometry", lines[len(lines)-1])
	}
}

func TestExport_MultiSegmentRoutes(t *testing.T) {
	s := New()
	if err := s.Wire(At(0, 0), At(100, 40), HVH, WithBend(30)); err != nil {
		t.Fatal(err)
	}
	if err := s.Wire(At(0, 50), At(100, 50), HV); err != nil {
		t.Fatal(err)
	}
	if err := s.Wire(At(5, 5), At(5, 5), Direct); err != nil {
		t.Fatal(err)
	}

	got := exportLines(t, s)[1:]
	want := []string{
		"w 0 0 30 0 0",
		"w 30 0 30 40 0",
		"w 30 40 100 40 0",
		"w 0 50 100 50 0",
	}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("wire lines:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(want, "\n"))
	}
}

func TestExport_PlacementOrder(t *testing.T) {
	s := New()
	mustPlace(t, s, "C1", KindCapacitor, 0, 0, WithValue(1e-6))
	mustPlace(t, s, "R1", KindResistor, 0, 100, WithValue(10))
	mustPlace(t, s, "G", KindGround, 0, 200)

	lines := exportLines(t, s)
	tags := []string{lines[1][:1], lines[2][:1], lines[3][:1]}
	if strings.Join(tags, "") != "crg" {
		t.Fatalf("component order %v, want placement order", tags)
	}
}

// postCount counts the wire lines that end at (x, y).
func postCount(lines []string, x, y int) int {
	end := fmt.Sprintf("%d %d", x, y)
	n := 0
	for _, line := range lines {
		f := strings.Fields(line)
		if len(f) < 5 || f[0] != "w" {
			continue
		}
		if f[1]+" "+f[2] == end || f[3]+" "+f[4] == end {
			n++
		}
	}
	return n
}

func TestExport_SplitsWiresAtJunctions(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T, s *Schematic)
		want  []string
	}{
		{
			name: "tee with node",
			build: func(t *testing.T, s *Schematic) {
				t.Helper()
				if err := s.Wire(At(0, 100), At(200, 100), Direct); err != nil {
					t.Fatal(err)
				}
				if err := s.Wire(At(100, 100), At(100, 200), Direct); err != nil {
					t.Fatal(err)
				}
				if err := s.Node(At(100, 100)); err != nil {
					t.Fatal(err)
				}
			},
			want: []string{"w 0 100 100 100 0", "w 100 100 200 100 0", "w 100 100 100 200 0"},
		},
		{
			name: "tee without node",
			build: func(t *testing.T, s *Schematic) {
				t.Helper()
				if err := s.Wire(At(100, 0), At(100, 200), Direct); err != nil {
					t.Fatal(err)
				}
				if err := s.Wire(At(100, 50), At(160, 50), Direct); err != nil {
					t.Fatal(err)
				}
			},
			want: []string{"w 100 0 100 50 0", "w 100 50 100 200 0", "w 100 50 160 50 0"},
		},
		{
			name: "node only",
			build: func(t *testing.T, s *Schematic) {
				t.Helper()
				if err := s.Wire(At(0, 0), At(90, 0), Direct); err != nil {
					t.Fatal(err)
				}
				if err := s.Node(At(30, 0)); err != nil {
					t.Fatal(err)
				}
			},
			want: []string{"w 0 0 30 0 0", "w 30 0 90 0 0"},
		},
		{
			name: "several cuts in order",
			build: func(t *testing.T, s *Schematic) {
				t.Helper()
				if err := s.Wire(At(200, 0), At(0, 0), Direct); err != nil {
					t.Fatal(err)
				}
				for _, x := range []float64{150, 50, 150} {
					if err := s.Node(At(x, 0)); err != nil {
						t.Fatal(err)
					}
				}
			},
			want: []string{"w 200 0 150 0 0", "w 150 0 50 0 0", "w 50 0 0 0 0"},
		},
		{
			name: "diagonal and off-line points",
			build: func(t *testing.T, s *Schematic) {
				t.Helper()
				if err := s.Wire(At(0, 0), At(40, 40), Direct); err != nil {
					t.Fatal(err)
				}
				for _, p := range []Point{{X: 20, Y: 20}, {X: 20, Y: 21}, {X: 60, Y: 60}, {X: 0, Y: 0}} {
					if err := s.Node(At(p.X, p.Y)); err != nil {
						t.Fatal(err)
					}
				}
			},
			want: []string{"w 0 0 20 20 0", "w 20 20 40 40 0"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			tt.build(t, s)
			got := exportLines(t, s)[1:]
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Fatalf("wire lines:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestExport_TeeJunctionIsSharedPost(t *testing.T) {
	s := New()
	mustPlace(t, s, "C1", KindCapacitor, 100, 232, WithRotation(90), WithValue(1e-9))
	if err := s.Wire(At(0, 100), At(200, 100), Direct); err != nil {
		t.Fatal(err)
	}
	if err := s.Wire(At(100, 100), Pin("C1.a"), Direct); err != nil {
		t.Fatal(err)
	}
	if err := s.Node(At(100, 100)); err != nil {
		t.Fatal(err)
	}

	lines := exportLines(t, s)
	if n := postCount(lines, 100, 100); n < 3 {
		t.Fatalf("junction is a post of %d wire lines, want 3:\n%s", n, strings.Join(lines, "\n"))
	}
	if n := postCount(lines, 100, 200); n != 1 {
		t.Fatalf("C1.a is a post of %d wire lines, want 1", n)
	}
}

func TestExport_NodeUsesSimulatorPin(t *testing.T) {
	s := New()
	mustPlace(t, s, "OA", KindOpAmp, 200, 100)
	if err := s.Wire(At(160, 60), At(160, 140), Direct); err != nil {
		t.Fatal(err)
	}
	if err := s.Node(Pin("OA.in-")); err != nil {
		t.Fatal(err)
	}

	// The node dot is drawn at the diagram pin (160, 80); the cut lands on
	// the simulator pin (160, 84).
	got := exportLines(t, s)[2:]
	want := []string{"w 160 60 160 84 0", "w 160 84 160 140 0"}
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("wire lines %q, want %q", got, want)
	}
}
