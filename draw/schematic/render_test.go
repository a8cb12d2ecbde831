package schematic

import (
	"strings"
	"testing"
)

func TestRender_ZOrder(t *testing.T) {
	s := New()
	mustPlace(t, s, "R1", KindResistor, 100, 100, WithValue(4700), WithLabel("R1"))
	s.Label(100, 40, "Vout")
	if err := s.Node(Pin("R1.b")); err != nil {
		t.Fatal(err)
	}
	if err := s.Wire(Pin("R1.b"), At(200, 100), Direct); err != nil {
		t.Fatal(err)
	}
	doc := s.Render()

	wire := strings.Index(doc, `<polyline points="132.00,100.00 200.00,100.00"`)
	comp := strings.Index(doc, `<g id="R1"`)
	node := strings.Index(doc, `r="3.50" style="fill:#000000"`)
	text := strings.Index(doc, `>Vout</text>`)
	if wire < 0 || comp < 0 || node < 0 || text < 0 {
		t.Fatalf("missing element: wire=%d comp=%d node=%d label=%d", wire, comp, node, text)
	}
	if !(wire < comp && comp < node && node < text) {
		t.Fatalf("z-order wrong: wire=%d comp=%d node=%d label=%d", wire, comp, node, text)
	}
	if !strings.Contains(doc, ">4.7kΩ</text>") {
		t.Fatal("value caption missing")
	}
}

func TestRender_ViewBoxFromContent(t *testing.T) {
	s := New()
	mustPlace(t, s, "R1", KindResistor, 100, 100)
	doc := s.Render()
	if !strings.Contains(doc, `viewBox="48.00 74.00 104.00 52.00"`) {
		t.Fatalf("unexpected view box in\n%s", doc)
	}
	if !strings.Contains(doc, `width="104.00" height="52.00"`) {
		t.Fatal("width/height do not match the view box")
	}

	empty := New().Render()
	if !strings.Contains(empty, `viewBox="0.00 0.00 100.00 100.00"`) {
		t.Fatalf("empty schematic view box:\n%s", empty)
	}
}

func TestRender_IdempotentForEveryKind(t *testing.T) {
	s := New()
	for i, kind := range DefaultRegistry().Kinds() {
		mustPlace(t, s, string(kind), kind, float64(100*(i%4)), float64(100*(i/4)),
			WithValue(1), WithFrequency(50), WithLabel(string(kind)), WithRotation(90*i), WithFlip())
	}
	first := s.Render()
	if first != s.Render() {
		t.Fatal("render not idempotent")
	}
	for _, kind := range DefaultRegistry().Kinds() {
		if !strings.Contains(first, `<g id="`+string(kind)+`"`) {
			t.Fatalf("%s not rendered", kind)
		}
	}
}

func TestRender_FlipReversesArcSweep(t *testing.T) {
	plain := New()
	mustPlace(t, plain, "L1", KindInductor, 0, 0)
	flipped := New()
	mustPlace(t, flipped, "L1", KindInductor, 0, 0, WithFlip())

	if !strings.Contains(plain.Render(), " 0 0,1 ") {
		t.Fatal("inductor arcs should sweep clockwise")
	}
	if !strings.Contains(flipped.Render(), " 0 0,0 ") {
		t.Fatal("mirrored inductor arcs should sweep counter-clockwise")
	}
}
