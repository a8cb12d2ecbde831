package plot

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"testing"
)

var polylineRE = regexp.MustCompile(`<polyline points="([^"]*)"`)

// polylines extracts the point lists of every polyline in doc.
func polylines(t *testing.T, doc string) [][]Point {
	t.Helper()

	var out [][]Point
	for _, m := range polylineRE.FindAllStringSubmatch(doc, -1) {
		var pts []Point
		for _, pair := range strings.Fields(m[1]) {
			xy := strings.Split(pair, ",")
			if len(xy) != 2 {
				t.Fatalf("malformed point %q", pair)
			}
			x, errX := strconv.ParseFloat(xy[0], 64)
			y, errY := strconv.ParseFloat(xy[1], 64)
			if errX != nil || errY != nil {
				t.Fatalf("malformed point %q", pair)
			}
			pts = append(pts, Point{X: x, Y: y})
		}
		out = append(out, pts)
	}
	return out
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		span float64
		want float64
	}{
		{span: 70, want: 10},
		{span: 80, want: 10},
		{span: 8, want: 1},
		{span: 16, want: 2},
		{span: 30, want: 5},
		{span: 0.4, want: 0.05},
		{span: 2000, want: 200},
		{span: 0, want: 0},
		{span: -5, want: 0},
		{span: math.NaN(), want: 0},
		{span: math.Inf(1), want: 0},
	}

	for _, tt := range tests {
		if got := NiceStep(tt.span); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("NiceStep(%v)=%v, want %v", tt.span, got, tt.want)
		}
	}
}

func TestLinearTicks_CoverRangeAtNiceStep(t *testing.T) {
	ticks := linearTicks(axis{min: -60, max: 10})
	want := []string{"-60", "-50", "-40", "-30", "-20", "-10", "0", "10"}
	if len(ticks) != len(want) {
		t.Fatalf("got %d ticks, want %d", len(ticks), len(want))
	}
	for i, tk := range ticks {
		if tk.label != want[i] {
			t.Fatalf("tick %d label=%q, want %q", i, tk.label, want[i])
		}
	}
}

func TestDecadeTicks_LabelsPowersOfTen(t *testing.T) {
	ticks := decadeTicks(axis{min: 10, max: 100e3, log: true}, frequencyLabel)

	var labels []string
	minor := 0
	for _, tk := range ticks {
		if tk.minor {
			minor++
			if tk.label != "" {
				t.Fatalf("minor tick %v carries label %q", tk.value, tk.label)
			}
			continue
		}
		labels = append(labels, tk.label)
	}

	want := []string{"10Hz", "100Hz", "1kHz", "10kHz", "100kHz"}
	if strings.Join(labels, " ") != strings.Join(want, " ") {
		t.Fatalf("labels=%v, want %v", labels, want)
	}
	if minor != 4*8 {
		t.Fatalf("minor ticks=%d, want 32", minor)
	}
}

func TestOptions_InvalidValuesIgnored(t *testing.T) {
	cfg := applyOptions(defaultConfig(), []Option{
		WithSize(-1, 100),
		WithXRange(5, 1),
		WithYRange(3, 3),
		WithMargins(-1, 0, 0, 0),
		nil,
	})
	def := defaultConfig()
	if cfg.Width != def.Width || cfg.Height != def.Height {
		t.Fatalf("size changed to %vx%v", cfg.Width, cfg.Height)
	}
	if cfg.xFixed || cfg.yFixed {
		t.Fatal("invalid ranges must not fix the axes")
	}
	if cfg.Margin != def.Margin {
		t.Fatalf("margins changed to %+v", cfg.Margin)
	}
}

func TestStyle_Defaults(t *testing.T) {
	c := curveStyle(Style{}, 1)
	if c.Color != palette[1] || c.Dash != DashSolid || c.Width <= 0 {
		t.Fatalf("curve defaults: %+v", c)
	}
	r := referenceStyle(Style{})
	if r.Dash != DashDashed || r.Color != referenceColor {
		t.Fatalf("reference defaults: %+v", r)
	}
	if !strings.Contains(r.stroke(), "stroke-dasharray") {
		t.Fatalf("dashed stroke %q has no dash array", r.stroke())
	}
	if strings.Contains(c.stroke(), "stroke-dasharray") {
		t.Fatalf("solid stroke %q has a dash array", c.stroke())
	}
}
