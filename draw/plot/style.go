package plot

import (
	"strconv"
	"strings"
)

// Dash selects the stroke pattern of a curve or reference line.
type Dash int

const (
	// DashDefault is solid for curves and dashed for reference lines.
	DashDefault Dash = iota
	DashSolid
	DashDashed
	DashDotted
)

// Style describes how a curve, line or bar is drawn. Zero fields fall back
// to defaults; a non-empty Label adds a legend entry.
type Style struct {
	Color string
	Width float64
	Label string
	Dash  Dash
}

var palette = []string{
	"#1f77b4", "#d62728", "#2ca02c", "#ff7f0e",
	"#9467bd", "#8c564b", "#e377c2", "#17becf",
}

const referenceColor = "#888888"

// curveStyle fills in the color for the n-th curve.
func curveStyle(s Style, n int) Style {
	if s.Color == "" {
		s.Color = palette[n%len(palette)]
	}
	if s.Width <= 0 {
		s.Width = 1.5
	}
	if s.Dash == DashDefault {
		s.Dash = DashSolid
	}
	return s
}

func referenceStyle(s Style) Style {
	if s.Color == "" {
		s.Color = referenceColor
	}
	if s.Width <= 0 {
		s.Width = 1
	}
	if s.Dash == DashDefault {
		s.Dash = DashDashed
	}
	return s
}

func barStyle(s Style, n int) Style {
	if s.Color == "" {
		s.Color = palette[n%len(palette)]
	}
	return s
}

// stroke returns the CSS used for lines drawn with s.
func (s Style) stroke() string {
	var b strings.Builder
	b.WriteString("fill:none;stroke:")
	b.WriteString(s.Color)
	b.WriteString(";stroke-width:")
	b.WriteString(strconv.FormatFloat(s.Width, 'g', 4, 64))
	switch s.Dash {
	case DashDashed:
		b.WriteString(";stroke-dasharray:6,4")
	case DashDotted:
		b.WriteString(";stroke-dasharray:2,3")
	}
	return b.String()
}

type legendEntry struct {
	label string
	style Style
}

// layers is the accumulated drawing state shared by the line-based plots.
type layers struct {
	curves []curve
	hlines []refLine
	vlines []refLine
	legend []legendEntry
}

type curve struct {
	points []Point
	style  Style
}

type refLine struct {
	value float64
	style Style
}

func (l *layers) addCurve(points []Point, s Style) {
	s = curveStyle(s, len(l.curves))
	pts := make([]Point, len(points))
	copy(pts, points)
	l.curves = append(l.curves, curve{points: pts, style: s})
	l.note(s)
}

func (l *layers) addHLine(v float64, s Style) {
	s = referenceStyle(s)
	l.hlines = append(l.hlines, refLine{value: v, style: s})
	l.note(s)
}

func (l *layers) addVLine(v float64, s Style) {
	s = referenceStyle(s)
	l.vlines = append(l.vlines, refLine{value: v, style: s})
	l.note(s)
}

func (l *layers) note(s Style) {
	if s.Label != "" {
		l.legend = append(l.legend, legendEntry{label: s.Label, style: s})
	}
}
