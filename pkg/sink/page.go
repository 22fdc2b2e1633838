package sink

import (
	"math"
	"strconv"
	"strings"

	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

// FitInches is the length of the longer viewport side when a scene has no
// UnitsPerInch hint.
const FitInches = 9

const (
	pointsPerInch = 72

	padEdge     = 12.0
	padTitle    = 28.0
	padAxis     = 40.0
	titleSize   = 12.0
	axisSize    = 9.0
	tickSize    = 7.0
	lineSpacing = 1.2
	ascent      = 0.8 // fraction of the font size above the baseline

	arrowLength    = 6.0
	arrowHalfWidth = 2.5
)

// Grid and frame styles.
var (
	gridStyle  = scene.Style{Stroke: "#d3d3d3", Width: 0.5}
	frameStyle = scene.Style{Stroke: "#000000", Width: 0.8}
)

// page maps scene coordinates onto a page measured in points with y down.
type page struct {
	vp     scene.Viewport
	scale  float64 // points per scene unit
	left   float64
	top    float64
	plotW  float64
	plotH  float64
	width  float64
	height float64
	axes   bool
}

func layoutPage(s scene.Scene) page {
	vp := s.Viewport()
	p := page{vp: vp}

	if upi := s.Hints().UnitsPerInch; upi > 0 {
		p.scale = pointsPerInch / upi
	} else if side := math.Max(vp.Width(), vp.Height()); side > 0 {
		p.scale = FitInches * pointsPerInch / side
	} else {
		p.scale = 1
	}
	p.plotW = vp.Width() * p.scale
	p.plotH = vp.Height() * p.scale

	p.axes = s.GridStep() > 0 || s.XLabel() != "" || s.YLabel() != ""
	p.left, p.top = padEdge, padEdge
	right, bottom := padEdge, padEdge
	if s.Title() != "" {
		p.top = padTitle
	}
	if p.axes {
		p.left += padAxis
		bottom += padAxis
	}
	p.width = p.left + p.plotW + right
	p.height = p.top + p.plotH + bottom
	return p
}

// pt converts a scene point to page coordinates.
func (p page) pt(g geom.Point) (float64, float64) {
	return p.left + (g.X-p.vp.XMin)*p.scale, p.top + (p.vp.YMax-g.Y)*p.scale
}

// dashPattern returns the on/off lengths for a dash style at stroke width w.
func dashPattern(d scene.Dash, w float64) []float64 {
	if w <= 0 {
		w = 1
	}
	switch d {
	case scene.DashDashed:
		return []float64{3.7 * w, 1.6 * w}
	case scene.DashDotted:
		return []float64{1 * w, 1.65 * w}
	default:
		return nil
	}
}

// arrowHead returns the triangle of an arrow tip at (tx, ty) pointing away
// from (fx, fy), in page coordinates.
func arrowHead(fx, fy, tx, ty float64) [3][2]float64 {
	dx, dy := tx-fx, ty-fy
	n := math.Hypot(dx, dy)
	if n == 0 {
		return [3][2]float64{{tx, ty}, {tx, ty}, {tx, ty}}
	}
	ux, uy := dx/n, dy/n
	bx, by := tx-ux*arrowLength, ty-uy*arrowLength
	return [3][2]float64{
		{tx, ty},
		{bx - uy*arrowHalfWidth, by + ux*arrowHalfWidth},
		{bx + uy*arrowHalfWidth, by - ux*arrowHalfWidth},
	}
}

// textLines splits content and returns, for a block anchored at the origin,
// the baseline offset of the first line.
func textLines(t scene.Text) ([]string, float64) {
	lines := strings.Split(t.Content, "\n")
	step := t.Size * lineSpacing
	total := step * float64(len(lines))
	var top float64
	switch t.VAlign {
	case scene.VAlignTop:
		top = 0
	case scene.VAlignBottom:
		top = -total
	default:
		top = -total / 2
	}
	return lines, top + (step-t.Size)/2 + t.Size*ascent
}

// tickLabel formats a grid coordinate.
func tickLabel(v float64) string {
	if v == 0 {
		v = 0 // -0
	}
	return strconv.FormatFloat(v, 'g', 10, 64)
}

const defaultTextSize = 10.0

// withDefaultSize gives unsized text the default font size.
func withDefaultSize(t scene.Text) scene.Text {
	if t.Size <= 0 {
		t.Size = defaultTextSize
	}
	return t
}

// pageLine is a segment in page coordinates.
type pageLine struct{ x1, y1, x2, y2 float64 }

// pageText is a single-line page label; y is the baseline.
type pageText struct {
	x, y     float64
	text     string
	size     float64
	anchor   scene.HAlign
	rotation float64 // counter-clockwise degrees
	bold     bool
}

// gridLines returns the grid segments across the plot area.
func (p page) gridLines(step float64) []pageLine {
	var out []pageLine
	for _, x := range scene.GridLines(p.vp.XMin, p.vp.XMax, step) {
		px, _ := p.pt(geom.Pt(x, 0))
		out = append(out, pageLine{px, p.top, px, p.top + p.plotH})
	}
	for _, y := range scene.GridLines(p.vp.YMin, p.vp.YMax, step) {
		_, py := p.pt(geom.Pt(0, y))
		out = append(out, pageLine{p.left, py, p.left + p.plotW, py})
	}
	return out
}

// decorations returns the title, axis labels and tick labels of s.
func (p page) decorations(s scene.Scene) []pageText {
	var out []pageText
	cx := p.left + p.plotW/2
	if s.Title() != "" {
		out = append(out, pageText{x: cx, y: p.top - 10, text: s.Title(), size: titleSize, bold: true})
	}
	if !p.axes {
		return out
	}
	bottom := p.top + p.plotH
	if s.XLabel() != "" {
		out = append(out, pageText{x: cx, y: bottom + 30, text: s.XLabel(), size: axisSize})
	}
	if s.YLabel() != "" {
		out = append(out, pageText{x: p.left - 30, y: p.top + p.plotH/2, text: s.YLabel(), size: axisSize, rotation: 90})
	}
	if step := s.GridStep(); step > 0 {
		for _, x := range scene.GridLines(p.vp.XMin, p.vp.XMax, step) {
			px, _ := p.pt(geom.Pt(x, 0))
			out = append(out, pageText{x: px, y: bottom + tickSize + 4, text: tickLabel(x), size: tickSize})
		}
		for _, y := range scene.GridLines(p.vp.YMin, p.vp.YMax, step) {
			_, py := p.pt(geom.Pt(0, y))
			out = append(out, pageText{x: p.left - 4, y: py + tickSize*0.35, text: tickLabel(y), size: tickSize, anchor: scene.AlignRight})
		}
	}
	return out
}
