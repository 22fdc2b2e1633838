package scene

import "github.com/matzehuels/planview/pkg/geom"

// Kind identifies a primitive type in serialized scenes.
type Kind string

// Primitive kinds.
const (
	KindRect      Kind = "rect"
	KindLine      Kind = "line"
	KindPolygon   Kind = "polygon"
	KindMarker    Kind = "marker"
	KindText      Kind = "text"
	KindDimension Kind = "dimension"
)

// Primitive is a drawable shape. The set of implementations is closed: Rect, Line,
// Polygon, Marker, Text and DimensionArrow.
type Primitive interface {
	// Kind returns the serialized type tag.
	Kind() Kind
	// Extent returns the points that must lie inside the scene viewport.
	Extent() []geom.Point

	primitive()
}

// Dash selects a stroke pattern.
type Dash string

const (
	DashSolid  Dash = ""
	DashDashed Dash = "dashed"
	DashDotted Dash = "dotted"
)

// Style holds stroke and fill attributes. Empty colors mean "none".
type Style struct {
	Stroke string  `json:"stroke,omitempty"`
	Fill   string  `json:"fill,omitempty"`
	Width  float64 `json:"width,omitempty"` // stroke width in points
	Dash   Dash    `json:"dash,omitempty"`
	Alpha  float64 `json:"alpha,omitempty"` // fill opacity in (0,1]; zero means opaque
}

// Opacity returns the effective fill opacity.
func (s Style) Opacity() float64 {
	if s.Alpha <= 0 || s.Alpha > 1 {
		return 1
	}
	return s.Alpha
}

// Rect is an axis-aligned rectangle anchored at its lower-left corner.
type Rect struct {
	Min   geom.Point `json:"min"`
	Size  geom.Size  `json:"size"`
	Style Style      `json:"style"`
}

func (Rect) Kind() Kind { return KindRect }
func (r Rect) Extent() []geom.Point {
	return []geom.Point{r.Min, {X: r.Min.X + r.Size.W, Y: r.Min.Y + r.Size.H}}
}
func (Rect) primitive() {}

// Corners returns the four corners counter-clockwise from Min.
func (r Rect) Corners() []geom.Point {
	x0, y0 := r.Min.X, r.Min.Y
	x1, y1 := x0+r.Size.W, y0+r.Size.H
	return []geom.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() geom.Point {
	return geom.Point{X: r.Min.X + r.Size.W/2, Y: r.Min.Y + r.Size.H/2}
}

// Line is a straight segment.
type Line struct {
	From  geom.Point `json:"from"`
	To    geom.Point `json:"to"`
	Style Style      `json:"style"`
}

func (Line) Kind() Kind             { return KindLine }
func (l Line) Extent() []geom.Point { return []geom.Point{l.From, l.To} }
func (Line) primitive()             {}

// Polygon is a closed outline through Points in declared order.
type Polygon struct {
	Points []geom.Point `json:"points"`
	Style  Style        `json:"style"`
}

func (Polygon) Kind() Kind             { return KindPolygon }
func (p Polygon) Extent() []geom.Point { return p.Points }
func (Polygon) primitive()             {}

// Marker is a round point annotation. Size is the marker area in square points.
type Marker struct {
	At    geom.Point `json:"at"`
	Size  float64    `json:"size"`
	Style Style      `json:"style"`
}

func (Marker) Kind() Kind             { return KindMarker }
func (m Marker) Extent() []geom.Point { return []geom.Point{m.At} }
func (Marker) primitive()             {}

// HAlign is the horizontal text anchor.
type HAlign string

const (
	AlignCenter HAlign = ""
	AlignLeft   HAlign = "left"
	AlignRight  HAlign = "right"
)

// VAlign is the vertical text anchor.
type VAlign string

const (
	VAlignCenter VAlign = ""
	VAlignTop    VAlign = "top"
	VAlignBottom VAlign = "bottom"
)

// Text is a label anchored at At. Content may span several lines separated by "\n".
// Size is the font size in points; Rotation is counter-clockwise in degrees.
type Text struct {
	At       geom.Point `json:"at"`
	Content  string     `json:"content"`
	Size     float64    `json:"size"`
	HAlign   HAlign     `json:"halign,omitempty"`
	VAlign   VAlign     `json:"valign,omitempty"`
	Rotation float64    `json:"rotation,omitempty"`
	Bold     bool       `json:"bold,omitempty"`
	Color    string     `json:"color,omitempty"`
}

func (Text) Kind() Kind             { return KindText }
func (t Text) Extent() []geom.Point { return []geom.Point{t.At} }
func (Text) primitive()             {}

// DimensionArrow is a double-headed measurement arrow between From and To.
type DimensionArrow struct {
	From  geom.Point `json:"from"`
	To    geom.Point `json:"to"`
	Style Style      `json:"style"`
}

func (DimensionArrow) Kind() Kind             { return KindDimension }
func (d DimensionArrow) Extent() []geom.Point { return []geom.Point{d.From, d.To} }
func (DimensionArrow) primitive()             {}
