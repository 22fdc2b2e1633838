// Package garden normalizes a heterogeneous list of map sections into drawable
// geometry.
//
// A section is either an axis-aligned rectangle given by two opposite corners or
// a polygon given by its vertices. Both normalize to a point list; labels are
// anchored at the vertex average of that list plus an optional offset. Plants are
// point annotations attached to a section. Units are feet, x east and y north.
package garden

import (
	"github.com/matzehuels/planview/pkg/geom"
)

// Margin pads the viewport around all sections and plants.
const Margin = 5

// DefaultPlantOffset is the label offset used when a plant declares none.
var DefaultPlantOffset = geom.Pt(0.4, 0.4)

// Shape is the outline of a section: Rect or Polygon.
type Shape interface {
	// Points returns the outline as an ordered vertex list.
	Points() []geom.Point

	shape()
}

// Rect is an axis-aligned rectangle given by any two opposite corners.
type Rect struct {
	Corner1 geom.Point `json:"corner1"`
	Corner2 geom.Point `json:"corner2"`
}

// Points returns the four corners counter-clockwise from the lower-left.
func (r Rect) Points() []geom.Point { return NormalizeRect(r.Corner1, r.Corner2) }
func (Rect) shape()                 {}

// Polygon is an outline through Vertices in declared order.
type Polygon struct {
	Vertices []geom.Point `json:"points"`
}

// NewPolygon returns a polygon through pts.
func NewPolygon(pts ...geom.Point) Polygon { return Polygon{Vertices: pts} }

// Points returns a copy of the declared vertices, unmodified.
func (p Polygon) Points() []geom.Point {
	out := make([]geom.Point, len(p.Vertices))
	copy(out, p.Vertices)
	return out
}
func (Polygon) shape() {}

// Plant is a point annotation. A nil LabelOffset means DefaultPlantOffset.
type Plant struct {
	Name        string      `json:"name"`
	Position    geom.Point  `json:"position"`
	Note        string      `json:"note,omitempty"`
	LabelOffset *geom.Point `json:"label_offset,omitempty"`
}

// Offset returns the effective label offset.
func (p Plant) Offset() geom.Point {
	if p.LabelOffset == nil {
		return DefaultPlantOffset
	}
	return *p.LabelOffset
}

// LabelAnchor is where the plant's label starts.
func (p Plant) LabelAnchor() geom.Point { return p.Position.Add(p.Offset()) }

// Label is the plant name, followed by its note on a second line.
func (p Plant) Label() string { return withNote(p.Name, p.Note) }

// Section is one named region of the map.
type Section struct {
	Name        string
	Shape       Shape
	Color       string
	Note        string
	LabelOffset geom.Point
	Plants      []Plant
}

// Points returns the section outline.
func (s Section) Points() []geom.Point {
	if s.Shape == nil {
		return nil
	}
	return s.Shape.Points()
}

// LabelAnchor is the vertex average of the outline shifted by LabelOffset.
func (s Section) LabelAnchor() geom.Point { return Center(s.Points()).Add(s.LabelOffset) }

// Label is the section name, followed by its note on a second line.
func (s Section) Label() string { return withNote(s.Name, s.Note) }

// NormalizeRect returns the rectangle spanned by two opposite corners as
// (xlo,ylo), (xhi,ylo), (xhi,yhi), (xlo,yhi). The result does not depend on
// which corners are given or in what order.
func NormalizeRect(c1, c2 geom.Point) []geom.Point {
	xlo, xhi := min(c1.X, c2.X), max(c1.X, c2.X)
	ylo, yhi := min(c1.Y, c2.Y), max(c1.Y, c2.Y)
	return []geom.Point{
		{X: xlo, Y: ylo},
		{X: xhi, Y: ylo},
		{X: xhi, Y: yhi},
		{X: xlo, Y: yhi},
	}
}

// Center returns the vertex average of pts. For irregular polygons this is not
// the area centroid.
func Center(pts []geom.Point) geom.Point { return geom.Mean(pts) }

func withNote(name, note string) string {
	if note == "" {
		return name
	}
	return name + "\n" + note
}
