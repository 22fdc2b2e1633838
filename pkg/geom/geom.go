// Package geom provides the small set of 2D value types shared by the layout
// derivers and the scene builder.
//
// All values are plain structs passed by value. Coordinates use a single implicit
// linear unit chosen by the caller (inches for the office, feet for the garden),
// with y growing upward.
package geom

import "math"

// Point is a 2D coordinate or offset vector.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by v.
func (p Point) Add(v Point) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Size is a width/height pair.
type Size struct {
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Span is a closed interval [Left, Right] on one axis.
type Span struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Width returns the length of the span.
func (s Span) Width() float64 { return s.Right - s.Left }

// Center returns the midpoint of the span.
func (s Span) Center() float64 { return (s.Left + s.Right) / 2 }

// Overlaps reports whether the two spans share more than a single point.
func (s Span) Overlaps(o Span) bool {
	return s.Left < o.Right && o.Left < s.Right
}

// Within reports whether s lies inside [lo, hi].
func (s Span) Within(lo, hi float64) bool {
	return s.Left >= lo && s.Right <= hi
}

// Mean returns the arithmetic mean of the points (vertex average).
// It is not the area-weighted centroid. Mean of an empty slice is the origin.
func Mean(pts []Point) Point {
	if len(pts) == 0 {
		return Point{}
	}
	var sx, sy float64
	for _, p := range pts {
		sx += p.X
		sy += p.Y
	}
	n := float64(len(pts))
	return Point{X: sx / n, Y: sy / n}
}

// PolygonArea returns the signed shoelace area of the closed polygon.
// Counter-clockwise polygons have positive area.
func PolygonArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var a float64
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// SelfIntersects reports whether any two non-adjacent edges of the closed polygon
// touch or cross.
func SelfIntersects(pts []Point) bool {
	n := len(pts)
	if n < 4 {
		return false
	}
	for i := 0; i < n; i++ {
		a1, a2 := pts[i], pts[(i+1)%n]
		for j := i + 1; j < n; j++ {
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			b1, b2 := pts[j], pts[(j+1)%n]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, q1, q2 Point) bool {
	d1 := orient(q1, q2, p1)
	d2 := orient(q1, q2, p2)
	d3 := orient(p1, p2, q1)
	d4 := orient(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

func orient(a, b, c Point) float64 {
	return (b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)
}

func onSegment(a, b, p Point) bool {
	return math.Min(a.X, b.X) <= p.X && p.X <= math.Max(a.X, b.X) &&
		math.Min(a.Y, b.Y) <= p.Y && p.Y <= math.Max(a.Y, b.Y)
}
