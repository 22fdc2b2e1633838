package geom

// Bounds accumulates the axis-aligned extent of a set of points.
// The zero value is empty and ready to use.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	set        bool
}

// Extend grows the bounds to include every given point.
func (b *Bounds) Extend(pts ...Point) {
	for _, p := range pts {
		if !b.set {
			b.MinX, b.MaxX = p.X, p.X
			b.MinY, b.MaxY = p.Y, p.Y
			b.set = true
			continue
		}
		b.MinX = min(b.MinX, p.X)
		b.MaxX = max(b.MaxX, p.X)
		b.MinY = min(b.MinY, p.Y)
		b.MaxY = max(b.MaxY, p.Y)
	}
}

// Empty reports whether no point has been added.
func (b Bounds) Empty() bool { return !b.set }

// Expand returns the bounds grown by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	if !b.set {
		return b
	}
	return Bounds{
		MinX: b.MinX - margin, MaxX: b.MaxX + margin,
		MinY: b.MinY - margin, MaxY: b.MaxY + margin,
		set: true,
	}
}

// Contains reports whether p lies inside the bounds (edges included).
func (b Bounds) Contains(p Point) bool {
	return b.set && p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

// Width returns the horizontal extent.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns the vertical extent.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
