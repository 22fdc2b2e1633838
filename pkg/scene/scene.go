// Package scene defines the backend-agnostic drawing contract shared by the layout
// derivers and the output sinks.
//
// A [Scene] is an immutable, ordered list of primitives together with the viewport
// that contains them and a few rendering hints. Derivers assemble scenes with a
// [Builder]; sinks only read them. Coordinates are in the caller's unit with y
// growing upward.
package scene

import (
	"fmt"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
)

// Viewport is the visible region of a scene in scene units.
type Viewport struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`
}

// Width returns the horizontal extent.
func (v Viewport) Width() float64 { return v.XMax - v.XMin }

// Height returns the vertical extent.
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

// Contains reports whether p lies inside the viewport (edges included).
func (v Viewport) Contains(p geom.Point) bool {
	return p.X >= v.XMin && p.X <= v.XMax && p.Y >= v.YMin && p.Y <= v.YMax
}

// ViewportOf converts non-empty bounds into a viewport.
func ViewportOf(b geom.Bounds) Viewport {
	return Viewport{XMin: b.MinX, XMax: b.MaxX, YMin: b.MinY, YMax: b.MaxY}
}

// Hints carry renderer guidance that is not geometry.
type Hints struct {
	// UnitsPerInch is how many scene units map to one inch of output paper.
	// Zero lets the sink pick a scale from the viewport.
	UnitsPerInch float64 `json:"units_per_inch,omitempty"`
	// EqualAspect requests the same scale on both axes.
	EqualAspect bool `json:"equal_aspect,omitempty"`
}

// Scene is a finished drawing. The zero value is an empty scene; real scenes come
// from [Builder.Build] or [Builder.BuildWithin].
type Scene struct {
	title    string
	xLabel   string
	yLabel   string
	gridStep float64
	viewport Viewport
	hints    Hints
	prims    []Primitive
}

// Title returns the scene title, which may be empty.
func (s Scene) Title() string { return s.title }

// XLabel returns the horizontal axis caption.
func (s Scene) XLabel() string { return s.xLabel }

// YLabel returns the vertical axis caption.
func (s Scene) YLabel() string { return s.yLabel }

// GridStep returns the grid spacing in scene units; zero means no grid.
func (s Scene) GridStep() float64 { return s.gridStep }

// Viewport returns the scene's visible region.
func (s Scene) Viewport() Viewport { return s.viewport }

// Hints returns the rendering hints.
func (s Scene) Hints() Hints { return s.hints }

// Len returns the number of primitives.
func (s Scene) Len() int { return len(s.prims) }

// Primitives returns a copy of the primitive list in draw order.
func (s Scene) Primitives() []Primitive {
	out := make([]Primitive, len(s.prims))
	copy(out, s.prims)
	return out
}

// Texts returns the content of every text primitive in draw order.
func (s Scene) Texts() []string {
	var out []string
	for _, p := range s.prims {
		if t, ok := p.(Text); ok {
			out = append(out, t.Content)
		}
	}
	return out
}

// Builder accumulates primitives for a scene. Builders are not safe for
// concurrent use.
type Builder struct {
	title    string
	xLabel   string
	yLabel   string
	gridStep float64
	hints    Hints
	prims    []Primitive
}

// NewBuilder returns a builder for a scene with the given title.
func NewBuilder(title string) *Builder {
	return &Builder{title: title}
}

// Axes sets the axis captions.
func (b *Builder) Axes(x, y string) *Builder {
	b.xLabel, b.yLabel = x, y
	return b
}

// Grid sets the grid spacing. Zero disables the grid.
func (b *Builder) Grid(step float64) *Builder {
	b.gridStep = step
	return b
}

// Hints sets the rendering hints.
func (b *Builder) Hints(h Hints) *Builder {
	b.hints = h
	return b
}

// Add appends primitives in draw order.
func (b *Builder) Add(p ...Primitive) *Builder {
	b.prims = append(b.prims, p...)
	return b
}

// Bounds returns the extent of all primitives added so far.
func (b *Builder) Bounds() geom.Bounds {
	var bb geom.Bounds
	for _, p := range b.prims {
		bb.Extend(p.Extent()...)
	}
	return bb
}

// Build finishes the scene with a viewport equal to the primitive bounds grown by
// margin on every side.
func (b *Builder) Build(margin float64) (Scene, error) {
	if err := errors.RequireNonNegative("margin", margin); err != nil {
		return Scene{}, err
	}
	bb := b.Bounds()
	if bb.Empty() {
		return Scene{}, errors.New(errors.ErrCodeInvalidGeometry, "scene %q has no primitives", b.title)
	}
	return b.finish(ViewportOf(bb.Expand(margin))), nil
}

// BuildWithin finishes the scene with a precomputed viewport. Every non-text
// primitive must lie inside vp; text anchors are not checked and renderers clip
// labels that fall outside.
func (b *Builder) BuildWithin(vp Viewport) (Scene, error) {
	if !(vp.Width() > 0) || !(vp.Height() > 0) {
		return Scene{}, errors.New(errors.ErrCodeInvalidGeometry, "viewport %v has zero area", vp)
	}
	for i, p := range b.prims {
		if p.Kind() == KindText {
			continue
		}
		for _, pt := range p.Extent() {
			if !vp.Contains(pt) {
				return Scene{}, errors.New(errors.ErrCodeInvalidGeometry,
					"%s primitive %d at (%g, %g) lies outside viewport", p.Kind(), i, pt.X, pt.Y)
			}
		}
	}
	return b.finish(vp), nil
}

func (b *Builder) finish(vp Viewport) Scene {
	prims := make([]Primitive, len(b.prims))
	copy(prims, b.prims)
	return Scene{
		title:    b.title,
		xLabel:   b.xLabel,
		yLabel:   b.yLabel,
		gridStep: b.gridStep,
		viewport: vp,
		hints:    b.hints,
		prims:    prims,
	}
}

// String summarizes the scene for logs.
func (s Scene) String() string {
	return fmt.Sprintf("scene %q: %d primitives in [%g,%g]x[%g,%g]",
		s.title, len(s.prims), s.viewport.XMin, s.viewport.XMax, s.viewport.YMin, s.viewport.YMax)
}
