package garden

import (
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

// DefaultTitle is used when neither the document nor the caller names the map.
const DefaultTitle = "Section Map"

// Map styling.
const (
	sectionAlpha     = 0.7
	sectionEdge      = "#000000"
	sectionEdgeWidth = 1.2
	sectionLabelSize = 8
	plantFill        = "#2d3142"
	plantEdge        = "#ffffff"
	plantEdgeWidth   = 0.5
	plantSize        = 25
	plantLabelSize   = 7
	plantLabelColor  = "#1b1b1b"
)

// Options configure BuildScene.
type Options struct {
	// Title overrides DefaultTitle.
	Title string
}

// Bounds returns the viewport enclosing every section point and every plant
// position, grown by Margin on each side. Label anchors do not contribute.
func Bounds(sections []Section) (scene.Viewport, error) {
	if len(sections) == 0 {
		return scene.Viewport{}, errors.New(errors.ErrCodeEmptySectionList, "no sections to bound")
	}
	var b geom.Bounds
	for _, s := range sections {
		b.Extend(s.Points()...)
		for _, p := range s.Plants {
			b.Extend(p.Position)
		}
	}
	if b.Empty() {
		return scene.Viewport{}, errors.New(errors.ErrCodeInvalidGeometry, "sections have no points")
	}
	return scene.ViewportOf(b.Expand(Margin)), nil
}

// BuildScene validates sections and draws them: a translucent filled outline
// and bold centered label per section, then a marker and label per plant.
func BuildScene(sections []Section, opts Options) (scene.Scene, error) {
	if err := Validate(sections); err != nil {
		return scene.Scene{}, err
	}
	vp, err := Bounds(sections)
	if err != nil {
		return scene.Scene{}, err
	}

	title := opts.Title
	if title == "" {
		title = DefaultTitle
	}
	b := scene.NewBuilder(title).
		Axes("x (ft east)", "y (ft north)").
		Grid(scene.NiceStep(max(vp.Width(), vp.Height()))).
		Hints(scene.Hints{EqualAspect: true})

	for _, s := range sections {
		b.Add(
			scene.Polygon{
				Points: s.Points(),
				Style: scene.Style{
					Stroke: sectionEdge,
					Fill:   s.Color,
					Width:  sectionEdgeWidth,
					Alpha:  sectionAlpha,
				},
			},
			scene.Text{
				At:      s.LabelAnchor(),
				Content: s.Label(),
				Size:    sectionLabelSize,
				Bold:    true,
			},
		)
		for _, p := range s.Plants {
			b.Add(
				scene.Marker{
					At:    p.Position,
					Size:  plantSize,
					Style: scene.Style{Stroke: plantEdge, Fill: plantFill, Width: plantEdgeWidth},
				},
				scene.Text{
					At:      p.LabelAnchor(),
					Content: p.Label(),
					Size:    plantLabelSize,
					HAlign:  scene.AlignLeft,
					VAlign:  scene.VAlignBottom,
					Color:   plantLabelColor,
				},
			)
		}
	}
	return b.BuildWithin(vp)
}
