// Package office derives the garage office layout from a flat set of named
// dimensions and draws it as two scenes: a top-down plan and a front elevation
// of the desk wall.
//
// Derivation is pure arithmetic over a [DimensionSet]. Every coordinate in a
// [Context] is a function of its inputs, so changing one dimension and
// re-deriving keeps both drawings consistent. Invalid input is rejected before
// any primitive is emitted.
//
//	ds := office.Defaults()
//	ds.Room.Width = 120
//	views, err := office.Scenes(ds)
package office

import (
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/scene"
)

// View names, also used as output file suffixes.
const (
	ViewTopDown        = "top_down"
	ViewFrontElevation = "front_elevation"
)

// Views lists the office views in render order.
var Views = []string{ViewTopDown, ViewFrontElevation}

// Named pairs a scene with its view name.
type Named struct {
	Name  string
	Scene scene.Scene
}

// Scenes derives both office views.
func Scenes(ds DimensionSet) ([]Named, error) {
	out := make([]Named, 0, len(Views))
	for _, v := range Views {
		s, err := View(ds, v)
		if err != nil {
			return nil, err
		}
		out = append(out, Named{Name: v, Scene: s})
	}
	return out, nil
}

// View derives a single office view by name.
func View(ds DimensionSet, name string) (scene.Scene, error) {
	switch name {
	case ViewTopDown:
		return PlanScene(ds)
	case ViewFrontElevation:
		return ElevationScene(ds)
	default:
		return scene.Scene{}, errors.NewField(errors.ErrCodeInvalidInput, "view",
			"unknown view %q (expected %s or %s)", name, ViewTopDown, ViewFrontElevation)
	}
}
