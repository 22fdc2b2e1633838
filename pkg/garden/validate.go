package garden

import (
	"fmt"
	"math"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

// Validate checks that there is at least one section and that every section
// normalizes to a simple closed outline with a usable color. Errors name the
// offending section.
func Validate(sections []Section) error {
	if len(sections) == 0 {
		return errors.New(errors.ErrCodeEmptySectionList, "no sections defined")
	}
	for i, s := range sections {
		if err := validateSection(i, s); err != nil {
			return err
		}
	}
	return nil
}

func validateSection(i int, s Section) error {
	field := sectionField(i, s.Name)
	if s.Shape == nil {
		return errors.NewField(errors.ErrCodeInvalidGeometry, field, "section has no shape")
	}
	pts := s.Points()
	if len(pts) < 3 {
		return errors.NewField(errors.ErrCodeInvalidGeometry, field, "polygon needs at least 3 points, got %d", len(pts))
	}
	for _, p := range pts {
		if !finite(p) {
			return errors.NewField(errors.ErrCodeInvalidGeometry, field, "point (%v, %v) is not finite", p.X, p.Y)
		}
	}
	if geom.PolygonArea(pts) == 0 {
		return errors.NewField(errors.ErrCodeInvalidGeometry, field, "outline has zero area")
	}
	if _, ok := s.Shape.(Polygon); ok && geom.SelfIntersects(pts) {
		return errors.NewField(errors.ErrCodeInvalidGeometry, field, "polygon outline intersects itself")
	}
	if _, err := scene.ParseColor(s.Color); err != nil || s.Color == "" {
		return errors.NewField(errors.ErrCodeInvalidInput, field, "invalid color %q", s.Color)
	}
	for _, p := range s.Plants {
		if !finite(p.Position) || !finite(p.Offset()) {
			return errors.NewField(errors.ErrCodeInvalidGeometry, field, "plant %q has a non-finite position", p.Name)
		}
	}
	return nil
}

// sectionField names a section in errors by name when it has one.
func sectionField(i int, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("sections[%d]", i)
}

func finite(p geom.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
