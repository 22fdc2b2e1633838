package garden

import (
	"fmt"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/mapping"
	"github.com/matzehuels/planview/pkg/scene"
)

// Section kinds accepted in documents.
const (
	KindRect = "rect"
	KindPoly = "poly"
)

// Document is a decoded sections file.
type Document struct {
	Title    string
	Sections []Section
}

// DocumentFromMapping reads a sections document:
//
//	title: Blueprint Garden
//	sections:
//	  - name: Herb Bed
//	    kind: rect
//	    coords: [0, 0, 4, 8]
//	    color: "#8fbc8f"
//	    plants:
//	      - {name: Basil, position: [1, 2]}
//	  - name: Pond
//	    kind: poly
//	    points: [[6, 0], [10, 0], [8, 4]]
//	    color: steelblue
func DocumentFromMapping(m map[string]any) (Document, error) {
	title, err := mapping.OptionalString(m, "title")
	if err != nil {
		return Document{}, err
	}
	sections, err := FromMapping(m)
	if err != nil {
		return Document{}, err
	}
	return Document{Title: title, Sections: sections}, nil
}

// FromMapping reads the "sections" list of a decoded document.
func FromMapping(m map[string]any) ([]Section, error) {
	raw, ok := mapping.Lookup(m, "sections")
	if !ok {
		return nil, errors.New(errors.ErrCodeEmptySectionList, "no sections defined")
	}
	list, ok := mapping.AsList(raw)
	if !ok {
		return nil, errors.NewField(errors.ErrCodeInvalidInput, "sections", "expected a list")
	}
	if len(list) == 0 {
		return nil, errors.New(errors.ErrCodeEmptySectionList, "no sections defined")
	}

	out := make([]Section, 0, len(list))
	for i, item := range list {
		path := fmt.Sprintf("sections[%d]", i)
		sm, ok := mapping.AsMap(item)
		if !ok {
			return nil, errors.NewField(errors.ErrCodeInvalidInput, path, "expected a mapping")
		}
		s, err := sectionFromMapping(path, sm)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func sectionFromMapping(path string, m map[string]any) (Section, error) {
	var s Section
	var err error
	if s.Name, err = str(m, path, "name", true); err != nil {
		return Section{}, err
	}
	kind, err := str(m, path, "kind", true)
	if err != nil {
		return Section{}, err
	}
	if s.Color, err = str(m, path, "color", true); err != nil {
		return Section{}, err
	}
	if _, err := scene.ParseColor(s.Color); err != nil {
		return Section{}, errors.NewField(errors.ErrCodeInvalidInput, path+".color", "%v", err)
	}
	if s.Note, err = str(m, path, "note", false); err != nil {
		return Section{}, err
	}

	switch kind {
	case KindRect:
		s.Shape, err = rectFromMapping(path, s.Name, m)
	case KindPoly, "polygon":
		s.Shape, err = polygonFromMapping(path, m)
	default:
		return Section{}, errors.NewField(errors.ErrCodeUnknownSectionKind, path+".kind",
			"section %q has unknown kind %q (expected %s or %s)", s.Name, kind, KindRect, KindPoly)
	}
	if err != nil {
		return Section{}, err
	}

	if v, ok := m["label_offset"]; ok && v != nil {
		if s.LabelOffset, err = point(path+".label_offset", v); err != nil {
			return Section{}, err
		}
	}

	if v, ok := m["plants"]; ok && v != nil {
		list, ok := mapping.AsList(v)
		if !ok {
			return Section{}, errors.NewField(errors.ErrCodeInvalidInput, path+".plants", "expected a list")
		}
		for j, item := range list {
			p, err := plantFromMapping(fmt.Sprintf("%s.plants[%d]", path, j), item)
			if err != nil {
				return Section{}, err
			}
			s.Plants = append(s.Plants, p)
		}
	}
	return s, nil
}

func rectFromMapping(path, name string, m map[string]any) (Rect, error) {
	v, ok := m["coords"]
	if !ok || v == nil {
		return Rect{}, errors.NewField(errors.ErrCodeMissingField, path+".coords", "required field is missing")
	}
	// Flat [x1, y1, x2, y2].
	if fs, ok := mapping.AsFloats(v); ok {
		if len(fs) < 4 {
			return Rect{}, errors.NewField(errors.ErrCodeInvalidGeometry, path+".coords",
				"rect %q needs two corners, got %d numbers", name, len(fs))
		}
		return Rect{Corner1: geom.Pt(fs[0], fs[1]), Corner2: geom.Pt(fs[2], fs[3])}, nil
	}
	// Nested [[x1, y1], [x2, y2]].
	pts, err := points(path+".coords", v)
	if err != nil {
		return Rect{}, err
	}
	if len(pts) < 2 {
		return Rect{}, errors.NewField(errors.ErrCodeInvalidGeometry, path+".coords",
			"rect %q needs two corners, got %d", name, len(pts))
	}
	return Rect{Corner1: pts[0], Corner2: pts[1]}, nil
}

func polygonFromMapping(path string, m map[string]any) (Polygon, error) {
	v, ok := m["points"]
	if !ok || v == nil {
		return Polygon{}, errors.NewField(errors.ErrCodeMissingField, path+".points", "required field is missing")
	}
	pts, err := points(path+".points", v)
	if err != nil {
		return Polygon{}, err
	}
	return NewPolygon(pts...), nil
}

func plantFromMapping(path string, item any) (Plant, error) {
	m, ok := mapping.AsMap(item)
	if !ok {
		return Plant{}, errors.NewField(errors.ErrCodeInvalidInput, path, "expected a mapping")
	}
	var p Plant
	var err error
	if p.Name, err = str(m, path, "name", true); err != nil {
		return Plant{}, err
	}
	if p.Note, err = str(m, path, "note", false); err != nil {
		return Plant{}, err
	}
	v, ok := m["position"]
	if !ok || v == nil {
		return Plant{}, errors.NewField(errors.ErrCodeMissingField, path+".position", "required field is missing")
	}
	if p.Position, err = point(path+".position", v); err != nil {
		return Plant{}, err
	}
	if v, ok := m["label_offset"]; ok && v != nil {
		off, err := point(path+".label_offset", v)
		if err != nil {
			return Plant{}, err
		}
		p.LabelOffset = &off
	}
	return p, nil
}

func str(m map[string]any, path, key string, required bool) (string, error) {
	get := mapping.OptionalString
	if required {
		get = mapping.String
	}
	s, err := get(m, key)
	if e, ok := err.(*errors.Error); ok {
		e.Field = path + "." + key
	}
	return s, err
}

// point reads an [x, y] pair.
func point(path string, v any) (geom.Point, error) {
	fs, ok := mapping.AsFloats(v)
	if !ok || len(fs) != 2 {
		return geom.Point{}, errors.NewField(errors.ErrCodeInvalidInput, path, "expected an [x, y] pair")
	}
	return geom.Pt(fs[0], fs[1]), nil
}

// points reads a list of [x, y] pairs.
func points(path string, v any) ([]geom.Point, error) {
	list, ok := mapping.AsList(v)
	if !ok {
		return nil, errors.NewField(errors.ErrCodeInvalidInput, path, "expected a list of [x, y] pairs")
	}
	out := make([]geom.Point, 0, len(list))
	for i, item := range list {
		p, err := point(fmt.Sprintf("%s[%d]", path, i), item)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
