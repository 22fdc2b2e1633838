package scene

import (
	"encoding/json"
	"fmt"
)

type sceneJSON struct {
	Title      string          `json:"title,omitempty"`
	XLabel     string          `json:"xlabel,omitempty"`
	YLabel     string          `json:"ylabel,omitempty"`
	GridStep   float64         `json:"grid_step,omitempty"`
	Viewport   Viewport        `json:"viewport"`
	Hints      Hints           `json:"hints"`
	Primitives []primitiveJSON `json:"primitives"`
}

type primitiveJSON struct {
	Kind Kind            `json:"kind"`
	Data json.RawMessage `json:"data"`
}

// MarshalJSON encodes the scene with a kind tag on every primitive.
func (s Scene) MarshalJSON() ([]byte, error) {
	out := sceneJSON{
		Title:      s.title,
		XLabel:     s.xLabel,
		YLabel:     s.yLabel,
		GridStep:   s.gridStep,
		Viewport:   s.viewport,
		Hints:      s.hints,
		Primitives: make([]primitiveJSON, 0, len(s.prims)),
	}
	for _, p := range s.prims {
		data, err := json.Marshal(p)
		if err != nil {
			return nil, fmt.Errorf("marshal %s: %w", p.Kind(), err)
		}
		out.Primitives = append(out.Primitives, primitiveJSON{Kind: p.Kind(), Data: data})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a scene written by MarshalJSON.
func (s *Scene) UnmarshalJSON(data []byte) error {
	var in sceneJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	prims := make([]Primitive, 0, len(in.Primitives))
	for i, pj := range in.Primitives {
		p, err := decodePrimitive(pj)
		if err != nil {
			return fmt.Errorf("primitive %d: %w", i, err)
		}
		prims = append(prims, p)
	}
	*s = Scene{
		title:    in.Title,
		xLabel:   in.XLabel,
		yLabel:   in.YLabel,
		gridStep: in.GridStep,
		viewport: in.Viewport,
		hints:    in.Hints,
		prims:    prims,
	}
	return nil
}

func decodePrimitive(pj primitiveJSON) (Primitive, error) {
	switch pj.Kind {
	case KindRect:
		return decodeAs[Rect](pj.Data)
	case KindLine:
		return decodeAs[Line](pj.Data)
	case KindPolygon:
		return decodeAs[Polygon](pj.Data)
	case KindMarker:
		return decodeAs[Marker](pj.Data)
	case KindText:
		return decodeAs[Text](pj.Data)
	case KindDimension:
		return decodeAs[DimensionArrow](pj.Data)
	default:
		return nil, fmt.Errorf("unknown primitive kind %q", pj.Kind)
	}
}

func decodeAs[T Primitive](data json.RawMessage) (Primitive, error) {
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
