package scene

import (
	"encoding/json"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
)

func sampleBuilder() *Builder {
	return NewBuilder("sample").
		Axes("x", "y").
		Grid(2).
		Hints(Hints{UnitsPerInch: 12, EqualAspect: true}).
		Add(
			Rect{Min: geom.Pt(0, 0), Size: geom.Size{W: 10, H: 4}, Style: Style{Stroke: "black", Width: 1}},
			Line{From: geom.Pt(-2, 1), To: geom.Pt(3, 1), Style: Style{Dash: DashDotted}},
			Polygon{Points: []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 6}}, Style: Style{Fill: "#ff0000", Alpha: 0.7}},
			Marker{At: geom.Pt(5, 5), Size: 25},
			Text{At: geom.Pt(5, 2), Content: "Desk\n78\"", Size: 8, Bold: true},
			DimensionArrow{From: geom.Pt(0, -8), To: geom.Pt(10, -8)},
		)
}

func TestBuildViewportIsBoundsPlusMargin(t *testing.T) {
	s, err := sampleBuilder().Build(10)
	require.NoError(t, err)

	assert.Equal(t, Viewport{XMin: -12, XMax: 20, YMin: -18, YMax: 16}, s.Viewport())
	assert.Equal(t, 6, s.Len())
	assert.Equal(t, "sample", s.Title())
	assert.Equal(t, "x", s.XLabel())
	assert.Equal(t, 2.0, s.GridStep())
	assert.True(t, s.Hints().EqualAspect)
}

func TestBuildEmpty(t *testing.T) {
	_, err := NewBuilder("empty").Build(5)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGeometry))
}

func TestBuildWithin(t *testing.T) {
	b := NewBuilder("w").Add(Line{From: geom.Pt(0, 0), To: geom.Pt(1, 20)})

	s, err := b.BuildWithin(Viewport{XMin: -5, XMax: 6, YMin: -5, YMax: 25})
	require.NoError(t, err)
	assert.Equal(t, 11.0, s.Viewport().Width())

	_, err = b.BuildWithin(Viewport{XMin: 0, XMax: 1, YMin: 0, YMax: 10})
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidGeometry))

	_, err = b.BuildWithin(Viewport{})
	assert.Error(t, err)
}

func TestPrimitivesReturnsCopy(t *testing.T) {
	s, err := sampleBuilder().Build(1)
	require.NoError(t, err)

	prims := s.Primitives()
	prims[0] = Marker{}
	assert.Equal(t, KindRect, s.Primitives()[0].Kind())
}

func TestSceneDetachedFromBuilder(t *testing.T) {
	b := sampleBuilder()
	s, err := b.Build(1)
	require.NoError(t, err)

	b.Add(Marker{At: geom.Pt(100, 100)})
	assert.Equal(t, 6, s.Len())
}

func TestTexts(t *testing.T) {
	s, err := sampleBuilder().Build(1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Desk\n78\""}, s.Texts())
}

func TestJSONRoundTrip(t *testing.T) {
	s, err := sampleBuilder().Build(10)
	require.NoError(t, err)

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"dimension"`)

	var got Scene
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, s, got)
}

func TestJSONUnknownKind(t *testing.T) {
	var s Scene
	err := json.Unmarshal([]byte(`{"viewport":{},"hints":{},"primitives":[{"kind":"circle","data":{}}]}`), &s)
	assert.ErrorContains(t, err, "circle")
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"#2d3142", color.RGBA{0x2d, 0x31, 0x42, 0xff}, false},
		{"#fff", color.RGBA{0xff, 0xff, 0xff, 0xff}, false},
		{"#00000080", color.RGBA{0, 0, 0, 0x80}, false},
		{"SteelBlue", color.RGBA{0x46, 0x82, 0xb4, 0xff}, false},
		{"none", color.RGBA{}, false},
		{"", color.RGBA{}, false},
		{"#12345", color.RGBA{}, true},
		{"#gggggg", color.RGBA{}, true},
		{"notacolor", color.RGBA{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHex(t *testing.T) {
	assert.Equal(t, "#2d3142", Hex(MustColor("#2d3142")))
}

func TestNiceStep(t *testing.T) {
	tests := []struct {
		span float64
		want float64
	}{
		{10, 1},
		{30, 2},
		{52, 5},
		{90, 10},
		{1.1, 0.1},
		{0, 1},
		{-3, 1},
	}
	for _, tt := range tests {
		assert.InDelta(t, tt.want, NiceStep(tt.span), 1e-12, "span %v", tt.span)
	}
}

func TestGridLines(t *testing.T) {
	assert.Equal(t, []float64{-4, -2, 0, 2, 4}, GridLines(-5, 5, 2))
	assert.Equal(t, []float64{0, 5, 10}, GridLines(0, 10, 5))
	assert.Nil(t, GridLines(0, 10, 0))
}

func TestStyleOpacity(t *testing.T) {
	assert.Equal(t, 1.0, Style{}.Opacity())
	assert.Equal(t, 0.7, Style{Alpha: 0.7}.Opacity())
}
