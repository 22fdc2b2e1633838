package mapping

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matzehuels/planview/pkg/errors"
)

func doc() map[string]any {
	return map[string]any{
		"room": map[string]any{
			"width": 108,
			"depth": int64(72),
			"label": "office",
		},
		"window": map[any]any{
			"width": 60.0,
		},
		"stud":  json.Number("1.5"),
		"empty": nil,
	}
}

func TestLookup(t *testing.T) {
	v, ok := Lookup(doc(), "room.width")
	require.True(t, ok)
	assert.Equal(t, 108, v)

	v, ok = Lookup(doc(), "window.width")
	require.True(t, ok)
	assert.Equal(t, 60.0, v)

	_, ok = Lookup(doc(), "room.height")
	assert.False(t, ok)
	_, ok = Lookup(doc(), "room.width.inner")
	assert.False(t, ok)
	_, ok = Lookup(doc(), "empty")
	assert.False(t, ok)
}

func TestFloat(t *testing.T) {
	tests := []struct {
		path     string
		want     float64
		wantCode errors.Code
	}{
		{"room.width", 108, ""},
		{"room.depth", 72, ""},
		{"window.width", 60, ""},
		{"stud", 1.5, ""},
		{"room.height", 0, errors.ErrCodeMissingField},
		{"room.label", 0, errors.ErrCodeInvalidInput},
		{"room", 0, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Float(doc(), tt.path)
			if tt.wantCode != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, errors.GetCode(err))
				assert.Equal(t, tt.path, errors.GetField(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalFloat(t *testing.T) {
	got, err := OptionalFloat(doc(), "window.sill_aff")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = OptionalFloat(doc(), "window.width")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 60.0, *got)

	_, err = OptionalFloat(doc(), "room.label")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))
}

func TestString(t *testing.T) {
	s, err := String(doc(), "room.label")
	require.NoError(t, err)
	assert.Equal(t, "office", s)

	_, err = String(doc(), "room.width")
	assert.True(t, errors.Is(err, errors.ErrCodeInvalidInput))

	s, err = OptionalString(doc(), "room.note")
	require.NoError(t, err)
	assert.Empty(t, s)
}

func TestAsList(t *testing.T) {
	l, ok := AsList([]map[string]any{{"a": 1}, {"b": 2}})
	require.True(t, ok)
	assert.Len(t, l, 2)

	fs, ok := AsFloats([]any{1, int64(2), 3.5})
	require.True(t, ok)
	assert.Equal(t, []float64{1, 2, 3.5}, fs)

	_, ok = AsFloats([]any{1, "x"})
	assert.False(t, ok)
}
