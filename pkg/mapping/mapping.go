// Package mapping reads typed values out of decoded configuration documents.
//
// Documents arrive as map[string]any from YAML, TOML or JSON decoders, which
// disagree on numeric and container types (int vs int64 vs float64,
// []any vs []map[string]any). The helpers here normalize those differences and
// report failures as structured errors carrying the dotted path of the key.
package mapping

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/planview/pkg/errors"
)

// Lookup resolves a dotted path such as "room.width" against m.
func Lookup(m map[string]any, path string) (any, bool) {
	var cur any = m
	for _, key := range strings.Split(path, ".") {
		node, ok := AsMap(cur)
		if !ok {
			return nil, false
		}
		cur, ok = node[key]
		if !ok || cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// Float returns the number at path. A missing key yields CONFIG_MISSING_FIELD,
// a non-numeric value INVALID_INPUT.
func Float(m map[string]any, path string) (float64, error) {
	v, ok := Lookup(m, path)
	if !ok {
		return 0, errors.NewField(errors.ErrCodeMissingField, path, "required field is missing")
	}
	f, ok := AsFloat(v)
	if !ok {
		return 0, errors.NewField(errors.ErrCodeInvalidInput, path, "expected a number, got %s", describe(v))
	}
	return f, nil
}

// OptionalFloat is Float for keys that may be absent; absence yields nil.
func OptionalFloat(m map[string]any, path string) (*float64, error) {
	if _, ok := Lookup(m, path); !ok {
		return nil, nil
	}
	f, err := Float(m, path)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// String returns the string at path.
func String(m map[string]any, path string) (string, error) {
	v, ok := Lookup(m, path)
	if !ok {
		return "", errors.NewField(errors.ErrCodeMissingField, path, "required field is missing")
	}
	s, ok := v.(string)
	if !ok {
		return "", errors.NewField(errors.ErrCodeInvalidInput, path, "expected a string, got %s", describe(v))
	}
	return s, nil
}

// OptionalString returns the string at path or "" when absent.
func OptionalString(m map[string]any, path string) (string, error) {
	if _, ok := Lookup(m, path); !ok {
		return "", nil
	}
	return String(m, path)
}

// AsFloat converts any decoded numeric value to float64.
func AsFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int64:
		f = float64(n)
	case int32:
		f = float64(n)
	case uint64:
		f = float64(n)
	case uint:
		f = float64(n)
	case json.Number:
		var err error
		if f, err = n.Float64(); err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// AsMap converts a decoded mapping node to map[string]any.
func AsMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// AsList converts a decoded sequence node to []any.
func AsList(v any) ([]any, bool) {
	switch l := v.(type) {
	case []any:
		return l, true
	case []map[string]any:
		out := make([]any, len(l))
		for i, m := range l {
			out[i] = m
		}
		return out, true
	case []float64:
		out := make([]any, len(l))
		for i, f := range l {
			out[i] = f
		}
		return out, true
	default:
		return nil, false
	}
}

// AsFloats converts a flat numeric sequence to []float64.
func AsFloats(v any) ([]float64, bool) {
	l, ok := AsList(v)
	if !ok {
		return nil, false
	}
	out := make([]float64, len(l))
	for i, e := range l {
		f, ok := AsFloat(e)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func describe(v any) string {
	switch v.(type) {
	case string:
		return fmt.Sprintf("string %q", v)
	case bool:
		return "boolean"
	default:
		if _, ok := AsMap(v); ok {
			return "mapping"
		}
		if _, ok := AsList(v); ok {
			return "list"
		}
		return fmt.Sprintf("%T", v)
	}
}
