// Package config loads planview input documents.
//
// Office dimension files and garden section files may be written in YAML, TOML
// or JSON. Whatever the format, they decode into a plain map[string]any which
// the office and garden packages read by dotted key path. The format is chosen
// from the file extension or, for HTTP bodies, the Content-Type header.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/planview/pkg/errors"
)

// Format is a document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", errors.NewField(errors.ErrCodeInvalidFormat, path,
			"unsupported config extension %q (use .yaml, .yml, .toml or .json)", ext)
	}
}

// FormatFromContentType maps a MIME type to a format. An empty or unrecognized
// type falls back to YAML, which also accepts JSON documents.
func FormatFromContentType(ct string) Format {
	ct = strings.ToLower(strings.TrimSpace(strings.Split(ct, ";")[0]))
	switch {
	case strings.HasSuffix(ct, "json"):
		return FormatJSON
	case strings.HasSuffix(ct, "toml"):
		return FormatTOML
	default:
		return FormatYAML
	}
}

// Load reads and decodes the file at path.
func Load(path string) (map[string]any, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read %s", path)
	}
	m, err := Decode(data, format)
	if err != nil {
		if e, ok := err.(*errors.Error); ok {
			e.Field = path
		}
		return nil, err
	}
	return m, nil
}

// Decode parses data in the given format. An empty document decodes to an
// empty, non-nil map.
func Decode(data []byte, format Format) (map[string]any, error) {
	m := map[string]any{}
	if len(bytes.TrimSpace(data)) == 0 {
		return m, nil
	}

	var err error
	switch format {
	case FormatYAML:
		err = yaml.Unmarshal(data, &m)
	case FormatTOML:
		err = toml.Unmarshal(data, &m)
	case FormatJSON:
		err = json.Unmarshal(data, &m)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown config format %q", format)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", format)
	}
	if m == nil {
		m = map[string]any{}
	}
	return m, nil
}
