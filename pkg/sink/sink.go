package sink

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/scene"
)

// Format is an output encoding.
type Format string

const (
	FormatSVG  Format = "svg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
	FormatJSON Format = "json"
)

// Formats lists every supported format.
var Formats = []Format{FormatPNG, FormatSVG, FormatPDF, FormatJSON}

// Backend selects the PNG rasterizer.
type Backend string

const (
	BackendNative Backend = "native"
	BackendRSVG   Backend = "rsvg"
)

// DefaultDPI is the raster resolution used when none is given.
const DefaultDPI = 300

// Options control rendering. The zero value renders at DefaultDPI with the
// native backend.
type Options struct {
	DPI     float64
	Backend Backend
}

// WithDefaults fills unset fields.
func (o Options) WithDefaults() Options {
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Backend == "" {
		o.Backend = BackendNative
	}
	return o
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	if !slices.Contains(Formats, f) {
		return "", errors.NewField(errors.ErrCodeInvalidFormat, "format",
			"unsupported output format %q (use png, svg, pdf or json)", s)
	}
	return f, nil
}

// ParseBackend validates a backend name. An empty name means native.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "", BackendNative:
		return BackendNative, nil
	case BackendRSVG:
		return b, nil
	default:
		return "", errors.NewField(errors.ErrCodeInvalidInput, "backend",
			"unknown PNG backend %q (use native or rsvg)", s)
	}
}

// ContentType returns the MIME type for f.
func (f Format) ContentType() string {
	switch f {
	case FormatSVG:
		return "image/svg+xml"
	case FormatPNG:
		return "image/png"
	case FormatPDF:
		return "application/pdf"
	case FormatJSON:
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// Render encodes s in the given format.
func Render(s scene.Scene, f Format, opts Options) ([]byte, error) {
	opts = opts.WithDefaults()
	switch f {
	case FormatSVG:
		return RenderSVG(s), nil
	case FormatPNG:
		if opts.Backend == BackendRSVG {
			return ToPNG(RenderSVG(s), opts.DPI)
		}
		return RenderPNG(s, opts.DPI)
	case FormatPDF:
		return ToPDF(RenderSVG(s))
	case FormatJSON:
		return RenderJSON(s)
	default:
		return nil, errors.NewField(errors.ErrCodeInvalidFormat, "format", "unsupported output format %q", f)
	}
}

// RenderJSON encodes the scene as indented JSON.
func RenderJSON(s scene.Scene) ([]byte, error) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode scene: %w", err)
	}
	return append(data, '\n'), nil
}
