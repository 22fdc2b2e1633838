// Package pipeline is the load → layout → render pipeline shared by the CLI and
// the HTTP service.
//
// # Stages
//
//  1. Load: decode a YAML, TOML or JSON document into a keyed mapping.
//  2. Layout: turn the mapping into one or more named scenes (the two office
//     views, or the garden section map).
//  3. Render: encode each scene in the requested formats.
//
// Only rendering is cached: layout is pure arithmetic and cheaper than a cache
// round trip, while rasterizing a 300 dpi PNG is not.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	doc, _ := pipeline.LoadFile("office.yaml")
//	result, err := runner.Execute(ctx, doc, pipeline.Options{
//	    Kind:    pipeline.KindOffice,
//	    Formats: []string{"png", "svg"},
//	})
//	png := result.Views[0].Artifacts["png"]
package pipeline

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/planview/pkg/cache"
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/scene"
	"github.com/matzehuels/planview/pkg/sink"
)

// Kind selects the layout deriver.
type Kind string

const (
	KindOffice Kind = "office"
	KindGarden Kind = "garden"
)

const (
	// DefaultDPI is the default raster resolution.
	DefaultDPI = sink.DefaultDPI

	// DefaultBackend is the default PNG rasterizer.
	DefaultBackend = string(sink.BackendNative)

	// GardenView is the view name of the garden section map.
	GardenView = "section_map"
)

// Format constants for output formats.
const (
	FormatSVG  = string(sink.FormatSVG)
	FormatPNG  = string(sink.FormatPNG)
	FormatPDF  = string(sink.FormatPDF)
	FormatJSON = string(sink.FormatJSON)
)

// Options configures a pipeline run. It decodes from JSON for API use.
type Options struct {
	// Layout options
	Kind  Kind   `json:"kind"`
	View  string `json:"view,omitempty"`  // office view; empty renders both
	Title string `json:"title,omitempty"` // overrides the garden document title

	// Render options
	Formats []string `json:"formats,omitempty"`
	DPI     float64  `json:"dpi,omitempty"`
	Backend string   `json:"backend,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// View is one rendered scene.
type View struct {
	Name      string
	Scene     scene.Scene
	Artifacts map[string][]byte
	CacheHit  bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	Views     []View
	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains timing and size information.
type Stats struct {
	SceneCount     int
	PrimitiveCount int
	LayoutTime     time.Duration
	RenderTime     time.Duration
}

// CacheInfo tracks cache hits for the render stage.
type CacheInfo struct {
	RenderHit bool // every artifact of every view came from cache
}

// ValidateFormat checks that a format is valid. Format names are
// case-sensitive here; sink.ParseFormat is the lenient user-facing parser.
func ValidateFormat(format string) error {
	f, err := sink.ParseFormat(format)
	if err != nil {
		return err
	}
	if string(f) != format {
		return errors.NewField(errors.ErrCodeInvalidFormat, "format", "invalid format: %q (must be one of: png, svg, pdf, json)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateKind checks that a layout kind is known.
func ValidateKind(k Kind) error {
	switch k {
	case KindOffice, KindGarden:
		return nil
	default:
		return errors.NewField(errors.ErrCodeInvalidInput, "kind", "invalid kind: %q (must be one of: office, garden)", k)
	}
}

// ValidateAndSetDefaults checks the options and fills defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the layout options.
func (o *Options) ValidateForLayout() error {
	o.setLogger()
	return ValidateKind(o.Kind)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.Backend == "" {
		o.Backend = DefaultBackend
	}
	o.setLogger()
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if _, err := sink.ParseBackend(o.Backend); err != nil {
		return err
	}
	return nil
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// SinkOptions returns the sink options for these render options.
func (o *Options) SinkOptions() sink.Options {
	return sink.Options{DPI: o.DPI, Backend: sink.Backend(o.Backend)}
}

// ArtifactKeyOpts returns cache key options for one format. DPI and backend
// only affect PNG bytes, so other formats share one entry across them.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	if format == FormatPNG {
		opts.DPI = o.DPI
		opts.Backend = o.Backend
	}
	return opts
}

// FileName returns the output file name for a view: "<base>_<view>.<format>".
func FileName(base, view, format string) string {
	return fmt.Sprintf("%s_%s.%s", base, view, format)
}
