package pipeline

import (
	"fmt"

	"github.com/matzehuels/planview/pkg/scene"
	"github.com/matzehuels/planview/pkg/sink"
)

// Render encodes a scene in every requested format without caching.
func Render(s scene.Scene, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	return renderFormats(s, opts.Formats, opts)
}

func renderFormats(s scene.Scene, formats []string, opts Options) (map[string][]byte, error) {
	so := opts.SinkOptions()
	artifacts := make(map[string][]byte, len(formats))

	// SVG feeds the rsvg-based formats, so encode it at most once.
	var svg []byte
	svgOnce := func() []byte {
		if svg == nil {
			svg = sink.RenderSVG(s)
		}
		return svg
	}

	for _, format := range formats {
		var data []byte
		var err error

		switch sink.Format(format) {
		case sink.FormatSVG:
			data = svgOnce()
		case sink.FormatPDF:
			data, err = sink.ToPDF(svgOnce())
		case sink.FormatPNG:
			if so.Backend == sink.BackendRSVG {
				data, err = sink.ToPNG(svgOnce(), so.DPI)
			} else {
				data, err = sink.RenderPNG(s, so.DPI)
			}
		default:
			data, err = sink.Render(s, sink.Format(format), so)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
