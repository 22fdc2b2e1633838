// Package pkg provides the core libraries for planview dimensioned drawings.
//
// # Overview
//
// Planview turns a handful of named measurements into drawings whose every
// coordinate is derived from those measurements. Two layouts exist: a garage
// office (top-down plan and front elevation) and a garden section map.
//
// # Architecture
//
// The data flow through planview:
//
//	YAML / TOML / JSON document
//	         ↓
//	    [config] (decode into a keyed mapping)
//	         ↓
//	    [office] or [garden] (validate, derive coordinates, emit primitives)
//	         ↓
//	    [scene] (renderer-neutral list of rects, lines, markers, text, dimensions)
//	         ↓
//	    [sink] (SVG / PNG / PDF / JSON)
//
// Layout packages never touch the file system or a renderer; sinks never know
// which layout produced a scene.
//
// # Quick Start
//
//	ds := office.Defaults()
//	ds.Room.Width = 120
//	views, _ := office.Scenes(ds)
//	svg := sink.RenderSVG(views[0].Scene)
//
// # Main Packages
//
// [geom] - Points, spans and boxes in layout units.
//
// [mapping] - Typed access to decoded config documents by dotted key path.
//
// [scene] - The drawing vocabulary shared by layouts and sinks.
//
// [office] - Dimension set, derived layout context, plan and elevation scenes.
//
// [garden] - Sections, plants, viewport bounds and the section map scene.
//
// [sink] - Output encoders. PNG is rasterized natively or through rsvg-convert.
//
// [pipeline] - Load, layout and cached render, shared by the CLI and [api].
//
// [cache] - Artifact cache backends: file, Redis and no-op.
//
// [api] - HTTP render service.
//
// [observability] - Hooks for pipeline, cache and HTTP events.
//
// [errors] - Structured error codes carried to the CLI and HTTP responses.
//
// [config]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/config
// [office]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/office
// [garden]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/garden
// [scene]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/scene
// [sink]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/sink
// [geom]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/geom
// [mapping]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/mapping
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/cache
// [api]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/api
// [observability]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/planview/pkg/errors
package pkg
