// Package sink turns a [scene.Scene] into output bytes.
//
// # Formats
//
//   - SVG: [RenderSVG] writes the scene directly as vector graphics.
//   - PNG: [RenderPNG] rasterizes natively with gg and the Go fonts, or shells
//     out to rsvg-convert when [BackendRSVG] is selected.
//   - PDF: produced from the SVG by rsvg-convert (see [ToPDF]).
//   - JSON: the scene itself, for debugging and for other renderers.
//
// [Render] dispatches on [Format] and is what the pipeline calls.
//
// # Page geometry
//
// Scene units map to points with a single scale on both axes. When the scene
// carries [scene.Hints.UnitsPerInch], one inch of paper shows that many units;
// otherwise the larger viewport side is fitted to [FitInches]. The page is the
// viewport plus room for the title, axis labels and tick labels, so output is
// cropped tightly to the drawing.
//
// # External tools
//
// PDF output and the rsvg PNG backend need rsvg-convert from librsvg:
//
//	brew install librsvg        # macOS
//	apt install librsvg2-bin    # Debian/Ubuntu
package sink
