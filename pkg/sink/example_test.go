package sink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
	"github.com/matzehuels/planview/pkg/sink"
)

func ExampleRenderSVG() {
	s, _ := scene.NewBuilder("Shed").
		Add(
			scene.Rect{Min: geom.Pt(0, 0), Size: geom.Size{W: 8, H: 6}, Style: scene.Style{Stroke: "black", Width: 2}},
			scene.Text{At: geom.Pt(4, 3), Content: "Shed 8x6", Size: 9},
		).
		Build(1)

	svg := string(sink.RenderSVG(s))
	fmt.Println("SVG starts with:", svg[:4])
	fmt.Println("Contains label:", strings.Contains(svg, "Shed 8x6"))
	// Output:
	// SVG starts with: <svg
	// Contains label: true
}

func ExampleParseFormat() {
	f, _ := sink.ParseFormat("PNG")
	fmt.Println(f, f.ContentType())
	// Output: png image/png
}
