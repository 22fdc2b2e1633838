package sink

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"image/png"
	"io"
	"math"
	"os/exec"
	"strings"
	"testing"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/garden"
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/office"
	"github.com/matzehuels/planview/pkg/scene"
)

func officePlan(t *testing.T) scene.Scene {
	t.Helper()
	s, err := office.PlanScene(office.Defaults())
	if err != nil {
		t.Fatalf("PlanScene: %v", err)
	}
	return s
}

func gardenMap(t *testing.T) scene.Scene {
	t.Helper()
	sections := []garden.Section{
		{
			Name:   "Herb Bed",
			Shape:  garden.Rect{Corner1: geom.Pt(0, 0), Corner2: geom.Pt(1, 20)},
			Color:  "#8fbc8f",
			Note:   "full sun",
			Plants: []garden.Plant{{Name: "Basil", Position: geom.Pt(0.5, 3)}},
		},
		{
			Name:  "Pond & Bog",
			Shape: garden.NewPolygon(geom.Pt(6, 0), geom.Pt(10, 0), geom.Pt(8, 4)),
			Color: "steelblue",
		},
	}
	s, err := garden.BuildScene(sections, garden.Options{Title: "Blueprint Garden"})
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}
	return s
}

func escaped(s string) string {
	var buf bytes.Buffer
	_ = xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func TestRenderSVGContainsEveryLabel(t *testing.T) {
	elevation, err := office.ElevationScene(office.Defaults())
	if err != nil {
		t.Fatal(err)
	}
	for name, s := range map[string]scene.Scene{
		"plan":      officePlan(t),
		"elevation": elevation,
		"garden":    gardenMap(t),
	} {
		t.Run(name, func(t *testing.T) {
			svg := string(RenderSVG(s))
			for _, text := range s.Texts() {
				for _, line := range strings.Split(text, "\n") {
					if !strings.Contains(svg, escaped(line)) {
						t.Errorf("SVG missing label line %q", line)
					}
				}
			}
			if s.Title() != "" && !strings.Contains(svg, escaped(s.Title())) {
				t.Errorf("SVG missing title %q", s.Title())
			}
		})
	}
}

func TestRenderSVGWellFormed(t *testing.T) {
	for _, s := range []scene.Scene{officePlan(t), gardenMap(t)} {
		dec := xml.NewDecoder(bytes.NewReader(RenderSVG(s)))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("invalid XML: %v", err)
			}
		}
	}
}

func TestRenderSVGAxes(t *testing.T) {
	svg := string(RenderSVG(gardenMap(t)))
	for _, want := range []string{"x (ft east)", "y (ft north)", `class="grid"`, `class="frame"`, `font-weight="bold"`} {
		if !strings.Contains(svg, want) {
			t.Errorf("garden SVG missing %q", want)
		}
	}

	plan := string(RenderSVG(officePlan(t)))
	if strings.Contains(plan, `class="grid"`) {
		t.Error("office plan should not draw a grid")
	}
	if !strings.Contains(plan, `class="dimension"`) {
		t.Error("office plan should draw dimension arrows")
	}
	if !strings.Contains(plan, "rotate(-90.00)") {
		t.Error("rotated depth label should be turned counter-clockwise")
	}
}

func TestLayoutPage(t *testing.T) {
	p := layoutPage(officePlan(t))
	// 138x106 inches at one foot per inch of paper is 828x636 pt.
	if p.scale != 6 {
		t.Errorf("scale = %v, want 6", p.scale)
	}
	if p.width != 852 || p.height != 676 {
		t.Errorf("page = %vx%v, want 852x676", p.width, p.height)
	}
	if p.axes {
		t.Error("office plan has no axes")
	}

	x, y := p.pt(geom.Pt(-20, 82))
	if x != p.left || y != p.top {
		t.Errorf("top-left corner maps to (%v, %v), want (%v, %v)", x, y, p.left, p.top)
	}

	g := layoutPage(gardenMap(t))
	longest := math.Max(g.plotW, g.plotH)
	if math.Abs(longest-FitInches*72) > 1e-9 {
		t.Errorf("garden longest side = %v pt, want %v", longest, FitInches*72)
	}
	if !g.axes {
		t.Error("garden map has axes")
	}
}

func TestRenderPNG(t *testing.T) {
	s := officePlan(t)
	data, err := RenderPNG(s, 72)
	if err != nil {
		t.Fatalf("RenderPNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 852 || b.Dy() != 676 {
		t.Errorf("image = %dx%d, want 852x676", b.Dx(), b.Dy())
	}

	data, err = RenderPNG(gardenMap(t), 36)
	if err != nil {
		t.Fatalf("RenderPNG garden: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(data)); err != nil {
		t.Fatalf("decode garden: %v", err)
	}
}

func TestRenderPNGTooLarge(t *testing.T) {
	_, err := RenderPNG(officePlan(t), 100000)
	if !errors.Is(err, errors.ErrCodeInvalidInput) || errors.GetField(err) != "dpi" {
		t.Errorf("error = %v, want INVALID_INPUT on dpi", err)
	}
}

func TestRenderJSON(t *testing.T) {
	s := gardenMap(t)
	data, err := Render(s, FormatJSON, Options{})
	if err != nil {
		t.Fatal(err)
	}
	var back scene.Scene
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Len() != s.Len() || back.Viewport() != s.Viewport() {
		t.Errorf("round trip mismatch: %v vs %v", back, s)
	}
}

func TestRenderPDF(t *testing.T) {
	_, err := Render(officePlan(t), FormatPDF, Options{})
	if _, lookErr := exec.LookPath("rsvg-convert"); lookErr != nil {
		if !errors.Is(err, errors.ErrCodeUnsupported) {
			t.Errorf("without rsvg-convert error = %v, want UNSUPPORTED", err)
		}
		return
	}
	if err != nil {
		t.Fatalf("Render pdf: %v", err)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"svg", FormatSVG, false},
		{" PNG ", FormatPNG, false},
		{"pdf", FormatPDF, false},
		{"json", FormatJSON, false},
		{"gif", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v", tt.in, got, err)
		}
		if err != nil && !errors.Is(err, errors.ErrCodeInvalidFormat) {
			t.Errorf("ParseFormat(%q) code = %s", tt.in, errors.GetCode(err))
		}
	}
}

func TestParseBackend(t *testing.T) {
	for in, want := range map[string]Backend{"": BackendNative, "native": BackendNative, "RSVG": BackendRSVG} {
		got, err := ParseBackend(in)
		if err != nil || got != want {
			t.Errorf("ParseBackend(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseBackend("cairo"); err == nil {
		t.Error("ParseBackend(cairo) should fail")
	}
}

func TestContentType(t *testing.T) {
	tests := map[Format]string{
		FormatSVG:  "image/svg+xml",
		FormatPNG:  "image/png",
		FormatPDF:  "application/pdf",
		FormatJSON: "application/json",
	}
	for f, want := range tests {
		if got := f.ContentType(); got != want {
			t.Errorf("%s.ContentType() = %q, want %q", f, got, want)
		}
	}
}

func TestArrowHead(t *testing.T) {
	head := arrowHead(0, 0, 10, 0)
	if head[0] != [2]float64{10, 0} {
		t.Errorf("tip = %v, want (10, 0)", head[0])
	}
	for _, v := range head[1:] {
		if v[0] != 10-arrowLength || math.Abs(v[1]) != arrowHalfWidth {
			t.Errorf("base vertex = %v", v)
		}
	}
}

func TestTextLines(t *testing.T) {
	txt := scene.Text{Content: "a\nb", Size: 10}
	lines, base := textLines(txt)
	if len(lines) != 2 {
		t.Fatalf("lines = %v", lines)
	}
	// Two 12pt lines centered on the anchor: block spans [-12, 12].
	if want := -12 + 1 + 8.0; math.Abs(base-want) > 1e-9 {
		t.Errorf("centered baseline = %v, want %v", base, want)
	}

	txt.VAlign = scene.VAlignTop
	if _, base := textLines(txt); math.Abs(base-9) > 1e-9 {
		t.Errorf("top baseline = %v, want 9", base)
	}
}

func TestDashPattern(t *testing.T) {
	if dashPattern(scene.DashSolid, 2) != nil {
		t.Error("solid stroke should have no dash pattern")
	}
	if got := dashPattern(scene.DashDotted, 0); got[0] != 1 {
		t.Errorf("dotted pattern at default width = %v", got)
	}
}
