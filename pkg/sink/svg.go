package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

const fontFamily = "Helvetica, Arial, sans-serif"

// RenderSVG draws the scene as a standalone SVG document. One SVG user unit is
// one point, and the width and height attributes carry the pt unit so that
// converters size the page correctly.
func RenderSVG(s scene.Scene) []byte {
	p := layoutPage(s)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.2fpt" height="%.2fpt">`+"\n",
		p.width, p.height, p.width, p.height)
	fmt.Fprintf(&buf, `  <rect width="%.2f" height="%.2f" fill="#ffffff"/>`+"\n", p.width, p.height)

	if step := s.GridStep(); step > 0 {
		buf.WriteString(`  <g class="grid">` + "\n")
		for _, l := range p.gridLines(step) {
			fmt.Fprintf(&buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n",
				l.x1, l.y1, l.x2, l.y2, strokeAttrs(gridStyle))
		}
		buf.WriteString("  </g>\n")
	}

	fmt.Fprintf(&buf, `  <g class="scene" font-family="%s">`+"\n", fontFamily)
	for _, prim := range s.Primitives() {
		writePrimitive(&buf, p, prim)
	}
	buf.WriteString("  </g>\n")

	if p.axes {
		fmt.Fprintf(&buf, `  <rect class="frame" x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="none" %s/>`+"\n",
			p.left, p.top, p.plotW, p.plotH, strokeAttrs(frameStyle))
	}
	if labels := p.decorations(s); len(labels) > 0 {
		fmt.Fprintf(&buf, `  <g class="labels" font-family="%s">`+"\n", fontFamily)
		for _, t := range labels {
			writePageText(&buf, t)
		}
		buf.WriteString("  </g>\n")
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func writePrimitive(buf *bytes.Buffer, p page, prim scene.Primitive) {
	switch v := prim.(type) {
	case scene.Rect:
		writePolygon(buf, p, v.Corners(), v.Style)
	case scene.Polygon:
		writePolygon(buf, p, v.Points, v.Style)
	case scene.Line:
		x1, y1 := p.pt(v.From)
		x2, y2 := p.pt(v.To)
		fmt.Fprintf(buf, `    <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n", x1, y1, x2, y2, strokeAttrs(v.Style))
	case scene.Marker:
		x, y := p.pt(v.At)
		r := math.Sqrt(v.Size) / 2
		fmt.Fprintf(buf, `    <circle cx="%.2f" cy="%.2f" r="%.2f" %s %s/>`+"\n", x, y, r, fillAttrs(v.Style), strokeAttrs(v.Style))
	case scene.DimensionArrow:
		writeDimension(buf, p, v)
	case scene.Text:
		writeText(buf, p, v)
	}
}

func writePolygon(buf *bytes.Buffer, p page, pts []geom.Point, st scene.Style) {
	var sb strings.Builder
	for i, g := range pts {
		x, y := p.pt(g)
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%.2f,%.2f", x, y)
	}
	fmt.Fprintf(buf, `    <polygon points="%s" %s %s/>`+"\n", sb.String(), fillAttrs(st), strokeAttrs(st))
}

func writeDimension(buf *bytes.Buffer, p page, d scene.DimensionArrow) {
	x1, y1 := p.pt(d.From)
	x2, y2 := p.pt(d.To)
	stroke, _ := paint(d.Style.Stroke)
	if stroke == "none" {
		stroke = "#000000"
	}
	fmt.Fprintf(buf, `    <g class="dimension">`+"\n")
	fmt.Fprintf(buf, `      <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" %s/>`+"\n", x1, y1, x2, y2, strokeAttrs(d.Style))
	for _, head := range [][3][2]float64{arrowHead(x1, y1, x2, y2), arrowHead(x2, y2, x1, y1)} {
		fmt.Fprintf(buf, `      <polygon points="%.2f,%.2f %.2f,%.2f %.2f,%.2f" fill="%s"/>`+"\n",
			head[0][0], head[0][1], head[1][0], head[1][1], head[2][0], head[2][1], stroke)
	}
	buf.WriteString("    </g>\n")
}

func writeText(buf *bytes.Buffer, p page, t scene.Text) {
	t = withDefaultSize(t)
	x, y := p.pt(t.At)
	lines, base := textLines(t)

	fill, opacity := paint(t.Color)
	if fill == "none" {
		fill, opacity = "#000000", 1
	}

	fmt.Fprintf(buf, `    <text transform="translate(%.2f %.2f)%s" font-size="%.2f" text-anchor="%s" fill="%s"%s%s>`,
		x, y, rotateAttr(t.Rotation), t.Size, textAnchor(t.HAlign), fill, opacityAttr("fill-opacity", opacity), boldAttr(t.Bold))
	for i, line := range lines {
		fmt.Fprintf(buf, `<tspan x="0" y="%.2f">`, base+float64(i)*t.Size*lineSpacing)
		_ = xml.EscapeText(buf, []byte(line))
		buf.WriteString("</tspan>")
	}
	buf.WriteString("</text>\n")
}

func writePageText(buf *bytes.Buffer, t pageText) {
	fmt.Fprintf(buf, `    <text transform="translate(%.2f %.2f)%s" font-size="%.2f" text-anchor="%s" fill="#000000"%s>`,
		t.x, t.y, rotateAttr(t.rotation), t.size, textAnchor(t.anchor), boldAttr(t.bold))
	_ = xml.EscapeText(buf, []byte(t.text))
	buf.WriteString("</text>\n")
}

// paint resolves a color to "#rrggbb" and its alpha. Transparent and empty
// colors yield "none".
func paint(c string) (string, float64) {
	rgba, err := scene.ParseColor(c)
	if err != nil {
		return c, 1
	}
	if rgba.A == 0 {
		return "none", 0
	}
	return scene.Hex(rgba), float64(rgba.A) / 255
}

func fillAttrs(st scene.Style) string {
	fill, a := paint(st.Fill)
	if fill == "none" {
		return `fill="none"`
	}
	return fmt.Sprintf(`fill="%s"%s`, fill, opacityAttr("fill-opacity", a*st.Opacity()))
}

func strokeAttrs(st scene.Style) string {
	stroke, a := paint(st.Stroke)
	if stroke == "none" {
		return `stroke="none"`
	}
	w := st.Width
	if w <= 0 {
		w = 1
	}
	attrs := fmt.Sprintf(`stroke="%s" stroke-width="%.2f"%s`, stroke, w, opacityAttr("stroke-opacity", a))
	if dash := dashPattern(st.Dash, w); dash != nil {
		attrs += fmt.Sprintf(` stroke-dasharray="%.2f %.2f"`, dash[0], dash[1])
	}
	return attrs
}

func opacityAttr(name string, v float64) string {
	if v >= 1 {
		return ""
	}
	return fmt.Sprintf(` %s="%.2f"`, name, v)
}

func rotateAttr(deg float64) string {
	if deg == 0 {
		return ""
	}
	return fmt.Sprintf(" rotate(%.2f)", -deg)
}

func boldAttr(bold bool) string {
	if bold {
		return ` font-weight="bold"`
	}
	return ""
}

func textAnchor(a scene.HAlign) string {
	switch a {
	case scene.AlignLeft:
		return "start"
	case scene.AlignRight:
		return "end"
	default:
		return "middle"
	}
}
