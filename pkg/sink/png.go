package sink

import (
	"bytes"
	"fmt"
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

// MaxPixels caps the size of a native raster.
const MaxPixels = 100_000_000

var goFonts = sync.OnceValues(func() ([2]*opentype.Font, error) {
	var fonts [2]*opentype.Font
	for i, ttf := range [][]byte{goregular.TTF, gobold.TTF} {
		f, err := opentype.Parse(ttf)
		if err != nil {
			return fonts, fmt.Errorf("parse go font: %w", err)
		}
		fonts[i] = f
	}
	return fonts, nil
})

// RenderPNG rasterizes the scene with gg at dpi pixels per inch of page.
func RenderPNG(s scene.Scene, dpi float64) ([]byte, error) {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	fonts, err := goFonts()
	if err != nil {
		return nil, err
	}

	p := layoutPage(s)
	k := dpi / pointsPerInch
	w, h := int(math.Ceil(p.width*k)), int(math.Ceil(p.height*k))
	if w <= 0 || h <= 0 || float64(w)*float64(h) > MaxPixels {
		return nil, errors.NewField(errors.ErrCodeInvalidInput, "dpi",
			"raster of %dx%d pixels at %g dpi is out of range", w, h, dpi)
	}

	r := &raster{
		dc:    gg.NewContext(w, h),
		page:  p,
		k:     k,
		fonts: fonts,
		faces: map[faceKey]font.Face{},
	}
	r.dc.SetColor(color.White)
	r.dc.Clear()

	if step := s.GridStep(); step > 0 {
		for _, l := range p.gridLines(step) {
			r.line(l, gridStyle)
		}
	}
	for _, prim := range s.Primitives() {
		if err := r.primitive(prim); err != nil {
			return nil, err
		}
	}
	if p.axes {
		r.dc.DrawRectangle(p.left*k, p.top*k, p.plotW*k, p.plotH*k)
		r.stroke(frameStyle)
	}
	for _, t := range p.decorations(s) {
		if err := r.pageText(t); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := r.dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

type faceKey struct {
	bold bool
	size float64
}

// raster draws page coordinates scaled by k onto a gg context.
type raster struct {
	dc    *gg.Context
	page  page
	k     float64
	fonts [2]*opentype.Font
	faces map[faceKey]font.Face
}

func (r *raster) pt(g geom.Point) (float64, float64) {
	x, y := r.page.pt(g)
	return x * r.k, y * r.k
}

func (r *raster) primitive(prim scene.Primitive) error {
	switch v := prim.(type) {
	case scene.Rect:
		r.polygon(v.Corners(), v.Style)
	case scene.Polygon:
		r.polygon(v.Points, v.Style)
	case scene.Line:
		x1, y1 := r.page.pt(v.From)
		x2, y2 := r.page.pt(v.To)
		r.line(pageLine{x1, y1, x2, y2}, v.Style)
	case scene.Marker:
		x, y := r.pt(v.At)
		r.dc.DrawCircle(x, y, math.Sqrt(v.Size)/2*r.k)
		r.fill(v.Style)
		r.dc.DrawCircle(x, y, math.Sqrt(v.Size)/2*r.k)
		r.stroke(v.Style)
	case scene.DimensionArrow:
		x1, y1 := r.page.pt(v.From)
		x2, y2 := r.page.pt(v.To)
		r.line(pageLine{x1, y1, x2, y2}, v.Style)
		c := rgba(v.Style.Stroke, 1)
		if c.A == 0 {
			c = color.NRGBA{A: 255}
		}
		for _, head := range [][3][2]float64{arrowHead(x1, y1, x2, y2), arrowHead(x2, y2, x1, y1)} {
			r.dc.MoveTo(head[0][0]*r.k, head[0][1]*r.k)
			r.dc.LineTo(head[1][0]*r.k, head[1][1]*r.k)
			r.dc.LineTo(head[2][0]*r.k, head[2][1]*r.k)
			r.dc.ClosePath()
			r.dc.SetColor(c)
			r.dc.Fill()
		}
	case scene.Text:
		return r.text(v)
	}
	return nil
}

func (r *raster) polygon(pts []geom.Point, st scene.Style) {
	trace := func() {
		for i, g := range pts {
			x, y := r.pt(g)
			if i == 0 {
				r.dc.MoveTo(x, y)
			} else {
				r.dc.LineTo(x, y)
			}
		}
		r.dc.ClosePath()
	}
	trace()
	r.fill(st)
	trace()
	r.stroke(st)
}

func (r *raster) line(l pageLine, st scene.Style) {
	r.dc.MoveTo(l.x1*r.k, l.y1*r.k)
	r.dc.LineTo(l.x2*r.k, l.y2*r.k)
	r.stroke(st)
}

// fill paints and clears the current path.
func (r *raster) fill(st scene.Style) {
	c := rgba(st.Fill, st.Opacity())
	if c.A == 0 {
		r.dc.ClearPath()
		return
	}
	r.dc.SetColor(c)
	r.dc.Fill()
}

// stroke outlines and clears the current path.
func (r *raster) stroke(st scene.Style) {
	c := rgba(st.Stroke, 1)
	if c.A == 0 {
		r.dc.ClearPath()
		return
	}
	w := st.Width
	if w <= 0 {
		w = 1
	}
	r.dc.SetColor(c)
	r.dc.SetLineWidth(w * r.k)
	dash := dashPattern(st.Dash, w)
	for i := range dash {
		dash[i] *= r.k
	}
	r.dc.SetDash(dash...)
	r.dc.Stroke()
	r.dc.SetDash()
}

func (r *raster) face(bold bool, size float64) (font.Face, error) {
	key := faceKey{bold, size}
	if f, ok := r.faces[key]; ok {
		return f, nil
	}
	idx := 0
	if bold {
		idx = 1
	}
	f, err := opentype.NewFace(r.fonts[idx], &opentype.FaceOptions{
		Size:    size * r.k,
		DPI:     pointsPerInch,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("font face: %w", err)
	}
	r.faces[key] = f
	return f, nil
}

func (r *raster) text(t scene.Text) error {
	t = withDefaultSize(t)
	face, err := r.face(t.Bold, t.Size)
	if err != nil {
		return err
	}
	c := rgba(t.Color, 1)
	if c.A == 0 {
		c = color.NRGBA{A: 255}
	}
	lines, base := textLines(t)
	x, y := r.pt(t.At)

	r.dc.Push()
	defer r.dc.Pop()
	r.dc.SetFontFace(face)
	r.dc.SetColor(c)
	r.dc.Translate(x, y)
	r.dc.Rotate(-gg.Radians(t.Rotation))
	for i, line := range lines {
		lw, _ := r.dc.MeasureString(line)
		by := (base + float64(i)*t.Size*lineSpacing) * r.k
		r.dc.DrawString(line, alignOffset(t.HAlign, lw), by)
	}
	return nil
}

func (r *raster) pageText(t pageText) error {
	face, err := r.face(t.bold, t.size)
	if err != nil {
		return err
	}
	r.dc.Push()
	defer r.dc.Pop()
	r.dc.SetFontFace(face)
	r.dc.SetColor(color.Black)
	r.dc.Translate(t.x*r.k, t.y*r.k)
	r.dc.Rotate(-gg.Radians(t.rotation))
	lw, _ := r.dc.MeasureString(t.text)
	r.dc.DrawString(t.text, alignOffset(t.anchor, lw), 0)
	return nil
}

// alignOffset is the x of a line's start given its width and anchor.
func alignOffset(a scene.HAlign, width float64) float64 {
	switch a {
	case scene.AlignLeft:
		return 0
	case scene.AlignRight:
		return -width
	default:
		return -width / 2
	}
}

// rgba resolves a color and multiplies its alpha by opacity. Unparseable
// colors are transparent; validation rejects them before rendering.
func rgba(c string, opacity float64) color.NRGBA {
	v, err := scene.ParseColor(c)
	if err != nil {
		return color.NRGBA{}
	}
	return color.NRGBA{R: v.R, G: v.G, B: v.B, A: uint8(math.Round(float64(v.A) * opacity))}
}
