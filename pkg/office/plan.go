package office

import (
	"fmt"
	"strconv"

	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

// Drawing palette.
const (
	colorInk       = "#000000"
	colorOpening   = "#00bfbf"
	colorFurniture = "#bfbf00"
	colorHVAC      = "#bf00bf"
	colorSlab      = "#1f77b4"
)

const (
	// Margin is the viewport padding around both office views.
	Margin = 10
	// UnitsPerInch renders one foot of room per inch of paper.
	UnitsPerInch = 12

	labelSize      = 8
	smallLabelSize = 7
	dimOffset      = 8
	dimLabelOffset = 10
)

var (
	outline   = scene.Style{Stroke: colorInk, Width: 2}
	thin      = scene.Style{Stroke: colorInk, Width: 1}
	doorLine  = scene.Style{Stroke: colorOpening, Width: 6}
	furniture = scene.Style{Stroke: colorFurniture, Width: 1}
	hvacLine  = scene.Style{Stroke: colorHVAC, Width: 1}
)

// in formats a length with an inch mark, dropping trailing zeros.
func in(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64) + `"`
}

func by(a, b float64) string { return in(a) + "×" + in(b) }

func label(at geom.Point, size float64, format string, args ...any) scene.Text {
	return scene.Text{At: at, Content: fmt.Sprintf(format, args...), Size: size}
}

func rect(x, y, w, h float64, st scene.Style) scene.Rect {
	return scene.Rect{Min: geom.Pt(x, y), Size: geom.Size{W: w, H: h}, Style: st}
}

func dotted(st scene.Style) scene.Style {
	st.Dash = scene.DashDotted
	return st
}

// PlanScene draws the top-down plan of the office.
func PlanScene(ds DimensionSet) (scene.Scene, error) {
	ctx, err := Derive(ds)
	if err != nil {
		return scene.Scene{}, err
	}
	W, D := ds.Room.Width, ds.Room.Depth
	pd := ds.PocketDoor
	b := scene.NewBuilder("Top-Down Plan").
		Hints(scene.Hints{UnitsPerInch: UnitsPerInch, EqualAspect: true})

	b.Add(rect(0, 0, W, D, outline))

	// Pocket door: opening, then the pocket the panel slides into.
	b.Add(
		scene.Line{From: geom.Pt(ctx.PocketOpening.Left, ctx.DoorY), To: geom.Pt(ctx.PocketOpening.Right, ctx.DoorY), Style: doorLine},
		scene.Line{From: geom.Pt(ctx.PocketPanel.Left, ctx.DoorY), To: geom.Pt(ctx.PocketOpening.Left, ctx.DoorY), Style: dotted(doorLine)},
	)
	doorLabel := label(geom.Pt(ctx.PocketOpening.Center(), ds.Wall.Thickness), labelSize, "Pocket Door %s", in(pd.ClearWidth))
	doorLabel.VAlign = scene.VAlignBottom
	b.Add(doorLabel)

	b.Add(scene.Line{From: geom.Pt(ctx.WindowX, D), To: geom.Pt(ctx.WindowX+ds.Window.Width, D), Style: doorLine})
	winLabel := label(geom.Pt(ctx.WindowX+ds.Window.Width/2, D-3), labelSize, "Window %s", in(ds.Window.Width))
	winLabel.VAlign = scene.VAlignTop
	b.Add(winLabel)

	desk := rect(ctx.DeskX, ctx.DeskY, ds.Desk.Width, ds.Desk.Depth, furniture)
	b.Add(desk, label(desk.Center(), labelSize, "Desk %s", by(ds.Desk.Width, ds.Desk.Depth)))

	shelf := rect(ctx.BookshelfX, ctx.BookshelfY, ds.Bookshelf.Width, ds.Bookshelf.Depth, furniture)
	b.Add(shelf, label(shelf.Center(), smallLabelSize, "Bookshelf %s", by(ds.Bookshelf.Width, ds.Bookshelf.Depth)))

	b.Add(
		rect(ctx.PlatformStudX, 0, ds.Stud.Depth, ds.Platform.Depth, thin),
		label(geom.Pt(ctx.PlatformStudX/2, D*2/3), labelSize, "Overhead Platform\n%s", by(ds.Platform.Width, ds.Platform.Depth)),
	)

	outlet := rect(ctx.HVACX, ctx.HVACY, ds.HVAC.Width, ds.HVAC.ProjOffice, dotted(hvacLine))
	condenser := rect(ctx.HVACX, -ds.HVAC.ProjGarage, ds.HVAC.Width, ds.HVAC.ProjGarage, hvacLine)
	b.Add(
		outlet, label(outlet.Center(), smallLabelSize, "HVAC (outlet)"),
		condenser, label(condenser.Center(), smallLabelSize, "HVAC (condenser)"),
	)

	b.Add(
		rect(0, 0, W, ds.Wall.Thickness, thin),
		label(geom.Pt(ds.Platform.Width/2, ds.Wall.Thickness/2), smallLabelSize, "New Wall %s", in(ds.Wall.Thickness)),
	)

	widthLabel := label(geom.Pt(W/2, -dimLabelOffset), labelSize, "%s width", in(W))
	widthLabel.VAlign = scene.VAlignTop
	depthLabel := label(geom.Pt(-dimLabelOffset, D/2), labelSize, "%s depth", in(D))
	depthLabel.HAlign = scene.AlignRight
	depthLabel.Rotation = 90
	b.Add(
		scene.DimensionArrow{From: geom.Pt(0, -dimOffset), To: geom.Pt(W, -dimOffset), Style: thin},
		widthLabel,
		scene.DimensionArrow{From: geom.Pt(-dimOffset, 0), To: geom.Pt(-dimOffset, D), Style: thin},
		depthLabel,
	)

	return b.Build(Margin)
}
