package office

import (
	"github.com/matzehuels/planview/pkg/geom"
	"github.com/matzehuels/planview/pkg/scene"
)

// deskSlab is the drawn thickness of the desk top.
const deskSlab = 1.2

// ElevationScene draws the desk wall as seen from inside the office.
func ElevationScene(ds DimensionSet) (scene.Scene, error) {
	ctx, err := Derive(ds)
	if err != nil {
		return scene.Scene{}, err
	}
	W, H := ds.Room.Width, ds.Room.Height
	pd := ds.PocketDoor
	slab := scene.Style{Stroke: colorInk, Fill: colorSlab, Width: 1}
	b := scene.NewBuilder("Front Elevation (Desk Wall)").
		Hints(scene.Hints{UnitsPerInch: UnitsPerInch, EqualAspect: true})

	b.Add(rect(0, 0, W, H, outline))

	above := func(t scene.Text) scene.Text {
		t.VAlign = scene.VAlignBottom
		return t
	}

	b.Add(
		rect(ctx.PocketOpening.Left, 0, pd.ClearWidth, pd.ClearHeight, scene.Style{Stroke: colorOpening, Width: 1}),
		rect(ctx.PocketPanel.Left, 0, pd.ClearWidth, pd.ClearHeight, scene.Style{Stroke: colorOpening, Width: 1, Dash: scene.DashDotted}),
		above(label(geom.Pt(ctx.PocketOpening.Center(), pd.ClearHeight+2), labelSize,
			"Pocket Door %s", by(pd.ClearWidth, pd.ClearHeight))),
	)

	deskStyle := slab
	deskStyle.Stroke = colorFurniture
	b.Add(
		rect(ctx.DeskX, ds.Desk.Height, ds.Desk.Width, deskSlab, deskStyle),
		above(label(geom.Pt(ctx.DeskX+ds.Desk.Width/2, ds.Desk.Height+3), labelSize, "Desk height %s", in(ds.Desk.Height))),
	)

	grille := rect(ctx.HVACX, ctx.HVACFaceZ, ds.HVAC.Width, ds.HVAC.Height, hvacLine)
	b.Add(grille, label(grille.Center(), labelSize, "HVAC grille"))

	b.Add(
		rect(ctx.PlatformX, ctx.PlatformZ, ds.Platform.Width, ds.Stud.Width, slab),
		above(label(geom.Pt(ctx.PlatformX+ds.Platform.Width/2, ctx.PlatformZ+ds.Stud.Width*1.5), labelSize,
			"Overhead platform\n%s @ >%s AFF", by(ds.Platform.Width, ds.Platform.Depth), in(ds.Platform.HeightAFF))),
	)

	eyeLabel := above(label(geom.Pt(W-5, ds.EyeHeight), labelSize, "%s eye line", in(ds.EyeHeight)))
	eyeLabel.HAlign = scene.AlignRight
	b.Add(
		scene.Line{From: geom.Pt(0, ds.EyeHeight), To: geom.Pt(W, ds.EyeHeight),
			Style: scene.Style{Stroke: colorInk, Width: 1.5, Dash: scene.DashDashed}},
		eyeLabel,
	)

	b.Add(
		rect(ctx.WindowX, ctx.WindowSill, ds.Window.Width, ds.Window.Height, scene.Style{Stroke: colorOpening, Width: 1}),
		above(label(geom.Pt(ctx.WindowX+ds.Window.Width/2, ctx.WindowSill+ds.Window.Height+2), labelSize,
			"Faux Window %s", by(ds.Window.Width, ds.Window.Height))),
	)

	b.Add(
		rect(ctx.BookshelfX, 0, ds.Bookshelf.Width, ds.Bookshelf.Height, furniture),
		label(geom.Pt(ctx.BookshelfX+ds.Bookshelf.Width/2, ds.Bookshelf.Height/2), smallLabelSize,
			"Bookshelf %s", by(ds.Bookshelf.Width, ds.Bookshelf.Height)),
	)

	return b.Build(Margin)
}
