package office

import (
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/geom"
)

// sillBelowCeiling is the default gap between the window head and the ceiling.
const sillBelowCeiling = 24

// Context holds every coordinate derived from a DimensionSet. Plan coordinates
// put the origin at the left end of the new wall's outer face with y pointing
// into the office; elevation z is height above finished floor.
type Context struct {
	// PocketOpening is the clear door opening in the new wall.
	PocketOpening geom.Span `json:"pocket_opening"`
	// PocketPanel is where the door slab sits when fully open.
	PocketPanel geom.Span `json:"pocket_panel"`
	// DoorY is the plan y of the door line (wall centerline).
	DoorY float64 `json:"door_y"`

	WindowX    float64 `json:"window_x"`
	WindowSill float64 `json:"window_sill"`

	DeskX      float64 `json:"desk_x"`
	DeskY      float64 `json:"desk_y"`
	BookshelfX float64 `json:"bookshelf_x"`
	BookshelfY float64 `json:"bookshelf_y"`

	PlatformX     float64 `json:"platform_x"`
	PlatformStudX float64 `json:"platform_stud_x"`
	// PlatformZ is the underside of the platform framing.
	PlatformZ float64 `json:"platform_z"`

	HVACX float64 `json:"hvac_x"`
	HVACY float64 `json:"hvac_y"`
	// HVACFaceZ is the bottom of the grille drawn on the elevation.
	HVACFaceZ float64 `json:"hvac_face_z"`
}

// Derive validates ds and computes its layout context. It fails with
// INVALID_GEOMETRY when any derived placement leaves the room or collides.
func Derive(ds DimensionSet) (Context, error) {
	if err := Validate(ds); err != nil {
		return Context{}, err
	}

	W, D, H := ds.Room.Width, ds.Room.Depth, ds.Room.Height
	cw, off := ds.PocketDoor.ClearWidth, ds.PocketDoor.OffsetFromRight

	opening := geom.Span{Left: W - cw - off, Right: W - off}
	panelLeft := opening.Left - cw - off
	panel := geom.Span{Left: panelLeft, Right: panelLeft + cw}

	ctx := Context{
		PocketOpening: opening,
		PocketPanel:   panel,
		DoorY:         ds.Wall.Thickness / 2,
		WindowX:       (W - ds.Window.Width) / 2,
		WindowSill:    H - sillBelowCeiling - ds.Window.Height,
		DeskX:         0,
		DeskY:         ds.Wall.Thickness,
		BookshelfX:    W - ds.Bookshelf.Width,
		BookshelfY:    D - ds.Bookshelf.Depth,
		PlatformX:     0,
		HVACX:         panel.Left - ds.HVAC.Width - ds.Stud.Depth,
		HVACY:         0,
		PlatformZ:     ds.Platform.HeightAFF + ds.Stud.Width,
		HVACFaceZ:     ds.Desk.Height - ds.HVAC.Height - ds.HVAC.Height/2,
	}
	ctx.PlatformStudX = ctx.PlatformX + ds.Platform.Width - 2*ds.Stud.Depth
	if ds.Window.SillAFF != nil {
		ctx.WindowSill = *ds.Window.SillAFF
	}

	if err := checkPlacement(ds, ctx); err != nil {
		return Context{}, err
	}
	return ctx, nil
}

func checkPlacement(ds DimensionSet, ctx Context) error {
	W, D, H := ds.Room.Width, ds.Room.Depth, ds.Room.Height
	gf := func(field, format string, args ...any) error {
		return errors.NewField(errors.ErrCodeInvalidGeometry, field, format, args...)
	}

	// Pocket door: the panel pocket must fit left of the opening.
	if 2*ds.PocketDoor.ClearWidth+2*ds.PocketDoor.OffsetFromRight > W {
		return gf("pocket_door.clear_width",
			"opening and pocket need %g but the room is %g wide",
			2*ds.PocketDoor.ClearWidth+2*ds.PocketDoor.OffsetFromRight, W)
	}
	if ctx.PocketOpening.Overlaps(ctx.PocketPanel) {
		return gf("pocket_door", "panel %v overlaps opening %v", ctx.PocketPanel, ctx.PocketOpening)
	}
	if ds.PocketDoor.ClearHeight > H {
		return gf("pocket_door.clear_height", "door is taller than the room (%g > %g)", ds.PocketDoor.ClearHeight, H)
	}
	if ds.EyeHeight > H {
		return gf("eye_height", "eye line at %g is above the ceiling (%g)", ds.EyeHeight, H)
	}
	if ds.Wall.Thickness >= D {
		return gf("wall.thickness", "wall fills the room depth (%g >= %g)", ds.Wall.Thickness, D)
	}

	// Window.
	if err := errors.RequireSpan("window.width", ctx.WindowX, ctx.WindowX+ds.Window.Width, 0, W); err != nil {
		return err
	}
	if ctx.WindowSill < 0 {
		return gf("window.height", "default sill is %g; window is too tall for the room", ctx.WindowSill)
	}
	if ctx.WindowSill+ds.Window.Height > H {
		return gf("window.sill_aff", "window head at %g is above the ceiling (%g)", ctx.WindowSill+ds.Window.Height, H)
	}

	// Furniture.
	if err := errors.RequireSpan("desk.width", ctx.DeskX, ctx.DeskX+ds.Desk.Width, 0, W); err != nil {
		return err
	}
	if err := errors.RequireSpan("desk.depth", ctx.DeskY, ctx.DeskY+ds.Desk.Depth, 0, D); err != nil {
		return err
	}
	if ds.Desk.Height > H {
		return gf("desk.height", "desk is taller than the room (%g > %g)", ds.Desk.Height, H)
	}
	if err := errors.RequireSpan("bookshelf.width", ctx.BookshelfX, ctx.BookshelfX+ds.Bookshelf.Width, 0, W); err != nil {
		return err
	}
	if err := errors.RequireSpan("bookshelf.depth", ctx.BookshelfY, ctx.BookshelfY+ds.Bookshelf.Depth, 0, D); err != nil {
		return err
	}
	if ds.Bookshelf.Height > H {
		return gf("bookshelf.height", "bookshelf is taller than the room (%g > %g)", ds.Bookshelf.Height, H)
	}

	// Platform.
	if ds.Platform.Width <= 2*ds.Stud.Depth {
		return gf("platform.width", "platform must be wider than two studs (%g <= %g)", ds.Platform.Width, 2*ds.Stud.Depth)
	}
	if err := errors.RequireSpan("platform.width", ctx.PlatformX, ctx.PlatformX+ds.Platform.Width, 0, W); err != nil {
		return err
	}
	if ds.Platform.Depth > D {
		return gf("platform.depth", "platform is deeper than the room (%g > %g)", ds.Platform.Depth, D)
	}
	if ctx.PlatformZ <= ds.Desk.Height {
		return gf("platform.height_aff", "platform framing at %g does not clear the desk (%g)", ctx.PlatformZ, ds.Desk.Height)
	}
	if ctx.PlatformZ+ds.Stud.Width > H {
		return gf("platform.height_aff", "platform top at %g is above the ceiling (%g)", ctx.PlatformZ+ds.Stud.Width, H)
	}

	// HVAC sits left of the pocket, below the desk.
	if ctx.HVACX < 0 {
		return gf("hvac.width", "unit at x=%g runs past the left wall", ctx.HVACX)
	}
	if ctx.HVACFaceZ < 0 {
		return gf("hvac.height", "grille at z=%g is below the floor", ctx.HVACFaceZ)
	}
	return nil
}
