package office

import (
	"github.com/matzehuels/planview/pkg/errors"
	"github.com/matzehuels/planview/pkg/mapping"
)

// Stud is the nominal lumber section used for framing.
type Stud struct {
	Depth float64 `json:"depth"`
	Width float64 `json:"width"`
}

// Room is the interior clear volume.
type Room struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// Wall describes the new partition wall on the desk side.
type Wall struct {
	Thickness float64 `json:"thickness"`
}

// PocketDoor describes the door in the new wall. OffsetFromRight is the reveal
// between the opening and the right-hand corner and may be zero.
type PocketDoor struct {
	ClearWidth      float64 `json:"clear_width"`
	ClearHeight     float64 `json:"clear_height"`
	OffsetFromRight float64 `json:"offset_from_right"`
}

// Window describes the window on the wall opposite the desk. A nil SillAFF
// places the sill 24 units below the ceiling minus the window height.
type Window struct {
	Width   float64  `json:"width"`
	Height  float64  `json:"height"`
	SillAFF *float64 `json:"sill_aff,omitempty"`
}

// Box is a piece of furniture with a footprint and a height.
type Box struct {
	Width  float64 `json:"width"`
	Depth  float64 `json:"depth"`
	Height float64 `json:"height"`
}

// HVAC describes a through-wall unit below the desk. ProjOffice and ProjGarage
// are how far it projects into the office and the garage respectively.
type HVAC struct {
	Width      float64 `json:"width"`
	Height     float64 `json:"height"`
	ProjOffice float64 `json:"proj_office"`
	ProjGarage float64 `json:"proj_garage"`
}

// Platform is the overhead storage platform above the desk.
type Platform struct {
	Width     float64 `json:"width"`
	Depth     float64 `json:"depth"`
	HeightAFF float64 `json:"height_aff"`
}

// DimensionSet is the complete set of inputs for one office layout. All values
// share one unit (inches). A DimensionSet is a plain value; derivation never
// mutates it.
type DimensionSet struct {
	Stud       Stud       `json:"stud"`
	EyeHeight  float64    `json:"eye_height"`
	Room       Room       `json:"room"`
	Wall       Wall       `json:"wall"`
	PocketDoor PocketDoor `json:"pocket_door"`
	Window     Window     `json:"window"`
	Desk       Box        `json:"desk"`
	HVAC       HVAC       `json:"hvac"`
	Bookshelf  Box        `json:"bookshelf"`
	Platform   Platform   `json:"platform"`
}

// Defaults returns the reference garage office.
func Defaults() DimensionSet {
	return DimensionSet{
		Stud:       Stud{Depth: 1.5, Width: 3.5},
		EyeHeight:  60,
		Room:       Room{Width: 108, Depth: 72, Height: 108},
		Wall:       Wall{Thickness: 4.25},
		PocketDoor: PocketDoor{ClearWidth: 30, ClearHeight: 80, OffsetFromRight: 1.5},
		Window:     Window{Width: 60, Height: 48},
		Desk:       Box{Width: 78, Depth: 30, Height: 30},
		HVAC:       HVAC{Width: 20, Height: 14, ProjOffice: 8, ProjGarage: 14},
		Bookshelf:  Box{Width: 36, Depth: 12, Height: 108},
		Platform:   Platform{Width: 24, Depth: 72, HeightAFF: 76},
	}
}

// field binds a dotted config path to a dimension.
type field struct {
	path string
	ptr  *float64
}

// required lists every mandatory dimension in config order.
func (ds *DimensionSet) required() []field {
	return []field{
		{"stud.depth", &ds.Stud.Depth},
		{"stud.width", &ds.Stud.Width},
		{"eye_height", &ds.EyeHeight},
		{"room.width", &ds.Room.Width},
		{"room.depth", &ds.Room.Depth},
		{"room.height", &ds.Room.Height},
		{"wall.thickness", &ds.Wall.Thickness},
		{"pocket_door.clear_width", &ds.PocketDoor.ClearWidth},
		{"pocket_door.clear_height", &ds.PocketDoor.ClearHeight},
		{"pocket_door.offset_from_right", &ds.PocketDoor.OffsetFromRight},
		{"window.width", &ds.Window.Width},
		{"window.height", &ds.Window.Height},
		{"desk.width", &ds.Desk.Width},
		{"desk.depth", &ds.Desk.Depth},
		{"desk.height", &ds.Desk.Height},
		{"hvac.width", &ds.HVAC.Width},
		{"hvac.height", &ds.HVAC.Height},
		{"hvac.proj_office", &ds.HVAC.ProjOffice},
		{"hvac.proj_garage", &ds.HVAC.ProjGarage},
		{"bookshelf.width", &ds.Bookshelf.Width},
		{"bookshelf.depth", &ds.Bookshelf.Depth},
		{"bookshelf.height", &ds.Bookshelf.Height},
		{"platform.width", &ds.Platform.Width},
		{"platform.depth", &ds.Platform.Depth},
		{"platform.height_aff", &ds.Platform.HeightAFF},
	}
}

// FromMapping reads a DimensionSet from a decoded config document. Every
// dimension except window.sill_aff is required.
func FromMapping(m map[string]any) (DimensionSet, error) {
	var ds DimensionSet
	for _, f := range ds.required() {
		v, err := mapping.Float(m, f.path)
		if err != nil {
			return DimensionSet{}, err
		}
		*f.ptr = v
	}
	sill, err := mapping.OptionalFloat(m, "window.sill_aff")
	if err != nil {
		return DimensionSet{}, err
	}
	ds.Window.SillAFF = sill
	return ds, nil
}

// Validate checks that every dimension is a finite positive number.
// pocket_door.offset_from_right and window.sill_aff may be zero.
// Placement rules are checked by Derive.
func Validate(ds DimensionSet) error {
	for _, f := range ds.required() {
		check := errors.RequirePositive
		if f.path == "pocket_door.offset_from_right" {
			check = errors.RequireNonNegative
		}
		if err := check(f.path, *f.ptr); err != nil {
			return err
		}
	}
	if ds.Window.SillAFF != nil {
		if err := errors.RequireNonNegative("window.sill_aff", *ds.Window.SillAFF); err != nil {
			return err
		}
	}
	return nil
}
