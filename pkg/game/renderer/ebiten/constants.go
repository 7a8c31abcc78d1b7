// Package ebiten provides an Ebiten-based 2D graphical host for roomcrawl.
package ebiten

import (
	"image/color"

	"golang.org/x/image/colornames"

	"roomcrawl/pkg/game/room"
)

// Screen and window dimensions
const (
	ScreenWidth  = 400
	ScreenHeight = 240
	windowScale  = 2

	// TPS is the fixed update rate
	TPS = 50
)

// crankDegreesPerNotch is how far one mouse wheel notch turns the crank
const crankDegreesPerNotch = 15.0

// Color palette for synthesized bitmaps
var (
	colorBackground = colornames.Black

	bitmapColors = [room.BitmapCount]color.RGBA{
		room.BitmapFloor00: colornames.Dimgray,
		room.BitmapFloor01: colornames.Slategray,
		room.BitmapFloor02: colornames.Gray,
		room.BitmapFloor03: colornames.Lightslategray,
		room.BitmapWall:    colornames.Darkslategray,
		room.BitmapTable:   colornames.Saddlebrown,
		room.BitmapCrate:   colornames.Peru,
		room.BitmapPlayer:  colornames.Limegreen,
		room.BitmapDoorH:   colornames.Gold,
		room.BitmapDoorV:   colornames.Goldenrod,
	}
)
