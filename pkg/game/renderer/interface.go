// Package renderer draws the room the player is in, and its neighbours, onto
// a backend supplied canvas.
package renderer

import (
	"roomcrawl/pkg/game/room"
)

// Canvas defines the drawing surface a backend provides.
// Implementations include the ebiten window and the terminal dump.
type Canvas interface {
	// Clear blanks the surface before a frame
	Clear()

	// DrawBitmap draws bitmap b with its top-left corner at x, y
	DrawBitmap(b room.Bitmap, x, y int)

	// DrawText draws a line of text with its top-left corner at x, y
	DrawText(text string, x, y int)

	// Size returns the surface dimensions in pixels
	Size() (width, height int)
}

// Room label position
const (
	LabelX = 0
	LabelY = 48
)
