package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"roomcrawl/pkg/engine/input"
	"roomcrawl/pkg/game/gameplay"
	"roomcrawl/pkg/game/room"
)

// EbitenRenderer hosts a session in an ebiten window
type EbitenRenderer struct {
	session *gameplay.Session
	tracker input.Tracker
	bitmaps [room.BitmapCount]*ebiten.Image
	canvas  screenCanvas
	log     *logrus.Entry

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}

// screenCanvas draws onto the ebiten screen image of the current frame
type screenCanvas struct {
	screen  *ebiten.Image
	bitmaps *[room.BitmapCount]*ebiten.Image
}
