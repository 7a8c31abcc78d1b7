package ebiten

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	engineinput "roomcrawl/pkg/engine/input"
	"roomcrawl/pkg/engine/logging"
	"roomcrawl/pkg/game/devtools"
	"roomcrawl/pkg/game/gameplay"
	"roomcrawl/pkg/game/renderer"
)

// New creates an ebiten host for s, loading bitmaps from assetDir (empty
// synthesizes them)
func New(s *gameplay.Session, assetDir string, log logrus.FieldLogger) (*EbitenRenderer, error) {
	bitmaps, err := loadBitmaps(assetDir)
	if err != nil {
		return nil, err
	}
	e := &EbitenRenderer{
		session: s,
		bitmaps: bitmaps,
		log:     logging.Component(log, "ebiten"),
	}
	e.canvas.bitmaps = &e.bitmaps
	return e, nil
}

// Init builds the session's level with a centred cursor as neutral tilt
func (e *EbitenRenderer) Init(ctx context.Context) error {
	return e.session.Init(ctx, engineinput.Vec3{})
}

// Update handles input and advances the session one frame (Ebiten interface)
func (e *EbitenRenderer) Update() error {
	// Log window opening on first update (confirms window is actually running)
	if !e.windowOpenedLogged {
		e.windowOpenedLogged = true
		w, h := ebiten.WindowSize()
		e.log.Infof("Main window opened (%dx%d)", w, h)
	}

	// F12 saves an HTML snapshot of the current room
	if inpututil.IsKeyJustPressed(ebiten.KeyF12) {
		if name, err := devtools.SaveScreenshotHTML(e.session.Game, ""); err != nil {
			e.log.WithError(err).Warn("Screenshot failed")
		} else {
			e.log.WithField("file", name).Info("Screenshot saved")
		}
	}

	var held [8]engineinput.RawInput
	buttons := engineinput.Collect(pollHeld(held[:0]))
	snap := e.tracker.Next(buttons, e.tracker.Turn(crankTurn()), tilt())

	res := e.session.Update(snap, 1.0/float64(ebiten.TPS()))
	if res.Kind == gameplay.MoveChangedRoom {
		e.log.WithField("room", e.session.Game.CurrentRoom.Coord.String()).Debug("Room transition")
	}
	return nil
}

// Draw renders the session's current frame (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	e.canvas.screen = screen
	renderer.DrawFrame(&e.canvas, e.session.Game, e.session.Camera.DrawOffset())
	e.canvas.DrawText(fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), 0, 0)
	if msgs := e.session.Game.Messages; len(msgs) > 0 {
		e.canvas.DrawText(msgs[len(msgs)-1], 0, ScreenHeight-16)
	}
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed
func (e *EbitenRenderer) Run() error {
	ebiten.SetTPS(TPS)
	ebiten.SetWindowSize(ScreenWidth*windowScale, ScreenHeight*windowScale)
	ebiten.SetWindowTitle("roomcrawl")
	if err := ebiten.RunGame(e); err != nil {
		return fmt.Errorf("ebiten: %w", err)
	}
	return nil
}
