package gameplay

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"roomcrawl/pkg/engine/input"
	"roomcrawl/pkg/engine/logging"
	"roomcrawl/pkg/game/i18n"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/setup"
	"roomcrawl/pkg/game/state"
)

// Session owns a running game: the state, the player's motion and the camera
type Session struct {
	Game   *state.Game
	Mover  Mover
	Camera Camera

	assembler *setup.Assembler
	log       *logrus.Entry
}

// NewSession creates a session seeded with seed. Seed 0 picks a time based seed.
func NewSession(seed int64, maxRoomAttempts int, log logrus.FieldLogger) *Session {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := state.NewGame()
	g.Seed = seed

	return &Session{
		Game:      g,
		assembler: setup.NewAssembler(rand.New(rand.NewSource(seed)), maxRoomAttempts, log),
		log:       logging.Component(log, "gameplay"),
	}
}

// Assembler exposes the level assembler, mostly for tuning in tests
func (s *Session) Assembler() *setup.Assembler {
	return s.assembler
}

// Init builds a fresh level and centres the camera on the player
func (s *Session) Init(ctx context.Context, accel input.Vec3) error {
	if err := s.assembler.Build(ctx, s.Game); err != nil {
		return err
	}
	s.Mover = Mover{}

	p := s.Game.Player()
	s.Camera.Reset(p.PositionPx, accel)

	c := s.Game.CurrentRoom.Coord
	s.Game.ClearMessages()
	s.Game.AddMessage(fmt.Sprintf(i18n.Get("LEVEL_READY"), level.RoomCount, c.X, c.Y))
	s.log.WithFields(logrus.Fields{
		"seed":  s.Game.Seed,
		"build": s.Game.BuildID,
	}).Debug("Session initialized")
	return nil
}

// Update advances one frame of dt seconds
func (s *Session) Update(snap input.Snapshot, dt float64) MoveResult {
	res := s.Mover.Step(s.Game, snap, dt)
	p := s.Game.Player()
	if p == nil {
		return res
	}

	switch res.Kind {
	case MoveChangedRoom:
		c := s.Game.CurrentRoom.Coord
		s.Camera.EnterRoom(res.Dir, p.PositionPx)
		s.Game.AddMessage(fmt.Sprintf(i18n.Get("ENTERED_ROOM"), c.X, c.Y))
		s.log.WithFields(logrus.Fields{
			"room": c.String(),
			"via":  res.Dir.String(),
		}).Info("Entered room")
	case MoveBounced:
		// one message per run of bounces
		bonk := i18n.Get("BUMPED_WALL")
		if n := len(s.Game.Messages); n == 0 || s.Game.Messages[n-1] != bonk {
			s.Game.AddMessage(bonk)
			s.log.WithField("dir", res.Dir.String()).Debug("Bumped wall")
		}
	}

	s.Camera.Update(snap, p.PositionPx, dt)
	return res
}
