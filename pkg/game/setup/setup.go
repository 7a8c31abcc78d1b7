// Package setup assembles a level: every room is carved and materialized, then
// the player is placed in the start room.
package setup

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"roomcrawl/pkg/engine/logging"
	"roomcrawl/pkg/engine/telemetry"
	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/maze"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

// ErrRoomAttemptsExhausted is returned when a room failed every generation attempt
var ErrRoomAttemptsExhausted = errors.New("setup: room generation attempts exhausted")

// ErrLevelDisconnected is returned when some room cannot be reached from the start room
var ErrLevelDisconnected = errors.New("setup: level not connected")

// Assembler builds levels into a game state
type Assembler struct {
	rng             maze.RandomSource
	gen             *room.Generator
	maxRoomAttempts int
	log             *logrus.Entry
	tracer          trace.Tracer

	retries int
}

// NewAssembler creates an assembler drawing all randomness from rng.
// maxRoomAttempts below 1 is treated as 1 (no retry).
func NewAssembler(rng maze.RandomSource, maxRoomAttempts int, log logrus.FieldLogger) *Assembler {
	if maxRoomAttempts < 1 {
		maxRoomAttempts = 1
	}
	return &Assembler{
		rng:             rng,
		gen:             room.NewGenerator(rng),
		maxRoomAttempts: maxRoomAttempts,
		log:             logging.Component(log, "setup"),
		tracer:          telemetry.Tracer("setup"),
	}
}

// SetWalkLimit caps each carver walk, zero restores the default
func (a *Assembler) SetWalkLimit(limit int) {
	a.gen.SetWalkLimit(limit)
}

// Retries returns how many room regenerations the last build needed
func (a *Assembler) Retries() int {
	return a.retries
}

// Build resets g and fills it with a new level. On error g holds no player
// and must not be played.
func (a *Assembler) Build(ctx context.Context, g *state.Game) error {
	ctx, span := a.tracer.Start(ctx, "level.build")
	defer span.End()

	g.Reset()
	g.BuildID = uuid.NewString()
	a.retries = 0
	log := a.log.WithField("build", g.BuildID)

	lvl := level.New()
	startRoom := world.Coord{X: a.rng.Intn(lvl.Width()), Y: a.rng.Intn(lvl.Height())}
	span.SetAttributes(
		attribute.String("build.id", g.BuildID),
		attribute.Int64("seed", g.Seed),
		attribute.String("start.room", startRoom.String()),
		attribute.Int("max_room_attempts", a.maxRoomAttempts),
	)
	log.WithField("start", startRoom.String()).Info("Initializing level")

	var start world.Coord
	for x := 0; x < lvl.Width(); x++ {
		for y := 0; y < lvl.Height(); y++ {
			c := world.Coord{X: x, Y: y}
			isStart := c == startRoom

			pop, err := a.populateRoom(ctx, lvl, c, isStart, log)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, "room generation failed")
				return fmt.Errorf("build %s: %w", g.BuildID, err)
			}
			if isStart {
				if !pop.HasStart {
					err := fmt.Errorf("build %s: start room %v has no walkable tile", g.BuildID, c)
					span.SetStatus(codes.Error, err.Error())
					return err
				}
				start = pop.Start
			}
		}
	}

	if reached := ReachableRooms(lvl, startRoom).Size(); reached != lvl.RoomCount() {
		err := fmt.Errorf("build %s: %w: %d of %d rooms reachable", g.BuildID, ErrLevelDisconnected, reached, lvl.RoomCount())
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	g.Level = lvl
	roomIndex := lvl.Index(startRoom)
	idx, err := g.AddGlobalEntity(state.GlobalEntity{
		RoomIndex: roomIndex,
		Entity: room.Entity{
			PositionPx: start.Scale(room.TileSizePx),
			Bitmap:     room.BitmapPlayer,
		},
	})
	if err != nil {
		return fmt.Errorf("build %s: placing player: %w", g.BuildID, err)
	}
	g.PlayerIndex = idx
	g.SetPlayerRoom(roomIndex)
	if err := g.SetCurrentRoom(roomIndex); err != nil {
		return fmt.Errorf("build %s: %w", g.BuildID, err)
	}

	span.SetAttributes(attribute.Int("room.retries", a.retries))
	log.WithFields(logrus.Fields{
		"start":   startRoom.String(),
		"tile":    start.String(),
		"retries": a.retries,
	}).Info("Level ready")
	return nil
}

// populateRoom generates one room, retrying disconnected layouts with fresh
// randomness up to the attempt limit
func (a *Assembler) populateRoom(ctx context.Context, lvl *level.Level, c world.Coord, isStart bool, log *logrus.Entry) (room.Populated, error) {
	r := lvl.RoomAt(c)
	doors := lvl.DoorsFor(c)
	span := trace.SpanFromContext(ctx)
	log = log.WithField("room", c.String())

	var lastErr error
	for attempt := 1; attempt <= a.maxRoomAttempts; attempt++ {
		log.WithField("attempt", attempt).Debug("Populating room")

		pop, err := a.gen.Populate(r, doors, isStart)
		if err == nil {
			return pop, nil
		}
		if !errors.Is(err, maze.ErrDisconnected) {
			// internal carver or materializer fault, retrying will not help
			return pop, err
		}

		lastErr = err
		a.retries++
		span.AddEvent("room.retry", trace.WithAttributes(
			attribute.String("room", c.String()),
			attribute.Int("attempt", attempt),
			attribute.String("error", err.Error()),
		))
		log.WithError(err).WithField("attempt", attempt).Warn("Room generation failed")
	}

	return room.Populated{}, fmt.Errorf("room %v after %d attempts: %w: %w", c, a.maxRoomAttempts, ErrRoomAttemptsExhausted, lastErr)
}
