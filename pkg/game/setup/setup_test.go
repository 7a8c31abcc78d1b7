package setup

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"roomcrawl/pkg/engine/logging"
	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/maze"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

func buildSeed(t *testing.T, seed int64) (*state.Game, *Assembler) {
	t.Helper()
	g := state.NewGame()
	g.Seed = seed
	a := NewAssembler(rand.New(rand.NewSource(seed)), 8, logging.Discard())
	if err := a.Build(context.Background(), g); err != nil {
		t.Fatalf("Build(seed %d) error = %v", seed, err)
	}
	return g, a
}

func TestBuild_PlacesOnePlayer(t *testing.T) {
	for _, seed := range []int64{1, 2, 77} {
		g, _ := buildSeed(t, seed)

		if g.GlobalEntityCount() != 1 {
			t.Errorf("seed %d: %d global entities, want 1", seed, g.GlobalEntityCount())
		}
		p := g.Player()
		if p == nil {
			t.Fatalf("seed %d: no player", seed)
		}
		if p.Bitmap != room.BitmapPlayer {
			t.Errorf("seed %d: player bitmap = %v", seed, p.Bitmap)
		}
		if p.RoomIndex != g.CurrentRoomIndex {
			t.Errorf("seed %d: player room %d, current room %d", seed, p.RoomIndex, g.CurrentRoomIndex)
		}
		if p.PositionPx.X%room.TileSizePx != 0 || p.PositionPx.Y%room.TileSizePx != 0 {
			t.Errorf("seed %d: player pixel %v not tile aligned", seed, p.PositionPx)
		}
		tx, ty := p.PositionPx.X/room.TileSizePx, p.PositionPx.Y/room.TileSizePx
		if !g.CurrentRoom.TileFlags(tx, ty).Has(room.FlagWalkable) {
			t.Errorf("seed %d: player tile [%d,%d] not walkable", seed, tx, ty)
		}
		if g.BuildID == "" {
			t.Errorf("seed %d: empty build id", seed)
		}
	}
}

func TestBuild_AllRoomsConnected(t *testing.T) {
	g, _ := buildSeed(t, 5)
	g.Level.ForEachRoom(func(c world.Coord, r *room.Room) {
		if !DoorsConnected(r, g.Level.DoorsFor(c)) {
			t.Errorf("room %v: doors not mutually reachable", c)
		}
	})
	if got := ReachableRooms(g.Level, g.CurrentRoom.Coord).Size(); got != level.RoomCount {
		t.Errorf("%d rooms reachable from start, want %d", got, level.RoomCount)
	}
}

func TestBuild_SameSeedSameLevel(t *testing.T) {
	g1, _ := buildSeed(t, 42)
	g2, _ := buildSeed(t, 42)

	if g1.CurrentRoomIndex != g2.CurrentRoomIndex || g1.Player().PositionPx != g2.Player().PositionPx {
		t.Fatalf("start differs: room %d %v vs room %d %v",
			g1.CurrentRoomIndex, g1.Player().PositionPx, g2.CurrentRoomIndex, g2.Player().PositionPx)
	}
	for i := 0; i < level.RoomCount; i++ {
		r1, r2 := g1.Level.Room(i), g2.Level.Room(i)
		r1.ForEachTile(func(x, y int, tile room.Tile) {
			if other, _ := r2.Tile(x, y); other != tile {
				t.Fatalf("room %d tile [%d,%d]: %+v vs %+v", i, x, y, tile, other)
			}
		})
	}
	if g1.BuildID == g2.BuildID {
		t.Error("each build should get its own id")
	}
}

func TestBuild_AttemptsExhausted(t *testing.T) {
	g := state.NewGame()
	a := NewAssembler(rand.New(rand.NewSource(1)), 2, logging.Discard())
	a.SetWalkLimit(1)

	err := a.Build(context.Background(), g)
	if !errors.Is(err, ErrRoomAttemptsExhausted) || !errors.Is(err, maze.ErrDisconnected) {
		t.Fatalf("Build() error = %v, want ErrRoomAttemptsExhausted wrapping ErrDisconnected", err)
	}
	if a.Retries() != 2 {
		t.Errorf("Retries() = %d, want 2 (the first room failing twice)", a.Retries())
	}
	if g.Player() != nil || g.Level != nil {
		t.Error("a failed build must leave no level or player")
	}
}

func TestBuild_NoRetryWithOneAttempt(t *testing.T) {
	a := NewAssembler(rand.New(rand.NewSource(1)), 0, logging.Discard())
	a.SetWalkLimit(1)
	if err := a.Build(context.Background(), state.NewGame()); !errors.Is(err, ErrRoomAttemptsExhausted) {
		t.Fatalf("Build() error = %v, want ErrRoomAttemptsExhausted", err)
	}
	if a.Retries() != 1 {
		t.Errorf("Retries() = %d, want 1", a.Retries())
	}
}

func TestBuild_RecordsSpan(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	otel.SetTracerProvider(sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr)))

	g, _ := buildSeed(t, 11)

	var build sdktrace.ReadOnlySpan
	for _, s := range sr.Ended() {
		if s.Name() == "level.build" {
			build = s
		}
	}
	if build == nil {
		t.Fatal("no level.build span recorded")
	}
	var id string
	for _, kv := range build.Attributes() {
		if kv.Key == "build.id" {
			id = kv.Value.AsString()
		}
	}
	if id != g.BuildID {
		t.Errorf("span build.id = %q, want %q", id, g.BuildID)
	}
}
