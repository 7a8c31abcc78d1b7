package devtools

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/level"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

func makeGame(t *testing.T) *state.Game {
	t.Helper()
	g := state.NewGame()
	g.Seed = 7
	g.BuildID = "test-build"
	g.Level = level.New()

	c := world.Coord{X: 2, Y: 3}
	r := g.Level.RoomAt(c)
	r.SetTile(1, 1, room.Tile{Bitmap: room.BitmapFloor02, Flags: room.FlagWalkable})
	r.SetTile(2, 1, room.Tile{Bitmap: room.BitmapFloor02, Flags: room.FlagWalkable})
	r.SetTile(0, 8, room.Tile{Bitmap: room.BitmapDoorH, Flags: room.FlagWalkable | room.FlagDoorHorizontal})

	idx := g.Level.Index(c)
	pi, err := g.AddGlobalEntity(state.GlobalEntity{
		RoomIndex: idx,
		Entity:    room.Entity{PositionPx: world.Coord{X: 40, Y: 40}, Bitmap: room.BitmapPlayer},
	})
	if err != nil {
		t.Fatal(err)
	}
	g.PlayerIndex = pi
	if err := g.SetCurrentRoom(idx); err != nil {
		t.Fatal(err)
	}
	return g
}

func TestWriteLevel(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteLevel(&buf, makeGame(t)); err != nil {
		t.Fatalf("WriteLevel() error = %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Level map (seed 7)",
		"build: test-build",
		"Player at pixel [40,40] in room [2,3]",
		"2 = floor (path 2)",
		"- = horizontal door",
		"# = wall",
		"@ = player",
		"--- Room [2,3] ---\n################\n#@2#############\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("dump missing %q", want)
		}
	}
	if strings.Contains(out, "table") {
		t.Error("legend lists a bitmap that is not in the level")
	}
	if got := strings.Count(out, "--- Room ["); got != level.RoomCount {
		t.Errorf("%d room sections, want %d", got, level.RoomCount)
	}
}

func TestDumpLevel_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), MapDumpFilename)
	written, err := DumpLevel(makeGame(t), path)
	if err != nil {
		t.Fatalf("DumpLevel() error = %v", err)
	}
	data, err := os.ReadFile(written)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("Level map")) {
		t.Errorf("dump starts with %q", data[:20])
	}
}

func TestDumpLevel_NoLevel(t *testing.T) {
	if _, err := DumpLevel(state.NewGame(), filepath.Join(t.TempDir(), "x.txt")); err == nil {
		t.Error("DumpLevel without a level should fail")
	}
}

func TestRenderScreenshotHTML(t *testing.T) {
	g := makeGame(t)
	g.AddMessage("<hi>")
	page, err := RenderScreenshotHTML(g)
	if err != nil {
		t.Fatalf("RenderScreenshotHTML() error = %v", err)
	}
	if !strings.Contains(page, `<span class="player">@</span>`) {
		t.Error("player not rendered")
	}
	if !strings.Contains(page, "Room [2,3]") || !strings.Contains(page, "&lt;hi&gt;") {
		t.Error("header or escaped message missing")
	}
	if _, err := RenderScreenshotHTML(state.NewGame()); err == nil {
		t.Error("a game without a room should fail")
	}
}

func TestSaveScreenshotHTML(t *testing.T) {
	name, err := SaveScreenshotHTML(makeGame(t), t.TempDir())
	if err != nil {
		t.Fatalf("SaveScreenshotHTML() error = %v", err)
	}
	if !strings.HasSuffix(name, ".html") {
		t.Errorf("file name %q", name)
	}
}
