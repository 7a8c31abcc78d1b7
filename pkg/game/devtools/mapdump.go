// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/zyedidia/generic/mapset"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/i18n"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

// MapDumpFilename is the default dump file name
const MapDumpFilename = "map.txt"

// symbols are the single-character tile symbols used in dumps
var symbols = [room.BitmapCount]rune{
	room.BitmapFloor00: '0',
	room.BitmapFloor01: '1',
	room.BitmapFloor02: '2',
	room.BitmapFloor03: '3',
	room.BitmapWall:    '#',
	room.BitmapTable:   'T',
	room.BitmapCrate:   'C',
	room.BitmapPlayer:  '@',
	room.BitmapDoorH:   '-',
	room.BitmapDoorV:   '|',
}

// Symbol returns the dump symbol for b
func Symbol(b room.Bitmap) rune {
	if b < 0 || b >= room.BitmapCount {
		return '?'
	}
	return symbols[b]
}

// legendText returns the catalogue description of b
func legendText(b room.Bitmap) string {
	switch b {
	case room.BitmapFloor00, room.BitmapFloor01, room.BitmapFloor02, room.BitmapFloor03:
		return fmt.Sprintf(i18n.Get("LEGEND_FLOOR"), int(b-room.BitmapFloor00))
	case room.BitmapWall:
		return i18n.Get("LEGEND_WALL")
	case room.BitmapTable:
		return i18n.Get("LEGEND_TABLE")
	case room.BitmapCrate:
		return i18n.Get("LEGEND_CRATE")
	case room.BitmapDoorH:
		return i18n.Get("LEGEND_DOOR_H")
	case room.BitmapDoorV:
		return i18n.Get("LEGEND_DOOR_V")
	case room.BitmapPlayer:
		return i18n.Get("LEGEND_PLAYER")
	}
	return b.String()
}

// DumpLevel writes the whole level to path (MapDumpFilename when empty) and
// returns the absolute path written
func DumpLevel(g *state.Game, path string) (string, error) {
	if g.Level == nil {
		return "", errors.New("devtools: no level")
	}
	if path == "" {
		path = MapDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := WriteLevel(f, g); err != nil {
		return "", err
	}
	return absPath, f.Close()
}

// WriteLevel writes the metadata, the legend of symbols in use and every
// room grid, the player overlaid in its room
func WriteLevel(w io.Writer, g *state.Game) error {
	if g.Level == nil {
		return errors.New("devtools: no level")
	}
	ew := &errWriter{w: w}
	lvl := g.Level

	player := g.Player()
	playerTile := world.Coord{X: -1, Y: -1}
	playerRoom := -1
	if player != nil {
		playerRoom = player.RoomIndex
		playerTile = world.Coord{X: player.PositionPx.X / room.TileSizePx, Y: player.PositionPx.Y / room.TileSizePx}
	}

	// --- Metadata ---
	ew.println(fmt.Sprintf(i18n.Get("MAP_TITLE"), g.Seed))
	ew.println("")
	ew.printf("build: %s\n", g.BuildID)
	ew.printf("seed: %d\n", g.Seed)
	ew.printf("rooms: %dx%d\n", lvl.Width(), lvl.Height())
	ew.printf("room_size: %dx%d\n", room.Width, room.Height)
	if g.CurrentRoom != nil {
		ew.printf("current_room: %s\n", g.CurrentRoom.Coord)
	}
	if player != nil {
		rc, _ := lvl.CoordOf(player.RoomIndex)
		ew.println(fmt.Sprintf(i18n.Get("MAP_PLAYER"), player.PositionPx.X, player.PositionPx.Y, rc.X, rc.Y))
	}
	ew.println("")

	// --- Legend ---
	used := mapset.New[room.Bitmap]()
	lvl.ForEachRoom(func(_ world.Coord, r *room.Room) {
		r.ForEachTile(func(_, _ int, t room.Tile) {
			used.Put(t.Bitmap)
		})
	})
	if player != nil {
		used.Put(room.BitmapPlayer)
	}
	var legend []room.Bitmap
	used.Each(func(b room.Bitmap) {
		legend = append(legend, b)
	})
	sort.Slice(legend, func(i, j int) bool { return legend[i] < legend[j] })

	ew.printf("--- %s ---\n", i18n.Get("MAP_LEGEND"))
	for _, b := range legend {
		ew.printf("%c = %s\n", Symbol(b), legendText(b))
	}
	ew.println("")

	// --- Rooms ---
	lvl.ForEachRoom(func(c world.Coord, r *room.Room) {
		idx := lvl.Index(c)
		ew.printf("--- %s ---\n", fmt.Sprintf(i18n.Get("ROOM_LABEL"), c.X, c.Y))
		row := make([]rune, r.Width())
		for y := 0; y < r.Height(); y++ {
			for x := 0; x < r.Width(); x++ {
				t, _ := r.Tile(x, y)
				row[x] = Symbol(t.Bitmap)
				if idx == playerRoom && playerTile == (world.Coord{X: x, Y: y}) {
					row[x] = Symbol(room.BitmapPlayer)
				}
			}
			ew.println(string(row))
		}
		ew.println("")
	})
	return ew.err
}

// errWriter keeps the first write error and skips later writes
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err == nil {
		_, e.err = fmt.Fprintf(e.w, format, args...)
	}
}

func (e *errWriter) println(s string) {
	if e.err == nil {
		_, e.err = fmt.Fprintln(e.w, s)
	}
}
