package renderer

import (
	"fmt"

	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/i18n"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

// RoomSpanPx is the pixel size of one room, the distance between neighbours on screen
var RoomSpanPx = world.Coord{X: room.Width * room.TileSizePx, Y: room.Height * room.TileSizePx}

// DrawFrame draws the current room, then its four neighbours shifted by one
// room span, then the room label. offset is the camera draw offset.
func DrawFrame(c Canvas, g *state.Game, offset world.Coord) {
	c.Clear()
	if g == nil || g.CurrentRoom == nil || g.Level == nil {
		return
	}

	drawRoom(c, g, g.CurrentRoom, offset)
	for _, dir := range world.AllDirections() {
		adj := g.Adjacent[dir]
		if adj == nil {
			continue
		}
		dx, dy := dir.Delta()
		drawRoom(c, g, adj, offset.Add(world.Coord{X: dx * RoomSpanPx.X, Y: dy * RoomSpanPx.Y}))
	}

	rc := g.CurrentRoom.Coord
	c.DrawText(fmt.Sprintf(i18n.Get("ROOM_LABEL"), rc.X, rc.Y), LabelX, LabelY)
}

// drawRoom draws the tiles of r row by row, then its own entities, then the
// global entities standing in it
func drawRoom(c Canvas, g *state.Game, r *room.Room, offset world.Coord) {
	w, h := c.Size()
	origin := offset.Add(world.Coord{X: room.TileOffsetPx, Y: room.TileOffsetPx})

	draw := func(b room.Bitmap, pos world.Coord) {
		if visible(pos, w, h) {
			c.DrawBitmap(b, pos.X, pos.Y)
		}
	}

	for y := 0; y < r.Height(); y++ {
		for x := 0; x < r.Width(); x++ {
			t, _ := r.Tile(x, y)
			draw(t.Bitmap, origin.Add(world.Coord{X: x, Y: y}.Scale(room.TileSizePx)))
		}
	}
	for _, e := range r.Entities() {
		draw(e.Bitmap, origin.Add(e.PositionPx))
	}
	g.ForEachGlobalEntityIn(g.Level.Index(r.Coord), func(_ int, e *state.GlobalEntity) {
		draw(e.Bitmap, origin.Add(e.PositionPx))
	})
}

// visible reports whether a tile drawn at pos overlaps a w x h screen
func visible(pos world.Coord, w, h int) bool {
	return pos.X >= -room.TileSizePx && pos.X <= w-1 &&
		pos.Y >= -room.TileSizePx && pos.Y <= h-1
}
