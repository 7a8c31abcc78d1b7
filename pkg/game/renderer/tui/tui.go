// Package tui prints rooms to the terminal with gookit/color.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"

	"roomcrawl/pkg/engine/terminal"
	"roomcrawl/pkg/engine/world"
	"roomcrawl/pkg/game/renderer"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

// Icon constants, one cell per tile
var icons = [room.BitmapCount]string{
	room.BitmapFloor00: "·",
	room.BitmapFloor01: "∙",
	room.BitmapFloor02: "•",
	room.BitmapFloor03: "◦",
	room.BitmapWall:    "▒",
	room.BitmapTable:   "╥",
	room.BitmapCrate:   "▣",
	room.BitmapPlayer:  "@",
	room.BitmapDoorH:   "═",
	room.BitmapDoorV:   "║",
}

// Icon returns the terminal icon for b
func Icon(b room.Bitmap) string {
	if b < 0 || b >= room.BitmapCount {
		return " "
	}
	return icons[b]
}

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out    io.Writer
	plain  bool
	size   terminal.Size
	styles [room.BitmapCount]color.Style
}

// New creates a TUI renderer writing to out. plain disables colour.
func New(out io.Writer, plain bool) *TUIRenderer {
	return &TUIRenderer{out: out, plain: plain, size: terminal.GetSize()}
}

// Init initializes the TUI renderer colors
func (t *TUIRenderer) Init() {
	for _, b := range room.AllBitmaps() {
		switch {
		case b.IsFloor():
			t.styles[b] = color.Style{color.FgGray}
		case b == room.BitmapPlayer:
			t.styles[b] = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
		case b == room.BitmapDoorH || b == room.BitmapDoorV:
			t.styles[b] = color.Style{color.FgYellow, color.OpBold}
		case b == room.BitmapTable || b == room.BitmapCrate:
			t.styles[b] = color.Style{color.FgMagenta}
		default:
			t.styles[b] = color.Style{color.FgBlue}
		}
	}
}

// SetSize overrides the detected terminal size
func (t *TUIRenderer) SetSize(s terminal.Size) {
	t.size = s
}

func (t *TUIRenderer) styled(b room.Bitmap) string {
	icon := Icon(b)
	if t.plain || b < 0 || b >= room.BitmapCount || len(t.styles[b]) == 0 {
		return icon
	}
	return t.styles[b].Sprint(icon)
}

// RenderFrame prints the current room with its label, the player and the
// latest message
func (t *TUIRenderer) RenderFrame(g *state.Game) {
	c := newGridCanvas(room.Width, room.Height)
	// align the current room's tiles with the grid cells
	renderer.DrawFrame(c, g, world.Coord{X: -room.TileOffsetPx, Y: -room.TileOffsetPx})

	fmt.Fprintln(t.out, c.label)
	for _, row := range c.cells {
		var sb strings.Builder
		for _, b := range row {
			sb.WriteString(t.styled(b))
		}
		fmt.Fprintln(t.out, sb.String())
	}
	if n := len(g.Messages); n > 0 {
		fmt.Fprintln(t.out, g.Messages[n-1])
	}
}

// RenderLevel prints every room of the level, as many side by side as the
// terminal width allows
func (t *TUIRenderer) RenderLevel(g *state.Game) {
	if g.Level == nil {
		return
	}
	perRow := t.size.Columns(room.Width + 1)
	lvl := g.Level

	for first := 0; first < lvl.RoomCount(); first += perRow {
		last := first + perRow
		if last > lvl.RoomCount() {
			last = lvl.RoomCount()
		}
		for y := 0; y < room.Height; y++ {
			var sb strings.Builder
			for i := first; i < last; i++ {
				r := lvl.Room(i)
				for x := 0; x < room.Width; x++ {
					tile, _ := r.Tile(x, y)
					sb.WriteString(t.styled(tile.Bitmap))
				}
				sb.WriteByte(' ')
			}
			fmt.Fprintln(t.out, strings.TrimRight(sb.String(), " "))
		}
		fmt.Fprintln(t.out)
	}
}

// gridCanvas collects a frame into tile sized cells
type gridCanvas struct {
	cells [][]room.Bitmap
	label string
}

func newGridCanvas(cols, rows int) *gridCanvas {
	c := &gridCanvas{cells: make([][]room.Bitmap, rows)}
	for i := range c.cells {
		c.cells[i] = make([]room.Bitmap, cols)
	}
	c.Clear()
	return c
}

func (c *gridCanvas) Clear() {
	for _, row := range c.cells {
		for i := range row {
			row[i] = room.BitmapWall
		}
	}
	c.label = ""
}

func (c *gridCanvas) DrawBitmap(b room.Bitmap, x, y int) {
	if x < 0 || y < 0 {
		return
	}
	// entities snap to the nearest cell
	cx, cy := (x+room.TileSizePx/2)/room.TileSizePx, (y+room.TileSizePx/2)/room.TileSizePx
	if cy >= len(c.cells) || cx >= len(c.cells[cy]) {
		return
	}
	c.cells[cy][cx] = b
}

func (c *gridCanvas) DrawText(text string, _, _ int) {
	c.label = text
}

func (c *gridCanvas) Size() (int, int) {
	return len(c.cells[0]) * room.TileSizePx, len(c.cells) * room.TileSizePx
}
