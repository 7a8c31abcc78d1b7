package devtools

import (
	"errors"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"roomcrawl/pkg/game/i18n"
	"roomcrawl/pkg/game/room"
	"roomcrawl/pkg/game/state"
)

// htmlClass returns the css class for b
func htmlClass(b room.Bitmap) string {
	switch {
	case b.IsFloor():
		return "floor"
	case b == room.BitmapPlayer:
		return "player"
	case b == room.BitmapDoorH || b == room.BitmapDoorV:
		return "door"
	case b == room.BitmapTable || b == room.BitmapCrate:
		return "furniture"
	default:
		return "wall"
	}
}

// RenderScreenshotHTML renders the current room and the message log as a
// standalone HTML page
func RenderScreenshotHTML(g *state.Game) (string, error) {
	if g.CurrentRoom == nil {
		return "", errors.New("devtools: no current room")
	}
	r := g.CurrentRoom

	var page strings.Builder
	page.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>roomcrawl - Screenshot</title>
    <style>
        body { background-color: #1a1a2e; color: #eee; font-family: 'Courier New', monospace; padding: 20px; }
        .header { color: #bb86fc; font-size: 18px; margin-bottom: 10px; }
        .map-container { background-color: #0f0f1a; padding: 20px; border-radius: 8px; display: inline-block; }
        .map-row { white-space: pre; line-height: 1.2; font-size: 16px; }
        .player { color: #00ff00; font-weight: bold; }
        .wall { color: #666; }
        .floor { color: #888; }
        .door { color: #ffff00; font-weight: bold; }
        .furniture { color: #ff66ff; }
        .message { color: #ccc; margin: 5px 0; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&page, "    <div class=\"header\">%s</div>\n", html.EscapeString(fmt.Sprintf(i18n.Get("ROOM_LABEL"), r.Coord.X, r.Coord.Y)))
	page.WriteString("    <div class=\"map-container\">\n")

	px, py := -1, -1
	if p := g.Player(); p != nil && p.RoomIndex == g.CurrentRoomIndex {
		px, py = p.PositionPx.X/room.TileSizePx, p.PositionPx.Y/room.TileSizePx
	}
	for y := 0; y < r.Height(); y++ {
		page.WriteString(`        <div class="map-row">`)
		for x := 0; x < r.Width(); x++ {
			t, _ := r.Tile(x, y)
			b := t.Bitmap
			if x == px && y == py {
				b = room.BitmapPlayer
			}
			fmt.Fprintf(&page, `<span class="%s">%c</span>`, htmlClass(b), Symbol(b))
		}
		page.WriteString("</div>\n")
	}
	page.WriteString("    </div>\n")

	for _, msg := range g.Messages {
		fmt.Fprintf(&page, "    <div class=\"message\">%s</div>\n", html.EscapeString(msg))
	}
	page.WriteString("</body>\n</html>\n")
	return page.String(), nil
}

// SaveScreenshotHTML writes the current room to a timestamped HTML file in
// dir and returns its name
func SaveScreenshotHTML(g *state.Game, dir string) (string, error) {
	page, err := RenderScreenshotHTML(g)
	if err != nil {
		return "", err
	}
	filename := fmt.Sprintf("screenshot-%s.html", time.Now().Format("20060102-150405"))
	if dir != "" {
		filename = filepath.Join(dir, filename)
	}
	if err := os.WriteFile(filename, []byte(page), 0o644); err != nil {
		return "", fmt.Errorf("saving screenshot: %w", err)
	}
	return filename, nil
}
