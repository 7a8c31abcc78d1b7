package ebiten

import (
	"fmt"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"roomcrawl/pkg/game/room"
)

// loadBitmaps loads every bitmap from dir. An empty dir synthesizes plain
// coloured tiles instead. Any missing file is an error.
func loadBitmaps(dir string) ([room.BitmapCount]*ebiten.Image, error) {
	var out [room.BitmapCount]*ebiten.Image
	for _, b := range room.AllBitmaps() {
		if dir == "" {
			out[b] = synthesize(b)
			continue
		}
		path := filepath.Join(dir, b.AssetName())
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			return out, fmt.Errorf("loading bitmap %s: %w", path, err)
		}
		out[b] = img
	}
	return out, nil
}

// synthesize draws a placeholder for b: a filled tile, with a bar across
// doors showing their orientation and a smaller block for the player
func synthesize(b room.Bitmap) *ebiten.Image {
	img := ebiten.NewImage(room.TileSizePx, room.TileSizePx)
	c := bitmapColors[b]

	switch b {
	case room.BitmapPlayer:
		inset := room.TileSizePx / 4
		body := ebiten.NewImage(room.TileSizePx-2*inset, room.TileSizePx-2*inset)
		body.Fill(c)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(inset), float64(inset))
		img.DrawImage(body, op)
	case room.BitmapDoorH, room.BitmapDoorV:
		img.Fill(bitmapColors[room.BitmapFloor00])
		w, h := room.TileSizePx, room.TileSizePx/4
		if b == room.BitmapDoorV {
			w, h = h, w
		}
		bar := ebiten.NewImage(w, h)
		bar.Fill(c)
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64((room.TileSizePx-w)/2), float64((room.TileSizePx-h)/2))
		img.DrawImage(bar, op)
	default:
		img.Fill(c)
	}
	return img
}
