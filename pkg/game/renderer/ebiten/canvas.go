package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"roomcrawl/pkg/game/room"
)

func (c *screenCanvas) Clear() {
	c.screen.Fill(colorBackground)
}

func (c *screenCanvas) DrawBitmap(b room.Bitmap, x, y int) {
	if b < 0 || b >= room.BitmapCount {
		return
	}
	img := c.bitmaps[b]
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	c.screen.DrawImage(img, op)
}

func (c *screenCanvas) DrawText(text string, x, y int) {
	ebitenutil.DebugPrintAt(c.screen, text, x, y)
}

func (c *screenCanvas) Size() (int, int) {
	b := c.screen.Bounds()
	return b.Dx(), b.Dy()
}
