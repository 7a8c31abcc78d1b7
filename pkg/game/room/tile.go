// Package room holds the materialized tile layout of a single room and the
// generator that fills it from a carved maze.
package room

import "strings"

// Flags is a bitmask of tile properties
type Flags uint8

// Tile flags
const (
	FlagNone           Flags = 0x00
	FlagWalkable       Flags = 0x01
	FlagDoorHorizontal Flags = 0x02
	FlagDoorVertical   Flags = 0x04
)

// Has returns true if every bit of mask is set
func (f Flags) Has(mask Flags) bool {
	return f&mask == mask
}

// IsDoor returns true if either door flag is set
func (f Flags) IsDoor() bool {
	return f&(FlagDoorHorizontal|FlagDoorVertical) != 0
}

func (f Flags) String() string {
	if f == FlagNone {
		return "None"
	}
	var parts []string
	if f.Has(FlagWalkable) {
		parts = append(parts, "Walkable")
	}
	if f.Has(FlagDoorHorizontal) {
		parts = append(parts, "DoorH")
	}
	if f.Has(FlagDoorVertical) {
		parts = append(parts, "DoorV")
	}
	return strings.Join(parts, "|")
}

// Bitmap selects the image drawn for a tile or entity
type Bitmap int

// Bitmaps, in asset table order
const (
	BitmapFloor00 Bitmap = iota
	BitmapFloor01
	BitmapFloor02
	BitmapFloor03
	BitmapWall
	BitmapTable
	BitmapCrate
	BitmapPlayer
	BitmapDoorH
	BitmapDoorV

	BitmapCount
)

var bitmapAssets = [BitmapCount]string{
	"floor00.png",
	"floor01.png",
	"floor02.png",
	"floor03.png",
	"wall.png",
	"table.png",
	"crate.png",
	"player.png",
	"doorh.png",
	"doorv.png",
}

var bitmapNames = [BitmapCount]string{
	"Floor00", "Floor01", "Floor02", "Floor03",
	"Wall", "Table", "Crate", "Player", "DoorH", "DoorV",
}

// FloorBitmap returns the floor variant for path index p
func FloorBitmap(p int) Bitmap {
	return BitmapFloor00 + Bitmap(p)
}

// AssetName returns the file name the bitmap is loaded from
func (b Bitmap) AssetName() string {
	if b < 0 || b >= BitmapCount {
		return ""
	}
	return bitmapAssets[b]
}

// IsFloor returns true for the four floor variants
func (b Bitmap) IsFloor() bool {
	return b >= BitmapFloor00 && b <= BitmapFloor03
}

func (b Bitmap) String() string {
	if b < 0 || b >= BitmapCount {
		return "Unknown"
	}
	return bitmapNames[b]
}

// AllBitmaps returns every bitmap in asset table order
func AllBitmaps() []Bitmap {
	all := make([]Bitmap, BitmapCount)
	for i := range all {
		all[i] = Bitmap(i)
	}
	return all
}

// Tile is one materialized room position
type Tile struct {
	Bitmap Bitmap
	Flags  Flags
}

// DefaultTile is the tile every room position holds before materialization
var DefaultTile = Tile{Bitmap: BitmapWall, Flags: FlagNone}

// Walkable returns true if the player may stand on the tile
func (t Tile) Walkable() bool {
	return t.Flags.Has(FlagWalkable)
}
