package world

import "testing"

func TestGrid_IndexRoundTrip(t *testing.T) {
	g := NewGrid[int](5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			idx := g.Index(x, y)
			if got := g.CoordOf(idx); got != (Coord{X: x, Y: y}) {
				t.Errorf("CoordOf(Index(%d,%d)) = %v", x, y, got)
			}
		}
	}
}

func TestGrid_GetOutOfBounds(t *testing.T) {
	g := NewFilledGrid(4, 4, 7)
	for _, p := range []Coord{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if v, ok := g.Get(p.X, p.Y); ok || v != 0 {
			t.Errorf("Get(%d,%d) = (%d, %v), want (0, false)", p.X, p.Y, v, ok)
		}
		if g.Ptr(p.X, p.Y) != nil {
			t.Errorf("Ptr(%d,%d) != nil", p.X, p.Y)
		}
	}
	if v, ok := g.Get(3, 3); !ok || v != 7 {
		t.Errorf("Get(3,3) = (%d, %v), want (7, true)", v, ok)
	}
}

func TestGrid_AtPanicsOutOfBounds(t *testing.T) {
	g := NewGrid[int](2, 2)
	defer func() {
		if recover() == nil {
			t.Error("At(2,0) did not panic")
		}
	}()
	g.At(2, 0)
}

func TestGrid_PerimeterAndPlayable(t *testing.T) {
	g := NewGrid[bool](4, 4)
	if !g.IsOnPerimeter(0, 2) || !g.IsOnPerimeter(3, 3) {
		t.Error("edge cells should be on the perimeter")
	}
	if g.IsOnPerimeter(1, 1) || !g.IsPlayablePosition(2, 2) {
		t.Error("interior cells should be playable")
	}
	if g.IsOnPerimeter(-1, 0) {
		t.Error("out-of-bounds cell reported on perimeter")
	}
}

func TestGrid_Neighbor(t *testing.T) {
	g := NewGrid[int](3, 3)
	tests := []struct {
		from Coord
		dir  Direction
		want Coord
		ok   bool
	}{
		{Coord{1, 1}, Left, Coord{0, 1}, true},
		{Coord{1, 1}, Up, Coord{1, 0}, true},
		{Coord{1, 1}, Right, Coord{2, 1}, true},
		{Coord{1, 1}, Down, Coord{1, 2}, true},
		{Coord{0, 0}, Left, Coord{-1, 0}, false},
		{Coord{2, 2}, Down, Coord{2, 3}, false},
	}
	for _, tt := range tests {
		got, ok := g.Neighbor(tt.from, tt.dir)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("Neighbor(%v, %v) = (%v, %v), want (%v, %v)", tt.from, tt.dir, got, ok, tt.want, tt.ok)
		}
	}
	if _, ok := g.Neighbor(Coord{1, 1}, NoDirection); ok {
		t.Error("Neighbor with NoDirection should not be ok")
	}
}

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range AllDirections() {
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite().Opposite() = %v", d, d.Opposite().Opposite())
		}
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and its opposite deltas do not cancel", d)
		}
	}
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewFilledGrid(2, 2, 1)
	c := g.Clone()
	c.Set(0, 0, 9)
	if g.At(0, 0) != 1 {
		t.Error("mutating clone changed original")
	}
}
