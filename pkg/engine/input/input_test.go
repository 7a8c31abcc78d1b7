package input

import "testing"

func TestTracker_Edges(t *testing.T) {
	var tr Tracker
	s := tr.Next(ButtonLeft|ButtonA, 0, Vec3{})
	if s.Pushed != ButtonLeft|ButtonA || s.Released != ButtonNone {
		t.Errorf("first frame pushed=%b released=%b", s.Pushed, s.Released)
	}

	s = tr.Next(ButtonLeft, 0, Vec3{})
	if s.Pushed != ButtonNone {
		t.Errorf("held button reported as pushed: %b", s.Pushed)
	}
	if s.Released != ButtonA {
		t.Errorf("released = %b, want A", s.Released)
	}
	if !s.Current.Has(ButtonLeft) || s.Current.Has(ButtonA) {
		t.Errorf("current = %b, want Left only", s.Current)
	}
}

func TestTracker_CrankDelta(t *testing.T) {
	tests := []struct {
		name      string
		from, to  float64
		wantAngle float64
		wantDelta float64
	}{
		{"forward", 10, 40, 40, 30},
		{"backward", 40, 10, 10, -30},
		{"wraps forward", 350, 20, 20, 30},
		{"wraps backward", 20, 350, 350, -30},
		{"negative input", 0, -90, 270, -90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tr Tracker
			tr.Next(0, tt.from, Vec3{})
			s := tr.Next(0, tt.to, Vec3{})
			if s.CrankAngle != tt.wantAngle || s.CrankDelta != tt.wantDelta {
				t.Errorf("angle=%v delta=%v, want %v / %v", s.CrankAngle, s.CrankDelta, tt.wantAngle, tt.wantDelta)
			}
		})
	}
}

func TestSnapshot_DPad(t *testing.T) {
	tests := []struct {
		held   Buttons
		dx, dy int
	}{
		{ButtonNone, 0, 0},
		{ButtonLeft, -1, 0},
		{ButtonRight | ButtonDown, 1, 1},
		{ButtonLeft | ButtonRight | ButtonUp, 0, -1},
	}
	for _, tt := range tests {
		dx, dy := Snapshot{Current: tt.held}.DPad()
		if dx != tt.dx || dy != tt.dy {
			t.Errorf("DPad(%b) = %d,%d, want %d,%d", tt.held, dx, dy, tt.dx, tt.dy)
		}
	}
}

func TestCollect(t *testing.T) {
	held := []RawInput{
		{Device: DeviceKeyboard, Code: "arrow_up"},
		{Device: DeviceKeyboard, Code: "d"},
		{Device: DeviceKeyboard, Code: "unbound"},
		{Device: DeviceGamepad, Code: "gamepad_a"},
	}
	if got, want := Collect(held), ButtonUp|ButtonRight|ButtonA; got != want {
		t.Errorf("Collect() = %b, want %b", got, want)
	}
	if codes := BoundCodes(ButtonB); len(codes) == 0 {
		t.Error("ButtonB should have bound codes")
	}
}
