package utils

import (
	"testing"
)

func TestDragStickInitialState(t *testing.T) {
	d := NewDragStick()

	if d.IsDragging() {
		t.Error("Expected IsDragging to be false initially")
	}
	if d.Info().TouchID != -1 {
		t.Errorf("Expected TouchID -1, got %d", d.Info().TouchID)
	}
	if dx, dy := d.Direction(0); dx != 0 || dy != 0 {
		t.Errorf("Expected zero direction, got (%v, %v)", dx, dy)
	}
}

func TestDragStickDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   int
		deadZone float64
		wantX    float64
		wantY    float64
	}{
		{"向右", 40, 0, 10, 40, 0},
		{"左上", -30, -40, 10, -30, -40},
		{"死区内", 3, 4, 10, 0, 0},
		{"死区边界", 6, 8, 10, 6, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDragStick()
			d.begin(100, 100, 0)
			d.Move(100+tt.dx, 100+tt.dy)

			x, y := d.Direction(tt.deadZone)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("Direction() = (%v, %v), 期望 (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestDragStickReset(t *testing.T) {
	d := NewDragStick()
	d.begin(100, 200, 3)
	d.Move(150, 250)

	d.Reset()

	info := d.Info()
	if d.IsDragging() || info.StartX != 0 || info.CurrentY != 0 || info.TouchID != -1 {
		t.Errorf("unexpected state after reset: %+v", info)
	}
}
