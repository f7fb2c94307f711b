package gamemath

import "testing"

func TestLineY(t *testing.T) {
	cases := []struct {
		name             string
		bottom, m, b, rx float64
		want             float64
	}{
		{"flat_top", 64, 0, 32, 10, 32},
		{"steep_up_left_edge", 64, 1, 0, 0, 64},
		{"steep_up_right_edge", 64, 1, 0, 32, 32},
		{"steep_down_left_edge", 64, -1, 32, 0, 32},
		{"steep_down_right_edge", 64, -1, 32, 32, 64},
		{"half_up_high_mid", 64, 0.5, 16, 16, 40},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := LineY(c.bottom, c.m, c.b, c.rx); got != c.want {
				t.Fatalf("LineY = %v, want %v", got, c.want)
			}
		})
	}
}

func TestSlopeMaxSpeed(t *testing.T) {
	if got := SlopeMaxSpeed(5, 1, true); got != 2.5 {
		t.Fatalf("climbing m=1: got %v", got)
	}
	if got := SlopeMaxSpeed(5, -0.5, false); got != 7.5 {
		t.Fatalf("descending m=-0.5: got %v", got)
	}
}

func TestCameraOffset(t *testing.T) {
	cases := []struct {
		name                string
		target, view, world float64
		want                float64
	}{
		{"left_edge", 10, 640, 3200, 0},
		{"middle", 1000, 640, 3200, 680},
		{"right_edge", 3190, 640, 3200, 2560},
		{"small_world", 100, 640, 320, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := CameraOffset(c.target, c.view, c.world); got != c.want {
				t.Fatalf("CameraOffset = %v, want %v", got, c.want)
			}
		})
	}
}

func TestFrictionAndClamp(t *testing.T) {
	if got := ApplyFriction(10, 0.9); got != 9 {
		t.Fatalf("ApplyFriction = %v", got)
	}
	if Clamp(30, -20, 20) != 20 || Clamp(-30, -20, 20) != -20 || Clamp(3, -20, 20) != 3 {
		t.Fatalf("Clamp wrong")
	}
}
