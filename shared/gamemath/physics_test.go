package gamemath

import (
	"math"
	"testing"
)

func TestUpdateSpeedAxisConvergesWithoutOvershoot(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		target   float64
		friction float64
	}{
		{"accelerate", 0, 2.5, 0.1},
		{"decelerate", 4, -1, 0.15},
		{"large step", -3, 3, 10},
		{"tiny friction", 1, 0, 0.001},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			speed := tt.speed
			prevDist := math.Abs(tt.target - speed)
			for i := 0; i < 20000 && speed != tt.target; i++ {
				next := UpdateSpeedAxis(speed, tt.target, tt.friction)
				dist := math.Abs(tt.target - next)
				if dist > prevDist {
					t.Fatalf("step %d moved away from target: %f -> %f", i, speed, next)
				}
				if (tt.speed < tt.target && next > tt.target) || (tt.speed > tt.target && next < tt.target) {
					t.Fatalf("step %d overshot target %f: %f", i, tt.target, next)
				}
				speed = next
				prevDist = dist
			}
			if speed != tt.target {
				t.Errorf("speed = %f, want %f", speed, tt.target)
			}
		})
	}
}

func TestApplyFriction(t *testing.T) {
	if got := ApplyFriction(1.0, 0.25); got != 0.75 {
		t.Errorf("ApplyFriction(1, 0.25) = %f, want 0.75", got)
	}
	if got := ApplyFriction(-0.1, 0.25); got != 0 {
		t.Errorf("ApplyFriction(-0.1, 0.25) = %f, want 0", got)
	}
}

func TestClampSpeed(t *testing.T) {
	if got := ClampSpeed(12, 10); got != 10 {
		t.Errorf("ClampSpeed(12, 10) = %f", got)
	}
	if got := ClampSpeed(-12, 10); got != -10 {
		t.Errorf("ClampSpeed(-12, 10) = %f", got)
	}
}

func TestNegMod(t *testing.T) {
	tests := []struct{ m, n, want int }{
		{5, 4, 1},
		{-1, 4, 3},
		{-4, 4, 0},
		{-9, 4, 3},
		{3, 0, 0},
	}
	for _, tt := range tests {
		if got := NegMod(tt.m, tt.n); got != tt.want {
			t.Errorf("NegMod(%d, %d) = %d, want %d", tt.m, tt.n, got, tt.want)
		}
	}
}
