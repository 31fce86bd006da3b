// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package orbit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func vecNear(a, b mgl32.Vec3) bool {
	return a.ApproxEqualThreshold(b, eps)
}

func TestInitialView(t *testing.T) {
	var c Controller
	v := c.View()
	if !vecNear(v.Direction, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("Direction = %v, want (0, 0, -1)", v.Direction)
	}
	if !vecNear(v.Side, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Side = %v, want (1, 0, 0)", v.Side)
	}
	if v.Position != (mgl32.Vec3{}) {
		t.Errorf("Position = %v, want origin", v.Position)
	}
}

func TestPointerDeltaClamped(t *testing.T) {
	tests := []struct {
		name   string
		raw    Input
		capped Input
	}{
		{"positive x", Input{DX: 500}, Input{DX: 20}},
		{"negative x", Input{DX: -500}, Input{DX: -20}},
		{"positive y", Input{DY: 500}, Input{DY: 20}},
		{"negative y", Input{DY: -21}, Input{DY: -20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a, b Controller
			a.Update(tt.raw)
			b.Update(tt.capped)
			if a.State() != b.State() {
				t.Errorf("state after %+v = %+v, want %+v", tt.raw, a.State(), b.State())
			}
		})
	}
}

func TestYawPitchRates(t *testing.T) {
	var c Controller
	c.Update(Input{DX: 10, DY: 10})
	s := c.State()
	if !mgl32.FloatEqualThreshold(s.Yaw, -2, eps) {
		t.Errorf("Yaw = %v, want -2", s.Yaw)
	}
	if !mgl32.FloatEqualThreshold(s.Pitch, -1, eps) {
		t.Errorf("Pitch = %v, want -1", s.Pitch)
	}
}

func TestPitchClamped(t *testing.T) {
	var c Controller
	for i := 0; i < 200; i++ {
		c.Update(Input{DY: -20})
		if p := c.State().Pitch; p < -MaxPitch || p > MaxPitch {
			t.Fatalf("tick %d: Pitch = %v, outside [-80, 80]", i, p)
		}
	}
	if p := c.State().Pitch; p != MaxPitch {
		t.Errorf("Pitch = %v, want %v", p, float32(MaxPitch))
	}

	for i := 0; i < 200; i++ {
		c.Update(Input{DY: 20})
	}
	if p := c.State().Pitch; p != -MaxPitch {
		t.Errorf("Pitch = %v, want %v", p, float32(-MaxPitch))
	}
}

func TestYawUnbounded(t *testing.T) {
	var c Controller
	for i := 0; i < 1000; i++ {
		c.Update(Input{DX: -20})
	}
	if y := c.State().Yaw; !mgl32.FloatEqualThreshold(y, 4000, 1e-2) {
		t.Errorf("Yaw = %v, want 4000", y)
	}
}

func TestMovement(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		want mgl32.Vec3
	}{
		{"forward", Input{Forward: true}, mgl32.Vec3{0, 0, -0.25}},
		{"backward", Input{Backward: true}, mgl32.Vec3{0, 0, 0.25}},
		{"left", Input{Left: true}, mgl32.Vec3{-0.25, 0, 0}},
		{"right", Input{Right: true}, mgl32.Vec3{0.25, 0, 0}},
		{"forward and right", Input{Forward: true, Right: true}, mgl32.Vec3{0.25, 0, -0.25}},
		{"opposites cancel", Input{Forward: true, Backward: true}, mgl32.Vec3{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c Controller
			v := c.Update(tt.in)
			if !vecNear(v.Position, tt.want) {
				t.Errorf("Position = %v, want %v", v.Position, tt.want)
			}
			if v.Position != c.State().Position {
				t.Errorf("View.Position %v differs from State.Position %v", v.Position, c.State().Position)
			}
		})
	}
}

func TestMovementFollowsYaw(t *testing.T) {
	var c Controller
	// yaw -= 0.2 * -20 per tick; after 45 ticks yaw is 180 degrees.
	for i := 0; i < 45; i++ {
		c.Update(Input{DX: -20})
	}
	v := c.Update(Input{Forward: true})
	if !vecNear(v.Direction, mgl32.Vec3{0, 0, 1}) {
		t.Errorf("Direction = %v, want (0, 0, 1)", v.Direction)
	}
	if !vecNear(v.Position, mgl32.Vec3{0, 0, 0.25}) {
		t.Errorf("Position = %v, want (0, 0, 0.25)", v.Position)
	}
}

func TestPitchTiltsDirection(t *testing.T) {
	var c Controller
	// Pitch up to the clamp; direction keeps unit length and points up.
	for i := 0; i < 100; i++ {
		c.Update(Input{DY: -20})
	}
	v := c.View()
	if v.Direction.Y() <= 0 {
		t.Errorf("Direction.Y = %v, want > 0", v.Direction.Y())
	}
	if l := v.Direction.Len(); !mgl32.FloatEqualThreshold(l, 1, eps) {
		t.Errorf("|Direction| = %v, want 1", l)
	}
	if !vecNear(v.Side, mgl32.Vec3{1, 0, 0}) {
		t.Errorf("Side = %v, want (1, 0, 0); pitch must not affect side", v.Side)
	}
}

func TestDeterministic(t *testing.T) {
	seq := []Input{
		{DX: 3, DY: -7, Forward: true},
		{DX: 100, Right: true},
		{DY: 45, Left: true, Backward: true},
		{DX: -19, DY: 2, Forward: true},
	}
	var a, b Controller
	for _, in := range seq {
		a.Update(in)
		b.Update(in)
	}
	if a.State() != b.State() {
		t.Errorf("states diverged: %+v vs %+v", a.State(), b.State())
	}
}

func TestReset(t *testing.T) {
	var c Controller
	c.Update(Input{DX: 5, DY: 5, Forward: true})
	c.Reset()
	if c.State() != (State{}) {
		t.Errorf("State() after Reset = %+v, want zero", c.State())
	}
}
