// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package orbit integrates pointer and directional input into a first-person
// orbit camera.
//
// Motion is applied per tick with fixed factors; there is no delta-time
// integration, so camera speed follows the host's frame rate.
package orbit

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	// MaxPointerDelta bounds the pointer delta applied per tick on each axis.
	MaxPointerDelta = 20

	// YawPerUnit and PitchPerUnit convert pointer units to degrees.
	YawPerUnit   = 0.20
	PitchPerUnit = 0.10

	// MaxPitch bounds pitch to [-MaxPitch, MaxPitch] degrees.
	MaxPitch = 80

	// MoveStep is the distance travelled per tick while a direction is held.
	MoveStep = 0.25
)

// Input is one tick of host input.
type Input struct {
	DX, DY   int
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
}

// State is the persistent camera state.
type State struct {
	Position mgl32.Vec3
	Yaw      float32 // degrees, unbounded
	Pitch    float32 // degrees, within [-MaxPitch, MaxPitch]
}

// View is the camera derived from State after an update.
type View struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Side      mgl32.Vec3
	Yaw       float32
	Pitch     float32

	// YawRotation rotates about +Y by Yaw; PitchRotation about +X by Pitch.
	YawRotation   mgl32.Mat4
	PitchRotation mgl32.Mat4
}

// Controller owns the orbit camera state. The zero value is ready to use
// and sits at the origin looking down -Z.
type Controller struct {
	state State
}

// Reset returns the camera to the origin with zero yaw and pitch.
func (c *Controller) Reset() {
	c.state = State{}
}

// State returns the current state.
func (c *Controller) State() State {
	return c.state
}

// Update applies one tick of input and returns the resulting view.
func (c *Controller) Update(in Input) View {
	dx := clampInt(in.DX, -MaxPointerDelta, MaxPointerDelta)
	dy := clampInt(in.DY, -MaxPointerDelta, MaxPointerDelta)

	c.state.Yaw -= YawPerUnit * float32(dx)
	c.state.Pitch -= PitchPerUnit * float32(dy)
	c.state.Pitch = mgl32.Clamp(c.state.Pitch, -MaxPitch, MaxPitch)

	v := c.View()
	if in.Forward {
		c.state.Position = c.state.Position.Add(v.Direction.Mul(MoveStep))
	}
	if in.Backward {
		c.state.Position = c.state.Position.Sub(v.Direction.Mul(MoveStep))
	}
	if in.Left {
		c.state.Position = c.state.Position.Sub(v.Side.Mul(MoveStep))
	}
	if in.Right {
		c.state.Position = c.state.Position.Add(v.Side.Mul(MoveStep))
	}
	v.Position = c.state.Position
	return v
}

// View derives the view from the current state without applying input.
func (c *Controller) View() View {
	yaw := mgl32.HomogRotate3DY(mgl32.DegToRad(c.state.Yaw))
	pitch := mgl32.HomogRotate3DX(mgl32.DegToRad(c.state.Pitch))

	return View{
		Position:      c.state.Position,
		Direction:     yaw.Mul4(pitch).Mul4x1(mgl32.Vec4{0, 0, -1, 0}).Vec3(),
		Side:          yaw.Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3(),
		Yaw:           c.state.Yaw,
		Pitch:         c.state.Pitch,
		YawRotation:   yaw,
		PitchRotation: pitch,
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
