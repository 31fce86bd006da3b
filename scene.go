// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/camlight/gles"
	"github.com/gogpu/camlight/internal/orbit"
)

// CameraView is the orbit camera for one tick, as seen by the scene.
type CameraView struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Side      mgl32.Vec3

	// Yaw and Pitch in degrees. Pitch is within [-80, 80].
	Yaw   float32
	Pitch float32

	// YawRotation and PitchRotation are the rotations that produced
	// Direction from -Z.
	YawRotation   mgl32.Mat4
	PitchRotation mgl32.Mat4
}

func cameraView(v orbit.View) CameraView {
	return CameraView{
		Position:      v.Position,
		Direction:     v.Direction,
		Side:          v.Side,
		Yaw:           v.Yaw,
		Pitch:         v.Pitch,
		YawRotation:   v.YawRotation,
		PitchRotation: v.PitchRotation,
	}
}

// SceneRenderer owns scene geometry. camlight sets up the program, uniforms
// and camera texture; the scene submits draws.
//
// All methods run on the host's video thread.
type SceneRenderer interface {
	// ContextReset rebuilds GPU resources (buffers, vertex layout) for a new
	// context. Handles from earlier contexts are invalid.
	ContextReset(gl gles.Context, program gles.Program)
	// UpdateVariables reads scene variables. first is true during Load.
	UpdateVariables(vars Variables, first bool)
	// Draw submits geometry with program and its uniforms bound.
	Draw(gl gles.Context, program gles.Program, view CameraView)
}

// nopScene draws nothing.
type nopScene struct{}

func (nopScene) ContextReset(gles.Context, gles.Program)     {}
func (nopScene) UpdateVariables(Variables, bool)             {}
func (nopScene) Draw(gles.Context, gles.Program, CameraView) {}
