// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package compose renders one video frame: it sets up the host framebuffer,
// binds the scene program, camera texture and lighting uniforms, lets the
// scene draw, then leaves GL binding state clean for the host.
package compose

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/camlight/gles"
	"github.com/gogpu/camlight/internal/logx"
	"github.com/gogpu/camlight/internal/orbit"
)

// Fixed scene lighting and projection.
var (
	LightPosition = mgl32.Vec3{0, 150, 15}
	AmbientLight  = mgl32.Vec4{0.2, 0.2, 0.2, 1}
	ClearColor    = mgl32.Vec4{0.1, 0.1, 0.1, 1}
)

const (
	FieldOfView = 45.0 // degrees, vertical
	AspectRatio = 640.0 / 480.0
	NearPlane   = 5.0
	FarPlane    = 500.0
)

// Target is the host render target for one tick. The framebuffer handle is
// re-queried from the host every tick and never cached here.
type Target struct {
	Framebuffer   uint32
	Width, Height int
}

// TextureBinder exposes the camera texture under the ingest lock.
type TextureBinder interface {
	Bind(fn func(texture, target uint32))
}

// Projection returns the fixed perspective projection with the vertical flip
// the host expects for GPU-resident frames.
func Projection() mgl32.Mat4 {
	flip := mgl32.Scale3D(1, -1, 1)
	return flip.Mul4(mgl32.Perspective(mgl32.DegToRad(FieldOfView), AspectRatio, NearPlane, FarPlane))
}

// ViewMatrix looks from the orbit position along its direction, +Y up.
func ViewMatrix(v orbit.View) mgl32.Mat4 {
	return mgl32.LookAtV(v.Position, v.Position.Add(v.Direction), mgl32.Vec3{0, 1, 0})
}

// ViewProjection returns Projection() * ViewMatrix(v).
func ViewProjection(v orbit.View) mgl32.Mat4 {
	return Projection().Mul4(ViewMatrix(v))
}

// Compositor renders frames. The zero value is not usable; call New.
type Compositor struct {
	log    *slog.Logger
	frames uint64
}

// New returns a Compositor logging to l, or discarding when l is nil.
func New(l *slog.Logger) *Compositor {
	return &Compositor{log: logx.OrNop(l)}
}

// Render draws one frame into dst. draw submits geometry while the program,
// uniforms and camera texture are bound; it runs under the ingest lock.
func (c *Compositor) Render(gl gles.Context, prog gles.Program, dst Target, view orbit.View, tex TextureBinder, draw func()) {
	gl.BindFramebuffer(gles.FRAMEBUFFER, dst.Framebuffer)
	gl.Viewport(0, 0, int32(dst.Width), int32(dst.Height))
	gl.ClearColor(ClearColor[0], ClearColor[1], ClearColor[2], ClearColor[3])
	gl.Clear(gles.COLOR_BUFFER_BIT | gles.DEPTH_BUFFER_BIT)
	gl.Enable(gles.DEPTH_TEST)
	gl.Enable(gles.CULL_FACE)

	gl.UseProgram(prog.ID)
	gl.Uniform1i(prog.Uniforms.Texture, 0)
	gl.Uniform3fv(prog.Uniforms.LightPos, LightPosition)
	gl.Uniform4fv(prog.Uniforms.Ambient, AmbientLight)
	gl.UniformMatrix4fv(prog.Uniforms.ViewProjection, ViewProjection(view))
	gl.UniformMatrix4fv(prog.Uniforms.Model, mgl32.Ident4())

	tex.Bind(func(texture, target uint32) {
		gl.ActiveTexture(gles.TEXTURE0)
		gl.BindTexture(target, texture)
		if draw != nil {
			draw()
		}
		gl.UseProgram(gles.NoProgram)
		gl.BindTexture(target, gles.NoTexture)
	})

	c.frames++
	if c.frames == 1 {
		c.log.Debug("compose: first frame", "width", dst.Width, "height", dst.Height, "framebuffer", dst.Framebuffer)
	}
}

// Frames returns how many frames were rendered.
func (c *Compositor) Frames() uint64 { return c.frames }
