// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/camlight"
	"github.com/gogpu/camlight/gles"
)

// maxGridSize bounds the cube grid to keep per-frame draw calls sane.
const maxGridSize = 32

// cubeScene draws a grid of textured cubes in front of the camera.
type cubeScene struct {
	log  *slog.Logger
	grid camlight.CubeGrid
	vbo  uint32
}

// Vertex layout: position xyz, normal xyzw with w = 0 so uM does not
// translate it, texture coordinate uv.
const (
	normalOffset    = 3
	texCoordOffset  = 7
	floatsPerVertex = 9
)

// cubeVertices returns 36 vertices of position, normal and texture
// coordinate for a unit cube centred at the origin.
func cubeVertices() []float32 {
	faces := []struct {
		n, u, v mgl32.Vec3
	}{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	corners := [6][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 0}, {1, 1}, {0, 1}}

	out := make([]float32, 0, 36*floatsPerVertex)
	for _, f := range faces {
		for _, c := range corners {
			p := f.n.Mul(0.5).Add(f.u.Mul(c[0] - 0.5)).Add(f.v.Mul(c[1] - 0.5))
			out = append(out, p[0], p[1], p[2], f.n[0], f.n[1], f.n[2], 0, c[0], c[1])
		}
	}
	return out
}

// ContextReset implements camlight.SceneRenderer.
func (s *cubeScene) ContextReset(_ gles.Context, _ gles.Program) {
	verts := cubeVertices()
	s.vbo = 0
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// UpdateVariables implements camlight.SceneRenderer.
func (s *cubeScene) UpdateVariables(vars camlight.Variables, first bool) {
	prev := s.grid
	if first {
		prev = camlight.DefaultCubeGrid
	}
	s.grid = camlight.ParseCubeGrid(vars, prev)
	if s.grid.Size > maxGridSize {
		s.grid.Size = maxGridSize
	}
	s.log.Info("camlight-host: cube grid", "size", s.grid.Size, "stride", s.grid.Stride)
}

// Draw implements camlight.SceneRenderer. Each cube overrides uM.
func (s *cubeScene) Draw(glc gles.Context, prog gles.Program, _ camlight.CameraView) {
	if s.vbo == 0 || prog.Attribs.Vertex < 0 {
		return
	}
	const stride = floatsPerVertex * 4
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	attribs := []struct {
		loc    int32
		size   int32
		offset int
	}{
		{prog.Attribs.Vertex, 3, 0},
		{prog.Attribs.Normal, 4, normalOffset * 4},
		{prog.Attribs.TexCoord, 2, texCoordOffset * 4},
	}
	for _, a := range attribs {
		if a.loc < 0 {
			continue
		}
		gl.EnableVertexAttribArray(uint32(a.loc))
		gl.VertexAttribPointerWithOffset(uint32(a.loc), a.size, gl.FLOAT, false, stride, uintptr(a.offset))
	}

	n := s.grid.Size
	half := float32(n-1) * s.grid.Stride / 2
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			x := float32(i)*s.grid.Stride - half
			z := float32(j)*s.grid.Stride - half - 20
			glc.UniformMatrix4fv(prog.Uniforms.Model, mgl32.Translate3D(x, -2, z))
			gl.DrawArrays(gl.TRIANGLES, 0, 36)
		}
	}

	for _, a := range attribs {
		if a.loc >= 0 {
			gl.DisableVertexAttribArray(uint32(a.loc))
		}
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}
