// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glbind implements gles.Context over go-gl's bindings: Load for
// desktop OpenGL 3.3 contexts, LoadES for OpenGL ES 2 contexts. Pick the
// loader that matches the context type negotiated with the host.
//
// Load and LoadES must be called with the host's context current, once per context
// reset. go-gl keeps its function pointers in package state, so only one
// host context can be driven per process.
package glbind

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/gogpu/camlight/gles"
)

// ErrLoad is returned when the GL function table cannot be resolved.
var ErrLoad = errors.New("glbind: failed to resolve GL functions")

// Context is the go-gl backed gles.Context.
type Context struct{}

var _ gles.Context = Context{}

// Load resolves the GL function table through procAddr.
func Load(procAddr gles.ProcAddressFunc) (gles.Context, error) {
	if procAddr == nil {
		return nil, fmt.Errorf("%w: nil proc address function", ErrLoad)
	}
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return Context{}, nil
}

func (Context) CreateProgram() uint32           { return gl.CreateProgram() }
func (Context) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (Context) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Context) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (Context) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (Context) ProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (Context) UseProgram(program uint32) { gl.UseProgram(program) }

func (Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Context) Uniform1i(location, v int32)             { gl.Uniform1i(location, v) }
func (Context) Uniform3fv(location int32, v [3]float32) { gl.Uniform3fv(location, 1, &v[0]) }
func (Context) Uniform4fv(location int32, v [4]float32) { gl.Uniform4fv(location, 1, &v[0]) }
func (Context) UniformMatrix4fv(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (Context) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (Context) ActiveTexture(unit uint32)             { gl.ActiveTexture(unit) }
func (Context) BindTexture(target, texture uint32)    { gl.BindTexture(target, texture) }
func (Context) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (Context) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Context) TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32) {
	gl.TexImage2D(target, 0, internalFormat, width, height, 0, format, xtype, nil)
}

func (Context) TexSubImage2D(target uint32, width, height int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.TexSubImage2D(target, 0, 0, 0, width, height, format, xtype, gl.Ptr(&pixels[0]))
}

func (Context) BindFramebuffer(target, framebuffer uint32) { gl.BindFramebuffer(target, framebuffer) }
func (Context) Viewport(x, y, width, height int32)         { gl.Viewport(x, y, width, height) }
func (Context) ClearColor(r, g, b, a float32)              { gl.ClearColor(r, g, b, a) }
func (Context) Clear(mask uint32)                          { gl.Clear(mask) }
func (Context) Enable(capability uint32)                   { gl.Enable(capability) }
