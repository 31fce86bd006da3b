// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package glbind

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v3.1/gles2"

	"github.com/gogpu/camlight/gles"
)

// ESContext is the gles.Context for OpenGL ES 2 host contexts, backed by
// go-gl's gles2 bindings. Hosts that negotiate camlight.ContextOpenGLES2
// pass LoadES to camlight.WithGLLoader; desktop hosts pass Load.
type ESContext struct{}

var _ gles.Context = ESContext{}

// LoadES resolves the OpenGL ES function table through procAddr.
func LoadES(procAddr gles.ProcAddressFunc) (gles.Context, error) {
	if procAddr == nil {
		return nil, fmt.Errorf("%w: nil proc address function", ErrLoad)
	}
	if err := gl.InitWithProcAddrFunc(procAddr); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoad, err)
	}
	return ESContext{}, nil
}

func (ESContext) CreateProgram() uint32           { return gl.CreateProgram() }
func (ESContext) CreateShader(kind uint32) uint32 { return gl.CreateShader(kind) }

func (ESContext) ShaderSource(shader uint32, source string) {
	csrc, free := gl.Strs(source + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csrc, nil)
}

func (ESContext) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (ESContext) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (ESContext) ShaderInfoLog(shader uint32) string {
	var n int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetShaderInfoLog(shader, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (ESContext) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (ESContext) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (ESContext) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (ESContext) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (ESContext) ProgramInfoLog(program uint32) string {
	var n int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]uint8, n+1)
	gl.GetProgramInfoLog(program, n, nil, &buf[0])
	return strings.TrimRight(string(buf), "\x00")
}

func (ESContext) UseProgram(program uint32) { gl.UseProgram(program) }

func (ESContext) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (ESContext) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (ESContext) Uniform1i(location, v int32)             { gl.Uniform1i(location, v) }
func (ESContext) Uniform3fv(location int32, v [3]float32) { gl.Uniform3fv(location, 1, &v[0]) }
func (ESContext) Uniform4fv(location int32, v [4]float32) { gl.Uniform4fv(location, 1, &v[0]) }
func (ESContext) UniformMatrix4fv(location int32, m [16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

func (ESContext) GenTexture() uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	return tex
}

func (ESContext) ActiveTexture(unit uint32)             { gl.ActiveTexture(unit) }
func (ESContext) BindTexture(target, texture uint32)    { gl.BindTexture(target, texture) }
func (ESContext) PixelStorei(pname uint32, param int32) { gl.PixelStorei(pname, param) }

func (ESContext) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (ESContext) TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32) {
	gl.TexImage2D(target, 0, internalFormat, width, height, 0, format, xtype, nil)
}

func (ESContext) TexSubImage2D(target uint32, width, height int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		return
	}
	gl.TexSubImage2D(target, 0, 0, 0, width, height, format, xtype, gl.Ptr(&pixels[0]))
}

func (ESContext) BindFramebuffer(target, framebuffer uint32) { gl.BindFramebuffer(target, framebuffer) }
func (ESContext) Viewport(x, y, width, height int32)         { gl.Viewport(x, y, width, height) }
func (ESContext) ClearColor(r, g, b, a float32)              { gl.ClearColor(r, g, b, a) }
func (ESContext) Clear(mask uint32)                          { gl.Clear(mask) }
func (ESContext) Enable(capability uint32)                   { gl.Enable(capability) }
