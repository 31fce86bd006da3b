// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gles defines the subset of the OpenGL / OpenGL ES 2 function table
// that camlight drives.
//
// The host owns the GL context. camlight never creates one; it receives a
// proc-address function on every context reset and resolves a fresh
// [Context] from it. Every handle obtained from a previous Context is invalid
// once a new one has been resolved.
//
// The concrete binding over go-gl lives in gles/glbind. Tests use the
// recording fake in gles/glestest.
package gles

import "unsafe"

// ProcAddressFunc resolves a GL entry point by name, as provided by the host.
type ProcAddressFunc func(name string) unsafe.Pointer

// NoTexture is the "uninitialized" texture handle sentinel.
const NoTexture uint32 = 0

// NoProgram is the "uninitialized" program handle sentinel.
const NoProgram uint32 = 0

// GL enums used by camlight. Values match the Khronos registry.
const (
	TEXTURE_2D           uint32 = 0x0DE1
	TEXTURE_EXTERNAL_OES uint32 = 0x8D65
	TEXTURE0             uint32 = 0x84C0

	TEXTURE_MAG_FILTER uint32 = 0x2800
	TEXTURE_MIN_FILTER uint32 = 0x2801
	TEXTURE_WRAP_S     uint32 = 0x2802
	TEXTURE_WRAP_T     uint32 = 0x2803
	LINEAR             int32  = 0x2601
	CLAMP_TO_EDGE      int32  = 0x812F

	RGBA                     uint32 = 0x1908
	BGRA                     uint32 = 0x80E1 // GL_BGRA and GL_BGRA_EXT share a value
	UNSIGNED_BYTE            uint32 = 0x1401
	UNSIGNED_INT_8_8_8_8_REV uint32 = 0x8367

	UNPACK_ROW_LENGTH uint32 = 0x0CF2

	FRAMEBUFFER      uint32 = 0x8D40
	COLOR_BUFFER_BIT uint32 = 0x00004000
	DEPTH_BUFFER_BIT uint32 = 0x00000100
	DEPTH_TEST       uint32 = 0x0B71
	CULL_FACE        uint32 = 0x0B44

	VERTEX_SHADER   uint32 = 0x8B31
	FRAGMENT_SHADER uint32 = 0x8B30
)

// Context is a resolved GL function table bound to the host's current context.
//
// Methods mirror the GL calls one to one, except that status queries
// (ShaderCompiled, ProgramLinked) and info logs are folded into Go-friendly
// helpers, and pixel uploads take byte slices.
type Context interface {
	CreateProgram() uint32
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	AttachShader(program, shader uint32)
	DeleteShader(shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	GetUniformLocation(program uint32, name string) int32
	GetAttribLocation(program uint32, name string) int32
	Uniform1i(location, v int32)
	Uniform3fv(location int32, v [3]float32)
	Uniform4fv(location int32, v [4]float32)
	UniformMatrix4fv(location int32, m [16]float32)

	GenTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	// TexImage2D specifies level-0 storage without uploading pixels.
	TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32)
	// TexSubImage2D uploads a full level-0 image starting at the origin.
	TexSubImage2D(target uint32, width, height int32, format, xtype uint32, pixels []byte)
	PixelStorei(pname uint32, param int32)

	BindFramebuffer(target, framebuffer uint32)
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Enable(capability uint32)
}

// UploadFormat is the (internal format, format, type) triple used for camera
// texture uploads of 32-bit host pixels.
type UploadFormat struct {
	Internal int32
	Format   uint32
	Type     uint32
}

// DesktopUpload matches 32-bit XRGB8888 host pixels on desktop OpenGL.
var DesktopUpload = UploadFormat{Internal: int32(RGBA), Format: BGRA, Type: UNSIGNED_INT_8_8_8_8_REV}

// ESUpload matches 32-bit XRGB8888 host pixels on OpenGL ES 2 with
// GL_EXT_texture_format_BGRA8888.
var ESUpload = UploadFormat{Internal: int32(BGRA), Format: BGRA, Type: UNSIGNED_BYTE}

// UniformLocations holds the resolved uniform locations of the scene program.
// A location of -1 means the uniform is absent (or the program is broken).
type UniformLocations struct {
	ViewProjection int32
	Model          int32
	LightPos       int32
	Ambient        int32
	Texture        int32
}

// AttribLocations holds the resolved vertex attribute locations.
type AttribLocations struct {
	Vertex   int32
	Normal   int32
	TexCoord int32
}

// Program describes the linked scene program for the current context.
//
// Valid reports whether both shaders compiled and the program linked.
// An invalid program is still used for rendering; output is undefined.
type Program struct {
	ID       uint32
	Valid    bool
	Uniforms UniformLocations
	Attribs  AttribLocations
}
