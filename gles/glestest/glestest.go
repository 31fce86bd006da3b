// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package glestest provides a recording fake of gles.Context for tests.
//
// The fake keeps just enough GL state to make assertions meaningful: bound
// program, bound texture per target, pixel store parameters, texture storage
// and every pixel upload. Shader compile and link results can be scripted.
package glestest

import (
	"fmt"
	"sync"

	"github.com/gogpu/camlight/gles"
)

// Upload records one TexSubImage2D call.
type Upload struct {
	Target    uint32
	Texture   uint32
	Width     int32
	Height    int32
	Format    uint32
	Type      uint32
	RowLength int32
	Pixels    []byte
}

// Storage records the last TexImage2D call for a texture.
type Storage struct {
	Internal int32
	Width    int32
	Height   int32
	Format   uint32
	Type     uint32
}

// Context is a recording gles.Context.
//
// Context is safe for concurrent use.
type Context struct {
	mu sync.Mutex

	// CompileLog maps a shader kind (gles.VERTEX_SHADER, gles.FRAGMENT_SHADER)
	// to a diagnostic. A non-empty entry makes compilation of that kind fail.
	CompileLog map[uint32]string
	// LinkLog makes linking fail with the given diagnostic when non-empty.
	LinkLog string

	nextID    uint32
	calls     []string
	shaders   map[uint32]uint32 // shader -> kind
	programs  map[uint32][]uint32
	linked    map[uint32]bool
	textures  map[uint32]bool
	storage   map[uint32]Storage
	uniforms  map[int32]any
	names     map[string]int32
	bound     map[uint32]uint32 // target -> texture
	store     map[uint32]int32
	program   uint32
	fb        uint32
	viewport  [4]int32
	clearRGBA [4]float32
	enabled   map[uint32]bool
	active    uint32
	uploads   []Upload
}

// New returns an empty fake context.
func New() *Context {
	return &Context{
		CompileLog: map[uint32]string{},
		shaders:    map[uint32]uint32{},
		programs:   map[uint32][]uint32{},
		linked:     map[uint32]bool{},
		textures:   map[uint32]bool{},
		storage:    map[uint32]Storage{},
		uniforms:   map[int32]any{},
		names:      map[string]int32{},
		bound:      map[uint32]uint32{},
		store:      map[uint32]int32{},
		enabled:    map[uint32]bool{},
	}
}

var _ gles.Context = (*Context)(nil)

func (c *Context) record(format string, args ...any) {
	c.calls = append(c.calls, fmt.Sprintf(format, args...))
}

func (c *Context) id() uint32 {
	c.nextID++
	return c.nextID
}

// CreateProgram implements gles.Context.
func (c *Context) CreateProgram() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	p := c.id()
	c.programs[p] = nil
	c.record("CreateProgram() = %d", p)
	return p
}

// CreateShader implements gles.Context.
func (c *Context) CreateShader(kind uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.id()
	c.shaders[s] = kind
	c.record("CreateShader(%#x) = %d", kind, s)
	return s
}

// ShaderSource implements gles.Context.
func (c *Context) ShaderSource(shader uint32, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("ShaderSource(%d, %d bytes)", shader, len(source))
}

// CompileShader implements gles.Context.
func (c *Context) CompileShader(shader uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("CompileShader(%d)", shader)
}

// ShaderCompiled implements gles.Context.
func (c *Context) ShaderCompiled(shader uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CompileLog[c.shaders[shader]] == ""
}

// ShaderInfoLog implements gles.Context.
func (c *Context) ShaderInfoLog(shader uint32) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.CompileLog[c.shaders[shader]]
}

// AttachShader implements gles.Context.
func (c *Context) AttachShader(program, shader uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.programs[program] = append(c.programs[program], shader)
	c.record("AttachShader(%d, %d)", program, shader)
}

// DeleteShader implements gles.Context.
func (c *Context) DeleteShader(shader uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("DeleteShader(%d)", shader)
}

// LinkProgram implements gles.Context.
func (c *Context) LinkProgram(program uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	ok := c.LinkLog == ""
	for _, s := range c.programs[program] {
		if c.CompileLog[c.shaders[s]] != "" {
			ok = false
		}
	}
	c.linked[program] = ok
	c.record("LinkProgram(%d)", program)
}

// ProgramLinked implements gles.Context.
func (c *Context) ProgramLinked(program uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.linked[program]
}

// ProgramInfoLog implements gles.Context.
func (c *Context) ProgramInfoLog(uint32) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.LinkLog
}

// UseProgram implements gles.Context.
func (c *Context) UseProgram(program uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.program = program
	c.record("UseProgram(%d)", program)
}

// GetUniformLocation implements gles.Context.
// Locations are stable per name and -1 for unlinked programs.
func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.linked[program] {
		return -1
	}
	return c.location("u:" + name)
}

// GetAttribLocation implements gles.Context.
func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.linked[program] {
		return -1
	}
	return c.location("a:" + name)
}

func (c *Context) location(key string) int32 {
	if loc, ok := c.names[key]; ok {
		return loc
	}
	loc := int32(len(c.names))
	c.names[key] = loc
	return loc
}

func (c *Context) setUniform(location int32, v any) {
	if location < 0 {
		return
	}
	c.uniforms[location] = v
}

// Uniform1i implements gles.Context.
func (c *Context) Uniform1i(location, v int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setUniform(location, v)
}

// Uniform3fv implements gles.Context.
func (c *Context) Uniform3fv(location int32, v [3]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setUniform(location, v)
}

// Uniform4fv implements gles.Context.
func (c *Context) Uniform4fv(location int32, v [4]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setUniform(location, v)
}

// UniformMatrix4fv implements gles.Context.
func (c *Context) UniformMatrix4fv(location int32, m [16]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setUniform(location, m)
}

// GenTexture implements gles.Context.
func (c *Context) GenTexture() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.id()
	c.textures[t] = true
	c.record("GenTexture() = %d", t)
	return t
}

// ActiveTexture implements gles.Context.
func (c *Context) ActiveTexture(unit uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = unit
}

// BindTexture implements gles.Context.
func (c *Context) BindTexture(target, texture uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bound[target] = texture
	c.record("BindTexture(%#x, %d)", target, texture)
}

// TexParameteri implements gles.Context.
func (c *Context) TexParameteri(target, pname uint32, param int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("TexParameteri(%#x, %#x, %#x)", target, pname, param)
}

// TexImage2D implements gles.Context.
func (c *Context) TexImage2D(target uint32, internalFormat int32, width, height int32, format, xtype uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.storage[c.bound[target]] = Storage{
		Internal: internalFormat,
		Width:    width,
		Height:   height,
		Format:   format,
		Type:     xtype,
	}
	c.record("TexImage2D(%#x, %dx%d)", target, width, height)
}

// TexSubImage2D implements gles.Context.
// The recorded pixels are exactly the bytes GL would read, honouring
// UNPACK_ROW_LENGTH.
func (c *Context) TexSubImage2D(target uint32, width, height int32, format, xtype uint32, pixels []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rowLength := c.store[gles.UNPACK_ROW_LENGTH]
	stride := int(width) * 4
	if rowLength > 0 {
		stride = int(rowLength) * 4
	}
	rowBytes := int(width) * 4
	read := make([]byte, 0, rowBytes*int(height))
	for y := 0; y < int(height); y++ {
		read = append(read, pixels[y*stride:y*stride+rowBytes]...)
	}
	c.uploads = append(c.uploads, Upload{
		Target:    target,
		Texture:   c.bound[target],
		Width:     width,
		Height:    height,
		Format:    format,
		Type:      xtype,
		RowLength: rowLength,
		Pixels:    read,
	})
	c.record("TexSubImage2D(%#x, %dx%d, row=%d)", target, width, height, rowLength)
}

// PixelStorei implements gles.Context.
func (c *Context) PixelStorei(pname uint32, param int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store[pname] = param
	c.record("PixelStorei(%#x, %d)", pname, param)
}

// BindFramebuffer implements gles.Context.
func (c *Context) BindFramebuffer(target, framebuffer uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.fb = framebuffer
	c.record("BindFramebuffer(%#x, %d)", target, framebuffer)
}

// Viewport implements gles.Context.
func (c *Context) Viewport(x, y, width, height int32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.viewport = [4]int32{x, y, width, height}
}

// ClearColor implements gles.Context.
func (c *Context) ClearColor(r, g, b, a float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearRGBA = [4]float32{r, g, b, a}
}

// Clear implements gles.Context.
func (c *Context) Clear(mask uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.record("Clear(%#x)", mask)
}

// Enable implements gles.Context.
func (c *Context) Enable(capability uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enabled[capability] = true
}

// Calls returns a copy of the recorded call log.
func (c *Context) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}

// Uploads returns a copy of the recorded uploads.
func (c *Context) Uploads() []Upload {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Upload(nil), c.uploads...)
}

// TextureCount reports how many textures were generated.
func (c *Context) TextureCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.textures)
}

// Storage returns the last storage specification of texture.
func (c *Context) Storage(texture uint32) (Storage, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.storage[texture]
	return s, ok
}

// Bound returns the texture bound to target.
func (c *Context) Bound(target uint32) uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.bound[target]
}

// PixelStore returns the current value of a pixel store parameter.
func (c *Context) PixelStore(pname uint32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store[pname]
}

// CurrentProgram returns the program in use.
func (c *Context) CurrentProgram() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.program
}

// Framebuffer returns the bound framebuffer.
func (c *Context) Framebuffer() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fb
}

// ViewportRect returns the last viewport.
func (c *Context) ViewportRect() [4]int32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewport
}

// Enabled reports whether capability was enabled.
func (c *Context) Enabled(capability uint32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.enabled[capability]
}

// ActiveUnit returns the active texture unit.
func (c *Context) ActiveUnit() uint32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Uniform returns the last value set for the named uniform of a linked program.
func (c *Context) Uniform(name string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	loc, ok := c.names["u:"+name]
	if !ok {
		return nil, false
	}
	v, ok := c.uniforms[loc]
	return v, ok
}
