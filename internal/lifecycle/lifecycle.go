// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package lifecycle rebuilds every GL resource camlight owns when the host
// reports a usable context.
//
// The state machine has two states. The first OnContextReady moves
// Uninitialized to Ready; every later call stays in Ready but repeats the
// full rebuild. Nothing is carried across a reset: the function table is
// resolved again, the program is compiled again and every listener is told
// to drop its handles.
package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/camlight/gles"
	"github.com/gogpu/camlight/internal/logx"
)

// ErrNoLoader is returned by OnContextReady when no GL loader was configured.
var ErrNoLoader = errors.New("lifecycle: no GL loader configured")

// State is the context lifecycle state.
type State int

const (
	// Uninitialized means no context has been seen yet.
	Uninitialized State = iota
	// Ready means a context was resolved and the program rebuilt.
	Ready
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Ready:
		return "Ready"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Loader resolves a GL function table from the host's proc-address function.
type Loader func(gles.ProcAddressFunc) (gles.Context, error)

// Listener is notified after every rebuild, in registration order.
type Listener interface {
	ContextReset(gl gles.Context, program gles.Program)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(gl gles.Context, program gles.Program)

// ContextReset calls f.
func (f ListenerFunc) ContextReset(gl gles.Context, program gles.Program) { f(gl, program) }

// Config configures a Lifecycle.
type Config struct {
	Loader  Loader
	Variant Variant
	Logger  *slog.Logger
}

// Lifecycle owns the GL function table and the scene program.
type Lifecycle struct {
	cfg       Config
	log       *slog.Logger
	listeners []Listener

	mu      sync.Mutex
	state   State
	gl      gles.Context
	program gles.Program
	resets  int
}

// New returns a Lifecycle in the Uninitialized state.
func New(cfg Config, listeners ...Listener) *Lifecycle {
	l := logx.OrNop(cfg.Logger)
	return &Lifecycle{
		cfg:       cfg,
		log:       l,
		listeners: listeners,
	}
}

// OnContextReady resolves the function table and rebuilds the program, then
// notifies listeners. Shader diagnostics are logged, not returned: a broken
// program is still installed and reported through Program().Valid.
//
// A loader failure is returned and leaves the lifecycle untouched.
func (lc *Lifecycle) OnContextReady(procAddr gles.ProcAddressFunc) error {
	if lc.cfg.Loader == nil {
		return ErrNoLoader
	}
	gl, err := lc.cfg.Loader(procAddr)
	if err != nil {
		return fmt.Errorf("lifecycle: resolve GL function table: %w", err)
	}

	vert, frag := Sources(lc.cfg.Variant)
	prog := Build(gl, vert, frag, lc.log)

	lc.mu.Lock()
	prev := lc.state
	lc.gl = gl
	lc.program = prog
	lc.state = Ready
	lc.resets++
	n := lc.resets
	lc.mu.Unlock()

	lc.log.Info("lifecycle: context reset",
		"from", prev.String(),
		"resets", n,
		"program", prog.ID,
		"valid", prog.Valid)

	for _, l := range lc.listeners {
		l.ContextReset(gl, prog)
	}
	return nil
}

// State returns the current lifecycle state.
func (lc *Lifecycle) State() State {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.state
}

// Context returns the function table of the current context, or nil before
// the first reset.
func (lc *Lifecycle) Context() gles.Context {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.gl
}

// Program returns the scene program of the current context.
func (lc *Lifecycle) Program() gles.Program {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.program
}

// Resets returns how many times the context was rebuilt.
func (lc *Lifecycle) Resets() int {
	lc.mu.Lock()
	defer lc.mu.Unlock()
	return lc.resets
}

// Build compiles and links the scene program and resolves its locations.
// Compile and link failures are logged at error level with the driver's
// diagnostic text; the returned program is then marked invalid but keeps its
// handle.
func Build(gl gles.Context, vertexSource, fragmentSource string, log *slog.Logger) gles.Program {
	log = logx.OrNop(log)
	prog := gl.CreateProgram()
	vert, vertOK := compile(gl, gles.VERTEX_SHADER, "vertex", vertexSource, log)
	frag, fragOK := compile(gl, gles.FRAGMENT_SHADER, "fragment", fragmentSource, log)

	gl.AttachShader(prog, vert)
	gl.AttachShader(prog, frag)
	gl.LinkProgram(prog)
	gl.DeleteShader(vert)
	gl.DeleteShader(frag)

	valid := vertOK && fragOK
	if !gl.ProgramLinked(prog) {
		log.Error("lifecycle: program failed to link", "log", gl.ProgramInfoLog(prog))
		valid = false
	}

	return gles.Program{
		ID:    prog,
		Valid: valid,
		Uniforms: gles.UniformLocations{
			ViewProjection: gl.GetUniformLocation(prog, "uVP"),
			Model:          gl.GetUniformLocation(prog, "uM"),
			LightPos:       gl.GetUniformLocation(prog, "light_pos"),
			Ambient:        gl.GetUniformLocation(prog, "ambient_light"),
			Texture:        gl.GetUniformLocation(prog, "uTexture"),
		},
		Attribs: gles.AttribLocations{
			Vertex:   gl.GetAttribLocation(prog, "aVertex"),
			Normal:   gl.GetAttribLocation(prog, "aNormal"),
			TexCoord: gl.GetAttribLocation(prog, "aTexCoord"),
		},
	}
}

func compile(gl gles.Context, kind uint32, stage, source string, log *slog.Logger) (uint32, bool) {
	s := gl.CreateShader(kind)
	gl.ShaderSource(s, source)
	gl.CompileShader(s)
	if !gl.ShaderCompiled(s) {
		log.Error("lifecycle: shader failed to compile", "stage", stage, "log", gl.ShaderInfoLog(s))
		return s, false
	}
	return s, true
}
