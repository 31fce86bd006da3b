// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"errors"
	"sync"
	"unsafe"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/camlight/gles"
	"github.com/gogpu/camlight/gles/glestest"
)

// fakeCamera records Start/Stop calls.
type fakeCamera struct {
	mu       sync.Mutex
	started  int
	stopped  int
	startErr error
}

func (c *fakeCamera) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	return c.startErr
}

func (c *fakeCamera) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopped++
}

// fakeHost implements Host with scriptable capabilities. Each ProcAddress
// generation pairs with a fresh glestest context handed out by load.
type fakeHost struct {
	vars    map[string]string
	updated bool

	rejectFormat   bool
	rejectCamera   bool
	rejectHWRender bool
	extensions     map[string]bool

	framebuffer uint32
	dx, dy      int
	pressed     map[Button]bool
	polls       int

	format    gputypes.TextureFormat
	hwRequest HWRenderRequest
	camReq    CameraRequest
	camera    *fakeCamera
	presented [][2]int

	contexts []*glestest.Context
	setupGL  func(*glestest.Context)
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		vars:       map[string]string{},
		extensions: map[string]bool{},
		pressed:    map[Button]bool{},
		camera:     &fakeCamera{},
	}
}

var _ Host = (*fakeHost)(nil)

func (h *fakeHost) PresentFrame(width, height int) {
	h.presented = append(h.presented, [2]int{width, height})
}

func (h *fakeHost) PollInput()                 { h.polls++ }
func (h *fakeHost) PointerDelta() (int, int)   { return h.dx, h.dy }
func (h *fakeHost) Pressed(b Button) bool      { return h.pressed[b] }
func (h *fakeHost) CurrentFramebuffer() uint32 { return h.framebuffer }

func (h *fakeHost) Variable(key string) (string, bool) {
	v, ok := h.vars[key]
	return v, ok
}

func (h *fakeHost) VariablesUpdated() bool {
	u := h.updated
	h.updated = false
	return u
}

func (h *fakeHost) RegisterCamera(req CameraRequest) (CameraControl, error) {
	h.camReq = req
	if h.rejectCamera {
		return nil, errors.New("no camera driver")
	}
	return h.camera, nil
}

func (h *fakeHost) SetPixelFormat(f gputypes.TextureFormat) bool {
	h.format = f
	return !h.rejectFormat
}

func (h *fakeHost) RequestHWRender(req HWRenderRequest) bool {
	h.hwRequest = req
	return !h.rejectHWRender
}

func (h *fakeHost) ProcAddress(string) unsafe.Pointer { return nil }

func (h *fakeHost) HasExtension(name string) bool { return h.extensions[name] }

// load is a GLLoader returning a new fake context per reset.
func (h *fakeHost) load(gles.ProcAddressFunc) (gles.Context, error) {
	c := glestest.New()
	if h.setupGL != nil {
		h.setupGL(c)
	}
	h.contexts = append(h.contexts, c)
	return c, nil
}

// gl returns the newest context.
func (h *fakeHost) gl() *glestest.Context {
	if len(h.contexts) == 0 {
		return nil
	}
	return h.contexts[len(h.contexts)-1]
}

// recordingScene is a SceneRenderer that records its calls.
type recordingScene struct {
	resets  int
	updates []bool
	draws   []CameraView
	program gles.Program
	grid    CubeGrid
	during  uint32 // program in use while drawing
	gl      *glestest.Context
}

func (r *recordingScene) ContextReset(gl gles.Context, p gles.Program) {
	r.resets++
	r.program = p
	r.gl, _ = gl.(*glestest.Context)
}

func (r *recordingScene) UpdateVariables(vars Variables, first bool) {
	r.updates = append(r.updates, first)
	r.grid = ParseCubeGrid(vars, DefaultCubeGrid)
}

func (r *recordingScene) Draw(_ gles.Context, _ gles.Program, view CameraView) {
	r.draws = append(r.draws, view)
	if r.gl != nil {
		r.during = r.gl.CurrentProgram()
	}
}
