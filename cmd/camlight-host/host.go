// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"log/slog"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/camlight"
)

// glfwHost adapts a GLFW window to camlight.Host. The window's default
// framebuffer is the render target.
type glfwHost struct {
	*varStore

	win *glfw.Window
	cam *imageCamera
	log *slog.Logger

	lastX, lastY float64
	havePos      bool
	dx, dy       int

	presented uint64
}

var _ camlight.Host = (*glfwHost)(nil)

var buttonKeys = map[camlight.Button][2]glfw.Key{
	camlight.ButtonUp:    {glfw.KeyUp, glfw.KeyW},
	camlight.ButtonDown:  {glfw.KeyDown, glfw.KeyS},
	camlight.ButtonLeft:  {glfw.KeyLeft, glfw.KeyA},
	camlight.ButtonRight: {glfw.KeyRight, glfw.KeyD},
}

// PollInput implements camlight.InputSource. Pointer deltas come from the
// cursor position, which is unbounded while the cursor is disabled.
func (h *glfwHost) PollInput() {
	glfw.PollEvents()
	x, y := h.win.GetCursorPos()
	if h.havePos {
		h.dx, h.dy = int(x-h.lastX), int(y-h.lastY)
	}
	h.lastX, h.lastY, h.havePos = x, y, true
}

// PointerDelta implements camlight.InputSource.
func (h *glfwHost) PointerDelta() (dx, dy int) { return h.dx, h.dy }

// Pressed implements camlight.InputSource.
func (h *glfwHost) Pressed(b camlight.Button) bool {
	for _, k := range buttonKeys[b] {
		if h.win.GetKey(k) == glfw.Press {
			return true
		}
	}
	return false
}

// PresentFrame implements camlight.VideoSink.
func (h *glfwHost) PresentFrame(width, height int) {
	h.win.SwapBuffers()
	h.presented++
	if h.presented == 1 {
		h.log.Debug("camlight-host: first frame presented", "width", width, "height", height)
	}
}

// RegisterCamera implements camlight.CameraSource.
func (h *glfwHost) RegisterCamera(req camlight.CameraRequest) (camlight.CameraControl, error) {
	return h.cam.register(req)
}

// SetPixelFormat implements camlight.HWRender. Only BGRX output is offered.
func (h *glfwHost) SetPixelFormat(f gputypes.TextureFormat) bool {
	return f == gputypes.TextureFormatBGRA8Unorm
}

// RequestHWRender implements camlight.HWRender. The window carries a desktop
// OpenGL context with a depth buffer.
func (h *glfwHost) RequestHWRender(req camlight.HWRenderRequest) bool {
	return req.Context == camlight.ContextOpenGL
}

// CurrentFramebuffer implements camlight.HWRender.
func (h *glfwHost) CurrentFramebuffer() uint32 { return 0 }

// ProcAddress implements camlight.HWRender.
func (h *glfwHost) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

// HasExtension implements camlight.HWRender.
func (h *glfwHost) HasExtension(name string) bool {
	return glfw.ExtensionSupported(name)
}
