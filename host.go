// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"unsafe"

	"github.com/gogpu/gputypes"
)

// VideoSink receives finished frames. Frames are GPU-resident: the host reads
// them from the framebuffer it handed out, no CPU pixels are passed.
type VideoSink interface {
	PresentFrame(width, height int)
}

// Button is a directional input.
type Button int

// Directional buttons.
const (
	ButtonUp Button = iota
	ButtonDown
	ButtonLeft
	ButtonRight
)

// String returns the button name.
func (b Button) String() string {
	switch b {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	default:
		return "unknown"
	}
}

// InputSource provides polled input. PollInput is called once per tick
// before the state queries.
type InputSource interface {
	PollInput()
	// PointerDelta returns relative pointer motion since the last poll.
	PointerDelta() (dx, dy int)
	Pressed(b Button) bool
}

// Variables provides host configuration values.
type Variables interface {
	// Variable returns the current value of key.
	Variable(key string) (string, bool)
	// VariablesUpdated reports whether any value changed since the last call.
	VariablesUpdated() bool
}

// CameraSink receives camera notifications from the host. A Session
// implements it.
type CameraSink interface {
	// TextureFrame hands over a host-filled texture. affine is the host's
	// texture coordinate transform; camlight samples untransformed.
	TextureFrame(texture, target uint32, affine [9]float32) error
	// RawFrame hands over 32-bit BGRX pixels with rows pitch bytes apart.
	RawFrame(pixels []byte, width, height, pitch int) error
	// CameraInitialized is called once the camera driver is ready.
	CameraInitialized()
	// CameraDeinitialized is called when the camera driver shuts down.
	CameraDeinitialized()
}

// CameraRequest describes the camera interface camlight needs.
type CameraRequest struct {
	Delivery DeliveryMode
	Sink     CameraSink
}

// CameraControl drives a registered camera.
type CameraControl interface {
	Start() error
	Stop()
}

// CameraSource registers camera interfaces.
type CameraSource interface {
	// RegisterCamera returns an error when the host cannot deliver frames in
	// the requested mode.
	RegisterCamera(req CameraRequest) (CameraControl, error)
}

// HWRenderRequest describes the GL context camlight needs.
type HWRenderRequest struct {
	Context ContextType
	Depth   bool
}

// HWRender negotiates the hardware render context and exposes it per tick.
type HWRender interface {
	// SetPixelFormat reports whether the host accepts format for output.
	SetPixelFormat(format gputypes.TextureFormat) bool
	// RequestHWRender reports whether the host can provide the context.
	RequestHWRender(req HWRenderRequest) bool
	// CurrentFramebuffer returns the framebuffer to render into this tick.
	CurrentFramebuffer() uint32
	// ProcAddress resolves GL entry points of the current context.
	ProcAddress(name string) unsafe.Pointer
	// HasExtension reports whether the context advertises a GL extension.
	HasExtension(name string) bool
}

// Host is everything a Session needs from its host.
type Host interface {
	VideoSink
	InputSource
	Variables
	CameraSource
	HWRender
}
