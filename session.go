// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/camlight/gles"
	"github.com/gogpu/camlight/internal/compose"
	"github.com/gogpu/camlight/internal/ingest"
	"github.com/gogpu/camlight/internal/lifecycle"
	"github.com/gogpu/camlight/internal/orbit"
)

// Session is one loaded camlight instance.
//
// Load, Unload, ContextReset and Run are called from the host's video
// thread. Camera callbacks may arrive from any goroutine.
type Session struct {
	host Host
	opts options
	log  *slog.Logger

	rt atomic.Pointer[loadState]

	// Video thread only.
	width, height int
	orbit         orbit.Controller
}

// loadState holds everything that exists only between Load and Unload.
type loadState struct {
	caps   Capabilities
	camera CameraControl
	ing    *ingest.Ingestor
	lc     *lifecycle.Lifecycle
	comp   *compose.Compositor
}

// NewSession returns an unloaded session bound to host.
func NewSession(host Host, opts ...Option) *Session {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	l := o.logger
	if l == nil {
		l = Logger()
	}
	return &Session{
		host:   host,
		opts:   o,
		log:    l,
		width:  BaseWidth,
		height: BaseHeight,
	}
}

var _ CameraSink = (*Session)(nil)

// Load reads variables and negotiates capabilities with the host. A failed
// Load returns an error matching ErrLoadFailed and the specific cause, and
// leaves the session unloaded. Loading a loaded session is a no-op.
func (s *Session) Load() error {
	if s.rt.Load() != nil {
		return nil
	}

	s.updateVariables(true)

	cameraType, _ := s.host.Variable(VarCameraType)
	delivery := ParseDeliveryMode(cameraType)

	caps, cam, err := negotiate(s.host, s.opts, delivery, s)
	if err != nil {
		s.log.Error("camlight: load failed", "err", err)
		return fmt.Errorf("%w: %w", ErrLoadFailed, err)
	}

	es := caps.Context == ContextOpenGLES2
	external := s.opts.externalTextures && caps.Delivery == DeliveryTexture
	upload := gles.DesktopUpload
	if es {
		upload = gles.ESUpload
	}

	ing := ingest.New(ingest.Config{
		StridedUpload:    caps.SupportsStridedUpload,
		Format:           upload,
		ExternalTextures: external,
		Logger:           s.log,
	})
	lc := lifecycle.New(lifecycle.Config{
		Loader:  lifecycle.Loader(s.opts.loader),
		Variant: lifecycle.Variant{ES: es, External: external},
		Logger:  s.log,
	}, ing, lifecycle.ListenerFunc(s.opts.scene.ContextReset))

	s.orbit.Reset()
	s.rt.Store(&loadState{
		caps:   caps,
		camera: cam,
		ing:    ing,
		lc:     lc,
		comp:   compose.New(s.log),
	})

	s.log.Info("camlight: loaded",
		"context", caps.Context.String(),
		"delivery", caps.Delivery.String(),
		"strided", caps.SupportsStridedUpload,
		"width", s.width,
		"height", s.height)
	return nil
}

// Unload stops the camera and frees the conversion buffer. It is safe to
// call more than once.
func (s *Session) Unload() {
	rt := s.rt.Swap(nil)
	if rt == nil {
		return
	}
	rt.ing.Release()
	if rt.camera != nil {
		rt.camera.Stop()
	}
	s.log.Info("camlight: unloaded")
}

// ContextReset must be called by the host whenever a GL context was created
// or recreated. It rebuilds every GL resource; see package lifecycle.
func (s *Session) ContextReset() error {
	rt := s.rt.Load()
	if rt == nil {
		return ErrNotLoaded
	}
	if err := rt.lc.OnContextReady(s.host.ProcAddress); err != nil {
		s.log.Error("camlight: context reset failed", "err", err)
		return err
	}
	return nil
}

// Run renders one video tick and presents it.
func (s *Session) Run() error {
	rt := s.rt.Load()
	if rt == nil {
		return ErrNotLoaded
	}

	if s.host.VariablesUpdated() {
		s.updateVariables(false)
	}

	view := s.updateInput()

	gl := rt.lc.Context()
	if gl == nil {
		return ErrNoContext
	}
	prog := rt.lc.Program()
	dst := compose.Target{
		Framebuffer: s.host.CurrentFramebuffer(),
		Width:       s.width,
		Height:      s.height,
	}
	rt.comp.Render(gl, prog, dst, view, rt.ing, func() {
		s.opts.scene.Draw(gl, prog, cameraView(view))
	})

	s.host.PresentFrame(s.width, s.height)
	return nil
}

func (s *Session) updateInput() orbit.View {
	s.host.PollInput()
	dx, dy := s.host.PointerDelta()
	return s.orbit.Update(orbit.Input{
		DX:       dx,
		DY:       dy,
		Forward:  s.host.Pressed(ButtonUp),
		Backward: s.host.Pressed(ButtonDown),
		Left:     s.host.Pressed(ButtonLeft),
		Right:    s.host.Pressed(ButtonRight),
	})
}

func (s *Session) updateVariables(first bool) {
	if v, ok := s.host.Variable(VarResolution); ok {
		if w, h, ok := ParseResolution(v, s.opts.contextType); ok {
			s.width, s.height = w, h
			s.log.Info("camlight: resolution", "width", w, "height", h)
		} else {
			s.log.Warn("camlight: ignoring resolution", "value", v, "width", s.width, "height", s.height)
		}
	}
	s.opts.scene.UpdateVariables(s.host, first)
}

// TextureFrame implements CameraSink for texture delivery.
func (s *Session) TextureFrame(texture, target uint32, _ [9]float32) error {
	rt := s.rt.Load()
	if rt == nil {
		return ErrNotLoaded
	}
	if rt.caps.Delivery != DeliveryTexture {
		return fmt.Errorf("%w: texture frame in %s mode", ErrDeliveryMode, rt.caps.Delivery)
	}
	if err := rt.ing.TextureFrame(texture, target); err != nil {
		if errors.Is(err, ingest.ErrReleased) {
			return ErrNotLoaded
		}
		s.log.Warn("camlight: texture frame rejected", "err", err)
		return err
	}
	return nil
}

// RawFrame implements CameraSink for raw framebuffer delivery.
func (s *Session) RawFrame(pixels []byte, width, height, pitch int) error {
	rt := s.rt.Load()
	if rt == nil {
		return ErrNotLoaded
	}
	if rt.caps.Delivery != DeliveryRaw {
		return fmt.Errorf("%w: raw frame in %s mode", ErrDeliveryMode, rt.caps.Delivery)
	}
	if err := rt.ing.RawFrame(pixels, width, height, pitch); err != nil {
		// Unload may run between loading rt and the upload.
		if errors.Is(err, ingest.ErrReleased) {
			return ErrNotLoaded
		}
		s.log.Warn("camlight: raw frame rejected",
			"width", width, "height", height, "pitch", pitch, "err", err)
		return err
	}
	return nil
}

// CameraInitialized implements CameraSink by starting the camera.
func (s *Session) CameraInitialized() {
	rt := s.rt.Load()
	if rt == nil || rt.camera == nil {
		return
	}
	if err := rt.camera.Start(); err != nil {
		s.log.Warn("camlight: camera start failed", "err", err)
		return
	}
	s.log.Info("camlight: camera started")
}

// CameraDeinitialized implements CameraSink.
func (s *Session) CameraDeinitialized() {
	s.log.Info("camlight: camera deinitialized")
}

// Loaded reports whether Load succeeded and Unload was not called since.
func (s *Session) Loaded() bool { return s.rt.Load() != nil }

// Ready reports whether a GL context has been set up.
func (s *Session) Ready() bool {
	rt := s.rt.Load()
	return rt != nil && rt.lc.State() == lifecycle.Ready
}

// Size returns the output resolution.
func (s *Session) Size() (width, height int) { return s.width, s.height }

// Capabilities returns the negotiated capabilities. ok is false when the
// session is not loaded.
func (s *Session) Capabilities() (caps Capabilities, ok bool) {
	rt := s.rt.Load()
	if rt == nil {
		return Capabilities{}, false
	}
	return rt.caps, true
}

// ProgramValid reports whether the scene program of the current context
// compiled and linked. It is false before the first context reset.
func (s *Session) ProgramValid() bool {
	rt := s.rt.Load()
	return rt != nil && rt.lc.Program().Valid
}

// CameraTexture returns the camera texture handle and target. The handle is
// gles.NoTexture until a camera frame arrives after the last context reset.
func (s *Session) CameraTexture() (texture, target uint32) {
	rt := s.rt.Load()
	if rt == nil {
		return gles.NoTexture, gles.TEXTURE_2D
	}
	return rt.ing.Texture()
}

// Camera returns the current orbit camera.
func (s *Session) Camera() CameraView {
	return cameraView(s.orbit.View())
}

// ConversionBufferLen reports the size of the raw-frame conversion buffer,
// zero when none is held.
func (s *Session) ConversionBufferLen() int {
	rt := s.rt.Load()
	if rt == nil {
		return 0
	}
	return rt.ing.BufferLen()
}
