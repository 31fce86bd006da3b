// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"errors"

	"github.com/gogpu/camlight/internal/ingest"
	"github.com/gogpu/camlight/internal/lifecycle"
)

// Load errors. Load wraps one of the capability errors in ErrLoadFailed.
var (
	// ErrLoadFailed is returned by Load when the host cannot provide a
	// required capability. errors.Is also matches the specific cause.
	ErrLoadFailed = errors.New("camlight: load failed")

	// ErrPixelFormat means the host rejected 32-bit BGRX output.
	ErrPixelFormat = errors.New("camlight: XRGB8888 pixel format not supported")

	// ErrCameraUnsupported means the host has no camera interface for the
	// requested delivery mode.
	ErrCameraUnsupported = errors.New("camlight: camera interface not supported")

	// ErrHWRenderUnsupported means the host cannot provide the requested GL
	// context.
	ErrHWRenderUnsupported = errors.New("camlight: hardware render context not supported")

	// ErrBGRAUnsupported means raw framebuffer delivery was requested on
	// OpenGL ES without BGRA8888 texture support.
	ErrBGRAUnsupported = errors.New("camlight: no BGRA8888 support for raw framebuffer")
)

// Runtime errors.
var (
	// ErrNotLoaded is returned by session calls made before Load or after
	// Unload.
	ErrNotLoaded = errors.New("camlight: session not loaded")

	// ErrDeliveryMode is returned for camera frames of the mode that was not
	// negotiated at load.
	ErrDeliveryMode = errors.New("camlight: camera frame does not match delivery mode")

	// ErrNoLoader is returned by ContextReset when no GL loader was set with
	// WithGLLoader.
	ErrNoLoader = lifecycle.ErrNoLoader

	// ErrNoContext is returned when rendering or uploading before the first
	// context reset.
	ErrNoContext = ingest.ErrNoContext

	// ErrMalformedFrame is returned for raw frames with impossible geometry.
	ErrMalformedFrame = ingest.ErrMalformedFrame

	// ErrUnsupportedTarget is returned for texture frames on a target the
	// scene program cannot sample.
	ErrUnsupportedTarget = ingest.ErrUnsupportedTarget
)
