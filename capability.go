// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// GL extensions consulted at load.
const (
	ExtBGRA8888       = "GL_EXT_texture_format_BGRA8888"
	ExtUnpackSubimage = "GL_EXT_unpack_subimage"
)

// OutputFormat is the pixel format requested from the host: 32-bit pixels
// stored B, G, R, X in memory.
const OutputFormat = gputypes.TextureFormatBGRA8Unorm

// Capabilities is the outcome of load-time negotiation. It is fixed for the
// session.
type Capabilities struct {
	Context  ContextType
	Delivery DeliveryMode

	// SupportsStridedUpload reports UNPACK_ROW_LENGTH support. Always true
	// on desktop OpenGL.
	SupportsStridedUpload bool
}

// negotiate performs the load-time exchange with the host, in the order the
// host expects: pixel format, camera, render context, extensions. On failure
// a registered camera is stopped again so nothing outlives the failed load.
func negotiate(h Host, o options, delivery DeliveryMode, sink CameraSink) (Capabilities, CameraControl, error) {
	caps := Capabilities{Context: o.contextType, Delivery: delivery}

	if !h.SetPixelFormat(OutputFormat) {
		return caps, nil, ErrPixelFormat
	}

	cam, err := h.RegisterCamera(CameraRequest{Delivery: delivery, Sink: sink})
	if err != nil {
		return caps, nil, fmt.Errorf("%w: %s: %w", ErrCameraUnsupported, delivery, err)
	}

	if !h.RequestHWRender(HWRenderRequest{Context: o.contextType, Depth: true}) {
		cam.Stop()
		return caps, nil, fmt.Errorf("%w: %s", ErrHWRenderUnsupported, o.contextType)
	}

	if o.contextType == ContextOpenGLES2 {
		if delivery == DeliveryRaw && !h.HasExtension(ExtBGRA8888) {
			cam.Stop()
			return caps, nil, ErrBGRAUnsupported
		}
		caps.SupportsStridedUpload = h.HasExtension(ExtUnpackSubimage)
	} else {
		caps.SupportsStridedUpload = true
	}

	return caps, cam, nil
}
