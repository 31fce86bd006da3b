// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package camlight renders a 3D scene lit by a live camera feed inside a
// host-driven real-time loop.
//
// # Overview
//
// The host owns the process, the window and the GL context. camlight is
// invoked once per video tick ([Session.Run]) and once per camera frame
// ([Session.TextureFrame] or [Session.RawFrame]). Between those calls it
// keeps the scene program, the camera texture and an orbit camera current.
//
// # Quick Start
//
//	s := camlight.NewSession(host,
//	    camlight.WithGLLoader(glbind.Load),
//	    camlight.WithSceneRenderer(scene),
//	)
//	if err := s.Load(); err != nil {
//	    return err
//	}
//	defer s.Unload()
//
//	// host: after the GL context is created or recreated
//	s.ContextReset()
//
//	// host: once per video tick
//	s.Run()
//
// # Host ports
//
// The host is reached only through small interfaces: [VideoSink],
// [InputSource], [Variables], [CameraSource] and [HWRender]. A [Host]
// combines them. Tests substitute fakes for every port.
//
// # Camera delivery
//
// The camera delivers frames in exactly one mode, chosen at load from the
// "camera-type" variable:
//   - texture: the host fills a GL texture and passes its handle
//   - raw framebuffer: the host passes 32-bit BGRX pixels whose rows may be
//     padded; camlight uploads them, using UNPACK_ROW_LENGTH when the driver
//     supports it and repacking rows otherwise
//
// # Context resets
//
// The GL context may be destroyed and recreated at any time between ticks.
// Every reset rebuilds the program from scratch and forgets the camera
// texture; it is recreated on the next camera frame.
//
// # Logging
//
// camlight is silent by default. See [SetLogger] and [WithLogger].
package camlight

// Library identification reported to hosts.
const (
	LibraryName    = "camlight"
	LibraryVersion = "v1"
)
