// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"log/slog"

	"github.com/gogpu/camlight/gles"
)

// GLLoader resolves a GL function table from the host's proc-address
// function. gles/glbind provides go-gl implementations: glbind.Load for
// ContextOpenGL and glbind.LoadES for ContextOpenGLES2.
type GLLoader func(gles.ProcAddressFunc) (gles.Context, error)

// Option configures a Session during creation.
//
// Example:
//
//	s := camlight.NewSession(host,
//	    camlight.WithGLLoader(glbind.LoadES),
//	    camlight.WithContextType(camlight.ContextOpenGLES2),
//	)
type Option func(*options)

// options holds optional configuration for Session creation.
type options struct {
	logger           *slog.Logger
	scene            SceneRenderer
	contextType      ContextType
	loader           GLLoader
	externalTextures bool
}

// defaultOptions returns the default session options.
func defaultOptions() options {
	return options{
		logger:      nil, // package logger at construction time
		scene:       nopScene{},
		contextType: ContextOpenGL,
	}
}

// WithLogger sets the session logger, overriding the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithSceneRenderer sets the collaborator that owns scene geometry and
// submits draws each tick. Without it, frames contain only the clear color.
func WithSceneRenderer(r SceneRenderer) Option {
	return func(o *options) {
		if r != nil {
			o.scene = r
		}
	}
}

// WithContextType selects desktop OpenGL (the default) or OpenGL ES 2. Pair
// ContextOpenGLES2 with an ES loader such as glbind.LoadES.
func WithContextType(c ContextType) Option {
	return func(o *options) {
		o.contextType = c
	}
}

// WithGLLoader sets the function table loader used on every context reset.
// It is required before the first ContextReset.
func WithGLLoader(l GLLoader) Option {
	return func(o *options) {
		o.loader = l
	}
}

// WithExternalTextures accepts TEXTURE_EXTERNAL_OES camera textures and
// compiles the scene program with an external sampler. Only meaningful with
// texture delivery on OpenGL ES.
func WithExternalTextures(enabled bool) Option {
	return func(o *options) {
		o.externalTextures = enabled
	}
}
