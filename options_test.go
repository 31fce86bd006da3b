// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"log/slog"
	"testing"
)

func TestDefaultOptions(t *testing.T) {
	o := defaultOptions()
	if o.contextType != ContextOpenGL {
		t.Errorf("contextType = %v, want OpenGL", o.contextType)
	}
	if _, ok := o.scene.(nopScene); !ok {
		t.Errorf("scene = %T, want nopScene", o.scene)
	}
	if o.loader != nil || o.externalTextures || o.logger != nil {
		t.Errorf("unexpected non-zero defaults: %+v", o)
	}
}

func TestOptionsApply(t *testing.T) {
	h := newFakeHost()
	scene := &recordingScene{}
	l := slog.New(slog.DiscardHandler)

	s := NewSession(h,
		WithLogger(l),
		WithSceneRenderer(scene),
		WithContextType(ContextOpenGLES2),
		WithGLLoader(h.load),
		WithExternalTextures(true),
	)
	if s.log != l {
		t.Error("WithLogger not applied")
	}
	if s.opts.scene != SceneRenderer(scene) {
		t.Error("WithSceneRenderer not applied")
	}
	if s.opts.contextType != ContextOpenGLES2 || !s.opts.externalTextures || s.opts.loader == nil {
		t.Errorf("options = %+v", s.opts)
	}
}

func TestWithSceneRendererNilKeepsDefault(t *testing.T) {
	s := NewSession(newFakeHost(), WithSceneRenderer(nil))
	if _, ok := s.opts.scene.(nopScene); !ok {
		t.Errorf("scene = %T, want nopScene", s.opts.scene)
	}
}
