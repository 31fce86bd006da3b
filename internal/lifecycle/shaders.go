// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package lifecycle

import (
	_ "embed"
	"strings"
)

// Embedded GLSL sources for the scene program.

//go:embed shaders/scene.vert
var vertexShaderSource string

//go:embed shaders/scene.frag
var fragmentShaderSource string

const (
	esPrecision       = "precision mediump float;\n"
	externalExtension = "#extension GL_OES_EGL_image_external : require\n"
)

// Variant selects the shader dialect for the current context.
type Variant struct {
	// ES adds the default float precision required by GLSL ES fragment shaders.
	ES bool
	// External samples uTexture as samplerExternalOES.
	External bool
}

// Sources returns the vertex and fragment source for a variant.
func Sources(v Variant) (vertex, fragment string) {
	var b strings.Builder
	if v.External {
		b.WriteString(externalExtension)
	}
	if v.ES {
		b.WriteString(esPrecision)
	}
	frag := fragmentShaderSource
	if v.External {
		frag = strings.Replace(frag, "uniform sampler2D uTexture;", "uniform samplerExternalOES uTexture;", 1)
	}
	b.WriteString(frag)
	return vertexShaderSource, b.String()
}
