// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"strings"
	"testing"
)

func TestParseResolution(t *testing.T) {
	tests := []struct {
		value         string
		ctx           ContextType
		width, height int
		ok            bool
	}{
		{"640x480", ContextOpenGL, 640, 480, true},
		{"320x240", ContextOpenGL, 320, 240, true},
		{"1920x1600", ContextOpenGL, 1920, 1600, true},
		{" 800x600 ", ContextOpenGL, 800, 600, true},
		{"1920x1601", ContextOpenGL, 0, 0, false},
		{"1280x720", ContextOpenGLES2, 0, 0, false},
		{"1024x1024", ContextOpenGLES2, 1024, 1024, true},
		{"bogus", ContextOpenGL, 0, 0, false},
		{"640", ContextOpenGL, 0, 0, false},
		{"640x", ContextOpenGL, 0, 0, false},
		{"x480", ContextOpenGL, 0, 0, false},
		{"0x480", ContextOpenGL, 0, 0, false},
		{"-640x480", ContextOpenGL, 0, 0, false},
		{"640x480x2", ContextOpenGL, 0, 0, false},
		{"", ContextOpenGL, 0, 0, false},
	}
	for _, tt := range tests {
		w, h, ok := ParseResolution(tt.value, tt.ctx)
		if w != tt.width || h != tt.height || ok != tt.ok {
			t.Errorf("ParseResolution(%q, %v) = (%d, %d, %v), want (%d, %d, %v)",
				tt.value, tt.ctx, w, h, ok, tt.width, tt.height, tt.ok)
		}
	}
}

func TestParseDeliveryMode(t *testing.T) {
	tests := []struct {
		value string
		want  DeliveryMode
	}{
		{"texture", DeliveryTexture},
		{"", DeliveryTexture},
		{"raw framebuffer", DeliveryRaw},
		{"anything else", DeliveryRaw},
	}
	for _, tt := range tests {
		if got := ParseDeliveryMode(tt.value); got != tt.want {
			t.Errorf("ParseDeliveryMode(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDeclaredVariables(t *testing.T) {
	for _, ctx := range []ContextType{ContextOpenGL, ContextOpenGLES2} {
		decls := DeclaredVariables(ctx)
		keys := map[string]VariableDecl{}
		for _, d := range decls {
			keys[d.Key] = d
		}
		for _, k := range []string{VarResolution, VarCubeSize, VarCubeStride, VarCameraType} {
			if _, ok := keys[k]; !ok {
				t.Errorf("%v: variable %q not declared", ctx, k)
			}
		}
		for _, v := range keys[VarResolution].Values {
			if _, _, ok := ParseResolution(v, ctx); !ok {
				t.Errorf("%v: declared resolution %q does not parse", ctx, v)
			}
		}
		if got := ParseDeliveryMode(keys[VarCameraType].Default()); got != DeliveryTexture {
			t.Errorf("%v: default camera type = %v, want texture", ctx, got)
		}
	}

	if d := DeclaredVariables(ContextOpenGLES2)[0].Default(); d != "800x600" {
		t.Errorf("GLES default resolution = %q, want 800x600", d)
	}
	s := DeclaredVariables(ContextOpenGL)[3].String()
	if s != "Camera FB Type; texture|raw framebuffer" {
		t.Errorf("VariableDecl.String() = %q", s)
	}
	if (VariableDecl{}).Default() != "" {
		t.Error("empty declaration should have no default")
	}
}

func TestAVInfo(t *testing.T) {
	gl := GetAVInfo(ContextOpenGL)
	if gl.FPS != 60 || gl.BaseWidth != 320 || gl.BaseHeight != 240 || gl.MaxWidth != 1920 || gl.MaxHeight != 1600 {
		t.Errorf("GetAVInfo(OpenGL) = %+v", gl)
	}
	es := GetAVInfo(ContextOpenGLES2)
	if es.MaxWidth != 1024 || es.MaxHeight != 1024 {
		t.Errorf("GetAVInfo(GLES2) max = %dx%d, want 1024x1024", es.MaxWidth, es.MaxHeight)
	}
	if info := GetSystemInfo(); info.LibraryName != LibraryName || info.NeedFullPath {
		t.Errorf("GetSystemInfo() = %+v", info)
	}
}

type mapVars map[string]string

func (m mapVars) Variable(k string) (string, bool) {
	v, ok := m[k]
	return v, ok
}

func (m mapVars) VariablesUpdated() bool { return false }

func TestParseCubeGrid(t *testing.T) {
	tests := []struct {
		name string
		vars mapVars
		want CubeGrid
	}{
		{"unset", mapVars{}, DefaultCubeGrid},
		{"both", mapVars{VarCubeSize: "32", VarCubeStride: "5.0"}, CubeGrid{Size: 32, Stride: 5}},
		{"bad size", mapVars{VarCubeSize: "many", VarCubeStride: "2.0"}, CubeGrid{Size: 4, Stride: 2}},
		{"zero stride", mapVars{VarCubeStride: "0"}, DefaultCubeGrid},
	}
	for _, tt := range tests {
		if got := ParseCubeGrid(tt.vars, DefaultCubeGrid); got != tt.want {
			t.Errorf("%s: ParseCubeGrid() = %+v, want %+v", tt.name, got, tt.want)
		}
	}
}

func TestEnumStrings(t *testing.T) {
	tests := []struct {
		got, want string
	}{
		{ContextOpenGL.String(), "OpenGL"},
		{ContextOpenGLES2.String(), "OpenGLES2"},
		{ContextType(9).String(), "ContextType(9)"},
		{DeliveryTexture.String(), "texture"},
		{DeliveryRaw.String(), "raw framebuffer"},
		{DeliveryMode(5).String(), "DeliveryMode(5)"},
		{ButtonLeft.String(), "left"},
		{Button(-1).String(), "unknown"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("String() = %q, want %q", tt.got, tt.want)
		}
	}
	if !strings.HasPrefix(LibraryVersion, "v") {
		t.Errorf("LibraryVersion = %q", LibraryVersion)
	}
}
