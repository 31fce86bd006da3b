// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package camlight

import (
	"fmt"
	"strconv"
	"strings"
)

// ContextType selects the GL flavour requested from the host.
type ContextType int

const (
	// ContextOpenGL is desktop OpenGL. UNPACK_ROW_LENGTH is always present.
	ContextOpenGL ContextType = iota
	// ContextOpenGLES2 is OpenGL ES 2.0.
	ContextOpenGLES2
)

// String returns the context type name.
func (c ContextType) String() string {
	switch c {
	case ContextOpenGL:
		return "OpenGL"
	case ContextOpenGLES2:
		return "OpenGLES2"
	default:
		return fmt.Sprintf("ContextType(%d)", int(c))
	}
}

// DeliveryMode is how the camera hands frames to camlight.
type DeliveryMode int

const (
	// DeliveryTexture: the host fills a GL texture.
	DeliveryTexture DeliveryMode = iota
	// DeliveryRaw: the host passes a CPU pixel buffer.
	DeliveryRaw
)

// String returns the variable value naming the mode.
func (d DeliveryMode) String() string {
	switch d {
	case DeliveryTexture:
		return "texture"
	case DeliveryRaw:
		return "raw framebuffer"
	default:
		return fmt.Sprintf("DeliveryMode(%d)", int(d))
	}
}

// ParseDeliveryMode maps a camera-type value to a mode. "texture" selects
// texture delivery and any other value selects raw delivery. An empty value
// selects the declared default, texture.
func ParseDeliveryMode(value string) DeliveryMode {
	switch value {
	case "", "texture":
		return DeliveryTexture
	default:
		return DeliveryRaw
	}
}

// Variable keys.
const (
	VarResolution = "resolution"
	VarCubeSize   = "cube_size"
	VarCubeStride = "cube_stride"
	VarCameraType = "camera-type"
)

// Frame geometry.
const (
	BaseWidth  = 320
	BaseHeight = 240
	FPS        = 60.0
)

// MaxResolution returns the largest accepted resolution for a context type.
func MaxResolution(c ContextType) (width, height int) {
	if c == ContextOpenGLES2 {
		return 1024, 1024
	}
	return 1920, 1600
}

// ParseResolution parses "<width>x<height>". It fails for anything but two
// positive decimal integers within the context type's maximum.
func ParseResolution(value string, c ContextType) (width, height int, ok bool) {
	ws, hs, found := strings.Cut(strings.TrimSpace(value), "x")
	if !found {
		return 0, 0, false
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, false
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, false
	}
	maxW, maxH := MaxResolution(c)
	if w <= 0 || h <= 0 || w > maxW || h > maxH {
		return 0, 0, false
	}
	return w, h, true
}

// VariableDecl declares a host variable. The first value is the default.
type VariableDecl struct {
	Key         string
	Description string
	Values      []string
}

// Default returns the first declared value.
func (v VariableDecl) Default() string {
	if len(v.Values) == 0 {
		return ""
	}
	return v.Values[0]
}

// String renders the declaration as "Description; v1|v2|...".
func (v VariableDecl) String() string {
	return v.Description + "; " + strings.Join(v.Values, "|")
}

var (
	desktopResolutions = []string{
		"320x240", "360x480", "480x272", "512x384", "512x512", "640x240",
		"640x448", "640x480", "720x576", "800x600", "960x720", "1024x768",
		"1024x1024", "1280x720", "1280x960", "1600x1200", "1920x1080",
		"1920x1440", "1920x1600",
	}
	esResolutions = []string{
		"800x600", "320x240", "360x480", "480x272", "512x384", "512x512",
		"640x240", "640x448", "640x480", "720x576", "800x600", "960x720",
		"1024x768",
	}
)

// DeclaredVariables returns the variables camlight reads, for hosts that
// present them to the user.
func DeclaredVariables(c ContextType) []VariableDecl {
	res := desktopResolutions
	if c == ContextOpenGLES2 {
		res = esResolutions
	}
	return []VariableDecl{
		{Key: VarResolution, Description: "Internal resolution", Values: res},
		{Key: VarCubeSize, Description: "Cube size", Values: []string{"4", "1", "2", "4", "8", "16", "32", "64", "128"}},
		{Key: VarCubeStride, Description: "Cube stride", Values: []string{"3.0", "2.0", "3.0", "4.0", "5.0", "6.0", "7.0", "8.0"}},
		{Key: VarCameraType, Description: "Camera FB Type", Values: []string{"texture", "raw framebuffer"}},
	}
}

// AVInfo is the timing and geometry reported to the host.
type AVInfo struct {
	FPS        float64
	BaseWidth  int
	BaseHeight int
	MaxWidth   int
	MaxHeight  int
}

// GetAVInfo returns the AV info for a context type.
func GetAVInfo(c ContextType) AVInfo {
	w, h := MaxResolution(c)
	return AVInfo{
		FPS:        FPS,
		BaseWidth:  BaseWidth,
		BaseHeight: BaseHeight,
		MaxWidth:   w,
		MaxHeight:  h,
	}
}

// SystemInfo identifies camlight to the host.
type SystemInfo struct {
	LibraryName     string
	LibraryVersion  string
	NeedFullPath    bool
	ValidExtensions string
}

// GetSystemInfo returns the system info.
func GetSystemInfo() SystemInfo {
	return SystemInfo{
		LibraryName:     LibraryName,
		LibraryVersion:  LibraryVersion,
		ValidExtensions: "png|obj",
	}
}

// CubeGrid is the scene layout configured by the cube_size and cube_stride
// variables.
type CubeGrid struct {
	Size   int
	Stride float32
}

// DefaultCubeGrid is the grid used when the variables are unset.
var DefaultCubeGrid = CubeGrid{Size: 4, Stride: 3.0}

// ParseCubeGrid reads the grid variables, keeping fields of prev whose
// variable is missing or invalid.
func ParseCubeGrid(vars Variables, prev CubeGrid) CubeGrid {
	g := prev
	if v, ok := vars.Variable(VarCubeSize); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil && n > 0 {
			g.Size = n
		}
	}
	if v, ok := vars.Variable(VarCubeStride); ok {
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 32); err == nil && f > 0 {
			g.Stride = float32(f)
		}
	}
	return g
}
