// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ingest receives camera frames from the host and keeps the camera
// texture current.
//
// Two delivery modes exist. In texture mode the host hands over a GL texture
// it already filled; the ingestor only records it. In raw mode the host hands
// over a CPU buffer whose rows may be padded; the ingestor owns the texture
// and uploads into it, using a strided upload when the driver supports
// UNPACK_ROW_LENGTH and repacking into a conversion buffer otherwise.
//
// Camera callbacks may arrive on a different goroutine than the video tick.
// A single mutex serializes uploads, context resets and the compositor's
// bind section (see [Ingestor.Bind]).
package ingest

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"

	"github.com/gogpu/camlight/gles"
	"github.com/gogpu/camlight/internal/logx"
	"github.com/gogpu/camlight/internal/pixel"
)

var (
	// ErrMalformedFrame is returned for raw frames with impossible geometry.
	ErrMalformedFrame = errors.New("ingest: malformed raw frame")

	// ErrUnsupportedTarget is returned for texture frames on a target the
	// scene program cannot sample.
	ErrUnsupportedTarget = errors.New("ingest: unsupported texture target")

	// ErrNoContext is returned when a raw frame arrives before the first
	// context reset.
	ErrNoContext = errors.New("ingest: no GL context")

	// ErrReleased is returned for frames that arrive after Release.
	ErrReleased = errors.New("ingest: ingestor released")
)

// Config configures an Ingestor.
type Config struct {
	// StridedUpload reports driver support for UNPACK_ROW_LENGTH.
	StridedUpload bool

	// Format is the upload triple for 32-bit host pixels.
	Format gles.UploadFormat

	// ExternalTextures allows TEXTURE_EXTERNAL_OES texture frames.
	ExternalTextures bool

	Logger *slog.Logger
}

// Stats counts ingest activity since creation.
type Stats struct {
	TextureFrames uint64
	RawFrames     uint64
	Rejected      uint64

	// Upload path taken by accepted raw frames.
	StridedUploads uint64
	DirectUploads  uint64
	PackedUploads  uint64

	// TextureAllocs counts texture creations and re-specifications.
	TextureAllocs uint64
	// BufferAllocs counts conversion buffer allocations.
	BufferAllocs uint64
}

// Ingestor owns the camera texture handle and the conversion buffer.
type Ingestor struct {
	cfg Config
	log *slog.Logger

	mu      sync.Mutex
	gl      gles.Context
	texture uint32
	target  uint32
	width   int
	height  int
	owned   bool // texture was generated here, not handed over by the host
	closed  bool
	buf     []byte
	stats   Stats
}

// New returns an Ingestor with no context and no texture.
func New(cfg Config) *Ingestor {
	l := logx.OrNop(cfg.Logger)
	return &Ingestor{
		cfg:    cfg,
		log:    l,
		target: gles.TEXTURE_2D,
	}
}

// ContextReset adopts a freshly resolved context and forgets the texture.
// The old handle is not deleted: the context that owned it is gone.
// The conversion buffer is CPU memory and survives.
func (in *Ingestor) ContextReset(gl gles.Context, _ gles.Program) {
	in.mu.Lock()
	defer in.mu.Unlock()

	in.gl = gl
	in.texture = gles.NoTexture
	in.target = gles.TEXTURE_2D
	in.width, in.height = 0, 0
	in.owned = false
}

// Texture returns the current texture handle and target. The handle is
// gles.NoTexture until a frame arrives after the last context reset.
func (in *Ingestor) Texture() (texture, target uint32) {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.texture, in.target
}

// Bind runs fn with the current texture while holding the ingest lock, so
// the texture cannot be re-specified while fn binds and samples it.
func (in *Ingestor) Bind(fn func(texture, target uint32)) {
	in.mu.Lock()
	defer in.mu.Unlock()
	fn(in.texture, in.target)
}

// TextureFrame records a host-filled texture. Repeated calls with the same
// handle are no-ops.
func (in *Ingestor) TextureFrame(texture, target uint32) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return ErrReleased
	}

	switch {
	case target == gles.TEXTURE_2D:
	case target == gles.TEXTURE_EXTERNAL_OES && in.cfg.ExternalTextures:
	default:
		in.stats.Rejected++
		return fmt.Errorf("%w: %#x", ErrUnsupportedTarget, target)
	}

	in.stats.TextureFrames++
	in.texture = texture
	in.target = target
	in.owned = false
	return nil
}

// RawFrame uploads a strided 32-bit frame into the camera texture, creating
// the texture on first use after a context reset.
func (in *Ingestor) RawFrame(pixels []byte, width, height, pitch int) error {
	in.mu.Lock()
	defer in.mu.Unlock()

	if in.closed {
		return ErrReleased
	}
	if err := checkFrame(len(pixels), width, height, pitch); err != nil {
		in.stats.Rejected++
		return fmt.Errorf("%w: %w", ErrMalformedFrame, err)
	}
	if in.gl == nil {
		in.stats.Rejected++
		return ErrNoContext
	}
	gl := in.gl
	f := in.cfg.Format

	// UNPACK_ROW_LENGTH counts pixels, so a pitch that is not a whole
	// number of pixels takes the repack path.
	strided := in.cfg.StridedUpload && pitch%pixel.BytesPerPixel == 0
	in.ensureTexture(width, height, !strided)

	rowBytes := width * pixel.BytesPerPixel
	switch {
	case strided:
		gl.PixelStorei(gles.UNPACK_ROW_LENGTH, int32(pitch/pixel.BytesPerPixel))
		gl.TexSubImage2D(gles.TEXTURE_2D, int32(width), int32(height), f.Format, f.Type, pixels)
		gl.PixelStorei(gles.UNPACK_ROW_LENGTH, 0)
		in.stats.StridedUploads++

	case pitch == rowBytes:
		gl.TexSubImage2D(gles.TEXTURE_2D, int32(width), int32(height), f.Format, f.Type, pixels)
		in.stats.DirectUploads++

	default:
		n, err := pixel.PackRows(in.buf, pixels, width, height, pitch)
		if err != nil {
			gl.BindTexture(gles.TEXTURE_2D, gles.NoTexture)
			in.stats.Rejected++
			return fmt.Errorf("%w: %w", ErrMalformedFrame, err)
		}
		gl.TexSubImage2D(gles.TEXTURE_2D, int32(width), int32(height), f.Format, f.Type, in.buf[:n])
		in.stats.PackedUploads++
	}

	gl.BindTexture(gles.TEXTURE_2D, gles.NoTexture)
	in.stats.RawFrames++
	return nil
}

// checkFrame validates raw frame geometry, including the limits of the GL
// size and row length parameters.
func checkFrame(n, width, height, pitch int) error {
	if err := pixel.Validate(n, width, height, pitch); err != nil {
		return err
	}
	if width > math.MaxInt32 || height > math.MaxInt32 || pitch/pixel.BytesPerPixel > math.MaxInt32 {
		return fmt.Errorf("%w: %dx%d pitch %d exceeds GL limits", pixel.ErrInvalidGeometry, width, height, pitch)
	}
	return nil
}

// ensureTexture binds an owned texture of the given size, creating or
// re-specifying it as needed, and sizes the conversion buffer when the frame
// may need repacking. Caller holds in.mu.
func (in *Ingestor) ensureTexture(width, height int, repack bool) {
	gl := in.gl
	f := in.cfg.Format

	if in.texture == gles.NoTexture || !in.owned {
		in.texture = gl.GenTexture()
		in.target = gles.TEXTURE_2D
		in.owned = true
		gl.BindTexture(gles.TEXTURE_2D, in.texture)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MAG_FILTER, gles.LINEAR)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MIN_FILTER, gles.LINEAR)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_S, gles.CLAMP_TO_EDGE)
		gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_T, gles.CLAMP_TO_EDGE)
		in.width, in.height = 0, 0
		in.log.Debug("ingest: camera texture created", "texture", in.texture)
	} else {
		gl.BindTexture(gles.TEXTURE_2D, in.texture)
	}

	if in.width != width || in.height != height {
		gl.TexImage2D(gles.TEXTURE_2D, f.Internal, int32(width), int32(height), f.Format, f.Type)
		in.width, in.height = width, height
		in.stats.TextureAllocs++
		in.log.Debug("ingest: camera texture storage", "width", width, "height", height)
	}

	if repack {
		if need := pixel.PackedSize(width, height); len(in.buf) != need {
			in.buf = make([]byte, need)
			in.stats.BufferAllocs++
			in.log.Debug("ingest: conversion buffer allocated", "bytes", need)
		}
	}
}

// BufferLen reports the conversion buffer size; zero when none is held.
func (in *Ingestor) BufferLen() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.buf)
}

// Stats returns a snapshot of the ingest counters.
func (in *Ingestor) Stats() Stats {
	in.mu.Lock()
	defer in.mu.Unlock()
	return in.stats
}

// Release frees the conversion buffer. Called when the session unloads.
// Frames delivered afterwards return ErrReleased.
func (in *Ingestor) Release() {
	in.mu.Lock()
	defer in.mu.Unlock()
	in.buf = nil
	in.closed = true
}
