// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"
	"sync/atomic"

	"github.com/go-gl/gl/v3.3-core/gl"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/camlight"
)

var errCameraStopped = errors.New("camlight-host: camera stopped")

// imageCamera plays a still image as a camera feed, scrolling it one column
// per frame so consecutive frames differ.
type imageCamera struct {
	src     *image.RGBA
	padding int // bytes of padding appended to each raw row
	log     *slog.Logger

	sink     camlight.CameraSink
	delivery camlight.DeliveryMode
	running  atomic.Bool

	frame   []byte
	offset  int
	texture uint32
}

// loadImage decodes path, or returns a generated test card when path is empty.
func loadImage(path string) (image.Image, error) {
	if path == "" {
		return testCard(256, 192), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// testCard draws vertical color bars.
func testCard(w, h int) image.Image {
	bars := []color.RGBA{
		{255, 255, 255, 255}, {255, 255, 0, 255}, {0, 255, 255, 255}, {0, 255, 0, 255},
		{255, 0, 255, 255}, {255, 0, 0, 255}, {0, 0, 255, 255}, {16, 16, 16, 255},
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		c := bars[x*len(bars)/w]
		for y := 0; y < h; y++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// newImageCamera scales img to width x height.
func newImageCamera(img image.Image, width, height, padding int, log *slog.Logger) *imageCamera {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	return &imageCamera{src: dst, padding: padding, log: log}
}

// register binds the camera to a session sink, as the host's camera
// interface would.
func (c *imageCamera) register(req camlight.CameraRequest) (camlight.CameraControl, error) {
	if req.Sink == nil {
		return nil, errors.New("camlight-host: camera request without sink")
	}
	c.sink = req.Sink
	c.delivery = req.Delivery
	return c, nil
}

// Start implements camlight.CameraControl.
func (c *imageCamera) Start() error {
	c.running.Store(true)
	c.log.Info("camlight-host: camera started", "delivery", c.delivery.String())
	return nil
}

// Stop implements camlight.CameraControl.
func (c *imageCamera) Stop() {
	c.running.Store(false)
}

// Pitch returns the raw row stride in bytes.
func (c *imageCamera) Pitch() int {
	return c.src.Bounds().Dx()*4 + c.padding
}

// fillBGRX writes the image, rotated left by offset columns, into dst as
// BGRX rows pitch bytes apart. Padding bytes are left as they are.
func fillBGRX(dst []byte, src *image.RGBA, offset, pitch int) {
	w, h := src.Bounds().Dx(), src.Bounds().Dy()
	for y := 0; y < h; y++ {
		row := dst[y*pitch:]
		for x := 0; x < w; x++ {
			sx := (x + offset) % w
			p := src.Pix[y*src.Stride+sx*4:]
			row[x*4+0] = p[2]
			row[x*4+1] = p[1]
			row[x*4+2] = p[0]
			row[x*4+3] = 0xFF
		}
	}
}

// Tick delivers one frame. It must run on the GL thread because texture
// delivery uploads into a host-owned texture.
func (c *imageCamera) Tick() error {
	if !c.running.Load() {
		return errCameraStopped
	}
	w, h := c.src.Bounds().Dx(), c.src.Bounds().Dy()
	pitch := c.Pitch()
	if len(c.frame) != pitch*h {
		c.frame = make([]byte, pitch*h)
	}
	fillBGRX(c.frame, c.src, c.offset, pitch)
	c.offset = (c.offset + 1) % w

	switch c.delivery {
	case camlight.DeliveryRaw:
		return c.sink.RawFrame(c.frame, w, h, pitch)
	default:
		c.uploadTexture(w, h, pitch)
		return c.sink.TextureFrame(c.texture, gl.TEXTURE_2D, [9]float32{1, 0, 0, 0, 1, 0, 0, 0, 1})
	}
}

// uploadTexture fills the host-side camera texture, as a platform camera
// driver would for texture delivery.
func (c *imageCamera) uploadTexture(w, h, pitch int) {
	if c.texture == 0 {
		gl.GenTextures(1, &c.texture)
		gl.BindTexture(gl.TEXTURE_2D, c.texture)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(w), int32(h), 0, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, nil)
	}
	gl.BindTexture(gl.TEXTURE_2D, c.texture)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, int32(pitch/4))
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(w), int32(h), gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV, gl.Ptr(&c.frame[0]))
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// contextLost forgets the host texture; the context that owned it is gone.
func (c *imageCamera) contextLost() {
	c.texture = 0
}
