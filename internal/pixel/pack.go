// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package pixel converts host camera buffers into layouts the GPU can upload.
package pixel

import (
	"errors"
	"fmt"
	"math"
)

// BytesPerPixel is the size of one 32-bit packed host pixel.
const BytesPerPixel = 4

var (
	// ErrInvalidGeometry is returned for non-positive dimensions, a pitch
	// shorter than one packed row, or a frame whose byte extent does not
	// fit in an int.
	ErrInvalidGeometry = errors.New("pixel: invalid frame geometry")

	// ErrShortSource is returned when the source cannot hold the frame.
	ErrShortSource = errors.New("pixel: source buffer too small")

	// ErrShortBuffer is returned when the destination cannot hold the
	// packed frame.
	ErrShortBuffer = errors.New("pixel: destination buffer too small")
)

// PackedSize returns the size in bytes of a packed width x height frame.
func PackedSize(width, height int) int {
	return width * height * BytesPerPixel
}

// Validate checks that a strided frame is well formed and fits in srcLen
// bytes. The last row only needs width*4 bytes; trailing padding may be
// absent. The pitch need not be a whole number of pixels.
func Validate(srcLen, width, height, pitch int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	if width > math.MaxInt/BytesPerPixel/height {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, width, height)
	}
	rowBytes := width * BytesPerPixel
	if pitch < rowBytes {
		return fmt.Errorf("%w: pitch %d for width %d", ErrInvalidGeometry, pitch, width)
	}
	if height > 1 && pitch > (math.MaxInt-rowBytes)/(height-1) {
		return fmt.Errorf("%w: pitch %d for height %d", ErrInvalidGeometry, pitch, height)
	}
	if need := pitch*(height-1) + rowBytes; srcLen < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrShortSource, srcLen, need)
	}
	return nil
}

// PackRows copies height rows of width*4 bytes from src, read with stride
// pitch, into dst as contiguous rows. Padding bytes past each source row are
// skipped. It returns the number of bytes written.
//
// When pitch equals width*4 the frame is copied in one call.
func PackRows(dst, src []byte, width, height, pitch int) (int, error) {
	if err := Validate(len(src), width, height, pitch); err != nil {
		return 0, err
	}
	rowBytes := width * BytesPerPixel
	n := rowBytes * height
	if len(dst) < n {
		return 0, fmt.Errorf("%w: have %d bytes, need %d", ErrShortBuffer, len(dst), n)
	}

	if pitch == rowBytes {
		return copy(dst[:n], src[:n]), nil
	}

	off := 0
	for y := 0; y < height; y++ {
		copy(dst[off:off+rowBytes], src[y*pitch:y*pitch+rowBytes])
		off += rowBytes
	}
	return n, nil
}
