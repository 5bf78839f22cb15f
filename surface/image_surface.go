// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// MaxDimension is the largest supported surface width or height.
const MaxDimension = 32767

// Surface errors.
var (
	// ErrInvalidSize is returned for zero, negative or oversized dimensions.
	ErrInvalidSize = errors.New("surface: invalid surface size")

	// ErrAllocationFailed is returned when the backing buffer cannot be allocated.
	ErrAllocationFailed = errors.New("surface: buffer allocation failed")

	// ErrFrozen is returned when freezing a surface that was already frozen.
	ErrFrozen = errors.New("surface: surface is frozen")
)

// ImageSurface is a mutable premultiplied RGBA surface.
//
// An ImageSurface is exclusively owned by whoever created it and is not safe
// for concurrent use. Once Freeze is called the buffer moves into the
// returned SharedImageSurface and the ImageSurface becomes inert.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface allocates a transparent surface of the given size.
func NewImageSurface(width, height int) (*ImageSurface, error) {
	if err := checkSize(width, height); err != nil {
		return nil, err
	}
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// NewImageSurfaceFromRGBA adopts img as the surface buffer. Bytes are stored
// as given, without premultiplication. An image whose origin is not (0, 0) is
// copied; otherwise the caller must not use img afterwards.
func NewImageSurfaceFromRGBA(img *image.RGBA) *ImageSurface {
	if img.Rect.Min != (image.Point{}) {
		shifted := image.NewRGBA(image.Rect(0, 0, img.Rect.Dx(), img.Rect.Dy()))
		draw.Draw(shifted, shifted.Rect, img, img.Rect.Min, draw.Src)
		img = shifted
	}
	return &ImageSurface{img: img}
}

// checkSize validates surface dimensions before allocation.
func checkSize(width, height int) error {
	if width <= 0 || height <= 0 || width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if uint64(width)*uint64(height)*4 > uint64(math.MaxInt) {
		return fmt.Errorf("%w: %dx%d", ErrAllocationFailed, width, height)
	}
	return nil
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dx()
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	if s.img == nil {
		return 0
	}
	return s.img.Rect.Dy()
}

// Stride returns the number of bytes between vertically adjacent pixels.
func (s *ImageSurface) Stride() int {
	if s.img == nil {
		return 0
	}
	return s.img.Stride
}

// Bounds returns the surface rectangle, anchored at the origin.
func (s *ImageSurface) Bounds() image.Rectangle {
	if s.img == nil {
		return image.Rectangle{}
	}
	return s.img.Rect
}

// IsFrozen reports whether Freeze has been called.
func (s *ImageSurface) IsFrozen() bool {
	return s.img == nil
}

// Image returns the backing image.
// This is a direct reference, not a copy, and is nil after Freeze.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Pixel returns the pixel at (x, y).
// Returns a transparent pixel for coordinates outside the surface.
func (s *ImageSurface) Pixel(x, y int) Pixel {
	if s.img == nil || !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return Pixel{}
	}
	i := s.img.PixOffset(x, y)
	p := s.img.Pix[i : i+4 : i+4]
	return Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// SetPixel stores a premultiplied pixel at (x, y).
// Coordinates outside the surface are ignored.
func (s *ImageSurface) SetPixel(x, y int, p Pixel) {
	if s.img == nil || !(image.Point{X: x, Y: y}).In(s.img.Rect) {
		return
	}
	i := s.img.PixOffset(x, y)
	d := s.img.Pix[i : i+4 : i+4]
	d[0], d[1], d[2], d[3] = p.R, p.G, p.B, p.A
}

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c color.Color) {
	if s.img == nil {
		return
	}
	draw.Draw(s.img, s.img.Rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// Fill composites src over the surface through a coverage mask.
// src is sampled in surface coordinates. A nil coverage means full coverage.
func (s *ImageSurface) Fill(src image.Image, coverage *image.Alpha) {
	if s.img == nil || src == nil {
		return
	}
	if coverage == nil {
		draw.Draw(s.img, s.img.Rect, src, image.Point{}, draw.Over)
		return
	}
	r := coverage.Rect.Intersect(s.img.Rect)
	draw.DrawMask(s.img, r, src, r.Min, coverage, r.Min, draw.Over)
}

// Composite draws layer over the surface through a coverage mask.
// Both surfaces share the same origin. A nil coverage means full coverage.
func (s *ImageSurface) Composite(layer *ImageSurface, coverage *image.Alpha) {
	if layer == nil || layer.img == nil {
		return
	}
	s.Fill(layer.img, coverage)
}

// Freeze moves the buffer into an immutable SharedImageSurface tagged with
// the given surface type. The ImageSurface cannot be modified afterwards.
func (s *ImageSurface) Freeze(t SurfaceType) (*SharedImageSurface, error) {
	if s.img == nil {
		return nil, ErrFrozen
	}
	img := s.img
	s.img = nil
	return &SharedImageSurface{
		data:        img.Pix,
		width:       img.Rect.Dx(),
		height:      img.Rect.Dy(),
		stride:      img.Stride,
		surfaceType: t,
	}, nil
}
