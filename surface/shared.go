// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"iter"

	"golang.org/x/image/draw"
)

// SurfaceType tags the color space of a surface's pixel values.
type SurfaceType uint8

const (
	// SurfaceTypeSRGB marks pixels encoded with the sRGB transfer function.
	SurfaceTypeSRGB SurfaceType = iota

	// SurfaceTypeLinearRGB marks pixels in linear RGB.
	SurfaceTypeLinearRGB
)

// String returns the surface type name.
func (t SurfaceType) String() string {
	switch t {
	case SurfaceTypeSRGB:
		return "sRGB"
	case SurfaceTypeLinearRGB:
		return "linearRGB"
	default:
		return "unknown"
	}
}

// SharedImageSurface is an immutable premultiplied RGBA pixel buffer.
//
// A SharedImageSurface is created by ImageSurface.Freeze or FromImage and
// never changes afterwards, so it may be read from any number of goroutines
// without locking. It implements image.Image.
type SharedImageSurface struct {
	data        []byte
	width       int
	height      int
	stride      int
	surfaceType SurfaceType
}

// FromImage copies img into a new shared surface with the given tag.
// Non-premultiplied sources are converted to premultiplied RGBA.
func FromImage(img image.Image, t SurfaceType) (*SharedImageSurface, error) {
	b := img.Bounds()
	s, err := NewImageSurface(b.Dx(), b.Dy())
	if err != nil {
		return nil, err
	}
	draw.Draw(s.img, s.img.Rect, img, b.Min, draw.Src)
	return s.Freeze(t)
}

// Width returns the surface width in pixels.
func (s *SharedImageSurface) Width() int { return s.width }

// Height returns the surface height in pixels.
func (s *SharedImageSurface) Height() int { return s.height }

// Stride returns the number of bytes between vertically adjacent pixels.
func (s *SharedImageSurface) Stride() int { return s.stride }

// SurfaceType returns the color space tag.
func (s *SharedImageSurface) SurfaceType() SurfaceType { return s.surfaceType }

// Pixel returns the pixel at (x, y).
// Returns a transparent pixel for coordinates outside the surface.
func (s *SharedImageSurface) Pixel(x, y int) Pixel {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return Pixel{}
	}
	i := y*s.stride + x*4
	p := s.data[i : i+4 : i+4]
	return Pixel{R: p[0], G: p[1], B: p[2], A: p[3]}
}

// Pixels returns a row-major iterator over the pixels inside r.
// r is clipped to the surface bounds. Pixels are read lazily as the
// iteration advances.
//
// Example:
//
//	for pt, px := range s.Pixels(s.Bounds()) {
//	    if px.A != 0 {
//	        fmt.Println(pt)
//	    }
//	}
func (s *SharedImageSurface) Pixels(r image.Rectangle) iter.Seq2[image.Point, Pixel] {
	r = r.Intersect(s.Bounds())
	return func(yield func(image.Point, Pixel) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(image.Point{X: x, Y: y}, s.Pixel(x, y)) {
					return
				}
			}
		}
	}
}

// Bounds implements image.Image.
func (s *SharedImageSurface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements image.Image.
func (s *SharedImageSurface) ColorModel() color.Model {
	return color.RGBAModel
}

// At implements image.Image.
func (s *SharedImageSurface) At(x, y int) color.Color {
	p := s.Pixel(x, y)
	return color.RGBA{R: p.R, G: p.G, B: p.B, A: p.A}
}

// ToImage returns a copy of the pixels as an *image.RGBA.
func (s *SharedImageSurface) ToImage() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	for y := 0; y < s.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+s.width*4], s.data[y*s.stride:y*s.stride+s.width*4])
	}
	return img
}

// Equal reports whether both surfaces have the same size, tag and pixels.
func (s *SharedImageSurface) Equal(other *SharedImageSurface) bool {
	if s.width != other.width || s.height != other.height || s.surfaceType != other.surfaceType {
		return false
	}
	for y := 0; y < s.height; y++ {
		a := s.data[y*s.stride : y*s.stride+s.width*4]
		b := other.data[y*other.stride : y*other.stride+other.width*4]
		if string(a) != string(b) {
			return false
		}
	}
	return true
}
