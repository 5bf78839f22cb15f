// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import "image/color"

// Pixel is a single RGBA pixel with 8-bit channels.
//
// Channels are independent integers in [0, 255]. Pixels read from svgrender
// surfaces are premultiplied; Pixel itself does not enforce a convention.
type Pixel struct {
	R, G, B, A uint8
}

// RGBA implements color.Color, treating the pixel as premultiplied.
func (p Pixel) RGBA() (r, g, b, a uint32) {
	r = uint32(p.R)
	r |= r << 8
	g = uint32(p.G)
	g |= g << 8
	b = uint32(p.B)
	b |= b << 8
	a = uint32(p.A)
	a |= a << 8
	return r, g, b, a
}

// PixelFromColor converts any color to a premultiplied Pixel.
func PixelFromColor(c color.Color) Pixel {
	r, g, b, a := c.RGBA()
	//nolint:gosec // G115: safe - r>>8 is always in [0, 255]
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// Diff returns the per-channel absolute difference between two pixels.
func (p Pixel) Diff(other Pixel) Pixel {
	return Pixel{
		R: absDiff(p.R, other.R),
		G: absDiff(p.G, other.G),
		B: absDiff(p.B, other.B),
		A: absDiff(p.A, other.A),
	}
}

// MaxChannel returns the largest of the four channel values.
func (p Pixel) MaxChannel() uint8 {
	return max(p.R, p.G, p.B, p.A)
}

// Unpremultiply divides the color channels by alpha.
// A fully transparent pixel unpremultiplies to transparent black.
func (p Pixel) Unpremultiply() Pixel {
	switch p.A {
	case 0:
		return Pixel{}
	case 255:
		return p
	}
	return Pixel{
		R: unpremul(p.R, p.A),
		G: unpremul(p.G, p.A),
		B: unpremul(p.B, p.A),
		A: p.A,
	}
}

// unpremul divides c by a, clamping malformed input where c > a.
func unpremul(c, a uint8) uint8 {
	v := (uint32(c)*255 + uint32(a)/2) / uint32(a)
	//nolint:gosec // G115: v is clamped to [0,255] range
	return uint8(min(v, 255))
}

// Premultiply multiplies the color channels by alpha.
func (p Pixel) Premultiply() Pixel {
	if p.A == 255 {
		return p
	}
	a := uint32(p.A)
	return Pixel{
		R: uint8((uint32(p.R)*a + 127) / 255),
		G: uint8((uint32(p.G)*a + 127) / 255),
		B: uint8((uint32(p.B)*a + 127) / 255),
		A: p.A,
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}
