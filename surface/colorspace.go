// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	icolor "github.com/gogpu/svgrender/internal/color"
)

// ToLinearRGB returns a copy of the surface converted to linear RGB.
// A surface already tagged SurfaceTypeLinearRGB is returned unchanged.
func (s *SharedImageSurface) ToLinearRGB() *SharedImageSurface {
	if s.surfaceType == SurfaceTypeLinearRGB {
		return s
	}
	return s.mapChannels(icolor.SRGBToLinear, SurfaceTypeLinearRGB)
}

// ToSRGB returns a copy of the surface converted to sRGB.
// A surface already tagged SurfaceTypeSRGB is returned unchanged.
func (s *SharedImageSurface) ToSRGB() *SharedImageSurface {
	if s.surfaceType == SurfaceTypeSRGB {
		return s
	}
	return s.mapChannels(icolor.LinearToSRGB, SurfaceTypeSRGB)
}

// mapChannels applies fn to the unpremultiplied color channels of every
// pixel. Alpha is never transformed.
func (s *SharedImageSurface) mapChannels(fn func(uint8) uint8, t SurfaceType) *SharedImageSurface {
	stride := s.width * 4
	data := make([]byte, stride*s.height)
	for pt, px := range s.Pixels(s.Bounds()) {
		if px.A == 0 {
			continue
		}
		u := px.Unpremultiply()
		out := Pixel{R: fn(u.R), G: fn(u.G), B: fn(u.B), A: u.A}.Premultiply()
		i := pt.Y*stride + pt.X*4
		data[i], data[i+1], data[i+2], data[i+3] = out.R, out.G, out.B, out.A
	}
	return &SharedImageSurface{
		data:        data,
		width:       s.width,
		height:      s.height,
		stride:      stride,
		surfaceType: t,
	}
}
