// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compare

import (
	"image"

	"github.com/gogpu/svgrender/surface"
)

// Thresholds on Diff.MaxDiff used by reference tests.
const (
	// DistinguishableThreshold is the largest channel difference still
	// considered invisible.
	DistinguishableThreshold = 2

	// InacceptableThreshold is the largest channel difference tolerated
	// before a rendering counts as wrong.
	InacceptableThreshold = 16
)

// BufferDiff is the result of Compare: either DifferentSizes or *Diff.
type BufferDiff interface {
	isBufferDiff()
}

// DifferentSizes reports that the surfaces had different dimensions and no
// pixels were compared.
type DifferentSizes struct{}

func (DifferentSizes) isBufferDiff() {}

// Diff describes the pixel differences between two equally sized surfaces.
type Diff struct {
	// NumPixelsChanged counts pixels that differ in any channel.
	NumPixelsChanged int

	// MaxDiff is the largest absolute difference seen in any channel.
	MaxDiff uint8

	// Surface visualizes the differences. Unchanged pixels are transparent
	// black; changed pixels hold the emphasized per-channel difference.
	Surface *surface.SharedImageSurface
}

func (*Diff) isBufferDiff() {}

// Distinguishable reports whether the difference is visible at all.
func (d *Diff) Distinguishable() bool {
	return d.MaxDiff > DistinguishableThreshold
}

// Inacceptable reports whether the difference is too large to accept.
func (d *Diff) Inacceptable() bool {
	return d.MaxDiff > InacceptableThreshold
}

// Compare compares a and b pixel by pixel. The difference surface carries
// the surface type of a.
func Compare(a, b *surface.SharedImageSurface) BufferDiff {
	if a.Width() != b.Width() || a.Height() != b.Height() {
		return DifferentSizes{}
	}

	out := image.NewRGBA(a.Bounds())
	d := &Diff{}

	for p, pa := range a.Pixels(a.Bounds()) {
		pb := b.Pixel(p.X, p.Y)
		if pa == pb {
			continue
		}
		d.NumPixelsChanged++

		raw := pa.Diff(pb)
		d.MaxDiff = max(d.MaxDiff, raw.MaxChannel())

		e := Emphasize(raw)
		if e.R == 0 && e.G == 0 && e.B == 0 {
			// Alpha-only difference: show it as gray.
			e.R, e.G, e.B = e.A, e.A, e.A
		}

		i := out.PixOffset(p.X, p.Y)
		out.Pix[i+0] = e.R
		out.Pix[i+1] = e.G
		out.Pix[i+2] = e.B
		out.Pix[i+3] = e.A
	}

	// a's dimensions are valid, so freezing a fresh surface cannot fail.
	d.Surface, _ = surface.NewImageSurfaceFromRGBA(out).Freeze(a.SurfaceType())
	return d
}

// Emphasize makes a raw per-channel difference visible: each channel is
// multiplied by 4 and, when nonzero, raised by 128, saturating at 255.
func Emphasize(p surface.Pixel) surface.Pixel {
	return surface.Pixel{
		R: emphasize(p.R),
		G: emphasize(p.G),
		B: emphasize(p.B),
		A: emphasize(p.A),
	}
}

func emphasize(c uint8) uint8 {
	if c == 0 {
		return 0
	}
	return uint8(min(uint32(c)*4+128, 255))
}
