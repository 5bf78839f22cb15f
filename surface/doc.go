// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the pixel buffers produced by svgrender.
//
// There are two surface types with a strict one-way relationship:
//
//   - ImageSurface: a mutable, exclusively owned RGBA buffer that the
//     renderer paints into.
//   - SharedImageSurface: an immutable snapshot created by freezing an
//     ImageSurface. It may be shared between goroutines and read
//     concurrently without synchronization.
//
// # Pixel Convention
//
// Both surface types store premultiplied RGBA, 4 bytes per pixel in
// row-major order, the same layout as image.RGBA. Pixel values read from a
// surface are therefore premultiplied; callers comparing or converting
// pixels must keep that convention in mind.
//
// # Freezing
//
//	s, err := surface.NewImageSurface(128, 128)
//	if err != nil {
//	    return err
//	}
//	// ... paint ...
//	shared, err := s.Freeze(surface.SurfaceTypeSRGB)
//
// After Freeze the ImageSurface no longer owns a buffer: all mutating calls
// become no-ops and a second Freeze returns ErrFrozen.
//
// # Golden Images
//
// LoadPNG, DecodePNG, SavePNG and EncodePNG move shared surfaces to and
// from standard PNG files. Decoded images are converted to premultiplied
// RGBA and tagged as sRGB.
package surface
