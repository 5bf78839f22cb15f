// Package raster converts device-space paths into 8-bit coverage masks.
//
// Two fill rules are supported. Non-zero paths are accumulated by the
// golang.org/x/image/vector rasterizer. Even-odd paths are flattened and
// scanned with four sub-scanlines per pixel row, with exact horizontal span
// coverage.
//
// Coverage masks are *image.Alpha values anchored at the origin and sized to
// the target surface; everything outside the surface is discarded.
package raster
