// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
)

// LoadPNG loads a PNG file as an sRGB shared surface.
func LoadPNG(path string) (*SharedImageSurface, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("surface: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodePNG(f)
}

// DecodePNG decodes a PNG stream as an sRGB shared surface.
func DecodePNG(r io.Reader) (*SharedImageSurface, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("surface: decode PNG: %w", err)
	}
	return FromImage(img, SurfaceTypeSRGB)
}

// EncodePNG writes the surface as a PNG stream.
func (s *SharedImageSurface) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, s.ToImage()); err != nil {
		return fmt.Errorf("surface: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes the surface to a PNG file.
func (s *SharedImageSurface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("surface: create file: %w", err)
	}

	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
