// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compare

import (
	"errors"
	"fmt"

	"github.com/gogpu/svgrender/surface"
)

// CompareToFile compares out against the reference PNG at path.
func CompareToFile(out *surface.SharedImageSurface, path string) (BufferDiff, error) {
	ref, err := surface.LoadPNG(path)
	if err != nil {
		return nil, fmt.Errorf("compare: load reference: %w", err)
	}
	return Compare(out, ref), nil
}

// ErrNoDiff is returned by WriteDiff when there is no difference image,
// as for surfaces of different sizes.
var ErrNoDiff = errors.New("compare: no difference image")

// WriteDiff saves the difference visualization as a PNG file.
func (d *Diff) WriteDiff(path string) error {
	if d == nil || d.Surface == nil {
		return ErrNoDiff
	}
	if err := d.Surface.SavePNG(path); err != nil {
		return fmt.Errorf("compare: write diff: %w", err)
	}
	return nil
}
