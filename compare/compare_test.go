// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package compare

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/gogpu/svgrender/surface"
)

func newSurface(t *testing.T, w, h int, st surface.SurfaceType, fill func(x, y int) surface.Pixel) *surface.SharedImageSurface {
	t.Helper()
	s, err := surface.NewImageSurface(w, h)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetPixel(x, y, fill(x, y))
		}
	}
	shared, err := s.Freeze(st)
	if err != nil {
		t.Fatalf("Freeze() error = %v", err)
	}
	return shared
}

func solid(p surface.Pixel) func(x, y int) surface.Pixel {
	return func(int, int) surface.Pixel { return p }
}

func mustDiff(t *testing.T, d BufferDiff) *Diff {
	t.Helper()
	diff, ok := d.(*Diff)
	if !ok {
		t.Fatalf("Compare() = %T, want *Diff", d)
	}
	return diff
}

func TestCompareDifferentSizes(t *testing.T) {
	tests := []struct {
		name           string
		w1, h1, w2, h2 int
	}{
		{"width", 4, 4, 5, 4},
		{"height", 4, 4, 4, 3},
		{"both", 2, 3, 3, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newSurface(t, tt.w1, tt.h1, surface.SurfaceTypeSRGB, solid(surface.Pixel{}))
			b := newSurface(t, tt.w2, tt.h2, surface.SurfaceTypeSRGB, solid(surface.Pixel{}))
			if _, ok := Compare(a, b).(DifferentSizes); !ok {
				t.Errorf("Compare() = %T, want DifferentSizes", Compare(a, b))
			}
		})
	}
}

func TestCompareIdentical(t *testing.T) {
	a := newSurface(t, 8, 6, surface.SurfaceTypeSRGB, func(x, y int) surface.Pixel {
		return surface.Pixel{R: uint8(x * 30), G: uint8(y * 40), B: 7, A: 255}
	})

	diff := mustDiff(t, Compare(a, a))

	if diff.NumPixelsChanged != 0 {
		t.Errorf("NumPixelsChanged = %d, want 0", diff.NumPixelsChanged)
	}
	if diff.MaxDiff != 0 {
		t.Errorf("MaxDiff = %d, want 0", diff.MaxDiff)
	}
	if diff.Surface.Width() != 8 || diff.Surface.Height() != 6 {
		t.Errorf("diff surface size = %dx%d, want 8x6", diff.Surface.Width(), diff.Surface.Height())
	}
	for p, px := range diff.Surface.Pixels(diff.Surface.Bounds()) {
		if px != (surface.Pixel{}) {
			t.Fatalf("diff Pixel(%v) = %v, want transparent black", p, px)
		}
	}
	if diff.Distinguishable() || diff.Inacceptable() {
		t.Error("identical surfaces reported as distinguishable")
	}
}

func TestCompareCountsAndMax(t *testing.T) {
	base := surface.Pixel{R: 100, G: 100, B: 100, A: 255}
	a := newSurface(t, 4, 4, surface.SurfaceTypeSRGB, solid(base))
	b := newSurface(t, 4, 4, surface.SurfaceTypeSRGB, func(x, y int) surface.Pixel {
		switch {
		case x == 1 && y == 1:
			return surface.Pixel{R: 110, G: 100, B: 100, A: 255}
		case x == 3 && y == 2:
			return surface.Pixel{R: 100, G: 60, B: 101, A: 255}
		}
		return base
	})

	diff := mustDiff(t, Compare(a, b))

	if diff.NumPixelsChanged != 2 {
		t.Errorf("NumPixelsChanged = %d, want 2", diff.NumPixelsChanged)
	}
	if diff.MaxDiff != 40 {
		t.Errorf("MaxDiff = %d, want 40", diff.MaxDiff)
	}
	if got, want := diff.Surface.Pixel(1, 1), (surface.Pixel{R: 168}); got != want {
		t.Errorf("diff Pixel(1, 1) = %v, want %v", got, want)
	}
	if got, want := diff.Surface.Pixel(3, 2), (surface.Pixel{G: 255, B: 132}); got != want {
		t.Errorf("diff Pixel(3, 2) = %v, want %v", got, want)
	}
	if got := diff.Surface.Pixel(0, 0); got != (surface.Pixel{}) {
		t.Errorf("diff Pixel(0, 0) = %v, want transparent black", got)
	}
	if !diff.Distinguishable() || !diff.Inacceptable() {
		t.Error("MaxDiff 40 should be distinguishable and inacceptable")
	}
}

func TestCompareAlphaOnlyIsGray(t *testing.T) {
	a := newSurface(t, 1, 1, surface.SurfaceTypeSRGB, solid(surface.Pixel{A: 200}))
	b := newSurface(t, 1, 1, surface.SurfaceTypeSRGB, solid(surface.Pixel{A: 195}))

	diff := mustDiff(t, Compare(a, b))

	// |200-195| = 5, emphasized to 5*4+128 = 148.
	want := surface.Pixel{R: 148, G: 148, B: 148, A: 148}
	if got := diff.Surface.Pixel(0, 0); got != want {
		t.Errorf("diff Pixel(0, 0) = %v, want %v", got, want)
	}
	if diff.MaxDiff != 5 {
		t.Errorf("MaxDiff = %d, want 5", diff.MaxDiff)
	}
}

func TestCompareKeepsSurfaceType(t *testing.T) {
	a := newSurface(t, 2, 2, surface.SurfaceTypeLinearRGB, solid(surface.Pixel{A: 255}))
	b := newSurface(t, 2, 2, surface.SurfaceTypeLinearRGB, solid(surface.Pixel{R: 1, A: 255}))

	diff := mustDiff(t, Compare(a, b))
	if diff.Surface.SurfaceType() != surface.SurfaceTypeLinearRGB {
		t.Errorf("SurfaceType() = %v, want %v", diff.Surface.SurfaceType(), surface.SurfaceTypeLinearRGB)
	}
}

func TestEmphasize(t *testing.T) {
	tests := []struct {
		in, want uint8
	}{
		{0, 0},
		{1, 132},
		{2, 136},
		{31, 252},
		{32, 255},
		{200, 255},
		{255, 255},
	}
	for _, tt := range tests {
		got := Emphasize(surface.Pixel{R: tt.in, G: tt.in, B: tt.in, A: tt.in})
		want := surface.Pixel{R: tt.want, G: tt.want, B: tt.want, A: tt.want}
		if got != want {
			t.Errorf("Emphasize(%d) = %v, want %v", tt.in, got, want)
		}
	}
}

func TestEmphasizeMonotonic(t *testing.T) {
	prev := uint8(0)
	for c := 0; c < 256; c++ {
		got := emphasize(uint8(c))
		if got < prev {
			t.Fatalf("emphasize(%d) = %d, less than emphasize(%d) = %d", c, got, c-1, prev)
		}
		prev = got
	}
}

func TestThresholds(t *testing.T) {
	tests := []struct {
		maxDiff         uint8
		distinguishable bool
		inacceptable    bool
	}{
		{0, false, false},
		{2, false, false},
		{3, true, false},
		{16, true, false},
		{17, true, true},
	}
	for _, tt := range tests {
		d := &Diff{MaxDiff: tt.maxDiff}
		if d.Distinguishable() != tt.distinguishable {
			t.Errorf("MaxDiff %d: Distinguishable() = %v, want %v", tt.maxDiff, d.Distinguishable(), tt.distinguishable)
		}
		if d.Inacceptable() != tt.inacceptable {
			t.Errorf("MaxDiff %d: Inacceptable() = %v, want %v", tt.maxDiff, d.Inacceptable(), tt.inacceptable)
		}
	}
}

func TestCompareToFile(t *testing.T) {
	dir := t.TempDir()
	ref := filepath.Join(dir, "ref.png")

	a := newSurface(t, 3, 3, surface.SurfaceTypeSRGB, func(x, y int) surface.Pixel {
		return surface.Pixel{R: uint8(80 * x), G: uint8(80 * y), B: 10, A: 255}
	})
	if err := a.SavePNG(ref); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}

	diff := mustDiff(t, mustCompareToFile(t, a, ref))
	if diff.NumPixelsChanged != 0 {
		t.Errorf("NumPixelsChanged = %d, want 0 after PNG round trip", diff.NumPixelsChanged)
	}

	small := newSurface(t, 2, 2, surface.SurfaceTypeSRGB, solid(surface.Pixel{A: 255}))
	if _, ok := mustCompareToFile(t, small, ref).(DifferentSizes); !ok {
		t.Error("CompareToFile() with a different size should report DifferentSizes")
	}

	if _, err := CompareToFile(a, filepath.Join(dir, "missing.png")); err == nil {
		t.Error("CompareToFile() with a missing reference should fail")
	}
}

func mustCompareToFile(t *testing.T, out *surface.SharedImageSurface, path string) BufferDiff {
	t.Helper()
	d, err := CompareToFile(out, path)
	if err != nil {
		t.Fatalf("CompareToFile() error = %v", err)
	}
	return d
}

func TestWriteDiff(t *testing.T) {
	a := newSurface(t, 2, 2, surface.SurfaceTypeSRGB, solid(surface.Pixel{A: 255}))
	b := newSurface(t, 2, 2, surface.SurfaceTypeSRGB, solid(surface.Pixel{R: 255, A: 255}))
	diff := mustDiff(t, Compare(a, b))

	path := filepath.Join(t.TempDir(), "diff.png")
	if err := diff.WriteDiff(path); err != nil {
		t.Fatalf("WriteDiff() error = %v", err)
	}
	back, err := surface.LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG() error = %v", err)
	}
	if back.Width() != 2 || back.Height() != 2 {
		t.Errorf("reloaded diff size = %dx%d, want 2x2", back.Width(), back.Height())
	}
}

func TestWriteDiffDifferentSizes(t *testing.T) {
	a := newSurface(t, 2, 2, surface.SurfaceTypeSRGB, solid(surface.Pixel{A: 255}))
	b := newSurface(t, 3, 2, surface.SurfaceTypeSRGB, solid(surface.Pixel{A: 255}))

	diff, ok := Compare(a, b).(*Diff)
	if ok {
		t.Fatal("Compare() of different sizes returned a *Diff")
	}
	path := filepath.Join(t.TempDir(), "diff.png")
	if err := diff.WriteDiff(path); !errors.Is(err, ErrNoDiff) {
		t.Errorf("WriteDiff() on nil *Diff error = %v, want %v", err, ErrNoDiff)
	}
}
