// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bytes"
	"image"
	"image/color"
	"path/filepath"
	"sync"
	"testing"
)

func newTestShared(t *testing.T, w, h int, fill func(x, y int) Pixel) *SharedImageSurface {
	t.Helper()
	s, err := NewImageSurface(w, h)
	if err != nil {
		t.Fatalf("NewImageSurface() error = %v", err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.SetPixel(x, y, fill(x, y))
		}
	}
	shared, err := s.Freeze(SurfaceTypeSRGB)
	if err != nil {
		t.Fatalf("Freeze() error = %v", err)
	}
	return shared
}

func TestPixelsRowMajor(t *testing.T) {
	s := newTestShared(t, 3, 2, func(x, y int) Pixel {
		return Pixel{R: uint8(x), G: uint8(y), A: 255}
	})

	var got []image.Point
	for pt, px := range s.Pixels(s.Bounds()) {
		if int(px.R) != pt.X || int(px.G) != pt.Y {
			t.Errorf("pixel at %v = %v", pt, px)
		}
		got = append(got, pt)
	}

	want := []image.Point{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}}
	if len(got) != len(want) {
		t.Fatalf("iterated %d pixels, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPixelsClipsAndStops(t *testing.T) {
	s := newTestShared(t, 4, 4, func(x, y int) Pixel { return Pixel{A: 255} })

	n := 0
	for range s.Pixels(image.Rect(2, 2, 10, 10)) {
		n++
	}
	if n != 4 {
		t.Errorf("clipped iteration visited %d pixels, want 4", n)
	}

	n = 0
	for range s.Pixels(s.Bounds()) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("early break visited %d pixels, want 3", n)
	}
}

func TestSharedImageInterface(t *testing.T) {
	s := newTestShared(t, 2, 2, func(x, y int) Pixel { return Pixel{R: 128, A: 128} })

	var img image.Image = s
	if img.Bounds() != image.Rect(0, 0, 2, 2) {
		t.Errorf("Bounds() = %v", img.Bounds())
	}
	if got := img.At(1, 1); got != (color.RGBA{R: 128, A: 128}) {
		t.Errorf("At(1, 1) = %v", got)
	}
}

func TestSharedConcurrentReaders(t *testing.T) {
	s := newTestShared(t, 16, 16, func(x, y int) Pixel { return Pixel{R: uint8(x * y), A: 255} })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sum := 0
			for _, px := range s.Pixels(s.Bounds()) {
				sum += int(px.R)
			}
			_ = sum
		}()
	}
	wg.Wait()
}

func TestPNGRoundTrip(t *testing.T) {
	s := newTestShared(t, 5, 3, func(x, y int) Pixel {
		if x == y {
			return Pixel{}
		}
		return Pixel{R: uint8(40 * x), G: uint8(60 * y), B: 7, A: 255}
	})

	var buf bytes.Buffer
	if err := s.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG() error = %v", err)
	}
	decoded, err := DecodePNG(&buf)
	if err != nil {
		t.Fatalf("DecodePNG() error = %v", err)
	}
	if !decoded.Equal(s) {
		t.Error("decoded surface differs from original")
	}

	path := filepath.Join(t.TempDir(), "out.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	loaded, err := LoadPNG(path)
	if err != nil {
		t.Fatalf("LoadPNG() error = %v", err)
	}
	if !loaded.Equal(s) {
		t.Error("loaded surface differs from original")
	}
}

func TestFromImagePremultiplies(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 128})

	s, err := FromImage(src, SurfaceTypeSRGB)
	if err != nil {
		t.Fatalf("FromImage() error = %v", err)
	}
	if got := s.Pixel(0, 0); got != (Pixel{R: 128, A: 128}) {
		t.Errorf("Pixel(0, 0) = %v, want {128 0 0 128}", got)
	}
}

func TestColorSpaceConversion(t *testing.T) {
	s := newTestShared(t, 2, 1, func(x, y int) Pixel {
		if x == 0 {
			return Pixel{R: 255, G: 128, B: 0, A: 255}
		}
		return Pixel{}
	})

	lin := s.ToLinearRGB()
	if lin.SurfaceType() != SurfaceTypeLinearRGB {
		t.Fatalf("SurfaceType() = %v, want linearRGB", lin.SurfaceType())
	}
	if got := lin.Pixel(0, 0); got != (Pixel{R: 255, G: 55, B: 0, A: 255}) {
		t.Errorf("linear Pixel(0, 0) = %v, want {255 55 0 255}", got)
	}
	if got := lin.Pixel(1, 0); got != (Pixel{}) {
		t.Errorf("transparent pixel changed: %v", got)
	}
	if lin.ToLinearRGB() != lin {
		t.Error("ToLinearRGB() on a linear surface should return it unchanged")
	}

	back := lin.ToSRGB()
	if back.SurfaceType() != SurfaceTypeSRGB {
		t.Errorf("SurfaceType() = %v, want sRGB", back.SurfaceType())
	}
	if s.Pixel(0, 0).R != 255 {
		t.Error("conversion modified the source surface")
	}
}

func TestPixelDiff(t *testing.T) {
	a := Pixel{10, 200, 0, 255}
	b := Pixel{20, 100, 0, 250}
	want := Pixel{10, 100, 0, 5}
	if got := a.Diff(b); got != want {
		t.Errorf("Diff() = %v, want %v", got, want)
	}
	if got := b.Diff(a); got != want {
		t.Errorf("Diff() is not symmetric: %v", got)
	}
	if got := want.MaxChannel(); got != 100 {
		t.Errorf("MaxChannel() = %d, want 100", got)
	}
}
