// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package compare computes pixel differences between rendered surfaces.
//
// It is meant for reference-image tests: Compare reports how many pixels
// changed, the largest channel difference, and an emphasized difference
// image in which even a one-unit change is clearly visible.
//
//	out, _ := svgrender.Render(doc, w, h, viewport)
//	d, err := compare.CompareToFile(out, "testdata/expected.png")
//	if err != nil {
//		t.Fatal(err)
//	}
//	diff, ok := d.(*compare.Diff)
//	if !ok {
//		t.Fatal("rendering has a different size")
//	}
//	if diff.Inacceptable() {
//		_ = diff.WriteDiff("out-diff.png")
//		t.Errorf("rendering differs in %d pixels", diff.NumPixelsChanged)
//	}
package compare
