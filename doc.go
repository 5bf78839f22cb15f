// Package svgrender renders a prepared SVG node tree into raster surfaces.
//
// # Overview
//
// svgrender is the rendering and compositing core of an SVG renderer. It does
// not parse markup or resolve styles: callers hand it a [Document] whose
// nodes already carry their transforms, paints and clip/mask references.
// Render walks the tree, applies clip paths and masks, and returns an
// immutable [surface.SharedImageSurface] that can be shared between
// goroutines or compared against a golden image with package compare.
//
// # Quick Start
//
//	root := svgrender.NewGroup("")
//	root.AppendChild(svgrender.NewShape("box",
//		svgrender.RectShape{X: 10, Y: 10, Width: 80, Height: 80},
//		svgrender.SolidColor(svgrender.Hex("#336699"))))
//
//	doc, err := svgrender.NewDocument(root, 100, 100)
//	if err != nil {
//		return err
//	}
//	img, err := svgrender.Render(doc, 200, 200, svgrender.NewRect(0, 0, 200, 200))
//	if err != nil {
//		return err
//	}
//	return img.SavePNG("box.png")
//
// # Coordinate systems
//
// Every node draws in its own user space, the current transform composed with
// the node's declared transform. Clip paths, masks and gradients may instead
// use [ObjectBoundingBox] units, where (0,0)-(1,1) spans the bounding box of
// the element they are applied to.
//
// # Architecture
//
//   - Public API: Document, Node, Render, DrawingContext, Matrix, Rect
//   - surface: mutable and frozen pixel surfaces, PNG I/O
//   - compare: pixel diffs for reference tests
//   - Internal: raster (coverage), clip (clip stack), color (transfer functions)
package svgrender
