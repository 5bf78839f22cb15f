package svgrender

import (
	"math"
	"testing"

	"github.com/gogpu/svgrender/surface"
)

// mustDocument builds a document of the given size around a fresh root group.
func mustDocument(t *testing.T, width, height float64, build func(root *Node)) *Document {
	t.Helper()
	root := NewGroup("")
	build(root)
	doc, err := NewDocument(root, width, height)
	if err != nil {
		t.Fatalf("NewDocument() error = %v", err)
	}
	return doc
}

func mustAppend(t *testing.T, parent, child *Node) {
	t.Helper()
	if err := parent.AppendChild(child); err != nil {
		t.Fatalf("AppendChild() error = %v", err)
	}
}

func mustRender(t *testing.T, doc *Document, width, height int, opts ...RenderOption) *surface.SharedImageSurface {
	t.Helper()
	img, err := Render(doc, width, height, NewRect(0, 0, float64(width), float64(height)), opts...)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return img
}

func rectShape(x, y, w, h float64, c RGBA) *Node {
	return NewShape("", RectShape{X: x, Y: y, Width: w, Height: h}, SolidColor(c))
}

// near reports whether two channel values differ by at most tol.
func near(a, b, tol uint8) bool {
	if a > b {
		a, b = b, a
	}
	return b-a <= tol
}

func nearPixel(a, b surface.Pixel, tol uint8) bool {
	return near(a.R, b.R, tol) && near(a.G, b.G, tol) && near(a.B, b.B, tol) && near(a.A, b.A, tol)
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

var (
	opaqueRed   = surface.Pixel{R: 255, A: 255}
	opaqueBlue  = surface.Pixel{B: 255, A: 255}
	transparent = surface.Pixel{}
)
