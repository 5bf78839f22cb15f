package svgrender

import (
	"testing"

	"github.com/gogpu/svgrender/surface"
)

func maskedBox(t *testing.T, mask *Node) *Document {
	t.Helper()
	return mustDocument(t, 20, 20, func(root *Node) {
		mustAppend(t, root, mask)
		box := rectShape(0, 0, 20, 20, Red)
		box.SetMask(mask)
		mustAppend(t, root, box)
	})
}

func TestRenderMaskLuminance(t *testing.T) {
	tests := []struct {
		name  string
		color RGBA
		want  surface.Pixel
	}{
		{"white shows", White, opaqueRed},
		{"black hides", Black, transparent},
		{"gray halves", RGB(0.5, 0.5, 0.5), surface.Pixel{R: 128, A: 128}},
		{"transparent hides", Transparent, transparent},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMask("m", UserSpaceOnUse)
			mustAppend(t, m, rectShape(0, 0, 20, 20, tt.color))

			img := mustRender(t, maskedBox(t, m), 20, 20)
			if got := img.Pixel(10, 10); !nearPixel(got, tt.want, 1) {
				t.Errorf("Pixel(10, 10) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRenderMaskRegion(t *testing.T) {
	m := NewMask("m", UserSpaceOnUse)
	mustAppend(t, m, rectShape(0, 0, 10, 20, White))

	img := mustRender(t, maskedBox(t, m), 20, 20)

	if got := img.Pixel(5, 10); got != opaqueRed {
		t.Errorf("inside mask = %v, want %v", got, opaqueRed)
	}
	if got := img.Pixel(15, 10); got != transparent {
		t.Errorf("outside mask = %v, want %v", got, transparent)
	}
}

func TestRenderMaskObjectBoundingBox(t *testing.T) {
	m := NewMask("m", ObjectBoundingBox)
	mustAppend(t, m, rectShape(0, 0, 1, 0.5, White))

	doc := mustDocument(t, 40, 40, func(root *Node) {
		mustAppend(t, root, m)
		box := rectShape(10, 10, 20, 20, Red)
		box.SetMask(m)
		mustAppend(t, root, box)
	})
	img := mustRender(t, doc, 40, 40)

	if got := img.Pixel(20, 15); got != opaqueRed {
		t.Errorf("top half = %v, want %v", got, opaqueRed)
	}
	if got := img.Pixel(20, 25); got != transparent {
		t.Errorf("bottom half = %v, want %v", got, transparent)
	}
}

func TestRenderMaskWithClip(t *testing.T) {
	m := NewMask("m", UserSpaceOnUse)
	mustAppend(t, m, rectShape(0, 0, 20, 10, White))
	cp := NewClipPath("c", ObjectBoundingBox)
	mustAppend(t, cp, rectShape(0, 0, 0.5, 1, Black))

	doc := mustDocument(t, 20, 20, func(root *Node) {
		box := rectShape(0, 0, 20, 20, Red)
		box.SetMask(m)
		box.SetClipPath(cp)
		mustAppend(t, root, box)
	})
	img := mustRender(t, doc, 20, 20)

	tests := []struct {
		x, y int
		want surface.Pixel
	}{
		{5, 5, opaqueRed},
		{15, 5, transparent},
		{5, 15, transparent},
	}
	for _, tt := range tests {
		if got := img.Pixel(tt.x, tt.y); got != tt.want {
			t.Errorf("Pixel(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestMaskCoverageRestoresBoundingBox(t *testing.T) {
	dc := newTestContext(t, 30, 30)
	dc.bbox = NewBoundingBox(Identity()).WithRect(NewRect(5, 5, 10, 10))

	m := NewMask("m", ObjectBoundingBox)
	mustAppend(t, m, rectShape(-10, -10, 30, 30, White))

	before := dc.BoundingBox()
	if _, ok := dc.maskCoverage(m); !ok {
		t.Fatal("maskCoverage() reported unresolvable mask")
	}
	if after := dc.BoundingBox(); after != before {
		t.Errorf("bbox after maskCoverage() = %+v, want %+v", after, before)
	}
}

func TestMaskCoverageUnresolvable(t *testing.T) {
	dc := newTestContext(t, 10, 10)
	m := NewMask("m", ObjectBoundingBox)
	mustAppend(t, m, rectShape(0, 0, 1, 1, White))

	if _, ok := dc.maskCoverage(m); ok {
		t.Error("maskCoverage() with an empty bbox should report unresolvable")
	}
}

func TestRenderMaskReferenceCycle(t *testing.T) {
	m := NewMask("m", UserSpaceOnUse)
	content := rectShape(0, 0, 20, 20, White)
	content.SetMask(m)
	mustAppend(t, m, content)

	img := mustRender(t, maskedBox(t, m), 20, 20)

	if got := img.Pixel(10, 10); got != opaqueRed {
		t.Errorf("Pixel(10, 10) = %v, want %v", got, opaqueRed)
	}
}
