package svgrender

import (
	"image"

	"github.com/gogpu/svgrender/internal/clip"
	icolor "github.com/gogpu/svgrender/internal/color"
	"github.com/gogpu/svgrender/surface"
)

// maskCoverage paints the content of maskNode into a scratch surface and
// converts it to coverage by luminance. Like clip content, mask content is
// laid out against the current bounding box without adding to it.
//
// ok is false when the mask cannot be resolved; the masked element is then
// invisible.
func (dc *DrawingContext) maskCoverage(maskNode *Node) (coverage *image.Alpha, ok bool) {
	orig := dc.bbox

	m, err := ResolveUnits(maskNode.units, orig, dc.transform)
	if err != nil {
		Logger().Debug("mask hides everything", "mask", maskNode.id, "err", err)
		return nil, false
	}

	b := dc.bounds()
	scratch, err := surface.NewImageSurface(b.Dx(), b.Dy())
	if err != nil {
		Logger().Debug("mask surface unavailable", "mask", maskNode.id, "err", err)
		return nil, false
	}

	savedTarget, savedTransform, savedClips := dc.target, dc.transform, dc.clips
	dc.target = scratch
	dc.transform = m.Multiply(maskNode.transform)
	dc.clips = clip.NewStack(b.Dx(), b.Dy())
	dc.active[maskNode] = true

	for _, c := range maskNode.children {
		dc.drawNode(c)
	}

	delete(dc.active, maskNode)
	dc.target, dc.transform, dc.clips = savedTarget, savedTransform, savedClips
	dc.bbox = orig

	return luminanceCoverage(scratch), true
}

// luminanceCoverage converts premultiplied pixels to coverage.
func luminanceCoverage(s *surface.ImageSurface) *image.Alpha {
	img := s.Image()
	coverage := image.NewAlpha(img.Rect)
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		for x := img.Rect.Min.X; x < img.Rect.Max.X; x++ {
			p := img.Pix[img.PixOffset(x, y):]
			coverage.Pix[coverage.PixOffset(x, y)] = icolor.Luminance(p[0], p[1], p[2])
		}
	}
	return coverage
}
