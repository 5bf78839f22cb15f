package svgrender

import (
	"image"
)

// clipCoverage draws the content of clipNode in geometry mode and returns
// its device-space coverage. Clip content is laid out against the bounding
// box accumulated so far, and never contributes to it.
//
// ok is false when the clip cannot be resolved; the clipped element must then
// be clipped away entirely.
func (dc *DrawingContext) clipCoverage(clipNode *Node) (coverage *image.Alpha, ok bool) {
	orig := dc.bbox

	m, err := ResolveUnits(clipNode.units, orig, dc.transform)
	if err != nil {
		Logger().Debug("clip path clips everything", "clip", clipNode.id, "err", err)
		return nil, false
	}

	coverage = image.NewAlpha(dc.bounds())

	savedTransform, savedMode, savedGeometry := dc.transform, dc.mode, dc.geometry
	dc.transform = m.Multiply(clipNode.transform)
	dc.mode = modeGeometry
	dc.geometry = coverage
	dc.active[clipNode] = true

	for _, c := range clipNode.children {
		dc.drawNode(c)
	}

	delete(dc.active, clipNode)
	dc.transform, dc.mode, dc.geometry = savedTransform, savedMode, savedGeometry
	dc.bbox = orig

	return coverage, true
}
