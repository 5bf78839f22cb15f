package svgrender

import (
	"image"

	"github.com/gogpu/svgrender/internal/clip"
	"github.com/gogpu/svgrender/internal/raster"
	"github.com/gogpu/svgrender/surface"
)

// drawMode selects what drawing a shape does.
type drawMode int

const (
	// modePaint fills shapes into the target surface.
	modePaint drawMode = iota
	// modeGeometry unions shape outlines into a coverage mask and paints
	// nothing. Used for clip path content.
	modeGeometry
)

// DrawingContext is the state of one traversal of a render tree.
//
// Each node is drawn in a child context that carries the node's transform
// and its own bounding box; the child's box is merged into the parent's
// when the node is done. A DrawingContext is not safe for concurrent use.
type DrawingContext struct {
	target    *surface.ImageSurface
	transform Matrix
	bbox      BoundingBox
	clips     *clip.Stack
	mode      drawMode

	// geometry receives clip content in modeGeometry.
	geometry *image.Alpha

	// active holds the clip paths and masks whose content is being drawn.
	// Shared by all contexts of one traversal.
	active map[*Node]bool
}

// NewDrawingContext creates a context that draws into target, mapping user
// space to device space with transform.
func NewDrawingContext(target *surface.ImageSurface, transform Matrix) *DrawingContext {
	return &DrawingContext{
		target:    target,
		transform: transform,
		bbox:      NewBoundingBox(transform),
		clips:     clip.NewStack(target.Width(), target.Height()),
		active:    make(map[*Node]bool),
	}
}

// Transform returns the current user-to-device transform.
func (dc *DrawingContext) Transform() Matrix {
	return dc.transform
}

// BoundingBox returns the bounding box accumulated so far, expressed in the
// context's user space.
func (dc *DrawingContext) BoundingBox() BoundingBox {
	return dc.bbox
}

// Draw renders node and its subtree. Nodes that cannot be drawn are skipped
// and logged; only a nil node is an error.
func (dc *DrawingContext) Draw(node *Node) error {
	if node == nil {
		return ErrNilNode
	}
	dc.drawNode(node)
	return nil
}

// push returns a child context whose user space is the current one
// transformed by m. The child starts with an empty bounding box.
func (dc *DrawingContext) push(m Matrix) *DrawingContext {
	child := *dc
	child.transform = dc.transform.Multiply(m)
	child.bbox = NewBoundingBox(child.transform)
	return &child
}

// bounds returns the device rectangle of the target.
func (dc *DrawingContext) bounds() image.Rectangle {
	return dc.clips.Bounds()
}

func (dc *DrawingContext) drawNode(n *Node) {
	switch n.kind {
	case NodeClipPath, NodeMask:
		return
	}

	child := dc.push(n.transform)
	if dc.mode == modeGeometry {
		child.drawGeometry(n)
	} else {
		child.drawElement(n)
	}
	dc.bbox.Insert(child.bbox)
}

// drawElement paints n in the current context, applying its clip path,
// mask and opacity.
func (dc *DrawingContext) drawElement(n *Node) {
	clipRef := dc.clipRef(n)
	maskRef := dc.maskRef(n)

	if clipRef != nil && clipRef.units == UserSpaceOnUse {
		coverage, ok := dc.clipCoverage(clipRef)
		if !ok {
			return
		}
		dc.clips.Push(coverage)
		defer dc.clips.Pop()
		clipRef = nil
	}

	if clipRef == nil && maskRef == nil && n.opacity >= 1 {
		dc.drawContent(n)
		return
	}

	layer, err := surface.NewImageSurface(dc.bounds().Dx(), dc.bounds().Dy())
	if err != nil {
		Logger().Debug("offscreen layer unavailable", "node", n.id, "err", err)
		return
	}
	Logger().Debug("push layer", "node", n.id, "clip", clipRef != nil, "mask", maskRef != nil,
		"opacity", n.opacity, "clipDepth", dc.clips.Depth())

	parent := dc.target
	dc.target = layer
	dc.drawContent(n)
	dc.target = parent

	coverage := image.NewAlpha(dc.bounds())
	for i := range coverage.Pix {
		coverage.Pix[i] = 255
	}
	if clipRef != nil {
		cc, ok := dc.clipCoverage(clipRef)
		if !ok {
			return
		}
		clip.Intersect(coverage, cc)
	}
	if maskRef != nil {
		mc, ok := dc.maskCoverage(maskRef)
		if !ok {
			return
		}
		clip.Intersect(coverage, mc)
	}
	clip.Scale(coverage, to8(n.opacity))
	dc.target.Composite(layer, coverage)
}

// drawContent paints a shape or the children of a group.
func (dc *DrawingContext) drawContent(n *Node) {
	switch n.kind {
	case NodeShape:
		dc.fillShape(n)
	case NodeGroup:
		for _, c := range n.children {
			dc.drawNode(c)
		}
	}
}

// shapePath returns the user-space outline of a shape node and records its
// extent in the bounding box. It returns nil for a shape without geometry.
func (dc *DrawingContext) shapePath(n *Node) *Path {
	if n.shape == nil {
		return nil
	}
	path := n.shape.Path()
	if path == nil {
		return nil
	}
	r, ok := path.Bounds()
	if !ok {
		return nil
	}
	dc.bbox.InsertRect(r)
	return path
}

// coverage rasterizes path in device space.
func (dc *DrawingContext) coverage(path *Path, rule FillRule) *image.Alpha {
	b := dc.bounds()
	return raster.Coverage(path.rasterPath(dc.transform), b.Dx(), b.Dy(), rule.raster())
}

func (dc *DrawingContext) fillShape(n *Node) {
	path := dc.shapePath(n)
	if path == nil || n.fill == nil || n.fillOpacity <= 0 {
		return
	}

	src, err := n.fill.source(dc.transform, dc.bbox, dc.bounds())
	if err != nil {
		Logger().Debug("skipping fill", "node", n.id, "err", err)
		return
	}
	if src == nil {
		return
	}

	coverage := dc.coverage(path, n.fillRule)
	clip.Scale(coverage, to8(n.fillOpacity))
	dc.clips.Apply(coverage)
	dc.target.Fill(src, coverage)
}

// drawGeometry adds the outline of clip content n to the geometry mask.
func (dc *DrawingContext) drawGeometry(n *Node) {
	if n.kind != NodeShape {
		Logger().Debug("ignoring non-shape clip content", "node", n.id, "kind", n.kind)
		return
	}
	path := dc.shapePath(n)
	if path == nil {
		return
	}
	coverage := dc.coverage(path, n.clipRule)

	if ref := dc.clipRef(n); ref != nil {
		cc, ok := dc.clipCoverage(ref)
		if !ok {
			return
		}
		clip.Intersect(coverage, cc)
	}
	clip.Union(dc.geometry, coverage)
}

// clipRef returns the clip path n refers to, or nil when there is none or it
// cannot be used.
func (dc *DrawingContext) clipRef(n *Node) *Node {
	ref := n.clipPath
	if ref == nil {
		return nil
	}
	if ref.kind != NodeClipPath {
		Logger().Warn("ignoring clip-path reference to a non-clipPath node", "node", n.id, "ref", ref.id, "kind", ref.kind)
		return nil
	}
	if dc.active[ref] {
		Logger().Warn("ignoring recursive clip-path reference", "node", n.id, "ref", ref.id)
		return nil
	}
	return ref
}

// maskRef returns the mask n refers to, or nil when there is none or it
// cannot be used.
func (dc *DrawingContext) maskRef(n *Node) *Node {
	ref := n.mask
	if ref == nil {
		return nil
	}
	if ref.kind != NodeMask {
		Logger().Warn("ignoring mask reference to a non-mask node", "node", n.id, "ref", ref.id, "kind", ref.kind)
		return nil
	}
	if dc.active[ref] {
		Logger().Warn("ignoring recursive mask reference", "node", n.id, "ref", ref.id)
		return nil
	}
	return ref
}
