package svgrender

import (
	"iter"

	"github.com/gogpu/svgrender/internal/raster"
)

// NodeKind identifies the variant of a Node.
type NodeKind int

const (
	// NodeGroup is a container that draws its children in order.
	NodeGroup NodeKind = iota
	// NodeShape fills a single shape.
	NodeShape
	// NodeClipPath defines a clip path. It paints nothing by itself.
	NodeClipPath
	// NodeMask defines a luminance mask. It paints nothing by itself.
	NodeMask
)

// String returns the element name of the kind.
func (k NodeKind) String() string {
	switch k {
	case NodeGroup:
		return "g"
	case NodeShape:
		return "shape"
	case NodeClipPath:
		return "clipPath"
	case NodeMask:
		return "mask"
	default:
		return "unknown"
	}
}

// FillRule determines how the interior of a self-intersecting shape is
// computed.
type FillRule int

const (
	// FillRuleNonZero fills points with a non-zero winding number.
	FillRuleNonZero FillRule = iota
	// FillRuleEvenOdd fills points enclosed an odd number of times.
	FillRuleEvenOdd
)

func (r FillRule) raster() raster.FillRule {
	if r == FillRuleEvenOdd {
		return raster.FillRuleEvenOdd
	}
	return raster.FillRuleNonZero
}

// Node is an element of the render tree.
//
// A node owns its children. Clip-path and mask references are non-owning and
// may point anywhere in the same tree, typically at definitions that are
// never drawn directly.
type Node struct {
	kind      NodeKind
	id        string
	transform Matrix
	parent    *Node
	children  []*Node

	clipPath *Node
	mask     *Node
	opacity  float64

	shape       Shape
	fill        Paint
	fillRule    FillRule
	fillOpacity float64
	clipRule    FillRule

	units CoordUnits
}

func newNode(kind NodeKind, id string) *Node {
	return &Node{
		kind:        kind,
		id:          id,
		transform:   Identity(),
		opacity:     1,
		fillOpacity: 1,
	}
}

// NewGroup creates a group node.
func NewGroup(id string) *Node {
	return newNode(NodeGroup, id)
}

// NewShape creates a shape node filled with fill. A nil fill paints
// nothing but the shape still contributes to bounding boxes and clip paths.
func NewShape(id string, shape Shape, fill Paint) *Node {
	n := newNode(NodeShape, id)
	n.shape = shape
	n.fill = fill
	return n
}

// NewClipPath creates a clip path definition whose children are drawn in
// the given units.
func NewClipPath(id string, units CoordUnits) *Node {
	n := newNode(NodeClipPath, id)
	n.units = units
	return n
}

// NewMask creates a mask definition whose children are drawn in the given
// units.
func NewMask(id string, units CoordUnits) *Node {
	n := newNode(NodeMask, id)
	n.units = units
	return n
}

// Kind returns the node variant.
func (n *Node) Kind() NodeKind { return n.kind }

// ID returns the node identifier, or "" if it has none.
func (n *Node) ID() string { return n.id }

// Transform returns the node's declared transform.
func (n *Node) Transform() Matrix { return n.transform }

// SetTransform sets the node's declared transform.
func (n *Node) SetTransform(m Matrix) *Node {
	n.transform = m
	return n
}

// ClipPath returns the referenced clip path, or nil.
func (n *Node) ClipPath() *Node { return n.clipPath }

// SetClipPath references a clip path node. Pass nil to remove the reference.
// References to nodes that are not clip paths are ignored when rendering.
func (n *Node) SetClipPath(c *Node) *Node {
	n.clipPath = c
	return n
}

// Mask returns the referenced mask, or nil.
func (n *Node) Mask() *Node { return n.mask }

// SetMask references a mask node. Pass nil to remove the reference.
func (n *Node) SetMask(m *Node) *Node {
	n.mask = m
	return n
}

// Opacity returns the group opacity in [0, 1].
func (n *Node) Opacity() float64 { return n.opacity }

// SetOpacity sets the group opacity. Values are clamped to [0, 1].
func (n *Node) SetOpacity(a float64) *Node {
	n.opacity = clamp01(a)
	return n
}

// Shape returns the geometry of a shape node.
func (n *Node) Shape() Shape { return n.shape }

// Fill returns the fill paint of a shape node.
func (n *Node) Fill() Paint { return n.fill }

// SetFill sets the fill paint.
func (n *Node) SetFill(p Paint) *Node {
	n.fill = p
	return n
}

// FillRule returns the fill rule used when painting.
func (n *Node) FillRule() FillRule { return n.fillRule }

// SetFillRule sets the fill rule used when painting.
func (n *Node) SetFillRule(r FillRule) *Node {
	n.fillRule = r
	return n
}

// FillOpacity returns the fill opacity in [0, 1].
func (n *Node) FillOpacity() float64 { return n.fillOpacity }

// SetFillOpacity sets the fill opacity. Values are clamped to [0, 1].
func (n *Node) SetFillOpacity(a float64) *Node {
	n.fillOpacity = clamp01(a)
	return n
}

// ClipRule returns the fill rule used when the shape is clip content.
func (n *Node) ClipRule() FillRule { return n.clipRule }

// SetClipRule sets the fill rule used when the shape is clip content.
func (n *Node) SetClipRule(r FillRule) *Node {
	n.clipRule = r
	return n
}

// Units returns the content units of a clip path or mask.
func (n *Node) Units() CoordUnits { return n.units }

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in document order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node { return n.children }

// AppendChild adds child as the last child of n. A child attached elsewhere
// is detached first. Appending nil returns ErrNilNode; appending n itself or
// one of its ancestors returns ErrNodeCycle.
func (n *Node) AppendChild(child *Node) error {
	if child == nil {
		return ErrNilNode
	}
	if isAncestor(child, n) {
		return ErrNodeCycle
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, child)
	return nil
}

// RemoveChild detaches child from n. It reports whether child was found.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	n.removeChildByPtr(child)
	child.parent = nil
	return true
}

// All returns an iterator over n and its descendants in document order.
func (n *Node) All() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walk(yield)
	}
}

func (n *Node) walk(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, c := range n.children {
		if !c.walk(yield) {
			return false
		}
	}
	return true
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}
