package svgrender

import "fmt"

// Document is a render tree together with its intrinsic size and viewBox.
//
// The id index is built by NewDocument; restructuring the tree afterwards
// leaves Lookup answering for the tree as it was.
type Document struct {
	root    *Node
	width   float64
	height  float64
	viewBox Rect
	ids     map[string]*Node
}

// NewDocument wraps root in a document of the given intrinsic size.
// The viewBox defaults to (0, 0, width, height).
func NewDocument(root *Node, width, height float64) (*Document, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	d := &Document{
		root:    root,
		width:   width,
		height:  height,
		viewBox: NewRect(0, 0, width, height),
		ids:     make(map[string]*Node),
	}
	for n := range root.All() {
		if n.id == "" {
			continue
		}
		if _, dup := d.ids[n.id]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, n.id)
		}
		d.ids[n.id] = n
	}
	return d, nil
}

// Root returns the root node.
func (d *Document) Root() *Node { return d.root }

// Width returns the intrinsic width.
func (d *Document) Width() float64 { return d.width }

// Height returns the intrinsic height.
func (d *Document) Height() float64 { return d.height }

// ViewBox returns the rectangle of user space mapped onto the viewport.
func (d *Document) ViewBox() Rect { return d.viewBox }

// SetViewBox sets the rectangle of user space mapped onto the viewport.
func (d *Document) SetViewBox(r Rect) {
	d.viewBox = r
}

// Lookup returns the node with the given id.
func (d *Document) Lookup(id string) (*Node, bool) {
	n, ok := d.ids[id]
	return n, ok
}
