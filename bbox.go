package svgrender

// BoundingBox accumulates the extent of drawn geometry.
//
// The rectangle is optional: a box that has seen no geometry is empty, and
// inserting an empty box changes nothing. The rectangle is expressed in the
// coordinate frame given by Transform, which maps it to device space.
type BoundingBox struct {
	Transform Matrix

	rect  Rect
	valid bool
}

// NewBoundingBox returns an empty box expressed in the frame m.
func NewBoundingBox(m Matrix) BoundingBox {
	return BoundingBox{Transform: m}
}

// WithRect returns a copy of b holding exactly r.
func (b BoundingBox) WithRect(r Rect) BoundingBox {
	b.rect = r
	b.valid = true
	return b
}

// Rect returns the accumulated rectangle and whether one exists.
func (b BoundingBox) Rect() (Rect, bool) {
	return b.rect, b.valid
}

// IsEmpty reports whether no geometry has been accumulated.
func (b BoundingBox) IsEmpty() bool {
	return !b.valid
}

// Insert unions src into b. The source rectangle is mapped to device space
// through src.Transform and back through the inverse of b.Transform.
// If b's frame cannot be inverted the box is left unchanged.
func (b *BoundingBox) Insert(src BoundingBox) {
	if !src.valid || !b.Transform.IsInvertible() {
		return
	}
	r := src.rect.Transform(b.Transform.Invert().Multiply(src.Transform))
	b.InsertRect(r)
}

// InsertRect unions r, already expressed in b's frame, into b.
func (b *BoundingBox) InsertRect(r Rect) {
	if !b.valid {
		b.rect = r
		b.valid = true
		return
	}
	b.rect = b.rect.Union(r)
}
