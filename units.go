package svgrender

// CoordUnits selects the coordinate system of clip path, mask and gradient
// content.
type CoordUnits int

const (
	// UserSpaceOnUse interprets content in the user space of the element
	// that references it.
	UserSpaceOnUse CoordUnits = iota

	// ObjectBoundingBox interprets content as fractions of the bounding box
	// of the element that references it.
	ObjectBoundingBox
)

// String returns the SVG attribute value for u.
func (u CoordUnits) String() string {
	switch u {
	case UserSpaceOnUse:
		return "userSpaceOnUse"
	case ObjectBoundingBox:
		return "objectBoundingBox"
	default:
		return "unknown"
	}
}

// ResolveUnits returns the transform to draw content declared in units,
// given the current transform and the bounding box of the referencing
// element.
//
// For ObjectBoundingBox the unit square maps onto the box. A box with no
// geometry, or with zero width or height, cannot be resolved and yields
// ErrUnresolvableBoundingBox.
func ResolveUnits(units CoordUnits, bbox BoundingBox, current Matrix) (Matrix, error) {
	if units != ObjectBoundingBox {
		return current, nil
	}
	r, ok := bbox.Rect()
	if !ok || r.W == 0 || r.H == 0 {
		return Matrix{}, ErrUnresolvableBoundingBox
	}
	return current.Multiply(Matrix{
		A: r.W, B: 0, C: r.X,
		D: 0, E: r.H, F: r.Y,
	}), nil
}
