package svgrender

import (
	"image"
	"math"
)

// Rect represents a rectangle with float64 coordinates.
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewRect creates a Rect from position and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// rectFromPoints creates the smallest Rect containing both corners.
func rectFromPoints(p0, p1 Point) Rect {
	x0, x1 := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	y0, y1 := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Right returns the right edge x-coordinate.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the bottom edge y-coordinate.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// IsEmpty reports whether r has no area.
func (r Rect) IsEmpty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Union returns the smallest rectangle containing both r and other.
// Degenerate rectangles still contribute their extent.
func (r Rect) Union(other Rect) Rect {
	return rectFromPoints(
		Point{X: math.Min(r.X, other.X), Y: math.Min(r.Y, other.Y)},
		Point{X: math.Max(r.Right(), other.Right()), Y: math.Max(r.Bottom(), other.Bottom())},
	)
}

// Intersect returns the intersection of two rectangles.
// Returns an empty rectangle if they don't intersect.
func (r Rect) Intersect(other Rect) Rect {
	x0 := math.Max(r.X, other.X)
	y0 := math.Max(r.Y, other.Y)
	x1 := math.Min(r.Right(), other.Right())
	y1 := math.Min(r.Bottom(), other.Bottom())

	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Transform returns the axis-aligned bounds of r mapped through m.
func (r Rect) Transform(m Matrix) Rect {
	corners := [4]Point{
		m.TransformPoint(Point{X: r.X, Y: r.Y}),
		m.TransformPoint(Point{X: r.Right(), Y: r.Y}),
		m.TransformPoint(Point{X: r.X, Y: r.Bottom()}),
		m.TransformPoint(Point{X: r.Right(), Y: r.Bottom()}),
	}
	minPt, maxPt := corners[0], corners[0]
	for _, c := range corners[1:] {
		minPt.X = math.Min(minPt.X, c.X)
		minPt.Y = math.Min(minPt.Y, c.Y)
		maxPt.X = math.Max(maxPt.X, c.X)
		maxPt.Y = math.Max(maxPt.Y, c.Y)
	}
	return rectFromPoints(minPt, maxPt)
}

// ImageRect returns the pixel rectangle covering r.
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.Right())), int(math.Ceil(r.Bottom())),
	)
}
