package svgrender

import "math"

// Shape is the geometry of a shape node, expressed in the node's user space.
type Shape interface {
	Path() *Path
}

// RectShape is an axis-aligned rectangle with optional rounded corners.
// A non-positive width or height draws nothing. When only one of RX and RY
// is positive it is used for both.
type RectShape struct {
	X, Y          float64
	Width, Height float64
	RX, RY        float64
}

// Path returns the rectangle outline.
func (r RectShape) Path() *Path {
	p := NewPath()
	if !(r.Width > 0 && r.Height > 0) {
		return p
	}

	rx, ry := math.Max(r.RX, 0), math.Max(r.RY, 0)
	switch {
	case rx == 0 && ry > 0:
		rx = ry
	case ry == 0 && rx > 0:
		ry = rx
	}
	rx = math.Min(rx, r.Width/2)
	ry = math.Min(ry, r.Height/2)

	if rx == 0 || ry == 0 {
		p.Rectangle(r.X, r.Y, r.Width, r.Height)
	} else {
		p.RoundedRectangle(r.X, r.Y, r.Width, r.Height, rx, ry)
	}
	return p
}

// CircleShape is a circle. A non-positive radius draws nothing.
type CircleShape struct {
	CX, CY, R float64
}

// Path returns the circle outline.
func (c CircleShape) Path() *Path {
	p := NewPath()
	if c.R > 0 {
		p.Circle(c.CX, c.CY, c.R)
	}
	return p
}

// EllipseShape is an axis-aligned ellipse. A non-positive radius draws
// nothing.
type EllipseShape struct {
	CX, CY, RX, RY float64
}

// Path returns the ellipse outline.
func (e EllipseShape) Path() *Path {
	p := NewPath()
	if e.RX > 0 && e.RY > 0 {
		p.Ellipse(e.CX, e.CY, e.RX, e.RY)
	}
	return p
}

// PolygonShape is a closed polygon through Points.
type PolygonShape struct {
	Points []Point
}

// Path returns the polygon outline.
func (s PolygonShape) Path() *Path {
	p := NewPath()
	for i, pt := range s.Points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
			continue
		}
		p.LineTo(pt.X, pt.Y)
	}
	if len(s.Points) > 0 {
		p.Close()
	}
	return p
}
