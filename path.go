package svgrender

import (
	"math"

	"github.com/gogpu/svgrender/internal/raster"
)

// PathElement represents a single element in a path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents a vector path in user space.
// A *Path is itself a Shape.
type Path struct {
	elements []PathElement
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
}

// LineTo draws a line to a point.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
}

// QuadraticTo draws a quadratic Bezier curve.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
}

// CubicTo draws a cubic Bezier curve.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Path returns p, so that a *Path can be used wherever a Shape is expected.
func (p *Path) Path() *Path {
	return p
}

// Transform applies a transformation matrix to all points in the path.
func (p *Path) Transform(m Matrix) *Path {
	result := &Path{elements: make([]PathElement, 0, len(p.elements))}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.elements = append(result.elements, MoveTo{Point: m.TransformPoint(e.Point)})
		case LineTo:
			result.elements = append(result.elements, LineTo{Point: m.TransformPoint(e.Point)})
		case QuadTo:
			result.elements = append(result.elements, QuadTo{
				Control: m.TransformPoint(e.Control),
				Point:   m.TransformPoint(e.Point),
			})
		case CubicTo:
			result.elements = append(result.elements, CubicTo{
				Control1: m.TransformPoint(e.Control1),
				Control2: m.TransformPoint(e.Control2),
				Point:    m.TransformPoint(e.Point),
			})
		case Close:
			result.elements = append(result.elements, e)
		}
	}
	return result
}

// Bounds returns the tight bounds of the painted outline: curves contribute
// their endpoints and extrema, not their control points. ok is false for a
// path without points.
func (p *Path) Bounds() (r Rect, ok bool) {
	minPt := Pt(math.Inf(1), math.Inf(1))
	maxPt := Pt(math.Inf(-1), math.Inf(-1))
	add := func(pt Point) {
		minPt.X = math.Min(minPt.X, pt.X)
		minPt.Y = math.Min(minPt.Y, pt.Y)
		maxPt.X = math.Max(maxPt.X, pt.X)
		maxPt.Y = math.Max(maxPt.Y, pt.Y)
		ok = true
	}

	var cur, start Point
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			add(e.Point)
			cur, start = e.Point, e.Point
		case LineTo:
			add(e.Point)
			cur = e.Point
		case QuadTo:
			q := quadBez{p0: cur, p1: e.Control, p2: e.Point}
			for _, t := range q.extrema() {
				add(q.eval(t))
			}
			add(e.Point)
			cur = e.Point
		case CubicTo:
			c := cubicBez{p0: cur, p1: e.Control1, p2: e.Control2, p3: e.Point}
			for _, t := range c.extrema() {
				add(c.eval(t))
			}
			add(e.Point)
			cur = e.Point
		case Close:
			cur = start
		}
	}
	if !ok {
		return Rect{}, false
	}
	return rectFromPoints(minPt, maxPt), true
}

// Rectangle adds a rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// circleK is 4/3 * (sqrt(2) - 1), the control distance for a quarter circle.
const circleK = 0.5522847498307936

// Circle adds a circle to the path using cubic Bezier curves.
func (p *Path) Circle(cx, cy, r float64) {
	p.Ellipse(cx, cy, r, r)
}

// Ellipse adds an ellipse to the path.
func (p *Path) Ellipse(cx, cy, rx, ry float64) {
	ox := rx * circleK
	oy := ry * circleK

	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	p.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	p.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	p.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	p.Close()
}

// RoundedRectangle adds a rectangle whose corners are quarter ellipses with
// radii rx and ry. The radii must already be clamped to half the size.
func (p *Path) RoundedRectangle(x, y, w, h, rx, ry float64) {
	ox := rx * circleK
	oy := ry * circleK

	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.CubicTo(x+w-rx+ox, y, x+w, y+ry-oy, x+w, y+ry)
	p.LineTo(x+w, y+h-ry)
	p.CubicTo(x+w, y+h-ry+oy, x+w-rx+ox, y+h, x+w-rx, y+h)
	p.LineTo(x+rx, y+h)
	p.CubicTo(x+rx-ox, y+h, x, y+h-ry+oy, x, y+h-ry)
	p.LineTo(x, y+ry)
	p.CubicTo(x, y+ry-oy, x+rx-ox, y, x+rx, y)
	p.Close()
}

// rasterPath converts p to device space for the rasterizer.
func (p *Path) rasterPath(m Matrix) *raster.Path {
	rp := raster.NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			rp.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			rp.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			rp.QuadTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			rp.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			rp.Close()
		}
	}
	return rp
}
