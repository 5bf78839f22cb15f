package raster

import "math"

// Point is a device-space point.
type Point struct {
	X, Y float64
}

// Verb identifies a path command.
type Verb uint8

// Path verbs.
const (
	VerbMoveTo Verb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// FillRule selects how path winding maps to coverage.
type FillRule uint8

const (
	// FillRuleNonZero fills points with a non-zero winding number.
	FillRuleNonZero FillRule = iota

	// FillRuleEvenOdd fills points with an odd winding number.
	FillRuleEvenOdd
)

// Path is a compact verb/point path in device coordinates.
// MoveTo and LineTo consume one point, QuadTo two, CubicTo three, Close none.
type Path struct {
	verbs  []Verb
	points []Point
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 32),
	}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{x, y})
}

// LineTo adds a line segment.
func (p *Path) LineTo(x, y float64) {
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{x, y})
}

// QuadTo adds a quadratic Bezier segment.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.points = append(p.points, Point{cx, cy}, Point{x, y})
}

// CubicTo adds a cubic Bezier segment.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.points = append(p.points, Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.verbs = append(p.verbs, VerbClose)
}

// IsEmpty reports whether the path has no drawing segments.
func (p *Path) IsEmpty() bool {
	return p == nil || len(p.points) < 2
}

// Bounds returns the control-point bounding box as min and max corners.
func (p *Path) Bounds() (minPt, maxPt Point) {
	if len(p.points) == 0 {
		return Point{}, Point{}
	}
	minPt = Point{math.Inf(1), math.Inf(1)}
	maxPt = Point{math.Inf(-1), math.Inf(-1)}
	for _, pt := range p.points {
		minPt.X = math.Min(minPt.X, pt.X)
		minPt.Y = math.Min(minPt.Y, pt.Y)
		maxPt.X = math.Max(maxPt.X, pt.X)
		maxPt.Y = math.Max(maxPt.Y, pt.Y)
	}
	return minPt, maxPt
}

// Walk calls the visitor for every verb with its points.
func (p *Path) Walk(visit func(v Verb, pts []Point)) {
	i := 0
	for _, v := range p.verbs {
		n := 0
		switch v {
		case VerbMoveTo, VerbLineTo:
			n = 1
		case VerbQuadTo:
			n = 2
		case VerbCubicTo:
			n = 3
		}
		visit(v, p.points[i:i+n])
		i += n
	}
}
