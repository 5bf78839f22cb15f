package svgrender

import (
	"image"
	"image/color"
	"math"
)

// Paint is a fill source: a solid color or a gradient paint server.
type Paint interface {
	// source returns the device-space image to paint with, given the
	// user-to-device transform and the user-space bounding box of the
	// element being filled. A nil image means nothing is painted.
	source(current Matrix, bbox BoundingBox, bounds image.Rectangle) (image.Image, error)
}

// SolidColor paints a single color.
type SolidColor RGBA

func (c SolidColor) source(Matrix, BoundingBox, image.Rectangle) (image.Image, error) {
	if c.A <= 0 {
		return nil, nil
	}
	return image.NewUniform(RGBA(c).premultiplied()), nil
}

// Spread defines how a gradient continues beyond its 0 and 1 offsets.
type Spread int

const (
	// SpreadPad extends the end colors (default behavior).
	SpreadPad Spread = iota
	// SpreadReflect mirrors the gradient pattern.
	SpreadReflect
	// SpreadRepeat repeats the gradient pattern.
	SpreadRepeat
)

// ColorStop represents a color at a specific position in a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  RGBA    // Color at this position
}

// Gradient holds the attributes shared by linear and radial gradients.
// A zero Transform is treated as the identity.
type Gradient struct {
	Stops     []ColorStop
	Units     CoordUnits
	Transform Matrix
	Spread    Spread
}

// AddColorStop appends a color stop.
func (g *Gradient) AddColorStop(offset float64, c RGBA) {
	g.Stops = append(g.Stops, ColorStop{Offset: offset, Color: c})
}

// LinearGradient paints a color transition along the vector (X1,Y1)-(X2,Y2).
type LinearGradient struct {
	Gradient
	X1, Y1, X2, Y2 float64
}

// NewLinearGradient creates a linear gradient from (x1, y1) to (x2, y2).
func NewLinearGradient(x1, y1, x2, y2 float64) *LinearGradient {
	return &LinearGradient{
		Gradient: Gradient{Transform: Identity()},
		X1:       x1, Y1: y1, X2: x2, Y2: y2,
	}
}

func (g *LinearGradient) source(current Matrix, bbox BoundingBox, bounds image.Rectangle) (image.Image, error) {
	dx, dy := g.X2-g.X1, g.Y2-g.Y1
	lengthSq := dx*dx + dy*dy
	return g.Gradient.image(current, bbox, bounds, func(p Point) (float64, bool) {
		if lengthSq == 0 {
			return 1, true
		}
		return ((p.X-g.X1)*dx + (p.Y-g.Y1)*dy) / lengthSq, true
	})
}

// RadialGradient paints a color transition from the focal point (FX,FY) to
// the circle centered at (CX,CY) with radius R.
type RadialGradient struct {
	Gradient
	CX, CY, R float64
	FX, FY    float64
}

// NewRadialGradient creates a radial gradient whose focal point is the
// center of the circle.
func NewRadialGradient(cx, cy, r float64) *RadialGradient {
	return &RadialGradient{
		Gradient: Gradient{Transform: Identity()},
		CX:       cx, CY: cy, R: r,
		FX: cx, FY: cy,
	}
}

func (g *RadialGradient) source(current Matrix, bbox BoundingBox, bounds image.Rectangle) (image.Image, error) {
	r := g.R
	center := Pt(g.CX, g.CY)
	focal := Pt(g.FX, g.FY)

	// A focal point on or outside the circle is pulled just inside it.
	fc := focal.Sub(center)
	if dist := math.Hypot(fc.X, fc.Y); dist > r*0.999 && dist > 0 {
		k := r * 0.999 / dist
		focal = center.Add(Pt(fc.X*k, fc.Y*k))
	}

	d := center.Sub(focal)
	a := d.X*d.X + d.Y*d.Y - r*r
	return g.Gradient.image(current, bbox, bounds, func(p Point) (float64, bool) {
		if r <= 0 {
			return 1, true
		}
		q := p.Sub(focal)
		qd := q.X*d.X + q.Y*d.Y
		qq := q.X*q.X + q.Y*q.Y
		disc := qd*qd - a*qq
		if disc < 0 {
			return 0, false
		}
		return (qd - math.Sqrt(disc)) / a, true
	})
}

// image resolves the gradient's coordinate system and returns a lazily
// evaluated device-space image. offset maps a gradient-space point to a
// gradient offset.
func (g *Gradient) image(current Matrix, bbox BoundingBox, bounds image.Rectangle, offset func(Point) (float64, bool)) (image.Image, error) {
	stops := normalizeStops(g.Stops)
	switch len(stops) {
	case 0:
		return nil, nil
	case 1:
		return SolidColor(stops[0].Color).source(current, bbox, bounds)
	}

	base, err := ResolveUnits(g.Units, bbox, current)
	if err != nil {
		return nil, err
	}
	transform := g.Transform
	if transform == (Matrix{}) {
		transform = Identity()
	}
	m := base.Multiply(transform)
	if !m.IsInvertible() {
		return nil, nil
	}
	return &gradientImage{
		inverse: m.Invert(),
		bounds:  bounds,
		stops:   stops,
		spread:  g.Spread,
		offset:  offset,
	}, nil
}

// normalizeStops clamps offsets to [0, 1] and makes them non-decreasing:
// a stop offset smaller than its predecessor takes the predecessor's value.
func normalizeStops(stops []ColorStop) []ColorStop {
	out := make([]ColorStop, len(stops))
	prev := 0.0
	for i, s := range stops {
		s.Offset = math.Max(clamp01(s.Offset), prev)
		prev = s.Offset
		out[i] = s
	}
	return out
}

// applySpread maps t to [0, 1] according to the spread method.
func applySpread(t float64, spread Spread) float64 {
	switch spread {
	case SpreadRepeat:
		t -= math.Floor(t)
	case SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = clamp01(t)
	}
	return t
}

// colorAtOffset returns the interpolated color at offset t.
// stops must be normalized and hold at least two entries.
func colorAtOffset(stops []ColorStop, t float64, spread Spread) RGBA {
	t = applySpread(t, spread)

	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		s0, s1 := stops[i-1], stops[i]
		if t > s1.Offset {
			continue
		}
		if s1.Offset == s0.Offset {
			return s1.Color
		}
		return s0.Color.Lerp(s1.Color, (t-s0.Offset)/(s1.Offset-s0.Offset))
	}
	return stops[len(stops)-1].Color
}

// gradientImage evaluates a gradient at device pixel centers.
type gradientImage struct {
	inverse Matrix
	bounds  image.Rectangle
	stops   []ColorStop
	spread  Spread
	offset  func(Point) (float64, bool)
}

func (g *gradientImage) ColorModel() color.Model { return color.RGBAModel }

func (g *gradientImage) Bounds() image.Rectangle { return g.bounds }

func (g *gradientImage) At(x, y int) color.Color {
	p := g.inverse.TransformPoint(Pt(float64(x)+0.5, float64(y)+0.5))
	t, ok := g.offset(p)
	if !ok {
		return color.RGBA{}
	}
	return colorAtOffset(g.stops, t, g.spread).premultiplied()
}
