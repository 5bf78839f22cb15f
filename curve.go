package svgrender

import "math"

// quadBez is a quadratic Bezier segment.
type quadBez struct {
	p0, p1, p2 Point
}

func (q quadBez) eval(t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*q.p0.X + 2*mt*t*q.p1.X + t*t*q.p2.X,
		Y: mt*mt*q.p0.Y + 2*mt*t*q.p1.Y + t*t*q.p2.Y,
	}
}

// extrema returns the parameters in (0, 1) where dx/dt or dy/dt is zero.
// The derivative is linear: B'(t) = 2[(P1-P0) + t(P2-2P1+P0)].
func (q quadBez) extrema() []float64 {
	d0 := q.p1.Sub(q.p0)
	d1 := q.p2.Sub(q.p1)
	dd := d1.Sub(d0)

	var ts []float64
	if dd.X != 0 {
		if t := -d0.X / dd.X; inUnitInterior(t) {
			ts = append(ts, t)
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; inUnitInterior(t) {
			ts = append(ts, t)
		}
	}
	return ts
}

// cubicBez is a cubic Bezier segment.
type cubicBez struct {
	p0, p1, p2, p3 Point
}

func (c cubicBez) eval(t float64) Point {
	mt := 1 - t
	mt2, t2 := mt*mt, t*t
	return Point{
		X: mt2*mt*c.p0.X + 3*mt2*t*c.p1.X + 3*mt*t2*c.p2.X + t2*t*c.p3.X,
		Y: mt2*mt*c.p0.Y + 3*mt2*t*c.p1.Y + 3*mt*t2*c.p2.Y + t2*t*c.p3.Y,
	}
}

// extrema returns up to four parameters in (0, 1) where dx/dt or dy/dt is
// zero. Each derivative is the quadratic a t^2 + b t + c with the
// coefficients below (divided by 3).
func (c cubicBez) extrema() []float64 {
	d0 := c.p1.Sub(c.p0)
	d1 := c.p2.Sub(c.p1)
	d2 := c.p3.Sub(c.p2)

	ts := make([]float64, 0, 4)
	ts = appendUnitRoots(ts, d0.X-2*d1.X+d2.X, 2*(d1.X-d0.X), d0.X)
	ts = appendUnitRoots(ts, d0.Y-2*d1.Y+d2.Y, 2*(d1.Y-d0.Y), d0.Y)
	return ts
}

// appendUnitRoots appends the roots of a t^2 + b t + c in (0, 1) to ts.
func appendUnitRoots(ts []float64, a, b, c float64) []float64 {
	const eps = 1e-12

	add := func(t float64) {
		if inUnitInterior(t) {
			ts = append(ts, t)
		}
	}

	if math.Abs(a) < eps {
		if math.Abs(b) >= eps {
			add(-c / b)
		}
		return ts
	}

	disc := b*b - 4*a*c
	switch {
	case disc < 0:
	case disc == 0:
		add(-b / (2 * a))
	default:
		// Avoid cancellation between b and the root of the discriminant.
		q := -0.5 * (b + math.Copysign(math.Sqrt(disc), b))
		add(q / a)
		if q != 0 {
			add(c / q)
		}
	}
	return ts
}

// inUnitInterior reports whether t lies in (0, 1) away from the endpoints.
// An extremum within rootMargin of an endpoint coincides with it.
func inUnitInterior(t float64) bool {
	const rootMargin = 1e-9
	return t > rootMargin && t < 1-rootMargin
}
