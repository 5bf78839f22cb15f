package raster

import "math"

// tolerance is the maximum distance between a curve and its flattening.
const tolerance = 0.1

// maxDepth bounds curve subdivision for degenerate or non-finite input.
const maxDepth = 16

// flatten converts a path into closed polylines, one per subpath.
// Every polyline ends at its first point.
func flatten(p *Path) [][]Point {
	var (
		polys   [][]Point
		current []Point
	)
	closeCurrent := func() {
		if len(current) >= 2 {
			if current[len(current)-1] != current[0] {
				current = append(current, current[0])
			}
			polys = append(polys, current)
		}
		current = nil
	}

	p.Walk(func(v Verb, pts []Point) {
		switch v {
		case VerbMoveTo:
			closeCurrent()
			current = append(current, pts[0])
		case VerbLineTo:
			current = append(current, pts[0])
		case VerbQuadTo:
			if len(current) == 0 {
				current = append(current, pts[0])
			}
			flattenQuad(current[len(current)-1], pts[0], pts[1], 0, &current)
		case VerbCubicTo:
			if len(current) == 0 {
				current = append(current, pts[0])
			}
			flattenCubic(current[len(current)-1], pts[0], pts[1], pts[2], 0, &current)
		case VerbClose:
			start := Point{}
			if len(current) > 0 {
				start = current[0]
			}
			closeCurrent()
			current = append(current, start)
		}
	})
	closeCurrent()
	return polys
}

func flattenQuad(p0, p1, p2 Point, depth int, out *[]Point) {
	if depth >= maxDepth || distanceToLine(p1, p0, p2) < tolerance {
		*out = append(*out, p2)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(q0, q1, 0.5)
	flattenQuad(p0, q0, q2, depth+1, out)
	flattenQuad(q2, q1, p2, depth+1, out)
}

func flattenCubic(p0, p1, p2, p3 Point, depth int, out *[]Point) {
	d := math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3))
	if depth >= maxDepth || d < tolerance {
		*out = append(*out, p3)
		return
	}
	q0 := lerp(p0, p1, 0.5)
	q1 := lerp(p1, p2, 0.5)
	q2 := lerp(p2, p3, 0.5)
	r0 := lerp(q0, q1, 0.5)
	r1 := lerp(q1, q2, 0.5)
	s := lerp(r0, r1, 0.5)
	flattenCubic(p0, q0, r0, s, depth+1, out)
	flattenCubic(s, r1, q2, p3, depth+1, out)
}

func lerp(p, q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// distanceToLine returns the distance from p to the segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	abx, aby := b.X-a.X, b.Y-a.Y
	lenSq := abx*abx + aby*aby
	if lenSq < 1e-20 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	t := ((p.X-a.X)*abx + (p.Y-a.Y)*aby) / lenSq
	t = math.Max(0, math.Min(1, t))
	return math.Hypot(p.X-(a.X+t*abx), p.Y-(a.Y+t*aby))
}
