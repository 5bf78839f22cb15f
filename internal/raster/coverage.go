package raster

import (
	"image"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// subScanlines is the number of vertical samples per pixel row used by the
// even-odd scanner.
const subScanlines = 4

// coordLimit clamps device coordinates before they are narrowed to float32.
const coordLimit = 1 << 22

// Coverage rasterizes p into a width x height coverage mask.
// Pixels outside the path have coverage 0, fully covered pixels 255.
// A path with non-finite coordinates produces an empty mask.
func Coverage(p *Path, width, height int, rule FillRule) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, width, height))
	if p.IsEmpty() || width <= 0 || height <= 0 {
		return mask
	}
	minPt, maxPt := p.Bounds()
	if !finite(minPt) || !finite(maxPt) {
		return mask
	}
	if maxPt.X <= 0 || maxPt.Y <= 0 || minPt.X >= float64(width) || minPt.Y >= float64(height) {
		return mask
	}

	switch rule {
	case FillRuleEvenOdd:
		fillEvenOdd(mask, flatten(p))
	default:
		fillNonZero(mask, p)
	}
	return mask
}

// fillNonZero accumulates the path with x/image/vector. Every subpath is
// closed explicitly because the rasterizer only accumulates closed outlines.
func fillNonZero(mask *image.Alpha, p *Path) {
	z := vector.NewRasterizer(mask.Rect.Dx(), mask.Rect.Dy())
	z.DrawOp = draw.Src

	open := false
	p.Walk(func(v Verb, pts []Point) {
		switch v {
		case VerbMoveTo:
			if open {
				z.ClosePath()
			}
			z.MoveTo(f32(pts[0].X), f32(pts[0].Y))
			open = true
		case VerbLineTo:
			z.LineTo(f32(pts[0].X), f32(pts[0].Y))
		case VerbQuadTo:
			z.QuadTo(f32(pts[0].X), f32(pts[0].Y), f32(pts[1].X), f32(pts[1].Y))
		case VerbCubicTo:
			z.CubeTo(f32(pts[0].X), f32(pts[0].Y), f32(pts[1].X), f32(pts[1].Y), f32(pts[2].X), f32(pts[2].Y))
		case VerbClose:
			z.ClosePath()
		}
	})
	if open {
		z.ClosePath()
	}

	z.Draw(mask, mask.Rect, image.Opaque, image.Point{})
}

// edge is a non-horizontal polyline segment with y0 < y1.
type edge struct {
	x0, y0, x1, y1 float64
}

// fillEvenOdd scans closed polylines with the even-odd rule.
func fillEvenOdd(mask *image.Alpha, polys [][]Point) {
	w, h := mask.Rect.Dx(), mask.Rect.Dy()

	var edges []edge
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, poly := range polys {
		for i := 0; i+1 < len(poly); i++ {
			a, b := poly[i], poly[i+1]
			if a.Y == b.Y {
				continue
			}
			if a.Y > b.Y {
				a, b = b, a
			}
			edges = append(edges, edge{x0: a.X, y0: a.Y, x1: b.X, y1: b.Y})
			minY = math.Min(minY, a.Y)
			maxY = math.Max(maxY, b.Y)
		}
	}
	if len(edges) == 0 {
		return
	}

	rowStart := max(0, int(math.Floor(minY)))
	rowEnd := min(h, int(math.Ceil(maxY)))

	acc := make([]float64, w+1)
	xs := make([]float64, 0, 16)
	const weight = 1.0 / subScanlines

	for y := rowStart; y < rowEnd; y++ {
		clear(acc)
		for s := 0; s < subScanlines; s++ {
			sy := float64(y) + (float64(s)+0.5)/subScanlines
			xs = xs[:0]
			for _, e := range edges {
				if e.y0 <= sy && sy < e.y1 {
					t := (sy - e.y0) / (e.y1 - e.y0)
					xs = append(xs, e.x0+t*(e.x1-e.x0))
				}
			}
			slices.Sort(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				addSpan(acc, xs[i], xs[i+1], weight, w)
			}
		}
		row := mask.Pix[y*mask.Stride : y*mask.Stride+w]
		for x := range row {
			row[x] = toAlpha(acc[x])
		}
	}
}

// addSpan adds weighted horizontal coverage for the span [a, b).
func addSpan(acc []float64, a, b, weight float64, width int) {
	a = math.Max(a, 0)
	b = math.Min(b, float64(width))
	if b <= a {
		return
	}
	ia := int(a)
	ib := int(b)
	if ia == ib {
		acc[ia] += (b - a) * weight
		return
	}
	acc[ia] += (float64(ia+1) - a) * weight
	for i := ia + 1; i < ib; i++ {
		acc[i] += weight
	}
	acc[ib] += (b - float64(ib)) * weight
}

func toAlpha(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

func f32(v float64) float32 {
	return float32(math.Max(-coordLimit, math.Min(coordLimit, v)))
}

func finite(p Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}
