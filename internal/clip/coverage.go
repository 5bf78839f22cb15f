package clip

import "image"

// MulDiv255 returns a*b/255, the product of two 8-bit coverages.
func MulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a) * uint16(b)) / 255)
}

// Intersect multiplies dst by src in place. Pixels of dst outside src become
// zero.
func Intersect(dst, src *image.Alpha) {
	for y := dst.Rect.Min.Y; y < dst.Rect.Max.Y; y++ {
		for x := dst.Rect.Min.X; x < dst.Rect.Max.X; x++ {
			i := dst.PixOffset(x, y)
			if !(image.Point{X: x, Y: y}).In(src.Rect) {
				dst.Pix[i] = 0
				continue
			}
			dst.Pix[i] = MulDiv255(dst.Pix[i], src.Pix[src.PixOffset(x, y)])
		}
	}
}

// Union merges src into dst in place using a + b - a*b/255.
func Union(dst, src *image.Alpha) {
	r := dst.Rect.Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			i := dst.PixOffset(x, y)
			a := dst.Pix[i]
			b := src.Pix[src.PixOffset(x, y)]
			dst.Pix[i] = a + b - MulDiv255(a, b)
		}
	}
}

// Scale multiplies every coverage value in dst by factor/255.
func Scale(dst *image.Alpha, factor uint8) {
	if factor == 255 {
		return
	}
	for i, v := range dst.Pix {
		dst.Pix[i] = MulDiv255(v, factor)
	}
}
