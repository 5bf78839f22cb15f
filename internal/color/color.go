// Package color provides the transfer functions and luminance weights used
// by svgrender surfaces and masks.
//
// All byte values handled here are channel values in [0, 255]. Functions
// that take premultiplied input say so explicitly.
package color

// Luminance coefficients applied to mask content.
// They are the linearRGB luminance weights from the SVG masking model.
const (
	LuminanceR = 0.2125
	LuminanceG = 0.7154
	LuminanceB = 0.0721
)

// Luminance returns the luminance of a premultiplied pixel as a coverage
// value in [0, 255]. Because the channels are premultiplied, the result is
// already attenuated by the pixel's alpha.
func Luminance(r, g, b uint8) uint8 {
	// Fixed-point weights scaled by 10000 keep the result exact for
	// white (255, 255, 255) and black.
	l := (2125*uint32(r) + 7154*uint32(g) + 721*uint32(b) + 5000) / 10000
	if l > 255 {
		l = 255
	}
	return uint8(l)
}
