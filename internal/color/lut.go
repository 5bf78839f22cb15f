package color

import "math"

// sRGBToLinearLUT maps an sRGB byte to a linear byte.
var sRGBToLinearLUT [256]uint8

// linearToSRGBLUT maps a linear byte to an sRGB byte.
var linearToSRGBLUT [256]uint8

func init() {
	for i := 0; i < 256; i++ {
		v := float64(i) / 255.0
		sRGBToLinearLUT[i] = toByte(srgbToLinear(v))
		linearToSRGBLUT[i] = toByte(linearToSRGB(v))
	}
}

// srgbToLinear is the sRGB electro-optical transfer function.
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// linearToSRGB is the sRGB opto-electronic transfer function.
func linearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1.0/2.4) - 0.055
}

// toByte clamps v to [0, 1] and rounds it to [0, 255].
func toByte(v float64) uint8 {
	n := int(v*255.0 + 0.5)
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	//nolint:gosec // G115: n is clamped to [0,255] range
	return uint8(n)
}

// SRGBToLinear converts an unpremultiplied sRGB channel to linear RGB.
func SRGBToLinear(s uint8) uint8 {
	return sRGBToLinearLUT[s]
}

// LinearToSRGB converts an unpremultiplied linear RGB channel to sRGB.
func LinearToSRGB(l uint8) uint8 {
	return linearToSRGBLUT[l]
}
