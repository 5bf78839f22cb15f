package svgrender

import (
	"image/color"
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"#ff0000", Red},
		{"00f", Blue},
		{"#fff", White},
		{"#00000000", Transparent},
		{"#0f08", RGBA{G: 1, A: 136.0 / 255}},
		{"#zzzzzz", Black},
		{"12345", Black},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Hex(tt.in); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestRGBAPremultiplied(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 0.5}.premultiplied()
	want := color.RGBA{R: 128, G: 64, B: 0, A: 128}
	if got != want {
		t.Errorf("premultiplied() = %v, want %v", got, want)
	}
}

func TestFromColor(t *testing.T) {
	got := FromColor(color.RGBA{R: 128, A: 128})
	if !approxEqual(got.R, 1) || !approxEqual(got.A, 128.0/255) {
		t.Errorf("FromColor() = %v, want straight red at half alpha", got)
	}
}
