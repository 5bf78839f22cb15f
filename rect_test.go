package svgrender

import (
	"image"
	"math"
	"testing"
)

func TestRectUnion(t *testing.T) {
	got := NewRect(0, 0, 10, 10).Union(NewRect(5, -5, 10, 10))
	want := NewRect(0, -5, 15, 15)
	if got != want {
		t.Errorf("Union() = %v, want %v", got, want)
	}
}

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), NewRect(5, 5, 5, 5)},
		{"inside", NewRect(0, 0, 10, 10), NewRect(2, 2, 2, 2), NewRect(2, 2, 2, 2)},
		{"disjoint", NewRect(0, 0, 10, 10), NewRect(20, 20, 5, 5), Rect{}},
		{"touching", NewRect(0, 0, 10, 10), NewRect(10, 0, 5, 5), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectTransform(t *testing.T) {
	r := NewRect(0, 0, 10, 20)

	got := r.Transform(Translate(5, 5).Multiply(Scale(2, 2)))
	if want := NewRect(5, 5, 20, 40); got != want {
		t.Errorf("Transform(scale) = %v, want %v", got, want)
	}

	got = r.Transform(Rotate(math.Pi / 2))
	if !approxEqual(got.X, -20) || !approxEqual(got.Y, 0) || !approxEqual(got.W, 20) || !approxEqual(got.H, 10) {
		t.Errorf("Transform(rotate) = %v, want {-20 0 20 10}", got)
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{NewRect(0, 0, 1, 1), false},
		{NewRect(0, 0, 0, 1), true},
		{NewRect(0, 0, 1, -1), true},
		{Rect{W: math.NaN(), H: 1}, true},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectImageRect(t *testing.T) {
	got := NewRect(0.5, 1.2, 2, 2.5).ImageRect()
	if want := image.Rect(0, 1, 3, 4); got != want {
		t.Errorf("ImageRect() = %v, want %v", got, want)
	}
}
