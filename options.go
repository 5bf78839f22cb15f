package svgrender

import "github.com/gogpu/svgrender/surface"

// RenderOption configures a Render call.
//
// Example:
//
//	img, err := svgrender.Render(doc, 400, 300, svgrender.NewRect(0, 0, 400, 300),
//		svgrender.WithPreTransform(svgrender.Rotate(math.Pi/2)),
//		svgrender.WithBackground(svgrender.White))
type RenderOption func(*renderOptions)

// renderOptions holds optional configuration for Render.
type renderOptions struct {
	preTransform Matrix
	surfaceType  surface.SurfaceType
	background   RGBA
}

// defaultRenderOptions returns the default render options.
func defaultRenderOptions() renderOptions {
	return renderOptions{
		preTransform: Identity(),
		surfaceType:  surface.SurfaceTypeSRGB,
		background:   Transparent,
	}
}

// WithPreTransform sets a transform applied to the whole image after the
// viewport mapping, in output pixel space.
func WithPreTransform(m Matrix) RenderOption {
	return func(o *renderOptions) {
		o.preTransform = m
	}
}

// WithSurfaceType sets the color-space tag of the returned surface.
func WithSurfaceType(t surface.SurfaceType) RenderOption {
	return func(o *renderOptions) {
		o.surfaceType = t
	}
}

// WithBackground fills the output with c before drawing.
func WithBackground(c RGBA) RenderOption {
	return func(o *renderOptions) {
		o.background = c
	}
}
