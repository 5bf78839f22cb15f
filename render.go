package svgrender

import (
	"github.com/gogpu/svgrender/surface"
)

// ViewportTransform returns the transform that maps viewBox onto viewport.
// The mapping scales each axis independently.
func ViewportTransform(viewBox, viewport Rect) Matrix {
	return Translate(viewport.X, viewport.Y).
		Multiply(Scale(viewport.W/viewBox.W, viewport.H/viewBox.H)).
		Multiply(Translate(-viewBox.X, -viewBox.Y))
}

// Render draws doc into a new width x height surface, mapping the document's
// viewBox onto viewport, and returns the frozen result.
//
// A document whose viewBox has no area renders as an empty (or background
// filled) surface. Errors are reported as *RenderError wrapping
// ErrNilDocument, ErrInvalidSurfaceSize or ErrSurfaceAllocationFailed.
func Render(doc *Document, width, height int, viewport Rect, opts ...RenderOption) (*surface.SharedImageSurface, error) {
	if doc == nil {
		return nil, &RenderError{Op: "render", Err: ErrNilDocument}
	}

	o := defaultRenderOptions()
	for _, opt := range opts {
		opt(&o)
	}

	target, err := surface.NewImageSurface(width, height)
	if err != nil {
		return nil, &RenderError{Op: "create surface", Err: err}
	}
	if o.background.A > 0 {
		target.Clear(o.background.premultiplied())
	}

	vb := doc.ViewBox()
	if vb.IsEmpty() {
		Logger().Debug("viewBox has no area, nothing to draw", "viewBox", vb)
	} else {
		dc := NewDrawingContext(target, o.preTransform.Multiply(ViewportTransform(vb, viewport)))
		if err := dc.Draw(doc.Root()); err != nil {
			return nil, &RenderError{Op: "draw", Err: err}
		}
	}

	shared, err := target.Freeze(o.surfaceType)
	if err != nil {
		return nil, &RenderError{Op: "freeze", Err: err}
	}
	return shared, nil
}
