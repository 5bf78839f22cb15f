package svgrender

import (
	"errors"

	"github.com/gogpu/svgrender/surface"
)

// Sentinel errors for the svgrender package.
var (
	// ErrInvalidSurfaceSize is returned when the requested output size is
	// not positive or exceeds surface.MaxDimension.
	ErrInvalidSurfaceSize = surface.ErrInvalidSize

	// ErrSurfaceAllocationFailed is returned when the pixel buffer cannot be
	// allocated.
	ErrSurfaceAllocationFailed = surface.ErrAllocationFailed

	// ErrUnresolvableBoundingBox is returned when objectBoundingBox units are
	// requested for an element without a usable bounding box.
	ErrUnresolvableBoundingBox = errors.New("svgrender: bounding box is empty or degenerate")

	// ErrNodeCycle is returned when appending a node would make it its own
	// ancestor.
	ErrNodeCycle = errors.New("svgrender: node cannot be its own ancestor")

	// ErrNilNode is returned when a nil node is passed where one is required.
	ErrNilNode = errors.New("svgrender: nil node")

	// ErrDuplicateID is returned when two nodes in a document share an id.
	ErrDuplicateID = errors.New("svgrender: duplicate node id")

	// ErrNilDocument is returned when Render is called without a document.
	ErrNilDocument = errors.New("svgrender: nil document")
)

// RenderError records a failed render step and its cause.
type RenderError struct {
	Op  string
	Err error
}

func (e *RenderError) Error() string {
	return "svgrender: " + e.Op + ": " + e.Err.Error()
}

func (e *RenderError) Unwrap() error {
	return e.Err
}
