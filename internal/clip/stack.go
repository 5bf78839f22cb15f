package clip

import "image"

// Stack manages nested clip regions with push/pop operations.
// An empty stack clips nothing.
type Stack struct {
	entries []*image.Alpha
	bounds  image.Rectangle
}

// NewStack creates a clip stack for a device of the given size.
func NewStack(width, height int) *Stack {
	return &Stack{
		entries: make([]*image.Alpha, 0, 8),
		bounds:  image.Rect(0, 0, width, height),
	}
}

// Bounds returns the device rectangle covered by the stack.
func (s *Stack) Bounds() image.Rectangle {
	return s.bounds
}

// Push intersects coverage with the current clip and makes the result the
// new top of the stack. A nil coverage clips everything.
// The caller's mask is never modified.
func (s *Stack) Push(coverage *image.Alpha) {
	next := image.NewAlpha(s.bounds)
	if coverage != nil {
		copyInto(next, coverage)
	}
	if top := s.Mask(); top != nil {
		Intersect(next, top)
	}
	s.entries = append(s.entries, next)
}

// Pop removes the most recent clip level. Popping an empty stack is a no-op.
func (s *Stack) Pop() {
	if len(s.entries) == 0 {
		return
	}
	s.entries[len(s.entries)-1] = nil
	s.entries = s.entries[:len(s.entries)-1]
}

// Depth returns the number of active clip levels.
func (s *Stack) Depth() int {
	return len(s.entries)
}

// Mask returns the combined clip coverage, or nil when nothing is clipped.
// The returned mask is owned by the stack.
func (s *Stack) Mask() *image.Alpha {
	if len(s.entries) == 0 {
		return nil
	}
	return s.entries[len(s.entries)-1]
}

// Apply multiplies dst by the current clip in place.
func (s *Stack) Apply(dst *image.Alpha) {
	if top := s.Mask(); top != nil {
		Intersect(dst, top)
	}
}

func copyInto(dst, src *image.Alpha) {
	r := dst.Rect.Intersect(src.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		di := dst.PixOffset(r.Min.X, y)
		si := src.PixOffset(r.Min.X, y)
		copy(dst.Pix[di:di+r.Dx()], src.Pix[si:si+r.Dx()])
	}
}
