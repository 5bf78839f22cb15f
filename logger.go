package svgrender

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discardHandler drops every record. Enabled reports false, so the
// attributes of a skipped node or layer are never formatted.
type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (discardHandler) WithAttrs([]slog.Attr) slog.Handler        { return discardHandler{} }
func (discardHandler) WithGroup(string) slog.Handler             { return discardHandler{} }

func silentLogger() *slog.Logger { return slog.New(discardHandler{}) }

// activeLogger is read by every traversal and may be replaced while other
// goroutines render.
var activeLogger atomic.Pointer[slog.Logger]

func init() {
	activeLogger.Store(silentLogger())
}

// SetLogger routes the diagnostics of Render and DrawingContext.Draw to l.
// Rendering never fails because of a malformed tree; nodes, clip paths and
// masks that cannot be used are skipped and reported here instead.
// Passing nil silences the package again, which is also the default.
//
// Records carry the node id under "node" and the referenced definition
// under "ref", "clip" or "mask":
//   - [slog.LevelDebug]: skipped fills, non-shape clip content, clip paths
//     and masks whose objectBoundingBox cannot be resolved, and every
//     offscreen layer with its clip depth
//   - [slog.LevelWarn]: clip-path or mask references that point at a node of
//     the wrong kind or back into the definition being drawn
//
// Example:
//
//	svgrender.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silentLogger()
	}
	activeLogger.Store(l)
}

// Logger returns the logger set by SetLogger. It is safe for concurrent use.
func Logger() *slog.Logger {
	return activeLogger.Load()
}
