package procedural

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled reports false, so generators
// skip building their buffer summaries when nobody listens.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is swapped atomically: cmd/meshgen installs its handler while
// the preview and generators may already be logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger shared by procedural, preview and meshgen.
// Nothing is logged until it is called; nil restores the silent default.
//
// Records emitted:
//   - [slog.LevelDebug] "procedural: plane generated", "box generated",
//     "sphere generated", "rounded box generated": the resulting buffer
//     summary (vertices, triangles, UV channels).
//   - [slog.LevelDebug] "Normal called before Position" and
//     "TextureCoord called before Position": the call was dropped.
//   - [slog.LevelDebug] "vertices welded": counts before and after.
//   - [slog.LevelDebug] "line vertex outside strip": a LineMesh vertex
//     given with no open strip was dropped.
//   - [slog.LevelDebug] "preview: multishape filled", "preview: buffer
//     filled": shape count or front-facing triangle count.
//   - [slog.LevelWarn] "buffer failed validation": MeshData refused the
//     buffer; the error is attached.
//
// Example:
//
//	procedural.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger set by SetLogger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
