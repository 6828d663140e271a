package pixbuf

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false for all levels,
// so slog never builds the attributes of a disabled call.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr holds the logger shared by pixbuf and its sub-packages.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger sets the logger used by pixbuf, glyph, anim and present.
// Logging is off until SetLogger is called; nil turns it off again.
// It may be called while other goroutines are logging.
//
// Records emitted, by level:
//   - [slog.LevelDebug]: "pixbuf: surface created", "glyph: resolving"
//     (glyph cache miss), "anim: started", "anim: completed",
//     "present: frame written"
//   - [slog.LevelInfo]: "present: selected backend"
//   - [slog.LevelWarn]: "pixbuf: export failed", "present: backend failed,
//     falling back", "present: scale skipped"
//
// Example:
//
//	pixbuf.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
