package glfw

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that discards every record. Enabled returns
// false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so SetLogger can
// run while a callback is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for glfw and the native binding below it.
// By default nothing is logged. Pass nil to restore the silent default.
//
// Log levels used:
//   - [slog.LevelDebug]: callback registration, window destruction, attachments
//   - [slog.LevelInfo]: library loading, init and terminate
//   - [slog.LevelWarn]: window creation failures, native errors with no handler
//
// Example:
//
//	glfw.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	if c, ok := Get(); ok {
		propagateLogger(c, l)
	}
}

// Logger returns the logger currently used by glfw.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// loggerSetter is implemented by native libraries that accept a logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger hands l to the context's native library when it can log.
// Called from SetLogger and from Init so the library always has the current one.
func propagateLogger(c *Context, l *slog.Logger) {
	if ls, ok := c.lib.(loggerSetter); ok {
		ls.SetLogger(l)
	}
}
