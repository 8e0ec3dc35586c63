// Package logging holds the process wide structured logger.
//
// By default nothing is logged. Commands call SetLogger once at startup;
// library packages call Logger() at the point of use.
package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards every record. Enabled returns false, so callers skip
// formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// SetLogger replaces the logger; nil restores the silent default.
//
// Levels in use:
//   - [slog.LevelDebug]: mesh and classification statistics
//   - [slog.LevelInfo]: animation lifecycle and timing summaries
//   - [slog.LevelWarn]: degraded output, such as a terminal smaller than a frame
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger; safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
