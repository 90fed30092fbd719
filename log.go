package search

import (
	"context"
	"log/slog"
)

// nopHandler is a slog.Handler that discards every record. It gives the
// Engine a non-nil logger by default so call sites never need a nil
// check before logging.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (n nopHandler) WithAttrs([]slog.Attr) slog.Handler       { return n }
func (n nopHandler) WithGroup(string) slog.Handler            { return n }

func newNopLogger() *slog.Logger {
	return slog.New(nopHandler{})
}
