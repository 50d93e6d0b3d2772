package font

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so callers skip
// formatting attributes altogether.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (discard) WithAttrs([]slog.Attr) slog.Handler        { return discard{} }
func (discard) WithGroup(string) slog.Handler             { return discard{} }

var silent = slog.New(discard{})

// shared is the logger of the font package and of textedit, which
// forwards its SetLogger here.
var shared atomic.Pointer[slog.Logger]

func init() { shared.Store(silent) }

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger { return shared.Load() }

// SetLogger replaces the logger. nil restores the silent default.
// It is safe to call concurrently with logging.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	shared.Store(l)
}

func slogger() *slog.Logger { return shared.Load() }
