package textedit

import (
	"log/slog"

	"github.com/gogpu/textedit/font"
)

// SetLogger configures logging for textedit and the font package; both
// share one logger. By default nothing is logged. Pass nil to restore the
// silent default. SetLogger is safe for concurrent use.
//
// Levels used:
//   - [slog.LevelDebug]: re-layout diagnostics (restart line, rune counts),
//     font loading
//   - [slog.LevelWarn]: rejected input (malformed UTF-8), glyphs that did
//     not fit the atlas
//
// Example:
//
//	textedit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) { font.SetLogger(l) }

// Logger returns the current logger. It is never nil.
func Logger() *slog.Logger { return font.Logger() }

func slogger() *slog.Logger { return font.Logger() }
