package appkit

import (
	"log/slog"
	"sync/atomic"
)

// silent discards every record; its handler reports every level disabled,
// so log calls return before formatting.
var silent = slog.New(slog.DiscardHandler)

// current holds the logger shared by the Application and its adapters.
// Native loops log from their own goroutines, so it is read atomically.
var current atomic.Pointer[slog.Logger]

func init() {
	current.Store(silent)
}

// SetLogger configures the logger for appkit and its backend adapters.
// appkit is silent until SetLogger is called; SetLogger(nil) silences it
// again.
//
// Adapters receive the logger when they are selected, tagged with
// backend=<name>. Records by level:
//   - [slog.LevelDebug]: quit requests and adapter internals
//   - [slog.LevelInfo]: backend selected, native loop entered and exited
//   - [slog.LevelWarn]: adapters discarded after a lost selection race
//
//	appkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: cfg.SlogLevel(),
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger appkit currently writes to.
// Adapter constructors call it for their initial logger.
func Logger() *slog.Logger {
	return current.Load()
}

// loggerSetter is implemented by adapters that keep their own logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

// propagateLogger hands the current logger to a freshly selected adapter,
// tagged with the adapter's name.
func propagateLogger(b any, name string) {
	if ls, ok := b.(loggerSetter); ok {
		ls.SetLogger(Logger().With("backend", name))
	}
}
