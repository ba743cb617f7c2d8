package appkit

import (
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/gogpu/appkit/backend"
)

// Application owns the one active GUI backend of a program and forwards
// event-loop control to it.
//
// A program creates a single Application at startup and passes it to the
// code that needs it. The backend is chosen once with Select; every other
// method forwards to that backend unchanged.
type Application struct {
	registry       *backend.Registry
	defaultBackend string
	metrics        *metrics

	// sel is written once by Select and read by every forwarding call,
	// possibly from toolkit callbacks on other goroutines.
	sel atomic.Pointer[selection]
}

// selection is the module and adapter instance owned by an Application.
type selection struct {
	module  *backend.Module
	backend backend.Backend
}

// New creates an Application with no backend selected.
func New(opts ...Option) *Application {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Application{
		registry:       o.registry,
		defaultBackend: o.defaultBackend,
		metrics:        newMetrics(o.registerer),
	}
}

// String describes the application and the toolkit it wraps.
func (a *Application) String() string {
	name := a.BackendName()
	if name == "" {
		return "appkit application (no backend)"
	}
	return fmt.Sprintf("appkit application wrapping the %s toolkit", name)
}

// BackendName returns the name reported by the selected backend,
// or "" if no backend is selected.
func (a *Application) BackendName() string {
	s := a.sel.Load()
	if s == nil {
		return ""
	}
	return s.backend.Name()
}

// BackendModule returns the module the selected backend was created from,
// or nil if no backend is selected.
func (a *Application) BackendModule() *backend.Module {
	s := a.sel.Load()
	if s == nil {
		return nil
	}
	return s.module
}

// Backend returns the selected adapter, or nil.
func (a *Application) Backend() backend.Backend {
	s := a.sel.Load()
	if s == nil {
		return nil
	}
	return s.backend
}

// Select chooses the backend by name. An empty name means the configured
// default backend (see WithDefaultBackend).
//
// Once a backend is selected, Select with an empty name, the name "auto",
// or a name matching the current backend (case-insensitively, either its
// reported name or its module name) does nothing. Any other name fails with
// ErrAlreadySelected.
//
// A failed selection leaves the Application unchanged.
func (a *Application) Select(name string) error {
	name = strings.TrimSpace(name)
	if cur := a.sel.Load(); cur != nil {
		return a.reselect(cur, name)
	}

	requested := name
	if requested == "" {
		requested = strings.TrimSpace(a.defaultBackend)
	}
	if requested == "" {
		a.metrics.selected(unknownLabel, "not_found")
		return fmt.Errorf("%w: no backend requested and no default configured", ErrBackendNotFound)
	}

	mod, b, err := a.registry.Open(requested)
	if err != nil {
		a.metrics.selected(a.label(requested), "not_found")
		return err
	}

	if !a.sel.CompareAndSwap(nil, &selection{module: mod, backend: b}) {
		// Another goroutine selected first; ours was never exposed.
		Logger().Warn("appkit: discarding backend after concurrent selection", "backend", b.Name())
		if c, ok := b.(io.Closer); ok {
			_ = c.Close()
		}
		return a.reselect(a.sel.Load(), name)
	}

	propagateLogger(b, b.Name())
	a.metrics.selected(mod.Name, "selected")
	Logger().Info("appkit: backend selected", "backend", b.Name(), "module", mod.Name)
	return nil
}

func (a *Application) reselect(cur *selection, name string) error {
	if name == "" ||
		strings.EqualFold(name, backend.Auto) ||
		strings.EqualFold(name, cur.backend.Name()) ||
		strings.EqualFold(name, cur.module.Name) {
		return nil
	}
	a.metrics.selected(a.label(name), "rejected")
	return fmt.Errorf("%w: %s is active, %q requested", ErrAlreadySelected, cur.backend.Name(), name)
}

// unknownLabel is the metrics label for names no module is registered under.
const unknownLabel = "unknown"

// label maps a requested name to a bounded metrics label: a registered
// module name, "auto", or unknownLabel.
func (a *Application) label(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == backend.Auto || a.registry.IsRegistered(name) {
		return name
	}
	return unknownLabel
}

// current returns the selected backend or ErrNoBackend.
func (a *Application) current() (backend.Backend, error) {
	s := a.sel.Load()
	if s == nil {
		return nil, ErrNoBackend
	}
	return s.backend, nil
}

// ProcessEvents dispatches all pending native events without blocking and
// returns how many were dispatched. Call it regularly when the native loop
// is not running to keep the application responsive.
func (a *Application) ProcessEvents() (int, error) {
	b, err := a.current()
	if err != nil {
		return 0, err
	}
	n, err := b.ProcessEvents()
	a.metrics.processed(n)
	return n, err
}

// Run enters the native event loop. It blocks until Quit is called.
func (a *Application) Run() error {
	b, err := a.current()
	if err != nil {
		return err
	}
	a.metrics.ran()
	Logger().Info("appkit: entering native loop", "backend", b.Name())
	err = b.Run()
	Logger().Info("appkit: native loop exited", "backend", b.Name(), "error", err)
	return err
}

// Quit asks the native event loop to stop, making Run return.
// It is safe to call from event callbacks running inside the loop.
func (a *Application) Quit() error {
	b, err := a.current()
	if err != nil {
		return err
	}
	Logger().Debug("appkit: quit requested", "backend", b.Name())
	return b.Quit()
}

// Native returns the toolkit's own application object. Its concrete type
// depends on the backend; callers type-assert it for toolkit-specific use.
func (a *Application) Native() (any, error) {
	b, err := a.current()
	if err != nil {
		return nil, err
	}
	return b.Native()
}
