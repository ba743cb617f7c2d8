//go:build gtk

package gtk

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/gotk3/gotk3/glib"
	"github.com/gotk3/gotk3/gtk"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
)

func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendGTK,
		Summary: summary,
		New: func() (backend.Backend, error) {
			return New(AppID, DefaultTitle)
		},
	})
}

// Backend is the GTK backend.
type Backend struct {
	app   *gtk.Application
	title string

	mu          sync.Mutex
	running     bool
	pendingQuit bool
	logger      *slog.Logger
}

// New initializes GTK and creates an application whose main window has
// the given title. It fails with backend.ErrUnavailable when GTK cannot be
// initialized, e.g. without a display.
func New(id, title string) (*Backend, error) {
	if err := gtk.InitCheck(nil); err != nil {
		return nil, fmt.Errorf("%w: gtk init: %w", backend.ErrUnavailable, err)
	}
	app, err := gtk.ApplicationNew(id, glib.APPLICATION_FLAGS_NONE)
	if err != nil {
		return nil, fmt.Errorf("%w: gtk.ApplicationNew: %w", backend.ErrUnavailable, err)
	}
	b := &Backend{
		app:    app,
		title:  title,
		logger: appkit.Logger(),
	}
	app.Connect("activate", b.activate)
	return b, nil
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return Name
}

// SetLogger replaces the backend's logger.
func (b *Backend) SetLogger(l *slog.Logger) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.logger = l
}

func (b *Backend) activate() {
	win, err := gtk.ApplicationWindowNew(b.app)
	if err != nil {
		b.mu.Lock()
		logger := b.logger
		b.mu.Unlock()
		logger.Error("gtk: create window", "error", err)
		return
	}
	win.SetTitle(b.title)
	win.SetDefaultSize(DefaultWidth, DefaultHeight)
	win.ShowAll()
}

// ProcessEvents dispatches every pending GTK event without blocking and
// returns how many were handled.
func (b *Backend) ProcessEvents() (int, error) {
	n := 0
	for gtk.EventsPending() {
		gtk.MainIteration()
		n++
	}
	return n, nil
}

// Run runs the GTK application until Quit is called. The application is
// held, so closing its last window does not end the loop.
func (b *Backend) Run() error {
	b.mu.Lock()
	if b.pendingQuit {
		b.pendingQuit = false
		b.mu.Unlock()
		return nil
	}
	b.running = true
	b.mu.Unlock()

	b.app.Hold()
	code := b.app.Run(nil)

	b.mu.Lock()
	b.running = false
	b.mu.Unlock()

	if code != 0 {
		return fmt.Errorf("gtk: application exited with status %d", code)
	}
	return nil
}

// Quit ends the running loop from any goroutine. Called before Run, it
// makes the next Run return immediately.
func (b *Backend) Quit() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		b.pendingQuit = true
		return nil
	}
	glib.IdleAdd(func() bool {
		b.app.Release()
		b.app.Quit()
		return false
	})
	return nil
}

// Native returns the *gtk.Application.
func (b *Backend) Native() (any, error) {
	return b.app, nil
}
