//go:build fyne

package fyne

import (
	"fmt"
	"log/slog"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/widget"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
)

func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendFyne,
		Summary: summary,
		New: func() (backend.Backend, error) {
			if err := backend.RequireDisplay(); err != nil {
				return nil, fmt.Errorf("fyne: %w", err)
			}
			return New(AppID, DefaultTitle), nil
		},
	})
}

// Backend is the Fyne backend.
type Backend struct {
	backend.Unimplemented

	app    fyne.App
	window fyne.Window

	mu          sync.Mutex
	running     bool
	pendingQuit bool
	logger      *slog.Logger
}

// New creates a Fyne application with one main window.
func New(id, title string) *Backend {
	a := app.NewWithID(id)
	w := a.NewWindow(title)
	w.SetContent(widget.NewLabel(title))
	w.Resize(fyne.NewSize(DefaultWidth, DefaultHeight))
	w.SetMaster()
	return &Backend{
		app:    a,
		window: w,
		logger: appkit.Logger(),
	}
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

// Window returns the main window.
func (b *Backend) Window() fyne.Window {
	return b.window
}

// Run shows the main window and runs the Fyne event loop until Quit is
// called or the window is closed.
func (b *Backend) Run() error {
	b.mu.Lock()
	if b.pendingQuit {
		b.pendingQuit = false
		b.mu.Unlock()
		return nil
	}
	b.running = true
	logger := b.logger
	b.mu.Unlock()

	logger.Debug("fyne: running")
	b.window.ShowAndRun()

	b.mu.Lock()
	b.running = false
	b.mu.Unlock()
	return nil
}

// Quit stops the Fyne event loop. Called before Run, it makes the next
// Run return immediately.
func (b *Backend) Quit() error {
	b.mu.Lock()
	running := b.running
	if !running {
		b.pendingQuit = true
	}
	b.mu.Unlock()
	if running {
		b.app.Quit()
	}
	return nil
}

// Native returns the fyne.App.
func (b *Backend) Native() (any, error) {
	return b.app, nil
}
