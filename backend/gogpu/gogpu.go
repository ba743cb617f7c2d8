// Package gogpu provides a backend that opens a native window through the
// Pure Go gogpu framework.
//
// The native handle is the *gogpu.App. Frames are drawn with the gg API:
//
//	b := gogpu.New("Demo", 800, 600)
//	b.Draw(func(dc *gg.Context) {
//		dc.SetRGB(1, 0, 0)
//		dc.DrawCircle(400, 300, 100)
//		_ = dc.Fill()
//	})
//
// gogpu owns its event loop, so ProcessEvents is not supported.
package gogpu

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
)

// Name is the name the gogpu backend reports.
const Name = "GoGPU"

// Default window parameters used by the registered factory.
const (
	DefaultTitle  = "appkit"
	DefaultWidth  = 800
	DefaultHeight = 600
)

// ErrNoApp is returned when the backend has no gogpu application.
var ErrNoApp = errors.New("gogpu: backend has no application")

func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendGoGPU,
		Summary: "native window through the Pure Go gogpu framework",
		New: func() (backend.Backend, error) {
			return Open(DefaultTitle, DefaultWidth, DefaultHeight)
		},
	})
}

// Backend is the gogpu windowing backend.
type Backend struct {
	backend.Unimplemented

	app *gogpu.App

	mu     sync.Mutex
	draw   func(*gg.Context)
	canvas *ggcanvas.Canvas
	logger *slog.Logger
}

// Open checks that a display is reachable and creates a backend with New.
// Without a display it fails with backend.ErrUnavailable.
func Open(title string, width, height int) (*Backend, error) {
	if err := backend.RequireDisplay(); err != nil {
		return nil, fmt.Errorf("gogpu: %w", err)
	}
	return New(title, width, height), nil
}

// New creates a backend with a window of the given title and size.
// The window opens when Run is called. New does not check for a display;
// registered factories use Open.
func New(title string, width, height int) *Backend {
	b := &Backend{
		app: gogpu.NewApp(gogpu.DefaultConfig().
			WithTitle(title).
			WithSize(width, height)),
		logger: appkit.Logger(),
	}
	b.app.OnDraw(b.frame)
	b.app.OnClose(b.close)
	return b
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

// Draw installs the callback that paints each frame. A nil fn leaves the
// window content untouched.
func (b *Backend) Draw(fn func(*gg.Context)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.draw = fn
}

// DeviceProvider returns the GPU device shared by the window, or nil
// before the window has been created.
func (b *Backend) DeviceProvider() gpucontext.DeviceProvider {
	if b.app == nil {
		return nil
	}
	return b.app.GPUContextProvider()
}

// Run opens the window and blocks until it is closed or Quit is called.
func (b *Backend) Run() error {
	if b.app == nil {
		return ErrNoApp
	}
	if err := b.app.Run(); err != nil {
		return fmt.Errorf("gogpu: run: %w", err)
	}
	return nil
}

// Quit asks the window loop to stop.
func (b *Backend) Quit() error {
	if b.app == nil {
		return ErrNoApp
	}
	b.app.Quit()
	return nil
}

// Native returns the *gogpu.App.
func (b *Backend) Native() (any, error) {
	if b.app == nil {
		return nil, ErrNoApp
	}
	return b.app, nil
}

// frame runs on the gogpu render thread.
func (b *Backend) frame(dc *gogpu.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.draw == nil {
		return
	}

	w, h := dc.Width(), dc.Height()
	if w <= 0 || h <= 0 {
		return
	}

	if b.canvas == nil {
		provider := b.app.GPUContextProvider()
		if provider == nil {
			return
		}
		canvas, err := ggcanvas.New(provider, w, h)
		if err != nil {
			b.logger.Error("gogpu: create canvas", "error", err)
			return
		}
		b.canvas = canvas
		b.logger.Debug("gogpu: canvas created", "width", w, "height", h)
	}

	if cw, ch := b.canvas.Size(); cw != w || ch != h {
		if err := b.canvas.Resize(w, h); err != nil {
			b.logger.Warn("gogpu: resize canvas", "error", err)
		}
	}

	if err := b.canvas.Draw(b.draw); err != nil {
		b.logger.Warn("gogpu: draw", "error", err)
		return
	}
	if err := b.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		b.logger.Warn("gogpu: render", "error", err)
	}
}

func (b *Backend) close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.canvas == nil {
		return
	}
	if err := b.canvas.Close(); err != nil {
		b.logger.Warn("gogpu: close canvas", "error", err)
	}
	b.canvas = nil
}
