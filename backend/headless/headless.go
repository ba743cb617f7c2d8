// Package headless provides an in-process backend with an offscreen canvas.
//
// The headless backend has no window and no native toolkit. Its main loop
// executes work posted with Post against a gg drawing context, which makes
// it useful for tests, CI, and rendering frames to images.
//
//	import _ "github.com/gogpu/appkit/backend/headless"
//
//	app.Select("headless")
//	hb := app.Backend().(*headless.Backend)
//	hb.Post(func(dc *gg.Context) {
//		dc.DrawCircle(100, 100, 50)
//		_ = dc.Fill()
//	})
//	n, _ := app.ProcessEvents() // runs the posted callback
package headless

import (
	"log/slog"
	"sync"

	"github.com/gogpu/gg"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
)

// Canvas size used by the registered factory.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
)

// Name is the name the headless backend reports.
const Name = "Headless"

func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendHeadless,
		Summary: "in-process loop with an offscreen gg canvas",
		New: func() (backend.Backend, error) {
			return New(DefaultWidth, DefaultHeight), nil
		},
	})
}

// task is one queued unit of work. A nil fn is a quit request.
type task struct {
	fn func(*gg.Context)
}

// Backend is the headless backend. All methods are safe for concurrent use;
// posted callbacks run on the goroutine calling Run or ProcessEvents.
type Backend struct {
	canvas *gg.Context

	mu     sync.Mutex
	queue  []task
	frames int
	logger *slog.Logger

	// wake is signalled whenever the queue becomes non-empty.
	wake chan struct{}
}

// New creates a headless backend with a width x height canvas.
func New(width, height int) *Backend {
	return &Backend{
		canvas: gg.NewContext(width, height),
		wake:   make(chan struct{}, 1),
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

// Canvas returns the offscreen drawing context.
// Only touch it from posted callbacks while a loop may be running.
func (b *Backend) Canvas() *gg.Context {
	return b.canvas
}

// Frames returns how many posted callbacks have run.
func (b *Backend) Frames() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.frames
}

// Post queues fn to run on the loop goroutine. It never blocks.
func (b *Backend) Post(fn func(*gg.Context)) {
	if fn == nil {
		return
	}
	b.enqueue(task{fn: fn})
}

func (b *Backend) enqueue(t task) {
	b.mu.Lock()
	b.queue = append(b.queue, t)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// take removes and returns everything queued so far.
func (b *Backend) take() []task {
	b.mu.Lock()
	defer b.mu.Unlock()
	tasks := b.queue
	b.queue = nil
	return tasks
}

// drain runs queued tasks. It stops at the first quit request and reports
// whether one was seen; tasks queued after it stay queued.
func (b *Backend) drain() (n int, quit bool) {
	tasks := b.take()
	for i, t := range tasks {
		if t.fn == nil {
			b.requeue(tasks[i+1:])
			return n, true
		}
		t.fn(b.canvas)
		n++
		b.mu.Lock()
		b.frames++
		b.mu.Unlock()
	}
	return n, false
}

// requeue puts unprocessed tasks back at the front of the queue.
func (b *Backend) requeue(rest []task) {
	if len(rest) == 0 {
		return
	}
	b.mu.Lock()
	b.queue = append(append([]task(nil), rest...), b.queue...)
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// ProcessEvents runs every callback queued so far without waiting for more.
// A quit request found in the queue is consumed, since no loop is running.
func (b *Backend) ProcessEvents() (int, error) {
	total := 0
	for {
		n, quit := b.drain()
		total += n
		if !quit {
			return total, nil
		}
	}
}

// Run executes posted callbacks until Quit is called.
func (b *Backend) Run() error {
	b.mu.Lock()
	logger := b.logger
	b.mu.Unlock()
	logger.Debug("headless: loop started")

	for {
		n, quit := b.drain()
		if n > 0 {
			logger.Debug("headless: processed tasks", "count", n)
		}
		if quit {
			logger.Debug("headless: loop stopped", "frames", b.Frames())
			return nil
		}
		<-b.wake
	}
}

// Quit queues a quit request. The running loop finishes the callbacks
// queued before it and returns. A request made before Run ends that run.
func (b *Backend) Quit() error {
	b.enqueue(task{})
	return nil
}

// Native returns the offscreen *gg.Context.
func (b *Backend) Native() (any, error) {
	return b.canvas, nil
}

// SavePNG writes the current canvas to path.
func (b *Backend) SavePNG(path string) error {
	return b.canvas.SavePNG(path)
}
