// Package terminal provides a backend that runs the application in a
// terminal, using Bubble Tea as the native toolkit.
//
// The native handle is the *tea.Program. A tea.Program cannot be started
// twice, so every completed Run replaces it with a fresh program: the handle
// is stable until Run returns, and callers keeping it across runs should
// fetch it again. Bubble Tea owns its event loop, so ProcessEvents is not
// supported; use Run.
package terminal

import (
	"errors"
	"log/slog"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
)

// Name is the name the terminal backend reports.
const Name = "BubbleTea"

// DefaultTitle is shown in the status view header.
const DefaultTitle = "appkit"

// ErrRunning is returned by Run when the program is already running.
var ErrRunning = errors.New("terminal: program already running")

func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendTerminal,
		Summary: "terminal UI driven by Bubble Tea",
		New: func() (backend.Backend, error) {
			return New(DefaultTitle, tea.WithAltScreen()), nil
		},
	})
}

// Backend is the terminal backend.
type Backend struct {
	backend.Unimplemented

	title string
	opts  []tea.ProgramOption

	mu          sync.Mutex
	program     *tea.Program
	running     bool
	pendingQuit bool
	logger      *slog.Logger
}

// New creates a terminal backend whose status view shows title.
// opts are passed to every tea.Program the backend creates.
func New(title string, opts ...tea.ProgramOption) *Backend {
	b := &Backend{
		title:  title,
		opts:   opts,
		logger: appkit.Logger(),
	}
	b.program = b.newProgram()
	return b
}

func (b *Backend) newProgram() *tea.Program {
	return tea.NewProgram(newModel(b.title), b.opts...)
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

// Run runs the Bubble Tea program until Quit is called or the user quits.
// Each Run uses a fresh program, so the backend can run again afterwards.
func (b *Backend) Run() error {
	b.mu.Lock()
	if b.running {
		b.mu.Unlock()
		return ErrRunning
	}
	if b.pendingQuit {
		b.pendingQuit = false
		b.mu.Unlock()
		return nil
	}
	p := b.program
	logger := b.logger
	b.running = true
	b.mu.Unlock()

	_, err := p.Run()

	b.mu.Lock()
	b.running = false
	b.program = b.newProgram()
	b.mu.Unlock()

	if errors.Is(err, tea.ErrProgramKilled) {
		logger.Debug("terminal: program killed", "error", err)
		return nil
	}
	return err
}

// Quit stops the running program. It never blocks, so it is safe from
// Bubble Tea commands and other goroutines. Called before Run, it makes
// the next Run return immediately.
func (b *Backend) Quit() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.running {
		b.pendingQuit = true
		return nil
	}
	// Program.Quit blocks until the event loop receives the message.
	go b.program.Quit()
	return nil
}

// Send delivers msg to the running program, e.g. a StatusMsg.
func (b *Backend) Send(msg tea.Msg) {
	b.mu.Lock()
	p := b.program
	running := b.running
	b.mu.Unlock()
	if running {
		go p.Send(msg)
	}
}

// Native returns the current *tea.Program. The same program is returned
// until a Run completes; the next Run uses a new one.
func (b *Backend) Native() (any, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.program, nil
}
