// Command appkit-demo selects a GUI backend by name and runs a small
// animated scene on it.
//
//	appkit-demo -list
//	appkit-demo -backend headless -frames 30 -output demo.png
//	appkit-demo -backend terminal
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gogpu/gg"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
	_ "github.com/gogpu/appkit/backend/all"
	gogpubackend "github.com/gogpu/appkit/backend/gogpu"
	"github.com/gogpu/appkit/backend/headless"
	"github.com/gogpu/appkit/backend/terminal"
	"github.com/gogpu/appkit/config"
)

var (
	nameStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#50FA7B")).Width(10)
	summaryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath = flag.String("config", "", "config file (TOML or YAML, optional)")
		name       = flag.String("backend", "", "backend to use (overrides config)")
		list       = flag.Bool("list", false, "list registered backends and exit")
		output     = flag.String("output", "demo.png", "PNG written by the headless backend")
		frames     = flag.Int("frames", 60, "frames drawn by the headless backend")
		poll       = flag.Bool("poll", false, "drive the loop with ProcessEvents instead of Run")
	)
	flag.Parse()

	if *list {
		printBackends(os.Stdout)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "appkit-demo: %v\n", err)
		return 1
	}

	appkit.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	registerTitled(cfg.Title)

	app := appkit.New(appkit.WithDefaultBackend(cfg.DefaultBackend))
	if err := app.Select(*name); err != nil {
		fmt.Fprintf(os.Stderr, "appkit-demo: %v\n", err)
		if errors.Is(err, appkit.ErrBackendNotFound) {
			fmt.Fprintf(os.Stderr, "available: %s\n", strings.Join(backend.Available(), ", "))
		}
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := runDemo(ctx, app, cfg, *frames, *output, *poll); err != nil {
		fmt.Fprintf(os.Stderr, "appkit-demo: %v\n", err)
		return 1
	}
	return 0
}

// registerTitled replaces the default factories of the windowed backends
// with ones using the configured title.
func registerTitled(title string) {
	backend.Register(backend.Module{
		Name:    backend.BackendGoGPU,
		Summary: "native window through the Pure Go gogpu framework",
		New: func() (backend.Backend, error) {
			return gogpubackend.Open(title, gogpubackend.DefaultWidth, gogpubackend.DefaultHeight)
		},
	})
	backend.Register(backend.Module{
		Name:    backend.BackendTerminal,
		Summary: "terminal UI driven by Bubble Tea",
		New: func() (backend.Backend, error) {
			return terminal.New(title, tea.WithAltScreen()), nil
		},
	})
}

func runDemo(ctx context.Context, app *appkit.Application, cfg config.Config, frames int, output string, poll bool) error {
	switch b := app.Backend().(type) {
	case *headless.Backend:
		return runHeadless(ctx, app, b, cfg, frames, output, poll)
	case *gogpubackend.Backend:
		frame := 0
		b.Draw(func(dc *gg.Context) {
			drawScene(dc, frame)
			frame++
		})
	}

	go func() {
		<-ctx.Done()
		if err := app.Quit(); err != nil {
			appkit.Logger().Warn("appkit-demo: quit", "error", err)
		}
	}()

	if poll {
		err := app.Poll(ctx, cfg.PollInterval)
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
	return app.Run()
}

// runHeadless draws frames offscreen and saves the last one.
func runHeadless(ctx context.Context, app *appkit.Application, b *headless.Backend, cfg config.Config, frames int, output string, poll bool) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	for i := 0; i < frames; i++ {
		b.Post(func(dc *gg.Context) { drawScene(dc, i) })
	}
	b.Post(func(*gg.Context) {
		stop()
		_ = app.Quit()
	})

	var err error
	if poll {
		err = app.Poll(ctx, cfg.PollInterval)
		if errors.Is(err, context.Canceled) {
			err = nil
		}
	} else {
		err = app.Run()
	}
	if err != nil {
		return err
	}

	if err := b.SavePNG(output); err != nil {
		return fmt.Errorf("save %s: %w", output, err)
	}
	appkit.Logger().Info("appkit-demo: frames rendered", "frames", b.Frames(), "output", output)
	return nil
}

func printBackends(w io.Writer) {
	for _, m := range backend.Default.Modules() {
		fmt.Fprintf(w, "%s %s\n", nameStyle.Render(m.Name), summaryStyle.Render(m.Summary))
	}
}
