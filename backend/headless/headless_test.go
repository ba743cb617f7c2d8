package headless

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/gogpu/gg"

	"github.com/gogpu/appkit"
	"github.com/gogpu/appkit/backend"
)

func TestHeadlessRegistered(t *testing.T) {
	if !backend.IsRegistered(backend.BackendHeadless) {
		t.Fatal("headless backend should be registered on import")
	}
	m, b, err := backend.Open("HEADLESS")
	if err != nil {
		t.Fatalf("Open(HEADLESS) error = %v", err)
	}
	if m.Name != backend.BackendHeadless {
		t.Errorf("module name = %q, want %q", m.Name, backend.BackendHeadless)
	}
	if b.Name() != Name {
		t.Errorf("Name() = %q, want %q", b.Name(), Name)
	}
}

func TestProcessEventsRunsPostedWork(t *testing.T) {
	b := New(64, 64)

	if n, err := b.ProcessEvents(); err != nil || n != 0 {
		t.Fatalf("ProcessEvents() on empty queue = %d, %v, want 0, nil", n, err)
	}

	ran := 0
	for range 3 {
		b.Post(func(*gg.Context) { ran++ })
	}
	b.Post(nil)

	n, err := b.ProcessEvents()
	if err != nil {
		t.Fatalf("ProcessEvents() error = %v", err)
	}
	if n != 3 || ran != 3 {
		t.Errorf("ProcessEvents() = %d (ran %d), want 3", n, ran)
	}
	if b.Frames() != 3 {
		t.Errorf("Frames() = %d, want 3", b.Frames())
	}
}

func TestProcessEventsConsumesQuitWithoutLoop(t *testing.T) {
	b := New(8, 8)
	_ = b.Quit()
	ran := false
	b.Post(func(*gg.Context) { ran = true })

	n, err := b.ProcessEvents()
	if err != nil || n != 1 || !ran {
		t.Fatalf("ProcessEvents() = %d, %v (ran %v), want 1, nil, true", n, err, ran)
	}
}

func TestRunReturnsAfterQuitFromCallback(t *testing.T) {
	b := New(32, 32)
	b.Post(func(*gg.Context) {
		_ = b.Quit()
	})
	late := false
	b.Post(func(*gg.Context) { late = true })

	done := make(chan error, 1)
	go func() { done <- b.Run() }()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after Quit from callback")
	}
	// The quit request was queued after the second callback.
	if !late {
		t.Error("callback queued before the quit request did not run")
	}
}

func TestRunReturnsAfterQuitFromOtherGoroutine(t *testing.T) {
	b := New(32, 32)

	started := make(chan struct{})
	b.Post(func(*gg.Context) { close(started) })

	done := make(chan error, 1)
	go func() { done <- b.Run() }()

	<-started
	select {
	case <-done:
		t.Fatal("Run() returned before Quit")
	case <-time.After(20 * time.Millisecond):
	}

	_ = b.Quit()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
	case <-time.After(time.Second):
		t.Fatal("Run() did not return after Quit")
	}
}

func TestRunKeepsWorkQueuedAfterQuit(t *testing.T) {
	b := New(8, 8)
	_ = b.Quit()
	ran := false
	b.Post(func(*gg.Context) { ran = true })

	if err := b.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if ran {
		t.Fatal("callback queued after quit ran in the stopped loop")
	}
	if n, _ := b.ProcessEvents(); n != 1 || !ran {
		t.Errorf("ProcessEvents() = %d, want the remaining callback to run", n)
	}
}

func TestConcurrentPost(t *testing.T) {
	b := New(8, 8)
	var wg sync.WaitGroup
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b.Post(func(*gg.Context) {})
		}()
	}
	wg.Wait()

	if n, _ := b.ProcessEvents(); n != 50 {
		t.Errorf("ProcessEvents() = %d, want 50", n)
	}
}

func TestNativeIsCanvas(t *testing.T) {
	b := New(100, 50)
	native, err := b.Native()
	if err != nil {
		t.Fatalf("Native() error = %v", err)
	}
	dc, ok := native.(*gg.Context)
	if !ok {
		t.Fatalf("Native() = %T, want *gg.Context", native)
	}
	if dc != b.Canvas() {
		t.Error("Native() should return the backend canvas")
	}
	if dc.Width() != 100 || dc.Height() != 50 {
		t.Errorf("canvas size = %dx%d, want 100x50", dc.Width(), dc.Height())
	}
}

func TestSavePNG(t *testing.T) {
	b := New(16, 16)
	b.Post(func(dc *gg.Context) {
		dc.SetRGB(1, 0, 0)
		dc.DrawRectangle(0, 0, 16, 16)
		_ = dc.Fill()
	})
	if _, err := b.ProcessEvents(); err != nil {
		t.Fatalf("ProcessEvents() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := b.SavePNG(path); err != nil {
		t.Fatalf("SavePNG() error = %v", err)
	}
	if info, err := os.Stat(path); err != nil || info.Size() == 0 {
		t.Fatalf("SavePNG() wrote nothing: %v", err)
	}
}

func TestApplicationWithHeadless(t *testing.T) {
	app := appkit.New(appkit.WithDefaultBackend("headless"))
	if err := app.Select(""); err != nil {
		t.Fatalf("Select(\"\") error = %v", err)
	}
	hb, ok := app.Backend().(*Backend)
	if !ok {
		t.Fatalf("Backend() = %T, want *headless.Backend", app.Backend())
	}

	hb.Post(func(*gg.Context) {
		if err := app.Quit(); err != nil {
			t.Errorf("Quit() from callback error = %v", err)
		}
	})
	if err := app.Run(); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if hb.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", hb.Frames())
	}
}
