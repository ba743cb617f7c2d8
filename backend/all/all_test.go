package all

import (
	"runtime"
	"testing"

	"github.com/gogpu/appkit/backend"
)

func TestAllRegistered(t *testing.T) {
	for _, name := range backend.DefaultPriority {
		if !backend.IsRegistered(name) {
			t.Errorf("backend %q is not registered", name)
		}
	}
}

func TestAvailableSorted(t *testing.T) {
	names := backend.Available()
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("Available() not sorted: %v", names)
		}
	}
}

func TestAutoSkipsWindowedWithoutDisplay(t *testing.T) {
	switch runtime.GOOS {
	case "windows", "darwin":
		t.Skip("a display is always assumed on " + runtime.GOOS)
	}
	t.Setenv("DISPLAY", "")
	t.Setenv("WAYLAND_DISPLAY", "")

	m, b, err := backend.Open(backend.Auto)
	if err != nil {
		t.Fatalf("Open(auto) error = %v", err)
	}
	for _, windowed := range []string{backend.BackendGoGPU, backend.BackendFyne, backend.BackendGTK} {
		if m.Name == windowed {
			t.Errorf("Open(auto) selected %q without a display", m.Name)
		}
	}
	if b == nil {
		t.Error("Open(auto) returned a nil backend")
	}
}
