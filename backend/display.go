package backend

import (
	"fmt"
	"os"
	"runtime"
)

// RequireDisplay reports whether a windowing system is reachable.
// Windowing adapters call it from their factory so that Open fails with
// ErrUnavailable instead of selecting a toolkit that cannot open a window.
//
// On Windows, macOS, iOS and Android a display is always assumed. Other
// systems need WAYLAND_DISPLAY or DISPLAY to be set.
func RequireDisplay() error {
	return requireDisplay(runtime.GOOS, os.Getenv)
}

func requireDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "windows", "darwin", "ios", "android":
		return nil
	}
	if getenv("WAYLAND_DISPLAY") != "" || getenv("DISPLAY") != "" {
		return nil
	}
	return fmt.Errorf("%w: no display (WAYLAND_DISPLAY and DISPLAY are unset)", ErrUnavailable)
}
