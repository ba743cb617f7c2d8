//go:build !fyne

package fyne

import (
	"fmt"

	"github.com/gogpu/appkit/backend"
)

// init registers an unavailable module when the fyne tag is not set, so
// selecting "fyne" reports why instead of "not registered".
func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendFyne,
		Summary: summary + " (not built)",
		New: func() (backend.Backend, error) {
			return nil, fmt.Errorf("%w: rebuild with -tags fyne", backend.ErrUnavailable)
		},
	})
}
