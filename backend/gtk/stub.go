//go:build !gtk

package gtk

import (
	"fmt"

	"github.com/gogpu/appkit/backend"
)

// init registers an unavailable module when the gtk tag is not set.
func init() {
	backend.Register(backend.Module{
		Name:    backend.BackendGTK,
		Summary: summary + " (not built)",
		New: func() (backend.Backend, error) {
			return nil, fmt.Errorf("%w: rebuild with -tags gtk", backend.ErrUnavailable)
		},
	})
}
