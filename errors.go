package appkit

import (
	"errors"

	"github.com/gogpu/appkit/backend"
)

// Application errors. Match them with errors.Is; the returned errors wrap
// these sentinels with the backend names involved.
var (
	// ErrAlreadySelected is returned when Select asks for a different backend
	// after one has been selected.
	ErrAlreadySelected = errors.New("appkit: backend may be selected only once")

	// ErrNoBackend is returned by forwarding calls made before Select succeeded.
	ErrNoBackend = errors.New("appkit: no backend selected")

	// ErrBackendNotFound is returned when the requested or configured backend
	// has no registered module, or the module could not construct it.
	ErrBackendNotFound = backend.ErrNotFound

	// ErrUnimplemented is returned by adapters that lack a capability.
	ErrUnimplemented = backend.ErrUnimplemented
)
