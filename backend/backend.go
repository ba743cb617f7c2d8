package backend

import (
	"errors"
	"fmt"
)

// Common backend errors.
var (
	// ErrNotFound is returned when no registered module provides the
	// requested backend, or the module could not construct it.
	ErrNotFound = errors.New("backend: not found")

	// ErrUnavailable is returned by factories whose native toolkit is not
	// compiled in or cannot be initialized on this machine.
	ErrUnavailable = errors.New("backend: toolkit not available")

	// ErrUnimplemented is returned when an adapter does not provide a capability.
	ErrUnimplemented = errors.New("backend: capability not implemented")
)

// Backend is the interface every GUI toolkit adapter implements.
// It abstracts the native application object so that a single
// application value can drive any toolkit.
//
// Backends are registered via Register() and constructed through
// Open() or Lookup().
type Backend interface {
	// Name returns the human-readable toolkit identifier (e.g., "GoGPU", "GTK").
	Name() string

	// ProcessEvents drains and dispatches the currently pending native
	// events without blocking. It returns the number of events dispatched.
	ProcessEvents() (int, error)

	// Run enters the native main loop and blocks until Quit is called.
	Run() error

	// Quit asks the native main loop to terminate so that Run returns.
	// It must be safe to call from inside loop callbacks.
	Quit() error

	// Native returns the toolkit's own application object.
	Native() (any, error)
}

// Unimplemented can be embedded by adapters that only provide part of the
// Backend capabilities. Every method fails with ErrUnimplemented.
// Name has no default: adapters always report their own name.
type Unimplemented struct{}

// ProcessEvents reports that event pumping is not supported.
func (Unimplemented) ProcessEvents() (int, error) {
	return 0, unimplemented("ProcessEvents")
}

// Run reports that the native loop is not supported.
func (Unimplemented) Run() error {
	return unimplemented("Run")
}

// Quit reports that stopping the native loop is not supported.
func (Unimplemented) Quit() error {
	return unimplemented("Quit")
}

// Native reports that the native handle is not exposed.
func (Unimplemented) Native() (any, error) {
	return nil, unimplemented("Native")
}

func unimplemented(capability string) error {
	return fmt.Errorf("%w: %s", ErrUnimplemented, capability)
}
