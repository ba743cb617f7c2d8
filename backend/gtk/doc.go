// Package gtk provides a backend built on GTK 3 through gotk3.
//
// gotk3 requires cgo and the GTK development headers, so the adapter is
// only compiled with the gtk build tag:
//
//	go build -tags gtk ./...
//
// Without the tag, or when GTK cannot connect to a display, selecting
// "gtk" fails with backend.ErrUnavailable.
//
// The native handle is the *gtk.Application. GTK exposes its main context,
// so this is the one windowing backend supporting ProcessEvents.
package gtk

// Name is the name the GTK backend reports.
const Name = "GTK"

// AppID is the GTK application identifier used by the registered factory.
const AppID = "io.github.gogpu.appkit"

// Default window parameters.
const (
	DefaultTitle  = "appkit"
	DefaultWidth  = 800
	DefaultHeight = 600
)

const summary = "GTK 3 via gotk3 (cgo, build tag gtk)"
