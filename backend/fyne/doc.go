// Package fyne provides a backend built on the Fyne toolkit.
//
// Fyne requires cgo and the system OpenGL headers, so the adapter is only
// compiled with the fyne build tag:
//
//	go build -tags fyne ./...
//
// Without the tag the package still registers "fyne", but selecting it
// fails with backend.ErrUnavailable.
//
// The native handle is the fyne.App. Fyne owns its event loop, so
// ProcessEvents is not supported.
package fyne

// Name is the name the Fyne backend reports.
const Name = "Fyne"

// AppID is the Fyne application identifier used by the registered factory.
const AppID = "io.github.gogpu.appkit"

// Default window parameters.
const (
	DefaultTitle  = "appkit"
	DefaultWidth  = 800
	DefaultHeight = 600
)

const summary = "Fyne toolkit (cgo, build tag fyne)"
