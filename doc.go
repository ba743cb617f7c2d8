// Package appkit provides the application object that wraps one native GUI
// toolkit behind a uniform event-loop interface.
//
// # Overview
//
// A program has exactly one Application. It lazily selects one backend (a
// GoGPU window, Fyne, GTK, a terminal UI, or the headless loop) and forwards
// event-loop control to it: process pending events, run the native loop,
// quit it, and expose the toolkit's own application object.
//
// # Quick Start
//
//	import (
//		"github.com/gogpu/appkit"
//		_ "github.com/gogpu/appkit/backend/all"
//	)
//
//	app := appkit.New(appkit.WithDefaultBackend("auto"))
//	if err := app.Select(""); err != nil {
//		log.Fatal(err)
//	}
//	if err := app.Run(); err != nil {
//		log.Fatal(err)
//	}
//
// # Selecting a Backend
//
// Select may be called any number of times, but only the first successful
// call chooses the backend. Later calls naming the same backend (in any
// letter case) succeed without effect; naming another backend fails with
// ErrAlreadySelected. An empty name selects the configured default.
//
// # Polling
//
// When no native loop runs, call ProcessEvents regularly, or let Poll do it
// at a fixed cadence:
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//	err := app.Poll(ctx, appkit.DefaultPollInterval)
//
// # Errors
//
//   - ErrAlreadySelected: a second, different backend was requested
//   - ErrBackendNotFound: the backend is not registered or cannot start
//   - ErrNoBackend: a forwarding call was made before Select
//   - ErrUnimplemented: the adapter does not support the capability
package appkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
