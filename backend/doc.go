// Package backend defines the contract between appkit and native GUI toolkits.
//
// Each supported toolkit is wrapped by an adapter implementing Backend.
// Adapters live in sub-packages and register a Module with the Default
// registry from init(), so that compiling an adapter in is all it takes to
// make it selectable by name.
//
// # Backend Registration
//
// Import the adapters you want for their side effects:
//
//	import _ "github.com/gogpu/appkit/backend/headless"
//	import _ "github.com/gogpu/appkit/backend/terminal"
//
// or pull in every adapter at once:
//
//	import _ "github.com/gogpu/appkit/backend/all"
//
// # Backend Selection
//
// Open resolves a name and constructs exactly one adapter:
//
//	mod, b, err := backend.Open("headless")
//	if errors.Is(err, backend.ErrNotFound) {
//		log.Fatal("headless backend not compiled in")
//	}
//
// The special name "auto" walks DefaultPriority and returns the first module
// whose factory succeeds. Explicit names never fall back.
//
// Most programs do not call Open directly; appkit.Application does it once
// and forwards every lifecycle call to the adapter.
//
// # Partial Adapters
//
// Adapters that cannot provide every capability embed Unimplemented. The
// missing methods fail with ErrUnimplemented when called, rather than
// silently succeeding.
//
// # Available Backends
//
//   - "gogpu": Pure Go GPU windowing (always compiled)
//   - "fyne": Fyne toolkit (build tag fyne, cgo)
//   - "gtk": GTK 3 via gotk3 (build tag gtk, cgo)
//   - "terminal": terminal UI via Bubble Tea
//   - "headless": in-process loop with an offscreen gg canvas
package backend
