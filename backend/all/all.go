// Package all registers every appkit backend adapter.
//
//	import _ "github.com/gogpu/appkit/backend/all"
//
// Adapters needing cgo (fyne, gtk) are only functional when built with
// their build tags; otherwise they register as unavailable.
package all

import (
	// Register all adapters.
	_ "github.com/gogpu/appkit/backend/fyne"
	_ "github.com/gogpu/appkit/backend/gogpu"
	_ "github.com/gogpu/appkit/backend/gtk"
	_ "github.com/gogpu/appkit/backend/headless"
	_ "github.com/gogpu/appkit/backend/terminal"
)
