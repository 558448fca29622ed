// Package ufo provides frame-based input tracking for gogpu applications.
//
// # Overview
//
// ufo turns the callback stream of a gogpu window (key presses, mouse
// buttons, cursor movement) into a per-frame snapshot that game-style update
// code can poll: which keys are held, since when, and how far the pointer
// moved during the last frame.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/ufo/app"
//	    "github.com/gogpu/ufo/app/window"
//	    "github.com/gogpu/ufo/input"
//	)
//
//	// game implements app.Application.
//	func (g *game) Update(in *input.Cache) {
//	    if st, ok := in.KeyState(gpucontext.KeyD); ok && st.Active() {
//	        g.x += in.TimeDelta().Seconds() * 200
//	    }
//	}
//
//	loop := window.New(app.DefaultConfig().WithTitle("game"))
//	if err := loop.Run(&game{}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Architecture
//
// The module is organized into:
//   - input: the state tracker (Cache), button state machine and KeyRepeater
//   - integration/gpuinput: binds a gpucontext.EventSource to a Cache
//   - keymap: key names and TOML action bindings
//   - app: Application/Loop interfaces, the per-frame driver and a headless loop
//   - app/window: runs an Application in a gogpu window, drawing with gg
//
// # Frame Order
//
// Events are applied as they arrive. Once per frame the driver lets the
// application query the cache, then calls Cache.PreUpdate exactly once to
// advance the clock and age button states. Queries are stable between two
// PreUpdate calls.
//
// # Coordinate System
//
// Cursor positions use window coordinates as delivered by gogpu:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package ufo

// Version information
const (
	// Version is the current version of the module
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
