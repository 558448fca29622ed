// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window runs an [app.Application] in a gogpu window.
//
// The loop attaches the window's event source to the application's input
// cache, advances one frame per redraw and draws through a ggcanvas canvas
// straight onto the window surface:
//
//	gogpu events -> input.Cache -> Application.Update
//	Application.Draw -> gg.Context -> ggcanvas.Canvas -> window surface
//
// Usage:
//
//	loop := window.New(app.DefaultConfig().WithTitle("demo"))
//	if err := loop.Run(myApp); err != nil {
//	    log.Fatal(err)
//	}
//
// Importing this package registers gg's GPU accelerator.
package window
