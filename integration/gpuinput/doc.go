// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuinput feeds gogpu window events into an input.Cache.
//
// The data flow is:
//
//	gogpu window -> gpucontext.EventSource callbacks -> input.Event -> input.Cache
//
// # Usage
//
//	cache := input.New()
//	binding := gpuinput.Attach(app.EventSource(), cache)
//
//	app.OnDraw(func(dc *gogpu.Context) {
//	    if err := binding.Err(); err != nil {
//	        log.Fatal(err)
//	    }
//	    game.Update(cache)
//	    cache.PreUpdate()
//	})
//
// # Optional Sources
//
// A source that also implements gpucontext.ScrollEventSource delivers wheel
// events through OnScrollEvent instead of OnScroll. A source that implements
// gpucontext.PointerEventSource reports the cursor entering and leaving the
// window; without it CursorInside stays false.
//
// # Thread Safety
//
// gpucontext invokes callbacks on the main thread during the event loop.
// The frame callback that reads the cache must run on the same thread.
// Binding adds no synchronization of its own.
//
// # Integration Without Circular Imports
//
// This package only depends on gpucontext interfaces, so it works with any
// host window, not just gogpu.App.
package gpuinput
