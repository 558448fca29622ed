// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gpuinput

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/input"
)

// Binding connects an event source to a cache.
//
// Callbacks cannot return errors, so events rejected by the cache are
// logged and recorded here. The frame loop should check Err once per frame.
type Binding struct {
	cache    *input.Cache
	err      error
	rejected int
	detached bool
}

// Attach subscribes to every input callback of src and forwards the events
// to cache. See the package documentation for optional source interfaces.
func Attach(src gpucontext.EventSource, cache *input.Cache) *Binding {
	b := &Binding{cache: cache}

	src.OnKeyPress(func(k gpucontext.Key, _ gpucontext.Modifiers) {
		b.apply(input.KeyEvent{Key: k, Action: input.Press})
	})
	src.OnKeyRelease(func(k gpucontext.Key, _ gpucontext.Modifiers) {
		b.apply(input.KeyEvent{Key: k, Action: input.Release})
	})
	src.OnMousePress(func(btn gpucontext.MouseButton, _, _ float64) {
		b.apply(input.MouseButtonEvent{Button: btn, Action: input.Press})
	})
	src.OnMouseRelease(func(btn gpucontext.MouseButton, _, _ float64) {
		b.apply(input.MouseButtonEvent{Button: btn, Action: input.Release})
	})
	src.OnMouseMove(func(x, y float64) {
		b.apply(input.MouseMoveEvent{Pos: ufo.Pt(x, y)})
	})

	if ss, ok := src.(gpucontext.ScrollEventSource); ok {
		ss.OnScrollEvent(func(ev gpucontext.ScrollEvent) {
			b.apply(input.MouseWheelEvent{Delta: ufo.V2(ev.DeltaX, ev.DeltaY)})
		})
	} else {
		src.OnScroll(func(dx, dy float64) {
			b.apply(input.MouseWheelEvent{Delta: ufo.V2(dx, dy)})
		})
	}

	if ps, ok := src.(gpucontext.PointerEventSource); ok {
		ps.OnPointer(func(ev gpucontext.PointerEvent) {
			switch ev.Type {
			case gpucontext.PointerEnter:
				b.apply(input.CursorEnterEvent{})
			case gpucontext.PointerLeave:
				b.apply(input.CursorLeaveEvent{})
			}
		})
	}

	ufo.Logger().Debug("gpuinput: attached", "source", fmt.Sprintf("%T", src))
	return b
}

func (b *Binding) apply(ev input.Event) {
	if b.detached {
		return
	}
	if err := b.cache.Update(ev); err != nil {
		b.rejected++
		if b.err == nil {
			b.err = err
		}
		ufo.Logger().Warn("gpuinput: event rejected", "event", ev, "err", err)
	}
}

// Err returns the first error reported by the cache, or nil.
func (b *Binding) Err() error {
	return b.err
}

// Rejected returns how many events the cache has rejected.
func (b *Binding) Rejected() int {
	return b.rejected
}

// Detach stops forwarding events. gpucontext has no way to unregister a
// callback, so the callbacks stay installed and do nothing.
func (b *Binding) Detach() {
	b.detached = true
}
