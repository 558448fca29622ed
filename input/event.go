package input

import (
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
)

// Event is a raw window event consumed by Cache.Update.
//
// The set of implementations is closed: KeyEvent, MouseButtonEvent,
// MouseMoveEvent, MouseWheelEvent, CursorEnterEvent and CursorLeaveEvent.
type Event interface {
	event()
}

// KeyEvent reports a key going down or up.
type KeyEvent struct {
	Key    gpucontext.Key
	Action Action
}

// MouseButtonEvent reports a mouse button going down or up.
type MouseButtonEvent struct {
	Button gpucontext.MouseButton
	Action Action
}

// MouseMoveEvent reports the new cursor position in window coordinates.
type MouseMoveEvent struct {
	Pos ufo.Point
}

// MouseWheelEvent reports a scroll wheel movement.
type MouseWheelEvent struct {
	Delta ufo.Vec2
}

// CursorEnterEvent reports the cursor entering the window surface.
type CursorEnterEvent struct{}

// CursorLeaveEvent reports the cursor leaving the window surface.
type CursorLeaveEvent struct{}

func (KeyEvent) event()         {}
func (MouseButtonEvent) event() {}
func (MouseMoveEvent) event()   {}
func (MouseWheelEvent) event()  {}
func (CursorEnterEvent) event() {}
func (CursorLeaveEvent) event() {}
