package input

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
)

// ErrDoubleRelease is returned when a key or button that is already
// Released receives another release. It means the event source delivered
// events out of order or twice.
var ErrDoubleRelease = errors.New("input: released twice without an intervening press")

// Device identifies the input device of a TransitionError.
type Device uint8

const (
	// Keyboard is a key on the keyboard.
	Keyboard Device = iota

	// Mouse is one of the tracked mouse buttons.
	Mouse
)

// String returns the device name.
func (d Device) String() string {
	switch d {
	case Keyboard:
		return "keyboard"
	case Mouse:
		return "mouse"
	default:
		return "unknown"
	}
}

// TransitionError describes an invalid state machine transition.
// Key is set for Keyboard errors, Button for Mouse errors.
type TransitionError struct {
	Device Device
	Key    gpucontext.Key
	Button gpucontext.MouseButton

	// State is the stored state at the time of the rejected event.
	State ButtonState

	Err error
}

func (e *TransitionError) Error() string {
	if e.Device == Mouse {
		return fmt.Sprintf("%v (mouse button %d, state %v)", e.Err, e.Button, e.State)
	}
	return fmt.Sprintf("%v (key %d, state %v)", e.Err, e.Key, e.State)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}
