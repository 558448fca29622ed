package input

import (
	"fmt"
	"time"
)

// Action is the raw transition reported by the window for a key or button.
type Action uint8

const (
	// Press means the key or button went down.
	Press Action = iota

	// Release means the key or button went up.
	Release
)

// String returns the action name.
func (a Action) String() string {
	switch a {
	case Press:
		return "Press"
	case Release:
		return "Release"
	default:
		return "Unknown"
	}
}

// Phase identifies which of the three stored button states is active.
// The zero Phase is not a valid state.
type Phase uint8

const (
	// Pressed is the first frame of activity, before any PreUpdate.
	Pressed Phase = iota + 1

	// Down is an active key or button that survived at least one PreUpdate
	// or received a repeated press.
	Down

	// Released is a key or button that went up and will become idle on the
	// next PreUpdate.
	Released
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case Pressed:
		return "Pressed"
	case Down:
		return "Down"
	case Released:
		return "Released"
	default:
		return "Unknown"
	}
}

// ButtonState is the stored state of one key or mouse button.
//
// Start is the time of the press that began the activity and is carried
// unchanged through Down and Released. Last is zero for Pressed, the
// refreshed time for Down and the release time for Released.
type ButtonState struct {
	Phase Phase
	Start time.Duration
	Last  time.Duration
}

// PressedAt returns a Pressed state started at t.
func PressedAt(t time.Duration) ButtonState {
	return ButtonState{Phase: Pressed, Start: t}
}

// DownAt returns a Down state started at start and refreshed at last.
func DownAt(start, last time.Duration) ButtonState {
	return ButtonState{Phase: Down, Start: start, Last: last}
}

// ReleasedAt returns a Released state pressed at start and released at end.
func ReleasedAt(start, end time.Duration) ButtonState {
	return ButtonState{Phase: Released, Start: start, Last: end}
}

// Active reports whether the key or button is currently held.
func (s ButtonState) Active() bool {
	return s.Phase == Pressed || s.Phase == Down
}

// Duration returns Last-Start for Down and Released, zero for Pressed.
//
// For keyboard Down states Last is the sum of the clock readings of every
// PreUpdate since the press, not a timestamp, so Last-Start is not the time
// the key has been held. Use the frame count or TimeDelta for that.
func (s ButtonState) Duration() time.Duration {
	if s.Phase == Pressed {
		return 0
	}
	return s.Last - s.Start
}

// String formats the state as Phase(start[, last]).
func (s ButtonState) String() string {
	if s.Phase == Pressed {
		return fmt.Sprintf("%s(%v)", s.Phase, s.Start)
	}
	return fmt.Sprintf("%s(%v, %v)", s.Phase, s.Start, s.Last)
}

// transition applies a raw action at time now. It is shared by keys and
// mouse buttons; the idle case is handled by the caller because idle is
// never stored.
func (s ButtonState) transition(a Action, now time.Duration) (ButtonState, error) {
	if a == Press {
		switch s.Phase {
		case Pressed, Down:
			return DownAt(s.Start, now), nil
		default:
			return PressedAt(now), nil
		}
	}

	switch s.Phase {
	case Pressed, Down:
		return ReleasedAt(s.Start, now), nil
	default:
		return s, ErrDoubleRelease
	}
}
