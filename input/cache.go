package input

import (
	"log/slog"
	"math"
	"slices"
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
)

// Tracked mouse buttons. Other buttons are accepted by Update and ignored.
const (
	slotLeft = iota
	slotMiddle
	slotRight
	slotCount
)

// buttonSlot holds the optional state of one tracked mouse button.
type buttonSlot struct {
	state ButtonState
	set   bool
}

// Cache is the per-frame input snapshot.
//
// Update applies window events as they arrive; PreUpdate reconciles the
// snapshot once per frame. See the package documentation for the state
// machine.
//
// Cache is NOT safe for concurrent use.
type Cache struct {
	keyboard map[gpucontext.Key]ButtonState
	buttons  [slotCount]buttonSlot

	cursor    ufo.Point
	hasCursor bool
	inside    bool
	delta     ufo.Vec2
	moved     bool

	now       time.Duration
	timeDelta time.Duration
	clock     Clock

	strict bool
}

// New creates an empty Cache. Time starts at zero; the first PreUpdate
// reads the clock.
func New(opts ...Option) *Cache {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = NewMonotonicClock()
	}
	return &Cache{
		keyboard: make(map[gpucontext.Key]ButtonState, o.keyCapacity),
		clock:    o.clock,
		strict:   o.strict,
	}
}

// Update applies one window event to the snapshot.
//
// The only error is a *TransitionError wrapping ErrDoubleRelease; the
// stored state is left unchanged in that case. Unknown events and mouse
// buttons other than left, middle and right are ignored.
func (c *Cache) Update(ev Event) error {
	switch e := ev.(type) {
	case KeyEvent:
		return c.trackKey(e.Key, e.Action)
	case MouseButtonEvent:
		return c.trackButton(e.Button, e.Action)
	case MouseMoveEvent:
		c.trackCursorMove(e.Pos)
	case MouseWheelEvent:
		// Accepted so sources can forward it; scrolling has no state yet.
	case CursorEnterEvent:
		c.inside = true
		ufo.Logger().Debug("input: cursor entered")
	case CursorLeaveEvent:
		c.delta = ufo.Vec2{}
		c.inside = false
		ufo.Logger().Debug("input: cursor left")
	}
	return nil
}

func (c *Cache) trackKey(k gpucontext.Key, a Action) error {
	st, ok := c.keyboard[k]
	if !ok {
		if a == Release {
			ufo.Logger().Debug("input: release of idle key ignored", "key", k)
			return nil
		}
		c.keyboard[k] = PressedAt(c.now)
		ufo.Logger().Debug("input: key pressed", "key", k, "time", c.now)
		return nil
	}

	next, err := st.transition(a, c.now)
	if err != nil {
		return c.fail(&TransitionError{Device: Keyboard, Key: k, State: st, Err: err})
	}
	c.keyboard[k] = next
	ufo.Logger().Debug("input: key updated", "key", k, "state", next)
	return nil
}

func (c *Cache) trackButton(b gpucontext.MouseButton, a Action) error {
	i, ok := buttonSlotIndex(b)
	if !ok {
		return nil
	}
	slot := &c.buttons[i]
	if !slot.set {
		if a == Release {
			ufo.Logger().Debug("input: release of idle mouse button ignored", "button", b)
			return nil
		}
		slot.state = PressedAt(c.now)
		slot.set = true
		return nil
	}

	next, err := slot.state.transition(a, c.now)
	if err != nil {
		return c.fail(&TransitionError{Device: Mouse, Button: b, State: slot.state, Err: err})
	}
	slot.state = next
	ufo.Logger().Debug("input: mouse button updated", "button", b, "state", next)
	return nil
}

func (c *Cache) trackCursorMove(p ufo.Point) {
	c.moved = true
	if c.hasCursor {
		c.delta = p.Sub(c.cursor)
	}
	c.cursor = p
	c.hasCursor = true
}

// fail reports an invariant violation. It never returns nil.
func (c *Cache) fail(err *TransitionError) error {
	ufo.Logger().Error("input: invalid transition", slog.String("err", err.Error()))
	if c.strict {
		panic(err)
	}
	return err
}

// PreUpdate reconciles the snapshot for the next frame. Call it exactly
// once per frame, after the frame's queries.
//
// It clears the moved flag, advances the clock, drops Released mouse
// buttons, promotes Pressed buttons to Down, refreshes Down buttons with the
// new time, promotes and accumulates keyboard entries and finally drops
// Released keyboard entries.
//
// A Down key's Last grows by the clock time on every call and saturates at
// math.MaxInt64 instead of wrapping.
func (c *Cache) PreUpdate() {
	c.moved = false

	now := c.clock.Now()
	if now < c.now {
		now = c.now
	}
	c.timeDelta = now - c.now
	c.now = now

	for i := range c.buttons {
		if c.buttons[i].set && c.buttons[i].state.Phase == Released {
			c.buttons[i] = buttonSlot{}
		}
	}
	for i := range c.buttons {
		if c.buttons[i].set && c.buttons[i].state.Phase == Pressed {
			c.buttons[i].state = DownAt(c.buttons[i].state.Start, now)
		}
	}
	for i := range c.buttons {
		if c.buttons[i].set && c.buttons[i].state.Phase == Down {
			c.buttons[i].state = DownAt(c.buttons[i].state.Start, now)
		}
	}

	for k, st := range c.keyboard {
		switch st.Phase {
		case Pressed:
			c.keyboard[k] = DownAt(st.Start, now)
		case Down:
			c.keyboard[k] = DownAt(st.Start, accumulate(st.Last, now))
		}
	}
	for k, st := range c.keyboard {
		if st.Phase == Released {
			delete(c.keyboard, k)
		}
	}
}

// KeyState returns the stored state of k. The boolean is false when the
// key is idle.
func (c *Cache) KeyState(k gpucontext.Key) (ButtonState, bool) {
	st, ok := c.keyboard[k]
	return st, ok
}

// MouseButtonState returns the stored state of b. The boolean is false when
// the button is idle or is not one of left, middle and right.
func (c *Cache) MouseButtonState(b gpucontext.MouseButton) (ButtonState, bool) {
	i, ok := buttonSlotIndex(b)
	if !ok || !c.buttons[i].set {
		return ButtonState{}, false
	}
	return c.buttons[i].state, true
}

// HeldKeys returns the Pressed and Down keys, in ascending key order.
func (c *Cache) HeldKeys() []gpucontext.Key {
	keys := make([]gpucontext.Key, 0, len(c.keyboard))
	for k, st := range c.keyboard {
		if st.Active() {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// TrackedKeys returns every key with a stored state, including keys
// released since the last PreUpdate, in ascending key order.
func (c *Cache) TrackedKeys() []gpucontext.Key {
	keys := make([]gpucontext.Key, 0, len(c.keyboard))
	for k := range c.keyboard {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// MouseDelta returns the cursor movement since the previous position, or
// the zero vector if the cursor did not move since the last PreUpdate.
func (c *Cache) MouseDelta() ufo.Vec2 {
	if !c.moved {
		return ufo.Vec2{}
	}
	return c.delta
}

// CursorPosition returns the last known cursor position. The boolean is
// false until the first move event.
func (c *Cache) CursorPosition() (ufo.Point, bool) {
	return c.cursor, c.hasCursor
}

// CursorInside reports whether the cursor is over the window surface, as
// told by enter and leave events.
func (c *Cache) CursorInside() bool {
	return c.inside
}

// Time returns the clock time read by the last PreUpdate.
func (c *Cache) Time() time.Duration {
	return c.now
}

// TimeDelta returns the time between the last two PreUpdate calls.
func (c *Cache) TimeDelta() time.Duration {
	return c.timeDelta
}

func accumulate(last, now time.Duration) time.Duration {
	if last > math.MaxInt64-now {
		return math.MaxInt64
	}
	return last + now
}

func buttonSlotIndex(b gpucontext.MouseButton) (int, bool) {
	switch b {
	case gpucontext.MouseButtonLeft:
		return slotLeft, true
	case gpucontext.MouseButtonMiddle:
		return slotMiddle, true
	case gpucontext.MouseButtonRight:
		return slotRight, true
	default:
		return 0, false
	}
}
