package input

import (
	"time"

	"github.com/gogpu/gpucontext"
)

// KeyStateReader is the part of Cache that KeyRepeater reads.
type KeyStateReader interface {
	KeyState(k gpucontext.Key) (ButtonState, bool)
	TimeDelta() time.Duration
}

var _ KeyStateReader = (*Cache)(nil)

// repeatTimer accumulates held time for one registered key.
type repeatTimer struct {
	elapsed   time.Duration
	threshold time.Duration
}

// KeyRepeater turns a held key into a trigger that fires once per
// threshold of held time, like keyboard auto-repeat.
//
// It only reads the tracker's public queries. Call Fire once per frame for
// each key of interest, after the events of the frame have been applied.
//
// Example:
//
//	rep := input.NewKeyRepeater()
//	rep.Register(gpucontext.KeyDown, 120*time.Millisecond)
//	// every frame:
//	if rep.Fire(gpucontext.KeyDown, cache) {
//	    menu.Next()
//	}
type KeyRepeater struct {
	keys map[gpucontext.Key]*repeatTimer
}

// NewKeyRepeater creates a repeater with no registered keys.
func NewKeyRepeater() *KeyRepeater {
	return &KeyRepeater{keys: make(map[gpucontext.Key]*repeatTimer)}
}

// Register sets the repeat threshold of k and resets its accumulated time.
func (r *KeyRepeater) Register(k gpucontext.Key, threshold time.Duration) {
	r.keys[k] = &repeatTimer{threshold: threshold}
}

// Unregister forgets k.
func (r *KeyRepeater) Unregister(k gpucontext.Key) {
	delete(r.keys, k)
}

// Registered reports whether k has a threshold.
func (r *KeyRepeater) Registered(k gpucontext.Key) bool {
	_, ok := r.keys[k]
	return ok
}

// Fire advances the timer of k from the current snapshot and reports
// whether it fired.
//
// A Pressed key restarts the timer with the frame's time delta. A Down key
// adds the delta; once the total exceeds the threshold the threshold is
// subtracted and Fire returns true, so overshoot carries into the next
// repeat. A Released key resets the timer. Unregistered keys never fire.
func (r *KeyRepeater) Fire(k gpucontext.Key, in KeyStateReader) bool {
	t, ok := r.keys[k]
	if !ok {
		return false
	}
	st, ok := in.KeyState(k)
	if !ok {
		return false
	}

	switch st.Phase {
	case Pressed:
		t.elapsed = in.TimeDelta()
	case Down:
		t.elapsed += in.TimeDelta()
		if t.elapsed > t.threshold {
			t.elapsed -= t.threshold
			return true
		}
	case Released:
		t.elapsed = 0
	}
	return false
}
