package input

import (
	"testing"
	"time"

	"github.com/gogpu/gpucontext"
)

// scriptedReader feeds KeyRepeater a fixed state and delta per call.
type scriptedReader struct {
	state ButtonState
	idle  bool
	delta time.Duration
}

func (s *scriptedReader) KeyState(gpucontext.Key) (ButtonState, bool) {
	return s.state, !s.idle
}

func (s *scriptedReader) TimeDelta() time.Duration {
	return s.delta
}

func TestKeyRepeater_KeepsOvershoot(t *testing.T) {
	const k = gpucontext.KeyDown
	r := NewKeyRepeater()
	r.Register(k, 100)

	in := &scriptedReader{state: PressedAt(0), delta: 0}
	if r.Fire(k, in) {
		t.Fatal("fired on press")
	}

	// 110 + 110 + 30 = 250 units of Down time.
	in.state = DownAt(0, 0)
	fired := 0
	for _, d := range []time.Duration{110, 110, 30} {
		in.delta = d
		if r.Fire(k, in) {
			fired++
		}
	}
	if fired != 2 {
		t.Fatalf("fired %d times over 250 units, want 2", fired)
	}

	// 50 units remain; the threshold must be exceeded, not just reached.
	in.delta = 50
	if r.Fire(k, in) {
		t.Fatal("fired at exactly the threshold")
	}
	in.delta = 1
	if !r.Fire(k, in) {
		t.Error("did not fire once the remainder exceeded the threshold")
	}
}

func TestKeyRepeater_PressRestartsAndReleaseResets(t *testing.T) {
	const k = gpucontext.KeyEnter
	r := NewKeyRepeater()
	r.Register(k, 100)

	in := &scriptedReader{state: DownAt(0, 0), delta: 90}
	r.Fire(k, in)

	in.state = ReleasedAt(0, 90)
	if r.Fire(k, in) {
		t.Fatal("fired on release")
	}

	// After release, 90 more units of Down must not fire.
	in.state = DownAt(100, 100)
	if r.Fire(k, in) {
		t.Fatal("release did not reset the accumulator")
	}

	// Pressed overwrites whatever was accumulated.
	in.state = PressedAt(200)
	in.delta = 5
	r.Fire(k, in)
	in.state = DownAt(200, 200)
	in.delta = 95
	if r.Fire(k, in) {
		t.Error("press did not restart the accumulator")
	}
}

func TestKeyRepeater_Unregistered(t *testing.T) {
	r := NewKeyRepeater()
	in := &scriptedReader{state: DownAt(0, 0), delta: time.Hour}
	if r.Fire(gpucontext.KeyX, in) {
		t.Error("unregistered key fired")
	}

	r.Register(gpucontext.KeyX, time.Millisecond)
	if !r.Registered(gpucontext.KeyX) {
		t.Fatal("Registered() = false after Register")
	}
	r.Unregister(gpucontext.KeyX)
	if r.Registered(gpucontext.KeyX) || r.Fire(gpucontext.KeyX, in) {
		t.Error("Unregister did not remove the key")
	}
}

func TestKeyRepeater_IdleKeepsAccumulator(t *testing.T) {
	const k = gpucontext.KeyTab
	r := NewKeyRepeater()
	r.Register(k, 100)

	in := &scriptedReader{state: DownAt(0, 0), delta: 80}
	r.Fire(k, in)

	in.idle = true
	in.delta = 500
	if r.Fire(k, in) {
		t.Fatal("idle key fired")
	}

	in.idle = false
	in.delta = 30
	if !r.Fire(k, in) {
		t.Error("accumulator was lost while idle")
	}
}

func TestKeyRepeater_WithCache(t *testing.T) {
	const k = gpucontext.KeyRight
	c, clock := newTestCache(t)
	r := NewKeyRepeater()
	r.Register(k, 100*time.Millisecond)

	mustUpdate(t, c, keyPress(k))
	fired := 0
	// 30 frames of 16ms while the key is held.
	for i := 1; i <= 30; i++ {
		tick(c, clock, time.Duration(i)*16*time.Millisecond)
		if r.Fire(k, c) {
			fired++
		}
	}
	// The first tick promotes Pressed to Down, so 30 frames hold 480ms.
	if fired != 4 {
		t.Errorf("fired %d times in 480ms at 100ms, want 4", fired)
	}
}
