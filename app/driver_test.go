package app

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo/input"
	"github.com/google/go-cmp/cmp"
)

// releaseSource is an event source that only delivers mouse releases.
type releaseSource struct {
	gpucontext.NullEventSource
	press, release func(gpucontext.MouseButton, float64, float64)
}

func (s *releaseSource) OnMousePress(fn func(gpucontext.MouseButton, float64, float64)) {
	s.press = fn
}

func (s *releaseSource) OnMouseRelease(fn func(gpucontext.MouseButton, float64, float64)) {
	s.release = fn
}

func newDriver(a Application) (*Driver, *input.ManualClock) {
	clock := &input.ManualClock{}
	return NewDriver(a, input.New(input.WithClock(clock))), clock
}

func TestDriver_FrameOrder(t *testing.T) {
	a := &recordingApp{key: gpucontext.KeyW}
	d, clock := newDriver(a)

	if err := d.Cache().Update(input.KeyEvent{Key: gpucontext.KeyW, Action: input.Press}); err != nil {
		t.Fatal(err)
	}
	clock.Set(10)
	if err := d.Frame(); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}
	clock.Set(20)
	if err := d.Frame(); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}

	// The first frame sees the press before PreUpdate promotes it.
	want := []input.ButtonState{input.PressedAt(0), input.DownAt(0, 10)}
	if diff := cmp.Diff(want, a.seen); diff != "" {
		t.Errorf("states seen by Update (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"input", "update", "input", "update"}, a.calls); diff != "" {
		t.Errorf("call order (-want +got):\n%s", diff)
	}
	if d.Frames() != 2 {
		t.Errorf("Frames() = %d, want 2", d.Frames())
	}
}

func TestDriver_ResizeDeduplicates(t *testing.T) {
	a := &recordingApp{}
	d, _ := newDriver(a)

	d.Resize(800, 600)
	d.Resize(800, 600)
	d.Resize(1024, 768)

	want := [][2]int{{800, 600}, {1024, 768}}
	if diff := cmp.Diff(want, a.resized); diff != "" {
		t.Errorf("Resize calls (-want +got):\n%s", diff)
	}
}

func TestDriver_CloseOnce(t *testing.T) {
	a := &recordingApp{}
	d, _ := newDriver(a)

	d.Close()
	d.Close()
	if a.exited != 1 {
		t.Errorf("Exit called %d times, want 1", a.exited)
	}
	if err := d.Frame(); !errors.Is(err, ErrClosed) {
		t.Errorf("Frame() after Close = %v, want ErrClosed", err)
	}
}

func TestDriver_BindingErrorStopsFrames(t *testing.T) {
	a := &recordingApp{}
	d, _ := newDriver(a)
	src := &releaseSource{}
	d.Bind(src)

	src.press(gpucontext.MouseButtonLeft, 0, 0)
	src.release(gpucontext.MouseButtonLeft, 0, 0)
	if err := d.Frame(); err != nil {
		t.Fatalf("Frame() error = %v", err)
	}

	// Released survives until the PreUpdate above, so this is a fresh
	// press/release pair followed by a duplicate release.
	src.press(gpucontext.MouseButtonLeft, 0, 0)
	src.release(gpucontext.MouseButtonLeft, 0, 0)
	src.release(gpucontext.MouseButtonLeft, 0, 0)

	if err := d.Frame(); !errors.Is(err, input.ErrDoubleRelease) {
		t.Fatalf("Frame() = %v, want ErrDoubleRelease", err)
	}
	if d.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", d.Frames())
	}

	d.Close()
	src.press(gpucontext.MouseButtonRight, 0, 0)
	if _, ok := d.Cache().MouseButtonState(gpucontext.MouseButtonRight); ok {
		t.Error("events still forwarded after Close")
	}
}

func TestDriver_ExitKey(t *testing.T) {
	a := &recordingApp{}
	d, clock := newDriver(a)
	d.SetExitKey(gpucontext.KeyQ)

	clock.Set(10)
	if err := d.Frame(); err != nil {
		t.Fatal(err)
	}
	if d.ExitRequested() {
		t.Fatal("ExitRequested() = true before the key was pressed")
	}

	// A press and release within one frame still leaves a state for Update.
	if err := d.Cache().Update(input.KeyEvent{Key: gpucontext.KeyQ, Action: input.Press}); err != nil {
		t.Fatal(err)
	}
	if err := d.Cache().Update(input.KeyEvent{Key: gpucontext.KeyQ, Action: input.Release}); err != nil {
		t.Fatal(err)
	}
	clock.Set(20)
	if err := d.Frame(); err != nil {
		t.Fatal(err)
	}
	if !d.ExitRequested() {
		t.Error("ExitRequested() = false after the exit key was released")
	}
}

func TestDriver_ExitKeyDisabled(t *testing.T) {
	a := &recordingApp{}
	d, _ := newDriver(a)

	if err := d.Cache().Update(input.KeyEvent{Key: gpucontext.KeyQ, Action: input.Press}); err != nil {
		t.Fatal(err)
	}
	if err := d.Frame(); err != nil {
		t.Fatal(err)
	}
	if d.ExitRequested() {
		t.Error("ExitRequested() = true without an exit key")
	}
}
