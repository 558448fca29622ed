package main

import (
	"time"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/app"
	"github.com/gogpu/ufo/input"
)

const scriptFrame = 16 * time.Millisecond

// demoScript is the session replayed by -headless: walk right, boost,
// auto-repeat a step down, drag with the mouse and show the HUD.
func demoScript() []app.Step {
	var steps []app.Step
	tick := func(evs ...input.Event) {
		steps = append(steps, app.Step{
			At:     time.Duration(len(steps)+1) * scriptFrame,
			Events: evs,
		})
	}
	idle := func(n int) {
		for range n {
			tick()
		}
	}
	key := func(k gpucontext.Key, a input.Action) input.Event {
		return input.KeyEvent{Key: k, Action: a}
	}
	move := func(x, y float64) input.Event {
		return input.MouseMoveEvent{Pos: ufo.Pt(x, y)}
	}
	left := func(a input.Action) input.Event {
		return input.MouseButtonEvent{Button: gpucontext.MouseButtonLeft, Action: a}
	}

	tick(input.CursorEnterEvent{}, move(500, 200))

	tick(key(gpucontext.KeyD, input.Press))
	idle(30)
	tick(key(gpucontext.KeyLeftShift, input.Press))
	idle(20)
	tick(key(gpucontext.KeyLeftShift, input.Release), key(gpucontext.KeyD, input.Release))

	tick(key(gpucontext.KeyDown, input.Press))
	idle(25)
	tick(key(gpucontext.KeyDown, input.Release))

	tick(left(input.Press))
	for i := 1; i <= 20; i++ {
		tick(move(500-float64(5*i), 200+float64(3*i)))
	}
	tick(left(input.Release))

	tick(key(gpucontext.KeyH, input.Press))
	tick(key(gpucontext.KeyH, input.Release), key(gpucontext.KeyD, input.Press))
	idle(2)
	return steps
}
