package app

import (
	"fmt"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo/input"
)

// recordingApp records every call and the key state seen by Update.
type recordingApp struct {
	calls   []string
	seen    []input.ButtonState
	key     gpucontext.Key
	deltas  []time.Duration
	exited  int
	resized [][2]int
}

func (r *recordingApp) Input(*input.Cache) { r.calls = append(r.calls, "input") }

func (r *recordingApp) Update(in *input.Cache) {
	r.calls = append(r.calls, "update")
	st, ok := in.KeyState(r.key)
	if !ok {
		st = input.ButtonState{}
	}
	r.seen = append(r.seen, st)
	r.deltas = append(r.deltas, in.TimeDelta())
}

func (r *recordingApp) Draw(dc *gg.Context) {
	r.calls = append(r.calls, "draw")
	dc.SetRGB(1, 0, 0)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	_ = dc.Fill()
}

func (r *recordingApp) Resize(w, h int) {
	r.calls = append(r.calls, fmt.Sprintf("resize %dx%d", w, h))
	r.resized = append(r.resized, [2]int{w, h})
}

func (r *recordingApp) Exit(*input.Cache) {
	r.calls = append(r.calls, "exit")
	r.exited++
}

var _ Application = (*recordingApp)(nil)
