package main

import (
	"fmt"
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/app"
	"github.com/gogpu/ufo/input"
	"github.com/gogpu/ufo/keymap"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	markerRadius = 18.0
	walkSpeed    = 240.0 // pixels per second
	stepSize     = 24.0
)

// demo is the marker application.
type demo struct {
	keys     *keymap.Bindings
	repeater *input.KeyRepeater
	face     text.Face

	width, height int
	placed        bool

	pos     ufo.Point
	steps   int
	hud     bool
	grabbed bool
	held    []gpucontext.Key
	elapsed float64
}

var _ app.Application = (*demo)(nil)

func newDemo(keys *keymap.Bindings, face text.Face) *demo {
	d := &demo{
		keys:     keys,
		repeater: input.NewKeyRepeater(),
		face:     face,
	}
	keys.Register(d.repeater)
	return d
}

// loadFace returns the HUD font, or nil if it cannot be parsed.
func loadFace() text.Face {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		ufo.Logger().Warn("ufodemo: HUD font unavailable", "err", err)
		return nil
	}
	return source.Face(14)
}

// Input handles the mouse: the right button pulls the marker to the
// cursor, the left button drags it.
func (d *demo) Input(in *input.Cache) {
	d.grabbed = false
	if st, ok := in.MouseButtonState(gpucontext.MouseButtonRight); ok && st.Active() {
		if p, ok := in.CursorPosition(); ok {
			d.pos = p
			d.grabbed = true
		}
	}
	if st, ok := in.MouseButtonState(gpucontext.MouseButtonLeft); ok && st.Active() {
		d.pos = d.pos.Add(in.MouseDelta())
		d.grabbed = true
	}
}

func (d *demo) Update(in *input.Cache) {
	dt := in.TimeDelta().Seconds()
	d.elapsed = in.Time().Seconds()

	var dir ufo.Vec2
	if d.keys.Held("move_left", in) {
		dir.X--
	}
	if d.keys.Held("move_right", in) {
		dir.X++
	}
	if d.keys.Held("move_up", in) {
		dir.Y--
	}
	if d.keys.Held("move_down", in) {
		dir.Y++
	}
	if !dir.IsZero() {
		speed := walkSpeed
		if d.keys.Held("boost", in) {
			speed *= 2
		}
		d.pos = d.pos.Add(dir.Mul(speed * dt / dir.Length()))
	}

	for action, v := range map[string]ufo.Vec2{
		"step_left":  ufo.V2(-stepSize, 0),
		"step_right": ufo.V2(stepSize, 0),
		"step_up":    ufo.V2(0, -stepSize),
		"step_down":  ufo.V2(0, stepSize),
	} {
		if d.keys.Fire(action, d.repeater, in) {
			d.pos = d.pos.Add(v)
			d.steps++
		}
	}

	if d.justPressed("reset", in) {
		d.center()
	}
	if d.justPressed("hud", in) {
		d.hud = !d.hud
	}

	d.pos = d.pos.Clamp(float64(d.width), float64(d.height))
	d.held = in.HeldKeys()
}

// justPressed reports whether the key of action went down this frame.
func (d *demo) justPressed(action string, in *input.Cache) bool {
	b, ok := d.keys.Lookup(action)
	if !ok {
		return false
	}
	st, ok := in.KeyState(b.Key)
	return ok && st.Phase == input.Pressed
}

func (d *demo) Draw(dc *gg.Context) {
	dc.ClearWithColor(gg.RGB(0.08, 0.09, 0.12))

	dc.SetRGBA(1, 1, 1, 0.08)
	dc.SetLineWidth(1)
	for x := 0.0; x < float64(d.width); x += 40 {
		dc.DrawLine(x, 0, x, float64(d.height))
	}
	for y := 0.0; y < float64(d.height); y += 40 {
		dc.DrawLine(0, y, float64(d.width), y)
	}
	_ = dc.Stroke()

	c := gg.HSL(0.55, 0.8, 0.6)
	if d.grabbed {
		c = gg.HSL(0.08, 0.9, 0.6)
	}
	dc.SetColor(c)
	dc.DrawCircle(d.pos.X, d.pos.Y, markerRadius)
	_ = dc.Fill()

	if d.hud && d.face != nil {
		dc.SetRGBA(0, 0, 0, 0.6)
		dc.DrawRoundedRectangle(8, 8, 320, 70, 6)
		_ = dc.Fill()

		dc.SetFont(d.face)
		dc.SetRGB(1, 1, 1)
		dc.DrawString(fmt.Sprintf("pos %.0f, %.0f  steps %d", d.pos.X, d.pos.Y, d.steps), 18, 30)
		dc.DrawString(fmt.Sprintf("time %.2fs", d.elapsed), 18, 48)
		dc.DrawString("held "+heldNames(d.held), 18, 66)
	}
}

func (d *demo) Resize(w, h int) {
	d.width, d.height = w, h
	if !d.placed {
		d.center()
		d.placed = true
	}
	d.pos = d.pos.Clamp(float64(w), float64(h))
}

func (d *demo) Exit(in *input.Cache) {
	ufo.Logger().Info("ufodemo: exit",
		"x", d.pos.X, "y", d.pos.Y, "steps", d.steps, "time", in.Time())
}

func (d *demo) center() {
	d.pos = ufo.Pt(float64(d.width)/2, float64(d.height)/2)
}

func heldNames(keys []gpucontext.Key) string {
	if len(keys) == 0 {
		return "-"
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = keymap.KeyName(k)
	}
	return strings.Join(names, " ")
}
