package app

import (
	"fmt"
	"image"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/input"
)

// Step is one frame of a scripted replay. Events are applied in order,
// then the frame runs with the clock set to At.
type Step struct {
	At     time.Duration
	Events []input.Event
}

// HeadlessLoop replays a script without a window. Time comes from a
// manual clock, so a replay is deterministic. After the last step the
// application draws once into an offscreen context.
type HeadlessLoop struct {
	cfg    Config
	script []Step
	output string
	image  image.Image
}

var _ Loop = (*HeadlessLoop)(nil)

// NewHeadlessLoop creates a loop that replays script.
func NewHeadlessLoop(cfg Config, script []Step) *HeadlessLoop {
	return &HeadlessLoop{cfg: cfg, script: script}
}

// WithOutput sets a PNG path the final frame is saved to.
func (l *HeadlessLoop) WithOutput(path string) *HeadlessLoop {
	l.output = path
	return l
}

// Image returns the final frame of the last Run, or nil.
func (l *HeadlessLoop) Image() image.Image {
	return l.image
}

// Run replays the script against a. It stops at the first event the cache
// rejects and returns that error, wrapped with the step number. A frame that
// sees the configured exit key ends the replay early; the final frame is
// still drawn.
func (l *HeadlessLoop) Run(a Application) error {
	if err := l.cfg.Validate(); err != nil {
		return err
	}

	clock := &input.ManualClock{}
	opts := append(append([]input.Option(nil), l.cfg.InputOptions...), input.WithClock(clock))
	d := NewDriver(a, input.New(opts...))
	d.SetExitKey(l.cfg.ExitKey)
	defer d.Close()

	d.Resize(l.cfg.Width, l.cfg.Height)
	for i, step := range l.script {
		for _, ev := range step.Events {
			if err := d.Cache().Update(ev); err != nil {
				return fmt.Errorf("app: step %d: %w", i+1, err)
			}
		}
		clock.Set(step.At)
		if err := d.Frame(); err != nil {
			return fmt.Errorf("app: step %d: %w", i+1, err)
		}
		if d.ExitRequested() {
			break
		}
	}

	dc := gg.NewContext(l.cfg.Width, l.cfg.Height)
	d.Draw(dc)
	l.image = dc.Image()

	if l.output != "" {
		if err := dc.SavePNG(l.output); err != nil {
			return fmt.Errorf("app: saving frame: %w", err)
		}
		ufo.Logger().Info("app: frame saved", "path", l.output, "frames", d.Frames())
	}
	return nil
}
