// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"fmt"

	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // GPU accelerator for canvas drawing
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/app"
	"github.com/gogpu/ufo/input"
)

// Loop hosts an application in a gogpu window.
type Loop struct {
	cfg app.Config
}

var _ app.Loop = (*Loop)(nil)

// New creates a window loop for cfg.
func New(cfg app.Config) *Loop {
	return &Loop{cfg: cfg}
}

// Run opens the window and blocks until it is closed.
//
// A frame error (an event sequence the cache rejects) stops drawing and is
// returned once the window closes.
func (l *Loop) Run(a app.Application) error {
	if err := l.cfg.Validate(); err != nil {
		return err
	}

	ga := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(l.cfg.Title).
		WithSize(l.cfg.Width, l.cfg.Height).
		WithContinuousRender(true))

	d := app.NewDriver(a, input.New(l.cfg.InputOptions...))
	d.SetExitKey(l.cfg.ExitKey)
	d.Bind(ga.EventSource())

	var (
		canvas   *ggcanvas.Canvas
		frameErr error
	)

	ga.OnDraw(func(dc *gogpu.Context) {
		if frameErr != nil {
			return
		}
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		// Canvas is released by gogpu's resource tracker on shutdown.
		if canvas == nil {
			provider := ga.GPUContextProvider()
			if provider == nil {
				return
			}
			c, err := ggcanvas.New(provider, w, h)
			if err != nil {
				frameErr = fmt.Errorf("window: creating canvas: %w", err)
				ufo.Logger().Error("window: canvas unavailable", "err", err)
				return
			}
			canvas = c
			ufo.Logger().Info("window: canvas created", "width", w, "height", h)
		}
		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				ufo.Logger().Warn("window: canvas resize failed", "err", err)
			}
		}
		d.Resize(w, h)

		if err := d.Frame(); err != nil {
			frameErr = err
			ufo.Logger().Error("window: frame failed, drawing stopped", "err", err)
			return
		}
		if d.ExitRequested() {
			ga.Quit()
		}

		if err := canvas.Draw(d.Draw); err != nil {
			ufo.Logger().Warn("window: draw failed", "err", err)
			return
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			ufo.Logger().Warn("window: present failed", "frame", d.Frames(), "err", err)
		}
	})

	ga.OnClose(func() {
		d.Close()
		gg.CloseAccelerator()
	})

	if err := ga.Run(); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return frameErr
}
