// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package window

import (
	"errors"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo/app"
)

// The frame presents through the window's texture drawer.
var (
	_ func(*gogpu.Context) gpucontext.TextureDrawer          = (*gogpu.Context).AsTextureDrawer
	_ func(*ggcanvas.Canvas, gpucontext.TextureDrawer) error = (*ggcanvas.Canvas).RenderTo
	_ func(*ggcanvas.Canvas, func(*gg.Context)) error        = (*ggcanvas.Canvas).Draw
)

func TestRun_InvalidConfig(t *testing.T) {
	err := New(app.DefaultConfig().WithSize(0, 480)).Run(nil)
	if !errors.Is(err, app.ErrInvalidSize) {
		t.Errorf("Run() = %v, want ErrInvalidSize", err)
	}
}
