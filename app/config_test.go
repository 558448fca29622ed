package app

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo/input"
)

func TestConfig(t *testing.T) {
	base := DefaultConfig()
	cfg := base.WithTitle("cube").WithSize(1280, 720)

	if cfg.Title != "cube" || cfg.Width != 1280 || cfg.Height != 720 {
		t.Errorf("builder produced %+v", cfg)
	}
	if base.Title != "ufo" || base.Width != 800 || base.Height != 600 {
		t.Errorf("builder modified the receiver: %+v", base)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	for _, size := range [][2]int{{0, 600}, {800, 0}, {-1, -1}} {
		cfg := DefaultConfig().WithSize(size[0], size[1])
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("Validate(%v) = %v, want ErrInvalidSize", size, err)
		}
	}
}

func TestConfigWithInputOptionsCopies(t *testing.T) {
	a := DefaultConfig().WithInputOptions(input.WithKeyCapacity(8))
	b := a.WithInputOptions(input.WithPanicOnDoubleRelease())
	c := a.WithInputOptions(input.WithKeyCapacity(16))

	if len(a.InputOptions) != 1 || len(b.InputOptions) != 2 || len(c.InputOptions) != 2 {
		t.Errorf("option lengths = %d, %d, %d; want 1, 2, 2",
			len(a.InputOptions), len(b.InputOptions), len(c.InputOptions))
	}
}

func TestConfigWithExitKey(t *testing.T) {
	if k := DefaultConfig().ExitKey; k != gpucontext.KeyUnknown {
		t.Errorf("default ExitKey = %v, want KeyUnknown", k)
	}
	if k := DefaultConfig().WithExitKey(gpucontext.KeyQ).ExitKey; k != gpucontext.KeyQ {
		t.Errorf("ExitKey = %v, want KeyQ", k)
	}
}
