package app

import (
	"errors"
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo/input"
)

// ErrInvalidSize is returned when a configured size is not positive.
var ErrInvalidSize = errors.New("app: invalid size")

// Config describes the window or canvas an application runs in.
//
// Example:
//
//	cfg := app.DefaultConfig().
//	    WithTitle("cube").
//	    WithSize(1280, 720)
type Config struct {
	Title  string
	Width  int
	Height int

	// InputOptions are passed to input.New when the loop creates its cache.
	InputOptions []input.Option

	// ExitKey ends the loop once it has any state after a frame's Update.
	// KeyUnknown disables it.
	ExitKey gpucontext.Key
}

// DefaultConfig returns an 800x600 configuration titled "ufo".
func DefaultConfig() Config {
	return Config{
		Title:  "ufo",
		Width:  800,
		Height: 600,
	}
}

// WithTitle returns a copy of c with the window title set.
func (c Config) WithTitle(title string) Config {
	c.Title = title
	return c
}

// WithSize returns a copy of c with the initial size set.
func (c Config) WithSize(width, height int) Config {
	c.Width, c.Height = width, height
	return c
}

// WithInputOptions returns a copy of c that appends opts to the cache options.
func (c Config) WithInputOptions(opts ...input.Option) Config {
	c.InputOptions = append(append([]input.Option(nil), c.InputOptions...), opts...)
	return c
}

// WithExitKey returns a copy of c that ends the loop when k is pressed.
func (c Config) WithExitKey(k gpucontext.Key) Config {
	c.ExitKey = k
	return c
}

// Validate checks that the configured size is usable.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: width=%d, height=%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}
