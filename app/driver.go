package app

import (
	"errors"

	"github.com/gogpu/gg"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/ufo"
	"github.com/gogpu/ufo/input"
	"github.com/gogpu/ufo/integration/gpuinput"
)

// ErrClosed is returned by Frame after Close.
var ErrClosed = errors.New("app: driver is closed")

// Driver sequences one Application against one input cache.
// Loops feed it events and call Frame once per frame.
//
// Driver is NOT safe for concurrent use.
type Driver struct {
	app     Application
	cache   *input.Cache
	binding *gpuinput.Binding

	exitKey gpucontext.Key
	exiting bool

	width, height int
	frames        uint64
	closed        bool
}

// NewDriver creates a driver for a. The driver owns cache from now on.
func NewDriver(a Application, cache *input.Cache) *Driver {
	return &Driver{app: a, cache: cache}
}

// Bind forwards the input callbacks of src to the driver's cache. Errors
// the cache reports for those events are returned by the next Frame.
func (d *Driver) Bind(src gpucontext.EventSource) *gpuinput.Binding {
	d.binding = gpuinput.Attach(src, d.cache)
	return d.binding
}

// SetExitKey makes Frame request an exit when k has any state after Update.
// KeyUnknown disables the check.
func (d *Driver) SetExitKey(k gpucontext.Key) {
	d.exitKey = k
}

// ExitRequested reports whether the exit key was seen by a frame.
func (d *Driver) ExitRequested() bool {
	return d.exiting
}

// Cache returns the input cache, for loops that apply events directly.
func (d *Driver) Cache() *input.Cache {
	return d.cache
}

// Frames returns the number of completed frames.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// Resize forwards a size change to the application. Repeated calls with
// the same size are ignored.
func (d *Driver) Resize(width, height int) {
	if width == d.width && height == d.height {
		return
	}
	d.width, d.height = width, height
	d.app.Resize(width, height)
	ufo.Logger().Debug("app: resized", "width", width, "height", height)
}

// Frame runs Input and Update against the current snapshot, then
// reconciles the cache for the next frame.
//
// It returns the first error reported by a bound event source without
// running the frame, so a misordered event stream stops the application.
func (d *Driver) Frame() error {
	if d.closed {
		return ErrClosed
	}
	if d.binding != nil {
		if err := d.binding.Err(); err != nil {
			return err
		}
	}

	d.app.Input(d.cache)
	d.app.Update(d.cache)
	if d.exitKey != gpucontext.KeyUnknown && !d.exiting {
		if _, ok := d.cache.KeyState(d.exitKey); ok {
			d.exiting = true
			ufo.Logger().Info("app: exit key pressed", "frame", d.frames+1)
		}
	}
	d.cache.PreUpdate()
	d.frames++
	return nil
}

// Draw renders the application into dc.
func (d *Driver) Draw(dc *gg.Context) {
	d.app.Draw(dc)
}

// Close calls Exit on the application once. Later calls do nothing.
func (d *Driver) Close() {
	if d.closed {
		return
	}
	d.closed = true
	if d.binding != nil {
		d.binding.Detach()
	}
	d.app.Exit(d.cache)
	ufo.Logger().Info("app: closed", "frames", d.frames)
}
