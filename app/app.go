package app

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/ufo/input"
)

// Application is implemented by every program run by a Loop.
//
// All methods are called on the loop goroutine. The cache passed to Input,
// Update and Exit is owned by the loop and must not be retained.
type Application interface {
	// Input reacts to the snapshot of the current frame.
	Input(in *input.Cache)

	// Update advances the simulation; in.TimeDelta is the frame time.
	Update(in *input.Cache)

	// Draw renders the current state.
	Draw(dc *gg.Context)

	// Resize is called before the first frame and whenever the drawable
	// size changes.
	Resize(width, height int)

	// Exit is called once when the loop ends.
	Exit(in *input.Cache)
}

// Loop runs an Application until its window closes or its script ends.
type Loop interface {
	Run(a Application) error
}
