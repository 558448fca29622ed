// Package input tracks keyboard and mouse state across frames.
//
// A Cache consumes raw window events through Update and is reconciled once
// per frame with PreUpdate. Between two PreUpdate calls its queries return a
// stable snapshot:
//
//	cache := input.New()
//	// window callbacks:
//	cache.Update(input.KeyEvent{Key: gpucontext.KeyW, Action: input.Press})
//	// once per frame:
//	if st, ok := cache.KeyState(gpucontext.KeyW); ok && st.Phase == input.Down {
//	    player.Forward(cache.TimeDelta())
//	}
//	cache.PreUpdate()
//
// # Button States
//
// Every key and the left, middle and right mouse buttons move through
//
//	(idle) -> Pressed -> Down -> Released -> (idle)
//
// Idle is never stored: an idle key has no entry and KeyState reports false.
// A press that survives one PreUpdate becomes Down. A Released entry is
// dropped by the next PreUpdate unless a new press arrives first, in which
// case it restarts as Pressed with a fresh timestamp.
//
// Releasing a key that is already Released means the event source delivered
// events out of order. Update reports this as a *TransitionError wrapping
// ErrDoubleRelease; WithPanicOnDoubleRelease turns it into a panic.
//
// # Held Time
//
// Down carries the press time and a second timestamp refreshed by PreUpdate.
// Mouse buttons store the latest frame time. Keyboard entries add the frame
// time to the previous value, so for keys the second timestamp is a running
// total rather than a point in time. The two rules are kept distinct.
//
// # Thread Safety
//
// Cache is NOT safe for concurrent use. Update, PreUpdate and the queries
// must all run on the goroutine that drives the frame loop.
package input
