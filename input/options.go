package input

// Option configures a Cache during creation.
//
// Example:
//
//	clock := &input.ManualClock{}
//	cache := input.New(input.WithClock(clock), input.WithPanicOnDoubleRelease())
type Option func(*options)

// options holds optional configuration for Cache creation.
type options struct {
	clock       Clock
	keyCapacity int
	strict      bool
}

// defaultKeyCapacity covers every key a player can reasonably hold.
const defaultKeyCapacity = 128

func defaultOptions() options {
	return options{
		clock:       nil, // MonotonicClock started by New
		keyCapacity: defaultKeyCapacity,
	}
}

// WithClock sets the time source. The default is a MonotonicClock started
// when the Cache is created.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithKeyCapacity sets the initial capacity of the keyboard map.
// Non-positive values keep the default.
func WithKeyCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.keyCapacity = n
		}
	}
}

// WithPanicOnDoubleRelease makes Update panic with the *TransitionError
// instead of returning it. Use it when a misordered event stream should stop
// the program immediately.
func WithPanicOnDoubleRelease() Option {
	return func(o *options) {
		o.strict = true
	}
}
