package anneal

// Option configures Run via functional arguments.
type Option func(*Options)

// Options holds the parameters and hooks of an instrumented run.
type Options struct {
	// OnStep is called after every iteration with the decision just made.
	// It observes only; it cannot stop or alter the run.
	OnStep func(Step)

	// GuardRandom validates every Random() draw against [0,1).
	GuardRandom bool
}

// DefaultOptions returns Options with a no-op OnStep and no random guard.
func DefaultOptions() Options {
	return Options{
		OnStep:      func(Step) {},
		GuardRandom: false,
	}
}

// WithOnStep registers an observer for every iteration. A nil fn is ignored.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRandomGuard makes Run fail with ErrRandomOutOfRange as soon as Random()
// returns a value outside [0,1) or NaN.
func WithRandomGuard() Option {
	return func(o *Options) {
		o.GuardRandom = true
	}
}
