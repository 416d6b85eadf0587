package signal

type OnErrorFunc func(err error)

type options struct {
	stopEmit         StopPolicy
	guardSuccessTest func(result any) bool
	onError          OnErrorFunc
}

type Option func(*options)

// WithStopEmit sets the policy applied to guard outcomes. Guards registered on
// a signal using StopNever are never called.
func WithStopEmit(p StopPolicy) Option {
	return func(o *options) {
		o.stopEmit = p
	}
}

// WithGuardSuccessTest replaces the test applied to guard results that are
// not Awaiters.
func WithGuardSuccessTest(fn func(result any) bool) Option {
	return func(o *options) {
		if fn != nil {
			o.guardSuccessTest = fn
		}
	}
}

// WithErrorHandler receives the panics recovered from bound handlers.
// Without one they are dropped.
func WithErrorHandler(fn OnErrorFunc) Option {
	return func(o *options) {
		o.onError = fn
	}
}

// DefaultGuardSuccessTest accepts nil and true.
func DefaultGuardSuccessTest(result any) bool {
	if result == nil {
		return true
	}
	b, ok := result.(bool)
	return ok && b
}

func newOptions(opts []Option) options {
	o := options{
		stopEmit:         StopNever,
		guardSuccessTest: DefaultGuardSuccessTest,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
