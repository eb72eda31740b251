package exact

// checkEvery is the number of entered vertices between two context checks.
// Must be a power of two.
const checkEvery = 1024

// Options configures FindPath.
type Options struct {
	// Trace collects every StepEvent into Result.Trace.
	Trace bool
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero configuration: no trace.
func DefaultOptions() Options {
	return Options{Trace: false}
}

// WithTrace enables trace collection.
func WithTrace() Option {
	return func(o *Options) { o.Trace = true }
}
