package experiment

import (
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/perf"
)

// DefaultTimeoutSeconds is the per-search deadline when none is configured.
const DefaultTimeoutSeconds = 10

// Options configures a Runner.
type Options struct {
	Seed      int64
	Monitor   *perf.Monitor
	Sampler   Sampler
	Logger    *zap.Logger
	Observers []TrialObserver
	Sinks     []BatchSink
	Clock     func() time.Time
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions: seed 0 (⇒ 1), DefaultTimeoutSeconds deadline,
// builder.Sample, no-op logger, wall clock.
func DefaultOptions() Options {
	return Options{
		Seed:    0,
		Monitor: perf.NewMonitor(perf.WithTimeoutSeconds(DefaultTimeoutSeconds)),
		Sampler: builder.Sample,
		Logger:  zap.NewNop(),
		Clock:   time.Now,
	}
}

// WithSeed sets the root seed for all per-trial streams.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithTimeoutSeconds replaces the monitor with one enforcing sec seconds
// (0 disables the deadline). Panics on negative input.
func WithTimeoutSeconds(sec int) Option {
	m := perf.NewMonitor(perf.WithTimeoutSeconds(sec))

	return func(o *Options) { o.Monitor = m }
}

// WithMonitor supplies a preconfigured monitor. Panics on nil.
func WithMonitor(m *perf.Monitor) Option {
	if m == nil {
		panic("experiment: WithMonitor(nil)")
	}

	return func(o *Options) { o.Monitor = m }
}

// WithSampler replaces the graph sampler. Panics on nil.
func WithSampler(s Sampler) Option {
	if s == nil {
		panic("experiment: WithSampler(nil)")
	}

	return func(o *Options) { o.Sampler = s }
}

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("experiment: WithLogger(nil)")
	}

	return func(o *Options) { o.Logger = l }
}

// WithObserver adds a TrialObserver. Panics on nil.
func WithObserver(obs TrialObserver) Option {
	if obs == nil {
		panic("experiment: WithObserver(nil)")
	}

	return func(o *Options) { o.Observers = append(o.Observers, obs) }
}

// WithSink adds a BatchSink. Panics on nil.
func WithSink(s BatchSink) Option {
	if s == nil {
		panic("experiment: WithSink(nil)")
	}

	return func(o *Options) { o.Sinks = append(o.Sinks, s) }
}

// WithClock replaces time.Now for batch timestamps. Panics on nil.
func WithClock(now func() time.Time) Option {
	if now == nil {
		panic("experiment: WithClock(nil)")
	}

	return func(o *Options) { o.Clock = now }
}
