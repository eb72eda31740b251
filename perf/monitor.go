package perf

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Monitor holds the measurement policy. It has no per-call state and may be
// shared between goroutines.
type Monitor struct {
	opts Options
}

// NewMonitor applies opts over DefaultOptions.
func NewMonitor(opts ...Option) *Monitor {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Monitor{opts: o}
}

// Timeout returns the configured deadline (0 when none).
func (m *Monitor) Timeout() time.Duration { return m.opts.Timeout }

// Enforcing reports whether a deadline is configured.
func (m *Monitor) Enforcing() bool { return m.opts.Timeout > 0 }

// Preemptive reports whether an overrunning task can be stopped from the
// outside. Always false: goroutines cannot be preempted.
func (m *Monitor) Preemptive() bool { return false }

// Task is one monitored invocation.
type Task[T any] struct {
	// Name labels the task in error messages.
	Name string
	// Run performs the work. It receives a context carrying the deadline.
	Run func(ctx context.Context) (T, error)
	// Cooperative declares that Run observes ctx and returns promptly
	// after cancellation. Measure waits for a cooperative Run to return;
	// others are abandoned.
	Cooperative bool
}

type outcome[T any] struct {
	val T
	err error
}

// Measure runs task under m and reports the value together with its Stats.
// A nil m behaves like NewMonitor().
func Measure[T any](ctx context.Context, m *Monitor, task Task[T]) (T, Stats) {
	var zero T
	if m == nil {
		m = NewMonitor()
	}
	st := Stats{Cancellation: m.cancellation(task.Cooperative)}
	if task.Run == nil {
		st.Error = fmt.Errorf("Measure(%s): %w", task.Name, ErrNilTask).Error()
		return zero, st
	}

	runCtx, cancel := ctx, context.CancelFunc(func() {})
	if m.Enforcing() {
		runCtx, cancel = context.WithTimeout(ctx, m.opts.Timeout)
	}
	defer cancel()

	rssBefore, rssErr := m.opts.Memory()
	probe := startProbe(m.opts.SampleInterval)
	start := time.Now()

	done := make(chan outcome[T], 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- outcome[T]{err: fmt.Errorf("%w: %v", ErrPanic, r)}
			}
		}()
		v, err := task.Run(runCtx)
		done <- outcome[T]{val: v, err: err}
	}()

	var out outcome[T]
	select {
	case out = <-done:
	case <-runCtx.Done():
		// Prefer a result that raced the deadline.
		select {
		case out = <-done:
		default:
			if !task.Cooperative {
				out.err = runCtx.Err()
				break
			}
			// A cooperative task returns shortly; its partial work is
			// visible to the caller once Measure returns.
			out = <-done
			if out.err == nil {
				out.err = runCtx.Err()
			}
		}
	}

	st.ElapsedSeconds = time.Since(start).Seconds()
	st.PeakMemoryMB, st.AllocatedMB = probe.finish()
	if rssAfter, err := m.opts.Memory(); err == nil && rssErr == nil {
		st.MemoryDeltaMB = (float64(rssAfter) - float64(rssBefore)) / bytesPerMB
	}

	switch {
	case out.err == nil:
		st.Success = true
		return out.val, st
	case errors.Is(out.err, context.DeadlineExceeded):
		st.Timeout = true
		st.Error = TimeoutMessage
	default:
		st.Error = out.err.Error()
	}

	return zero, st
}

func (m *Monitor) cancellation(cooperative bool) Cancellation {
	switch {
	case !m.Enforcing():
		return CancelNone
	case cooperative:
		return CancelCooperative
	default:
		return CancelAbandon
	}
}
