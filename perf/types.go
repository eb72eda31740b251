package perf

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors.
var (
	// ErrNilTask indicates a Task without a Run function.
	ErrNilTask = errors.New("perf: task has no Run function")

	// ErrPanic wraps a value recovered from a panicking task.
	ErrPanic = errors.New("perf: task panicked")
)

// TimeoutMessage is the Stats.Error text recorded on a deadline.
const TimeoutMessage = "timeout"

const bytesPerMB = 1024 * 1024

// Cancellation describes what happens to a task when its deadline fires.
type Cancellation uint8

const (
	CancelNone Cancellation = iota
	CancelCooperative
	CancelAbandon
)

// String returns "none", "cooperative" or "abandon".
func (c Cancellation) String() string {
	switch c {
	case CancelNone:
		return "none"
	case CancelCooperative:
		return "cooperative"
	case CancelAbandon:
		return "abandon"
	}

	return fmt.Sprintf("Cancellation(%d)", uint8(c))
}

// MarshalText encodes the lower-case name.
func (c Cancellation) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText decodes a name produced by MarshalText.
func (c *Cancellation) UnmarshalText(b []byte) error {
	for v := CancelNone; v <= CancelAbandon; v++ {
		if v.String() == string(b) {
			*c = v
			return nil
		}
	}

	return fmt.Errorf("perf: unknown cancellation %q", string(b))
}

// Stats is the measurement of one monitored invocation.
type Stats struct {
	ElapsedSeconds float64      `json:"elapsed_seconds"`
	MemoryDeltaMB  float64      `json:"memory_delta_mb"`
	PeakMemoryMB   float64      `json:"peak_memory_mb"`
	AllocatedMB    float64      `json:"allocated_mb"`
	Success        bool         `json:"success"`
	Timeout        bool         `json:"timeout"`
	Error          string       `json:"error,omitempty"`
	Cancellation   Cancellation `json:"cancellation"`
}

// Failed reports a task error or panic (not a timeout).
func (s Stats) Failed() bool { return !s.Success && !s.Timeout && s.Error != "" }

// MemoryReader returns the current resident set size in bytes.
type MemoryReader func() (uint64, error)

// Options configures a Monitor.
type Options struct {
	Timeout        time.Duration // 0 disables the deadline
	SampleInterval time.Duration // memory probe period
	Memory         MemoryReader  // RSS source
}

// Option mutates Options.
type Option func(*Options)

const defaultSampleInterval = 5 * time.Millisecond

// DefaultOptions: no deadline, 5ms probe, RSS from gopsutil.
func DefaultOptions() Options {
	return Options{
		Timeout:        0,
		SampleInterval: defaultSampleInterval,
		Memory:         processRSS,
	}
}

// WithTimeoutSeconds sets the deadline in whole seconds; 0 disables it.
// Panics on negative input.
func WithTimeoutSeconds(sec int) Option {
	if sec < 0 {
		panic("perf: WithTimeoutSeconds(sec<0)")
	}

	return func(o *Options) { o.Timeout = time.Duration(sec) * time.Second }
}

// WithTimeout sets the deadline; 0 disables it. Panics on negative input.
func WithTimeout(d time.Duration) Option {
	if d < 0 {
		panic("perf: WithTimeout(d<0)")
	}

	return func(o *Options) { o.Timeout = d }
}

// WithSampleInterval sets the memory probe period. Panics on d ≤ 0.
func WithSampleInterval(d time.Duration) Option {
	if d <= 0 {
		panic("perf: WithSampleInterval(d<=0)")
	}

	return func(o *Options) { o.SampleInterval = d }
}

// WithMemoryReader replaces the RSS source. Panics on nil.
func WithMemoryReader(r MemoryReader) Option {
	if r == nil {
		panic("perf: WithMemoryReader(nil)")
	}

	return func(o *Options) { o.Memory = r }
}
