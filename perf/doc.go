// Package perf measures a single algorithm invocation: wall-clock time,
// resident memory, heap peak and allocation volume, and an optional deadline.
//
// Entry point:
//
//	m := perf.NewMonitor(perf.WithTimeoutSeconds(5))
//	res, st := perf.Measure(ctx, m, perf.Task[core.Result]{
//		Name:        "exact",
//		Run:         func(ctx context.Context) (core.Result, error) { return exact.FindPath(ctx, g) },
//		Cooperative: true,
//	})
//
// Outcomes (exactly one applies):
//
//	deadline fired first      → zero value, Timeout=true,  Success=false, Error="timeout"
//	task error or panic       → zero value, Timeout=false, Success=false, Error=<message>
//	otherwise                 → task value,  Success=true
//
// A task returning an error that wraps context.DeadlineExceeded is reported
// as a timeout as well.
//
// Cancellation capability. Go cannot preempt a goroutine. The task runs on
// its own goroutine under context.WithTimeout; when the deadline fires the
// caller regains control at once, but the task only stops if it observes its
// context. Stats.Cancellation makes this explicit per call:
//
//	CancelNone         no deadline configured
//	CancelCooperative  the task checks ctx and stops at its next checkpoint
//	CancelAbandon      the task keeps running in the background until it returns
//
// Monitor.Enforcing reports whether a deadline is configured at all, and
// Monitor.Preemptive is always false.
//
// Memory:
//   - MemoryDeltaMB  resident set size after − before (gopsutil).
//   - PeakMemoryMB   highest live heap seen during the call minus the
//     pre-call level (runtime/metrics, sampled by a probe goroutine).
//   - AllocatedMB    cumulative heap bytes allocated during the call.
//
// The heap figures are process-wide, so concurrent work elsewhere in the
// process shows up in them.
package perf
