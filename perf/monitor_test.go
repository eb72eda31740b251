package perf_test

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/exact"
	"github.com/katalvlaran/hampath/perf"
)

// fixedRSS is a MemoryReader returning successive values from a list.
func fixedRSS(values ...uint64) perf.MemoryReader {
	i := 0
	return func() (uint64, error) {
		v := values[i%len(values)]
		i++
		return v, nil
	}
}

func TestMeasure_SuccessIsIdentity(t *testing.T) {
	g := core.MustGraph(4, []core.Edge{{0, 1}, {1, 2}, {2, 3}, {3, 0}})
	plain, err := exact.FindPath(context.Background(), g)
	require.NoError(t, err)

	m := perf.NewMonitor(perf.WithTimeoutSeconds(5))
	got, st := perf.Measure(context.Background(), m, perf.Task[core.Result]{
		Name:        "exact",
		Run:         func(ctx context.Context) (core.Result, error) { return exact.FindPath(ctx, g) },
		Cooperative: true,
	})
	assert.Equal(t, plain, got)
	assert.True(t, st.Success)
	assert.False(t, st.Timeout)
	assert.Empty(t, st.Error)
	assert.GreaterOrEqual(t, st.ElapsedSeconds, 0.0)
	assert.GreaterOrEqual(t, st.PeakMemoryMB, 0.0)
	assert.Equal(t, perf.CancelCooperative, st.Cancellation)
}

func TestMeasure_TimeoutAbandons(t *testing.T) {
	release := make(chan struct{})
	defer close(release)

	m := perf.NewMonitor(perf.WithTimeout(20 * time.Millisecond))
	begin := time.Now()
	got, st := perf.Measure(context.Background(), m, perf.Task[int]{
		Name: "stubborn",
		Run: func(context.Context) (int, error) {
			<-release // ignores ctx
			return 42, nil
		},
	})
	assert.Less(t, time.Since(begin), 2*time.Second, "caller regains control")
	assert.Zero(t, got)
	assert.True(t, st.Timeout)
	assert.False(t, st.Success)
	assert.Equal(t, perf.TimeoutMessage, st.Error)
	assert.Equal(t, perf.CancelAbandon, st.Cancellation)
	assert.False(t, st.Failed())
}

func TestMeasure_TimeoutCooperative(t *testing.T) {
	// K_{6,8} has no path; the exhaustive search runs far beyond 30ms.
	g, err := builder.BuildGraph(nil, builder.CompleteBipartite(6, 8))
	require.NoError(t, err)

	stopped := make(chan error, 1)
	m := perf.NewMonitor(perf.WithTimeout(30 * time.Millisecond))
	got, st := perf.Measure(context.Background(), m, perf.Task[core.Result]{
		Name: "exact",
		Run: func(ctx context.Context) (core.Result, error) {
			res, err := exact.FindPath(ctx, g)
			stopped <- err
			return res, err
		},
		Cooperative: true,
	})
	assert.True(t, st.Timeout)
	assert.Equal(t, core.Result{}, got)
	assert.Equal(t, perf.CancelCooperative, st.Cancellation)

	select {
	case err := <-stopped:
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(5 * time.Second):
		t.Fatal("search did not observe the deadline")
	}
}

func TestMeasure_WaitsForCooperativeTask(t *testing.T) {
	var finished atomic.Bool
	m := perf.NewMonitor(perf.WithTimeout(10 * time.Millisecond))
	got, st := perf.Measure(context.Background(), m, perf.Task[int]{
		Run: func(ctx context.Context) (int, error) {
			<-ctx.Done()
			time.Sleep(20 * time.Millisecond)
			finished.Store(true)
			return 3, ctx.Err()
		},
		Cooperative: true,
	})
	assert.True(t, finished.Load(), "Measure returns after the task")
	assert.Zero(t, got)
	assert.True(t, st.Timeout)
	assert.GreaterOrEqual(t, st.ElapsedSeconds, 0.03)

	// Finishing late without an error is still a timeout.
	_, st = perf.Measure(context.Background(), m, perf.Task[int]{
		Run: func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 1, nil
		},
		Cooperative: true,
	})
	assert.True(t, st.Timeout)
	assert.False(t, st.Success)
}

func TestMeasure_ErrorsAndPanics(t *testing.T) {
	m := perf.NewMonitor()

	v, st := perf.Measure(context.Background(), m, perf.Task[string]{
		Run: func(context.Context) (string, error) { return "partial", errors.New("boom") },
	})
	assert.Empty(t, v)
	assert.Equal(t, "boom", st.Error)
	assert.False(t, st.Success)
	assert.False(t, st.Timeout)
	assert.True(t, st.Failed())

	_, st = perf.Measure(context.Background(), m, perf.Task[int]{
		Run: func(context.Context) (int, error) { panic("index out of range") },
	})
	assert.Contains(t, st.Error, "panicked")
	assert.Contains(t, st.Error, "index out of range")
	assert.False(t, st.Success)

	_, st = perf.Measure(context.Background(), m, perf.Task[int]{Name: "empty"})
	assert.Contains(t, st.Error, "no Run function")
}

func TestMeasure_DeadlineErrorFromTask(t *testing.T) {
	_, st := perf.Measure(context.Background(), perf.NewMonitor(), perf.Task[int]{
		Run: func(context.Context) (int, error) { return 0, context.DeadlineExceeded },
	})
	assert.True(t, st.Timeout)
	assert.Equal(t, perf.TimeoutMessage, st.Error)
}

func TestMeasure_ParentCancelIsNotTimeout(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := perf.NewMonitor(perf.WithTimeoutSeconds(10))
	_, st := perf.Measure(ctx, m, perf.Task[int]{
		Run: func(ctx context.Context) (int, error) {
			<-ctx.Done()
			return 0, ctx.Err()
		},
		Cooperative: true,
	})
	assert.False(t, st.Timeout)
	assert.False(t, st.Success)
	assert.Equal(t, context.Canceled.Error(), st.Error)
}

func TestMeasure_NoDeadline(t *testing.T) {
	m := perf.NewMonitor()
	assert.False(t, m.Enforcing())
	assert.False(t, m.Preemptive())

	v, st := perf.Measure(context.Background(), m, perf.Task[int]{
		Run: func(context.Context) (int, error) {
			time.Sleep(10 * time.Millisecond)
			return 7, nil
		},
	})
	assert.Equal(t, 7, v)
	assert.True(t, st.Success)
	assert.Equal(t, perf.CancelNone, st.Cancellation)
	assert.GreaterOrEqual(t, st.ElapsedSeconds, 0.01)

	v, st = perf.Measure(context.Background(), nil, perf.Task[int]{
		Run: func(context.Context) (int, error) { return 1, nil },
	})
	assert.Equal(t, 1, v)
	assert.True(t, st.Success)
}

func TestMeasure_Memory(t *testing.T) {
	const mb = 1024 * 1024
	m := perf.NewMonitor(
		perf.WithMemoryReader(fixedRSS(100*mb, 150*mb)),
		perf.WithSampleInterval(time.Millisecond),
	)

	var sink [][]byte
	_, st := perf.Measure(context.Background(), m, perf.Task[int]{
		Run: func(context.Context) (int, error) {
			for i := 0; i < 16; i++ {
				sink = append(sink, make([]byte, mb))
			}
			time.Sleep(5 * time.Millisecond)
			return len(sink), nil
		},
	})
	assert.InDelta(t, 50.0, st.MemoryDeltaMB, 1e-9)
	assert.GreaterOrEqual(t, st.AllocatedMB, 16.0)
	assert.GreaterOrEqual(t, st.PeakMemoryMB, 0.0)
	assert.Len(t, sink, 16)

	failing := perf.NewMonitor(perf.WithMemoryReader(func() (uint64, error) { return 0, errors.New("no procfs") }))
	_, st = perf.Measure(context.Background(), failing, perf.Task[int]{
		Run: func(context.Context) (int, error) { return 0, nil },
	})
	assert.True(t, st.Success)
	assert.Zero(t, st.MemoryDeltaMB)
}

func TestOptions(t *testing.T) {
	assert.Equal(t, 2*time.Second, perf.NewMonitor(perf.WithTimeoutSeconds(2)).Timeout())
	assert.True(t, perf.NewMonitor(perf.WithTimeoutSeconds(2)).Enforcing())
	assert.False(t, perf.NewMonitor(perf.WithTimeoutSeconds(0)).Enforcing())

	assert.Panics(t, func() { perf.WithTimeoutSeconds(-1) })
	assert.Panics(t, func() { perf.WithTimeout(-time.Second) })
	assert.Panics(t, func() { perf.WithSampleInterval(0) })
	assert.Panics(t, func() { perf.WithMemoryReader(nil) })

	assert.Equal(t, "abandon", perf.CancelAbandon.String())
	assert.Equal(t, "Cancellation(9)", perf.Cancellation(9).String())
}

func TestStats_JSONRoundTrip(t *testing.T) {
	st := perf.Stats{ElapsedSeconds: 1.5, Timeout: true, Error: perf.TimeoutMessage, Cancellation: perf.CancelAbandon}
	data, err := json.Marshal(st)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cancellation":"abandon"`)

	var back perf.Stats
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, st, back)

	var c perf.Cancellation
	assert.Error(t, c.UnmarshalText([]byte("later")))
}
