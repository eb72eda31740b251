package experiment_test

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/hampath/builder"
	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/experiment"
	"github.com/katalvlaran/hampath/perf"
)

// fixedSampler ignores n and p and always returns the constructor's graph.
func fixedSampler(c builder.Constructor) experiment.Sampler {
	return func(int, float64, *rand.Rand) (*core.Graph, error) {
		return builder.BuildGraph(nil, c)
	}
}

type recorder struct {
	mu      sync.Mutex
	trials  int
	batches []*experiment.Batch
	onBatch func(*experiment.Batch)
}

func (r *recorder) ObserveTrial(*experiment.Batch, *experiment.Trial) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trials++
}

func (r *recorder) ObserveBatch(b *experiment.Batch) {
	r.mu.Lock()
	r.batches = append(r.batches, b)
	r.mu.Unlock()
	if r.onBatch != nil {
		r.onBatch(b)
	}
}

type failingSink struct{ calls int }

func (s *failingSink) SaveBatch(context.Context, *experiment.Batch) error {
	s.calls++
	return errors.New("store unavailable")
}

func TestProbability(t *testing.T) {
	for label, want := range map[string]float64{"sparse": 0.2, "medium": 0.5, "dense": 0.8} {
		p, err := experiment.Probability(label)
		require.NoError(t, err)
		assert.Equal(t, want, p)
	}
	_, err := experiment.Probability("very-dense")
	assert.ErrorIs(t, err, experiment.ErrUnknownDensity)
	assert.Equal(t, []string{"sparse", "medium", "dense"}, experiment.Labels())
}

func TestRunConfiguration_DenseTenByFive(t *testing.T) {
	rec := &recorder{}
	r := experiment.NewRunner(experiment.WithSeed(42), experiment.WithObserver(rec))

	b, err := r.RunConfiguration(context.Background(), 10, experiment.Dense, 5)
	require.NoError(t, err)

	assert.Len(t, b.Trials, 5)
	assert.Equal(t, 0.8, b.Probability)
	assert.Equal(t, 10, b.N)
	assert.Equal(t, experiment.Dense, b.Density)
	assert.Equal(t, 5, b.Repetitions)
	assert.Equal(t, 5, b.Stats.Exact.Trials)
	assert.Equal(t, 5, rec.trials)
	require.Len(t, rec.batches, 1)
	assert.Same(t, b, rec.batches[0])
	assert.False(t, b.FinishedAt.Before(b.StartedAt))

	for i, tr := range b.Trials {
		assert.Equal(t, i, tr.RunID)
		assert.Equal(t, tr.Graph.Size(), tr.EdgeCount)
		assert.Equal(t, 10, tr.Graph.Order())
		assert.NoError(t, tr.Exact.Result.Validate(tr.Graph))
		assert.NoError(t, tr.Heuristic.Result.Validate(tr.Graph))
		assert.True(t, tr.Exact.Perf.Success)
		assert.Positive(t, tr.Exact.Result.Steps)
		assert.Zero(t, tr.Heuristic.Result.Steps)
		if tr.Heuristic.Result.Found {
			assert.True(t, tr.Exact.Result.Found, "the exact search is complete")
		}
	}

	rate := float64(b.Stats.Exact.Successes) / 5
	assert.Equal(t, rate, b.Stats.Exact.SuccessRate)
	assert.Equal(t, []*experiment.Batch{b}, r.Batches())
}

func TestRunConfiguration_InvalidArguments(t *testing.T) {
	r := experiment.NewRunner()
	ctx := context.Background()

	_, err := r.RunConfiguration(ctx, 0, experiment.Sparse, 3)
	assert.ErrorIs(t, err, experiment.ErrInvalidSize)
	_, err = r.RunConfiguration(ctx, 5, experiment.Sparse, 0)
	assert.ErrorIs(t, err, experiment.ErrInvalidRepetitions)
	_, err = r.RunConfiguration(ctx, 5, "thick", 3)
	assert.ErrorIs(t, err, experiment.ErrUnknownDensity)

	assert.Empty(t, r.Batches())
}

func TestRunConfiguration_SamplerFailure(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	r := experiment.NewRunner(
		experiment.WithSampler(func(int, float64, *rand.Rand) (*core.Graph, error) {
			return nil, errors.New("disk full")
		}),
		experiment.WithLogger(zap.New(zc)),
	)
	b, err := r.RunConfiguration(context.Background(), 5, experiment.Medium, 2)
	require.NoError(t, err, "sampler errors are recorded per trial")
	require.Len(t, b.Trials, 2)

	for _, tr := range b.Trials {
		assert.Nil(t, tr.Graph)
		assert.Zero(t, tr.EdgeCount)
		for _, o := range []experiment.Outcome{tr.Exact, tr.Heuristic} {
			assert.Equal(t, experiment.StatusError, o.Status())
			assert.Contains(t, o.Perf.Error, "disk full")
			assert.Contains(t, o.Perf.Error, experiment.ErrSamplerFailed.Error())
		}
	}
	assert.Equal(t, 2, b.Stats.Exact.Errors)
	assert.Equal(t, 2, b.Stats.Heuristic.Errors)
	assert.Zero(t, b.Stats.Exact.SuccessRate)
	assert.Equal(t, 2, logs.FilterMessage("graph sampling failed").Len())
	assert.Zero(t, logs.FilterMessage("search failed").Len())
	assert.Len(t, r.Batches(), 1)
}

func TestRunBatch_SamplerFailureDoesNotStopSweep(t *testing.T) {
	sample := experiment.DefaultOptions().Sampler
	r := experiment.NewRunner(experiment.WithSampler(func(n int, p float64, rng *rand.Rand) (*core.Graph, error) {
		if n == 5 {
			return nil, errors.New("n=5 unsupported")
		}
		return sample(n, p, rng)
	}))

	batches, err := r.RunBatch(context.Background(), []int{4, 5, 6}, []string{experiment.Dense}, 2)
	require.NoError(t, err)
	require.Len(t, batches, 3)

	assert.Equal(t, []int{4, 5, 6}, []int{batches[0].N, batches[1].N, batches[2].N})
	assert.Equal(t, 2, batches[1].Stats.Exact.Errors)
	for _, tr := range batches[1].Trials {
		assert.Equal(t, experiment.StatusError, tr.Exact.Status())
	}
	for _, b := range []*experiment.Batch{batches[0], batches[2]} {
		assert.Zero(t, b.Stats.Exact.Errors)
		for _, tr := range b.Trials {
			require.NotNil(t, tr.Graph)
			assert.Equal(t, b.N, tr.Graph.Order())
		}
	}
}

func TestRunConfiguration_TimeoutsAreRecorded(t *testing.T) {
	zc, logs := observer.New(zapcore.DebugLevel)
	r := experiment.NewRunner(
		experiment.WithSampler(fixedSampler(builder.CompleteBipartite(6, 8))),
		experiment.WithMonitor(perf.NewMonitor(perf.WithTimeout(20*time.Millisecond))),
		experiment.WithLogger(zap.New(zc)),
	)

	b, err := r.RunConfiguration(context.Background(), 14, experiment.Sparse, 3)
	require.NoError(t, err, "timeouts never abort the sweep")
	require.Len(t, b.Trials, 3)

	for _, tr := range b.Trials {
		assert.True(t, tr.Exact.Perf.Timeout)
		assert.False(t, tr.Exact.Result.Found)
		assert.Positive(t, tr.Exact.Result.Steps, "partial work survives the deadline")
		assert.Equal(t, experiment.StatusTimeout, tr.Exact.Status())
		assert.Equal(t, experiment.StatusNoPath, tr.Heuristic.Status())
	}
	ex := b.Stats.Exact
	assert.Equal(t, 3, ex.Timeouts)
	assert.Zero(t, ex.SuccessRate)
	assert.Zero(t, ex.AvgTime, "timed-out trials are excluded from timing")
	assert.Zero(t, ex.MaxTime)
	assert.Positive(t, ex.AvgSteps)
	assert.Zero(t, b.Stats.Heuristic.SuccessRate)

	assert.Equal(t, 3, logs.FilterMessage("search timed out").Len())
	assert.Equal(t, 3, logs.FilterMessage("no hamiltonian path").Len())
	assert.Equal(t, 1, logs.FilterMessage("batch complete").Len())
}

func TestRunConfiguration_SinkFailureIsLogged(t *testing.T) {
	zc, logs := observer.New(zapcore.ErrorLevel)
	sink := &failingSink{}
	r := experiment.NewRunner(experiment.WithSink(sink), experiment.WithLogger(zap.New(zc)))

	_, err := r.RunConfiguration(context.Background(), 5, experiment.Dense, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, sink.calls)
	entries := logs.FilterMessage("persist batch").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "store unavailable", entries[0].ContextMap()["error"])
}

func TestRunConfiguration_Deterministic(t *testing.T) {
	run := func(seed int64) []*experiment.Batch {
		r := experiment.NewRunner(experiment.WithSeed(seed))
		bs, err := r.RunBatch(context.Background(), []int{6, 8}, []string{experiment.Sparse, experiment.Dense}, 3)
		require.NoError(t, err)
		return bs
	}
	a, b, c := run(7), run(7), run(8)

	require.Len(t, a, 4)
	for i := range a {
		assert.Equal(t, a[i].ID, b[i].ID)
		assert.NotEqual(t, a[i].ID, c[i].ID)
		for j := range a[i].Trials {
			ta, tb := a[i].Trials[j], b[i].Trials[j]
			assert.Equal(t, ta.Graph.Edges(), tb.Graph.Edges())
			assert.Equal(t, ta.Exact.Result, tb.Exact.Result)
			assert.Equal(t, ta.Heuristic.Result, tb.Heuristic.Result)
		}
	}

	differs := false
	for i := range a {
		for j := range a[i].Trials {
			if a[i].Trials[j].EdgeCount != c[i].Trials[j].EdgeCount {
				differs = true
			}
		}
	}
	assert.True(t, differs, "another seed samples other graphs")
}

func TestRunBatch_Order(t *testing.T) {
	r := experiment.NewRunner()
	bs, err := r.RunBatch(context.Background(), []int{4, 5}, []string{experiment.Dense, experiment.Sparse}, 1)
	require.NoError(t, err)

	type cfg struct {
		n     int
		label string
	}
	var got []cfg
	for _, b := range bs {
		got = append(got, cfg{b.N, b.Density})
	}
	assert.Equal(t, []cfg{{4, "dense"}, {4, "sparse"}, {5, "dense"}, {5, "sparse"}}, got)
	assert.Equal(t, bs, r.Batches())
}

func TestRunBatch_ValidatesUpfront(t *testing.T) {
	r := experiment.NewRunner()
	_, err := r.RunBatch(context.Background(), []int{4, 5}, []string{experiment.Dense, "bogus"}, 1)
	assert.ErrorIs(t, err, experiment.ErrUnknownDensity)
	_, err = r.RunBatch(context.Background(), []int{4, -1}, []string{experiment.Dense}, 1)
	assert.ErrorIs(t, err, experiment.ErrInvalidSize)
	_, err = r.RunBatch(context.Background(), []int{4}, []string{experiment.Dense}, 0)
	assert.ErrorIs(t, err, experiment.ErrInvalidRepetitions)
	assert.Empty(t, r.Batches(), "nothing ran")
}

func TestRunBatch_CancelStopsBetweenConfigurations(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &recorder{onBatch: func(*experiment.Batch) { cancel() }}
	r := experiment.NewRunner(experiment.WithObserver(rec))

	bs, err := r.RunBatch(ctx, []int{4, 5, 6}, []string{experiment.Medium}, 2)
	assert.ErrorIs(t, err, context.Canceled)
	require.Len(t, bs, 1)
	assert.Equal(t, 4, bs[0].N)
	assert.Len(t, r.Batches(), 1)
}

func TestRunner_Clock(t *testing.T) {
	t0 := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	tick := 0
	r := experiment.NewRunner(experiment.WithClock(func() time.Time {
		tick++
		return t0.Add(time.Duration(tick) * time.Second)
	}))
	b, err := r.RunConfiguration(context.Background(), 3, experiment.Dense, 1)
	require.NoError(t, err)
	assert.Equal(t, t0.Add(time.Second), b.StartedAt)
	assert.Equal(t, t0.Add(2*time.Second), b.FinishedAt)
}

func TestOptions_PanicOnNil(t *testing.T) {
	assert.Panics(t, func() { experiment.WithMonitor(nil) })
	assert.Panics(t, func() { experiment.WithSampler(nil) })
	assert.Panics(t, func() { experiment.WithLogger(nil) })
	assert.Panics(t, func() { experiment.WithObserver(nil) })
	assert.Panics(t, func() { experiment.WithSink(nil) })
	assert.Panics(t, func() { experiment.WithClock(nil) })
	assert.Panics(t, func() { experiment.WithTimeoutSeconds(-1) })

	r := experiment.NewRunner(experiment.WithTimeoutSeconds(3))
	assert.Equal(t, 3*time.Second, r.Monitor().Timeout())
	assert.Equal(t, time.Duration(experiment.DefaultTimeoutSeconds)*time.Second, experiment.NewRunner().Monitor().Timeout())
}
