package experiment

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/exact"
	"github.com/katalvlaran/hampath/heuristic"
	"github.com/katalvlaran/hampath/perf"
)

// Runner owns the accumulated batches of one experiment session.
type Runner struct {
	opts    Options
	log     *zap.Logger
	batches []*Batch
}

// NewRunner applies opts over DefaultOptions.
func NewRunner(opts ...Option) *Runner {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Runner{opts: o, log: o.Logger}
}

// Monitor returns the monitor shared by all searches.
func (r *Runner) Monitor() *perf.Monitor { return r.opts.Monitor }

// Batches returns the batches recorded so far, in run order.
func (r *Runner) Batches() []*Batch {
	out := make([]*Batch, len(r.batches))
	copy(out, r.batches)

	return out
}

// RunConfiguration runs repetitions trials of (n, label) and records the batch.
//
// Errors:
//   - ErrInvalidSize, ErrInvalidRepetitions, ErrUnknownDensity before any work.
//   - ctx.Err() (wrapped) when ctx is done between trials; nothing is recorded.
//
// Sampler errors, search timeouts and search failures are recorded in the
// trials, not returned.
func (r *Runner) RunConfiguration(ctx context.Context, n int, label string, repetitions int) (*Batch, error) {
	const method = "RunConfiguration"
	if n < 1 {
		return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrInvalidSize)
	}
	if repetitions < 1 {
		return nil, fmt.Errorf("%s: repetitions=%d: %w", method, repetitions, ErrInvalidRepetitions)
	}
	p, err := Probability(label)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	ordinal := len(r.batches)
	b := &Batch{
		ID:          batchID(r.opts.Seed, ordinal, n, label, repetitions),
		N:           n,
		Density:     label,
		Probability: p,
		Repetitions: repetitions,
		Trials:      make([]Trial, 0, repetitions),
		StartedAt:   r.opts.Clock(),
	}
	log := r.log.With(
		zap.String("batch_id", b.ID.String()),
		zap.Int("n", n),
		zap.String("density", label),
	)

	for rep := 0; rep < repetitions; rep++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%s: trial %d: %w", method, rep, err)
		}
		b.Trials = append(b.Trials, r.runTrial(ctx, ordinal, rep, n, p))
		r.logTrial(log, &b.Trials[rep])
		for _, obs := range r.opts.Observers {
			obs.ObserveTrial(b, &b.Trials[rep])
		}
	}

	b.Stats = computeStatistics(b.Trials)
	b.FinishedAt = r.opts.Clock()
	r.batches = append(r.batches, b)

	for _, obs := range r.opts.Observers {
		obs.ObserveBatch(b)
	}
	for _, sink := range r.opts.Sinks {
		if err := sink.SaveBatch(ctx, b); err != nil {
			log.Error("persist batch", zap.Error(err))
		}
	}
	log.Info("batch complete",
		zap.Int("repetitions", repetitions),
		zap.Float64("exact_success_rate", b.Stats.Exact.SuccessRate),
		zap.Float64("heuristic_success_rate", b.Stats.Heuristic.SuccessRate),
		zap.Int("exact_timeouts", b.Stats.Exact.Timeouts),
		zap.Duration("elapsed", b.FinishedAt.Sub(b.StartedAt)),
	)

	return b, nil
}

// RunBatch runs every (size, label) configuration, sizes outer and labels
// inner, in the given order. All arguments are validated first. A failing
// configuration is skipped and its error joined into the returned error.
// When ctx is done the sweep stops before the next configuration. Either way
// the completed batches are returned.
func (r *Runner) RunBatch(ctx context.Context, sizes []int, labels []string, repetitions int) ([]*Batch, error) {
	const method = "RunBatch"
	for _, label := range labels {
		if _, err := Probability(label); err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
	}
	for _, n := range sizes {
		if n < 1 {
			return nil, fmt.Errorf("%s: n=%d: %w", method, n, ErrInvalidSize)
		}
	}
	if repetitions < 1 {
		return nil, fmt.Errorf("%s: repetitions=%d: %w", method, repetitions, ErrInvalidRepetitions)
	}

	out := make([]*Batch, 0, len(sizes)*len(labels))
	var errs []error
	for _, n := range sizes {
		for _, label := range labels {
			if err := ctx.Err(); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", method, err))
				return out, errors.Join(errs...)
			}
			b, err := r.RunConfiguration(ctx, n, label, repetitions)
			if err != nil {
				r.log.Error("configuration failed",
					zap.Int("n", n), zap.String("density", label), zap.Error(err))
				errs = append(errs, fmt.Errorf("%s: n=%d density=%s: %w", method, n, label, err))
				continue
			}
			out = append(out, b)
		}
	}

	return out, errors.Join(errs...)
}

// runTrial samples one graph and measures both searches on it. A sampler
// error yields a trial without a graph whose outcomes are both failures.
func (r *Runner) runTrial(ctx context.Context, ordinal, rep, n int, p float64) Trial {
	t := Trial{RunID: rep}
	g, err := r.opts.Sampler(n, p, trialRNG(r.opts.Seed, ordinal, rep, streamGraph))
	if err != nil {
		failed := Outcome{Perf: perf.Stats{Error: fmt.Errorf("%w: %w", ErrSamplerFailed, err).Error()}}
		t.Exact, t.Heuristic = failed, failed
		return t
	}
	heurSeed := trialSeed(r.opts.Seed, ordinal, rep, streamHeuristic)
	t.EdgeCount, t.Graph = g.Size(), g

	// Written by the task before Measure returns; cooperative tasks are awaited.
	var exactSteps int
	t.Exact = r.measure(ctx, AlgorithmExact, func(ctx context.Context) (core.Result, error) {
		res, err := exact.FindPath(ctx, g)
		exactSteps = res.Steps
		return res, err
	})
	if t.Exact.Perf.Timeout {
		t.Exact.Result.Steps = exactSteps
	}
	t.Heuristic = r.measure(ctx, AlgorithmHeuristic, func(ctx context.Context) (core.Result, error) {
		return heuristic.FindPath(ctx, g, heuristic.WithSeed(heurSeed))
	})

	return t
}

func (r *Runner) measure(ctx context.Context, name string, run func(context.Context) (core.Result, error)) Outcome {
	res, st := perf.Measure(ctx, r.opts.Monitor, perf.Task[core.Result]{
		Name:        name,
		Run:         run,
		Cooperative: true,
	})

	return Outcome{Result: res, Perf: st}
}

func (r *Runner) logTrial(log *zap.Logger, t *Trial) {
	log = log.With(zap.Int("run_id", t.RunID), zap.Int("edges", t.EdgeCount))
	if t.Graph == nil {
		log.Error("graph sampling failed", zap.String("error", t.Exact.Perf.Error))
		return
	}
	log.Debug("trial",
		zap.String("exact", t.Exact.Status()),
		zap.Float64("exact_seconds", t.Exact.Perf.ElapsedSeconds),
		zap.Int("exact_steps", t.Exact.Result.Steps),
		zap.String("heuristic", t.Heuristic.Status()),
		zap.Float64("heuristic_seconds", t.Heuristic.Perf.ElapsedSeconds),
	)
	for _, o := range []struct {
		alg string
		out Outcome
	}{{AlgorithmExact, t.Exact}, {AlgorithmHeuristic, t.Heuristic}} {
		switch o.out.Status() {
		case StatusTimeout:
			log.Warn("search timed out",
				zap.String("algorithm", o.alg),
				zap.Stringer("cancellation", o.out.Perf.Cancellation),
			)
		case StatusError:
			log.Error("search failed", zap.String("algorithm", o.alg), zap.String("error", o.out.Perf.Error))
		case StatusNoPath:
			log.Info("no hamiltonian path", zap.String("algorithm", o.alg))
		}
	}
}
