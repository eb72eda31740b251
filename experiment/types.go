package experiment

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/hampath/core"
	"github.com/katalvlaran/hampath/perf"
)

// Sentinel errors.
var (
	ErrUnknownDensity     = errors.New("experiment: unknown density label")
	ErrInvalidSize        = errors.New("experiment: n must be ≥ 1")
	ErrInvalidRepetitions = errors.New("experiment: repetitions must be ≥ 1")
	ErrNoTrials           = errors.New("experiment: no trials recorded")
	ErrSamplerFailed      = errors.New("experiment: graph sampler failed")
)

// Algorithm names used in logs, metrics and stored documents.
const (
	AlgorithmExact     = "exact"
	AlgorithmHeuristic = "heuristic"
)

// Trial outcome classes.
const (
	StatusSuccess = "success"
	StatusNoPath  = "no_path"
	StatusTimeout = "timeout"
	StatusError   = "error"
)

// Sampler draws one random graph on n vertices with edge probability p.
// builder.Sample satisfies it.
type Sampler func(n int, p float64, rng *rand.Rand) (*core.Graph, error)

// Outcome pairs a search result with its measurement.
type Outcome struct {
	Result core.Result `json:"result"`
	Perf   perf.Stats  `json:"perf"`
}

// Status classifies the outcome as one of the Status* constants.
func (o Outcome) Status() string {
	switch {
	case o.Perf.Timeout:
		return StatusTimeout
	case !o.Perf.Success:
		return StatusError
	case o.Result.Found:
		return StatusSuccess
	default:
		return StatusNoPath
	}
}

// Trial is one repetition: the sampled graph and both outcomes.
type Trial struct {
	RunID     int         `json:"run_id"`
	EdgeCount int         `json:"edge_count"`
	Graph     *core.Graph `json:"graph"`
	Exact     Outcome     `json:"exact"`
	Heuristic Outcome     `json:"heuristic"`
}

// AlgorithmStats aggregates one algorithm over a batch. Times are seconds.
type AlgorithmStats struct {
	Trials      int     `json:"trials"`
	Successes   int     `json:"successes"`
	SuccessRate float64 `json:"success_rate"`
	AvgTime     float64 `json:"avg_time"`
	MinTime     float64 `json:"min_time"`
	MaxTime     float64 `json:"max_time"`
	AvgSteps    float64 `json:"avg_steps"`
	MinSteps    int     `json:"min_steps"`
	MaxSteps    int     `json:"max_steps"`
	Timeouts    int     `json:"timeouts"`
	Errors      int     `json:"errors"`
	AvgMemoryMB float64 `json:"avg_memory_mb"`
}

// Statistics holds the per-algorithm aggregates of a batch.
type Statistics struct {
	Exact     AlgorithmStats `json:"exact"`
	Heuristic AlgorithmStats `json:"heuristic"`
}

// Speedup is exact avg time / heuristic avg time, or 0 when undefined.
func (s Statistics) Speedup() float64 {
	if s.Heuristic.AvgTime <= 0 {
		return 0
	}

	return s.Exact.AvgTime / s.Heuristic.AvgTime
}

// Batch is one configuration's trials and statistics.
type Batch struct {
	ID          uuid.UUID  `json:"id"`
	N           int        `json:"n"`
	Density     string     `json:"density"`
	Probability float64    `json:"probability"`
	Repetitions int        `json:"repetitions"`
	Trials      []Trial    `json:"trials"`
	Stats       Statistics `json:"stats"`
	StartedAt   time.Time  `json:"started_at"`
	FinishedAt  time.Time  `json:"finished_at"`
}

// TrialObserver is notified as trials and batches complete.
type TrialObserver interface {
	ObserveTrial(b *Batch, t *Trial)
	ObserveBatch(b *Batch)
}

// BatchSink persists completed batches.
type BatchSink interface {
	SaveBatch(ctx context.Context, b *Batch) error
}
