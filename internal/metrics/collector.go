// Package metrics exports experiment progress as Prometheus metrics.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/hampath/experiment"
)

// Namespace prefixes every metric name.
const Namespace = "hampath"

// Collector holds the experiment metrics on a private registry.
// It implements experiment.TrialObserver.
type Collector struct {
	registry *prometheus.Registry

	Trials      *prometheus.CounterVec
	Duration    *prometheus.HistogramVec
	ExactSteps  prometheus.Histogram
	SuccessRate *prometheus.GaugeVec
	Batches     prometheus.Counter
}

var _ experiment.TrialObserver = (*Collector)(nil)

// NewCollector creates and registers the metrics.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	trials := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "trials_total",
			Help:      "Searches run, by algorithm and outcome.",
		},
		[]string{"algorithm", "outcome"},
	)

	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of one search.",
			Buckets:   prometheus.ExponentialBuckets(0.00001, 4, 12),
		},
		[]string{"algorithm"},
	)

	steps := prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "exact_steps",
			Help:      "Vertices entered by the exact search per trial.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 9),
		},
	)

	rate := prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "batch_success_rate",
			Help:      "Success rate of the last completed batch per configuration.",
		},
		[]string{"n", "density", "algorithm"},
	)

	batches := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "batches_total",
			Help:      "Completed batches.",
		},
	)

	registry.MustRegister(trials, duration, steps, rate, batches)

	return &Collector{
		registry:    registry,
		Trials:      trials,
		Duration:    duration,
		ExactSteps:  steps,
		SuccessRate: rate,
		Batches:     batches,
	}
}

// Registry returns the registry the metrics are registered on.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}

// ObserveTrial records both searches of t.
func (c *Collector) ObserveTrial(_ *experiment.Batch, t *experiment.Trial) {
	c.observe(experiment.AlgorithmExact, t.Exact)
	c.observe(experiment.AlgorithmHeuristic, t.Heuristic)
	if !t.Exact.Perf.Timeout && t.Exact.Perf.Success {
		c.ExactSteps.Observe(float64(t.Exact.Result.Steps))
	}
}

func (c *Collector) observe(alg string, o experiment.Outcome) {
	c.Trials.WithLabelValues(alg, o.Status()).Inc()
	c.Duration.WithLabelValues(alg).Observe(o.Perf.ElapsedSeconds)
}

// ObserveBatch publishes the batch success rates.
func (c *Collector) ObserveBatch(b *experiment.Batch) {
	n := strconv.Itoa(b.N)
	c.SuccessRate.WithLabelValues(n, b.Density, experiment.AlgorithmExact).Set(b.Stats.Exact.SuccessRate)
	c.SuccessRate.WithLabelValues(n, b.Density, experiment.AlgorithmHeuristic).Set(b.Stats.Heuristic.SuccessRate)
	c.Batches.Inc()
}
