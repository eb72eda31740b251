package experiment

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// computeStatistics aggregates a finished set of trials.
func computeStatistics(trials []Trial) Statistics {
	var (
		exactTimes, exactMem, exactSteps []float64
		heurTimes, heurMem               []float64
		s                                Statistics
	)
	s.Exact.Trials = len(trials)
	s.Heuristic.Trials = len(trials)

	for i := range trials {
		ex, he := trials[i].Exact, trials[i].Heuristic

		exactSteps = append(exactSteps, float64(ex.Result.Steps))
		if ex.Result.Found {
			s.Exact.Successes++
		}
		if ex.Perf.Timeout {
			s.Exact.Timeouts++
		} else {
			exactTimes = append(exactTimes, ex.Perf.ElapsedSeconds)
			exactMem = append(exactMem, ex.Perf.PeakMemoryMB)
		}
		if ex.Perf.Failed() {
			s.Exact.Errors++
		}

		heurTimes = append(heurTimes, he.Perf.ElapsedSeconds)
		heurMem = append(heurMem, he.Perf.PeakMemoryMB)
		if he.Result.Found {
			s.Heuristic.Successes++
		}
		if he.Perf.Timeout {
			s.Heuristic.Timeouts++
		}
		if he.Perf.Failed() {
			s.Heuristic.Errors++
		}
	}

	s.Exact.SuccessRate = rate(s.Exact.Successes, s.Exact.Trials)
	s.Exact.AvgTime, s.Exact.MinTime, s.Exact.MaxTime = summarize(exactTimes)
	s.Exact.AvgMemoryMB = mean(exactMem)
	var minSteps, maxSteps float64
	s.Exact.AvgSteps, minSteps, maxSteps = summarize(exactSteps)
	s.Exact.MinSteps, s.Exact.MaxSteps = int(minSteps), int(maxSteps)

	s.Heuristic.SuccessRate = rate(s.Heuristic.Successes, s.Heuristic.Trials)
	s.Heuristic.AvgTime, s.Heuristic.MinTime, s.Heuristic.MaxTime = summarize(heurTimes)
	s.Heuristic.AvgMemoryMB = mean(heurMem)

	return s
}

func rate(k, total int) float64 {
	if total == 0 {
		return 0
	}

	return float64(k) / float64(total)
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}

	return stat.Mean(xs, nil)
}

// summarize returns (mean, min, max), all zero for an empty set.
func summarize(xs []float64) (float64, float64, float64) {
	if len(xs) == 0 {
		return 0, 0, 0
	}

	return stat.Mean(xs, nil), floats.Min(xs), floats.Max(xs)
}
