package experiment

import (
	"fmt"
	"strings"
)

const summaryWidth = 100

// SummaryRow renders one batch as a fixed-width table row.
func SummaryRow(b *Batch) string {
	s := b.Stats
	return fmt.Sprintf("%-5d %-8s %-12.6f %-10s %-12.1f %-8d %-12.6f %-10s",
		b.N, b.Density,
		s.Exact.AvgTime, percent(s.Exact.SuccessRate), s.Exact.AvgSteps, s.Exact.Timeouts,
		s.Heuristic.AvgTime, percent(s.Heuristic.SuccessRate),
	)
}

// SummaryTable renders every recorded batch between '=' rules.
func (r *Runner) SummaryTable() string {
	if len(r.batches) == 0 {
		return "No results available."
	}
	rule := strings.Repeat("=", summaryWidth)

	var sb strings.Builder
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "%-5s %-8s %-12s %-10s %-12s %-8s %-12s %-10s\n",
		"n", "Density", "Exact Time", "Exact Rate", "Exact Steps", "Exact TO", "Heur Time", "Heur Rate")
	sb.WriteString(rule + "\n")
	for _, b := range r.batches {
		sb.WriteString(SummaryRow(b) + "\n")
	}
	sb.WriteString(rule)

	return sb.String()
}

// Report renders the detailed analysis of one batch: time and step ranges,
// success rates and the exact/heuristic speedup.
func Report(b *Batch) string {
	s := b.Stats
	var sb strings.Builder
	fmt.Fprintf(&sb, "Batch %s: n=%d density=%s (p=%g) repetitions=%d\n",
		b.ID, b.N, b.Density, b.Probability, b.Repetitions)

	sb.WriteString("\nExact:\n")
	fmt.Fprintf(&sb, "  avg time:      %.6fs\n", s.Exact.AvgTime)
	fmt.Fprintf(&sb, "  min/max time:  %.6fs / %.6fs\n", s.Exact.MinTime, s.Exact.MaxTime)
	fmt.Fprintf(&sb, "  success rate:  %.1f%%\n", s.Exact.SuccessRate*100)
	fmt.Fprintf(&sb, "  avg steps:     %.0f\n", s.Exact.AvgSteps)
	fmt.Fprintf(&sb, "  min/max steps: %d / %d\n", s.Exact.MinSteps, s.Exact.MaxSteps)
	fmt.Fprintf(&sb, "  timeouts:      %d\n", s.Exact.Timeouts)
	fmt.Fprintf(&sb, "  avg memory:    %.4f MB\n", s.Exact.AvgMemoryMB)

	sb.WriteString("\nHeuristic:\n")
	fmt.Fprintf(&sb, "  avg time:      %.6fs\n", s.Heuristic.AvgTime)
	fmt.Fprintf(&sb, "  min/max time:  %.6fs / %.6fs\n", s.Heuristic.MinTime, s.Heuristic.MaxTime)
	fmt.Fprintf(&sb, "  success rate:  %.1f%%\n", s.Heuristic.SuccessRate*100)
	fmt.Fprintf(&sb, "  avg memory:    %.4f MB\n", s.Heuristic.AvgMemoryMB)

	if sp := s.Speedup(); sp > 0 {
		fmt.Fprintf(&sb, "\nSpeedup (exact/heuristic): %.2fx\n", sp)
	}

	return sb.String()
}

func percent(r float64) string { return fmt.Sprintf("%.2f%%", r*100) }
