package experiment

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// Header is the CSV header; column order is part of the export format.
var Header = []string{
	"n", "density_label", "probability", "run_id", "edge_count",
	"exact_time_seconds", "exact_success", "exact_timeout", "exact_steps", "exact_memory_mb",
	"heuristic_time_seconds", "heuristic_success", "heuristic_memory_mb",
}

// ExportRows flattens every recorded trial into string rows (no header).
// Returns ErrNoTrials when nothing has been recorded.
func (r *Runner) ExportRows() ([][]string, error) {
	var rows [][]string
	for _, b := range r.batches {
		for i := range b.Trials {
			rows = append(rows, trialRow(b, &b.Trials[i]))
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("ExportRows: %w", ErrNoTrials)
	}

	return rows, nil
}

// WriteCSV writes the header and all rows to w.
func (r *Runner) WriteCSV(w io.Writer) error {
	rows, err := r.ExportRows()
	if err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("WriteCSV: %w", err)
	}

	return nil
}

// ExportCSV writes the CSV export to path. Nothing is created when no
// trials have been recorded.
func (r *Runner) ExportCSV(path string) (err error) {
	if len(r.batches) == 0 {
		return fmt.Errorf("ExportCSV: %w", ErrNoTrials)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ExportCSV: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("ExportCSV: %w", cerr)
		}
	}()

	return r.WriteCSV(f)
}

func trialRow(b *Batch, t *Trial) []string {
	return []string{
		strconv.Itoa(b.N),
		b.Density,
		strconv.FormatFloat(b.Probability, 'f', -1, 64),
		strconv.Itoa(t.RunID),
		strconv.Itoa(t.EdgeCount),
		seconds(t.Exact.Perf.ElapsedSeconds),
		flag(t.Exact.Result.Found),
		flag(t.Exact.Perf.Timeout),
		strconv.Itoa(t.Exact.Result.Steps),
		megabytes(t.Exact.Perf.PeakMemoryMB),
		seconds(t.Heuristic.Perf.ElapsedSeconds),
		flag(t.Heuristic.Result.Found),
		megabytes(t.Heuristic.Perf.PeakMemoryMB),
	}
}

func seconds(v float64) string   { return strconv.FormatFloat(v, 'f', 6, 64) }
func megabytes(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func flag(b bool) string {
	if b {
		return "1"
	}

	return "0"
}
