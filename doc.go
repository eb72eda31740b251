// Package hampath compares two ways of finding a Hamiltonian path in random
// undirected graphs: an exhaustive backtracking search and a randomized
// minimum-degree greedy heuristic.
//
// The repository is organized by concern, one package each:
//
//	core/        immutable Graph, Edge, search Result, StepEvent, path validation
//	builder/     Erdős–Rényi sampler G(n,p) and deterministic fixtures
//	graphio/     "n m" / "u v" text format, gonum adapters, components
//	exact/       explicit-stack backtracking FindPath and step Tracer
//	heuristic/   greedy FindPath with a seeded start order
//	perf/        Monitor and Measure: deadline, elapsed time, memory
//	experiment/  Runner: trials, batches, statistics, CSV and summary table
//	internal/    logging (zap), config, metrics (prometheus), store (redis)
//	cmd/hampath  CLI: analyze, generate, experiment, batch
//
// A typical session:
//
//	r := experiment.NewRunner(experiment.WithSeed(42))
//	if _, err := r.RunBatch(ctx, []int{10, 20}, experiment.Labels(), 5); err != nil {
//		return err
//	}
//	fmt.Println(r.SummaryTable())
//	return r.ExportCSV("results.csv")
//
// Every run is reproducible: the root seed fixes each sampled graph and each
// heuristic start order, and batch IDs are derived from the same inputs.
package hampath
