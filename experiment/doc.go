// Package experiment runs repeated randomized trials comparing the exact and
// heuristic Hamiltonian path searches, aggregates statistics per
// configuration and exports the results.
//
// A configuration is (n, density label, repetitions). For each repetition
// the Runner samples a fresh G(n,p) graph, runs exact.FindPath and
// heuristic.FindPath through perf.Measure with the shared deadline, and
// records a Trial. After the last repetition it computes the batch
// Statistics once.
//
// Statistics rules:
//
//	exact      avg/min/max time and avg memory over trials that did not time out;
//	           success rate, timeouts, errors and avg/min/max steps over all trials.
//	heuristic  every aggregate over all trials.
//	empty sets produce zeros.
//
// A timed-out exact trial records a zero Result (Steps=0, Found=false) and
// Perf.Timeout=true; it counts as a failure for the success rate.
//
// Determinism: graph samples and heuristic shuffles come from per-trial
// streams derived from the runner seed, the batch ordinal (how many batches
// the runner produced before) and the repetition index. Two runners with the
// same seed that run the same configurations in the same order produce the
// same graphs, paths and step counts. Timings and memory naturally differ.
//
// Failure policy: invalid arguments (n<1, repetitions<1, unknown density)
// are rejected before any work. Search timeouts, errors and panics are
// recorded in the Trial and never abort the sweep. Sink failures are logged.
//
// A Runner is not safe for concurrent use.
package experiment
