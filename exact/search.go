package exact

import (
	"context"
	"fmt"

	"github.com/katalvlaran/hampath/core"
)

// FindPath runs the exhaustive search on g.
//
// The returned Result has Found=true and a valid Hamiltonian path, or
// Found=false when none exists. Steps is cumulative across start attempts.
// With WithTrace the full event sequence is stored in Result.Trace.
//
// Errors:
//   - core.ErrNilGraph for a nil graph.
//   - ctx.Err() (wrapped) when ctx is done, checked on entry and every
//     1024 entered vertices; the Result then carries the steps counted so
//     far and Found=false.
func FindPath(ctx context.Context, g *core.Graph, opts ...Option) (core.Result, error) {
	if g == nil {
		return core.Result{}, fmt.Errorf("FindPath: %w", core.ErrNilGraph)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if err := ctx.Err(); err != nil {
		return core.Result{}, fmt.Errorf("FindPath: %w", err)
	}

	e := newEngine(g, o.Trace)
	var (
		trace     []core.StepEvent
		lastCheck int
	)
	for !e.done() {
		ev, ok := e.advance()
		if !ok {
			break
		}
		if o.Trace {
			trace = append(trace, ev)
		}
		if e.steps-lastCheck >= checkEvery {
			lastCheck = e.steps
			select {
			case <-ctx.Done():
				return core.Result{Steps: e.steps, Trace: trace},
					fmt.Errorf("FindPath: cancelled after %d steps: %w", e.steps, ctx.Err())
			default:
			}
		}
	}

	res := e.result()
	res.Trace = trace

	return res, nil
}
