package exact

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/hampath/core"
)

// Tracer is a pull-based, one-shot view of the search. Each Next call
// resumes the search just long enough to produce one event.
//
// A Tracer is not safe for concurrent use and cannot be rewound; build a new
// one to replay.
type Tracer struct {
	e *engine
}

// NewTracer prepares a trace over g. No work happens until the first Next.
func NewTracer(g *core.Graph) (*Tracer, error) {
	if g == nil {
		return nil, fmt.Errorf("NewTracer: %w", core.ErrNilGraph)
	}

	return &Tracer{e: newEngine(g, true)}, nil
}

// Next returns the next event, or false once the terminal event
// (Solution or Fail) has been delivered.
func (t *Tracer) Next() (core.StepEvent, bool) {
	return t.e.advance()
}

// Events adapts the tracer to a range-over-func sequence. Breaking out of
// the loop leaves the tracer positioned after the last yielded event.
func (t *Tracer) Events() iter.Seq[core.StepEvent] {
	return func(yield func(core.StepEvent) bool) {
		for {
			ev, ok := t.e.advance()
			if !ok || !yield(ev) {
				return
			}
		}
	}
}

// Steps is the number of vertices entered so far.
func (t *Tracer) Steps() int { return t.e.steps }

// Done reports whether the terminal event has been produced.
func (t *Tracer) Done() bool { return t.e.done() }

// Result returns the outcome so far. Before Done it reports Found=false.
func (t *Tracer) Result() core.Result { return t.e.result() }
