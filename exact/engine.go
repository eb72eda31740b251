package exact

import (
	"github.com/katalvlaran/hampath/core"
)

// phase is the engine's resume point between two events.
type phase uint8

const (
	phaseStart    phase = iota // begin the attempt from e.start
	phaseEnter                 // enter e.pending
	phaseExplore               // continue from the top frame
	phaseSolution              // emit the full path
	phaseDone                  // terminal event already emitted
)

// frame is one level of the explicit DFS stack.
type frame struct {
	v    int // vertex on the path
	next int // index into v's adjacency of the next neighbor to try
}

// engine holds all per-invocation search state. Nothing survives across
// invocations; two engines on the same graph never share buffers.
type engine struct {
	g      *core.Graph
	n      int
	record bool // snapshot paths into events

	start   int
	pending int
	ph      phase

	visited []bool
	path    []int
	stack   []frame

	steps int
	found bool
}

func newEngine(g *core.Graph, record bool) *engine {
	n := g.Order()

	return &engine{
		g:       g,
		n:       n,
		record:  record,
		ph:      phaseStart,
		visited: make([]bool, n),
		path:    make([]int, 0, n),
		stack:   make([]frame, 0, n),
	}
}

// done reports whether a terminal event has been produced.
func (e *engine) done() bool { return e.ph == phaseDone }

// snapshot returns a copy of the current path when recording, else nil.
func (e *engine) snapshot() []int {
	if !e.record {
		return nil
	}
	out := make([]int, len(e.path))
	copy(out, e.path)

	return out
}

// advance runs the search until the next event and returns it.
// After the terminal event it keeps returning (zero, false).
func (e *engine) advance() (core.StepEvent, bool) {
	switch e.ph {
	case phaseStart:
		if e.start >= e.n {
			e.ph = phaseDone
			var empty []int
			if e.record {
				empty = []int{}
			}
			return core.StepEvent{Kind: core.EventFail, Path: empty}, true
		}
		clear(e.visited)
		e.path = e.path[:0]
		e.stack = e.stack[:0]
		e.pending = e.start
		e.ph = phaseEnter
		var first []int
		if e.record {
			first = []int{e.start}
		}
		return core.StepEvent{Kind: core.EventStart, Path: first}, true

	case phaseEnter:
		return e.enter(e.pending), true

	case phaseExplore:
		top := &e.stack[len(e.stack)-1]
		nbrs := e.g.NeighborsView(top.v)
		for top.next < len(nbrs) {
			w := nbrs[top.next]
			top.next++
			if !e.visited[w] {
				return e.enter(w), true
			}
		}
		// Dead end: undo top.
		v := top.v
		e.stack = e.stack[:len(e.stack)-1]
		e.visited[v] = false
		e.path = e.path[:len(e.path)-1]
		if len(e.stack) == 0 {
			e.start++
			e.ph = phaseStart
		}
		return core.StepEvent{Kind: core.EventBacktrack, Path: e.snapshot()}, true

	case phaseSolution:
		e.ph = phaseDone
		e.found = true
		return core.StepEvent{Kind: core.EventSolution, Path: e.snapshot()}, true
	}

	return core.StepEvent{}, false
}

// enter pushes v and decides the next phase.
func (e *engine) enter(v int) core.StepEvent {
	e.visited[v] = true
	e.path = append(e.path, v)
	e.stack = append(e.stack, frame{v: v})
	e.steps++
	if len(e.path) == e.n {
		e.ph = phaseSolution
	} else {
		e.ph = phaseExplore
	}

	return core.StepEvent{Kind: core.EventVisit, Path: e.snapshot()}
}

// result packages the final state. Path is copied so the engine may be dropped.
func (e *engine) result() core.Result {
	res := core.Result{Found: e.found, Steps: e.steps}
	if e.found {
		res.Path = make([]int, len(e.path))
		copy(res.Path, e.path)
	}

	return res
}
