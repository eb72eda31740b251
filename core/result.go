package core

import "fmt"

// EventKind tags a StepEvent produced by a traced exact search.
type EventKind int

const (
	// EventStart is emitted when a new start vertex is tried.
	EventStart EventKind = iota
	// EventVisit is emitted when a vertex is appended to the partial path.
	EventVisit
	// EventBacktrack is emitted when a vertex is removed from the partial path.
	EventBacktrack
	// EventSolution is terminal: the partial path covers every vertex.
	EventSolution
	// EventFail is terminal: no start vertex produced a Hamiltonian path.
	EventFail
)

var eventKindNames = [...]string{
	EventStart:     "start",
	EventVisit:     "visit",
	EventBacktrack: "backtrack",
	EventSolution:  "solution",
	EventFail:      "fail",
}

// String returns the lower-case event name.
func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return fmt.Sprintf("EventKind(%d)", int(k))
	}

	return eventKindNames[k]
}

// Terminal reports whether no event can follow k.
func (k EventKind) Terminal() bool { return k == EventSolution || k == EventFail }

// MarshalText encodes the kind by name.
func (k EventKind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText decodes a kind name produced by MarshalText.
func (k *EventKind) UnmarshalText(b []byte) error {
	for i, name := range eventKindNames {
		if name == string(b) {
			*k = EventKind(i)
			return nil
		}
	}

	return fmt.Errorf("core: unknown event kind %q", string(b))
}

// StepEvent is one step of a traced exact search.
// Path is a snapshot owned by the event: later search steps never modify it.
type StepEvent struct {
	Kind EventKind `json:"kind"`
	Path []int     `json:"path"`
}

// Result is the outcome of one search invocation.
//
// Path is empty when Found is false and holds a permutation of 0..n-1 when
// Found is true. Steps and Trace are populated by the exact search only.
type Result struct {
	Path  []int       `json:"path,omitempty"`
	Found bool        `json:"found"`
	Steps int         `json:"steps"`
	Trace []StepEvent `json:"trace,omitempty"`
}

// String renders the result for logs, e.g. "found [0 1 2 3] (steps=4)".
func (r Result) String() string {
	if !r.Found {
		return fmt.Sprintf("not found (steps=%d)", r.Steps)
	}

	return fmt.Sprintf("found %v (steps=%d)", r.Path, r.Steps)
}
