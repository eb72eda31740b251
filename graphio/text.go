package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/hampath/core"
)

// ErrMalformed indicates input that does not follow the "n m" / "u v" format.
var ErrMalformed = errors.New("graphio: malformed graph text")

const commentPrefix = "#"

// Read parses a graph in text format from r.
//
// Errors: ErrMalformed for syntax or count problems (with the 1-based line
// number), or the core.NewGraph sentinel for structural problems.
func Read(r io.Reader) (*core.Graph, error) {
	var (
		sc     = bufio.NewScanner(r)
		line   int
		header bool
		n, m   int
		edges  []core.Edge
	)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		a, b, err := parsePair(text)
		if err != nil {
			return nil, fmt.Errorf("Read: line %d: %w", line, err)
		}
		if !header {
			if a < 1 || b < 0 {
				return nil, fmt.Errorf("Read: line %d: header n=%d m=%d: %w", line, a, b, ErrMalformed)
			}
			n, m, header = a, b, true
			edges = make([]core.Edge, 0, m)
			continue
		}
		if len(edges) == m {
			return nil, fmt.Errorf("Read: line %d: more than m=%d edges: %w", line, m, ErrMalformed)
		}
		edges = append(edges, core.Edge{U: a, V: b})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}
	if !header {
		return nil, fmt.Errorf("Read: missing header: %w", ErrMalformed)
	}
	if len(edges) != m {
		return nil, fmt.Errorf("Read: got %d edges, header says %d: %w", len(edges), m, ErrMalformed)
	}

	g, err := core.NewGraph(n, edges)
	if err != nil {
		return nil, fmt.Errorf("Read: %w", err)
	}

	return g, nil
}

// parsePair splits "a b" into two integers.
func parsePair(text string) (int, int, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want 2 fields, got %d: %w", len(fields), ErrMalformed)
	}
	a, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", fields[0], ErrMalformed)
	}
	b, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%q: %w", fields[1], ErrMalformed)
	}

	return a, b, nil
}

// Write renders g in text format, edges in construction order.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("Write: %w", core.ErrNilGraph)
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.Order(), g.Size())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e.U, e.V)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("Write: %w", err)
	}

	return nil
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("ReadFile: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// WriteFile creates (or truncates) path and writes g into it.
func WriteFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteFile: %w", cerr)
		}
	}()

	return Write(f, g)
}
