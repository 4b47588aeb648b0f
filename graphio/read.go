// SPDX-License-Identifier: MIT

package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/negpath/core"
)

// MaxVertices bounds the declared vertex count. Isolated vertices cost
// memory without consuming input, so V is not bounded by the file size.
const MaxVertices = 1 << 24

var (
	// ErrMalformed indicates a token that is not a valid integer, a
	// negative count, or a vertex count above MaxVertices.
	ErrMalformed = errors.New("graphio: malformed input")

	// ErrTruncated indicates that the input ended before E triples were read.
	ErrTruncated = errors.New("graphio: unexpected end of input")
)

// Input is a parsed graph file. Directionality is not part of the format;
// callers pick it with Directed or Undirected.
type Input struct {
	V     int
	Edges []core.Edge
}

// Directed builds a graph with one directed edge per triple.
func (in *Input) Directed() (*core.Graph, error) {
	return core.NewGraph(in.V, in.Edges)
}

// Undirected builds a graph with both directions of every triple.
func (in *Input) Undirected() (*core.Graph, error) {
	return core.NewGraph(in.V, in.Edges, core.WithUndirected())
}

// Read parses one graph from r. Endpoints are not range-checked here;
// Directed and Undirected report them as core.ErrInvalidGraph.
func Read(r io.Reader) (*Input, error) {
	tr := &tokenReader{sc: bufio.NewScanner(r)}
	tr.sc.Split(bufio.ScanWords)

	v, err := tr.count("vertex count", MaxVertices)
	if err != nil {
		return nil, err
	}
	e, err := tr.count("edge count", maxInt)
	if err != nil {
		return nil, err
	}

	in := &Input{V: v, Edges: make([]core.Edge, 0, min(e, 1<<16))}
	var from, to, w int64
	for i := 0; i < e; i++ {
		if from, err = tr.next(fmt.Sprintf("edge #%d source", i)); err != nil {
			return nil, err
		}
		if to, err = tr.next(fmt.Sprintf("edge #%d dest", i)); err != nil {
			return nil, err
		}
		if w, err = tr.next(fmt.Sprintf("edge #%d weight", i)); err != nil {
			return nil, err
		}
		in.Edges = append(in.Edges, core.Edge{From: int(from), To: int(to), Weight: w})
	}

	return in, nil
}

// tokenReader hands out integer tokens and counts them for error messages.
type tokenReader struct {
	sc  *bufio.Scanner
	pos int
}

func (t *tokenReader) next(what string) (int64, error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, fmt.Errorf("graphio: reading %s: %w", what, err)
		}
		return 0, fmt.Errorf("%w: missing %s", ErrTruncated, what)
	}
	t.pos++
	x, err := strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: token %d (%s) %q", ErrMalformed, t.pos, what, t.sc.Text())
	}

	return x, nil
}

// count reads a non-negative integer no larger than limit.
func (t *tokenReader) count(what string, limit int) (int, error) {
	x, err := t.next(what)
	if err != nil {
		return 0, err
	}
	if x < 0 || x > int64(limit) {
		return 0, fmt.Errorf("%w: %s %d outside [0, %d]", ErrMalformed, what, x, limit)
	}

	return int(x), nil
}

const maxInt = int(^uint(0) >> 1)
