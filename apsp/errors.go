// SPDX-License-Identifier: MIT

package apsp

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every message is prefixed with "apsp:"; callers match
// with errors.Is.
var (
	// ErrNilGraph indicates a nil *Graph was passed to Solve.
	ErrNilGraph = errors.New("apsp: graph is nil")

	// ErrBadOrder indicates a negative vertex count was requested.
	ErrBadOrder = errors.New("apsp: graph order must be non-negative")

	// ErrNonSquare indicates the weight matrix is not V×V.
	ErrNonSquare = errors.New("apsp: weight matrix is not square")

	// ErrInvalidWeight indicates a NaN or −Inf weight, or a malformed literal.
	ErrInvalidWeight = errors.New("apsp: invalid edge weight")

	// ErrVertexOutOfRange indicates an index outside [0, V).
	ErrVertexOutOfRange = errors.New("apsp: vertex index out of range")

	// ErrNegativeCycle indicates the graph contains a cycle of negative
	// total weight; no distance matrix is produced.
	ErrNegativeCycle = errors.New("apsp: negative cycle detected")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("apsp: no path between vertices")

	// ErrPathsDisabled indicates Path was called on a result computed
	// without WithPaths().
	ErrPathsDisabled = errors.New("apsp: path reconstruction not enabled")
)

// NegativeCycleError is the negative-cycle outcome of Solve. It unwraps to
// ErrNegativeCycle.
//
// Vertex is the lowest index whose shortest distance to itself ended
// negative; Vertices lists every such index in increasing order. Each of
// them lies on, or can reach and return through, a negative cycle.
type NegativeCycleError struct {
	Vertex   int
	Vertices []int
}

// Error implements error.
func (e *NegativeCycleError) Error() string {
	return fmt.Sprintf("%s: through vertex %d (%d vertices affected)", ErrNegativeCycle, e.Vertex, len(e.Vertices))
}

// Unwrap lets errors.Is(err, ErrNegativeCycle) match.
func (e *NegativeCycleError) Unwrap() error { return ErrNegativeCycle }

// rangeErrorf wraps ErrVertexOutOfRange with the offending pair.
func rangeErrorf(op string, i, j, n int) error {
	return fmt.Errorf("%s(%d,%d) with %d vertices: %w", op, i, j, n, ErrVertexOutOfRange)
}
