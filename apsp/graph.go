// SPDX-License-Identifier: MIT

package apsp

import "fmt"

// Graph is a dense weighted directed graph on vertices 0..V-1, stored as a
// row-major V×V weight matrix. Entry (i, j) is the weight of edge i→j, or
// Inf() when there is none. Diagonal entries are self-loop weights and are
// 0 unless set otherwise.
type Graph struct {
	n int
	w []Weight // len == n*n
}

// NewGraph returns an edgeless graph with n vertices: zero diagonal, Inf
// elsewhere. n == 0 is allowed and yields the empty graph.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("NewGraph(%d): %w", n, ErrBadOrder)
	}

	w := make([]Weight, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i != j {
				w[i*n+j] = Inf()
			}
		}
	}

	return &Graph{n: n, w: w}, nil
}

// FromWeights builds a graph from a square matrix of weights. The input is
// copied. Ragged or non-square input yields ErrNonSquare, malformed
// weights ErrInvalidWeight.
func FromWeights(rows [][]Weight) (*Graph, error) {
	n := len(rows)
	g := &Graph{n: n, w: make([]Weight, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromWeights: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			if !rows[i][j].valid() {
				return nil, fmt.Errorf("FromWeights: (%d,%d): %w", i, j, ErrInvalidWeight)
			}
			g.w[i*n+j] = rows[i][j]
		}
	}

	return g, nil
}

// FromFloat64 builds a graph from a square float matrix where math.Inf(1)
// means "no edge". NaN and −Inf are rejected with ErrInvalidWeight.
func FromFloat64(rows [][]float64) (*Graph, error) {
	n := len(rows)
	g := &Graph{n: n, w: make([]Weight, n*n)}

	var (
		i, j int
		w    Weight
		err  error
	)
	for i = 0; i < n; i++ {
		if len(rows[i]) != n {
			return nil, fmt.Errorf("FromFloat64: row %d has %d entries, want %d: %w", i, len(rows[i]), n, ErrNonSquare)
		}
		for j = 0; j < n; j++ {
			if w, err = FromFloat(rows[i][j]); err != nil {
				return nil, fmt.Errorf("FromFloat64: (%d,%d): %w", i, j, err)
			}
			g.w[i*n+j] = w
		}
	}

	return g, nil
}

// Order returns the number of vertices.
func (g *Graph) Order() int { return g.n }

// SetEdge sets the weight of edge i→j (i == j sets a self-loop).
// Use Inf() to remove an edge.
func (g *Graph) SetEdge(i, j int, w Weight) error {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return rangeErrorf("SetEdge", i, j, g.n)
	}
	if !w.valid() {
		return fmt.Errorf("SetEdge(%d,%d): %w", i, j, ErrInvalidWeight)
	}
	g.w[i*g.n+j] = w

	return nil
}

// Edge returns the weight of edge i→j.
func (g *Graph) Edge(i, j int) (Weight, error) {
	if i < 0 || i >= g.n || j < 0 || j >= g.n {
		return Weight{}, rangeErrorf("Edge", i, j, g.n)
	}
	return g.w[i*g.n+j], nil
}

// Clone returns a deep copy of g.
func (g *Graph) Clone() *Graph {
	w := make([]Weight, len(g.w))
	copy(w, g.w)
	return &Graph{n: g.n, w: w}
}
