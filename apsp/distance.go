// SPDX-License-Identifier: MIT

package apsp

import (
	"fmt"
	"strings"
)

// DistanceMatrix holds shortest-path distances for every ordered pair of
// vertices. It is only ever produced for graphs without negative cycles
// and is immutable after Solve returns.
type DistanceMatrix struct {
	n    int
	d    []Weight // row-major, len == n*n
	next []int    // next hop on a shortest path; nil without WithPaths
}

// Order returns the number of vertices.
func (m *DistanceMatrix) Order() int { return m.n }

// At returns the shortest distance from i to j; Inf() when unreachable.
func (m *DistanceMatrix) At(i, j int) (Weight, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return Weight{}, rangeErrorf("At", i, j, m.n)
	}
	return m.d[i*m.n+j], nil
}

// Rows returns a copy of the distances as a V×V slice of rows.
func (m *DistanceMatrix) Rows() [][]Weight {
	out := make([][]Weight, m.n)
	for i := range out {
		out[i] = make([]Weight, m.n)
		copy(out[i], m.d[i*m.n:(i+1)*m.n])
	}
	return out
}

// Float64 returns a copy of the distances with math.Inf(1) for unreachable
// pairs.
func (m *DistanceMatrix) Float64() [][]float64 {
	out := make([][]float64, m.n)
	for i := range out {
		out[i] = make([]float64, m.n)
		for j := 0; j < m.n; j++ {
			out[i][j] = m.d[i*m.n+j].Float64()
		}
	}
	return out
}

// HasPaths reports whether the matrix was computed WithPaths().
func (m *DistanceMatrix) HasPaths() bool { return m.next != nil }

// Path returns the vertex sequence of one shortest route from i to j, both
// ends included, whose edge weights sum to At(i, j).
//
// For i == j the route follows the diagonal: [i] when At(i, i) is 0 (the
// empty route), otherwise the cheapest closed walk, e.g. [i, i] for a
// positive self-loop that nothing beats or [i, k, i] through a cheaper
// cycle. An infinite diagonal entry (self-loop set to Inf()) has no route.
//
// Errors: ErrPathsDisabled without WithPaths(), ErrVertexOutOfRange for bad
// indices, ErrNoPath when j is unreachable from i.
func (m *DistanceMatrix) Path(i, j int) ([]int, error) {
	if m.next == nil {
		return nil, ErrPathsDisabled
	}
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return nil, rangeErrorf("Path", i, j, m.n)
	}

	d := m.d[i*m.n+j]
	if d.inf {
		return nil, fmt.Errorf("Path(%d,%d): %w", i, j, ErrNoPath)
	}

	// A simple path visits at most n vertices, a closed walk n+1.
	limit := m.n
	if i == j {
		if d.v == 0 {
			return []int{i}, nil
		}
		limit++
	}

	path := []int{i}
	for u := i; ; {
		u = m.next[u*m.n+j]
		if u < 0 || len(path) >= limit {
			return nil, fmt.Errorf("Path(%d,%d): broken next-hop chain: %w", i, j, ErrNoPath)
		}
		path = append(path, u)
		if u == j {
			break
		}
	}

	return path, nil
}

// String renders the matrix one row per line, "inf" for unreachable.
func (m *DistanceMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(m.d[i*m.n+j].String())
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}
