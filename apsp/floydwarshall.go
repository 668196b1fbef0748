// SPDX-License-Identifier: MIT

package apsp

// Solve runs Floyd–Warshall on g and returns the all-pairs distance matrix,
// or a *NegativeCycleError (errors.Is(err, ErrNegativeCycle)) when some
// vertex ends with a negative distance to itself. In the negative-cycle case
// no matrix is returned.
//
// Steps:
//  1. Validate: g non-nil.
//  2. Copy g's weights into the distance buffer (g is never mutated);
//     optionally seed the next-hop matrix.
//  3. Relax in fixed k → i → j order, skipping infinite legs, strict
//     improvement only.
//  4. Scan the diagonal before any off-diagonal entry is trusted.
//
// Complexity: O(V³) time, O(V²) memory. Zero-order graphs return an empty
// matrix.
func Solve(g *Graph, opts ...Option) (*DistanceMatrix, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	n := g.n
	dist := make([]Weight, len(g.w))
	copy(dist, g.w)

	var next []int
	if cfg.ReturnPaths {
		next = seedNextHops(dist, n)
	}

	relax(dist, next, n)

	if cyc := diagonalNegatives(dist, n); len(cyc) > 0 {
		return nil, &NegativeCycleError{Vertex: cyc[0], Vertices: cyc}
	}

	return &DistanceMatrix{n: n, d: dist, next: next}, nil
}

// SolveFloat64 is Solve for native float matrices where math.Inf(1) means
// "no edge". Unreachable pairs come back as math.Inf(1).
func SolveFloat64(w [][]float64) ([][]float64, error) {
	g, err := FromFloat64(w)
	if err != nil {
		return nil, err
	}
	dm, err := Solve(g)
	if err != nil {
		return nil, err
	}

	return dm.Float64(), nil
}

// relax is the in-place Floyd–Warshall closure over a row-major buffer.
// next, when non-nil, is kept in step: a path i→j improved through k
// starts with the first hop of i→k.
func relax(d []Weight, next []int, n int) {
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand Weight
	)

	for k = 0; k < n; k++ { // outer: intermediate vertex
		baseK = k * n
		for i = 0; i < n; i++ { // middle: source
			ik = d[i*n+k]
			if ik.inf { // i cannot reach k: nothing via k improves row i
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ { // inner: destination
				kj = d[baseK+j]
				if kj.inf {
					continue
				}
				cand = ik.Add(kj)
				if cand.Less(d[baseI+j]) {
					d[baseI+j] = cand
					if next != nil {
						next[baseI+j] = next[baseI+k]
					}
				}
			}
		}
	}
}

// seedNextHops returns the initial next-hop matrix: j for every direct
// edge i→j, i on the diagonal, -1 where there is no edge.
func seedNextHops(d []Weight, n int) []int {
	next := make([]int, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				next[i*n+j] = i
			case d[i*n+j].inf:
				next[i*n+j] = -1
			default:
				next[i*n+j] = j
			}
		}
	}

	return next
}

// diagonalNegatives returns, in increasing order, every vertex whose
// distance to itself is negative.
func diagonalNegatives(d []Weight, n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		if d[i*n+i].IsNegative() {
			out = append(out, i)
		}
	}

	return out
}
