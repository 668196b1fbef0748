// SPDX-License-Identifier: MIT

// Package apsp computes all-pairs shortest paths over a dense weighted
// directed graph with the Floyd–Warshall algorithm, and reports negative
// cycles as a first-class outcome instead of returning meaningless
// distances.
//
// Model:
//
//	Weight         — extended real: Finite(v) or Inf() ("no edge" / "no path").
//	                 Addition absorbs Inf and saturates at ±math.MaxFloat64,
//	                 so NaN can never appear in a distance.
//	Graph          — V×V matrix of Weights; NewGraph(n) starts with a zero
//	                 diagonal and Inf elsewhere. Negative weights are allowed.
//	DistanceMatrix — V×V result; produced only when no negative cycle exists.
//	                 The diagonal starts from the graph's own diagonal, so a
//	                 positive self-loop stays unless a cheaper cycle exists.
//
// Algorithm (k → i → j, in place on a private copy of the graph):
//
//	for k in 0..V-1:          // intermediate vertex, MUST be outermost
//	  for i in 0..V-1:
//	    if d[i][k] is Inf: skip row
//	    for j in 0..V-1:
//	      if d[k][j] is Inf: skip
//	      if d[i][k] + d[k][j] < d[i][j]: d[i][j] = d[i][k] + d[k][j]
//	then: any d[i][i] < 0 → negative cycle through i.
//
// When k is the outer loop, every pair has been settled over intermediates
// 0..k-1 before k itself is used, which is what makes one O(V³) sweep
// sufficient.
//
// Errors:
//
//	ErrNilGraph          — Solve(nil).
//	ErrNonSquare         — ragged or non-square input matrix.
//	ErrInvalidWeight     — NaN, −Inf, or a non-finite value tagged finite.
//	ErrVertexOutOfRange  — bad index in SetEdge/Edge/At/Path.
//	ErrNegativeCycle     — matched by *NegativeCycleError, which names the
//	                       lowest vertex whose distance to itself is negative.
//	ErrNoPath            — Path between unreachable vertices.
//	ErrPathsDisabled     — Path on a result computed without WithPaths().
//
// Complexity: O(V³) time, O(V²) memory (O(2·V²) with WithPaths).
//
// Solve never mutates its input and keeps no shared state; concurrent calls
// on independent (or shared, read-only) graphs are safe.
package apsp
