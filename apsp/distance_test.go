package apsp_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/verikit/apsp"
)

func TestPath_FourVertexExample(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 3, inf, 5},
		{2, 0, inf, 4},
		{inf, 1, 0, inf},
		{inf, inf, 2, 0},
	})
	dm, err := apsp.Solve(g, apsp.WithPaths())
	require.NoError(t, err)
	require.True(t, dm.HasPaths())

	p, err := dm.Path(0, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 2}, p)

	p, err = dm.Path(2, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 3}, p)

	p, err = dm.Path(1, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, p)
}

func TestPath_Errors(t *testing.T) {
	g := mustGraph(t, [][]float64{
		{0, 1},
		{inf, 0},
	})

	plain, err := apsp.Solve(g)
	require.NoError(t, err)
	assert.False(t, plain.HasPaths())
	_, err = plain.Path(0, 1)
	assert.ErrorIs(t, err, apsp.ErrPathsDisabled)

	dm, err := apsp.Solve(g, apsp.WithPaths())
	require.NoError(t, err)
	_, err = dm.Path(1, 0)
	assert.ErrorIs(t, err, apsp.ErrNoPath)
	_, err = dm.Path(0, 2)
	assert.ErrorIs(t, err, apsp.ErrVertexOutOfRange)
	_, err = dm.At(-1, 0)
	assert.ErrorIs(t, err, apsp.ErrVertexOutOfRange)
}

// TestPath_WeightsSumToDistance walks every reconstructed path on random
// non-negative graphs and checks its cost against the matrix.
func TestPath_WeightsSumToDistance(t *testing.T) {
	r := rand.New(rand.NewPCG(21, 34))

	for iter := 0; iter < 100; iter++ {
		n := 2 + r.IntN(6)
		g, err := apsp.NewGraph(n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if i != j && r.IntN(2) == 0 {
					require.NoError(t, g.SetEdge(i, j, apsp.Finite(float64(r.IntN(10)))))
				}
			}
		}

		dm, err := apsp.Solve(g, apsp.WithPaths())
		require.NoError(t, err)

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d, _ := dm.At(i, j)
				p, err := dm.Path(i, j)
				if d.IsInf() {
					require.ErrorIs(t, err, apsp.ErrNoPath)
					continue
				}
				require.NoError(t, err)
				require.Equal(t, i, p[0])
				require.Equal(t, j, p[len(p)-1])

				sum := apsp.Finite(0)
				for h := 1; h < len(p); h++ {
					e, err := g.Edge(p[h-1], p[h])
					require.NoError(t, err)
					require.False(t, e.IsInf(), "path uses a missing edge")
					sum = sum.Add(e)
				}
				require.Equal(t, d.Float64(), sum.Float64(), "iter %d %d→%d path %v", iter, i, j, p)
			}
		}
	}
}

func TestDistanceMatrix_String(t *testing.T) {
	dm, err := apsp.Solve(mustGraph(t, [][]float64{{0, 1.5}, {inf, 0}}))
	require.NoError(t, err)
	assert.Equal(t, "[0, 1.5]\n[inf, 0]\n", dm.String())
}
