package job_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/verikit/apsp"
	"github.com/katalvlaran/verikit/bintree"
	"github.com/katalvlaran/verikit/internal/job"
)

const sampleDoc = `
jobs:
  - name: sample-tree
    kind: tree
    tree: [10, 5, 15, null, 7]
  - kind: match
    text: AABAACAADAABAAABAA
    pattern: AABA
  - kind: paths
    paths: true
    graph:
      - [0, 3, inf, 5]
      - [2, 0, .inf, 4]
      - [null, 1, 0, "inf"]
      - [inf, inf, 2, 0]
`

func TestDecode_Sample(t *testing.T) {
	doc, err := job.Decode(strings.NewReader(sampleDoc))
	require.NoError(t, err)
	require.Len(t, doc.Jobs, 3)

	tree := doc.Jobs[0]
	assert.Equal(t, "sample-tree", tree.Name)
	assert.Equal(t, job.KindTree, tree.Kind)
	res := bintree.Analyze(tree.Root())
	assert.Equal(t, 4, res.NodeCount)
	assert.True(t, res.IsBST)

	match := doc.Jobs[1]
	assert.Equal(t, "job-2", match.Name, "default name")
	assert.Equal(t, "AABA", match.Pattern)

	paths := doc.Jobs[2]
	assert.True(t, paths.Paths)
	g, err := paths.BuildGraph()
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	for _, ij := range [][2]int{{0, 2}, {1, 2}, {2, 0}, {2, 3}, {3, 0}} {
		w, err := g.Edge(ij[0], ij[1])
		require.NoError(t, err)
		assert.True(t, w.IsInf(), "edge %v", ij)
	}
	w, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, w.Float64())
}

func TestDecode_JSON(t *testing.T) {
	doc, err := job.Decode(strings.NewReader(`{"jobs": [{"kind": "paths", "graph": [[0, -1], ["inf", 0]]}]}`))
	require.NoError(t, err)

	g, err := doc.Jobs[0].BuildGraph()
	require.NoError(t, err)
	w, err := g.Edge(0, 1)
	require.NoError(t, err)
	assert.Equal(t, -1.0, w.Float64())
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want error
	}{
		{"empty input", "", job.ErrNoJobs},
		{"no jobs", "jobs: []", job.ErrNoJobs},
		{"unknown kind", "jobs: [{kind: sort}]", job.ErrUnknownKind},
		{"paths without graph", "jobs: [{kind: paths}]", job.ErrMissingField},
		{"negative infinity", "jobs: [{kind: paths, graph: [[0, -.inf], [0, 0]]}]", apsp.ErrInvalidWeight},
		{"bad literal", "jobs: [{kind: paths, graph: [[0, x], [0, 0]]}]", apsp.ErrInvalidWeight},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := job.Decode(strings.NewReader(tt.doc))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("unknown field", func(t *testing.T) {
		_, err := job.Decode(strings.NewReader("jobs: [{kind: tree, tre: [1]}]"))
		assert.Error(t, err)
	})
}

func TestParseInline(t *testing.T) {
	vals, err := job.ParseTree("[4, 2, 6, null, 3]")
	require.NoError(t, err)
	require.Len(t, vals, 5)
	assert.Nil(t, vals[3])
	assert.Equal(t, 3.0, *vals[4])

	cells, err := job.ParseGraph(`[[0, 1], ["inf", 0]]`)
	require.NoError(t, err)
	g, err := job.GraphFromCells(cells)
	require.NoError(t, err)
	w, err := g.Edge(1, 0)
	require.NoError(t, err)
	assert.True(t, w.IsInf())

	_, err = job.ParseGraph(`[[0, 1], [0]]`)
	require.NoError(t, err, "shape is checked when building the graph")
	_, err = job.GraphFromCells([]job.Row{{{}, {}}, {{}}})
	assert.ErrorIs(t, err, apsp.ErrNonSquare)
}

func TestParseGraph_NullCells(t *testing.T) {
	rows, err := job.ParseGraph(`[[0, null], [null, 0]]`)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	for i, row := range rows {
		require.Len(t, row, 2, "row %d keeps its null cell", i)
	}

	g, err := job.GraphFromCells(rows)
	require.NoError(t, err)
	for _, ij := range [][2]int{{0, 1}, {1, 0}} {
		w, err := g.Edge(ij[0], ij[1])
		require.NoError(t, err)
		assert.True(t, w.IsInf(), "edge %v", ij)
	}

	_, err = job.ParseGraph(`[[0, 1], 7]`)
	assert.ErrorIs(t, err, apsp.ErrNonSquare, "a scalar row is rejected")

	doc, err := job.Decode(strings.NewReader(`{"jobs": [{"kind": "paths", "graph": [[0, null], [null, 0]]}]}`))
	require.NoError(t, err)
	require.Len(t, doc.Jobs[0].Graph[1], 2, "JSON null is no edge too")
}
