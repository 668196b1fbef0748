package render

import (
	"github.com/katalvlaran/verikit/apsp"
	"github.com/katalvlaran/verikit/internal/runner"
)

// report is the document written for the json and yaml formats.
type report struct {
	Results []resultView `json:"results" yaml:"results"`
}

type resultView struct {
	Name          string          `json:"name"                     yaml:"name"`
	Kind          string          `json:"kind"                     yaml:"kind"`
	Status        string          `json:"status"                   yaml:"status"`
	DurationNS    int64           `json:"duration_ns"              yaml:"duration_ns"`
	Tree          *treeView       `json:"tree,omitempty"           yaml:"tree,omitempty"`
	Matches       *matchView      `json:"match,omitempty"          yaml:"match,omitempty"`
	Paths         *pathsView      `json:"paths,omitempty"          yaml:"paths,omitempty"`
	NegativeCycle *cycleView      `json:"negative_cycle,omitempty" yaml:"negative_cycle,omitempty"`
	Error         string          `json:"error,omitempty"          yaml:"error,omitempty"`
}

type treeView struct {
	Height     int  `json:"height"      yaml:"height"`
	NodeCount  int  `json:"node_count"  yaml:"node_count"`
	IsBalanced bool `json:"is_balanced" yaml:"is_balanced"`
	IsBST      bool `json:"is_bst"      yaml:"is_bst"`
}

// matchView keeps an empty offset list visible as [] rather than omitting it.
type matchView struct {
	Offsets []int `json:"offsets" yaml:"offsets,flow"`
}

// pathsView keeps the distance matrix present even for the empty graph.
type pathsView struct {
	Distances [][]apsp.Weight `json:"distances"        yaml:"distances"`
	Routes    []routeView     `json:"routes,omitempty" yaml:"routes,omitempty"`
}

type routeView struct {
	From     int         `json:"from"     yaml:"from"`
	To       int         `json:"to"       yaml:"to"`
	Distance apsp.Weight `json:"distance" yaml:"distance"`
	Path     []int       `json:"path"     yaml:"path,flow"`
}

type cycleView struct {
	Vertex   int   `json:"vertex"   yaml:"vertex"`
	Vertices []int `json:"vertices" yaml:"vertices,flow"`
}

func views(results []runner.Result) []resultView {
	out := make([]resultView, len(results))
	for i := range results {
		out[i] = view(&results[i])
	}
	return out
}

func view(res *runner.Result) resultView {
	v := resultView{
		Name:       res.Name,
		Kind:       string(res.Kind),
		Status:     string(res.Status),
		DurationNS: res.Duration.Nanoseconds(),
	}

	switch {
	case res.Tree != nil:
		v.Tree = &treeView{
			Height:     res.Tree.Height,
			NodeCount:  res.Tree.NodeCount,
			IsBalanced: res.Tree.IsBalanced,
			IsBST:      res.Tree.IsBST,
		}
	case res.Matches != nil:
		v.Matches = &matchView{Offsets: res.Matches}
	case res.Distances != nil:
		v.Paths = &pathsView{Distances: res.Distances.Rows(), Routes: routes(res.Distances)}
	case res.NegativeCycle != nil:
		v.NegativeCycle = &cycleView{Vertex: res.NegativeCycle.Vertex, Vertices: res.NegativeCycle.Vertices}
	}
	if res.Err != nil {
		v.Error = res.Err.Error()
	}

	return v
}
