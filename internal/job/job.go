// Package job decodes batch documents (YAML, or JSON as its subset) into
// inputs for the tree, match and paths algorithms.
//
// Document layout:
//
//	jobs:
//	  - name: sample-tree
//	    kind: tree
//	    tree: [10, 5, 15, null, 7]     # level order, null = absent child
//	  - kind: match
//	    text: AABAACAADAABAAABAA
//	    pattern: AABA
//	  - kind: paths
//	    paths: true                    # also reconstruct routes
//	    graph:
//	      - [0, 3, inf, 5]
//	      - [2, 0, inf, 4]
//	      - [inf, 1, 0, inf]
//	      - [inf, inf, 2, 0]
//
// Graph cells accept numbers, "inf", ".inf" or null for "no edge".
package job

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/verikit/apsp"
	"github.com/katalvlaran/verikit/bintree"
)

// Kind names the algorithm a job runs.
type Kind string

// Supported kinds.
const (
	KindTree  Kind = "tree"
	KindMatch Kind = "match"
	KindPaths Kind = "paths"
)

// Sentinel errors.
var (
	ErrUnknownKind  = errors.New("job: unknown kind")
	ErrMissingField = errors.New("job: missing required field")
	ErrNoJobs       = errors.New("job: document has no jobs")
)

// Job is one unit of work. Only the fields of its Kind are used.
type Job struct {
	Name    string     `yaml:"name"    json:"name"`
	Kind    Kind       `yaml:"kind"    json:"kind"`
	Tree    []*float64 `yaml:"tree"    json:"tree,omitempty"`
	Text    string     `yaml:"text"    json:"text,omitempty"`
	Pattern string     `yaml:"pattern" json:"pattern,omitempty"`
	Graph   []Row      `yaml:"graph"   json:"graph,omitempty"`
	Paths   bool       `yaml:"paths"   json:"paths,omitempty"`
}

// Document is the top-level batch file.
type Document struct {
	Jobs []Job `yaml:"jobs"`
}

// Row is one graph matrix row.
type Row []Cell

// UnmarshalYAML decodes every cell node itself: yaml.v3 drops null
// sequence elements that target a struct, which would shrink the row.
func (r *Row) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return fmt.Errorf("line %d: graph row must be a sequence: %w", node.Line, apsp.ErrNonSquare)
	}

	row := make(Row, len(node.Content))
	for i, cell := range node.Content {
		if err := row[i].UnmarshalYAML(cell); err != nil {
			return err
		}
	}
	*r = row

	return nil
}

// Cell is one graph matrix entry.
type Cell struct {
	apsp.Weight
}

// UnmarshalYAML accepts numbers (including .inf), strings understood by
// apsp.ParseWeight, and null as "no edge".
func (c *Cell) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: graph cell must be a scalar: %w", node.Line, apsp.ErrInvalidWeight)
	}
	if node.Tag == "!!null" {
		c.Weight = apsp.Inf()
		return nil
	}

	var (
		w   apsp.Weight
		err error
	)
	if node.Tag == "!!int" || node.Tag == "!!float" {
		var f float64
		if err = node.Decode(&f); err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		w, err = apsp.FromFloat(f)
	} else {
		w, err = apsp.ParseWeight(node.Value)
	}
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	c.Weight = w

	return nil
}

// Decode reads and validates a document. Unknown keys are rejected so
// typos surface instead of silently producing empty jobs.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoJobs
		}
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	if len(doc.Jobs) == 0 {
		return nil, ErrNoJobs
	}

	for i := range doc.Jobs {
		if doc.Jobs[i].Name == "" {
			doc.Jobs[i].Name = fmt.Sprintf("job-%d", i+1)
		}
		if err := doc.Jobs[i].Validate(); err != nil {
			return nil, fmt.Errorf("jobs[%d] %q: %w", i, doc.Jobs[i].Name, err)
		}
	}

	return &doc, nil
}

// Validate checks that the fields required by the job's kind are present.
// An empty tree is valid (the absent tree), as is an empty text.
func (j *Job) Validate() error {
	switch j.Kind {
	case KindTree, KindMatch:
		return nil
	case KindPaths:
		if j.Graph == nil {
			return fmt.Errorf("%w: graph", ErrMissingField)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, j.Kind)
	}
}

// Root builds the job's tree.
func (j *Job) Root() *bintree.Node[float64] {
	return bintree.FromLevelOrder(j.Tree)
}

// BuildGraph converts the job's matrix into an apsp.Graph.
func (j *Job) BuildGraph() (*apsp.Graph, error) {
	return GraphFromCells(j.Graph)
}

// GraphFromCells converts decoded rows into an apsp.Graph.
func GraphFromCells(cells []Row) (*apsp.Graph, error) {
	rows := make([][]apsp.Weight, len(cells))
	for i, row := range cells {
		rows[i] = make([]apsp.Weight, len(row))
		for k, c := range row {
			rows[i][k] = c.Weight
		}
	}

	return apsp.FromWeights(rows)
}

// ParseTree parses an inline level-order list such as "[10, 5, null, 7]".
func ParseTree(s string) ([]*float64, error) {
	var out []*float64
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(s)), &out); err != nil {
		return nil, fmt.Errorf("parse tree: %w", err)
	}
	return out, nil
}

// ParseGraph parses an inline matrix such as `[[0, 3], [inf, 0]]`.
func ParseGraph(s string) ([]Row, error) {
	var out []Row
	if err := yaml.Unmarshal([]byte(strings.TrimSpace(s)), &out); err != nil {
		return nil, fmt.Errorf("parse graph: %w", err)
	}
	return out, nil
}
