// Package render prints runner results as tables, JSON or YAML.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/verikit/internal/job"
	"github.com/katalvlaran/verikit/internal/runner"
)

// Format selects the output encoding.
type Format string

// Supported formats.
const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// ErrUnknownFormat is returned for a format outside FormatTable, FormatJSON
// and FormatYAML.
var ErrUnknownFormat = errors.New("render: unknown output format")

// Renderer writes results to w.
type Renderer struct {
	w      io.Writer
	format Format

	ok, warn, fail *color.Color
}

// New returns a Renderer. With noColor the status lines are plain text.
func New(w io.Writer, format Format, noColor bool) (*Renderer, error) {
	switch format {
	case FormatTable, FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	r := &Renderer{
		w:      w,
		format: format,
		ok:     color.New(color.FgGreen),
		warn:   color.New(color.FgYellow),
		fail:   color.New(color.FgRed),
	}
	if noColor {
		r.ok.DisableColor()
		r.warn.DisableColor()
		r.fail.DisableColor()
	} else {
		r.ok.EnableColor()
		r.warn.EnableColor()
		r.fail.EnableColor()
	}

	return r, nil
}

// Results writes every result in the configured format.
func (r *Renderer) Results(results []runner.Result) error {
	switch r.format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(report{Results: views(results)})
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(report{Results: views(results)}); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.tables(results)
	}
}

func (r *Renderer) tables(results []runner.Result) error {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"Job", "Kind", "Status", "Result", "Time"})

	var ok, cycles, failed int
	for i := range results {
		res := &results[i]
		switch res.Status {
		case runner.StatusOK:
			ok++
		case runner.StatusNegativeCycle:
			cycles++
		case runner.StatusError:
			failed++
		}
		tbl.AppendRow(table.Row{res.Name, res.Kind, res.Status, summarize(res), formatDuration(res.Duration)})
	}
	if len(results) > 1 {
		tbl.AppendFooter(table.Row{"Total: " + humanize.Comma(int64(len(results))) + " jobs"})
	}

	if _, err := fmt.Fprintln(r.w, tbl.Render()); err != nil {
		return err
	}

	for i := range results {
		if err := r.details(&results[i]); err != nil {
			return err
		}
	}

	return r.statusLine(ok, cycles, failed)
}

// details prints the per-job sections that do not fit in one table cell.
func (r *Renderer) details(res *runner.Result) error {
	var err error
	switch {
	case res.Distances != nil:
		_, err = fmt.Fprintf(r.w, "\n%s distances:\n%s\n", res.Name, distanceTable(res.Distances).Render())
		if err == nil && res.Distances.HasPaths() {
			_, err = fmt.Fprintf(r.w, "\n%s routes:\n%s\n", res.Name, routeTable(res.Distances).Render())
		}
	case res.NegativeCycle != nil:
		_, err = r.warn.Fprintf(r.w, "\n%s: negative cycle through vertices %v\n", res.Name, res.NegativeCycle.Vertices)
	case res.Err != nil:
		_, err = r.fail.Fprintf(r.w, "\n%s: %v\n", res.Name, res.Err)
	}

	return err
}

func (r *Renderer) statusLine(ok, cycles, failed int) error {
	var err error
	switch {
	case failed > 0:
		_, err = r.fail.Fprintf(r.w, "\n%s ok, %s negative cycle, %s failed\n",
			humanize.Comma(int64(ok)), humanize.Comma(int64(cycles)), humanize.Comma(int64(failed)))
	case cycles > 0:
		_, err = r.warn.Fprintf(r.w, "\n%s ok, %s negative cycle\n",
			humanize.Comma(int64(ok)), humanize.Comma(int64(cycles)))
	default:
		_, err = r.ok.Fprintf(r.w, "\n%s ok\n", humanize.Comma(int64(ok)))
	}

	return err
}

// summarize is the one-line description shown in the Result column.
func summarize(res *runner.Result) string {
	switch {
	case res.Tree != nil:
		t := res.Tree
		return fmt.Sprintf("height=%d nodes=%s balanced=%t bst=%t",
			t.Height, humanize.Comma(int64(t.NodeCount)), t.IsBalanced, t.IsBST)
	case res.Status == runner.StatusOK && res.Kind == job.KindMatch:
		return fmt.Sprintf("%s matches %s", humanize.Comma(int64(len(res.Matches))), offsets(res.Matches))
	case res.Distances != nil:
		n := res.Distances.Order()
		return fmt.Sprintf("%s×%s matrix", humanize.Comma(int64(n)), humanize.Comma(int64(n)))
	case res.NegativeCycle != nil:
		return fmt.Sprintf("cycle at vertex %d", res.NegativeCycle.Vertex)
	case res.Err != nil:
		return res.Err.Error()
	default:
		return ""
	}
}

const maxOffsets = 10

func offsets(at []int) string {
	if len(at) == 0 {
		return "[]"
	}
	shown := at[:min(len(at), maxOffsets)]
	parts := make([]string, len(shown))
	for i, v := range shown {
		parts[i] = strconv.Itoa(v)
	}
	if len(at) > maxOffsets {
		parts = append(parts, "…")
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// formatDuration keeps sub-second timings readable; humanize only has
// second resolution for durations.
func formatDuration(d time.Duration) string {
	if d >= time.Second {
		return humanize.FtoaWithDigits(d.Seconds(), 2) + "s"
	}
	return d.Round(time.Microsecond).String()
}

func newTable() table.Writer {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	return tbl
}
