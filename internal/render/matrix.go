package render

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/katalvlaran/verikit/apsp"
)

// distanceTable lays the matrix out with vertex indices on both axes.
func distanceTable(dm *apsp.DistanceMatrix) table.Writer {
	n := dm.Order()
	tbl := newTable()

	header := make(table.Row, n+1)
	header[0] = "from\\to"
	configs := make([]table.ColumnConfig, n)
	for j := 0; j < n; j++ {
		header[j+1] = j
		configs[j] = table.ColumnConfig{Number: j + 2, Align: text.AlignRight}
	}
	tbl.AppendHeader(header)
	tbl.SetColumnConfigs(configs)

	for i, row := range dm.Rows() {
		cells := make(table.Row, n+1)
		cells[0] = i
		for j, w := range row {
			cells[j+1] = w.String()
		}
		tbl.AppendRow(cells)
	}

	return tbl
}

// routeTable lists one shortest route per reachable ordered pair i != j.
func routeTable(dm *apsp.DistanceMatrix) table.Writer {
	tbl := newTable()
	tbl.AppendHeader(table.Row{"From", "To", "Distance", "Route"})

	for _, rt := range routes(dm) {
		tbl.AppendRow(table.Row{rt.From, rt.To, rt.Distance.String(), joinPath(rt.Path)})
	}

	return tbl
}

func joinPath(p []int) string {
	parts := make([]string, len(p))
	for i, v := range p {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " → ")
}

// routes walks every reachable pair of a matrix computed WithPaths.
func routes(dm *apsp.DistanceMatrix) []routeView {
	if !dm.HasPaths() {
		return nil
	}

	n := dm.Order()
	var out []routeView
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			p, err := dm.Path(i, j)
			if err != nil { // unreachable
				continue
			}
			d, _ := dm.At(i, j)
			out = append(out, routeView{From: i, To: j, Distance: d, Path: p})
		}
	}

	return out
}
