// Package render writes datasets in human-readable form, for debugging
// test fixtures.
package render

import (
	"io"
	"sort"

	"github.com/olekukonko/tablewriter"

	"github.com/spvtestleaf/SonicFramework-main/dataset"
)

// Table writes ds to w as an aligned text table. Columns are the first
// record's key set in sorted order; every record in a loaded dataset
// shares that key set. An empty dataset writes nothing.
func Table(w io.Writer, ds dataset.Dataset) {
	if len(ds) == 0 {
		return
	}

	cols := make([]string, 0, len(ds[0]))
	for name := range ds[0] {
		cols = append(cols, name)
	}
	sort.Strings(cols)

	table := tablewriter.NewWriter(w)
	table.Header(cols)
	for _, rec := range ds {
		row := make([]string, len(cols))
		for i, name := range cols {
			row[i] = rec[name]
		}
		table.Append(row)
	}
	table.Render()
}
