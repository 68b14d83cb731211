package peneloop

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/Callidon/peneloop-fedx/types"
)

// Report writes a human-readable summary of the last computed partition.
//
// The report lists, per source, the number of assigned pages, the individual
// page sizes in bin order, and the total number of bindings, followed by a
// totals footer. It is a diagnostic convenience only: the report is always
// consistent with the partition returned by the last successful Partition
// call.
//
// Parameters:
//   - w: Destination writer (e.g. os.Stdout)
//
// Returns:
//   - error: ErrNoPartition when no partition has been computed yet, or a
//     write error from the underlying writer
func (e *Engine) Report(w io.Writer) error {
	if e.last == nil {
		return types.ErrNoPartition
	}

	if _, err := fmt.Fprintf(w, "partition %s (algorithm=%s)\n", e.runID, e.last.Algorithm); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Source", "Pages", "Page Sizes", "Bindings"})
	table.SetBorder(true)
	table.AppendBulk(reportRows(e.last))
	table.SetFooter([]string{
		"total",
		strconv.Itoa(e.last.TotalPages()),
		"",
		strconv.Itoa(e.last.TotalBindings()),
	})
	table.Render()

	return nil
}

// reportRows builds one table row per (source, pages) pair.
func reportRows(p *types.Partition) [][]string {
	rows := make([][]string, len(p.Pairs))
	for i, pair := range p.Pairs {
		sizes := make([]string, len(pair.Pages))
		for j, page := range pair.Pages {
			sizes[j] = strconv.Itoa(page.Weight())
		}

		rows[i] = []string{
			pair.Source.String(),
			strconv.Itoa(pair.PageCount()),
			strings.Join(sizes, ","),
			strconv.Itoa(pair.TotalBindings()),
		}
	}

	return rows
}
