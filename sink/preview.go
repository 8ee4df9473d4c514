package sink

import (
	"channel-report/report"
	"fmt"
	"io"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Preview renders the table on a terminal, one line per channel,
// with the total of every channel in the last column.
func Preview(w io.Writer, table report.Table) {
	t := tablewriter.NewWriter(w)
	t.SetHeader(append(append([]string(nil), table.Header...), "total"))
	t.SetAutoWrapText(false)
	t.SetAutoFormatHeaders(false)
	t.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	t.SetAlignment(tablewriter.ALIGN_LEFT)
	t.SetCenterSeparator("")
	t.SetColumnSeparator("")
	t.SetRowSeparator("")
	t.SetHeaderLine(false)
	t.SetBorder(false)
	t.SetTablePadding("\t")

	for _, row := range table.Rows {
		t.Append(append(row.Record(), strconv.Itoa(row.Total())))
	}
	t.Render()

	total := lo.SumBy(table.Rows, func(r report.ChannelReport) int { return r.Total() })
	summary := fmt.Sprintf("%d channels, %d weeks, %d messages", len(table.Rows), len(table.Header)-3, total)
	_, _ = fmt.Fprintln(w, color.New(color.FgGreen, color.OpBold).Render(summary))
}
