package report

import (
	"channel-report/errors"
	"fmt"
	"time"

	"github.com/samber/lo"
)

// Table is the assembled report, ready to be written out.
type Table struct {
	Header []string
	Rows   []ChannelReport
}

// Assemble builds the table for one oldest/now pair. Every report must have been
// bucketed on that same pair, otherwise its counts would not line up with the header.
func Assemble(oldest, now time.Time, reports []ChannelReport) (Table, error) {
	if len(reports) == 0 {
		return Table{}, errors.ErrEmptyReportSet
	}
	for _, r := range reports {
		if !r.Oldest.Equal(oldest) || !r.Now.Equal(now) {
			return Table{}, fmt.Errorf("%w: channel %s covers %s to %s, set covers %s to %s",
				errors.ErrHeterogeneousReportSet, r.ID,
				r.Oldest.Format(time.RFC3339), r.Now.Format(time.RFC3339),
				oldest.Format(time.RFC3339), now.Format(time.RFC3339))
		}
	}
	return Table{
		Header: HeaderRow(oldest, now),
		Rows:   reports,
	}, nil
}

// Records returns the rows flattened in header order.
func (t Table) Records() [][]string {
	return lo.Map(t.Rows, func(r ChannelReport, _ int) []string {
		return r.Record()
	})
}
