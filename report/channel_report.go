// Package report turns channel timelines into the rows of the activity table.
package report

import (
	"bytes"
	"channel-report/domain"
	"channel-report/projection"
	"encoding/json"
	"strconv"
	"time"

	"github.com/samber/lo"
)

var identityColumns = []string{"id", "name", "owner"}

// ChannelReport is one row of the table. Oldest and Now record the week grid
// it was bucketed with.
type ChannelReport struct {
	ID     string
	Name   string
	Owner  string
	Counts []projection.WeekCount
	Oldest time.Time
	Now    time.Time
}

// Build buckets the timeline from its own oldest instant up to now.
func Build(identity domain.ChannelIdentity, timeline projection.Timeline, now time.Time) ChannelReport {
	return ChannelReport{
		ID:     identity.ID,
		Name:   identity.DisplayName(),
		Owner:  identity.OwnerLabel(),
		Counts: projection.Bucketize(timeline.Oldest(), now, timeline),
		Oldest: timeline.Oldest(),
		Now:    now,
	}
}

// HeaderRow gives the column names of a report built for oldest/now,
// without having to build one.
func HeaderRow(oldest, now time.Time) []string {
	return append(append([]string(nil), identityColumns...), projection.WeekLabels(oldest, now)...)
}

// Record flattens the report in header order.
func (r ChannelReport) Record() []string {
	record := []string{r.ID, r.Name, r.Owner}
	return append(record, lo.Map(r.Counts, func(c projection.WeekCount, _ int) string {
		return strconv.Itoa(c.Count)
	})...)
}

// Total is the number of messages counted over every week.
func (r ChannelReport) Total() int {
	return lo.SumBy(r.Counts, func(c projection.WeekCount) int { return c.Count })
}

// MarshalJSON writes a flat object whose keys follow the header order,
// counts being numbers.
func (r ChannelReport) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	fields := [][2]any{{"id", r.ID}, {"name", r.Name}, {"owner", r.Owner}}
	for _, c := range r.Counts {
		fields = append(fields, [2]any{c.Label, c.Count})
	}
	for i, field := range fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(field[0])
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(field[1])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
