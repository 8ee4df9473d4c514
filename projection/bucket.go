package projection

import (
	"channel-report/domain"
	"time"

	"github.com/samber/lo"
)

const labelLayout = "20060102"

// WeekCount is one bucket of a channel report.
type WeekCount struct {
	Boundary time.Time
	Label    string
	Count    int
}

// WeekLabel formats a boundary as a column name, e.g. "~20200104".
func WeekLabel(boundary time.Time) string {
	return "~" + boundary.Format(labelLayout)
}

// WeekLabels returns the column names Bucketize produces for the same oldest/now pair.
func WeekLabels(oldest, now time.Time) []string {
	return lo.Map(domain.WeekBoundaries(oldest, now), func(b time.Time, _ int) string {
		return WeekLabel(b)
	})
}

// Bucketize counts the messages of every week between oldest and now, oldest week first.
func Bucketize(oldest, now time.Time, timeline Timeline) []WeekCount {
	return lo.Map(domain.WeekBoundaries(oldest, now), func(b time.Time, _ int) WeekCount {
		return WeekCount{
			Boundary: b,
			Label:    WeekLabel(b),
			Count:    timeline.CountInWeek(b),
		}
	})
}
