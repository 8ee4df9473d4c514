package domain

import "time"

// WeekLength is the exact spacing between two week boundaries.
const WeekLength = 7 * 24 * time.Hour

// WeekBoundaries returns the end of every 7-day window between from and to, oldest first.
//
// The first boundary is the last minute of the Saturday closing the week of from
// (weekday 0 is Sunday). It is computed with calendar arithmetic in from's location,
// the following ones are exact multiples of WeekLength, so a DST change moves the
// wall-clock minute but never the cadence.
//
// The count is floor((to - from) / WeekLength) + 1 and never drops below one:
// a channel with a short history still gets a bucket, possibly ending after to.
func WeekBoundaries(from, to time.Time) []time.Time {
	first := firstWeekEnd(from)
	count := floorDiv(to.Sub(from), WeekLength) + 1
	if count < 1 {
		count = 1
	}
	boundaries := make([]time.Time, 0, count)
	for i := int64(0); i < count; i++ {
		boundaries = append(boundaries, first.Add(time.Duration(i)*WeekLength))
	}
	return boundaries
}

// IsBetween is strict on both ends.
func IsBetween(t, start, end time.Time) bool {
	return start.Before(t) && t.Before(end)
}

func firstWeekEnd(from time.Time) time.Time {
	startOfDay := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	return startOfDay.AddDate(0, 0, 7-int(from.Weekday())).Add(-time.Minute)
}

func floorDiv(d, unit time.Duration) int64 {
	q := int64(d / unit)
	if d%unit < 0 {
		q--
	}
	return q
}
