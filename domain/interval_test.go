package domain

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func TestWeekBoundaries_FromEqualsTo_ReturnsSingleBoundary(t *testing.T) {
	req := require.New(t)
	from := date(2020, time.January, 1, 0, 0)

	boundaries := WeekBoundaries(from, from)

	req.Len(boundaries, 1)
	req.Equal(date(2020, time.January, 4, 23, 59), boundaries[0])
}

func TestWeekBoundaries_AlignsOnSaturdayLastMinute(t *testing.T) {
	req := require.New(t)
	from := date(2020, time.January, 1, 0, 0)
	to := date(2020, time.January, 20, 0, 0)

	boundaries := WeekBoundaries(from, to)

	req.Equal([]time.Time{
		date(2020, time.January, 4, 23, 59),
		date(2020, time.January, 11, 23, 59),
		date(2020, time.January, 18, 23, 59),
	}, boundaries)
}

func TestWeekBoundaries_FirstWindowContainsFrom(t *testing.T) {
	// 2020-01-05 is a Sunday, 2020-01-11 a Saturday
	for day := 5; day <= 11; day++ {
		from := date(2020, time.January, day, 10, 30)
		first := WeekBoundaries(from, from)[0]
		require.Equal(t, date(2020, time.January, 11, 23, 59), first, "from=%s", from)
		require.True(t, IsBetween(from, first.Add(-WeekLength), first))
	}
}

func TestWeekBoundaries_EvenlySpaced(t *testing.T) {
	req := require.New(t)
	from := date(2020, time.January, 1, 0, 0)
	to := date(2021, time.March, 1, 0, 0)

	boundaries := WeekBoundaries(from, to)

	req.Len(boundaries, 61)
	for i := 1; i < len(boundaries); i++ {
		req.Equal(WeekLength, boundaries[i].Sub(boundaries[i-1]))
		req.Equal(int64(7*24*60*60*1000), boundaries[i].Sub(boundaries[i-1]).Milliseconds())
	}
}

func TestWeekBoundaries_ToBeforeFrom_StillReturnsOneBoundary(t *testing.T) {
	req := require.New(t)
	from := date(2020, time.January, 1, 0, 0)

	boundaries := WeekBoundaries(from, from.Add(-3*WeekLength))

	req.Len(boundaries, 1)
	req.Equal(date(2020, time.January, 4, 23, 59), boundaries[0])
}

func TestWeekBoundaries_ShortHistory_BoundaryAfterTo(t *testing.T) {
	req := require.New(t)
	from := date(2020, time.January, 1, 0, 0)
	to := date(2020, time.January, 2, 0, 0)

	boundaries := WeekBoundaries(from, to)

	req.Len(boundaries, 1)
	req.True(boundaries[0].After(to))
}

func TestIsBetween_IsStrictOnBothEnds(t *testing.T) {
	req := require.New(t)
	start := date(2020, time.January, 1, 0, 0)
	end := date(2020, time.January, 8, 0, 0)

	req.False(IsBetween(start, start, end))
	req.False(IsBetween(end, start, end))
	req.True(IsBetween(start.Add(time.Millisecond), start, end))
	req.False(IsBetween(end.Add(time.Millisecond), start, end))
}

func TestWeekBoundaries_DaylightSavingShiftsWallClockNotCadence(t *testing.T) {
	req := require.New(t)
	newYork, err := time.LoadLocation("America/New_York")
	req.NoError(err)
	// Clocks go forward on Sunday 2020-03-08
	from := time.Date(2020, time.March, 2, 0, 0, 0, 0, newYork)
	to := time.Date(2020, time.March, 30, 0, 0, 0, 0, newYork)

	boundaries := WeekBoundaries(from, to)

	// 28 calendar days are one hour short of four weeks
	req.Len(boundaries, 4)
	req.True(time.Date(2020, time.March, 7, 23, 59, 0, 0, time.FixedZone("EST", -5*3600)).Equal(boundaries[0]))
	req.Equal(time.Saturday, boundaries[0].Weekday())
	req.True(time.Date(2020, time.March, 15, 0, 59, 0, 0, time.FixedZone("EDT", -4*3600)).Equal(boundaries[1]))
	req.Equal(time.Sunday, boundaries[1].Weekday())
	req.Equal("2020-03-15T00:59:00-04:00", boundaries[1].Format(time.RFC3339))
	for i := 1; i < len(boundaries); i++ {
		req.Equal(WeekLength, boundaries[i].Sub(boundaries[i-1]))
	}
}
