package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestRangeForDaily(t *testing.T) {
	r := RangeFor(PeriodDaily, time.Date(2025, 6, 15, 14, 30, 0, 0, time.Local))

	assert.Equal(t, day(2025, 6, 15), r.Start)
	assert.Equal(t, 15, r.End.Day())
	assert.Equal(t, 23, r.End.Hour())
	assert.Len(t, r.Days(), 1)
}

func TestRangeForWeeklyStartsMonday(t *testing.T) {
	// 2025-06-15 is a Sunday; its week is Mon 06-09 through Sun 06-15.
	r := RangeFor(PeriodWeekly, day(2025, 6, 15))

	assert.Equal(t, time.Monday, r.Start.Weekday())
	assert.Equal(t, time.Sunday, r.End.Weekday())
	assert.Equal(t, day(2025, 6, 9), r.Start)
	assert.Equal(t, 15, r.End.Day())
	assert.Len(t, r.Days(), 7)
}

func TestRangeForWeeklyAnyAnchorDay(t *testing.T) {
	for d := 9; d <= 15; d++ {
		r := RangeFor(PeriodWeekly, day(2025, 6, d))
		assert.Equal(t, day(2025, 6, 9), r.Start, "anchor day %d", d)
		assert.Len(t, r.Days(), 7, "anchor day %d", d)
	}
}

func TestRangeForMonthly(t *testing.T) {
	r := RangeFor(PeriodMonthly, day(2025, 6, 15))

	assert.Equal(t, day(2025, 6, 1), r.Start)
	assert.Equal(t, 30, r.End.Day())
	assert.Len(t, r.Days(), 30)

	feb := RangeFor(PeriodMonthly, day(2025, 2, 10))
	assert.Len(t, feb.Days(), 28)

	leap := RangeFor(PeriodMonthly, day(2024, 2, 10))
	assert.Len(t, leap.Days(), 29)
}

func TestNavigateDaily(t *testing.T) {
	assert.Equal(t, day(2025, 6, 16), Navigate(day(2025, 6, 15), PeriodDaily, +1))
	assert.Equal(t, day(2025, 6, 14), Navigate(day(2025, 6, 15), PeriodDaily, -1))
	// Month boundary rolls over.
	assert.Equal(t, day(2025, 7, 1), Navigate(day(2025, 6, 30), PeriodDaily, +1))
}

func TestNavigateWeekly(t *testing.T) {
	assert.Equal(t, day(2025, 6, 22), Navigate(day(2025, 6, 15), PeriodWeekly, +1))
	assert.Equal(t, day(2025, 6, 8), Navigate(day(2025, 6, 15), PeriodWeekly, -1))
}

func TestNavigateMonthly(t *testing.T) {
	prev := Navigate(day(2025, 6, 15), PeriodMonthly, -1)
	next := Navigate(day(2025, 6, 15), PeriodMonthly, +1)
	assert.Equal(t, time.May, prev.Month())
	assert.Equal(t, time.July, next.Month())

	// Stepping back from a 31-day month normalizes per time.AddDate.
	assert.Equal(t, day(2025, 3, 3), Navigate(day(2025, 3, 31), PeriodMonthly, -1))
	assert.Equal(t, day(2025, 1, 31), Navigate(day(2024, 12, 31), PeriodMonthly, +1))
}

func TestPeriodLabel(t *testing.T) {
	daily := RangeFor(PeriodDaily, day(2025, 6, 15))
	weekly := RangeFor(PeriodWeekly, day(2025, 6, 15))
	monthly := RangeFor(PeriodMonthly, day(2025, 6, 15))

	assert.Equal(t, "2025-06-15 (Sun)", PeriodLabel(PeriodDaily, daily))
	assert.Equal(t, "06/09 ~ 06/15", PeriodLabel(PeriodWeekly, weekly))
	assert.Equal(t, "2025-06", PeriodLabel(PeriodMonthly, monthly))
}

func TestContainsIsClosed(t *testing.T) {
	r := RangeFor(PeriodDaily, day(2025, 6, 15))

	require.True(t, r.Contains(r.Start))
	require.True(t, r.Contains(r.End))
	assert.False(t, r.Contains(r.Start.Add(-time.Millisecond)))
	assert.False(t, r.Contains(r.End.Add(time.Millisecond)))
}
