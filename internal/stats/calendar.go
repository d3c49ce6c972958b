// Package stats holds the pure aggregation core: calendar-range math and the
// daily bucketing of activity records into display-ready series. Everything
// here is a total function over its arguments; nothing touches the database.
package stats

import (
	"fmt"
	"time"
)

type Period string

const (
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
)

// DayKeyLayout is the bucket key format shared by every daily series.
const DayKeyLayout = "2006-01-02"

// DateRange is inclusive on both ends and always spans whole local days.
// Build one with RangeFor; nothing else should construct ranges ad hoc.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// RangeFor maps a (period, anchor) pair to the concrete inclusive range:
// the anchor's day, its Monday-to-Sunday week, or its calendar month.
func RangeFor(period Period, anchor time.Time) DateRange {
	switch period {
	case PeriodWeekly:
		// Week starts Monday regardless of locale.
		offset := (int(anchor.Weekday()) + 6) % 7
		start := startOfDay(anchor).AddDate(0, 0, -offset)
		return DateRange{Start: start, End: endOfDay(start.AddDate(0, 0, 6))}
	case PeriodMonthly:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return DateRange{Start: start, End: endOfDay(start.AddDate(0, 1, -1))}
	default:
		return DateRange{Start: startOfDay(anchor), End: endOfDay(anchor)}
	}
}

// Navigate moves the anchor one day, week, or month in the given direction
// (+1 or -1). Month steps use time.AddDate rollover semantics, so stepping
// from a long month into a shorter one lands on a normalized valid date.
func Navigate(anchor time.Time, period Period, direction int) time.Time {
	switch period {
	case PeriodWeekly:
		return anchor.AddDate(0, 0, 7*direction)
	case PeriodMonthly:
		return anchor.AddDate(0, direction, 0)
	default:
		return anchor.AddDate(0, 0, direction)
	}
}

// PeriodLabel renders the heading for a range: single date with weekday,
// "start ~ end" short dates, or year-month.
func PeriodLabel(period Period, r DateRange) string {
	switch period {
	case PeriodWeekly:
		return fmt.Sprintf("%s ~ %s", r.Start.Format("01/02"), r.End.Format("01/02"))
	case PeriodMonthly:
		return r.Start.Format("2006-01")
	default:
		return r.Start.Format("2006-01-02 (Mon)")
	}
}

// Days returns every calendar day key in the range, oldest first.
func (r DateRange) Days() []string {
	var keys []string
	for d := startOfDay(r.Start); !d.After(r.End); d = d.AddDate(0, 0, 1) {
		keys = append(keys, d.Format(DayKeyLayout))
	}
	return keys
}

// Contains reports whether t falls inside the closed interval [Start, End].
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
