package stats

import (
	"sort"
	"time"

	"nestlog/internal/model"
)

// SleepSession is a bounded sleep interval for the 24-hour occupancy ring,
// in minutes from the day's local midnight. StartMinute is within [0, 1440);
// EndMinute may extend to 2880 when the session crosses midnight.
type SleepSession struct {
	StartMinute int `json:"start_minute"`
	EndMinute   int `json:"end_minute"`
}

// SleepSessions extracts the renderable sleep intervals for a single day:
// sleep records that started on that local day and have an end time, sorted
// by start. In-progress sessions have no bounded interval and are skipped,
// as are malformed records whose end is not after their start.
func SleepSessions(activities []model.Activity, day time.Time) []SleepSession {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayKey := dayStart.Format(DayKeyLayout)

	var sessions []SleepSession
	for _, a := range activities {
		if a.Type != model.TypeSleep {
			continue
		}
		sleep, ok := a.Sleep()
		if !ok || sleep.EndTime == nil {
			continue
		}
		// Compare in the day's location; stored times may carry another zone.
		if a.RecordedAt.In(dayStart.Location()).Format(DayKeyLayout) != dayKey {
			continue
		}
		start := int(a.RecordedAt.Sub(dayStart).Minutes())
		end := int(sleep.EndTime.Sub(dayStart).Minutes())
		if start < 0 {
			start = 0
		}
		if start >= 24*60 {
			continue
		}
		if end > 48*60 {
			end = 48 * 60
		}
		if end <= start {
			continue
		}
		sessions = append(sessions, SleepSession{StartMinute: start, EndMinute: end})
	}
	sort.Slice(sessions, func(i, j int) bool { return sessions[i].StartMinute < sessions[j].StartMinute })
	return sessions
}

// TotalMinutes sums the covered minutes across sessions.
func TotalMinutes(sessions []SleepSession) int {
	total := 0
	for _, s := range sessions {
		total += s.EndMinute - s.StartMinute
	}
	return total
}
