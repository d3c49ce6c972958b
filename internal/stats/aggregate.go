package stats

import (
	"math"

	"nestlog/internal/model"
)

// DailyActivityCount is one day's record counts keyed by activity type.
type DailyActivityCount struct {
	Date   string                     `json:"date"`
	Counts map[model.ActivityType]int `json:"counts"`
	Total  int                        `json:"total"`
}

// DailyDrinkIntake is one day's liquid intake in milliliters keyed by drink type.
type DailyDrinkIntake struct {
	Date    string                  `json:"date"`
	Intakes map[model.DrinkType]int `json:"intakes"`
	Total   int                     `json:"total"`
}

// DailySleepDuration is one day's accumulated sleep in minutes.
type DailySleepDuration struct {
	Date    string `json:"date"`
	Minutes int    `json:"minutes"`
}

// AggregateCounts buckets every activity by the calendar day of its
// RecordedAt in the range's location. The result has exactly one entry per
// day in the range, in day order, zero-filled for days with no activity.
// Records outside the closed range are dropped, never clamped into the
// nearest bucket.
func AggregateCounts(activities []model.Activity, r DateRange) []DailyActivityCount {
	days := r.Days()
	loc := r.Start.Location()
	out := make([]DailyActivityCount, len(days))
	idx := make(map[string]int, len(days))
	for i, d := range days {
		out[i] = DailyActivityCount{Date: d, Counts: map[model.ActivityType]int{}}
		idx[d] = i
	}
	for _, a := range activities {
		if !r.Contains(a.RecordedAt) {
			continue
		}
		i, ok := idx[a.RecordedAt.In(loc).Format(DayKeyLayout)]
		if !ok {
			continue
		}
		out[i].Counts[a.Type]++
		out[i].Total++
	}
	return out
}

// AggregateDrinkIntake sums AmountML per drink type per day. Non-drink
// activities are ignored.
func AggregateDrinkIntake(activities []model.Activity, r DateRange) []DailyDrinkIntake {
	days := r.Days()
	loc := r.Start.Location()
	out := make([]DailyDrinkIntake, len(days))
	idx := make(map[string]int, len(days))
	for i, d := range days {
		out[i] = DailyDrinkIntake{Date: d, Intakes: map[model.DrinkType]int{}}
		idx[d] = i
	}
	for _, a := range activities {
		if a.Type != model.TypeDrink || !r.Contains(a.RecordedAt) {
			continue
		}
		drink, ok := a.Drink()
		if !ok {
			continue
		}
		i, ok := idx[a.RecordedAt.In(loc).Format(DayKeyLayout)]
		if !ok {
			continue
		}
		out[i].Intakes[drink.DrinkType] += drink.AmountML
		out[i].Total += drink.AmountML
	}
	return out
}

// AggregateSleepDuration sums sleep minutes per day. A session counts toward
// the day it started, even when it crosses midnight. Sessions without an end
// time contribute nothing; a malformed end time at or before the start
// contributes zero minutes rather than a negative duration.
func AggregateSleepDuration(activities []model.Activity, r DateRange) []DailySleepDuration {
	days := r.Days()
	loc := r.Start.Location()
	out := make([]DailySleepDuration, len(days))
	idx := make(map[string]int, len(days))
	for i, d := range days {
		out[i] = DailySleepDuration{Date: d}
		idx[d] = i
	}
	for _, a := range activities {
		if a.Type != model.TypeSleep || !r.Contains(a.RecordedAt) {
			continue
		}
		sleep, ok := a.Sleep()
		if !ok || sleep.EndTime == nil {
			continue
		}
		i, ok := idx[a.RecordedAt.In(loc).Format(DayKeyLayout)]
		if !ok {
			continue
		}
		out[i].Minutes += sleepMinutes(a, sleep)
	}
	return out
}

func sleepMinutes(a model.Activity, m model.SleepMeta) int {
	if m.EndTime == nil {
		return 0
	}
	mins := int(math.Round(m.EndTime.Sub(a.RecordedAt).Minutes()))
	if mins < 0 {
		return 0
	}
	return mins
}
