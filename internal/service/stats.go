package service

import (
	"context"
	"time"

	"nestlog/internal/stats"
)

// StatsOverview is the display-ready bundle for one period: the three daily
// series plus the label and the anchors the client navigates with.
type StatsOverview struct {
	Period     stats.Period               `json:"period"`
	Label      string                     `json:"label"`
	Range      stats.DateRange            `json:"range"`
	Counts     []stats.DailyActivityCount `json:"counts"`
	Intake     []stats.DailyDrinkIntake   `json:"intake"`
	Sleep      []stats.DailySleepDuration `json:"sleep"`
	PrevAnchor string                     `json:"prev_anchor"`
	NextAnchor string                     `json:"next_anchor"`
}

// StatsService glues the data-access layer to the pure aggregation core.
type StatsService struct {
	activities *ActivityService
}

func NewStatsService(activities *ActivityService) *StatsService {
	return &StatsService{activities: activities}
}

func (s *StatsService) Overview(ctx context.Context, familyID int, period stats.Period, anchor time.Time) (*StatsOverview, error) {
	r := stats.RangeFor(period, anchor)
	acts, err := s.activities.ListRange(ctx, familyID, r)
	if err != nil {
		return nil, err
	}
	return &StatsOverview{
		Period:     period,
		Label:      stats.PeriodLabel(period, r),
		Range:      r,
		Counts:     stats.AggregateCounts(acts, r),
		Intake:     stats.AggregateDrinkIntake(acts, r),
		Sleep:      stats.AggregateSleepDuration(acts, r),
		PrevAnchor: stats.Navigate(anchor, period, -1).Format(stats.DayKeyLayout),
		NextAnchor: stats.Navigate(anchor, period, +1).Format(stats.DayKeyLayout),
	}, nil
}

// SleepDay returns the bounded sleep intervals for one day's occupancy ring.
func (s *StatsService) SleepDay(ctx context.Context, familyID int, day time.Time) ([]stats.SleepSession, error) {
	r := stats.RangeFor(stats.PeriodDaily, day)
	acts, err := s.activities.ListRange(ctx, familyID, r)
	if err != nil {
		return nil, err
	}
	sessions := stats.SleepSessions(acts, day)
	if sessions == nil {
		sessions = []stats.SleepSession{}
	}
	return sessions, nil
}
