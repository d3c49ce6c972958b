package stats

import (
	"testing"
	"time"

	"nestlog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSleepSessionsSortedAndBounded(t *testing.T) {
	d := day(2025, 1, 15)
	acts := []model.Activity{
		sleepAt(d.Add(13*time.Hour), 60),               // 13:00-14:00
		sleepAt(d.Add(9*time.Hour+30*time.Minute), 45), // 09:30-10:15
	}

	sessions := SleepSessions(acts, d)

	require.Len(t, sessions, 2)
	assert.Equal(t, SleepSession{StartMinute: 9*60 + 30, EndMinute: 10*60 + 15}, sessions[0])
	assert.Equal(t, SleepSession{StartMinute: 13 * 60, EndMinute: 14 * 60}, sessions[1])
}

func TestSleepSessionsMidnightCrossing(t *testing.T) {
	d := day(2025, 1, 15)
	// 23:00 for three hours runs past minute 1440.
	sessions := SleepSessions([]model.Activity{sleepAt(d.Add(23*time.Hour), 180)}, d)

	require.Len(t, sessions, 1)
	assert.Equal(t, 23*60, sessions[0].StartMinute)
	assert.Equal(t, 26*60, sessions[0].EndMinute)
	assert.LessOrEqual(t, sessions[0].EndMinute, 2880)
}

func TestSleepSessionsSkipEndlessAndOtherDays(t *testing.T) {
	d := day(2025, 1, 15)
	endless := model.Activity{
		Type: model.TypeSleep, RecordedAt: d.Add(20 * time.Hour),
		Metadata: model.NewMeta(model.SleepMeta{}),
	}
	otherDay := sleepAt(d.AddDate(0, 0, 1).Add(9*time.Hour), 60)

	sessions := SleepSessions([]model.Activity{endless, otherDay}, d)

	assert.Empty(t, sessions)
}

func TestSleepSessionsSkipMalformed(t *testing.T) {
	d := day(2025, 1, 15)
	sessions := SleepSessions([]model.Activity{sleepAt(d.Add(10*time.Hour), -45)}, d)

	assert.Empty(t, sessions)
}

func TestSleepSessionsMixedZoneRecord(t *testing.T) {
	kst := time.FixedZone("UTC+9", 9*60*60)
	d := time.Date(2025, 1, 15, 0, 0, 0, 0, kst)
	// 00:30 on the 15th in UTC+9, stored as 15:30 UTC the day before.
	at := time.Date(2025, 1, 14, 15, 30, 0, 0, time.UTC)

	sessions := SleepSessions([]model.Activity{sleepAt(at, 60)}, d)

	require.Len(t, sessions, 1)
	assert.Equal(t, 30, sessions[0].StartMinute)
	assert.Equal(t, 90, sessions[0].EndMinute)
}

func TestSessionTotalMatchesDayAggregate(t *testing.T) {
	d := day(2025, 1, 15)
	acts := []model.Activity{
		sleepAt(d.Add(9*time.Hour+30*time.Minute), 45),
		sleepAt(d.Add(13*time.Hour), 75),
		sleepAt(d.Add(20*time.Hour), 120), // ends 22:00, same day
	}

	sessions := SleepSessions(acts, d)
	agg := AggregateSleepDuration(acts, RangeFor(PeriodDaily, d))

	require.Len(t, agg, 1)
	assert.Equal(t, agg[0].Minutes, TotalMinutes(sessions))
}
