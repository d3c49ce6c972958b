package stats

import (
	"testing"
	"time"

	"nestlog/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func drinkAt(at time.Time, dt model.DrinkType, ml int) model.Activity {
	return model.Activity{
		ID: "d", Type: model.TypeDrink, RecordedAt: at,
		Metadata: model.NewMeta(model.DrinkMeta{DrinkType: dt, AmountML: ml}),
	}
}

func sleepAt(at time.Time, minutes int) model.Activity {
	end := at.Add(time.Duration(minutes) * time.Minute)
	return model.Activity{
		ID: "s", Type: model.TypeSleep, RecordedAt: at,
		Metadata: model.NewMeta(model.SleepMeta{EndTime: &end}),
	}
}

func memoAt(at time.Time) model.Activity {
	return model.Activity{
		ID: "m", Type: model.TypeMemo, RecordedAt: at,
		Metadata: model.NewMeta(model.MemoMeta{Content: "note"}),
	}
}

func TestDayCoverageOnEmptyInput(t *testing.T) {
	cases := []struct {
		period Period
		days   int
	}{
		{PeriodDaily, 1},
		{PeriodWeekly, 7},
		{PeriodMonthly, 30},
	}
	for _, tc := range cases {
		r := RangeFor(tc.period, day(2025, 6, 15))

		counts := AggregateCounts(nil, r)
		intake := AggregateDrinkIntake(nil, r)
		sleep := AggregateSleepDuration(nil, r)

		require.Len(t, counts, tc.days, "%s counts", tc.period)
		require.Len(t, intake, tc.days, "%s intake", tc.period)
		require.Len(t, sleep, tc.days, "%s sleep", tc.period)
		for i := range counts {
			assert.Zero(t, counts[i].Total)
			assert.Zero(t, intake[i].Total)
			assert.Zero(t, sleep[i].Minutes)
		}
	}
}

func TestEntriesAreInDayOrder(t *testing.T) {
	r := RangeFor(PeriodWeekly, day(2025, 6, 15))
	counts := AggregateCounts(nil, r)

	require.Len(t, counts, 7)
	assert.Equal(t, "2025-06-09", counts[0].Date)
	assert.Equal(t, "2025-06-15", counts[6].Date)
	for i := 1; i < len(counts); i++ {
		assert.Less(t, counts[i-1].Date, counts[i].Date)
	}
}

func TestClosedIntervalInclusion(t *testing.T) {
	r := RangeFor(PeriodDaily, day(2025, 6, 15))
	atEnd := memoAt(r.End)
	beforeStart := memoAt(r.Start.Add(-time.Millisecond))

	counts := AggregateCounts([]model.Activity{atEnd, beforeStart}, r)

	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Total)
	assert.Equal(t, 1, counts[0].Counts[model.TypeMemo])
}

func TestCountsIncludeEveryType(t *testing.T) {
	at := day(2025, 6, 15).Add(10 * time.Hour)
	r := RangeFor(PeriodDaily, at)
	acts := []model.Activity{
		drinkAt(at, model.DrinkFormula, 100),
		sleepAt(at, 60),
		memoAt(at),
		{Type: model.TypeDiaper, RecordedAt: at, Metadata: model.NewMeta(model.DiaperMeta{DiaperType: model.DiaperPee, Amount: model.AmountNormal})},
		{Type: model.TypeSolidFood, RecordedAt: at, Metadata: model.NewMeta(model.SolidFoodMeta{FoodName: "banana puree"})},
		{Type: model.TypeSupplement, RecordedAt: at, Metadata: model.NewMeta(model.SupplementMeta{SupplementNames: []string{"Vitamin D"}})},
	}

	counts := AggregateCounts(acts, r)

	require.Len(t, counts, 1)
	assert.Equal(t, 6, counts[0].Total)
	for _, typ := range []model.ActivityType{
		model.TypeDrink, model.TypeSleep, model.TypeMemo,
		model.TypeDiaper, model.TypeSolidFood, model.TypeSupplement,
	} {
		assert.Equal(t, 1, counts[0].Counts[typ], "type %s", typ)
	}
}

func TestDrinkIntakeIgnoresOtherTypes(t *testing.T) {
	at := day(2025, 1, 15).Add(9 * time.Hour)
	r := RangeFor(PeriodDaily, at)
	acts := []model.Activity{
		drinkAt(at, model.DrinkFormula, 100),
		drinkAt(at.Add(time.Hour), model.DrinkFormula, 150),
		drinkAt(at.Add(2*time.Hour), model.DrinkWater, 50),
		sleepAt(at, 60),
		memoAt(at),
	}

	intake := AggregateDrinkIntake(acts, r)

	require.Len(t, intake, 1)
	assert.Equal(t, 250, intake[0].Intakes[model.DrinkFormula])
	assert.Equal(t, 50, intake[0].Intakes[model.DrinkWater])
	assert.Equal(t, 300, intake[0].Total)
}

func TestSleepDurationScenario(t *testing.T) {
	// 21:00 -> 23:30 on 2025-01-15 is 150 minutes.
	start := time.Date(2025, 1, 15, 21, 0, 0, 0, time.Local)
	r := RangeFor(PeriodDaily, start)

	sleep := AggregateSleepDuration([]model.Activity{sleepAt(start, 150)}, r)

	require.Len(t, sleep, 1)
	assert.Equal(t, 150, sleep[0].Minutes)
}

func TestSleepIgnoresEndlessAndNonSleep(t *testing.T) {
	at := day(2025, 1, 15).Add(13 * time.Hour)
	r := RangeFor(PeriodDaily, at)
	endless := model.Activity{
		Type: model.TypeSleep, RecordedAt: at,
		Metadata: model.NewMeta(model.SleepMeta{Note: "still sleeping"}),
	}

	sleep := AggregateSleepDuration([]model.Activity{endless, drinkAt(at, model.DrinkMilk, 80), memoAt(at)}, r)
	counts := AggregateCounts([]model.Activity{endless}, r)

	require.Len(t, sleep, 1)
	assert.Zero(t, sleep[0].Minutes)
	// The endless session still counts as an activity.
	assert.Equal(t, 1, counts[0].Counts[model.TypeSleep])
}

func TestMalformedSleepClampsToZero(t *testing.T) {
	at := day(2025, 1, 15).Add(13 * time.Hour)
	r := RangeFor(PeriodDaily, at)

	sleep := AggregateSleepDuration([]model.Activity{sleepAt(at, -30), sleepAt(at, 45)}, r)

	require.Len(t, sleep, 1)
	assert.Equal(t, 45, sleep[0].Minutes)
}

func TestMidnightCrossingSleepGoesToStartDay(t *testing.T) {
	start := time.Date(2025, 1, 15, 23, 0, 0, 0, time.Local)
	r := RangeFor(PeriodWeekly, start)

	sleep := AggregateSleepDuration([]model.Activity{sleepAt(start, 180)}, r)

	byDate := map[string]int{}
	for _, d := range sleep {
		byDate[d.Date] = d.Minutes
	}
	assert.Equal(t, 180, byDate["2025-01-15"])
	assert.Zero(t, byDate["2025-01-16"])
}

func TestSumConsistency(t *testing.T) {
	base := day(2025, 6, 9)
	r := RangeFor(PeriodWeekly, base)
	var acts []model.Activity
	for i := 0; i < 7; i++ {
		at := base.AddDate(0, 0, i).Add(8 * time.Hour)
		acts = append(acts,
			drinkAt(at, model.DrinkFormula, 100+10*i),
			drinkAt(at.Add(time.Hour), model.DrinkWater, 40),
			sleepAt(at.Add(2*time.Hour), 30+i),
			memoAt(at),
		)
	}

	counts := AggregateCounts(acts, r)
	intake := AggregateDrinkIntake(acts, r)

	for i := range counts {
		sum := 0
		for _, n := range counts[i].Counts {
			sum += n
		}
		assert.Equal(t, counts[i].Total, sum, "counts day %s", counts[i].Date)

		mlSum := 0
		for _, ml := range intake[i].Intakes {
			mlSum += ml
		}
		assert.Equal(t, intake[i].Total, mlSum, "intake day %s", intake[i].Date)
	}
}

func TestMixedZoneRecordsStayInRange(t *testing.T) {
	kst := time.FixedZone("UTC+9", 9*60*60)
	r := RangeFor(PeriodDaily, time.Date(2025, 6, 15, 12, 0, 0, 0, kst))
	// 16:00 UTC on the 14th is 01:00 on the 15th in UTC+9: inside the range,
	// but a different calendar day in its own zone.
	at := time.Date(2025, 6, 14, 16, 0, 0, 0, time.UTC)
	require.True(t, r.Contains(at))

	counts := AggregateCounts([]model.Activity{memoAt(at)}, r)
	intake := AggregateDrinkIntake([]model.Activity{drinkAt(at, model.DrinkWater, 60)}, r)
	sleep := AggregateSleepDuration([]model.Activity{sleepAt(at, 90)}, r)

	require.Len(t, counts, 1)
	assert.Equal(t, 1, counts[0].Total)
	assert.Equal(t, 60, intake[0].Total)
	assert.Equal(t, 90, sleep[0].Minutes)
}

func TestMixedZoneBucketsByRangeDay(t *testing.T) {
	kst := time.FixedZone("UTC+9", 9*60*60)
	r := RangeFor(PeriodWeekly, time.Date(2025, 6, 15, 0, 0, 0, 0, kst))
	at := time.Date(2025, 6, 14, 16, 0, 0, 0, time.UTC)

	counts := AggregateCounts([]model.Activity{memoAt(at)}, r)

	byDate := map[string]int{}
	for _, d := range counts {
		byDate[d.Date] = d.Total
	}
	assert.Equal(t, 1, byDate["2025-06-15"])
	assert.Zero(t, byDate["2025-06-14"])
}

func TestOutOfRangeDropsNotClamps(t *testing.T) {
	r := RangeFor(PeriodWeekly, day(2025, 6, 15))
	dayBefore := memoAt(r.Start.Add(-2 * time.Hour))

	counts := AggregateCounts([]model.Activity{dayBefore}, r)

	for _, d := range counts {
		assert.Zero(t, d.Total, "day %s", d.Date)
	}
}
