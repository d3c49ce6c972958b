// Package demo synthesizes a 30-day activity history for demo mode. The
// output is a pure function of the local date: "randomness" comes from an
// index-based hash rather than a PRNG, so repeated generation on the same
// day is byte-identical, IDs included. Demo mode swaps this payload in for
// backend data without touching any other code path.
package demo

import (
	"fmt"
	"sort"
	"time"

	"nestlog/internal/model"
)

const (
	demoFamilyID = 0
	demoDeviceID = "demo-device"
)

var foods = []string{
	"rice porridge", "banana puree", "sweet potato", "apple puree",
	"pumpkin soup", "oatmeal",
}

var memoTexts = []string{
	"First time trying sweet potato, loved it!",
	"A bit fussy this afternoon, maybe teething.",
	"Slept through the night without waking up.",
	"Grandma visited today, lots of smiles.",
}

var presetNames = []string{"Vitamin D", "Iron"}

// hashAt is the deterministic stand-in for randomness. Every decision draws
// from it with a distinct slot so no two choices on a day share entropy.
func hashAt(dayIndex, slot int) int {
	return (dayIndex*7 + slot*13 + 37) % 100
}

// Generate produces the demo payload for the current local date.
func Generate() model.DemoData {
	return GenerateAt(time.Now())
}

// GenerateAt produces the demo payload as of the local midnight of now:
// 30 days of meals, drinks, sleep sessions, diaper changes, supplements and
// occasional memos, plus a baby profile and two supplement presets. The
// activity list is sorted ascending by RecordedAt.
func GenerateAt(now time.Time) model.DemoData {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var activities []model.Activity
	for dayOffset := 29; dayOffset >= 0; dayOffset-- {
		b := &dayBuilder{
			dayIndex: 29 - dayOffset,
			day:      today.AddDate(0, 0, -dayOffset),
			out:      &activities,
		}
		b.meals()
		b.drinks()
		b.sleeps()
		b.diapers()
		b.supplement()
		b.memo()
	}

	sort.SliceStable(activities, func(i, j int) bool {
		return activities[i].RecordedAt.Before(activities[j].RecordedAt)
	})

	presets := make([]model.SupplementPreset, len(presetNames))
	for i, name := range presetNames {
		presets[i] = model.SupplementPreset{ID: i + 1, FamilyID: demoFamilyID, Name: name, CreatedAt: today}
	}

	return model.DemoData{
		Activities: activities,
		Baby: model.Baby{
			ID:       1,
			FamilyID: demoFamilyID,
			Name:     "Mia",
			Birthday: today.AddDate(0, -8, 0).Format("2006-01-02"),
		},
		SupplementPresets: presets,
	}
}

// dayBuilder emits one day's records, advancing a slot counter for every
// entropy draw and every record ID.
type dayBuilder struct {
	dayIndex int
	day      time.Time
	slot     int
	out      *[]model.Activity
}

func (b *dayBuilder) draw() int {
	h := hashAt(b.dayIndex, b.slot)
	b.slot++
	return h
}

func (b *dayBuilder) at(hour, min int) time.Time {
	return b.day.Add(time.Duration(hour)*time.Hour + time.Duration(min)*time.Minute)
}

// jitter shifts a scheduled time by -15..+15 minutes.
func (b *dayBuilder) jitter(t time.Time) time.Time {
	return t.Add(time.Duration(b.draw()%31-15) * time.Minute)
}

func (b *dayBuilder) emit(meta model.Meta, at time.Time) {
	id := fmt.Sprintf("demo-%02d-%02d", b.dayIndex, b.slot)
	b.slot++
	*b.out = append(*b.out, model.Activity{
		ID:         id,
		FamilyID:   demoFamilyID,
		DeviceID:   demoDeviceID,
		Type:       meta.ActivityType(),
		RecordedAt: at,
		Metadata:   model.NewMeta(meta),
		CreatedAt:  at,
		UpdatedAt:  at,
	})
}

func (b *dayBuilder) meals() {
	times := [][2]int{{8, 0}, {12, 0}, {17, 30}}
	count := 2 + b.draw()%2
	for i := 0; i < count; i++ {
		at := b.jitter(b.at(times[i][0], times[i][1]))
		food := foods[b.draw()%len(foods)]
		b.emit(model.SolidFoodMeta{FoodName: food}, at)
	}
}

func (b *dayBuilder) drinks() {
	times := [][2]int{{7, 0}, {10, 30}, {14, 0}, {16, 30}, {19, 30}}
	count := 4 + b.draw()%2
	for i := 0; i < count; i++ {
		at := b.jitter(b.at(times[i][0], times[i][1]))
		// First three feeds are formula, the rest water.
		if i < 3 {
			b.emit(model.DrinkMeta{DrinkType: model.DrinkFormula, AmountML: 100 + 10*(b.draw()%10)}, at)
		} else {
			b.emit(model.DrinkMeta{DrinkType: model.DrinkWater, AmountML: 30 + 10*(b.draw()%5)}, at)
		}
	}
}

func (b *dayBuilder) sleeps() {
	type span struct {
		hour, min    int
		baseMin, mod int
		note         string
	}
	// Two naps of 45-90 minutes and one overnight session of 600-630.
	spans := []span{
		{9, 30, 45, 46, "morning nap"},
		{13, 0, 45, 46, "afternoon nap"},
		{20, 0, 600, 31, "night sleep"},
	}
	for _, s := range spans {
		start := b.jitter(b.at(s.hour, s.min))
		end := start.Add(time.Duration(s.baseMin+b.draw()%s.mod) * time.Minute)
		b.emit(model.SleepMeta{Note: s.note, EndTime: &end}, start)
	}
}

func (b *dayBuilder) diapers() {
	times := [][2]int{{6, 30}, {9, 0}, {11, 30}, {14, 30}, {17, 0}, {20, 30}}
	amounts := []model.DiaperAmount{model.AmountLittle, model.AmountNormal, model.AmountMuch}
	count := 5 + b.draw()%2
	for i := 0; i < count; i++ {
		at := b.jitter(b.at(times[i][0], times[i][1]))
		typ := model.DiaperPee
		if b.draw()%10 < 3 {
			typ = model.DiaperPoo
		}
		b.emit(model.DiaperMeta{DiaperType: typ, Amount: amounts[b.draw()%len(amounts)]}, at)
	}
}

func (b *dayBuilder) supplement() {
	at := b.jitter(b.at(9, 0))
	names := []string{presetNames[0]}
	if b.draw()%2 == 1 {
		names = append(names, presetNames[1])
	}
	b.emit(model.SupplementMeta{SupplementNames: names}, at)
}

func (b *dayBuilder) memo() {
	if b.dayIndex%4 != 0 {
		return
	}
	at := b.jitter(b.at(21, 0))
	b.emit(model.MemoMeta{Content: memoTexts[(b.dayIndex/4)%len(memoTexts)]}, at)
}
