package model

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetaFieldRoundTrip(t *testing.T) {
	end := time.Date(2025, 1, 15, 23, 30, 0, 0, time.UTC)
	cases := []struct {
		name string
		meta Meta
	}{
		{"solid_food", SolidFoodMeta{FoodName: "banana puree"}},
		{"drink", DrinkMeta{DrinkType: DrinkFormula, AmountML: 120}},
		{"diaper", DiaperMeta{DiaperType: DiaperPoo, Amount: AmountMuch}},
		{"supplement", SupplementMeta{SupplementNames: []string{"Vitamin D", "Iron"}}},
		{"sleep", SleepMeta{Note: "nap", EndTime: &end}},
		{"memo", MemoMeta{Content: "first steps!"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := json.Marshal(NewMeta(tc.meta))
			require.NoError(t, err)
			assert.Contains(t, string(data), `"type":"`+tc.name+`"`)

			var decoded MetaField
			require.NoError(t, json.Unmarshal(data, &decoded))
			assert.Equal(t, tc.meta, decoded.Meta)
		})
	}
}

func TestDecodeMetaDispatchesOnType(t *testing.T) {
	m, err := DecodeMeta(TypeDrink, []byte(`{"drink_type":"water","amount_ml":50}`))
	require.NoError(t, err)

	drink, ok := m.(DrinkMeta)
	require.True(t, ok)
	assert.Equal(t, DrinkWater, drink.DrinkType)
	assert.Equal(t, 50, drink.AmountML)
}

func TestDecodeMetaUnknownType(t *testing.T) {
	_, err := DecodeMeta("bath", []byte(`{}`))
	assert.Error(t, err)
}

func TestDecodeMetaEmptyPayload(t *testing.T) {
	m, err := DecodeMeta(TypeSleep, nil)
	require.NoError(t, err)

	sleep, ok := m.(SleepMeta)
	require.True(t, ok)
	assert.Nil(t, sleep.EndTime)
}

func TestMetaFieldSQLValueAndScan(t *testing.T) {
	v, err := NewMeta(DrinkMeta{DrinkType: DrinkMilk, AmountML: 90}).Value()
	require.NoError(t, err)

	var f MetaField
	require.NoError(t, f.Scan([]byte(v.(string))))

	drink, ok := f.Meta.(DrinkMeta)
	require.True(t, ok)
	assert.Equal(t, 90, drink.AmountML)
}

func TestMetaFieldScanNil(t *testing.T) {
	var f MetaField
	require.NoError(t, f.Scan(nil))
	assert.Nil(t, f.Meta)
}

func TestActivityAccessors(t *testing.T) {
	act := Activity{Type: TypeDrink, Metadata: NewMeta(DrinkMeta{DrinkType: DrinkFormula, AmountML: 110})}

	drink, ok := act.Drink()
	require.True(t, ok)
	assert.Equal(t, 110, drink.AmountML)

	_, ok = act.Sleep()
	assert.False(t, ok)
}
