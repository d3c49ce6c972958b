package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

type ActivityType string

const (
	TypeSolidFood  ActivityType = "solid_food"
	TypeDrink      ActivityType = "drink"
	TypeSupplement ActivityType = "supplement"
	TypeDiaper     ActivityType = "diaper"
	TypeSleep      ActivityType = "sleep"
	TypeMemo       ActivityType = "memo"
)

type DrinkType string

const (
	DrinkFormula DrinkType = "formula"
	DrinkMilk    DrinkType = "milk"
	DrinkWater   DrinkType = "water"
)

type DiaperType string

const (
	DiaperPee DiaperType = "pee"
	DiaperPoo DiaperType = "poo"
)

type DiaperAmount string

const (
	AmountLittle DiaperAmount = "little"
	AmountNormal DiaperAmount = "normal"
	AmountMuch   DiaperAmount = "much"
)

// Meta is the closed set of per-type activity payloads. The shape is fully
// determined by the activity type; decoding always dispatches on the type
// tag so callers never cast blindly.
type Meta interface {
	ActivityType() ActivityType
	isMeta()
}

type SolidFoodMeta struct {
	FoodName string `json:"food_name"`
}

type DrinkMeta struct {
	DrinkType DrinkType `json:"drink_type"`
	AmountML  int       `json:"amount_ml"`
}

type DiaperMeta struct {
	DiaperType DiaperType   `json:"diaper_type"`
	Amount     DiaperAmount `json:"amount"`
}

type SupplementMeta struct {
	SupplementNames []string `json:"supplement_names"`
}

// SleepMeta records a sleep session. The activity's RecordedAt is the sleep
// start; EndTime is nil while the session is still running.
type SleepMeta struct {
	Note    string     `json:"note,omitempty"`
	EndTime *time.Time `json:"end_time,omitempty"`
}

type MemoMeta struct {
	Content string `json:"content"`
}

func (SolidFoodMeta) ActivityType() ActivityType  { return TypeSolidFood }
func (DrinkMeta) ActivityType() ActivityType      { return TypeDrink }
func (DiaperMeta) ActivityType() ActivityType     { return TypeDiaper }
func (SupplementMeta) ActivityType() ActivityType { return TypeSupplement }
func (SleepMeta) ActivityType() ActivityType      { return TypeSleep }
func (MemoMeta) ActivityType() ActivityType       { return TypeMemo }

func (SolidFoodMeta) isMeta()  {}
func (DrinkMeta) isMeta()      {}
func (DiaperMeta) isMeta()     {}
func (SupplementMeta) isMeta() {}
func (SleepMeta) isMeta()      {}
func (MemoMeta) isMeta()       {}

// DecodeMeta unmarshals a raw payload into the concrete shape for t.
func DecodeMeta(t ActivityType, raw []byte) (Meta, error) {
	if len(raw) == 0 {
		raw = []byte("{}")
	}
	var m Meta
	switch t {
	case TypeSolidFood:
		m = &SolidFoodMeta{}
	case TypeDrink:
		m = &DrinkMeta{}
	case TypeDiaper:
		m = &DiaperMeta{}
	case TypeSupplement:
		m = &SupplementMeta{}
	case TypeSleep:
		m = &SleepMeta{}
	case TypeMemo:
		m = &MemoMeta{}
	default:
		return nil, fmt.Errorf("unknown activity type %q", t)
	}
	if err := json.Unmarshal(raw, m); err != nil {
		return nil, fmt.Errorf("decode %s metadata: %w", t, err)
	}
	return deref(m), nil
}

// deref converts the pointer used for unmarshaling back to the value form
// callers type-switch on.
func deref(m Meta) Meta {
	switch v := m.(type) {
	case *SolidFoodMeta:
		return *v
	case *DrinkMeta:
		return *v
	case *DiaperMeta:
		return *v
	case *SupplementMeta:
		return *v
	case *SleepMeta:
		return *v
	case *MemoMeta:
		return *v
	default:
		return m
	}
}

// MetaField carries a Meta value through JSON and the database. The stored
// form embeds a "type" tag next to the payload fields so the column is
// self-describing and can be decoded without the sibling Type column.
type MetaField struct {
	Meta
}

func NewMeta(m Meta) MetaField { return MetaField{Meta: m} }

func (f MetaField) MarshalJSON() ([]byte, error) {
	if f.Meta == nil {
		return []byte("null"), nil
	}
	raw, err := json.Marshal(f.Meta)
	if err != nil {
		return nil, err
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, err
	}
	tag, _ := json.Marshal(f.Meta.ActivityType())
	fields["type"] = tag
	return json.Marshal(fields)
}

func (f *MetaField) UnmarshalJSON(data []byte) error {
	if len(data) == 0 || string(data) == "null" {
		f.Meta = nil
		return nil
	}
	var probe struct {
		Type ActivityType `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("metadata type tag: %w", err)
	}
	m, err := DecodeMeta(probe.Type, data)
	if err != nil {
		return err
	}
	f.Meta = m
	return nil
}

func (f MetaField) Value() (driver.Value, error) {
	data, err := f.MarshalJSON()
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

func (f *MetaField) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		f.Meta = nil
		return nil
	case []byte:
		return f.UnmarshalJSON(v)
	case string:
		return f.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("scan metadata: unsupported type %T", src)
	}
}
