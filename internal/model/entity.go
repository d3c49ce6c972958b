package model

import "time"

type Family struct {
	ID         int       `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"uniqueIndex;size:12" json:"code"`
	SecretHash string    `json:"-"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `json:"created_at"`
}

type Device struct {
	ID        string    `gorm:"primaryKey;size:40" json:"id"`
	FamilyID  int       `gorm:"index" json:"family_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Baby struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	FamilyID  int       `gorm:"uniqueIndex" json:"family_id"`
	Name      string    `json:"name"`
	Birthday  string    `gorm:"type:date" json:"birthday"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SupplementPreset struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	FamilyID  int       `gorm:"index" json:"family_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// Activity is the atomic fact record. RecordedAt is when the event happened
// (not when it was entered) and is the sole ordering and bucketing key.
type Activity struct {
	ID         string       `gorm:"primaryKey;size:40" json:"id"`
	FamilyID   int          `gorm:"index:idx_family_recorded,priority:1" json:"family_id"`
	DeviceID   string       `gorm:"size:40" json:"device_id"`
	Type       ActivityType `gorm:"size:16" json:"type"`
	RecordedAt time.Time    `gorm:"index:idx_family_recorded,priority:2" json:"recorded_at"`
	Memo       string       `json:"memo,omitempty"`
	Metadata   MetaField    `gorm:"type:json" json:"metadata"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

func (Family) TableName() string           { return "families" }
func (Device) TableName() string           { return "devices" }
func (Baby) TableName() string             { return "babies" }
func (SupplementPreset) TableName() string { return "supplement_presets" }
func (Activity) TableName() string         { return "activities" }

// Drink returns the drink payload when this is a drink record.
func (a *Activity) Drink() (DrinkMeta, bool) {
	m, ok := a.Metadata.Meta.(DrinkMeta)
	return m, ok
}

// Sleep returns the sleep payload when this is a sleep record.
func (a *Activity) Sleep() (SleepMeta, bool) {
	m, ok := a.Metadata.Meta.(SleepMeta)
	return m, ok
}
