package model

import (
	"encoding/json"
	"time"
)

type CreateFamilyRequest struct {
	Name       string `json:"name" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
	DeviceName string `json:"device_name"`
}

type JoinFamilyRequest struct {
	Code       string `json:"code" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
	DeviceName string `json:"device_name"`
}

type AuthResponse struct {
	Token  string `json:"token"`
	Family Family `json:"family"`
	Device Device `json:"device"`
}

type ActivityRequest struct {
	Type       ActivityType    `json:"type" binding:"required"`
	RecordedAt time.Time       `json:"recorded_at"`
	Memo       string          `json:"memo"`
	Metadata   json.RawMessage `json:"metadata"`
}

type BabyRequest struct {
	Name     string `json:"name" binding:"required"`
	Birthday string `json:"birthday"`
}

type PresetRequest struct {
	Name string `json:"name" binding:"required"`
}

// DemoData is the demo-mode payload that stands in for backend data.
type DemoData struct {
	Activities        []Activity         `json:"activities"`
	Baby              Baby               `json:"baby"`
	SupplementPresets []SupplementPreset `json:"supplement_presets"`
}
