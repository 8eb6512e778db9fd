package models

import "time"

// HatchReport представляет отчет сообщества о вылете насекомых на реке
type HatchReport struct {
	ReportedAt     time.Time `json:"reported_at"`
	UserID         string    `json:"user_id"`
	Author         string    `json:"author,omitempty"`
	RiverName      string    `json:"river_name"`
	LocationName   string    `json:"location_name,omitempty"`
	HatchType      string    `json:"hatch_type"`
	HatchIntensity string    `json:"hatch_intensity,omitempty"`
	FliesWorking   string    `json:"flies_working,omitempty"`
	WaterClarity   string    `json:"water_clarity,omitempty"`
	FlowRate       string    `json:"flow_rate,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Latitude       *float64  `json:"latitude,omitempty"`
	Longitude      *float64  `json:"longitude,omitempty"`
	WaterTemp      *float64  `json:"water_temp,omitempty"`
	ID             int64     `json:"id"`
}
