package api

import "time"

// HatchReportPayload представляет отчет о вылете насекомых от сообщества
type HatchReportPayload struct {
	RiverName      string   `json:"river_name"`
	LocationName   string   `json:"location_name,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	HatchType      string   `json:"hatch_type"`
	HatchIntensity string   `json:"hatch_intensity,omitempty"` // sparse | moderate | heavy | blanket
	FliesWorking   string   `json:"flies_working,omitempty"`
	WaterTemp      *float64 `json:"water_temp,omitempty"`
	WaterClarity   string   `json:"water_clarity,omitempty"`
	FlowRate       string   `json:"flow_rate,omitempty"`
	Notes          string   `json:"notes,omitempty"`
}

// HatchReport представляет сохраненный отчет
type HatchReport struct {
	ReportedAt time.Time `json:"reported_at"`
	HatchReportPayload
	ID     int64  `json:"id"`
	Author string `json:"author,omitempty"`
}

// CreateHatchResponse представляет ответ на создание отчета
type CreateHatchResponse struct {
	ReportID int64 `json:"report_id"`
}

// ListHatchResponse представляет ответ со списком отчетов
type ListHatchResponse struct {
	Reports []HatchReport `json:"reports"`
}
