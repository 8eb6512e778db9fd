package models

import "time"

// SavedRiver представляет реку, сохраненную пользователем для быстрого
// доступа к условиям ловли
type SavedRiver struct {
	CreatedAt  time.Time `json:"created_at"`
	UserID     string    `json:"user_id"`
	RiverName  string    `json:"river_name"`
	USGSSiteID string    `json:"usgs_site_id,omitempty"` // id гидропоста USGS
	Notes      string    `json:"notes,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	ID         int64     `json:"id"`
}
