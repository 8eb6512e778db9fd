package api

import "time"

// SaveRiverRequest представляет запрос на сохранение реки
type SaveRiverRequest struct {
	RiverName  string   `json:"river_name"`
	USGSSiteID string   `json:"usgs_site_id,omitempty"`
	Notes      string   `json:"notes,omitempty"`
	Latitude   *float64 `json:"latitude,omitempty"`
	Longitude  *float64 `json:"longitude,omitempty"`
}

// SavedRiver представляет сохраненную реку пользователя
type SavedRiver struct {
	CreatedAt  time.Time `json:"created_at"`
	RiverName  string    `json:"river_name"`
	USGSSiteID string    `json:"usgs_site_id,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	Latitude   *float64  `json:"latitude,omitempty"`
	Longitude  *float64  `json:"longitude,omitempty"`
	ID         int64     `json:"id"`
}

// SaveRiverResponse представляет ответ на сохранение реки
type SaveRiverResponse struct {
	RiverID int64 `json:"river_id"`
}

// ListRiversResponse представляет ответ со списком сохраненных рек
type ListRiversResponse struct {
	Rivers []SavedRiver `json:"rivers"`
}

// RiverSite представляет гидропост USGS, найденный рядом с точкой
type RiverSite struct {
	SiteID string  `json:"site_id"`
	Name   string  `json:"name"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// SearchSitesResponse представляет ответ поиска гидропостов
type SearchSitesResponse struct {
	Sites []RiverSite `json:"sites"`
}
