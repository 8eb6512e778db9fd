package api

import "time"

// EntryPayload представляет полезную нагрузку записи журнала.
// Это же тело отправляется при досылке отложенных (offline) записей,
// поэтому client_ref передается вместе с данными: сервер дедуплицирует
// повторные отправки одной и той же локальной записи.
type EntryPayload struct {
	Title           string   `json:"title"`
	Content         string   `json:"content,omitempty"`
	LocationName    string   `json:"location_name,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	RiverName       string   `json:"river_name,omitempty"`
	WaterConditions string   `json:"water_conditions,omitempty"`
	Weather         string   `json:"weather,omitempty"`
	Temperature     *float64 `json:"temperature,omitempty"`
	Wind            string   `json:"wind,omitempty"`
	FliesUsed       string   `json:"flies_used,omitempty"`
	Species         string   `json:"species,omitempty"`
	TripDate        string   `json:"trip_date,omitempty"` // YYYY-MM-DD
	Photos          []string `json:"photos,omitempty"`
	ClientRef       string   `json:"client_ref,omitempty"` // идемпотентный ключ клиента (UUID)
	FishCaught      int      `json:"fish_caught"`
	IsPublic        bool     `json:"is_public"`
}

// Entry представляет запись журнала, сохраненную на сервере
type Entry struct {
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	EntryPayload
	ID     int64  `json:"id"`
	UserID string `json:"user_id"`
	Author string `json:"author,omitempty"` // имя автора, только в публичной ленте
}

// CreateEntryResponse представляет ответ на создание записи
type CreateEntryResponse struct {
	EntryID   int64 `json:"entry_id"`
	Duplicate bool  `json:"duplicate,omitempty"` // true если client_ref уже был принят ранее
}

// ListEntriesResponse представляет ответ со списком записей
type ListEntriesResponse struct {
	Entries []Entry `json:"entries"`
}
