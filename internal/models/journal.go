package models

import "time"

// JournalEntry представляет запись журнала рыбалки на сервере.
// Поля повторяют форму записи: где ловили, на что, что поймали.
type JournalEntry struct {
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
	Title           string    `json:"title"`
	Content         string    `json:"content"`
	LocationName    string    `json:"location_name,omitempty"`
	RiverName       string    `json:"river_name,omitempty"`
	WaterConditions string    `json:"water_conditions,omitempty"`
	Weather         string    `json:"weather,omitempty"`
	Wind            string    `json:"wind,omitempty"`
	FliesUsed       string    `json:"flies_used,omitempty"`
	Species         string    `json:"species,omitempty"`
	TripDate        string    `json:"trip_date,omitempty"` // YYYY-MM-DD
	UserID          string    `json:"user_id"`
	Author          string    `json:"author,omitempty"`     // имя автора, только в публичной ленте
	ClientRef       string    `json:"client_ref,omitempty"` // идемпотентный ключ offline-клиента
	Photos          []string  `json:"photos,omitempty"`
	Latitude        *float64  `json:"latitude,omitempty"`
	Longitude       *float64  `json:"longitude,omitempty"`
	Temperature     *float64  `json:"temperature,omitempty"`
	ID              int64     `json:"id"`
	FishCaught      int       `json:"fish_caught"`
	IsPublic        bool      `json:"is_public"`
}
