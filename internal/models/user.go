package models

import "time"

// Subscription tiers. Free accounts are limited to a few journal
// entries per month, Pro accounts are unlimited.
const (
	SubscriptionFree = "free"
	SubscriptionPro  = "pro"
)

// User представляет пользователя в системе
type User struct {
	CreatedAt    time.Time `json:"created_at"`
	ID           string    `json:"id"`    // UUID пользователя
	Email        string    `json:"email"` // уникальный email
	PasswordHash string    `json:"-"`     // bcrypt хеш пароля, наружу не отдается
	Name         string    `json:"name"`
	Subscription string    `json:"subscription"` // free | pro
	HomeRiver    string    `json:"home_river,omitempty"`
	HomeLat      *float64  `json:"home_lat,omitempty"`
	HomeLon      *float64  `json:"home_lon,omitempty"`
}

// IsPro reports whether the user is on the paid tier.
func (u *User) IsPro() bool {
	return u.Subscription == SubscriptionPro
}
