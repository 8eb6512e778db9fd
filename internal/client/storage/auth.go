package storage

import "context"

//go:generate moq -out auth_mock.go . AuthStorage

// Session represents a saved login session
type Session struct {
	Email        string `json:"email"`
	UserID       string `json:"user_id"`
	Name         string `json:"name"`
	Subscription string `json:"subscription"`
	AccessToken  string `json:"access_token"`
	ExpiresAt    int64  `json:"expires_at"` // unix seconds
}

// AuthStorage defines interface for storing the login session on client
type AuthStorage interface {
	// SaveSession stores the session after a successful login
	SaveSession(ctx context.Context, session *Session) error

	// GetSession retrieves the stored session
	// Returns ErrSessionNotFound if not logged in
	GetSession(ctx context.Context) (*Session, error)

	// DeleteSession removes the stored session (logout)
	DeleteSession(ctx context.Context) error
}
