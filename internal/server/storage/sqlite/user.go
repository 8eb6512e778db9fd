package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
)

// CreateUser creates a new user in the storage
func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, name, subscription_status, home_river, home_lat, home_lon, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Subscription,
		user.HomeRiver,
		user.HomeLat,
		user.HomeLon,
		user.CreatedAt,
	)

	if err != nil {
		// Проверяем на duplicate email
		if strings.Contains(err.Error(), "UNIQUE constraint failed: users.email") {
			return storage.ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}

	return nil
}

// GetUserByEmail retrieves user by email
func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, subscription_status, home_river, home_lat, home_lon, created_at
		FROM users
		WHERE email = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, email))
}

// GetUserByID retrieves user by ID
func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	query := `
		SELECT id, email, password_hash, name, subscription_status, home_river, home_lat, home_lon, created_at
		FROM users
		WHERE id = ?
	`
	return s.scanUser(s.db.QueryRowContext(ctx, query, userID))
}

func (s *Storage) scanUser(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	var homeLat, homeLon sql.NullFloat64

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Subscription,
		&user.HomeRiver,
		&homeLat,
		&homeLon,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if homeLat.Valid {
		user.HomeLat = &homeLat.Float64
	}
	if homeLon.Valid {
		user.HomeLon = &homeLon.Float64
	}

	return user, nil
}

// UpdateProfile updates name, home river and home coordinates
func (s *Storage) UpdateProfile(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET name = ?, home_river = ?, home_lat = ?, home_lon = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		user.Name,
		user.HomeRiver,
		user.HomeLat,
		user.HomeLon,
		user.ID,
	)

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return requireAffected(result, storage.ErrUserNotFound)
}

// UpdateSubscription switches the subscription tier
func (s *Storage) UpdateSubscription(ctx context.Context, userID, subscription string) error {
	query := `UPDATE users SET subscription_status = ? WHERE id = ?`

	result, err := s.db.ExecContext(ctx, query, subscription, userID)
	if err != nil {
		return fmt.Errorf("failed to update subscription: %w", err)
	}

	return requireAffected(result, storage.ErrUserNotFound)
}

// requireAffected возвращает notFound если UPDATE/DELETE не затронул ни одной строки
func requireAffected(result sql.Result, notFound error) error {
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return notFound
	}
	return nil
}
