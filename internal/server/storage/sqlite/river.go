package sqlite

import (
	"context"
	"fmt"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
)

// SaveRiver stores a river for quick access and returns its id
func (s *Storage) SaveRiver(ctx context.Context, river *models.SavedRiver) (int64, error) {
	query := `
		INSERT INTO saved_rivers (user_id, river_name, usgs_site_id, latitude, longitude, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		river.UserID,
		river.RiverName,
		river.USGSSiteID,
		river.Latitude,
		river.Longitude,
		river.Notes,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to insert saved river: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get river id: %w", err)
	}
	return id, nil
}

// ListUserRivers retrieves the user's saved rivers, newest first
func (s *Storage) ListUserRivers(ctx context.Context, userID string) ([]models.SavedRiver, error) {
	query := `
		SELECT id, user_id, river_name, usgs_site_id, latitude, longitude, notes, created_at
		FROM saved_rivers
		WHERE user_id = ?
		ORDER BY created_at DESC, id DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list saved rivers: %w", err)
	}
	defer rows.Close()

	rivers := []models.SavedRiver{}
	for rows.Next() {
		var river models.SavedRiver

		err := rows.Scan(
			&river.ID,
			&river.UserID,
			&river.RiverName,
			&river.USGSSiteID,
			&river.Latitude,
			&river.Longitude,
			&river.Notes,
			&river.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan saved river: %w", err)
		}

		rivers = append(rivers, river)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate saved rivers: %w", err)
	}
	return rivers, nil
}

// DeleteRiver deletes a saved river owned by the user
func (s *Storage) DeleteRiver(ctx context.Context, userID string, riverID int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM saved_rivers WHERE id = ? AND user_id = ?`,
		riverID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete saved river: %w", err)
	}

	return requireAffected(result, storage.ErrRiverNotFound)
}
