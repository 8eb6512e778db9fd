package storage

import (
	"context"

	"github.com/iudanet/riffle/internal/models"
)

// RiverStorage defines interface for the user's saved rivers
type RiverStorage interface {
	// SaveRiver stores a river for quick access and returns its id
	SaveRiver(ctx context.Context, river *models.SavedRiver) (int64, error)

	// ListUserRivers retrieves the user's saved rivers, newest first.
	// Returns empty slice if none saved
	ListUserRivers(ctx context.Context, userID string) ([]models.SavedRiver, error)

	// DeleteRiver deletes a saved river owned by the user
	// Returns ErrRiverNotFound if river doesn't exist
	DeleteRiver(ctx context.Context, userID string, riverID int64) error
}
