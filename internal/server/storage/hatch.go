package storage

import (
	"context"

	"github.com/iudanet/riffle/internal/models"
)

// HatchFilter narrows a hatch report listing. Zero values mean "no filter".
type HatchFilter struct {
	RiverName string // substring match on river name
	Days      int    // only reports from the last N days
	Limit     int
	Offset    int
}

// HatchStorage defines interface for community hatch report persistence
type HatchStorage interface {
	// CreateReport inserts a hatch report and returns its id
	CreateReport(ctx context.Context, report *models.HatchReport) (int64, error)

	// ListReports retrieves reports matching the filter ordered by
	// reported_at descending, reporter name attached.
	// Returns empty slice if nothing matches
	ListReports(ctx context.Context, filter HatchFilter) ([]models.HatchReport, error)
}
