package sqlite

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
)

// CreateReport inserts a hatch report and returns its id
func (s *Storage) CreateReport(ctx context.Context, report *models.HatchReport) (int64, error) {
	intensity := report.HatchIntensity
	if intensity == "" {
		intensity = "moderate"
	}

	query := `
		INSERT INTO hatch_reports (
			user_id, river_name, location_name, latitude, longitude, hatch_type,
			hatch_intensity, flies_working, water_temp, water_clarity, flow_rate, notes
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		report.UserID,
		report.RiverName,
		report.LocationName,
		report.Latitude,
		report.Longitude,
		report.HatchType,
		intensity,
		report.FliesWorking,
		report.WaterTemp,
		report.WaterClarity,
		report.FlowRate,
		report.Notes,
	)

	if err != nil {
		return 0, fmt.Errorf("failed to insert hatch report: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get report id: %w", err)
	}
	return id, nil
}

// ListReports retrieves reports matching the filter, newest first
func (s *Storage) ListReports(ctx context.Context, filter storage.HatchFilter) ([]models.HatchReport, error) {
	query := `
		SELECT h.id, h.user_id, h.river_name, h.location_name, h.latitude, h.longitude,
			h.hatch_type, h.hatch_intensity, h.flies_working, h.water_temp,
			h.water_clarity, h.flow_rate, h.notes, h.reported_at,
			u.name AS author
		FROM hatch_reports h
		JOIN users u ON h.user_id = u.id
	`

	var (
		conditions []string
		args       []any
	)

	if filter.RiverName != "" {
		conditions = append(conditions, "h.river_name LIKE ?")
		args = append(args, "%"+filter.RiverName+"%")
	}
	if filter.Days > 0 {
		conditions = append(conditions, "h.reported_at >= datetime('now', ? || ' days')")
		args = append(args, strconv.Itoa(-filter.Days))
	}

	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	query += " ORDER BY h.reported_at DESC LIMIT ? OFFSET ?"
	args = append(args, limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list hatch reports: %w", err)
	}
	defer rows.Close()

	reports := []models.HatchReport{}
	for rows.Next() {
		var (
			report             models.HatchReport
			lat, lon, waterTmp *float64
		)

		err := rows.Scan(
			&report.ID,
			&report.UserID,
			&report.RiverName,
			&report.LocationName,
			&lat,
			&lon,
			&report.HatchType,
			&report.HatchIntensity,
			&report.FliesWorking,
			&waterTmp,
			&report.WaterClarity,
			&report.FlowRate,
			&report.Notes,
			&report.ReportedAt,
			&report.Author,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan hatch report: %w", err)
		}

		report.Latitude = lat
		report.Longitude = lon
		report.WaterTemp = waterTmp
		reports = append(reports, report)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate hatch reports: %w", err)
	}
	return reports, nil
}
