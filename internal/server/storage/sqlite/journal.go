package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
)

const journalColumns = `
	id, user_id, client_ref, title, content, location_name, latitude, longitude,
	river_name, water_conditions, weather, temperature, wind, flies_used,
	fish_caught, species, is_public, photos, trip_date, created_at, updated_at
`

// CreateEntry inserts a journal entry, deduplicating on client_ref
func (s *Storage) CreateEntry(ctx context.Context, entry *models.JournalEntry) (int64, bool, error) {
	// Повторная отправка той же offline записи возвращает существующий id
	if entry.ClientRef != "" {
		if id, ok, err := s.entryIDByClientRef(ctx, entry.UserID, entry.ClientRef); err != nil {
			return 0, false, err
		} else if ok {
			return id, true, nil
		}
	}

	photos, err := marshalPhotos(entry.Photos)
	if err != nil {
		return 0, false, err
	}

	tripDate := entry.TripDate
	if tripDate == "" {
		tripDate = time.Now().Format("2006-01-02")
	}

	query := `
		INSERT INTO journal_entries (
			user_id, client_ref, title, content, location_name, latitude, longitude,
			river_name, water_conditions, weather, temperature, wind, flies_used,
			fish_caught, species, is_public, photos, trip_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		entry.UserID,
		nullString(entry.ClientRef),
		entry.Title,
		entry.Content,
		entry.LocationName,
		entry.Latitude,
		entry.Longitude,
		entry.RiverName,
		entry.WaterConditions,
		entry.Weather,
		entry.Temperature,
		entry.Wind,
		entry.FliesUsed,
		entry.FishCaught,
		entry.Species,
		entry.IsPublic,
		photos,
		tripDate,
	)

	if err != nil {
		// Гонка двух одновременных отправок одного client_ref: уникальный
		// индекс пропускает только одну, второй запрос получает существующий id
		if entry.ClientRef != "" && strings.Contains(err.Error(), "UNIQUE constraint failed") {
			if id, ok, refErr := s.entryIDByClientRef(ctx, entry.UserID, entry.ClientRef); refErr == nil && ok {
				return id, true, nil
			}
		}
		return 0, false, fmt.Errorf("failed to insert entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, false, fmt.Errorf("failed to get entry id: %w", err)
	}

	return id, false, nil
}

// FindEntryByClientRef reports whether an entry with this idempotency key exists
func (s *Storage) FindEntryByClientRef(ctx context.Context, userID, clientRef string) (int64, bool, error) {
	return s.entryIDByClientRef(ctx, userID, clientRef)
}

func (s *Storage) entryIDByClientRef(ctx context.Context, userID, clientRef string) (int64, bool, error) {
	var id int64
	err := s.db.QueryRowContext(ctx,
		`SELECT id FROM journal_entries WHERE user_id = ? AND client_ref = ?`,
		userID, clientRef,
	).Scan(&id)

	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up client_ref: %w", err)
	}
	return id, true, nil
}

// GetEntry retrieves a single entry owned by the user
func (s *Storage) GetEntry(ctx context.Context, userID string, entryID int64) (*models.JournalEntry, error) {
	query := `SELECT ` + journalColumns + ` FROM journal_entries WHERE id = ? AND user_id = ?`

	rows, err := s.db.QueryContext(ctx, query, entryID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get entry: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("failed to get entry: %w", err)
		}
		return nil, storage.ErrEntryNotFound
	}

	entry, err := scanEntry(rows, false)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListUserEntries retrieves the user's entries ordered by trip date descending
func (s *Storage) ListUserEntries(ctx context.Context, userID string, limit, offset int) ([]models.JournalEntry, error) {
	query := `
		SELECT ` + journalColumns + `
		FROM journal_entries
		WHERE user_id = ?
		ORDER BY trip_date DESC, created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows, false)
}

// ListPublicEntries retrieves public entries of all users with author names
func (s *Storage) ListPublicEntries(ctx context.Context, limit, offset int) ([]models.JournalEntry, error) {
	query := `
		SELECT j.id, j.user_id, j.client_ref, j.title, j.content, j.location_name,
			j.latitude, j.longitude, j.river_name, j.water_conditions, j.weather,
			j.temperature, j.wind, j.flies_used, j.fish_caught, j.species,
			j.is_public, j.photos, j.trip_date, j.created_at, j.updated_at,
			u.name AS author
		FROM journal_entries j
		JOIN users u ON j.user_id = u.id
		WHERE j.is_public = 1
		ORDER BY j.trip_date DESC
		LIMIT ? OFFSET ?
	`

	rows, err := s.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list public entries: %w", err)
	}
	defer rows.Close()

	return collectEntries(rows, true)
}

// UpdateEntry replaces the mutable fields of an entry owned by the user
func (s *Storage) UpdateEntry(ctx context.Context, userID string, entryID int64, entry *models.JournalEntry) error {
	photos, err := marshalPhotos(entry.Photos)
	if err != nil {
		return err
	}

	// Пустая trip_date в запросе не затирает сохраненную дату поездки
	query := `
		UPDATE journal_entries SET
			title = ?, content = ?, location_name = ?, latitude = ?, longitude = ?,
			river_name = ?, water_conditions = ?, weather = ?, temperature = ?,
			wind = ?, flies_used = ?, fish_caught = ?, species = ?, is_public = ?,
			photos = ?, trip_date = COALESCE(NULLIF(?, ''), trip_date),
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ? AND user_id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		entry.Title,
		entry.Content,
		entry.LocationName,
		entry.Latitude,
		entry.Longitude,
		entry.RiverName,
		entry.WaterConditions,
		entry.Weather,
		entry.Temperature,
		entry.Wind,
		entry.FliesUsed,
		entry.FishCaught,
		entry.Species,
		entry.IsPublic,
		photos,
		entry.TripDate,
		entryID,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}

	return requireAffected(result, storage.ErrEntryNotFound)
}

// DeleteEntry deletes an entry owned by the user
func (s *Storage) DeleteEntry(ctx context.Context, userID string, entryID int64) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM journal_entries WHERE id = ? AND user_id = ?`,
		entryID, userID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	return requireAffected(result, storage.ErrEntryNotFound)
}

// CountEntriesSince counts the user's entries created at or after the given moment
func (s *Storage) CountEntriesSince(ctx context.Context, userID string, since time.Time) (int, error) {
	var count int
	// created_at пишется через CURRENT_TIMESTAMP, сравниваем в том же текстовом формате
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM journal_entries WHERE user_id = ? AND created_at >= ?`,
		userID, since.UTC().Format("2006-01-02 15:04:05"),
	).Scan(&count)

	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}

func collectEntries(rows *sql.Rows, withAuthor bool) ([]models.JournalEntry, error) {
	entries := []models.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows, withAuthor)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate entries: %w", err)
	}
	return entries, nil
}

func scanEntry(rows *sql.Rows, withAuthor bool) (*models.JournalEntry, error) {
	entry := &models.JournalEntry{}
	var (
		clientRef      sql.NullString
		lat, lon, temp sql.NullFloat64
		tripDate       sql.NullString
		photos         string
	)

	dest := []any{
		&entry.ID,
		&entry.UserID,
		&clientRef,
		&entry.Title,
		&entry.Content,
		&entry.LocationName,
		&lat,
		&lon,
		&entry.RiverName,
		&entry.WaterConditions,
		&entry.Weather,
		&temp,
		&entry.Wind,
		&entry.FliesUsed,
		&entry.FishCaught,
		&entry.Species,
		&entry.IsPublic,
		&photos,
		&tripDate,
		&entry.CreatedAt,
		&entry.UpdatedAt,
	}
	if withAuthor {
		dest = append(dest, &entry.Author)
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, fmt.Errorf("failed to scan entry: %w", err)
	}

	entry.ClientRef = clientRef.String
	if lat.Valid {
		entry.Latitude = &lat.Float64
	}
	if lon.Valid {
		entry.Longitude = &lon.Float64
	}
	if temp.Valid {
		entry.Temperature = &temp.Float64
	}
	if tripDate.Valid {
		// DATE колонка может вернуться с временной частью
		entry.TripDate = strings.SplitN(tripDate.String, "T", 2)[0]
	}

	if err := json.Unmarshal([]byte(photos), &entry.Photos); err != nil {
		return nil, fmt.Errorf("failed to decode photos: %w", err)
	}

	return entry, nil
}

func marshalPhotos(photos []string) (string, error) {
	if photos == nil {
		photos = []string{}
	}
	data, err := json.Marshal(photos)
	if err != nil {
		return "", fmt.Errorf("failed to encode photos: %w", err)
	}
	return string(data), nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
