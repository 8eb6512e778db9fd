package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
)

func createTestUser(t *testing.T, s *Storage, email string) *models.User {
	t.Helper()

	user := newTestUser(email)
	require.NoError(t, s.CreateUser(context.Background(), user))
	return user
}

func TestCreateEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	temp := 58.5
	id, duplicate, err := s.CreateEntry(ctx, &models.JournalEntry{
		UserID:      user.ID,
		Title:       "Evening caddis hatch",
		Content:     "Fish rising everywhere below the bridge",
		RiverName:   "Madison",
		Temperature: &temp,
		FishCaught:  4,
		Species:     "brown trout",
		TripDate:    "2026-08-14",
		Photos:      []string{"photo1.jpg"},
	})
	require.NoError(t, err)
	assert.False(t, duplicate)
	assert.Positive(t, id)

	got, err := s.GetEntry(ctx, user.ID, id)
	require.NoError(t, err)
	assert.Equal(t, "Evening caddis hatch", got.Title)
	assert.Equal(t, "2026-08-14", got.TripDate)
	assert.Equal(t, 4, got.FishCaught)
	assert.Equal(t, []string{"photo1.jpg"}, got.Photos)
	require.NotNil(t, got.Temperature)
	assert.InDelta(t, 58.5, *got.Temperature, 0.001)
}

func TestCreateEntry_ClientRefDeduplicates(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	ref := uuid.New().String()
	entry := &models.JournalEntry{
		UserID:    user.ID,
		Title:     "Queued offline",
		ClientRef: ref,
	}

	first, duplicate, err := s.CreateEntry(ctx, entry)
	require.NoError(t, err)
	assert.False(t, duplicate)

	// Повторная отправка той же записи не создает вторую строку
	second, duplicate, err := s.CreateEntry(ctx, entry)
	require.NoError(t, err)
	assert.True(t, duplicate)
	assert.Equal(t, first, second)

	entries, err := s.ListUserEntries(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestCreateEntry_SameClientRefDifferentUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	first := createTestUser(t, s, "one@example.com")
	second := createTestUser(t, s, "two@example.com")

	ref := uuid.New().String()

	_, duplicate, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: first.ID, Title: "a", ClientRef: ref})
	require.NoError(t, err)
	assert.False(t, duplicate)

	// Ключ идемпотентности привязан к пользователю
	_, duplicate, err = s.CreateEntry(ctx, &models.JournalEntry{UserID: second.ID, Title: "b", ClientRef: ref})
	require.NoError(t, err)
	assert.False(t, duplicate)
}

func TestCreateEntry_DefaultsTripDate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	id, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: user.ID, Title: "No date"})
	require.NoError(t, err)

	got, err := s.GetEntry(ctx, user.ID, id)
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), got.TripDate)
}

func TestListUserEntries_OrderedByTripDate(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	for _, date := range []string{"2026-08-01", "2026-08-20", "2026-08-10"} {
		_, _, err := s.CreateEntry(ctx, &models.JournalEntry{
			UserID:   user.ID,
			Title:    "Trip " + date,
			TripDate: date,
		})
		require.NoError(t, err)
	}

	entries, err := s.ListUserEntries(ctx, user.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2026-08-20", entries[0].TripDate)
	assert.Equal(t, "2026-08-10", entries[1].TripDate)
	assert.Equal(t, "2026-08-01", entries[2].TripDate)
}

func TestListUserEntries_DoesNotLeakOtherUsers(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "owner@example.com")
	other := createTestUser(t, s, "other@example.com")

	_, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: owner.ID, Title: "mine"})
	require.NoError(t, err)

	entries, err := s.ListUserEntries(ctx, other.ID, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestListPublicEntries(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	_, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: user.ID, Title: "private one"})
	require.NoError(t, err)
	_, _, err = s.CreateEntry(ctx, &models.JournalEntry{UserID: user.ID, Title: "public one", IsPublic: true})
	require.NoError(t, err)

	entries, err := s.ListPublicEntries(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "public one", entries[0].Title)
	assert.Equal(t, "Test Angler", entries[0].Author)
}

func TestUpdateEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	id, _, err := s.CreateEntry(ctx, &models.JournalEntry{
		UserID:     user.ID,
		Title:      "Skunked",
		RiverName:  "Gallatin",
		FishCaught: 0,
		TripDate:   "2026-08-14",
	})
	require.NoError(t, err)

	err = s.UpdateEntry(ctx, user.ID, id, &models.JournalEntry{
		Title:      "Skunked until the spinner fall",
		RiverName:  "Gallatin",
		FishCaught: 2,
		FliesUsed:  "Rusty Spinner #18",
	})
	require.NoError(t, err)

	got, err := s.GetEntry(ctx, user.ID, id)
	require.NoError(t, err)
	assert.Equal(t, "Skunked until the spinner fall", got.Title)
	assert.Equal(t, 2, got.FishCaught)
	assert.Equal(t, "Rusty Spinner #18", got.FliesUsed)
	// Пустая trip_date в обновлении сохраняет прежнюю дату поездки
	assert.Equal(t, "2026-08-14", got.TripDate)
}

func TestUpdateEntry_NotFound(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	err := s.UpdateEntry(ctx, user.ID, 999, &models.JournalEntry{Title: "ghost"})
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestUpdateEntry_OtherUsersEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "owner@example.com")
	other := createTestUser(t, s, "other@example.com")

	id, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: owner.ID, Title: "mine"})
	require.NoError(t, err)

	err = s.UpdateEntry(ctx, other.ID, id, &models.JournalEntry{Title: "hijack"})
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	got, err := s.GetEntry(ctx, owner.ID, id)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
}

func TestDeleteEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	id, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: user.ID, Title: "to delete"})
	require.NoError(t, err)

	require.NoError(t, s.DeleteEntry(ctx, user.ID, id))

	_, err = s.GetEntry(ctx, user.ID, id)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)

	err = s.DeleteEntry(ctx, user.ID, id)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestDeleteEntry_OtherUsersEntry(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	owner := createTestUser(t, s, "owner@example.com")
	other := createTestUser(t, s, "other@example.com")

	id, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: owner.ID, Title: "mine"})
	require.NoError(t, err)

	err = s.DeleteEntry(ctx, other.ID, id)
	assert.ErrorIs(t, err, storage.ErrEntryNotFound)
}

func TestCountEntriesSince(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()
	user := createTestUser(t, s, "angler@example.com")

	for i := 0; i < 3; i++ {
		_, _, err := s.CreateEntry(ctx, &models.JournalEntry{UserID: user.ID, Title: "entry"})
		require.NoError(t, err)
	}

	count, err := s.CountEntriesSince(ctx, user.ID, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	count, err = s.CountEntriesSince(ctx, user.ID, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
