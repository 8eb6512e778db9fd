package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// Лимит бесплатного тарифа: записей журнала в календарный месяц
const freeEntriesPerMonth = 3

// JournalHandler обрабатывает записи журнала рыбалки
type JournalHandler struct {
	logger  *slog.Logger
	journal storage.JournalStorage
}

// NewJournalHandler создает новый handler журнала
func NewJournalHandler(logger *slog.Logger, journal storage.JournalStorage) *JournalHandler {
	return &JournalHandler{
		logger:  logger,
		journal: journal,
	}
}

// Create обрабатывает POST /api/v1/journal
// Создание записи. Повторная отправка с тем же client_ref не создает
// дубликат и не списывает квоту: offline клиенты досылают очередь после
// обрыва и могут не знать, что сервер уже принял запись.
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload api.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode entry", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		sendError(h.logger, w, "title required", http.StatusBadRequest)
		return
	}

	// Дедупликация до проверки квоты: уже принятая запись подтверждается
	// повторно даже если квота с тех пор исчерпана
	if payload.ClientRef != "" {
		id, found, err := h.journal.FindEntryByClientRef(ctx, userID, payload.ClientRef)
		if err != nil {
			h.logger.ErrorContext(ctx, "client_ref lookup failed", slog.Any("error", err))
			sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
			return
		}
		if found {
			h.logger.InfoContext(ctx, "duplicate entry acknowledged",
				slog.String("user_id", userID),
				slog.String("client_ref", payload.ClientRef))
			sendJSON(h.logger, w, api.CreateEntryResponse{EntryID: id, Duplicate: true}, http.StatusOK)
			return
		}
	}

	subscription, _ := GetSubscription(ctx)
	if subscription != models.SubscriptionPro {
		if !h.checkQuota(w, r, userID) {
			return
		}
	}

	entry := entryFromPayload(userID, payload)

	id, duplicate, err := h.journal.CreateEntry(ctx, entry)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create entry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "journal entry created",
		slog.String("user_id", userID),
		slog.Int64("entry_id", id),
		slog.Bool("duplicate", duplicate))

	status := http.StatusCreated
	if duplicate {
		status = http.StatusOK
	}
	sendJSON(h.logger, w, api.CreateEntryResponse{EntryID: id, Duplicate: duplicate}, status)
}

// checkQuota проверяет месячный лимит бесплатного тарифа.
// При превышении отвечает 403 с флагом upgrade и возвращает false
func (h *JournalHandler) checkQuota(w http.ResponseWriter, r *http.Request, userID string) bool {
	ctx := r.Context()

	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	count, err := h.journal.CountEntriesSince(ctx, userID, monthStart)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to count entries", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return false
	}

	if count >= freeEntriesPerMonth {
		h.logger.InfoContext(ctx, "free tier quota reached", slog.String("user_id", userID))
		sendUpgradeError(h.logger, w,
			"Free tier limit reached (3 entries/month). Upgrade to Pro for unlimited.",
			http.StatusForbidden)
		return false
	}

	return true
}

// List обрабатывает GET /api/v1/journal?limit=&offset=
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	limit := queryInt(r, "limit", 50)
	offset := queryInt(r, "offset", 0)

	entries, err := h.journal.ListUserEntries(ctx, userID, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list entries", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.ListEntriesResponse{Entries: entriesToAPI(entries)}, http.StatusOK)
}

// ListPublic обрабатывает GET /api/v1/journal/public?limit=&offset=
// Публичная лента, авторизация не требуется
func (h *JournalHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	limit := queryInt(r, "limit", 20)
	offset := queryInt(r, "offset", 0)

	entries, err := h.journal.ListPublicEntries(ctx, limit, offset)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list public entries", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.ListEntriesResponse{Entries: entriesToAPI(entries)}, http.StatusOK)
}

// Get обрабатывает GET /api/v1/journal/{id}
func (h *JournalHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid entry id", http.StatusBadRequest)
		return
	}

	entry, err := h.journal.GetEntry(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			sendError(h.logger, w, "entry not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get entry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, entryToAPI(*entry), http.StatusOK)
}

// Update обрабатывает PUT /api/v1/journal/{id}
// Полная замена записи. client_ref не меняется, квота не списывается
func (h *JournalHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid entry id", http.StatusBadRequest)
		return
	}

	var payload api.EntryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode entry", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	payload.Title = strings.TrimSpace(payload.Title)
	if payload.Title == "" {
		sendError(h.logger, w, "title required", http.StatusBadRequest)
		return
	}

	entry := entryFromPayload(userID, payload)

	if err := h.journal.UpdateEntry(ctx, userID, entryID, entry); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			sendError(h.logger, w, "entry not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to update entry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	updated, err := h.journal.GetEntry(ctx, userID, entryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load updated entry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "journal entry updated",
		slog.String("user_id", userID),
		slog.Int64("entry_id", entryID))

	sendJSON(h.logger, w, entryToAPI(*updated), http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/journal/{id}
func (h *JournalHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	entryID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid entry id", http.StatusBadRequest)
		return
	}

	if err := h.journal.DeleteEntry(ctx, userID, entryID); err != nil {
		if errors.Is(err, storage.ErrEntryNotFound) {
			sendError(h.logger, w, "entry not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete entry", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "journal entry deleted",
		slog.String("user_id", userID),
		slog.Int64("entry_id", entryID))

	w.WriteHeader(http.StatusNoContent)
}

// queryInt парсит числовой query параметр с значением по умолчанию
func queryInt(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return def
	}
	return v
}

func entryFromPayload(userID string, p api.EntryPayload) *models.JournalEntry {
	return &models.JournalEntry{
		UserID:          userID,
		ClientRef:       p.ClientRef,
		Title:           p.Title,
		Content:         p.Content,
		LocationName:    p.LocationName,
		Latitude:        p.Latitude,
		Longitude:       p.Longitude,
		RiverName:       p.RiverName,
		WaterConditions: p.WaterConditions,
		Weather:         p.Weather,
		Temperature:     p.Temperature,
		Wind:            p.Wind,
		FliesUsed:       p.FliesUsed,
		FishCaught:      p.FishCaught,
		Species:         p.Species,
		IsPublic:        p.IsPublic,
		Photos:          p.Photos,
		TripDate:        p.TripDate,
	}
}

func entryToAPI(e models.JournalEntry) api.Entry {
	return api.Entry{
		ID:        e.ID,
		UserID:    e.UserID,
		Author:    e.Author,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
		EntryPayload: api.EntryPayload{
			Title:           e.Title,
			Content:         e.Content,
			LocationName:    e.LocationName,
			Latitude:        e.Latitude,
			Longitude:       e.Longitude,
			RiverName:       e.RiverName,
			WaterConditions: e.WaterConditions,
			Weather:         e.Weather,
			Temperature:     e.Temperature,
			Wind:            e.Wind,
			FliesUsed:       e.FliesUsed,
			FishCaught:      e.FishCaught,
			Species:         e.Species,
			IsPublic:        e.IsPublic,
			Photos:          e.Photos,
			TripDate:        e.TripDate,
			ClientRef:       e.ClientRef,
		},
	}
}

func entriesToAPI(entries []models.JournalEntry) []api.Entry {
	out := make([]api.Entry, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryToAPI(e))
	}
	return out
}
