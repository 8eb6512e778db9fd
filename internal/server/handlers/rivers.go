package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// SiteSearcher ищет гидропосты USGS рядом с точкой
type SiteSearcher interface {
	SearchSites(ctx context.Context, lat, lon float64) ([]api.RiverSite, error)
}

// RiversHandler обрабатывает сохраненные реки пользователя
type RiversHandler struct {
	logger *slog.Logger
	rivers storage.RiverStorage
	sites  SiteSearcher
}

// NewRiversHandler создает новый handler сохраненных рек
func NewRiversHandler(logger *slog.Logger, rivers storage.RiverStorage, sites SiteSearcher) *RiversHandler {
	return &RiversHandler{
		logger: logger,
		rivers: rivers,
		sites:  sites,
	}
}

// Save обрабатывает POST /api/v1/rivers
func (h *RiversHandler) Save(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req api.SaveRiverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode river", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.RiverName = strings.TrimSpace(req.RiverName)
	if req.RiverName == "" {
		sendError(h.logger, w, "river_name required", http.StatusBadRequest)
		return
	}

	river := &models.SavedRiver{
		UserID:     userID,
		RiverName:  req.RiverName,
		USGSSiteID: req.USGSSiteID,
		Notes:      req.Notes,
		Latitude:   req.Latitude,
		Longitude:  req.Longitude,
	}

	id, err := h.rivers.SaveRiver(ctx, river)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to save river", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "river saved",
		slog.String("user_id", userID),
		slog.String("river", req.RiverName))

	sendJSON(h.logger, w, api.SaveRiverResponse{RiverID: id}, http.StatusCreated)
}

// List обрабатывает GET /api/v1/rivers
func (h *RiversHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	rivers, err := h.rivers.ListUserRivers(ctx, userID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list rivers", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]api.SavedRiver, 0, len(rivers))
	for _, rv := range rivers {
		out = append(out, api.SavedRiver{
			ID:         rv.ID,
			CreatedAt:  rv.CreatedAt,
			RiverName:  rv.RiverName,
			USGSSiteID: rv.USGSSiteID,
			Notes:      rv.Notes,
			Latitude:   rv.Latitude,
			Longitude:  rv.Longitude,
		})
	}

	sendJSON(h.logger, w, api.ListRiversResponse{Rivers: out}, http.StatusOK)
}

// Delete обрабатывает DELETE /api/v1/rivers/{id}
func (h *RiversHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	riverID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		sendError(h.logger, w, "invalid river id", http.StatusBadRequest)
		return
	}

	if err := h.rivers.DeleteRiver(ctx, userID, riverID); err != nil {
		if errors.Is(err, storage.ErrRiverNotFound) {
			sendError(h.logger, w, "river not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to delete river", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SearchSites обрабатывает GET /api/v1/rivers/sites?lat=&lon=
func (h *RiversHandler) SearchSites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		sendError(h.logger, w, "lat and lon required", http.StatusBadRequest)
		return
	}

	sites, err := h.sites.SearchSites(ctx, lat, lon)
	if err != nil {
		h.logger.ErrorContext(ctx, "usgs site search failed", slog.Any("error", err))
		sendError(h.logger, w, "river data service unavailable", http.StatusBadGateway)
		return
	}

	sendJSON(h.logger, w, api.SearchSitesResponse{Sites: sites}, http.StatusOK)
}
