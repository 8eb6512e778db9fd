package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// HatchHandler обрабатывает общие отчеты о вылете насекомых
type HatchHandler struct {
	logger *slog.Logger
	hatch  storage.HatchStorage
}

// NewHatchHandler создает новый handler отчетов о вылетах
func NewHatchHandler(logger *slog.Logger, hatch storage.HatchStorage) *HatchHandler {
	return &HatchHandler{
		logger: logger,
		hatch:  hatch,
	}
}

// Create обрабатывает POST /api/v1/hatch
func (h *HatchHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var payload api.HatchReportPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode hatch report", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	payload.RiverName = strings.TrimSpace(payload.RiverName)
	payload.HatchType = strings.TrimSpace(payload.HatchType)
	if payload.RiverName == "" || payload.HatchType == "" {
		sendError(h.logger, w, "river_name and hatch_type required", http.StatusBadRequest)
		return
	}

	report := &models.HatchReport{
		UserID:         userID,
		RiverName:      payload.RiverName,
		LocationName:   payload.LocationName,
		Latitude:       payload.Latitude,
		Longitude:      payload.Longitude,
		HatchType:      payload.HatchType,
		HatchIntensity: payload.HatchIntensity,
		FliesWorking:   payload.FliesWorking,
		WaterTemp:      payload.WaterTemp,
		WaterClarity:   payload.WaterClarity,
		FlowRate:       payload.FlowRate,
		Notes:          payload.Notes,
	}

	id, err := h.hatch.CreateReport(ctx, report)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create hatch report", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "hatch report created",
		slog.String("user_id", userID),
		slog.String("river", payload.RiverName),
		slog.Int64("report_id", id))

	sendJSON(h.logger, w, api.CreateHatchResponse{ReportID: id}, http.StatusCreated)
}

// List обрабатывает GET /api/v1/hatch?river=&days=&limit=&offset=
// Лента отчетов открыта для всех авторизованных пользователей
func (h *HatchHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := storage.HatchFilter{
		RiverName: strings.TrimSpace(r.URL.Query().Get("river")),
		Days:      queryInt(r, "days", 7),
		Limit:     queryInt(r, "limit", 50),
		Offset:    queryInt(r, "offset", 0),
	}

	reports, err := h.hatch.ListReports(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to list hatch reports", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError)
		return
	}

	out := make([]api.HatchReport, 0, len(reports))
	for _, rep := range reports {
		out = append(out, api.HatchReport{
			ID:         rep.ID,
			Author:     rep.Author,
			ReportedAt: rep.ReportedAt,
			HatchReportPayload: api.HatchReportPayload{
				RiverName:      rep.RiverName,
				LocationName:   rep.LocationName,
				Latitude:       rep.Latitude,
				Longitude:      rep.Longitude,
				HatchType:      rep.HatchType,
				HatchIntensity: rep.HatchIntensity,
				FliesWorking:   rep.FliesWorking,
				WaterTemp:      rep.WaterTemp,
				WaterClarity:   rep.WaterClarity,
				FlowRate:       rep.FlowRate,
				Notes:          rep.Notes,
			},
		})
	}

	sendJSON(h.logger, w, api.ListHatchResponse{Reports: out}, http.StatusOK)
}
