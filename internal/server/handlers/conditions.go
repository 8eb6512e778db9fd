package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/riffle/internal/conditions"
	"github.com/iudanet/riffle/pkg/api"
)

// Точка по умолчанию: Denver, CO. Большинство популярных форелевых рек
// Колорадо в пределах этого региона
const (
	defaultLat = 39.7392
	defaultLon = -104.9903
)

// WeatherProvider возвращает текущую погоду в точке
type WeatherProvider interface {
	Current(ctx context.Context, lat, lon float64) api.Weather
}

// RiverReader возвращает последние показания гидропоста
type RiverReader interface {
	SiteReading(ctx context.Context, siteID string) (*api.RiverReading, error)
}

// ConditionsHandler собирает сводку условий ловли: погода, луна,
// показания гидропоста и итоговая оценка
type ConditionsHandler struct {
	logger  *slog.Logger
	weather WeatherProvider
	rivers  RiverReader
}

// NewConditionsHandler создает новый handler сводки условий
func NewConditionsHandler(logger *slog.Logger, weather WeatherProvider, rivers RiverReader) *ConditionsHandler {
	return &ConditionsHandler{
		logger:  logger,
		weather: weather,
		rivers:  rivers,
	}
}

// Get обрабатывает GET /api/v1/conditions?lat=&lon=&site=
func (h *ConditionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	lat := queryFloat(r, "lat", defaultLat)
	lon := queryFloat(r, "lon", defaultLon)
	siteID := r.URL.Query().Get("site")

	weather := h.weather.Current(ctx, lat, lon)
	moon := conditions.MoonPhase(time.Now())

	var river *api.RiverReading
	if siteID != "" {
		reading, err := h.rivers.SiteReading(ctx, siteID)
		if err != nil {
			// Сводка полезна и без гидропоста
			h.logger.WarnContext(ctx, "river reading unavailable",
				slog.String("site", siteID),
				slog.Any("error", err))
		} else {
			river = reading
		}
	}

	forecast := conditions.Score(weather, moon, river)

	sendJSON(h.logger, w, api.ConditionsResponse{
		Weather:   weather,
		Moon:      moon,
		River:     river,
		Factors:   forecast.Factors,
		BestTimes: conditions.BestTimes(weather, moon),
		Rating:    forecast.Rating,
		Summary:   forecast.Summary,
		Score:     forecast.Score,
	}, http.StatusOK)
}

// queryFloat парсит координату из query с значением по умолчанию
func queryFloat(r *http.Request, name string, def float64) float64 {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
