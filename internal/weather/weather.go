package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/riffle/pkg/api"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client запрашивает текущую погоду у OpenWeather.
// Без API ключа или при недоступности сервиса возвращается усредненная
// заглушка: прогноз условий деградирует, но не ломает весь ответ.
type Client struct {
	httpClient *http.Client
	logger     *slog.Logger
	baseURL    string
	apiKey     string
}

func NewClient(apiKey string, logger *slog.Logger) *Client {
	return &Client{
		apiKey:  apiKey,
		logger:  logger,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL используется в тестах для подмены endpoint'а
func NewClientWithBaseURL(apiKey, baseURL string, logger *slog.Logger) *Client {
	c := NewClient(apiKey, logger)
	c.baseURL = baseURL
	return c
}

// owmResponse повторяет формат ответа OpenWeather current weather API
type owmResponse struct {
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
		Pressure  int     `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Clouds struct {
		All int `json:"all"`
	} `json:"clouds"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
	Visibility int `json:"visibility"`
}

// Current returns the weather at the given point in imperial units.
// Never fails: any problem falls back to canned typical conditions.
func (c *Client) Current(ctx context.Context, lat, lon float64) api.Weather {
	if c.apiKey == "" {
		return mockWeather()
	}

	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Set("appid", c.apiKey)
	params.Set("units", "imperial")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		c.logger.Warn("weather request build failed", "error", err)
		return mockWeather()
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("weather request failed", "error", err)
		return mockWeather()
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("weather request rejected", "status", resp.StatusCode)
		return mockWeather()
	}

	var data owmResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		c.logger.Warn("weather response decode failed", "error", err)
		return mockWeather()
	}

	w := api.Weather{
		Temperature: math.Round(data.Main.Temp),
		FeelsLike:   math.Round(data.Main.FeelsLike),
		Humidity:    data.Main.Humidity,
		Pressure:    data.Main.Pressure,
		WindSpeed:   math.Round(data.Wind.Speed),
		WindDeg:     data.Wind.Deg,
		Clouds:      data.Clouds.All,
		// Метры в мили
		Visibility:    int(math.Round(float64(data.Visibility) / 1609.34)),
		WindDirection: WindDirection(data.Wind.Deg),
		Sunrise:       formatTime(data.Sys.Sunrise),
		Sunset:        formatTime(data.Sys.Sunset),
	}
	if len(data.Weather) > 0 {
		w.Conditions = data.Weather[0].Main
		w.Description = data.Weather[0].Description
		w.Icon = data.Weather[0].Icon
	}

	return w
}

var compassPoints = []string{
	"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE",
	"S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW",
}

// WindDirection converts degrees to a 16-point compass direction.
func WindDirection(degrees int) string {
	idx := int(math.Round(float64(degrees)/22.5)) % 16
	return compassPoints[idx]
}

func formatTime(unix int64) string {
	return time.Unix(unix, 0).Format("3:04 PM")
}

func mockWeather() api.Weather {
	return api.Weather{
		Temperature:   62,
		FeelsLike:     60,
		Humidity:      55,
		Pressure:      1018,
		WindSpeed:     8,
		WindDirection: "SW",
		WindDeg:       225,
		Conditions:    "Partly Cloudy",
		Description:   "scattered clouds",
		Icon:          "03d",
		Clouds:        35,
		Visibility:    10,
		Sunrise:       "6:45 AM",
		Sunset:        "7:30 PM",
	}
}

// FormatWind renders a human readable wind string, e.g. "8 mph SW".
func FormatWind(w api.Weather) string {
	return fmt.Sprintf("%.0f mph %s", w.WindSpeed, w.WindDirection)
}
