package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/iudanet/riffle/pkg/api"
)

const defaultBaseURL = "https://waterservices.usgs.gov/nwis/iv"

// Коды параметров USGS instantaneous values API
const (
	paramDischarge  = "00060" // расход воды, cubic feet per second
	paramGageHeight = "00065" // уровень, feet
	paramWaterTemp  = "00010" // температура воды, °C
)

// Упрощенные пороги расхода воды. У каждой реки свои нормальные
// диапазоны, для сводки хватает общих
const (
	lowFlowCFS  = 50
	highFlowCFS = 2000
)

// Client запрашивает показания гидропостов USGS Water Services.
// API бесплатный и не требует ключа.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

func NewClient() *Client {
	return &Client{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewClientWithBaseURL используется в тестах для подмены endpoint'а
func NewClientWithBaseURL(baseURL string) *Client {
	c := NewClient()
	c.baseURL = baseURL
	return c
}

// ivResponse повторяет формат ответа USGS instantaneous values API
type ivResponse struct {
	Value struct {
		TimeSeries []struct {
			SourceInfo struct {
				SiteName string `json:"siteName"`
				SiteCode []struct {
					Value string `json:"value"`
				} `json:"siteCode"`
				GeoLocation struct {
					GeogLocation struct {
						Latitude  float64 `json:"latitude"`
						Longitude float64 `json:"longitude"`
					} `json:"geogLocation"`
				} `json:"geoLocation"`
			} `json:"sourceInfo"`
			Variable struct {
				VariableCode []struct {
					Value string `json:"value"`
				} `json:"variableCode"`
			} `json:"variable"`
			Values []struct {
				Value []struct {
					Value    string `json:"value"`
					DateTime string `json:"dateTime"`
				} `json:"value"`
			} `json:"values"`
		} `json:"timeSeries"`
	} `json:"value"`
}

// SiteReading fetches the latest discharge, gage height and water
// temperature for a gauge site. Returns nil when the site reports no data.
func (c *Client) SiteReading(ctx context.Context, siteID string) (*api.RiverReading, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("sites", siteID)
	params.Set("parameterCd", paramDischarge+","+paramGageHeight+","+paramWaterTemp)
	params.Set("siteStatus", "active")

	data, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(data.Value.TimeSeries) == 0 {
		return nil, nil
	}

	reading := &api.RiverReading{FlowStatus: "unknown"}

	for _, series := range data.Value.TimeSeries {
		if len(series.Variable.VariableCode) == 0 {
			continue
		}

		site := series.SourceInfo
		if reading.SiteName == "" && len(site.SiteCode) > 0 {
			reading.SiteName = site.SiteName
			reading.SiteID = site.SiteCode[0].Value
			lat := site.GeoLocation.GeogLocation.Latitude
			lon := site.GeoLocation.GeogLocation.Longitude
			reading.Latitude = &lat
			reading.Longitude = &lon
		}

		if len(series.Values) == 0 || len(series.Values[0].Value) == 0 {
			continue
		}
		latest := series.Values[0].Value[len(series.Values[0].Value)-1]

		value, err := strconv.ParseFloat(latest.Value, 64)
		if err != nil {
			continue
		}

		switch series.Variable.VariableCode[0].Value {
		case paramDischarge:
			v := value
			reading.Discharge = &v
			reading.LastUpdated = latest.DateTime
		case paramGageHeight:
			v := value
			reading.GageHeight = &v
		case paramWaterTemp:
			celsius := value
			fahrenheit := math.Round(celsius*9/5 + 32)
			reading.WaterTempC = &celsius
			reading.WaterTempF = &fahrenheit
		}
	}

	if reading.Discharge != nil {
		reading.FlowDisplay = fmt.Sprintf("%.0f cfs", *reading.Discharge)
		reading.FlowStatus = flowStatus(*reading.Discharge)
	}

	return reading, nil
}

// SearchSites finds active stream gauges in a half-degree box around the
// point.
func (c *Client) SearchSites(ctx context.Context, lat, lon float64) ([]api.RiverSite, error) {
	params := url.Values{}
	params.Set("format", "json")
	params.Set("bBox", fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", lon-0.5, lat-0.5, lon+0.5, lat+0.5))
	params.Set("siteType", "ST")
	params.Set("siteStatus", "active")
	params.Set("hasDataTypeCd", "iv")

	data, err := c.fetch(ctx, params)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	sites := []api.RiverSite{}

	for _, series := range data.Value.TimeSeries {
		site := series.SourceInfo
		if len(site.SiteCode) == 0 {
			continue
		}

		id := site.SiteCode[0].Value
		if seen[id] {
			continue
		}
		seen[id] = true

		sites = append(sites, api.RiverSite{
			SiteID: id,
			Name:   site.SiteName,
			Lat:    site.GeoLocation.GeogLocation.Latitude,
			Lon:    site.GeoLocation.GeogLocation.Longitude,
		})
	}

	return sites, nil
}

func (c *Client) fetch(ctx context.Context, params url.Values) (*ivResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usgs request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("usgs returned status %d", resp.StatusCode)
	}

	var data ivResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode usgs response: %w", err)
	}

	return &data, nil
}

func flowStatus(discharge float64) string {
	switch {
	case discharge < lowFlowCFS:
		return "low"
	case discharge > highFlowCFS:
		return "high"
	default:
		return "normal"
	}
}
