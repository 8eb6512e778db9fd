package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/riffle/internal/client/api"
	"github.com/iudanet/riffle/pkg/api"
)

func conditionsFixture() *api.ConditionsResponse {
	good := true
	return &api.ConditionsResponse{
		Weather: api.Weather{
			Description:   "scattered clouds",
			Temperature:   58,
			FeelsLike:     55,
			WindSpeed:     6,
			WindDirection: "SW",
			Pressure:      1015,
			Clouds:        70,
			Sunrise:       "6:12 AM",
			Sunset:        "7:45 PM",
		},
		Moon: api.MoonPhase{Name: "New Moon", Icon: "🌑", Fishing: "Excellent", Score: 100},
		Factors: []api.ScoreFactor{
			{Name: "Cloud cover", Value: "70%", Impact: 10, Good: &good, Note: "fish feed confidently"},
		},
		BestTimes: []api.FishingWindow{
			{Period: "Morning", Time: "6:12 AM - 9:00 AM", Quality: "excellent"},
		},
		Rating:  "Good",
		Summary: "Solid conditions for dry flies.",
		Score:   72,
	}
}

func TestCli_runConditions_DefaultLocation(t *testing.T) {
	ctx := context.Background()
	mockIO, out := recordingIO()

	apiMock := &clientapi.ClientAPIMock{
		GetConditionsFunc: func(ctx context.Context, lat, lon float64, site string) (*api.ConditionsResponse, error) {
			return conditionsFixture(), nil
		},
	}

	cli := &Cli{
		apiClient: apiMock,
		io:        mockIO,
	}

	err := cli.runConditions(ctx, nil)
	require.NoError(t, err)

	calls := apiMock.GetConditionsCalls()
	require.Len(t, calls, 1)
	assert.InDelta(t, defaultLat, calls[0].Lat, 0.0001)
	assert.InDelta(t, defaultLon, calls[0].Lon, 0.0001)
	assert.Empty(t, calls[0].Site)

	assert.Contains(t, out.String(), "Rating: Good (72/100)")
	assert.Contains(t, out.String(), "New Moon")
	assert.Contains(t, out.String(), "+ Cloud cover: 70%")
	assert.Contains(t, out.String(), "Best times:")
}

func TestCli_runConditions_WithSite(t *testing.T) {
	ctx := context.Background()
	mockIO, out := recordingIO()

	apiMock := &clientapi.ClientAPIMock{
		GetConditionsFunc: func(ctx context.Context, lat, lon float64, site string) (*api.ConditionsResponse, error) {
			resp := conditionsFixture()
			temp := 52.3
			resp.River = &api.RiverReading{
				SiteID:      site,
				SiteName:    "SOUTH PLATTE RIVER AT DENVER",
				FlowStatus:  "normal",
				FlowDisplay: "320 cfs",
				WaterTempF:  &temp,
			}
			return resp, nil
		},
	}

	cli := &Cli{
		apiClient: apiMock,
		io:        mockIO,
	}

	err := cli.runConditions(ctx, []string{"--lat", "39.74", "--lon", "-104.99", "--site", "06701900"})
	require.NoError(t, err)

	calls := apiMock.GetConditionsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "06701900", calls[0].Site)

	assert.Contains(t, out.String(), "site 06701900")
	assert.Contains(t, out.String(), "Flow: normal (320 cfs)")
	assert.Contains(t, out.String(), "Water temp: 52.3°F")
}
