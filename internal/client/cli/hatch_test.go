package cli

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/riffle/internal/client/api"
	"github.com/iudanet/riffle/pkg/api"
)

func TestCli_runHatch_Report(t *testing.T) {
	ctx := context.Background()
	mockIO, out := recordingIO(
		"South Platte",    // river
		"BWO",             // hatch type
		"heavy",           // intensity
		"RS2 #22",         // flies working
		"Midday emergence", // notes
	)

	apiMock := &clientapi.ClientAPIMock{
		CreateHatchReportFunc: func(ctx context.Context, accessToken string, payload api.HatchReportPayload) (*api.CreateHatchResponse, error) {
			return &api.CreateHatchResponse{ReportID: 7}, nil
		},
	}

	cli := &Cli{
		apiClient: apiMock,
		authStore: authStoreWithSession(testSession()),
		io:        mockIO,
	}

	err := cli.runHatch(ctx, []string{"report"})
	require.NoError(t, err)

	calls := apiMock.CreateHatchReportCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "South Platte", calls[0].Payload.RiverName)
	assert.Equal(t, "BWO", calls[0].Payload.HatchType)
	assert.Equal(t, "heavy", calls[0].Payload.HatchIntensity)

	assert.Contains(t, out.String(), "Report ID: 7")
}

func TestCli_runHatch_ReportMissingRiver(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := recordingIO("  ")

	cli := &Cli{
		authStore: authStoreWithSession(testSession()),
		io:        mockIO,
	}

	err := cli.runHatch(ctx, []string{"report"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "river cannot be empty")
}

func TestCli_runHatch_ListWithFilters(t *testing.T) {
	ctx := context.Background()
	mockIO, out := recordingIO()

	apiMock := &clientapi.ClientAPIMock{
		ListHatchReportsFunc: func(ctx context.Context, river string, days, limit int) ([]api.HatchReport, error) {
			return []api.HatchReport{
				{
					ID:     1,
					Author: "Jane",
					HatchReportPayload: api.HatchReportPayload{
						RiverName:      "Frying Pan",
						HatchType:      "PMD",
						HatchIntensity: "moderate",
						FliesWorking:   "Sparkle Dun #18",
					},
					ReportedAt: time.Now(),
				},
			}, nil
		},
	}

	cli := &Cli{
		apiClient: apiMock,
		io:        mockIO,
	}

	err := cli.runHatch(ctx, []string{"list", "--river", "Frying Pan", "--days", "14"})
	require.NoError(t, err)

	calls := apiMock.ListHatchReportsCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Frying Pan", calls[0].River)
	assert.Equal(t, 14, calls[0].Days)
	assert.Equal(t, 50, calls[0].Limit)

	assert.Contains(t, out.String(), "Frying Pan: PMD (moderate) by Jane")
	assert.Contains(t, out.String(), "Sparkle Dun #18")
}

func TestCli_runHatch_UnknownSubcommand(t *testing.T) {
	cli := &Cli{}
	err := cli.runHatch(context.Background(), []string{"bogus"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown subcommand")
}
