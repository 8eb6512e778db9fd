package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	clientapi "github.com/iudanet/riffle/internal/client/api"
	"github.com/iudanet/riffle/pkg/api"
)

func TestCli_runProfile_Show(t *testing.T) {
	ctx := context.Background()
	mockIO, out := recordingIO()

	apiMock := &clientapi.ClientAPIMock{
		MeFunc: func(ctx context.Context, accessToken string) (*api.UserProfile, error) {
			return &api.UserProfile{
				Email:        "angler@example.com",
				Name:         "Angler",
				Subscription: "free",
				HomeRiver:    "South Platte",
			}, nil
		},
	}

	cli := &Cli{
		apiClient: apiMock,
		authStore: authStoreWithSession(testSession()),
		io:        mockIO,
	}

	err := cli.runProfile(ctx, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "angler@example.com")
	assert.Contains(t, out.String(), "Home river: South Platte")
}

func TestCli_runProfile_SetOnlyPassedFlags(t *testing.T) {
	ctx := context.Background()
	mockIO, _ := recordingIO()

	apiMock := &clientapi.ClientAPIMock{
		UpdateProfileFunc: func(ctx context.Context, accessToken string, req api.UpdateProfileRequest) (*api.UserProfile, error) {
			return &api.UserProfile{Email: "angler@example.com", HomeRiver: "Frying Pan"}, nil
		},
	}

	cli := &Cli{
		apiClient: apiMock,
		authStore: authStoreWithSession(testSession()),
		io:        mockIO,
	}

	err := cli.runProfile(ctx, []string{"set", "--home-river", "Frying Pan"})
	require.NoError(t, err)

	calls := apiMock.UpdateProfileCalls()
	require.Len(t, calls, 1)
	require.NotNil(t, calls[0].Req.HomeRiver)
	assert.Equal(t, "Frying Pan", *calls[0].Req.HomeRiver)
	assert.Nil(t, calls[0].Req.Name)
	assert.Nil(t, calls[0].Req.HomeLat)
}

func TestCli_runProfile_SetNothing(t *testing.T) {
	cli := &Cli{}
	err := cli.runProfileSet(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to update")
}
