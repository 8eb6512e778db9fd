package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/riffle/internal/models"
	"github.com/iudanet/riffle/internal/server/storage"
	"github.com/iudanet/riffle/pkg/api"
)

// mockRiverStorage is a mock implementation of RiverStorage for testing
type mockRiverStorage struct {
	rivers []*models.SavedRiver
	nextID int64
}

func newMockRiverStorage() *mockRiverStorage {
	return &mockRiverStorage{nextID: 1}
}

func (m *mockRiverStorage) SaveRiver(ctx context.Context, river *models.SavedRiver) (int64, error) {
	river.ID = m.nextID
	river.CreatedAt = time.Now()
	m.nextID++
	m.rivers = append(m.rivers, river)
	return river.ID, nil
}

func (m *mockRiverStorage) ListUserRivers(ctx context.Context, userID string) ([]models.SavedRiver, error) {
	result := []models.SavedRiver{}
	for _, r := range m.rivers {
		if r.UserID == userID {
			result = append(result, *r)
		}
	}
	return result, nil
}

func (m *mockRiverStorage) DeleteRiver(ctx context.Context, userID string, riverID int64) error {
	for i, r := range m.rivers {
		if r.UserID == userID && r.ID == riverID {
			m.rivers = append(m.rivers[:i], m.rivers[i+1:]...)
			return nil
		}
	}
	return storage.ErrRiverNotFound
}

// mockSiteSearcher is a mock implementation of SiteSearcher for testing
type mockSiteSearcher struct {
	sites       []api.RiverSite
	searchError error
	lastLat     float64
	lastLon     float64
}

func (m *mockSiteSearcher) SearchSites(ctx context.Context, lat, lon float64) ([]api.RiverSite, error) {
	m.lastLat = lat
	m.lastLon = lon
	if m.searchError != nil {
		return nil, m.searchError
	}
	return m.sites, nil
}

func TestRiversHandler_Save_Success(t *testing.T) {
	rivers := newMockRiverStorage()
	handler := NewRiversHandler(setupTestLogger(), rivers, &mockSiteSearcher{})

	body, err := json.Marshal(api.SaveRiverRequest{
		RiverName:  "South Platte - Deckers",
		USGSSiteID: "06701900",
		Notes:      "Best below the bridge",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rivers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

	w := httptest.NewRecorder()
	handler.Save(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp api.SaveRiverResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.RiverID)

	require.Len(t, rivers.rivers, 1)
	assert.Equal(t, "06701900", rivers.rivers[0].USGSSiteID)
}

func TestRiversHandler_Save_NameRequired(t *testing.T) {
	handler := NewRiversHandler(setupTestLogger(), newMockRiverStorage(), &mockSiteSearcher{})

	body, err := json.Marshal(api.SaveRiverRequest{Notes: "no name"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/rivers", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

	w := httptest.NewRecorder()
	handler.Save(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRiversHandler_List_OnlyOwn(t *testing.T) {
	rivers := newMockRiverStorage()
	rivers.rivers = []*models.SavedRiver{
		{ID: 1, UserID: "user1", RiverName: "South Platte"},
		{ID: 2, UserID: "user2", RiverName: "Frying Pan"},
	}
	handler := NewRiversHandler(setupTestLogger(), rivers, &mockSiteSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rivers", nil)
	req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp api.ListRiversResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Rivers, 1)
	assert.Equal(t, "South Platte", resp.Rivers[0].RiverName)
}

func TestRiversHandler_Delete(t *testing.T) {
	rivers := newMockRiverStorage()
	rivers.rivers = []*models.SavedRiver{
		{ID: 5, UserID: "user1", RiverName: "South Platte"},
	}
	handler := NewRiversHandler(setupTestLogger(), rivers, &mockSiteSearcher{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/rivers/5", nil)
	req.SetPathValue("id", "5")
	req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, rivers.rivers)
}

func TestRiversHandler_Delete_NotOwned(t *testing.T) {
	rivers := newMockRiverStorage()
	rivers.rivers = []*models.SavedRiver{
		{ID: 5, UserID: "user2", RiverName: "Frying Pan"},
	}
	handler := NewRiversHandler(setupTestLogger(), rivers, &mockSiteSearcher{})

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/rivers/5", nil)
	req.SetPathValue("id", "5")
	req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

	w := httptest.NewRecorder()
	handler.Delete(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Len(t, rivers.rivers, 1)
}

func TestRiversHandler_SearchSites(t *testing.T) {
	searcher := &mockSiteSearcher{
		sites: []api.RiverSite{
			{SiteID: "06701900", Name: "SOUTH PLATTE RIVER", Lat: 39.25, Lon: -105.22},
		},
	}
	handler := NewRiversHandler(setupTestLogger(), newMockRiverStorage(), searcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rivers/sites?lat=39.25&lon=-105.22", nil)
	w := httptest.NewRecorder()
	handler.SearchSites(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.InDelta(t, 39.25, searcher.lastLat, 0.0001)
	assert.InDelta(t, -105.22, searcher.lastLon, 0.0001)

	var resp api.SearchSitesResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Sites, 1)
	assert.Equal(t, "06701900", resp.Sites[0].SiteID)
}

func TestRiversHandler_SearchSites_MissingCoords(t *testing.T) {
	handler := NewRiversHandler(setupTestLogger(), newMockRiverStorage(), &mockSiteSearcher{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rivers/sites?lat=39.25", nil)
	w := httptest.NewRecorder()
	handler.SearchSites(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRiversHandler_SearchSites_UpstreamError(t *testing.T) {
	searcher := &mockSiteSearcher{searchError: errors.New("usgs returned status 503")}
	handler := NewRiversHandler(setupTestLogger(), newMockRiverStorage(), searcher)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rivers/sites?lat=39.25&lon=-105.22", nil)
	w := httptest.NewRecorder()
	handler.SearchSites(w, req)

	assert.Equal(t, http.StatusBadGateway, w.Code)
}
