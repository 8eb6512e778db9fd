package handlers

import (
	"bytes"
	"context"
	"encoding/json"
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

// mockHatchStorage is a mock implementation of HatchStorage for testing
type mockHatchStorage struct {
	reports    []*models.HatchReport
	nextID     int64
	lastFilter storage.HatchFilter
}

func newMockHatchStorage() *mockHatchStorage {
	return &mockHatchStorage{nextID: 1}
}

func (m *mockHatchStorage) CreateReport(ctx context.Context, report *models.HatchReport) (int64, error) {
	report.ID = m.nextID
	report.ReportedAt = time.Now()
	m.nextID++
	m.reports = append(m.reports, report)
	return report.ID, nil
}

func (m *mockHatchStorage) ListReports(ctx context.Context, filter storage.HatchFilter) ([]models.HatchReport, error) {
	m.lastFilter = filter
	result := []models.HatchReport{}
	for _, r := range m.reports {
		result = append(result, *r)
	}
	return result, nil
}

func TestHatchHandler_Create_Success(t *testing.T) {
	hatch := newMockHatchStorage()
	handler := NewHatchHandler(setupTestLogger(), hatch)

	body, err := json.Marshal(api.HatchReportPayload{
		RiverName:      "Frying Pan",
		HatchType:      "BWO",
		HatchIntensity: "heavy",
		FliesWorking:   "#20 parachute adams",
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hatch", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp api.CreateHatchResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, int64(1), resp.ReportID)

	require.Len(t, hatch.reports, 1)
	assert.Equal(t, "user1", hatch.reports[0].UserID)
	assert.Equal(t, "BWO", hatch.reports[0].HatchType)
}

func TestHatchHandler_Create_MissingFields(t *testing.T) {
	handler := NewHatchHandler(setupTestLogger(), newMockHatchStorage())

	tests := []struct {
		name    string
		payload api.HatchReportPayload
	}{
		{"missing river", api.HatchReportPayload{HatchType: "PMD"}},
		{"missing hatch type", api.HatchReportPayload{RiverName: "Frying Pan"}},
		{"whitespace only", api.HatchReportPayload{RiverName: "  ", HatchType: "  "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(tt.payload)
			require.NoError(t, err)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/hatch", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req = authedRequest(req, "user1", "angler@example.com", models.SubscriptionFree)

			w := httptest.NewRecorder()
			handler.Create(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestHatchHandler_Create_Unauthorized(t *testing.T) {
	handler := NewHatchHandler(setupTestLogger(), newMockHatchStorage())

	body, err := json.Marshal(api.HatchReportPayload{RiverName: "Frying Pan", HatchType: "BWO"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/hatch", bytes.NewReader(body))
	w := httptest.NewRecorder()
	handler.Create(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHatchHandler_List_DefaultFilter(t *testing.T) {
	hatch := newMockHatchStorage()
	hatch.reports = []*models.HatchReport{
		{ID: 1, RiverName: "Frying Pan", HatchType: "BWO", Author: "River Angler"},
	}
	handler := NewHatchHandler(setupTestLogger(), hatch)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hatch", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 7, hatch.lastFilter.Days)
	assert.Equal(t, 50, hatch.lastFilter.Limit)
	assert.Empty(t, hatch.lastFilter.RiverName)

	var resp api.ListHatchResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	require.Len(t, resp.Reports, 1)
	assert.Equal(t, "River Angler", resp.Reports[0].Author)
}

func TestHatchHandler_List_QueryFilters(t *testing.T) {
	hatch := newMockHatchStorage()
	handler := NewHatchHandler(setupTestLogger(), hatch)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/hatch?river=Platte&days=30&limit=10&offset=5", nil)
	w := httptest.NewRecorder()
	handler.List(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Platte", hatch.lastFilter.RiverName)
	assert.Equal(t, 30, hatch.lastFilter.Days)
	assert.Equal(t, 10, hatch.lastFilter.Limit)
	assert.Equal(t, 5, hatch.lastFilter.Offset)
}
