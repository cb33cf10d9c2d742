package shift

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swipeschedule/ss_backendl/models"
)

type fakeStore struct {
	shifts  []models.Shift
	err     error
	gotFrom *time.Time
	gotTo   *time.Time
}

func (f *fakeStore) ListShifts(ctx context.Context, from, to *time.Time) ([]models.Shift, error) {
	f.gotFrom = from
	f.gotTo = to
	if f.err != nil {
		return nil, f.err
	}
	return f.shifts, nil
}

func TestGetShiftsHandlerPassesWindow(t *testing.T) {
	store := &fakeStore{}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts?from=2025-12-01&to=2026-01-01", nil)
	rec := httptest.NewRecorder()

	GetShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, store.gotFrom)
	require.NotNil(t, store.gotTo)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), *store.gotFrom)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), *store.gotTo)
}

func TestGetShiftsHandlerUnparseableBoundOmitted(t *testing.T) {
	store := &fakeStore{}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts?from=not-a-date&to=2026-01-01T00:00:00Z", nil)
	rec := httptest.NewRecorder()

	GetShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, store.gotFrom)
	require.NotNil(t, store.gotTo)
}

func TestGetShiftsHandlerNoBounds(t *testing.T) {
	store := &fakeStore{}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	rec := httptest.NewRecorder()

	GetShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, store.gotFrom)
	assert.Nil(t, store.gotTo)
}

func TestGetShiftsHandlerEmptyResultIsArray(t *testing.T) {
	store := &fakeStore{}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	rec := httptest.NewRecorder()

	GetShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetShiftsHandlerStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("mongo connect: connection refused")}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	rec := httptest.NewRecorder()

	GetShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	// Generic message only; detail stays in the server log.
	assert.Equal(t, "Failed to fetch shifts", body["error"])
}

func TestGetShiftsHandlerSerializesProjection(t *testing.T) {
	start := time.Date(2025, 12, 24, 9, 0, 0, 0, time.UTC)
	store := &fakeStore{shifts: []models.Shift{
		{
			ID:         "abc123",
			Start:      start,
			End:        start.Add(8 * time.Hour),
			SiteID:     "site-1",
			PositionID: "bartender",
			WorkerID:   "w-9",
			Wage:       25,
			Earnings:   106.25,
			Avatar:     models.PlaceholderAvatar,
			Origin:     models.OriginSchedule,
		},
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts", nil)
	rec := httptest.NewRecorder()

	GetShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "abc123", decoded[0]["id"])
	assert.Equal(t, "2025-12-24T09:00:00Z", decoded[0]["shiftstart_datetime"])
	assert.Equal(t, "site-1", decoded[0]["site_id"])
	assert.Equal(t, "bartender", decoded[0]["position_id"])
	assert.Equal(t, "w-9", decoded[0]["worker_id"])
	assert.Equal(t, 25.0, decoded[0]["wage"])
	assert.Equal(t, models.OriginSchedule, decoded[0]["origin"])
}

func TestParseBoundLayouts(t *testing.T) {
	tests := []struct {
		raw  string
		want *time.Time
	}{
		{"", nil},
		{"garbage", nil},
		{"2025-13-40", nil},
	}
	for _, tt := range tests {
		assert.Nil(t, parseBound(tt.raw), "raw=%q", tt.raw)
	}

	got := parseBound("2025-12-10")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), *got)

	got = parseBound("2025-12-10T14:30:00Z")
	require.NotNil(t, got)
	assert.Equal(t, time.Date(2025, 12, 10, 14, 30, 0, 0, time.UTC), *got)
}

func TestExportShiftsHandler(t *testing.T) {
	start := time.Date(2025, 12, 10, 8, 0, 0, 0, time.UTC)
	store := &fakeStore{shifts: []models.Shift{
		{ID: "s1", Start: start, End: start.Add(4 * time.Hour), Origin: models.OriginSource},
	}}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts/export", nil)
	rec := httptest.NewRecorder()

	ExportShiftsHandler(store)(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "shifts.xlsx")
	assert.NotZero(t, rec.Body.Len())
}

func TestExportShiftsHandlerStoreFailure(t *testing.T) {
	store := &fakeStore{err: errors.New("boom")}
	req := httptest.NewRequest(http.MethodGet, "/api/shifts/export", nil)
	rec := httptest.NewRecorder()

	ExportShiftsHandler(store)(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
