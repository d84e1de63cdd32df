package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/domain"
	"tripdesk/internal/handler"
)

// ---- POST /trips/{id}/days -------------------------------------------------

func TestAddDay_201(t *testing.T) {
	tripID := uuid.NewString()
	svc := &mockTripServicer{
		addDay: func(_ context.Context, gotTripID string, day domain.Day) (domain.Day, error) {
			assert.Equal(t, tripID, gotTripID)
			day.ID = uuid.NewString()
			day.TripID = gotTripID
			return day, nil
		},
	}

	body := jsonBody(t, map[string]any{"date": "2025-06-02"})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+tripID+"/days", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.Day
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, tripID, resp.TripID)
	assert.Equal(t, "2025-06-02", resp.Date)
}

func TestAddDay_404_TripMissing(t *testing.T) {
	svc := &mockTripServicer{
		addDay: func(_ context.Context, _ string, _ domain.Day) (domain.Day, error) {
			return domain.Day{}, domain.ErrNotFound
		},
	}

	body := jsonBody(t, map[string]any{"date": "2025-06-02"})

	req := httptest.NewRequest(http.MethodPost, "/trips/"+uuid.NewString()+"/days", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "trip not found", resp.Error.Message)
}

// ---- PATCH /trips/{id}/days/reorder ----------------------------------------

func TestReorderDays_204(t *testing.T) {
	tripID := uuid.NewString()
	want := []string{"d2", "d1", "d3"}
	svc := &mockTripServicer{
		reorderDays: func(_ context.Context, gotTripID string, dayIDs []string) error {
			assert.Equal(t, tripID, gotTripID)
			assert.Equal(t, want, dayIDs)
			return nil
		},
	}

	body := jsonBody(t, map[string]any{"dayIds": want})

	req := httptest.NewRequest(http.MethodPatch, "/trips/"+tripID+"/days/reorder", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestReorderDays_422_EmptyList(t *testing.T) {
	svc := &mockTripServicer{
		reorderDays: func(_ context.Context, _ string, _ []string) error {
			return domain.ErrValidation
		},
	}

	body := jsonBody(t, map[string]any{"dayIds": []string{}})

	req := httptest.NewRequest(http.MethodPatch, "/trips/"+uuid.NewString()+"/days/reorder", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

// ---- DELETE /days/{dayId} --------------------------------------------------

func TestDeleteDay_204(t *testing.T) {
	dayID := uuid.NewString()
	svc := &mockTripServicer{
		deleteDay: func(_ context.Context, gotDayID string) error {
			assert.Equal(t, dayID, gotDayID)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/days/"+dayID, nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteDay_404(t *testing.T) {
	svc := &mockTripServicer{
		deleteDay: func(_ context.Context, _ string) error { return domain.ErrNotFound },
	}

	req := httptest.NewRequest(http.MethodDelete, "/days/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	newHTTPHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
