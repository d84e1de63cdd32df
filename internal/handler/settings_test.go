package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripdesk/internal/domain"
	"tripdesk/internal/handler"
)

// mockSettingsServicer is a test double for handler.SettingsServicer.
type mockSettingsServicer struct {
	get    func(ctx context.Context) (domain.Settings, error)
	update func(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error)
}

func (m *mockSettingsServicer) Get(ctx context.Context) (domain.Settings, error) {
	return m.get(ctx)
}
func (m *mockSettingsServicer) Update(ctx context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
	return m.update(ctx, upd)
}

var _ handler.SettingsServicer = (*mockSettingsServicer)(nil)

func newSettingsHandler(svc handler.SettingsServicer) http.Handler {
	return handler.NewServer(nil, nil, svc).Router()
}

// ---- GET /settings -----------------------------------------------------------

func TestGetSettings_200(t *testing.T) {
	svc := &mockSettingsServicer{
		get: func(_ context.Context) (domain.Settings, error) {
			return domain.Settings{Version: 3, DefaultCurrency: "EUR"}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/settings", nil)
	rec := httptest.NewRecorder()

	newSettingsHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Settings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "EUR", resp.DefaultCurrency)
	assert.Equal(t, 3, resp.Version)
}

// ---- PATCH /settings ---------------------------------------------------------

func TestUpdateSettings_200(t *testing.T) {
	svc := &mockSettingsServicer{
		update: func(_ context.Context, upd domain.SettingsUpdate) (domain.Settings, error) {
			require.NotNil(t, upd.DefaultCurrency)
			return domain.Settings{Version: 2, DefaultCurrency: *upd.DefaultCurrency}, nil
		},
	}

	body := jsonBody(t, map[string]any{"defaultCurrency": "VND"})

	req := httptest.NewRequest(http.MethodPatch, "/settings", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSettingsHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp domain.Settings
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "VND", resp.DefaultCurrency)
}

func TestUpdateSettings_422_BadCurrency(t *testing.T) {
	svc := &mockSettingsServicer{
		update: func(_ context.Context, _ domain.SettingsUpdate) (domain.Settings, error) {
			return domain.Settings{}, fmt.Errorf("%w: defaultCurrency must be a 3-letter code", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{"defaultCurrency": "DOLLARS"})

	req := httptest.NewRequest(http.MethodPatch, "/settings", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	newSettingsHandler(svc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var resp handler.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "validation_error", resp.Error.Code)
}
