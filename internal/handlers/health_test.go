package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"NOTES_BACK-END/internal/dto"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func decodeHealth(t *testing.T, rec *httptest.ResponseRecorder) dto.HealthResponse {
	t.Helper()
	var body dto.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestHealthHandler_Probes(t *testing.T) {
	h := NewHealthHandler(pingFunc(func(context.Context) error { return nil }))

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.LivenessCheck(rec, httptest.NewRequest(http.MethodGet, "/livez", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alive", decodeHealth(t, rec).Status)

	rec = httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ready", decodeHealth(t, rec).Status)
}

func TestHealthHandler_ReadinessDegraded(t *testing.T) {
	var deadlineSet bool
	h := NewHealthHandler(pingFunc(func(ctx context.Context) error {
		_, deadlineSet = ctx.Deadline()
		return errors.New("db down")
	}))

	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	body := decodeHealth(t, rec)
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, map[string]any{"db": "db down"}, body.Details)
	assert.True(t, deadlineSet)
}

func TestHealthHandler_ReadinessWithoutDatabase(t *testing.T) {
	h := NewHealthHandler(nil)

	rec := httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
