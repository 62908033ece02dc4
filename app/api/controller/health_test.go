package controller_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verdant-network/verdant-api/app/api/controller"
	"github.com/verdant-network/verdant-api/pkg/state"
)

func TestHealthReady(t *testing.T) {
	_, h := newTestRouter(t, readyProvider(t))

	rec := doGet(h, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body controller.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "ready", body.State)
}

func TestHealthUninitialized(t *testing.T) {
	_, h := newTestRouter(t, state.NewMemoryProvider())

	rec := doGet(h, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body controller.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "uninitialized", body.State)
}

func TestHealthErrored(t *testing.T) {
	_, h := newTestRouter(t, failingProvider{})

	rec := doGet(h, "/health", "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "errored", body["status"])
}

func TestHealthRequestCounts(t *testing.T) {
	_, h := newTestRouter(t, readyProvider(t))

	doGet(h, "/system", "application/json")
	doGet(h, "/system", "text/html") // rejected requests count too
	doGet(h, "/nope", "")
	doGet(h, "/system/extra", "")

	rec := doGet(h, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body controller.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(2), body.Requests["/system"])
	assert.Equal(t, int64(1), body.Requests["/health"])
	assert.Equal(t, int64(2), body.Requests["other"], "unmatched paths must be tallied too")
}
