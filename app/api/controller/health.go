package controller

import (
	"errors"
	"net/http"

	"github.com/go-jose/go-jose/v4/json"

	"github.com/verdant-network/verdant-api/pkg/state"
)

// HealthResponse is the /health payload.
type HealthResponse struct {
	Status string `json:"status"`
	// State is "ready" once a system state is readable, "uninitialized"
	// before the first commit.
	State    string           `json:"state"`
	Requests map[string]int64 `json:"requests"`
}

func (c *Controller) HandleHealth(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")

	stateStatus := "ready"
	if _, err := c.App.Provider.SystemState(ctx); err != nil {
		if !errors.Is(err, state.ErrNotInitialized) {
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"status": "errored", "error": "state read error"})
			return
		}
		stateStatus = "uninitialized"
	}

	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{
		Status:   "ok",
		State:    stateStatus,
		Requests: c.RequestCounts(),
	})
}
