package controller

import (
	"errors"
	"net/http"

	"github.com/go-jose/go-jose/v4/json"
	"go.uber.org/zap"

	"github.com/verdant-network/verdant-api/pkg/state"
	"github.com/verdant-network/verdant-api/pkg/transform"
)

// HandleSystemState serves GET /system: the flat, client-facing summary of
// the current on-chain system state.
func (c *Controller) HandleSystemState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "application/json")

	// The format is negotiated before any state is read, so a request for an
	// unsupported format never costs a store round trip.
	if !acceptsJSON(r) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid accept type"})
		return
	}

	s, err := c.App.Provider.SystemState(ctx)
	if errors.Is(err, state.ErrNotInitialized) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "system state not initialized"})
		return
	}
	if err != nil {
		c.App.Logger.Error("Failed to load system state", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	summary, err := transform.EpochSummaryFromState(s)
	if err != nil {
		// Key material that fails to decode is a node-side defect; no
		// partial summary is ever served.
		c.App.Logger.Error("Failed to project system state", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
		return
	}

	_ = json.NewEncoder(w).Encode(summary)
}
