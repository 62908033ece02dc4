package types

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/verdant-network/verdant-api/pkg/db"
	"github.com/verdant-network/verdant-api/pkg/monitor"
	"github.com/verdant-network/verdant-api/pkg/state"
)

type App struct {
	// Provider hands out the latest committed system state.
	Provider state.Provider
	// Store is the backing key-value store when the provider is store-backed,
	// nil otherwise. The app owns its lifecycle.
	Store db.Store
	// Monitor periodically probes the state for log-level observability. Optional.
	Monitor *monitor.Monitor
	// Zap Logger
	Logger *zap.Logger
	// Server represents the HTTP server instance used to handle incoming client requests and manage HTTP routes.
	Server *http.Server
}

// Start runs the server until ctx is canceled, then shuts down in order:
// stop taking requests, stop the monitor, release the store.
func (a *App) Start(ctx context.Context) {
	go func() { _ = a.Server.ListenAndServe() }()
	if a.Monitor != nil {
		a.Monitor.Start()
	}
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = a.Server.Shutdown(shutdownCtx)

	if a.Monitor != nil {
		a.Monitor.Stop()
	}

	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Error("Failed to close store", zap.Error(err))
		}
	}

	a.Logger.Info("Shutdown complete")
}
