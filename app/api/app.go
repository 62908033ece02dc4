// Package api assembles the read-only system state service: a Pebble-backed
// state provider behind an HTTP JSON endpoint.
package api

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/verdant-network/verdant-api/app/api/types"
	"github.com/verdant-network/verdant-api/pkg/db"
	"github.com/verdant-network/verdant-api/pkg/logging"
	"github.com/verdant-network/verdant-api/pkg/monitor"
	"github.com/verdant-network/verdant-api/pkg/state"
	"github.com/verdant-network/verdant-api/pkg/utils"
)

// Initialize initializes the application.
func Initialize(ctx context.Context) *types.App {
	logger, err := logging.New("api")
	if err != nil {
		// nothing else to do here, we'll just log to stderr
		panic(err)
	}

	dbPath := utils.Env("DB_PATH", "data/verdant")

	var store db.Store
	if utils.Env("DB_READONLY", "false") == "true" {
		store, err = db.NewReadOnlyPebbleStore(dbPath, logger)
	} else {
		store, err = db.NewPebbleStore(dbPath, logger)
	}
	if err != nil {
		logger.Fatal("Unable to open state store", zap.String("path", dbPath), zap.Error(err))
	}

	provider := state.NewStoreProvider(store)

	// Peek at the state once so operators can tell a fresh store from a
	// synced one without waiting for traffic.
	if s, stateErr := provider.SystemState(ctx); stateErr == nil {
		logger.Info("System state ready",
			zap.Uint64("epoch", s.Epoch),
			zap.Uint64("protocolVersion", s.ProtocolVersion),
			zap.Int("activeValidators", len(s.Validators.ActiveValidators)))
	} else if errors.Is(stateErr, state.ErrNotInitialized) {
		logger.Info("System state not initialized yet", zap.String("path", dbPath))
	} else {
		logger.Warn("System state unreadable at startup", zap.Error(stateErr))
	}

	app := &types.App{
		Provider: provider,
		Store:    store,
		Logger:   logger,
	}

	if utils.Env("MONITOR_ENABLED", "true") == "true" {
		mon, monErr := monitor.New(ctx, provider, logger)
		if monErr != nil {
			logger.Fatal("Unable to initialize state monitor", zap.Error(monErr))
		}
		app.Monitor = mon
	}

	return app
}
