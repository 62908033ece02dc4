package api

import (
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/verdant-network/verdant-api/app/api/controller"
	"github.com/verdant-network/verdant-api/app/api/types"
	"github.com/verdant-network/verdant-api/pkg/utils"
)

// NewServer wires the controller routes into app.Server.
func NewServer(app *types.App) error {
	ctler := controller.NewController(app)
	router, err := ctler.NewRouter()
	if err != nil {
		return err
	}

	// use <ip>:<port> to bind to a specific interface or :<port> to bind to all interfaces
	addr := utils.Env("ADDR", ":3000")

	app.Server = &http.Server{
		Addr:              addr,
		Handler:           controller.WithCORS(ctler.CountRequests(router)),
		ReadHeaderTimeout: utils.EnvDuration("READ_HEADER_TIMEOUT", 5*time.Second),
		ReadTimeout:       utils.EnvDuration("READ_TIMEOUT", 10*time.Second),
		WriteTimeout:      utils.EnvDuration("WRITE_TIMEOUT", 30*time.Second),
		IdleTimeout:       utils.EnvDuration("IDLE_TIMEOUT", 60*time.Second),
	}
	app.Logger.Info("Starting server", zap.String("addr", addr))

	return nil
}
