package api_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap/zaptest"

	"github.com/verdant-network/verdant-api/app/api"
	"github.com/verdant-network/verdant-api/app/api/types"
	"github.com/verdant-network/verdant-api/pkg/chain/chaintest"
	"github.com/verdant-network/verdant-api/pkg/monitor"
	"github.com/verdant-network/verdant-api/pkg/state"
)

func TestNewServer(t *testing.T) {
	t.Setenv("ADDR", "127.0.0.1:0")

	p := state.NewMemoryProvider()
	require.NoError(t, p.SetState(chaintest.State()))

	app := &types.App{Provider: p, Logger: zaptest.NewLogger(t)}
	require.NoError(t, api.NewServer(app))

	require.NotNil(t, app.Server)
	assert.Equal(t, "127.0.0.1:0", app.Server.Addr)
	assert.Equal(t, 5*time.Second, app.Server.ReadHeaderTimeout)
	assert.NotNil(t, app.Server.Handler)
}

func TestAppStartShutdown(t *testing.T) {
	defer goleak.VerifyNone(t)
	t.Setenv("ADDR", "127.0.0.1:0")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	p := state.NewMemoryProvider()
	logger := zaptest.NewLogger(t)

	mon, err := monitor.New(ctx, p, logger)
	require.NoError(t, err)

	app := &types.App{Provider: p, Monitor: mon, Logger: logger}
	require.NoError(t, api.NewServer(app))

	done := make(chan struct{})
	go func() {
		app.Start(ctx)
		close(done)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("app did not shut down")
	}
}

func TestInitialize(t *testing.T) {
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "verdant"))
	t.Setenv("MONITOR_ENABLED", "false")

	app := api.Initialize(context.Background())
	t.Cleanup(func() { _ = app.Store.Close() })

	require.NotNil(t, app.Provider)
	require.NotNil(t, app.Store)
	assert.Nil(t, app.Monitor)

	_, err := app.Provider.SystemState(context.Background())
	assert.ErrorIs(t, err, state.ErrNotInitialized)
}
