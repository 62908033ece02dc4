// Package monitor runs a periodic probe over the system state and surfaces
// chain-level events in the service logs: first observation, epoch
// transitions, and safe mode. It never caches or serves state itself.
package monitor

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/verdant-network/verdant-api/pkg/state"
	"github.com/verdant-network/verdant-api/pkg/utils"
)

// probeTimeout bounds each probe run.
const probeTimeout = 10 * time.Second

// Monitor schedules state probes on a cron.
type Monitor struct {
	provider state.Provider
	logger   *zap.Logger
	cron     *cron.Cron
	schedule string

	mu        sync.Mutex
	seen      bool
	lastEpoch uint64
}

// New builds a monitor. The schedule comes from MONITOR_SCHEDULE (six-field
// cron, default every 30 seconds); probes stop when ctx is canceled or Stop
// is called.
func New(ctx context.Context, provider state.Provider, logger *zap.Logger) (*Monitor, error) {
	m := &Monitor{
		provider: provider,
		logger:   logger,
		schedule: utils.Env("MONITOR_SCHEDULE", "*/30 * * * * *"),
	}
	m.cron = cron.New(cron.WithSeconds(), cron.WithChain(cron.Recover(cronLogger{logger.Sugar()})))

	_, err := m.cron.AddFunc(m.schedule, func() {
		// keep each run bounded
		rctx, cancel := context.WithTimeout(ctx, probeTimeout)
		defer cancel()
		m.Probe(rctx)
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// Start begins scheduling probes.
func (m *Monitor) Start() {
	m.cron.Start()
	m.logger.Info("State monitor started", zap.String("schedule", m.schedule))
}

// Stop halts the scheduler and waits for a running probe to finish.
func (m *Monitor) Stop() {
	<-m.cron.Stop().Done()
}

// Probe reads the current state once and logs what changed since the last
// observation.
func (m *Monitor) Probe(ctx context.Context) {
	s, err := m.provider.SystemState(ctx)
	if errors.Is(err, state.ErrNotInitialized) {
		m.logger.Debug("System state not initialized yet")
		return
	}
	if err != nil {
		m.logger.Error("System state probe failed", zap.Error(err))
		return
	}

	m.mu.Lock()
	seen, last := m.seen, m.lastEpoch
	m.seen, m.lastEpoch = true, s.Epoch
	m.mu.Unlock()

	switch {
	case !seen:
		m.logger.Info("System state observed",
			zap.Uint64("epoch", s.Epoch),
			zap.Uint64("protocolVersion", s.ProtocolVersion),
			zap.Int("activeValidators", len(s.Validators.ActiveValidators)))
	case s.Epoch != last:
		m.logger.Info("Epoch transition",
			zap.Uint64("from", last),
			zap.Uint64("to", s.Epoch))
	}

	if s.SafeMode {
		m.logger.Warn("Network is in safe mode", zap.Uint64("epoch", s.Epoch))
	}
}

// LastEpoch returns the most recently observed epoch, and false before the
// first successful probe.
func (m *Monitor) LastEpoch() (uint64, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastEpoch, m.seen
}

// cronLogger adapts zap to the cron logging interface.
type cronLogger struct {
	l *zap.SugaredLogger
}

func (c cronLogger) Info(msg string, keysAndValues ...interface{}) {
	c.l.Infow(msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	c.l.Errorw(msg, append(keysAndValues, "error", err)...)
}
