// Package lifecycle coordinates graceful teardown: components register a stop
// hook at startup, and hooks run in reverse registration order once a
// termination signal arrives.
package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// ShutdownFunc stops one component. It must respect ctx's deadline.
type ShutdownFunc func(ctx context.Context) error

type hook struct {
	name string
	stop ShutdownFunc
}

type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	hooks []hook
}

func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		timeout: timeout,
		logger:  logger,
	}
}

// Register queues a named stop hook. Registration order should follow startup
// order; teardown runs the hooks last-first so dependents stop before their
// dependencies.
func (m *Manager) Register(name string, stop ShutdownFunc) {
	if stop == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, hook{name: name, stop: stop})
}

// Shutdown runs every registered hook under the configured deadline. A failing
// hook is logged and does not stop the remaining ones; the joined errors are
// returned.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	m.mu.Lock()
	defer m.mu.Unlock()

	var failures error
	for i := len(m.hooks) - 1; i >= 0; i-- {
		h := m.hooks[i]
		if err := h.stop(ctx); err != nil {
			m.logger.Error("shutdown hook failed", zap.String("hook", h.name), zap.Error(err))
			failures = errors.Join(failures, err)
			continue
		}
		m.logger.Info("stopped", zap.String("hook", h.name))
	}
	return failures
}

// Listen arms SIGINT/SIGTERM handling in the background; the first signal
// invokes cancel, which unblocks the entrypoint's wait.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(signals)
		sig := <-signals
		m.logger.Info("termination signal received", zap.String("signal", sig.String()))
		cancel()
	}()
}
