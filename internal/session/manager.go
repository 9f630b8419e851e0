package session

import (
	"context"
	"log"
	"sync"
	"time"
)

// DefaultRenderTimeout bounds a single render, including content load and
// font settling.
const DefaultRenderTimeout = 30 * time.Second

// Manager owns a single shared rendering engine. Callers never see engine
// lifecycle: a dead or missing engine is replaced on the next render, and a
// render that times out tears the engine down so the one after relaunches
// clean. The mutex covers only acquire and replace; renders run concurrently
// on the shared engine, each in its own tab.
type Manager struct {
	mu      sync.Mutex
	engine  Engine
	closed  bool
	timeout time.Duration

	// newEngine builds replacement engines; swappable for tests.
	newEngine func() Engine
}

// Option configures a Manager.
type Option func(*Manager)

// WithTimeout sets the hard per-render timeout.
func WithTimeout(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.timeout = d
		}
	}
}

// WithEngineFactory replaces the engine constructor.
func WithEngineFactory(factory func() Engine) Option {
	return func(m *Manager) { m.newEngine = factory }
}

// NewManager returns a manager that lazily launches Chrome on first use.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		timeout:   DefaultRenderTimeout,
		newEngine: NewChromeEngine,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire returns a healthy engine, launching or replacing one as needed.
// Caller must hold m.mu.
func (m *Manager) acquire(ctx context.Context) (Engine, error) {
	if m.closed {
		return nil, &SessionError{Op: "manager closed"}
	}
	if m.engine != nil {
		if m.engine.Healthy(ctx) {
			return m.engine, nil
		}
		log.Printf("[SESSION] engine unhealthy, replacing")
		m.engine.Stop()
		m.engine = nil
	}
	engine := m.newEngine()
	if err := engine.Start(ctx); err != nil {
		return nil, err
	}
	m.engine = engine
	return engine, nil
}

// RenderPDF renders html on the shared engine under the hard timeout. The
// lock is released before the render itself so concurrent requests do not
// block each other. On any failure the engine is discarded so the next call
// starts from a fresh session; the caller may retry once for transparent
// crash recovery.
func (m *Manager) RenderPDF(ctx context.Context, html string, opts RenderOptions) ([]byte, error) {
	m.mu.Lock()
	engine, err := m.acquire(ctx)
	m.mu.Unlock()
	if err != nil {
		return nil, err
	}

	renderCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	pdf, err := engine.RenderPDF(renderCtx, html, opts)
	if err != nil {
		// A failed or timed-out render leaves the engine in an unknown
		// state; discard it rather than probing. Another render may have
		// replaced it already, in which case it is left alone.
		m.mu.Lock()
		if m.engine == engine {
			log.Printf("[SESSION] render failed, discarding engine: %v", err)
			engine.Stop()
			m.engine = nil
		}
		m.mu.Unlock()
		return nil, err
	}
	return pdf, nil
}

// Healthy reports whether a warm, responsive engine is currently held. A cold
// manager is not unhealthy, it just has nothing to probe yet.
func (m *Manager) Healthy(ctx context.Context) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed || m.engine == nil {
		return false
	}
	return m.engine.Healthy(ctx)
}

// Close stops the engine and rejects further renders.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.engine != nil {
		m.engine.Stop()
		m.engine = nil
	}
	m.closed = true
}
