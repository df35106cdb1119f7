// Package monitor runs periodic background availability checks with
// failure/success thresholds, so a single hiccup of a dependency does not
// flap the reported state. The storefront uses it to drive the catalog
// status shown in the UI.
package monitor

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// CheckFunc probes one dependency. It returns nil when the dependency is
// available, or an error describing the problem.
type CheckFunc func(ctx context.Context) error

// check holds the configuration and runtime state for a single probe.
//
// run() is only ever called from the probe's own goroutine, so the
// consecutive counters need no synchronization. The healthy flag and last
// error are read from other goroutines and use atomics.
type check struct {
	name             string
	timeout          time.Duration
	probe            CheckFunc
	failureThreshold int
	successThreshold int

	healthy atomic.Bool
	lastErr atomic.Pointer[error]

	consecutiveFails int
	consecutiveOK    int
}

func (c *check) run(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.probe(probeCtx)
	c.lastErr.Store(&err)

	if err != nil {
		c.consecutiveOK = 0
		c.consecutiveFails++
		if c.consecutiveFails >= c.failureThreshold {
			c.healthy.Store(false)
		}
		return
	}

	c.consecutiveFails = 0
	c.consecutiveOK++
	if c.consecutiveOK >= c.successThreshold {
		c.healthy.Store(true)
	}
}

func (c *check) lastError() error {
	if p := c.lastErr.Load(); p != nil {
		return *p
	}
	return nil
}

// Monitor owns a set of named checks running in background goroutines.
type Monitor struct {
	mu     sync.RWMutex
	checks []*check
	cancel context.CancelFunc
}

// New creates an empty monitor. Register checks with Add, then call Start.
func New() *Monitor {
	return &Monitor{}
}

// Add registers a named check with a per-probe timeout. A check must fail
// three times in a row before it is reported unhealthy, and recovers after a
// single success. Checks start out healthy.
func (m *Monitor) Add(name string, timeout time.Duration, probe CheckFunc) {
	m.mu.Lock()
	defer m.mu.Unlock()

	c := &check{
		name:             name,
		timeout:          timeout,
		probe:            probe,
		failureThreshold: 3,
		successThreshold: 1,
	}
	c.healthy.Store(true)
	m.checks = append(m.checks, c)
}

// Start launches one goroutine per registered check, probing at the given
// interval until the context is cancelled or Stop is called. Each check runs
// once immediately.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	ctx, cancel := context.WithCancel(ctx)

	m.mu.Lock()
	m.cancel = cancel
	checks := make([]*check, len(m.checks))
	copy(checks, m.checks)
	m.mu.Unlock()

	for _, c := range checks {
		go func(c *check) {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			c.run(ctx)
			for {
				select {
				case <-ctx.Done():
					return
				case <-ticker.C:
					c.run(ctx)
				}
			}
		}(c)
	}
}

// Stop cancels all probe goroutines. Safe to call multiple times.
func (m *Monitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Healthy reports whether every registered check is currently passing.
func (m *Monitor) Healthy() bool {
	m.mu.RLock()
	checks := m.checks
	m.mu.RUnlock()

	for _, c := range checks {
		if !c.healthy.Load() {
			return false
		}
	}
	return true
}

// Failures returns the name and last error message of every check that is
// currently unhealthy. The map is empty when everything passes.
func (m *Monitor) Failures() map[string]string {
	m.mu.RLock()
	checks := m.checks
	m.mu.RUnlock()

	failures := make(map[string]string)
	for _, c := range checks {
		if c.healthy.Load() {
			continue
		}
		if err := c.lastError(); err != nil {
			failures[c.name] = err.Error()
		} else {
			failures[c.name] = "check is unhealthy"
		}
	}
	return failures
}
