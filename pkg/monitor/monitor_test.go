package monitor

import (
	"context"
	"testing"
	"time"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passing() CheckFunc {
	return func(_ context.Context) error { return nil }
}

func failing(msg string) CheckFunc {
	return func(_ context.Context) error { return errors.New(msg) }
}

func TestHealthy_AllPassing(t *testing.T) {
	m := New()
	m.Add("catalog", time.Second, passing())
	m.Add("goroutines", time.Second, passing())

	// Checks start healthy by default.
	assert.True(t, m.Healthy())
	assert.Empty(t, m.Failures())
}

func TestHealthy_FailureThreshold(t *testing.T) {
	m := New()
	m.Add("catalog", time.Second, failing("connection refused"))

	ctx := context.Background()

	// Below the threshold of 3 consecutive failures the check stays healthy.
	m.checks[0].run(ctx)
	m.checks[0].run(ctx)
	assert.True(t, m.Healthy())

	m.checks[0].run(ctx)
	assert.False(t, m.Healthy())

	failures := m.Failures()
	require.Contains(t, failures, "catalog")
	assert.Equal(t, "connection refused", failures["catalog"])
}

func TestHealthy_RecoversAfterSingleSuccess(t *testing.T) {
	var fail bool
	m := New()
	m.Add("catalog", time.Second, func(_ context.Context) error {
		if fail {
			return errors.New("down")
		}
		return nil
	})

	ctx := context.Background()
	fail = true
	for range 3 {
		m.checks[0].run(ctx)
	}
	require.False(t, m.Healthy())

	fail = false
	m.checks[0].run(ctx)
	assert.True(t, m.Healthy())
	assert.Empty(t, m.Failures())
}

func TestStart_ProbesUntilStopped(t *testing.T) {
	done := make(chan struct{})
	var calls int
	m := New()
	m.Add("once", time.Second, func(_ context.Context) error {
		calls++
		if calls == 1 {
			close(done)
		}
		return nil
	})

	m.Start(context.Background(), time.Hour)
	defer m.Stop()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("check did not run after Start")
	}
	assert.True(t, m.Healthy())
}

func TestStop_Twice(t *testing.T) {
	m := New()
	m.Add("noop", time.Second, passing())
	m.Start(context.Background(), time.Hour)

	m.Stop()
	m.Stop()
}

func TestGoroutineCountCheck(t *testing.T) {
	require.NoError(t, GoroutineCountCheck(1_000_000)(context.Background()))
	assert.Error(t, GoroutineCountCheck(0)(context.Background()))
}
