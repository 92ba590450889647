package messaging

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// flakyPublisher падает первые failures вызовов.
type flakyPublisher struct {
	failures int
	calls    int
}

func (p *flakyPublisher) Publish(context.Context, domain.MenuEvent) error {
	p.calls++
	if p.calls <= p.failures {
		return errors.New("temporary failure")
	}
	return nil
}

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond, BackoffFactor: 2}
}

func resetEvent() domain.MenuEvent {
	return domain.NewMenuEvent(domain.MenuEventMenuReset, nil, domain.MenuStats{})
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	assert.Equal(t, 3, cfg.MaxAttempts)
	assert.Positive(t, cfg.InitialDelay)
	assert.Greater(t, cfg.MaxDelay, cfg.InitialDelay)
	assert.Greater(t, cfg.BackoffFactor, 1.0)
}

func TestWithRetry_SucceedsAfterFailures(t *testing.T) {
	flaky := &flakyPublisher{failures: 2}
	pub := WithRetry(flaky, fastRetry(3), nil)

	require.NoError(t, pub.Publish(context.Background(), resetEvent()))
	require.Equal(t, 3, flaky.calls)
}

func TestWithRetry_GivesUp(t *testing.T) {
	flaky := &flakyPublisher{failures: 10}
	pub := WithRetry(flaky, fastRetry(3), nil)

	require.ErrorContains(t, pub.Publish(context.Background(), resetEvent()), "temporary failure")
	require.Equal(t, 3, flaky.calls)
}

func TestWithRetry_ZeroAttemptsMeansOne(t *testing.T) {
	flaky := &flakyPublisher{failures: 10}
	pub := WithRetry(flaky, RetryConfig{}, nil)

	require.Error(t, pub.Publish(context.Background(), resetEvent()))
	require.Equal(t, 1, flaky.calls)
}

func TestWithRetry_StopsOnContextCancel(t *testing.T) {
	flaky := &flakyPublisher{failures: 10}
	pub := WithRetry(flaky, RetryConfig{MaxAttempts: 5, InitialDelay: time.Hour, BackoffFactor: 2}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pub.Publish(ctx, resetEvent())
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, flaky.calls)
}

func TestCircuitBreaker_OpensAndRecovers(t *testing.T) {
	now := time.Date(2026, 4, 18, 12, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(2, time.Minute, nil)
	cb.now = func() time.Time { return now }

	fail := func() error { return errors.New("boom") }
	ok := func() error { return nil }

	require.Error(t, cb.Execute("op", fail))
	require.Equal(t, CircuitClosed, cb.State())
	require.Error(t, cb.Execute("op", fail))
	require.Equal(t, CircuitOpen, cb.State())

	calls := 0
	err := cb.Execute("op", func() error { calls++; return nil })
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.Zero(t, calls, "open breaker must not call the broker")

	now = now.Add(2 * time.Minute)
	require.NoError(t, cb.Execute("op", ok))
	require.Equal(t, CircuitClosed, cb.State())
}

func TestCircuitBreaker_HalfOpenFailureReopens(t *testing.T) {
	now := time.Date(2026, 4, 18, 12, 0, 0, 0, time.UTC)
	cb := NewCircuitBreaker(1, time.Minute, nil)
	cb.now = func() time.Time { return now }

	require.Error(t, cb.Execute("op", func() error { return errors.New("boom") }))
	now = now.Add(2 * time.Minute)
	require.Error(t, cb.Execute("op", func() error { return errors.New("still down") }))
	require.Equal(t, CircuitOpen, cb.State())
	require.Equal(t, "open", cb.State().String())
}

func TestResilient_DoesNotRetryOpenCircuit(t *testing.T) {
	flaky := &flakyPublisher{failures: 100}
	breaker := NewCircuitBreaker(1, time.Hour, nil)
	pub := WithRetry(WithCircuitBreaker("kafka", flaky, breaker), fastRetry(5), nil)

	err := pub.Publish(context.Background(), resetEvent())
	require.ErrorIs(t, err, ErrCircuitOpen)
	require.Equal(t, 1, flaky.calls, "first failure opens the breaker, retries stop there")
}

func TestResilient_Wraps(t *testing.T) {
	healthy := &countingPublisher{}
	require.NoError(t, Resilient("rabbitmq", healthy, nil).Publish(context.Background(), resetEvent()))
	require.Equal(t, 1, healthy.calls)
}
