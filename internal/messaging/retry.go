package messaging

import (
	"context"
	"errors"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/menuboard/internal/domain"
)

// ErrCircuitOpen возвращается, пока брокер считается недоступным.
var ErrCircuitOpen = errors.New("circuit breaker is open")

// RetryConfig конфигурация повторов публикации.
type RetryConfig struct {
	MaxAttempts   int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig возвращает конфигурацию по умолчанию.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:   3,
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      2 * time.Second,
		BackoffFactor: 2.0,
	}
}

// retryingPublisher повторяет публикацию с экспоненциальной задержкой.
type retryingPublisher struct {
	next   domain.MenuEventPublisher
	config RetryConfig
	logger *log.Entry
}

// WithRetry оборачивает паблишер повторами. Открытый circuit breaker не повторяется.
func WithRetry(next domain.MenuEventPublisher, config RetryConfig, logger *log.Entry) domain.MenuEventPublisher {
	if logger == nil {
		logger = log.WithField("component", "publisher-retry")
	}
	if config.MaxAttempts < 1 {
		config.MaxAttempts = 1
	}
	if config.BackoffFactor < 1 {
		config.BackoffFactor = 1
	}
	return &retryingPublisher{next: next, config: config, logger: logger}
}

func (p *retryingPublisher) Publish(ctx context.Context, event domain.MenuEvent) error {
	var lastErr error
	delay := p.config.InitialDelay

	for attempt := 1; attempt <= p.config.MaxAttempts; attempt++ {
		err := p.next.Publish(ctx, event)
		if err == nil {
			if attempt > 1 {
				p.logger.WithFields(log.Fields{
					"event_type": event.Type,
					"attempt":    attempt,
				}).Info("event published after retry")
			}
			return nil
		}
		lastErr = err

		if errors.Is(err, ErrCircuitOpen) || attempt == p.config.MaxAttempts {
			break
		}

		p.logger.WithFields(log.Fields{
			"event_type": event.Type,
			"attempt":    attempt,
			"delay":      delay,
		}).WithError(err).Warn("publish failed, retrying")

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return errors.Join(lastErr, ctx.Err())
		case <-timer.C:
		}

		delay = time.Duration(float64(delay) * p.config.BackoffFactor)
		if p.config.MaxDelay > 0 && delay > p.config.MaxDelay {
			delay = p.config.MaxDelay
		}
	}
	return lastErr
}

// CircuitState — состояние circuit breaker.
type CircuitState int

const (
	CircuitClosed CircuitState = iota
	CircuitOpen
	CircuitHalfOpen
)

func (s CircuitState) String() string {
	switch s {
	case CircuitOpen:
		return "open"
	case CircuitHalfOpen:
		return "half-open"
	default:
		return "closed"
	}
}

// CircuitBreaker перестаёт вызывать брокер после maxFailures ошибок подряд
// и пробует снова через resetTimeout.
type CircuitBreaker struct {
	mu           sync.Mutex
	maxFailures  int
	resetTimeout time.Duration
	now          func() time.Time

	failures    int
	lastFailure time.Time
	state       CircuitState
	logger      *log.Entry
}

// NewCircuitBreaker создаёт новый circuit breaker.
func NewCircuitBreaker(maxFailures int, resetTimeout time.Duration, logger *log.Entry) *CircuitBreaker {
	if logger == nil {
		logger = log.WithField("component", "circuit-breaker")
	}
	if maxFailures < 1 {
		maxFailures = 1
	}
	return &CircuitBreaker{
		maxFailures:  maxFailures,
		resetTimeout: resetTimeout,
		now:          time.Now,
		state:        CircuitClosed,
		logger:       logger,
	}
}

// State возвращает текущее состояние.
func (cb *CircuitBreaker) State() CircuitState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Execute выполняет операцию через circuit breaker.
func (cb *CircuitBreaker) Execute(operation string, fn func() error) error {
	cb.mu.Lock()
	if cb.state == CircuitOpen {
		if cb.now().Sub(cb.lastFailure) <= cb.resetTimeout {
			cb.mu.Unlock()
			return ErrCircuitOpen
		}
		cb.state = CircuitHalfOpen
		cb.logger.WithField("operation", operation).Info("circuit breaker half-open")
	}
	cb.mu.Unlock()

	err := fn()

	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err != nil {
		cb.failures++
		cb.lastFailure = cb.now()
		if cb.state == CircuitHalfOpen || cb.failures >= cb.maxFailures {
			cb.state = CircuitOpen
			cb.logger.WithFields(log.Fields{
				"operation": operation,
				"failures":  cb.failures,
			}).Warn("circuit breaker opened")
		}
		return err
	}

	if cb.state == CircuitHalfOpen {
		cb.logger.WithField("operation", operation).Info("circuit breaker closed")
	}
	cb.state = CircuitClosed
	cb.failures = 0
	return nil
}

type breakerPublisher struct {
	name    string
	next    domain.MenuEventPublisher
	breaker *CircuitBreaker
}

// WithCircuitBreaker пропускает публикации через breaker; name попадает в логи.
func WithCircuitBreaker(name string, next domain.MenuEventPublisher, breaker *CircuitBreaker) domain.MenuEventPublisher {
	return &breakerPublisher{name: name, next: next, breaker: breaker}
}

func (p *breakerPublisher) Publish(ctx context.Context, event domain.MenuEvent) error {
	return p.breaker.Execute(p.name, func() error {
		return p.next.Publish(ctx, event)
	})
}

// Resilient — стандартная обёртка брокера: повторы поверх circuit breaker.
func Resilient(name string, next domain.MenuEventPublisher, logger *log.Entry) domain.MenuEventPublisher {
	if logger == nil {
		logger = log.WithField("component", "publisher")
	}
	logger = logger.WithField("publisher", name)
	breaker := NewCircuitBreaker(5, 30*time.Second, logger)
	return WithRetry(WithCircuitBreaker(name, next, breaker), DefaultRetryConfig(), logger)
}
