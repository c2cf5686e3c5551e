package courierapi

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/logx"
)

// ErrBreakerOpen is returned while the breaker rejects calls.
var ErrBreakerOpen = errors.New("courier api: circuit open")

// BreakerConfig tunes the circuit breaker.
type BreakerConfig struct {
	ConsecutiveFailures uint32
	OpenTimeout         time.Duration
}

// BreakerSender stops calling the API after repeated failures.
type BreakerSender struct {
	next Sender
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerSender wraps next with a circuit breaker.
func NewBreakerSender(next Sender, logger logx.Logger, cfg BreakerConfig) *BreakerSender {
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = 5
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	st := gobreaker.Settings{
		Name:    "courier-api",
		Timeout: cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || !isRetryable(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("circuit breaker state changed",
				logx.String("breaker", name),
				logx.String("from", from.String()),
				logx.String("to", to.String()),
			)
		},
	}
	return &BreakerSender{next: next, cb: gobreaker.NewCircuitBreaker(st)}
}

// ReportLocation implements Sender.
func (b *BreakerSender) ReportLocation(ctx context.Context, courierID int64, p domain.Point) error {
	_, err := b.cb.Execute(func() (any, error) {
		return nil, b.next.ReportLocation(ctx, courierID, p)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return ErrBreakerOpen
	}
	return err
}

// State returns the breaker state name.
func (b *BreakerSender) State() string {
	return b.cb.State().String()
}
