package courierapi

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/logx"
)

// Sender delivers one courier position.
type Sender interface {
	ReportLocation(ctx context.Context, courierID int64, p domain.Point) error
}

type counter interface {
	Inc()
}

// RetryConfig describes RetryingSender behavior.
type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// RetryingSender retries transient report failures with exponential backoff.
type RetryingSender struct {
	next    Sender
	logger  logx.Logger
	retries counter
	cfg     RetryConfig
}

// NewRetryingSender returns nil when next is nil.
func NewRetryingSender(next Sender, logger logx.Logger, retries counter, cfg RetryConfig) *RetryingSender {
	if next == nil {
		return nil
	}
	if logger == nil {
		logger = logx.Nop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = 1
	}
	return &RetryingSender{next: next, logger: logger, retries: retries, cfg: cfg}
}

// ReportLocation implements Sender.
func (s *RetryingSender) ReportLocation(ctx context.Context, courierID int64, p domain.Point) error {
	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxAttempts; attempt++ {
		err := s.next.ReportLocation(ctx, courierID, p)
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil || attempt == s.cfg.MaxAttempts || !isRetryable(err) {
			break
		}

		delay := backoff(s.cfg.BaseDelay, s.cfg.MaxDelay, attempt)
		if s.retries != nil {
			s.retries.Inc()
		}
		s.logger.Warn("courier api retry",
			logx.Int64("courier_id", courierID),
			logx.Int("attempt", attempt),
			logx.Duration("delay", delay),
			logx.Err(err),
		)
		if !sleepWithContext(ctx, delay) {
			break
		}
	}
	return lastErr
}

// isRetryable reports 5xx, 429, timeouts and network failures as transient.
func isRetryable(err error) bool {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Code >= 500 || se.Code == http.StatusTooManyRequests
	}
	if errors.Is(err, ErrBreakerOpen) || errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne)
}

func backoff(base, upper time.Duration, attempt int) time.Duration {
	d := base << (attempt - 1)
	if d > upper {
		return upper
	}
	return d
}

func sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
