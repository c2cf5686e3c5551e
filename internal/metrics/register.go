package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Register registers c and returns it, or the collector already registered
// under the same descriptor.
func Register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		var zero T
		return zero, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

// RegisterPolicy registers the policy counters.
func RegisterPolicy(reg prometheus.Registerer) (*Policy, error) {
	p := NewPolicy()
	var err error
	if p.Evaluations, err = Register(reg, p.Evaluations, "availability_evaluations_total"); err != nil {
		return nil, err
	}
	if p.Resolutions, err = Register(reg, p.Resolutions, "fee_resolutions_total"); err != nil {
		return nil, err
	}
	if p.TierFallbacks, err = Register(reg, p.TierFallbacks, "fee_tier_fallback_total"); err != nil {
		return nil, err
	}
	return p, nil
}

// RegisterHTTP registers the HTTP collectors.
func RegisterHTTP(reg prometheus.Registerer) (*HTTP, error) {
	h := NewHTTP()
	var err error
	if h.Requests, err = Register(reg, h.Requests, "http_requests_total"); err != nil {
		return nil, err
	}
	if h.Duration, err = Register(reg, h.Duration, "http_request_duration_seconds"); err != nil {
		return nil, err
	}
	return h, nil
}
