package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"order-policy-service/internal/metrics"
)

type metricsOut struct {
	dig.Out

	RateLimitExceededTotal prometheus.Counter `name:"rate_limit_exceeded_total"`
	Policy                 *metrics.Policy
	HTTP                   *metrics.HTTP
}

func provideMetrics() (metricsOut, error) {
	reg := prometheus.DefaultRegisterer

	rl, err := metrics.Register(reg, metrics.NewRateLimitExceededTotal(), "rate_limit_exceeded_total")
	if err != nil {
		return metricsOut{}, err
	}
	policy, err := metrics.RegisterPolicy(reg)
	if err != nil {
		return metricsOut{}, err
	}
	httpMetrics, err := metrics.RegisterHTTP(reg)
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		RateLimitExceededTotal: rl,
		Policy:                 policy,
		HTTP:                   httpMetrics,
	}, nil
}
