package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Policy groups the counters of availability and fee decisions.
// A nil *Policy is valid and records nothing.
type Policy struct {
	Evaluations   *prometheus.CounterVec
	Resolutions   *prometheus.CounterVec
	TierFallbacks prometheus.Counter
}

// NewPolicy returns unregistered policy counters.
func NewPolicy() *Policy {
	return &Policy{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "availability_evaluations_total",
			Help: "Total number of merchant availability evaluations by outcome",
		}, []string{"open"}),
		Resolutions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fee_resolutions_total",
			Help: "Total number of resolved delivery fees by source",
		}, []string{"source"}),
		TierFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fee_tier_fallback_total",
			Help: "Total number of fee resolutions outside every distance band",
		}),
	}
}

// Collectors returns the collectors to register.
func (p *Policy) Collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Evaluations, p.Resolutions, p.TierFallbacks}
}

// ObserveAvailability counts one availability evaluation.
func (p *Policy) ObserveAvailability(open bool) {
	if p == nil {
		return
	}
	p.Evaluations.WithLabelValues(strconv.FormatBool(open)).Inc()
}

// ObserveFee counts one fee resolution.
func (p *Policy) ObserveFee(source string, fallback bool) {
	if p == nil {
		return
	}
	p.Resolutions.WithLabelValues(source).Inc()
	if fallback {
		p.TierFallbacks.Inc()
	}
}
