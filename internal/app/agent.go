package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"order-policy-service/internal/config"
	"order-policy-service/internal/gateway/courierapi"
	"order-policy-service/internal/http/pprofserver"
	"order-policy-service/internal/logx"
	"order-policy-service/internal/metrics"
	"order-policy-service/internal/service/location"
)

type agentMetrics struct {
	retries prometheus.Counter
	reports *prometheus.CounterVec
}

func registerAgentMetrics(reg prometheus.Registerer) (agentMetrics, error) {
	retries, err := metrics.Register(reg, metrics.NewGatewayRetriesTotal(), "gateway_retries_total")
	if err != nil {
		return agentMetrics{}, err
	}
	reports, err := metrics.Register(reg, metrics.NewLocationReportsTotal(), "location_reports_total")
	if err != nil {
		return agentMetrics{}, err
	}
	return agentMetrics{retries: retries, reports: reports}, nil
}

// newAgentSender builds the outbound chain: breaker, then retries, then the HTTP client.
func newAgentSender(cfg config.Agent, logger logx.Logger, retries prometheus.Counter) location.Sender {
	client := courierapi.NewClient(cfg.APIURL, cfg.Token, nil, cfg.RequestTimeout)
	retrying := courierapi.NewRetryingSender(client, logger, retries, courierapi.RetryConfig{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
	})
	return courierapi.NewBreakerSender(retrying, logger, courierapi.BreakerConfig{})
}

func newAgentReporter(cfg config.Agent, logger logx.Logger, reg prometheus.Registerer) (*location.Reporter, error) {
	if cfg.CourierID <= 0 {
		return nil, fmt.Errorf("agent courier id must be positive, got %d", cfg.CourierID)
	}
	if cfg.TrackFile == "" {
		return nil, errors.New("agent track file is not configured")
	}

	m, err := registerAgentMetrics(reg)
	if err != nil {
		return nil, err
	}
	track, err := location.LoadTrack(cfg.TrackFile, cfg.TrackInterval)
	if err != nil {
		return nil, err
	}

	return location.NewReporter(track, newAgentSender(cfg, logger, m.retries), logger, m.reports, location.Config{
		CourierID: cfg.CourierID,
		Gate: location.Gate{
			MinInterval:       cfg.MinInterval,
			MinDistanceMeters: cfg.MinDistanceMeters,
		},
		ReportTimeout: cfg.RequestTimeout,
	}), nil
}

// RunAgent reports the courier position until ctx is done.
func RunAgent(ctx context.Context, cfg *config.Config, logger logx.Logger) error {
	return runAgent(ctx, cfg, logger, prometheus.DefaultRegisterer)
}

func runAgent(ctx context.Context, cfg *config.Config, logger logx.Logger, reg prometheus.Registerer) error {
	reporter, err := newAgentReporter(cfg.Agent, logger, reg)
	if err != nil {
		return err
	}
	defer reporter.Close()

	if cfg.Pprof.Enabled {
		admin := &http.Server{
			Addr:              cfg.Pprof.Addr,
			Handler:           pprofserver.Handler(pprofserver.Config{User: cfg.Pprof.User, Pass: cfg.Pprof.Pass}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		adminErr := make(chan error, 1)
		startServer(admin, logger, "admin", adminErr)
		go func() {
			select {
			case err := <-adminErr:
				logger.Error("admin server stopped", logx.Err(err))
			case <-ctx.Done():
			}
		}()
		defer gracefulShutdown(admin, logger, shutdownTimeout)
	}

	if err := reporter.GoOnline(ctx); err != nil {
		return fmt.Errorf("go online: %w", err)
	}
	logger.Info("courier agent online", logx.String("session", reporter.Session()))

	<-ctx.Done()
	reporter.GoOffline()
	logger.Info("courier agent offline", logx.String("state", reporter.State().String()))
	return nil
}
