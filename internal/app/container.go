package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"order-policy-service/internal/cache"
	"order-policy-service/internal/config"
	"order-policy-service/internal/http/handlers"
	"order-policy-service/internal/http/middleware/ratelimit"
	"order-policy-service/internal/http/pprofserver"
	"order-policy-service/internal/http/router"
	"order-policy-service/internal/logx"
	"order-policy-service/internal/metrics"
	"order-policy-service/internal/policy/availability"
	"order-policy-service/internal/policy/fee"
	"order-policy-service/internal/repository"
	"order-policy-service/internal/service/courier"
	"order-policy-service/internal/service/quote"
)

type dbConnectFunc func(context.Context, logx.Logger, string, int, time.Duration) (*pgxpool.Pool, error)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect dbConnectFunc
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder.
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function.
func (b *ContainerBuilder) WithDBConnect(fn dbConnectFunc) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the fatal logging function.
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds the HTTP server container.
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx, registerHTTP)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// MustBuildWorker builds the orders worker container.
func (b *ContainerBuilder) MustBuildWorker(ctx context.Context) *dig.Container {
	container, err := b.build(ctx, registerWorker)
	if err != nil {
		b.logFatalf("failed to build worker container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context, outer func(*dig.Container) error) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerCache(container); err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	if err := registerDomainServices(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := outer(container); err != nil {
		return nil, fmt.Errorf("outer: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds the HTTP server container with defaults.
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

// MustBuildWorkerContainer builds the worker container with defaults.
func MustBuildWorkerContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuildWorker(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		config.Load,
		NewLogger,
		provideMetrics,
	)
}

func registerDb(container *dig.Container, dbConnect dbConnectFunc) error {
	providerDB := func(ctx context.Context, cfg *config.Config, logger logx.Logger) (*pgxpool.Pool, error) {
		return dbConnect(ctx, logger, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerCache(container *dig.Container) error {
	return provideAll(container, provideRedis)
}

// provideRedis returns nil when no address is configured.
func provideRedis(ctx context.Context, cfg *config.Config, logger logx.Logger) (*redis.Client, error) {
	if cfg.Redis.Addr == "" {
		logger.Info("merchant cache disabled: redis address not configured")
		return nil, nil
	}
	return cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
}

type merchantStoreIn struct {
	dig.In

	Pool   *pgxpool.Pool
	Redis  *redis.Client `optional:"true"`
	Config *config.Config
	Logger logx.Logger
}

func newMerchantStore(in merchantStoreIn) quote.MerchantStore {
	repo := repository.NewMerchantRepo(in.Pool)
	if in.Redis == nil {
		return repo
	}
	return cache.NewMerchantCache(repo, in.Redis, in.Config.Policy.CacheTTL, in.Logger)
}

type quoteServiceIn struct {
	dig.In

	Config      *config.Config
	Logger      logx.Logger
	Merchants   quote.MerchantStore
	Quotes      *repository.QuoteRepo
	Couriers    *courier.Service
	Evaluator   *availability.Evaluator
	DefaultFees *fee.Config
	Metrics     *metrics.Policy `optional:"true"`
}

func newQuoteService(in quoteServiceIn) *quote.Service {
	return quote.NewService(quote.Params{
		Merchants:   in.Merchants,
		Quotes:      in.Quotes,
		Couriers:    in.Couriers,
		Evaluator:   in.Evaluator,
		DefaultFees: in.DefaultFees,
		Metrics:     in.Metrics,
		Logger:      in.Logger,
		Timeout:     in.Config.Policy.OperationTimeout,
	})
}

func registerDomainServices(container *dig.Container) error {
	return provideAll(container,
		repository.NewQuoteRepo,
		repository.NewCourierRepo,
		newMerchantStore,
		func(cfg *config.Config) (*fee.Config, error) {
			return config.LoadFeeDefaults(cfg.Policy.FeeScheduleFile)
		},
		func(cfg *config.Config, logger logx.Logger) *availability.Evaluator {
			return availability.NewEvaluator(cfg.Policy.DefaultOpen, logger)
		},
		func(repo *repository.CourierRepo, cfg *config.Config) *courier.Service {
			return courier.NewService(repo, cfg.Policy.OperationTimeout)
		},
		newQuoteService,
	)
}

type routerIn struct {
	dig.In

	Logger    logx.Logger
	Metrics   *metrics.HTTP `optional:"true"`
	RateLimit *ratelimit.Middleware
	Base      *handlers.Handlers
	Quotes    *handlers.QuoteHandler
	Merchants *handlers.MerchantHandler
	Couriers  *handlers.CourierHandler
}

func newRouter(in routerIn) http.Handler {
	return router.New(router.Deps{
		Logger:    in.Logger,
		Metrics:   in.Metrics,
		RateLimit: in.RateLimit,
		Base:      in.Base,
		Quotes:    in.Quotes,
		Merchants: in.Merchants,
		Couriers:  in.Couriers,
	})
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	if err := provideAll(container,
		handlers.New,
		func(s *quote.Service) handlers.QuoteUsecase { return s },
		func(s *quote.Service) handlers.MerchantUsecase { return s },
		func(s *courier.Service) handlers.CourierUsecase { return s },
		handlers.NewQuoteHandler,
		handlers.NewMerchantHandler,
		handlers.NewCourierHandler,
		newRateLimitClock,
		newRateLimiter,
		newRateLimitMiddleware,
		newRouter,
		serverProvider,
	); err != nil {
		return err
	}
	return container.Provide(newPprofServer, dig.Name("pprof_server"))
}

// newPprofServer returns nil when the admin server is disabled.
func newPprofServer(cfg *config.Config) *http.Server {
	if !cfg.Pprof.Enabled {
		return nil
	}
	return &http.Server{
		Addr: cfg.Pprof.Addr,
		Handler: pprofserver.Handler(pprofserver.Config{
			User: cfg.Pprof.User,
			Pass: cfg.Pprof.Pass,
		}),
		ReadHeaderTimeout: 5 * time.Second,
	}
}
