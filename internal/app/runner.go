package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"order-policy-service/internal/logx"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the HTTP server.
type Runner struct {
	runFn func(*dig.Container) error
	exit  func(int)
}

// NewRunner returns a new Runner.
func NewRunner() *Runner {
	return &Runner{runFn: run, exit: os.Exit}
}

// MustRun starts the HTTP server using the provided DI container.
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.exit != nil {
			r.exit(1)
		}
	}
}

type serverIn struct {
	dig.In

	Ctx    context.Context
	Logger logx.Logger
	Server *http.Server
	Pprof  *http.Server  `name:"pprof_server" optional:"true"`
	Pool   *pgxpool.Pool `optional:"true"`
	Redis  *redis.Client `optional:"true"`
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(in serverIn) error {
	listenErr := make(chan error, 2)
	startServer(in.Server, in.Logger, "http", listenErr)
	if in.Pprof != nil {
		startServer(in.Pprof, in.Logger, "admin", listenErr)
	}

	var err error
	select {
	case <-in.Ctx.Done():
		err = in.Ctx.Err()
		in.Logger.Info("shutting down")
	case err = <-listenErr:
		in.Logger.Error("server stopped", logx.Err(err))
	}

	gracefulShutdown(in.Server, in.Logger, shutdownTimeout)
	if in.Pprof != nil {
		gracefulShutdown(in.Pprof, in.Logger, shutdownTimeout)
	}
	closeResources(in.Pool, in.Redis, in.Logger)
	return err
}

func startServer(server *http.Server, logger logx.Logger, name string, errCh chan<- error) {
	go func() {
		logger.Info("server listening", logx.String("server", name), logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown error", logx.String("addr", srv.Addr), logx.Err(err))
	}
}

func closeResources(pool *pgxpool.Pool, rdb *redis.Client, logger logx.Logger) {
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			logger.Error("redis close error", logx.Err(err))
		}
	}
	if pool != nil {
		pool.Close()
	}
}
