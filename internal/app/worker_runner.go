package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/dig"

	"order-policy-service/internal/logx"
	"order-policy-service/internal/transport/kafka"
)

// WorkerRunner runs the orders worker.
type WorkerRunner struct {
	runFn func(*dig.Container) error
}

// NewWorkerRunner returns a new WorkerRunner.
func NewWorkerRunner() *WorkerRunner {
	return &WorkerRunner{runFn: runWorker}
}

// MustRun runs the worker and panics on any error other than cancellation.
func (r *WorkerRunner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil || errors.Is(err, context.Canceled) {
		return
	}
	panic(err)
}

type workerIn struct {
	dig.In

	Ctx      context.Context
	Logger   logx.Logger
	Consumer *kafka.Consumer `optional:"true"`
	Pool     *pgxpool.Pool   `optional:"true"`
	Redis    *redis.Client   `optional:"true"`
}

func runWorker(container *dig.Container) error {
	return container.Invoke(workerRun)
}

func workerRun(in workerIn) error {
	if in.Consumer == nil {
		return fmt.Errorf("kafka consumer is nil: worker container misconfigured")
	}
	defer closeWorker(in)

	in.Logger.Info("order-policy-worker started")
	return in.Consumer.Run(in.Ctx)
}

func closeWorker(in workerIn) {
	if err := in.Consumer.Close(); err != nil {
		in.Logger.Error("kafka close error", logx.Err(err))
	}
	closeResources(in.Pool, in.Redis, in.Logger)
}
