package app

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/dig"

	"order-policy-service/internal/logx"
	testlog "order-policy-service/internal/testutil"
)

func loggerContainer(t *testing.T, logger logx.Logger) *dig.Container {
	t.Helper()
	c := dig.New()
	require.NoError(t, c.Provide(func() logx.Logger { return logger }))
	return c
}

func TestRunner_MustRun(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		level    string
		msg      string
		wantExit bool
	}{
		{name: "nil error", err: nil},
		{name: "canceled", err: context.Canceled, level: "info", msg: "shutdown requested, exiting"},
		{name: "deadline", err: context.DeadlineExceeded, level: "warn", msg: "startup aborted: startup timeout exceeded"},
		{name: "other error", err: errors.New("boom"), level: "error", msg: "run error", wantExit: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := testlog.New()
			exitCode := -1
			r := &Runner{
				runFn: func(*dig.Container) error { return tt.err },
				exit:  func(code int) { exitCode = code },
			}

			r.MustRun(loggerContainer(t, rec.Logger()))

			if tt.msg == "" {
				require.Empty(t, rec.Entries())
			} else {
				_, ok := rec.Find(tt.level, tt.msg)
				require.True(t, ok)
			}
			if tt.wantExit {
				require.Equal(t, 1, exitCode)
			} else {
				require.Equal(t, -1, exitCode)
			}
		})
	}
}

func TestRunner_MustRun_NoLoggerInContainer(t *testing.T) {
	t.Parallel()

	r := &Runner{runFn: func(*dig.Container) error { return context.Canceled }}
	require.NotPanics(t, func() { r.MustRun(dig.New()) })
}

func TestNewRunner_Defaults(t *testing.T) {
	t.Parallel()

	r := NewRunner()
	require.NotNil(t, r.runFn)
	require.NotNil(t, r.exit)
}

func TestRun_ReturnsCanceledAfterContextCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	rec := testlog.New()

	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return ctx }))
	require.NoError(t, c.Provide(func() logx.Logger { return rec.Logger() }))
	require.NoError(t, c.Provide(func() *http.Server {
		return &http.Server{
			Addr:              "127.0.0.1:0",
			Handler:           http.NotFoundHandler(),
			ReadHeaderTimeout: time.Second,
		}
	}))

	done := make(chan error, 1)
	go func() { done <- run(c) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}

	_, ok := rec.Find("info", "shutting down")
	require.True(t, ok)
}

func TestRun_ListenErrorStopsRun(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	c := dig.New()
	require.NoError(t, c.Provide(func() context.Context { return context.Background() }))
	require.NoError(t, c.Provide(func() logx.Logger { return rec.Logger() }))
	require.NoError(t, c.Provide(func() *http.Server {
		return &http.Server{Addr: "bad-address", ReadHeaderTimeout: time.Second}
	}))

	err := run(c)
	require.Error(t, err)

	_, ok := rec.Find("error", "server stopped")
	require.True(t, ok)
}

func TestGracefulShutdown_IdleServer(t *testing.T) {
	t.Parallel()

	rec := testlog.New()
	srv := &http.Server{Addr: "127.0.0.1:0", ReadHeaderTimeout: time.Second}

	require.NotPanics(t, func() {
		gracefulShutdown(srv, rec.Logger(), time.Second)
	})
	require.Zero(t, rec.Count("error"))
}

func TestCloseResources_NilResources(t *testing.T) {
	t.Parallel()

	require.NotPanics(t, func() {
		closeResources(nil, nil, logx.Nop())
	})
}
