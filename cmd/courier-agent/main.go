package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"order-policy-service/internal/app"
	"order-policy-service/internal/config"
	"order-policy-service/internal/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}
	logger := app.NewLogger(cfg)

	if err := app.RunAgent(ctx, cfg, logger); err != nil {
		logger.Error("courier agent stopped", logx.Err(err))
		log.Fatalf("courier agent: %v", err)
	}
}
