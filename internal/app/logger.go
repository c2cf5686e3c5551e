package app

import (
	"os"

	"order-policy-service/internal/config"
	"order-policy-service/internal/logx"
)

// NewLogger returns a JSON logger writing to stdout at the configured level.
func NewLogger(cfg *config.Config) logx.Logger {
	return logx.NewJSON(os.Stdout, cfg.LogLevel).With(logx.String("service", "order-policy"))
}
