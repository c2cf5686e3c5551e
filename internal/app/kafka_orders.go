package app

import (
	"context"
	"errors"

	"order-policy-service/internal/apperr"
	"order-policy-service/internal/service/orders"
	"order-policy-service/internal/transport/kafka"
)

type eventHandler interface {
	Handle(ctx context.Context, e orders.Event) error
}

// makeOrdersKafka marks input and missing-merchant failures as permanent so
// the consumer skips them instead of redelivering forever.
func makeOrdersKafka(h eventHandler) kafka.HandleFunc {
	return func(ctx context.Context, event orders.Event) error {
		err := h.Handle(ctx, event)
		if err == nil {
			return nil
		}
		if errors.Is(err, apperr.ErrInvalid) || errors.Is(err, apperr.ErrNotFound) {
			return kafka.Permanent(err)
		}
		return err
	}
}
