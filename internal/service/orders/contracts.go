//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=orders_test

package orders

import (
	"context"

	"order-policy-service/internal/domain"
)

// QuotePort abstracts the subset of quote service operations
// needed by orders Processor when handling order events
type QuotePort interface {
	QuoteOrder(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
	DropOrder(ctx context.Context, orderID string) error
}
