package orders

import (
	"context"
	"errors"

	"order-policy-service/internal/apperr"
	"order-policy-service/internal/logx"
)

// Processor processes orders events
type Processor struct {
	quotes  QuotePort
	logger  logx.Logger
	factory *actionFactory
}

// NewProcessor creates a new orders.Processor
func NewProcessor(quotes QuotePort, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	p := &Processor{
		quotes: quotes,
		logger: logger,
	}
	p.factory = newActionFactory(p.onCreated, p.onCanceled)
	return p
}

// Handle processes a single orders.Event. Unknown statuses are ignored.
func (p *Processor) Handle(ctx context.Context, e Event) error {
	if p.factory == nil {
		return nil
	}
	fn, ok := p.factory.get(e.Status)
	if !ok {
		p.logger.Debug("order status ignored",
			logx.String("order_id", e.OrderID),
			logx.String("status", e.Status),
		)
		return nil
	}
	return fn(ctx, e)
}

func (p *Processor) onCreated(ctx context.Context, e Event) error {
	q, err := p.quotes.QuoteOrder(ctx, e.Request())
	if err != nil {
		return err
	}
	p.logger.Info("order quoted",
		logx.String("order_id", q.OrderID),
		logx.Int64("merchant_id", q.MerchantID),
		logx.Bool("accepted", q.Accepted),
		logx.String("fee", q.Fee.String()),
		logx.String("fee_source", q.FeeSource),
	)
	return nil
}

func (p *Processor) onCanceled(ctx context.Context, e Event) error {
	err := p.quotes.DropOrder(ctx, e.OrderID)
	if errors.Is(err, apperr.ErrNotFound) {
		return nil
	}
	return err
}
