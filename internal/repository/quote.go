package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"order-policy-service/internal/apperr"
	"order-policy-service/internal/domain"
)

// QuoteRepo stores the policy decision per order.
type QuoteRepo struct{ db *pgxpool.Pool }

// NewQuoteRepo creates a new QuoteRepo.
func NewQuoteRepo(db *pgxpool.Pool) *QuoteRepo { return &QuoteRepo{db: db} }

// Save upserts the quote keyed by order id. An unknown merchant yields apperr.ErrNotFound.
func (r *QuoteRepo) Save(ctx context.Context, q *domain.Quote) error {
	_, err := r.db.Exec(ctx, `
        INSERT INTO order_quotes
            (id, order_id, merchant_id, accepted, next_open_hint, distance_km, fee, fee_source, fallback, quoted_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7::numeric, $8, $9, $10)
        ON CONFLICT (order_id) DO UPDATE SET
            id             = EXCLUDED.id,
            merchant_id    = EXCLUDED.merchant_id,
            accepted       = EXCLUDED.accepted,
            next_open_hint = EXCLUDED.next_open_hint,
            distance_km    = EXCLUDED.distance_km,
            fee            = EXCLUDED.fee,
            fee_source     = EXCLUDED.fee_source,
            fallback       = EXCLUDED.fallback,
            quoted_at      = EXCLUDED.quoted_at
    `, q.ID, q.OrderID, q.MerchantID, q.Accepted, q.NextOpenHint, q.DistanceKm,
		q.Fee.String(), q.FeeSource, q.Fallback, q.QuotedAt)
	if err != nil {
		if IsForeignKey(err) {
			return fmt.Errorf("merchant %d: %w", q.MerchantID, apperr.ErrNotFound)
		}
		return fmt.Errorf("save quote for order %s: %w", q.OrderID, err)
	}
	return nil
}

// GetByOrderID returns the stored quote or nil when there is none.
func (r *QuoteRepo) GetByOrderID(ctx context.Context, orderID string) (*domain.Quote, error) {
	var (
		q   domain.Quote
		fee string
	)
	err := r.db.QueryRow(ctx, `
        SELECT id::text, order_id, merchant_id, accepted, next_open_hint, distance_km, fee::text, fee_source, fallback, quoted_at
        FROM order_quotes
        WHERE order_id = $1
    `, orderID).Scan(&q.ID, &q.OrderID, &q.MerchantID, &q.Accepted, &q.NextOpenHint, &q.DistanceKm,
		&fee, &q.FeeSource, &q.Fallback, &q.QuotedAt)
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get quote for order %s: %w", orderID, err)
	}
	if q.Fee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("quote fee %q: %w", fee, err)
	}
	return &q, nil
}

// DeleteByOrderID removes the stored quote and reports whether one existed.
func (r *QuoteRepo) DeleteByOrderID(ctx context.Context, orderID string) (bool, error) {
	ct, err := r.db.Exec(ctx, `DELETE FROM order_quotes WHERE order_id = $1`, orderID)
	if err != nil {
		return false, fmt.Errorf("delete quote for order %s: %w", orderID, err)
	}
	return ct.RowsAffected() > 0, nil
}
