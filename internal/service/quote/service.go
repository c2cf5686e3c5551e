package quote

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"order-policy-service/internal/apperr"
	"order-policy-service/internal/domain"
	"order-policy-service/internal/logx"
	"order-policy-service/internal/metrics"
	"order-policy-service/internal/policy/availability"
	"order-policy-service/internal/policy/fee"
)

// Params holds the Service dependencies. Couriers, Metrics and Logger are optional.
type Params struct {
	Merchants   MerchantStore
	Quotes      QuoteStore
	Couriers    CourierLocator
	Evaluator   *availability.Evaluator
	DefaultFees *fee.Config
	Metrics     *metrics.Policy
	Logger      logx.Logger
	Timeout     time.Duration
}

// Service decides whether an order attempt is accepted and what it costs.
type Service struct {
	merchants   MerchantStore
	quotes      QuoteStore
	couriers    CourierLocator
	evaluator   *availability.Evaluator
	defaultFees *fee.Config
	metrics     *metrics.Policy
	logger      logx.Logger
	timeout     time.Duration
	now         func() time.Time
	newID       func() string
}

// NewService creates a quote Service.
func NewService(p Params) *Service {
	if p.Logger == nil {
		p.Logger = logx.Nop()
	}
	if p.Evaluator == nil {
		p.Evaluator = availability.NewEvaluator(true, p.Logger)
	}
	if p.DefaultFees == nil {
		def := fee.DefaultConfig()
		p.DefaultFees = &def
	}
	if p.Timeout <= 0 {
		p.Timeout = 3 * time.Second
	}
	return &Service{
		merchants:   p.Merchants,
		quotes:      p.Quotes,
		couriers:    p.Couriers,
		evaluator:   p.Evaluator,
		defaultFees: p.DefaultFees,
		metrics:     p.Metrics,
		logger:      p.Logger,
		timeout:     p.Timeout,
		now:         time.Now,
		newID:       uuid.NewString,
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.timeout)
}

// Quote evaluates availability first and, when the merchant is open,
// resolves the delivery fee for the trip.
func (s *Service) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	m, err := s.merchant(ctx, req.MerchantID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	q := &domain.Quote{
		ID:         s.newID(),
		OrderID:    req.OrderID,
		MerchantID: m.ID,
		QuotedAt:   now.UTC(),
	}

	avail := s.evaluator.EvaluateRaw(m.Schedule, now)
	s.metrics.ObserveAvailability(avail.Open)
	if !avail.Open {
		q.NextOpenHint = avail.NextOpenHint
		return q, nil
	}

	distance, err := s.distance(ctx, m, req)
	if err != nil {
		return nil, err
	}

	resolved := fee.Resolve(s.feeConfig(m), distance, req.OrderAmount)
	s.metrics.ObserveFee(string(resolved.Source), resolved.Fallback)
	if resolved.Fallback {
		s.logger.Warn("distance outside fee schedule, using nearest tier",
			logx.Int64("merchant_id", m.ID),
			logx.Float64("distance_km", distance),
			logx.Float64("tier_min_km", resolved.Tier.MinKm),
			logx.Float64("tier_max_km", resolved.Tier.MaxKm),
		)
	}

	q.Accepted = true
	q.DistanceKm = distance
	q.Fee = resolved.Fee
	q.FeeSource = string(resolved.Source)
	q.Fallback = resolved.Fallback
	return q, nil
}

// QuoteOrder quotes the order and stores the decision under its order id.
func (s *Service) QuoteOrder(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	if strings.TrimSpace(req.OrderID) == "" {
		return nil, fmt.Errorf("order id is empty: %w", apperr.ErrInvalid)
	}
	q, err := s.Quote(ctx, req)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if err := s.quotes.Save(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

// StoredQuote returns the decision stored for orderID.
func (s *Service) StoredQuote(ctx context.Context, orderID string) (*domain.Quote, error) {
	if strings.TrimSpace(orderID) == "" {
		return nil, fmt.Errorf("order id is empty: %w", apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	q, err := s.quotes.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, fmt.Errorf("quote for order %s: %w", orderID, apperr.ErrNotFound)
	}
	return q, nil
}

// DropOrder removes the decision stored for orderID.
func (s *Service) DropOrder(ctx context.Context, orderID string) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.quotes.DeleteByOrderID(ctx, orderID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("quote for order %s: %w", orderID, apperr.ErrNotFound)
	}
	return nil
}

// Availability evaluates only whether the merchant is open now.
func (s *Service) Availability(ctx context.Context, merchantID int64) (availability.Result, error) {
	if merchantID <= 0 {
		return availability.Result{}, fmt.Errorf("merchant id must be positive: %w", apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	m, err := s.merchant(ctx, merchantID)
	if err != nil {
		return availability.Result{}, err
	}
	res := s.evaluator.EvaluateRaw(m.Schedule, s.now())
	s.metrics.ObserveAvailability(res.Open)
	return res, nil
}

// CreateMerchant validates and stores a merchant. Schedule and FeeConfig may be empty.
func (s *Service) CreateMerchant(ctx context.Context, m *domain.Merchant) (int64, error) {
	if m == nil || strings.TrimSpace(m.Name) == "" {
		return 0, fmt.Errorf("merchant name is empty: %w", apperr.ErrInvalid)
	}
	if !m.Location.Valid() {
		return 0, fmt.Errorf("merchant location out of range: %w", apperr.ErrInvalid)
	}
	if m.Schedule != "" {
		if _, err := availability.ParseSchedule([]byte(m.Schedule)); err != nil {
			return 0, fmt.Errorf("%v: %w", err, apperr.ErrInvalid)
		}
	}
	if m.FeeConfig != "" {
		if _, err := fee.ParseJSON([]byte(m.FeeConfig)); err != nil {
			return 0, fmt.Errorf("%v: %w", err, apperr.ErrInvalid)
		}
	}
	m.Name = strings.TrimSpace(m.Name)

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.merchants.Create(ctx, m)
}

// SetSchedule validates and stores the merchant's schedule document.
func (s *Service) SetSchedule(ctx context.Context, merchantID int64, raw []byte) error {
	if _, err := availability.ParseSchedule(raw); err != nil {
		return fmt.Errorf("%v: %w", err, apperr.ErrInvalid)
	}
	return s.update(ctx, merchantID, raw, s.merchants.UpdateSchedule)
}

// SetFeeConfig validates and stores the merchant's fee config document.
func (s *Service) SetFeeConfig(ctx context.Context, merchantID int64, raw []byte) error {
	if _, err := fee.ParseJSON(raw); err != nil {
		return fmt.Errorf("%v: %w", err, apperr.ErrInvalid)
	}
	return s.update(ctx, merchantID, raw, s.merchants.UpdateFeeConfig)
}

func (s *Service) update(
	ctx context.Context,
	merchantID int64,
	raw []byte,
	fn func(context.Context, int64, string) (bool, error),
) error {
	if merchantID <= 0 {
		return fmt.Errorf("merchant id must be positive: %w", apperr.ErrInvalid)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := fn(ctx, merchantID, strings.TrimSpace(string(raw)))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("merchant %d: %w", merchantID, apperr.ErrNotFound)
	}
	return nil
}

func (s *Service) merchant(ctx context.Context, id int64) (*domain.Merchant, error) {
	m, err := s.merchants.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, fmt.Errorf("merchant %d: %w", id, apperr.ErrNotFound)
	}
	return m, nil
}

// distance returns the explicit trip distance or derives it from the
// merchant, destination and, when known, the courier's position.
func (s *Service) distance(ctx context.Context, m *domain.Merchant, req domain.QuoteRequest) (float64, error) {
	if req.DistanceKm != nil {
		return *req.DistanceKm, nil
	}
	if req.Destination == nil {
		return 0, fmt.Errorf("distance or destination is required: %w", apperr.ErrInvalid)
	}

	km := domain.DistanceKm(m.Location, *req.Destination)
	if req.CourierID == nil || s.couriers == nil {
		return km, nil
	}
	loc, err := s.couriers.Location(ctx, *req.CourierID)
	if err != nil {
		return 0, fmt.Errorf("courier %d location: %w", *req.CourierID, err)
	}
	if loc != nil {
		km += domain.DistanceKm(loc.Position, m.Location)
	}
	return km, nil
}

// feeConfig parses the merchant's fee document. A missing document uses the
// configured defaults silently; an unusable one is logged.
func (s *Service) feeConfig(m *domain.Merchant) *fee.Config {
	cfg, err := fee.ParseJSON([]byte(m.FeeConfig))
	if err == nil {
		return cfg
	}
	if !errors.Is(err, fee.ErrNoConfig) {
		s.logger.Warn("fee config unusable, using default schedule",
			logx.Int64("merchant_id", m.ID),
			logx.Err(err),
		)
	}
	return s.defaultFees
}

func validateRequest(req domain.QuoteRequest) error {
	if req.MerchantID <= 0 {
		return fmt.Errorf("merchant id must be positive: %w", apperr.ErrInvalid)
	}
	if req.OrderAmount != nil && req.OrderAmount.IsNegative() {
		return fmt.Errorf("order amount must not be negative: %w", apperr.ErrInvalid)
	}
	if req.DistanceKm != nil && (math.IsNaN(*req.DistanceKm) || math.IsInf(*req.DistanceKm, 0)) {
		return fmt.Errorf("distance must be finite: %w", apperr.ErrInvalid)
	}
	if req.Destination != nil && !req.Destination.Valid() {
		return fmt.Errorf("destination out of range: %w", apperr.ErrInvalid)
	}
	if req.CourierID != nil && *req.CourierID <= 0 {
		return fmt.Errorf("courier id must be positive: %w", apperr.ErrInvalid)
	}
	return nil
}
