package handlers_test

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"order-policy-service/internal/domain"
	"order-policy-service/internal/logx"
	"order-policy-service/internal/policy/availability"
)

func testLogger() logx.Logger { return logx.Nop() }

func withURLParam(req *http.Request, key, value string) *http.Request {
	rc := chi.NewRouteContext()
	rc.URLParams.Add(key, value)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rc))
}

type stubQuoteUsecase struct {
	quoteFn      func(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
	quoteOrderFn func(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)
	storedFn     func(ctx context.Context, orderID string) (*domain.Quote, error)
}

func (s *stubQuoteUsecase) Quote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	return s.quoteFn(ctx, req)
}

func (s *stubQuoteUsecase) QuoteOrder(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	return s.quoteOrderFn(ctx, req)
}

func (s *stubQuoteUsecase) StoredQuote(ctx context.Context, orderID string) (*domain.Quote, error) {
	return s.storedFn(ctx, orderID)
}

type stubMerchantUsecase struct {
	createFn       func(ctx context.Context, m *domain.Merchant) (int64, error)
	availabilityFn func(ctx context.Context, id int64) (availability.Result, error)
	scheduleFn     func(ctx context.Context, id int64, raw []byte) error
	feeConfigFn    func(ctx context.Context, id int64, raw []byte) error
}

func (s *stubMerchantUsecase) CreateMerchant(ctx context.Context, m *domain.Merchant) (int64, error) {
	return s.createFn(ctx, m)
}

func (s *stubMerchantUsecase) Availability(ctx context.Context, id int64) (availability.Result, error) {
	return s.availabilityFn(ctx, id)
}

func (s *stubMerchantUsecase) SetSchedule(ctx context.Context, id int64, raw []byte) error {
	return s.scheduleFn(ctx, id, raw)
}

func (s *stubMerchantUsecase) SetFeeConfig(ctx context.Context, id int64, raw []byte) error {
	return s.feeConfigFn(ctx, id, raw)
}

type stubCourierUsecase struct {
	createFn   func(ctx context.Context, name string) (int64, error)
	locationFn func(ctx context.Context, id int64, lat, lon float64) (*domain.CourierLocation, error)
}

func (s *stubCourierUsecase) Create(ctx context.Context, name string) (int64, error) {
	return s.createFn(ctx, name)
}

func (s *stubCourierUsecase) UpdateLocation(ctx context.Context, id int64, lat, lon float64) (*domain.CourierLocation, error) {
	return s.locationFn(ctx, id, lat, lon)
}
