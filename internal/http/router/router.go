package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"order-policy-service/internal/http/handlers"
	"order-policy-service/internal/http/middleware"
	"order-policy-service/internal/http/middleware/ratelimit"
	"order-policy-service/internal/logx"
	"order-policy-service/internal/metrics"
)

// Deps are the router's collaborators. Metrics and RateLimit may be nil.
type Deps struct {
	Logger    logx.Logger
	Metrics   *metrics.HTTP
	RateLimit *ratelimit.Middleware

	Base      *handlers.Handlers
	Quotes    *handlers.QuoteHandler
	Merchants *handlers.MerchantHandler
	Couriers  *handlers.CourierHandler
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Observability(d.Logger, d.Metrics))
	r.Use(chimw.Recoverer)
	if d.RateLimit != nil {
		r.Use(d.RateLimit.Handler())
	}
	r.Use(chimw.Timeout(5 * time.Second))

	r.Get("/ping", d.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(d.Base.HealthcheckHead))

	r.Route("/orders", func(r chi.Router) {
		r.Post("/quote", d.Quotes.Quote)
		r.Get("/{order_id}/quote", d.Quotes.Get)
	})

	r.Post("/merchants", d.Merchants.Create)
	r.Route("/merchants/{id}", func(r chi.Router) {
		r.Get("/availability", d.Merchants.Availability)
		r.Put("/schedule", d.Merchants.PutSchedule)
		r.Put("/fee-config", d.Merchants.PutFeeConfig)
	})

	r.Post("/couriers", d.Couriers.Create)
	r.Patch("/courier/{id}/location", d.Couriers.UpdateLocation)

	r.NotFound(http.HandlerFunc(d.Base.NotFound))
	return r
}
