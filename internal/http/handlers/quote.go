package handlers

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"order-policy-service/internal/logx"
)

// QuoteHandler serves order pricing endpoints.
type QuoteHandler struct {
	logger logx.Logger
	uc     QuoteUsecase
}

// NewQuoteHandler creates a QuoteHandler.
func NewQuoteHandler(logger logx.Logger, uc QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{logger: logger, uc: uc}
}

// Quote handles POST /orders/quote. A request carrying order_id is persisted.
func (h *QuoteHandler) Quote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	in := req.toModel()
	quote := h.uc.Quote
	if strings.TrimSpace(in.OrderID) != "" {
		quote = h.uc.QuoteOrder
	}

	q, err := quote(r.Context(), in)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteToResponse(q))
}

// Get handles GET /orders/{order_id}/quote.
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.uc.StoredQuote(r.Context(), chi.URLParam(r, "order_id"))
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, quoteToResponse(q))
}
