package handlers

import (
	"context"
	"net/http"
	"strconv"

	"order-policy-service/internal/logx"
)

// MerchantHandler serves merchant policy endpoints.
type MerchantHandler struct {
	logger logx.Logger
	uc     MerchantUsecase
}

// NewMerchantHandler creates a MerchantHandler.
func NewMerchantHandler(logger logx.Logger, uc MerchantUsecase) *MerchantHandler {
	return &MerchantHandler{logger: logger, uc: uc}
}

// Create handles POST /merchants.
func (h *MerchantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMerchantRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	id, err := h.uc.CreateMerchant(r.Context(), req.toModel())
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/merchants/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
}

// Availability handles GET /merchants/{id}/availability.
func (h *MerchantHandler) Availability(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.uc.Availability(r.Context(), id)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, res)
}

// PutSchedule handles PUT /merchants/{id}/schedule. The body is the schedule document.
func (h *MerchantHandler) PutSchedule(w http.ResponseWriter, r *http.Request) {
	h.put(w, r, h.uc.SetSchedule)
}

// PutFeeConfig handles PUT /merchants/{id}/fee-config. The body is the fee config document.
func (h *MerchantHandler) PutFeeConfig(w http.ResponseWriter, r *http.Request) {
	h.put(w, r, h.uc.SetFeeConfig)
}

func (h *MerchantHandler) put(
	w http.ResponseWriter,
	r *http.Request,
	set func(ctx context.Context, merchantID int64, raw []byte) error,
) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	body, ok := readBody(h.logger, w, r)
	if !ok {
		return
	}
	if err := set(r.Context(), id, body); err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, statusResponse{Status: "ok"})
}
