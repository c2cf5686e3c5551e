package handlers

import (
	"net/http"
	"strconv"

	"order-policy-service/internal/logx"
)

// CourierHandler serves courier endpoints.
type CourierHandler struct {
	logger logx.Logger
	uc     CourierUsecase
}

// NewCourierHandler creates a CourierHandler.
func NewCourierHandler(logger logx.Logger, uc CourierUsecase) *CourierHandler {
	return &CourierHandler{logger: logger, uc: uc}
}

// Create handles POST /couriers.
func (h *CourierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCourierRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}

	id, err := h.uc.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	w.Header().Set("Location", "/courier/"+strconv.FormatInt(id, 10))
	writeJSON(h.logger, w, r, http.StatusCreated, idResponse{ID: id})
}

// UpdateLocation handles PATCH /courier/{id}/location.
func (h *CourierHandler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req locationRequest
	if !decodeJSON(h.logger, w, r, &req) {
		return
	}
	if req.Lat == nil || req.Lon == nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "lat and lon are required")
		return
	}

	loc, err := h.uc.UpdateLocation(r.Context(), id, *req.Lat, *req.Lon)
	if err != nil {
		writeServiceError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, locationToResponse(loc))
}
