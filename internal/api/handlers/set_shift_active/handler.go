package set_shift_active

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts/models"
)

const (
	msgInvalidShiftID     = "invalid shift ID"
	msgInvalidRequestBody = "invalid request body"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/shifts/{shiftId}/active
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftID, err := handlers.ParseUUID(mux.Vars(r)["shiftId"])
	if err != nil {
		h.logger.Warn("PATCH /admin/shifts/{id}/active - Invalid shift ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	var req models.SetActiveRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/shifts/{id}/active - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetActive(r.Context(), shiftID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrShiftNotFound):
			handlers.RespondError(w, http.StatusNotFound, string(domain.CodeShiftNotFound), domain.MsgShiftNotFound)

		case errors.Is(err, shifts.ErrStore):
			h.logger.Error("PATCH /admin/shifts/{id}/active - Store error: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("PATCH /admin/shifts/{id}/active - Failed: shift_id=%s, error=%v", shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/shifts/{id}/active - shift_id=%s active=%t", shiftID, result.IsActive)
	handlers.RespondJSON(w, http.StatusOK, result)
}
