package create_shift

import (
	"errors"
	"net/http"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidShift       = "startTime must be before endTime (HH:MM) and type must be whole_day or hourly"
	msgShiftCreated       = "Shift created"
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

// Handle POST /api/v1/admin/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateShiftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/shifts - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, shifts.ErrInvalidInput):
			h.logger.Warn("POST /admin/shifts - Invalid shift: %v", err)
			handlers.RespondBadRequest(w, msgInvalidShift)

		case errors.Is(err, shifts.ErrStore):
			h.logger.Error("POST /admin/shifts - Store error: %v", err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("POST /admin/shifts - Failed to create shift: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/shifts - Shift created: shift_id=%s", result.ID)
	handlers.RespondSuccess(w, http.StatusCreated, msgShiftCreated, result)
}
