package set_date_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability/models"
)

const (
	msgInvalidDate        = "date must be in YYYY-MM-DD format"
	msgInvalidRequestBody = "invalid request body"
	msgInvalidReason      = "reason must not exceed 500 characters"
	msgMarkedUnavailable  = "Date marked as unavailable"
	msgMarkedAvailable    = "Date marked as available"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(raw)
	if err != nil {
		h.logger.Warn("PUT /admin/availability/{date} - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req models.SetAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/availability/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), date, &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("PUT /admin/availability/{date} - Invalid input: date=%s, error=%v", raw, err)
			handlers.RespondBadRequest(w, msgInvalidReason)

		case errors.Is(err, availability.ErrStore):
			h.logger.Error("PUT /admin/availability/{date} - Store error: date=%s, error=%v", raw, err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("PUT /admin/availability/{date} - Failed: date=%s, error=%v", raw, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgMarkedAvailable
	if result.Unavailable {
		message = msgMarkedUnavailable
	}

	h.logger.Info("PUT /admin/availability/{date} - date=%s unavailable=%t", raw, result.Unavailable)
	handlers.RespondSuccess(w, http.StatusOK, message, result)
}
