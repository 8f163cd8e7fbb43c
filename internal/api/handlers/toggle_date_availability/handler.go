package toggle_date_availability

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability"
)

const msgInvalidDate = "date must be in YYYY-MM-DD format"

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

// Handle POST /api/v1/admin/availability/{date}/toggle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(raw)
	if err != nil {
		h.logger.Warn("POST /admin/availability/{date}/toggle - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Toggle(r.Context(), date)
	if err != nil {
		if errors.Is(err, availability.ErrStore) {
			h.logger.Error("POST /admin/availability/{date}/toggle - Store error: date=%s, error=%v", raw, err)
			handlers.RespondStoreError(w)
			return
		}
		h.logger.Error("POST /admin/availability/{date}/toggle - Failed: date=%s, error=%v", raw, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/availability/{date}/toggle - date=%s unavailable=%t", raw, result.Unavailable)
	handlers.RespondJSON(w, http.StatusOK, result)
}
