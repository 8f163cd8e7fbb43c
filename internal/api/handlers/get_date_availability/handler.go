package get_date_availability

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
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

// Handle GET /api/v1/admin/availability/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	raw := mux.Vars(r)["date"]
	date, err := handlers.ParseDate(raw)
	if err != nil {
		h.logger.Warn("GET /admin/availability/{date} - Invalid date: %q", raw)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.GetDate(r.Context(), date)
	if err != nil {
		h.logger.Error("GET /admin/availability/{date} - Failed: date=%s, error=%v", raw, err)
		handlers.RespondStoreError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
