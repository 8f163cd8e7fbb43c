package list_shifts

import (
	"errors"
	"net/http"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts"
)

type Handler struct {
	service    ShiftService
	activeOnly bool
	logger     Logger
}

// NewHandler activeOnly=true для публичной формы, false для админки
func NewHandler(service ShiftService, activeOnly bool, logger Logger) *Handler {
	return &Handler{
		service:    service,
		activeOnly: activeOnly,
		logger:     logger,
	}
}

// Handle GET /api/v1/shifts, GET /api/v1/admin/shifts
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), h.activeOnly)
	if err != nil {
		h.logger.Error("GET /shifts - Failed to list shifts: active_only=%t, error=%v", h.activeOnly, err)
		if errors.Is(err, shifts.ErrStore) {
			handlers.RespondStoreError(w)
		} else {
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
