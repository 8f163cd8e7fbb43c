package check_shift_conflicts

import (
	"errors"
	"net/http"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	checkShiftConflicts "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/check_shift_conflicts"
)

const (
	msgInvalidDate    = "date must be in YYYY-MM-DD format"
	msgInvalidShiftID = "shiftId must be a valid identifier"
)

type Handler struct {
	useCase CheckShiftConflictsUseCase
	logger  Logger
}

func NewHandler(useCase CheckShiftConflictsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/check?date=2026-06-01&shiftId=<uuid>
// Конфликт - это успешный ответ с hasConflict=true, ошибкой считается только невозможность проверить
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := handlers.ParseDate(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid date: %q", query.Get("date"))
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	shiftID, err := handlers.ParseUUID(query.Get("shiftId"))
	if err != nil {
		h.logger.Warn("GET /availability/check - Invalid shift ID: %q", query.Get("shiftId"))
		handlers.RespondBadRequest(w, msgInvalidShiftID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkShiftConflicts.Request{Date: date, ShiftID: shiftID})
	if err != nil {
		switch {
		case errors.Is(err, checkShiftConflicts.ErrInvalidInput):
			h.logger.Warn("GET /availability/check - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkShiftConflicts.ErrStore):
			h.logger.Error("GET /availability/check - Store error: date=%s, shift_id=%s, error=%v", query.Get("date"), shiftID, err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("GET /availability/check - Failed: date=%s, shift_id=%s, error=%v", query.Get("date"), shiftID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)
	handlers.RespondSuccess(w, http.StatusOK, response.Message, response)
}
