package get_unavailable_dates

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	getUnavailableDates "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/get_unavailable_dates"
)

const (
	msgInvalidYear  = "year must be a four-digit number"
	msgInvalidMonth = "month must be between 1 and 12"
)

type Handler struct {
	useCase GetUnavailableDatesUseCase
	logger  Logger
}

func NewHandler(useCase GetUnavailableDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability/unavailable-dates?year=2026&month=2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	year, err := strconv.Atoi(query.Get("year"))
	if err != nil {
		h.logger.Warn("GET /availability/unavailable-dates - Invalid year: %q", query.Get("year"))
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(query.Get("month"))
	if err != nil {
		h.logger.Warn("GET /availability/unavailable-dates - Invalid month: %q", query.Get("month"))
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getUnavailableDates.Request{Year: year, Month: month})
	if err != nil {
		switch {
		case errors.Is(err, getUnavailableDates.ErrInvalidInput):
			h.logger.Warn("GET /availability/unavailable-dates - Invalid input: year=%d, month=%d", year, month)
			if month < 1 || month > 12 {
				handlers.RespondBadRequest(w, msgInvalidMonth)
			} else {
				handlers.RespondBadRequest(w, msgInvalidYear)
			}

		case errors.Is(err, getUnavailableDates.ErrStore):
			h.logger.Error("GET /availability/unavailable-dates - Store error: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("GET /availability/unavailable-dates - Failed: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
