package create_booking

import (
	"errors"
	"net/http"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	createBooking "github.com/dobaato-technical/KnowALocal-sub000/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidFields      = "date must be YYYY-MM-DD and tourId/shiftId valid identifiers"
	msgDateInPast         = "Bookings for past dates are not accepted"
	msgTourNotFound       = "The selected tour does not exist"
	msgTourInactive       = "The selected tour is not available for booking"
	msgBookingCreated     = "Booking created"
)

// Коды, которых нет в доменной таблице конфликтов
const (
	codeDateInPast   = "DATE_IN_PAST"
	codeTourNotFound = "TOUR_NOT_FOUND"
	codeTourInactive = "TOUR_INACTIVE"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondError(w, http.StatusBadRequest, codeDateInPast, msgDateInPast)

		case errors.Is(err, createBooking.ErrTourNotFound):
			h.logger.Warn("POST /bookings - Tour not found: tour_id=%s", req.TourID)
			handlers.RespondError(w, http.StatusBadRequest, codeTourNotFound, msgTourNotFound)

		case errors.Is(err, createBooking.ErrTourInactive):
			h.logger.Warn("POST /bookings - Tour inactive: tour_id=%s", req.TourID)
			handlers.RespondError(w, http.StatusBadRequest, codeTourInactive, msgTourInactive)

		case errors.Is(err, createBooking.ErrShiftNotFound):
			h.logger.Warn("POST /bookings - Shift not found: shift_id=%s", req.ShiftID)
			handlers.RespondError(w, http.StatusBadRequest, string(domain.CodeShiftNotFound), domain.MsgShiftNotFound)

		case errors.Is(err, createBooking.ErrShiftInactive):
			h.logger.Warn("POST /bookings - Shift inactive: shift_id=%s", req.ShiftID)
			handlers.RespondError(w, http.StatusBadRequest, string(domain.CodeShiftInactive), domain.MsgShiftInactive)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: date=%s", req.Date)
			handlers.RespondConflict(w, string(domain.CodeDateUnavailable), domain.MsgDateUnavailable)

		case errors.Is(err, createBooking.ErrConflictWithExistingBooking):
			h.logger.Warn("POST /bookings - Whole day conflicts with existing booking: date=%s, shift_id=%s", req.Date, req.ShiftID)
			handlers.RespondConflict(w, string(domain.CodeConflictWithExistingBooking), domain.MsgConflictWithExistingBooking)

		case errors.Is(err, createBooking.ErrDateAlreadyBooked):
			h.logger.Warn("POST /bookings - Date already booked: date=%s, shift_id=%s", req.Date, req.ShiftID)
			handlers.RespondConflict(w, string(domain.CodeDateAlreadyBooked), domain.MsgDateAlreadyBooked)

		case errors.Is(err, createBooking.ErrStore):
			h.logger.Error("POST /bookings - Store error: date=%s, error=%v", req.Date, err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, tour_id=%s, error=%v", req.Date, req.TourID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, shift_id=%s",
		result.ID, req.Date, req.ShiftID)
	handlers.RespondSuccess(w, http.StatusCreated, msgBookingCreated, FromUseCaseResponse(result))
}
