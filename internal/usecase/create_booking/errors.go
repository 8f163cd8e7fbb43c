package create_booking

import (
	"errors"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrDateInPast возвращается при попытке забронировать прошедшую дату
	ErrDateInPast = errors.New("create_booking: date is in the past")

	// ErrTourNotFound возвращается, когда тур не найден
	ErrTourNotFound = errors.New("create_booking: tour not found")

	// ErrTourInactive возвращается, когда тур снят с продажи
	ErrTourInactive = errors.New("create_booking: tour is inactive")

	// ErrShiftNotFound возвращается, когда смена не найдена
	ErrShiftNotFound = errors.New("create_booking: shift not found")

	// ErrShiftInactive возвращается, когда смена отключена
	ErrShiftInactive = errors.New("create_booking: shift is inactive")

	// ErrDateUnavailable возвращается, когда дата закрыта администратором
	ErrDateUnavailable = errors.New("create_booking: date is unavailable")

	// ErrConflictWithExistingBooking возвращается при попытке взять целый день на занятую дату
	ErrConflictWithExistingBooking = errors.New("create_booking: conflict with existing booking")

	// ErrDateAlreadyBooked возвращается, когда дата уже занята другим бронированием
	ErrDateAlreadyBooked = errors.New("create_booking: date already booked")

	// ErrStore возвращается, когда хранилище не ответило и доступность не определена
	ErrStore = errors.New("create_booking: store unavailable")
)

// errorForCode сопоставляет код отказа таблицы решений с ошибкой use case
func errorForCode(code domain.ConflictCode) error {
	switch code {
	case domain.CodeShiftNotFound:
		return ErrShiftNotFound
	case domain.CodeShiftInactive:
		return ErrShiftInactive
	case domain.CodeConflictWithExistingBooking:
		return ErrConflictWithExistingBooking
	case domain.CodeDateUnavailable:
		return ErrDateUnavailable
	default:
		return ErrDateAlreadyBooked
	}
}
