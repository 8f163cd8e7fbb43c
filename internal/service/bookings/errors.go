package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings.service: booking not found")

	// ErrInvalidStatusTransition возвращается, когда переход запрещен машиной состояний
	ErrInvalidStatusTransition = errors.New("bookings.service: invalid status transition")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("bookings.service: invalid input data")

	// ErrStore возвращается при ошибках хранилища
	ErrStore = errors.New("bookings.service: store unavailable")
)
