package payments

import "errors"

var (
	// ErrInvalidSignature возвращается, когда подпись Stripe-Signature не прошла проверку
	ErrInvalidSignature = errors.New("payments webhook: invalid signature")

	// ErrInvalidPayload возвращается при некорректном теле события
	ErrInvalidPayload = errors.New("payments webhook: invalid payload")

	// ErrMissingBookingID возвращается, когда в metadata сессии нет booking_id
	ErrMissingBookingID = errors.New("payments webhook: booking_id metadata is missing or invalid")
)
