package payments

import (
	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// Типы событий Stripe, которые меняют статус бронирования
const (
	EventCheckoutCompleted          = "checkout.session.completed"
	EventCheckoutAsyncPaymentOK     = "checkout.session.async_payment_succeeded"
	EventCheckoutAsyncPaymentFailed = "checkout.session.async_payment_failed"
	EventCheckoutExpired            = "checkout.session.expired"
)

// ProviderStripe значение PaymentInfo.Provider
const ProviderStripe = "stripe"

// MetadataBookingID ключ metadata checkout-сессии с ID бронирования
const MetadataBookingID = "booking_id"

// Outcome результат разбора события
// Ignored=true означает, что событие нужно подтвердить и ничего не делать
type Outcome struct {
	EventID   string
	EventType string
	Ignored   bool

	BookingID uuid.UUID
	Status    domain.BookingStatus
	Payment   *domain.PaymentInfo
}
