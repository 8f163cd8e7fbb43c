package payments

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// WebhookVerifier проверяет подпись вебхуков Stripe и переводит события checkout в статусы бронирований
type WebhookVerifier struct {
	secret string
	log    Logger
}

// NewWebhookVerifier создает верификатор с секретом эндпоинта (whsec_...)
func NewWebhookVerifier(secret string, log Logger) *WebhookVerifier {
	return &WebhookVerifier{secret: secret, log: log}
}

// Parse проверяет подпись и разбирает событие
func (v *WebhookVerifier) Parse(payload []byte, signature string) (*Outcome, error) {
	// Версия API аккаунта может отличаться от версии SDK, поля checkout-сессии от этого не меняются
	event, err := webhook.ConstructEventWithOptions(payload, signature, v.secret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}

	outcome := &Outcome{EventID: event.ID, EventType: string(event.Type)}

	var next domain.BookingStatus
	switch outcome.EventType {
	case EventCheckoutCompleted, EventCheckoutAsyncPaymentOK:
		next = domain.StatusConfirmed
	case EventCheckoutExpired, EventCheckoutAsyncPaymentFailed:
		next = domain.StatusCancelled
	default:
		v.log.Info("Parse: event %s type=%s ignored", event.ID, event.Type)
		outcome.Ignored = true
		return outcome, nil
	}

	if event.Data == nil || len(event.Data.Raw) == 0 {
		return nil, fmt.Errorf("%w: event %s has no data", ErrInvalidPayload, event.ID)
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode checkout session: %v", ErrInvalidPayload, err)
	}

	// Асинхронные способы оплаты завершают сессию до поступления денег
	if outcome.EventType == EventCheckoutCompleted && session.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		v.log.Info("Parse: session %s completed unpaid, waiting for async payment", session.ID)
		outcome.Ignored = true
		return outcome, nil
	}

	bookingID, err := uuid.Parse(session.Metadata[MetadataBookingID])
	if err != nil {
		v.log.Warn("Parse: session %s has no valid booking_id: %v", session.ID, err)
		return nil, fmt.Errorf("%w: session %s", ErrMissingBookingID, session.ID)
	}

	outcome.BookingID = bookingID
	outcome.Status = next
	outcome.Payment = paymentInfo(&session)

	return outcome, nil
}

func paymentInfo(session *stripe.CheckoutSession) *domain.PaymentInfo {
	info := &domain.PaymentInfo{
		Provider:    ProviderStripe,
		SessionID:   session.ID,
		AmountTotal: session.AmountTotal,
		Currency:    string(session.Currency),
		Status:      string(session.PaymentStatus),
	}
	if session.PaymentIntent != nil {
		info.PaymentIntentID = session.PaymentIntent.ID
	}
	return info
}
