package stripe_webhook

import (
	"errors"
	"io"
	"net/http"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/api/handlers"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/integrations/payments"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
)

// maxPayloadBytes события Stripe существенно меньше
const maxPayloadBytes = 64 << 10

const signatureHeader = "Stripe-Signature"

const (
	msgInvalidPayload = "invalid webhook payload"
	msgInvalidSig     = "invalid webhook signature"
	msgAccepted       = "Event processed"
	msgIgnored        = "Event ignored"
)

type Handler struct {
	verifier WebhookVerifier
	service  BookingService
	logger   Logger
}

func NewHandler(verifier WebhookVerifier, service BookingService, logger Logger) *Handler {
	return &Handler{
		verifier: verifier,
		service:  service,
		logger:   logger,
	}
}

// Handle POST /api/v1/webhooks/stripe
// 2xx останавливает повторные доставки, поэтому 5xx отдаем только когда повтор имеет смысл
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	payload, err := io.ReadAll(io.LimitReader(r.Body, maxPayloadBytes))
	if err != nil {
		h.logger.Warn("POST /webhooks/stripe - Failed to read body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPayload)
		return
	}

	outcome, err := h.verifier.Parse(payload, r.Header.Get(signatureHeader))
	if err != nil {
		switch {
		case errors.Is(err, payments.ErrInvalidSignature):
			h.logger.Warn("POST /webhooks/stripe - Signature verification failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSig)

		case errors.Is(err, payments.ErrMissingBookingID):
			// Сессия не относится к бронированиям, повтор ничего не изменит
			h.logger.Warn("POST /webhooks/stripe - Event without booking reference acknowledged: %v", err)
			handlers.RespondSuccess(w, http.StatusOK, msgIgnored, nil)

		default:
			h.logger.Warn("POST /webhooks/stripe - Invalid payload: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPayload)
		}
		return
	}

	if outcome.Ignored {
		handlers.RespondSuccess(w, http.StatusOK, msgIgnored, nil)
		return
	}

	err = h.service.ApplyPaymentEvent(r.Context(), &models.PaymentEvent{
		BookingID: outcome.BookingID,
		Status:    outcome.Status,
		Payment:   outcome.Payment,
	})
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidStatusTransition), errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /webhooks/stripe - Event %s (%s) not applied to booking_id=%s: %v",
				outcome.EventID, outcome.EventType, outcome.BookingID, err)
			handlers.RespondSuccess(w, http.StatusOK, msgIgnored, nil)

		case errors.Is(err, bookings.ErrStore):
			h.logger.Error("POST /webhooks/stripe - Store error for event %s: %v", outcome.EventID, err)
			handlers.RespondStoreError(w)

		default:
			h.logger.Error("POST /webhooks/stripe - Failed to apply event %s: %v", outcome.EventID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /webhooks/stripe - Event %s (%s) applied: booking_id=%s status=%s",
		outcome.EventID, outcome.EventType, outcome.BookingID, outcome.Status)
	handlers.RespondSuccess(w, http.StatusOK, msgAccepted, nil)
}
