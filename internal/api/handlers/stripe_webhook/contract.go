package stripe_webhook

import (
	"context"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/integrations/payments"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
)

type WebhookVerifier interface {
	Parse(payload []byte, signature string) (*payments.Outcome, error)
}

type BookingService interface {
	ApplyPaymentEvent(ctx context.Context, event *models.PaymentEvent) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
