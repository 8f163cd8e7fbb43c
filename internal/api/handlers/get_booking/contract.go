package get_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
)

type BookingService interface {
	GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
