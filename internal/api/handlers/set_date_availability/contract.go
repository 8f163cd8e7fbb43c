package set_date_availability

import (
	"context"
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability/models"
)

type AvailabilityService interface {
	Set(ctx context.Context, date time.Time, req *models.SetAvailabilityRequest) (*models.DateAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
