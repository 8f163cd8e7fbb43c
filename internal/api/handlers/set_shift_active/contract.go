package set_shift_active

import (
	"context"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts/models"
)

type ShiftService interface {
	SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.ShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
