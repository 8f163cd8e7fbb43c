package list_shifts

import (
	"context"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts/models"
)

type ShiftService interface {
	List(ctx context.Context, activeOnly bool) (*models.ShiftListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
