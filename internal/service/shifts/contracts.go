package shifts

import (
	"context"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// ShiftRepository интерфейс репозитория смен
type ShiftRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Shift, error)
	List(ctx context.Context, activeOnly bool) ([]*domain.Shift, error)
	Create(ctx context.Context, shift *domain.Shift) (*domain.Shift, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
