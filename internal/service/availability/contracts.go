package availability

import (
	"context"
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// AvailabilityRepository интерфейс репозитория доступности дат
type AvailabilityRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityOverride, error)
	Upsert(ctx context.Context, date time.Time, unavailable bool, reason *string) (*domain.AvailabilityOverride, error)
	Toggle(ctx context.Context, date time.Time) (*domain.AvailabilityOverride, error)
}

// MonthCache кэш месячной доступности
type MonthCache interface {
	InvalidateDate(ctx context.Context, date time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
