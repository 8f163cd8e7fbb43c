package get_unavailable_dates

import (
	"context"
	"time"
)

// AvailabilityRepository интерфейс репозитория доступности дат
type AvailabilityRepository interface {
	GetUnavailableInRange(ctx context.Context, from, to time.Time) ([]time.Time, error)
}

// MonthCache кэш списка недоступных дат по месяцам
type MonthCache interface {
	GetMonth(ctx context.Context, year int, month time.Month) ([]string, bool, error)
	SetMonth(ctx context.Context, year int, month time.Month, dates []string) error
}

// Metrics счетчики попаданий в кэш
type Metrics interface {
	IncCacheLookup(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
