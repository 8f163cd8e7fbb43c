package get_unavailable_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
)

// UseCase use case получения недоступных дат месяца
type UseCase struct {
	availabilityRepo AvailabilityRepository
	cache            MonthCache
	metrics          Metrics
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(availabilityRepo AvailabilityRepository, cache MonthCache, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		cache:            cache,
		metrics:          metrics,
		logger:           logger,
	}
}

// Execute возвращает даты месяца, явно отмеченные недоступными
// Ошибка кэша не мешает ответу из хранилища
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetUnavailableDates: validation failed: %v", err)
		return nil, err
	}

	month := time.Month(req.Month)

	cached, hit, err := uc.cache.GetMonth(ctx, req.Year, month)
	switch {
	case err != nil:
		uc.metrics.IncCacheLookup("error")
		uc.logger.Warn("GetUnavailableDates: cache read %04d-%02d failed: %v", req.Year, req.Month, err)
	case hit:
		uc.metrics.IncCacheLookup("hit")
		return &Response{Year: req.Year, Month: req.Month, Dates: cached}, nil
	default:
		uc.metrics.IncCacheLookup("miss")
	}

	// Последний день месяца с учетом високосных лет
	from, to := domain.MonthRange(req.Year, month)

	dates, err := uc.availabilityRepo.GetUnavailableInRange(ctx, from, to)
	if err != nil {
		uc.logger.Error("GetUnavailableDates: failed to get dates for %04d-%02d: %v", req.Year, req.Month, err)
		return nil, fmt.Errorf("%w: %v", ErrStore, err)
	}

	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, d.Format(domain.DateFormat))
	}

	if err := uc.cache.SetMonth(ctx, req.Year, month, result); err != nil {
		uc.logger.Warn("GetUnavailableDates: cache write %04d-%02d failed: %v", req.Year, req.Month, err)
	}

	return &Response{Year: req.Year, Month: req.Month, Dates: result}, nil
}
