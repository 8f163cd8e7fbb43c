package availability

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	availabilityRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/availability"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/availability/models"
)

// Service сервис управления доступностью дат
type Service struct {
	availabilityRepo AvailabilityRepository
	cache            MonthCache
	logger           Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(availabilityRepo AvailabilityRepository, cache MonthCache, logger Logger) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		cache:            cache,
		logger:           logger,
	}
}

// GetDate возвращает состояние даты, без записи дата доступна
func (s *Service) GetDate(ctx context.Context, date time.Time) (*models.DateAvailabilityResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	override, err := s.availabilityRepo.GetByDate(ctx, date)
	if errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
		return models.FromDomain(domain.DefaultAvailability(date), false), nil
	}
	if err != nil {
		s.logger.Error("GetDate: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetDate - repository error: %v", ErrStore, err)
	}

	return models.FromDomain(override, true), nil
}

// Set применяет запрос администратора: закрыть дату с причиной или открыть
func (s *Service) Set(ctx context.Context, date time.Time, req *models.SetAvailabilityRequest) (*models.DateAvailabilityResponse, error) {
	if req.Unavailable {
		return s.SetUnavailable(ctx, date, req.Reason)
	}
	return s.SetAvailable(ctx, date)
}

// SetUnavailable закрывает дату для бронирования
func (s *Service) SetUnavailable(ctx context.Context, date time.Time, reason *string) (*models.DateAvailabilityResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	reason = normalizeReason(reason)
	if reason != nil && len(*reason) > domain.MaxReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxReasonLength)
	}

	override, err := s.availabilityRepo.Upsert(ctx, date, true, reason)
	if err != nil {
		s.logger.Error("SetUnavailable: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: SetUnavailable - repository error: %v", ErrStore, err)
	}

	s.invalidate(ctx, date)
	s.logger.Info("SetUnavailable: date %s closed", date.Format(domain.DateFormat))

	return models.FromDomain(override, true), nil
}

// SetAvailable открывает дату, причина стирается
func (s *Service) SetAvailable(ctx context.Context, date time.Time) (*models.DateAvailabilityResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	override, err := s.availabilityRepo.Upsert(ctx, date, false, nil)
	if err != nil {
		s.logger.Error("SetAvailable: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: SetAvailable - repository error: %v", ErrStore, err)
	}

	s.invalidate(ctx, date)
	s.logger.Info("SetAvailable: date %s opened", date.Format(domain.DateFormat))

	return models.FromDomain(override, true), nil
}

// Toggle инвертирует доступность даты одним запросом к хранилищу
func (s *Service) Toggle(ctx context.Context, date time.Time) (*models.DateAvailabilityResponse, error) {
	if date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	override, err := s.availabilityRepo.Toggle(ctx, date)
	if err != nil {
		s.logger.Error("Toggle: repository error for %s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Toggle - repository error: %v", ErrStore, err)
	}

	s.invalidate(ctx, date)
	s.logger.Info("Toggle: date %s unavailable=%t", date.Format(domain.DateFormat), override.Unavailable)

	return models.FromDomain(override, true), nil
}

// invalidate сбрасывает кэш месяца, ошибка кэша не отменяет записанное
func (s *Service) invalidate(ctx context.Context, date time.Time) {
	if err := s.cache.InvalidateDate(ctx, date); err != nil {
		s.logger.Warn("invalidate: failed to drop month cache for %s: %v", date.Format(domain.DateFormat), err)
	}
}

func normalizeReason(reason *string) *string {
	if reason == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*reason)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
