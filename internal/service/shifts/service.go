package shifts

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	shiftRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/shift"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/shifts/models"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/types"
)

// Service сервис каталога смен
type Service struct {
	shiftRepo ShiftRepository
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(shiftRepo ShiftRepository, logger Logger) *Service {
	return &Service{shiftRepo: shiftRepo, logger: logger}
}

// List возвращает смены, для публичной формы только активные
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.ShiftListResponse, error) {
	shifts, err := s.shiftRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStore, err)
	}

	return models.FromDomainShiftList(shifts), nil
}

// Create создает смену после проверки времени и типа
func (s *Service) Create(ctx context.Context, req *models.CreateShiftRequest) (*models.ShiftResponse, error) {
	shift, err := toDomainShift(req)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.shiftRepo.Create(ctx, shift)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrStore, err)
	}

	s.logger.Info("Create: shift id=%s (%s, %s-%s) created", created.ID, created.Type, created.StartTime, created.EndTime)
	return models.FromDomainShift(created), nil
}

// SetActive включает или выключает смену
// Существующие бронирования на выключенную смену остаются в силе
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, active bool) (*models.ShiftResponse, error) {
	if err := s.shiftRepo.SetActive(ctx, id, active); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftNotFound) {
			s.logger.Warn("SetActive: shift id=%s not found", id)
			return nil, ErrShiftNotFound
		}
		s.logger.Error("SetActive: repository error for shift id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: SetActive - repository error: %v", ErrStore, err)
	}

	shift, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("SetActive: failed to reload shift id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStore, err)
	}

	s.logger.Info("SetActive: shift id=%s active=%t", id, active)
	return models.FromDomainShift(shift), nil
}

func toDomainShift(req *models.CreateShiftRequest) (*domain.Shift, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > domain.MaxShiftNameLength {
		return nil, fmt.Errorf("%w: name must be 1..%d characters", ErrInvalidInput, domain.MaxShiftNameLength)
	}

	shiftType := domain.ShiftType(req.Type)
	if !shiftType.IsValid() {
		return nil, fmt.Errorf("%w: type must be whole_day or hourly", ErrInvalidInput)
	}

	start, err := types.NewTimeStringFromString(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeStringFromString(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	return &domain.Shift{
		ID:        uuid.New(),
		Name:      name,
		StartTime: start,
		EndTime:   end,
		Type:      shiftType,
		IsActive:  active,
	}, nil
}
