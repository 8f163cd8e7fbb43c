package check_shift_conflicts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	shiftRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/shift"
)

// UseCase use case проверки, можно ли забронировать смену на дату
type UseCase struct {
	shiftRepo   ShiftRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(shiftRepo ShiftRepository, bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		shiftRepo:   shiftRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Execute прогоняет смену через таблицу решений
// Мягко удаленные и неактивные бронирования дату не занимают
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.ShiftID == uuid.Nil {
		return nil, fmt.Errorf("%w: shiftId is required", ErrInvalidInput)
	}

	date := domain.DateOnly(req.Date)

	decision, err := uc.resolve(ctx, date, req.ShiftID)
	if err != nil {
		return nil, err
	}

	if decision.HasConflict {
		uc.logger.Info("CheckShiftConflicts: date=%s shift=%s rejected: %s",
			date.Format(domain.DateFormat), req.ShiftID, decision.Code)
	}

	return &Response{
		Date:        date,
		ShiftID:     req.ShiftID,
		HasConflict: decision.HasConflict,
		Code:        decision.Code,
		Message:     decision.Message,
	}, nil
}

func (uc *UseCase) resolve(ctx context.Context, date time.Time, shiftID uuid.UUID) (domain.Decision, error) {
	// 1. Смена должна существовать и быть активной
	shift, err := uc.shiftRepo.GetByID(ctx, shiftID)
	if err != nil && !errors.Is(err, shiftRepo.ErrShiftNotFound) {
		uc.logger.Error("CheckShiftConflicts: failed to get shift id=%s: %v", shiftID, err)
		return domain.Decision{}, fmt.Errorf("%w: failed to get shift: %v", ErrStore, err)
	}

	if decision, ok := domain.ShiftDecision(shift); !ok {
		return decision, nil
	}

	// 2. Любое активное бронирование на дату исключает новое
	bookings, err := uc.bookingRepo.GetActiveByDate(ctx, date)
	if err != nil {
		uc.logger.Error("CheckShiftConflicts: failed to get bookings for %s: %v", date.Format(domain.DateFormat), err)
		return domain.Decision{}, fmt.Errorf("%w: failed to get bookings: %v", ErrStore, err)
	}

	return domain.ResolveShiftConflict(shift.Type, domain.PresenceOf(countActive(bookings))), nil
}

func countActive(bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if b.IsActive() {
			count++
		}
	}
	return count
}
