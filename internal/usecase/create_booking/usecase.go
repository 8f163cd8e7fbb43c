package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	availabilityRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/availability"
	bookingRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/booking"
	shiftRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/shift"
	tourRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/tour"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/txmanager"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo      BookingRepository
	availabilityRepo AvailabilityRepository
	shiftRepo        ShiftRepository
	tourRepo         TourRepository
	txManager        TransactionManager
	metrics          Metrics
	timeProvider     TimeProvider
	currency         string
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	availabilityRepo AvailabilityRepository,
	shiftRepo ShiftRepository,
	tourRepo TourRepository,
	txManager TransactionManager,
	metrics Metrics,
	currency string,
	logger Logger,
) *UseCase {
	if currency == "" {
		currency = domain.DefaultBookingCurrency
	}
	return &UseCase{
		bookingRepo:      bookingRepo,
		availabilityRepo: availabilityRepo,
		shiftRepo:        shiftRepo,
		tourRepo:         tourRepo,
		txManager:        txManager,
		metrics:          metrics,
		timeProvider:     &RealTimeProvider{},
		currency:         strings.ToLower(currency),
		logger:           logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка даты, проверка смены и вставка идут в одной сериализуемой транзакции,
// а уникальный индекс по активным датам не дает двум запросам занять один день
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: tour=%s, shift=%s, date=%s",
		req.TourID, req.ShiftID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	date := domain.DateOnly(req.Date)

	// 2. Прошедшие даты не бронируются
	if isDateInPast(date, uc.timeProvider.Now()) {
		uc.logger.Warn("CreateBooking: date %s is in the past", date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}

	// 3. Получаем тур
	tour, err := uc.tourRepo.GetByID(ctx, req.TourID)
	if err != nil {
		if errors.Is(err, tourRepo.ErrTourNotFound) {
			uc.logger.Warn("CreateBooking: tour id=%s not found", req.TourID)
			return nil, ErrTourNotFound
		}
		uc.logger.Error("CreateBooking: failed to get tour id=%s: %v", req.TourID, err)
		return nil, fmt.Errorf("%w: failed to get tour: %v", ErrStore, err)
	}
	if !tour.IsActive {
		uc.logger.Warn("CreateBooking: tour id=%s is inactive", req.TourID)
		return nil, ErrTourInactive
	}

	var result *domain.Booking

	// 4. Выполняем проверки и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Дата не должна быть закрыта администратором
		override, err := uc.availabilityRepo.GetByDate(txCtx, date)
		if err != nil && !errors.Is(err, availabilityRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateBooking: failed to get availability for %s: %v", date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get availability: %w", ErrStore, err)
		}
		if override != nil && override.Unavailable {
			return uc.reject(domain.CodeDateUnavailable, date)
		}

		// 4.2. Смена существует и активна
		shift, err := uc.shiftRepo.GetByID(txCtx, req.ShiftID)
		if err != nil && !errors.Is(err, shiftRepo.ErrShiftNotFound) {
			uc.logger.Error("CreateBooking: failed to get shift id=%s: %v", req.ShiftID, err)
			return fmt.Errorf("%w: failed to get shift: %w", ErrStore, err)
		}
		if decision, ok := domain.ShiftDecision(shift); !ok {
			return uc.reject(decision.Code, date)
		}

		// 4.3. Активные бронирования на дату с блокировкой (FOR UPDATE)
		bookings, err := uc.bookingRepo.GetActiveByDate(txCtx, date)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings for %s: %v", date.Format(domain.DateFormat), err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrStore, err)
		}

		decision := domain.ResolveShiftConflict(shift.Type, domain.PresenceOf(len(bookings)))
		if decision.HasConflict {
			return uc.reject(decision.Code, date)
		}

		// 4.4. Создаем бронирование с денормализацией данных тура
		booking := &domain.Booking{
			ID:             uuid.New(),
			TourID:         tour.ID,
			ShiftID:        shift.ID,
			Date:           date,
			Status:         domain.StatusPending,
			TourTitle:      tour.Title,
			TotalPrice:     tour.Price * float64(req.Participants),
			Currency:       uc.currency,
			CustomerName:   strings.TrimSpace(req.CustomerName),
			CustomerEmail:  strings.TrimSpace(req.CustomerEmail),
			CustomerPhone:  req.CustomerPhone,
			Participants:   req.Participants,
			AdditionalInfo: req.AdditionalInfo,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrDateAlreadyBooked) {
				return uc.reject(domain.CodeDateAlreadyBooked, date)
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrStore, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельная транзакция заняла дату раньше нас
		if errors.Is(err, txmanager.ErrSerialization) {
			return nil, uc.reject(domain.CodeDateAlreadyBooked, date)
		}
		if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrStore, err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated()
	uc.logger.Info("CreateBooking: successfully created booking id=%s for %s", result.ID, date.Format(domain.DateFormat))

	return toResponse(result), nil
}

// reject логирует и считает отказ, возвращает соответствующую ошибку
func (uc *UseCase) reject(code domain.ConflictCode, date time.Time) error {
	uc.metrics.IncBookingRejected(string(code))
	uc.logger.Warn("CreateBooking: date %s rejected: %s", date.Format(domain.DateFormat), code)
	return errorForCode(code)
}

func toResponse(b *domain.Booking) *Response {
	return &Response{
		ID:             b.ID,
		TourID:         b.TourID,
		ShiftID:        b.ShiftID,
		Date:           b.Date,
		Status:         string(b.Status),
		TourTitle:      b.TourTitle,
		TotalPrice:     b.TotalPrice,
		Currency:       b.Currency,
		CustomerName:   b.CustomerName,
		CustomerEmail:  b.CustomerEmail,
		CustomerPhone:  b.CustomerPhone,
		Participants:   b.Participants,
		AdditionalInfo: b.AdditionalInfo,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
