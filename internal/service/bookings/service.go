package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	bookingRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/booking"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/txmanager"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Мягко удаленные бронирования видны только при includeDeleted
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*models.BookingResponse, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id, includeDeleted)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStore, err)
	}

	return models.FromDomainBooking(booking), nil
}

// List получает бронирования с фильтрацией по периоду и статусу
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrStore, err)
	}

	s.logger.Info("List: fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus переводит бронирование в новый статус по машине состояний
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	next, err := domain.ParseBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Booking
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.load(txCtx, id)
		if err != nil {
			return err
		}
		if err := s.transition(txCtx, booking, next, nil); err != nil {
			return err
		}
		updated = booking
		return nil
	})
	if err != nil {
		return nil, txError(err)
	}

	s.logger.Info("UpdateStatus: booking id=%s moved to status=%s", id, next)
	return models.FromDomainBooking(updated), nil
}

// Delete мягко удаляет бронирование, дата становится свободной
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.bookingRepo.SoftDelete(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Delete: booking id=%s not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Delete: repository error for booking id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrStore, err)
	}

	s.logger.Info("Delete: booking id=%s soft-deleted", id)
	return nil
}

// ApplyPaymentEvent применяет результат оплаты к бронированию
// Повторная доставка того же события ничего не меняет
func (s *Service) ApplyPaymentEvent(ctx context.Context, event *models.PaymentEvent) error {
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.load(txCtx, event.BookingID)
		if err != nil {
			return err
		}

		if booking.Status == event.Status {
			s.logger.Info("ApplyPaymentEvent: booking id=%s already %s", booking.ID, booking.Status)
			return nil
		}

		// Платеж решает судьбу только ожидающего бронирования,
		// событие старой сессии не отменяет уже оплаченное
		if booking.Status != domain.StatusPending {
			s.logger.Warn("ApplyPaymentEvent: booking id=%s is %s, ignoring %s from payment",
				booking.ID, booking.Status, event.Status)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, event.Status)
		}

		if err := s.transition(txCtx, booking, event.Status, event.Payment); err != nil {
			return err
		}

		s.logger.Info("ApplyPaymentEvent: booking id=%s moved to status=%s", booking.ID, event.Status)
		return nil
	})
	return txError(err)
}

// txError ошибки открытия и коммита транзакции - это тоже недоступность хранилища
func txError(err error) error {
	if errors.Is(err, txmanager.ErrSerialization) {
		return fmt.Errorf("%w: status changed concurrently", ErrInvalidStatusTransition)
	}
	if errors.Is(err, txmanager.ErrBeginTx) || errors.Is(err, txmanager.ErrCommitTx) {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}
	return err
}

// transition проверяет переход по машине состояний и обновляет статус
// Внутри транзакции строка уже заблокирована при чтении (FOR UPDATE)
func (s *Service) transition(ctx context.Context, booking *domain.Booking, next domain.BookingStatus, payment *domain.PaymentInfo) error {
	if !booking.Status.CanTransitionTo(next) {
		s.logger.Warn("transition: booking id=%s cannot move %s -> %s", booking.ID, booking.Status, next)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, booking.Status, next)
	}

	err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status, next, payment)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrStatusChanged) {
			s.logger.Warn("transition: booking id=%s changed concurrently", booking.ID)
			return fmt.Errorf("%w: status changed concurrently", ErrInvalidStatusTransition)
		}
		s.logger.Error("transition: repository error for booking id=%s: %v", booking.ID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrStore, err)
	}

	booking.Status = next
	if payment != nil {
		booking.PaymentInfo = payment
	}

	return nil
}

func (s *Service) load(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id, false)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("load: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("load: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrStore, err)
	}
	return booking, nil
}
