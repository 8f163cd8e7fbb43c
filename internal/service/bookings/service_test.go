package bookings

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	bookingRepo "github.com/dobaato-technical/KnowALocal-sub000/internal/infra/storage/booking"
	"github.com/dobaato-technical/KnowALocal-sub000/internal/service/bookings/models"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/logger"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/ptr"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/txmanager"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Booking, error) {
	args := m.Called(ctx, id, includeDeleted)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	b, _ := args.Get(0).([]*domain.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, payment *domain.PaymentInfo) error {
	return m.Called(ctx, id, from, to, payment).Error(0)
}

func (m *mockBookingRepo) SoftDelete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func setup() (*Service, *mockBookingRepo) {
	repo := &mockBookingRepo{}
	return NewService(repo, inlineTx{}, logger.NewNop()), repo
}

func booking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:     uuid.New(),
		TourID: uuid.New(),
		Date:   time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Status: status,
	}
}

func TestUpdateStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from, to domain.BookingStatus
	}{
		{domain.StatusPending, domain.StatusConfirmed},
		{domain.StatusPending, domain.StatusCancelled},
		{domain.StatusConfirmed, domain.StatusCompleted},
		{domain.StatusConfirmed, domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			svc, repo := setup()
			b := booking(tt.from)
			repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)
			repo.On("UpdateStatus", mock.Anything, b.ID, tt.from, tt.to, (*domain.PaymentInfo)(nil)).Return(nil)

			resp, err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: string(tt.to)})
			require.NoError(t, err)
			assert.Equal(t, string(tt.to), resp.Status)
			repo.AssertExpectations(t)
		})
	}
}

func TestUpdateStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		from, to domain.BookingStatus
	}{
		{domain.StatusPending, domain.StatusCompleted},
		{domain.StatusPending, domain.StatusPending},
		{domain.StatusConfirmed, domain.StatusPending},
		{domain.StatusCancelled, domain.StatusConfirmed},
		{domain.StatusCompleted, domain.StatusCancelled},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			svc, repo := setup()
			b := booking(tt.from)
			repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)

			_, err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: string(tt.to)})
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
			repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	svc, _ := setup()

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), &models.UpdateStatusRequest{Status: "refunded"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdateStatus_ConcurrentChange(t *testing.T) {
	svc, repo := setup()
	b := booking(domain.StatusPending)
	repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, b.ID, domain.StatusPending, domain.StatusConfirmed, mock.Anything).
		Return(bookingRepo.ErrStatusChanged)

	_, err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestGetByID(t *testing.T) {
	svc, repo := setup()
	b := booking(domain.StatusConfirmed)
	deletedAt := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	b.IsDeleted = true
	b.DeletedAt = &deletedAt

	repo.On("GetByID", mock.Anything, b.ID, true).Return(b, nil)
	repo.On("GetByID", mock.Anything, b.ID, false).Return(nil, bookingRepo.ErrBookingNotFound)

	resp, err := svc.GetByID(context.Background(), b.ID, true)
	require.NoError(t, err)
	assert.True(t, resp.IsDeleted)
	assert.Equal(t, "2026-02-01T10:00:00Z", *resp.DeletedAt)
	assert.Equal(t, "2026-06-01", resp.Date)

	_, err = svc.GetByID(context.Background(), b.ID, false)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList(t *testing.T) {
	svc, repo := setup()
	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	status := domain.StatusPending

	repo.On("List", mock.Anything, domain.BookingsFilter{From: &from, To: &to, Status: &status}).
		Return([]*domain.Booking{booking(domain.StatusPending), booking(domain.StatusPending)}, nil)

	resp, err := svc.List(context.Background(), &models.ListBookingsRequest{From: &from, To: &to, Status: ptr.Ptr("pending")})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestList_InvalidFilter(t *testing.T) {
	svc, _ := setup()
	from := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestList_StoreError(t *testing.T) {
	svc, repo := setup()
	repo.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{})
	assert.ErrorIs(t, err, ErrStore)
}

func TestDelete(t *testing.T) {
	svc, repo := setup()
	id := uuid.New()
	missing := uuid.New()

	repo.On("SoftDelete", mock.Anything, id).Return(nil)
	repo.On("SoftDelete", mock.Anything, missing).Return(bookingRepo.ErrBookingNotFound)

	assert.NoError(t, svc.Delete(context.Background(), id))
	assert.ErrorIs(t, svc.Delete(context.Background(), missing), ErrBookingNotFound)
}

func TestApplyPaymentEvent_Confirms(t *testing.T) {
	svc, repo := setup()
	b := booking(domain.StatusPending)
	payment := &domain.PaymentInfo{Provider: "stripe", SessionID: "cs_test_1", AmountTotal: 9000, Currency: "usd"}

	repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, b.ID, domain.StatusPending, domain.StatusConfirmed, payment).Return(nil)

	err := svc.ApplyPaymentEvent(context.Background(), &models.PaymentEvent{BookingID: b.ID, Status: domain.StatusConfirmed, Payment: payment})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestApplyPaymentEvent_DuplicateDelivery(t *testing.T) {
	svc, repo := setup()
	b := booking(domain.StatusConfirmed)
	repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)

	err := svc.ApplyPaymentEvent(context.Background(), &models.PaymentEvent{BookingID: b.ID, Status: domain.StatusConfirmed})
	require.NoError(t, err)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplyPaymentEvent_TerminalBooking(t *testing.T) {
	svc, repo := setup()
	b := booking(domain.StatusCancelled)
	repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)

	err := svc.ApplyPaymentEvent(context.Background(), &models.PaymentEvent{BookingID: b.ID, Status: domain.StatusConfirmed})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
}

func TestApplyPaymentEvent_ExpiredSessionKeepsPaidBooking(t *testing.T) {
	svc, repo := setup()
	paid := &domain.PaymentInfo{Provider: "stripe", SessionID: "cs_paid", AmountTotal: 9000, Currency: "usd", Status: "paid"}
	b := booking(domain.StatusConfirmed)
	b.PaymentInfo = paid
	repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)

	err := svc.ApplyPaymentEvent(context.Background(), &models.PaymentEvent{
		BookingID: b.ID,
		Status:    domain.StatusCancelled,
		Payment:   &domain.PaymentInfo{Provider: "stripe", SessionID: "cs_old", Status: "unpaid"},
	})
	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Same(t, paid, b.PaymentInfo)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

type failingCommitTx struct{}

func (failingCommitTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		return err
	}
	return fmt.Errorf("%w: connection lost", txmanager.ErrCommitTx)
}

func TestUpdateStatus_CommitFailureIsStoreError(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := NewService(repo, failingCommitTx{}, logger.NewNop())
	b := booking(domain.StatusPending)
	repo.On("GetByID", mock.Anything, b.ID, false).Return(b, nil)
	repo.On("UpdateStatus", mock.Anything, b.ID, domain.StatusPending, domain.StatusConfirmed, (*domain.PaymentInfo)(nil)).Return(nil)

	_, err := svc.UpdateStatus(context.Background(), b.ID, &models.UpdateStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, ErrStore)
}
