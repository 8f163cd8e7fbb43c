package booking

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"
)

func newRepoMock(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	wrapped := dbmetrics.Wrap(db, nil)
	return NewRepository(wrapped), wrapped, mock, func() { db.Close() }
}

func bookingRow(id uuid.UUID, date time.Time, status domain.BookingStatus) []driver.Value {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	return []driver.Value{
		id.String(), uuid.NewString(), uuid.NewString(), date, string(status),
		"Old Town Walk", 90.0, "usd", "Jane Doe", "jane@example.com", nil, 2,
		[]byte(`{"provider":"stripe","session_id":"cs_test_1"}`), nil, false, nil, now, now,
	}
}

func newBooking() *domain.Booking {
	return &domain.Booking{
		ID:            uuid.New(),
		TourID:        uuid.New(),
		ShiftID:       uuid.New(),
		Date:          time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
		Status:        domain.StatusPending,
		TourTitle:     "Old Town Walk",
		TotalPrice:    90,
		Currency:      "usd",
		CustomerName:  "Jane Doe",
		CustomerEmail: "jane@example.com",
		Participants:  2,
	}
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO bookings \\(id,tour_id,shift_id,date,status").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), newBooking())
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolation(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "bookings_one_active_per_date"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrDateAlreadyBooked)
}

func TestRepository_Create_OtherError(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO bookings").
		WillReturnError(&pq.Error{Code: "23503", Constraint: "bookings_tour_id_fkey"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.False(t, errors.Is(err, ErrDateAlreadyBooked))
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	id := uuid.New()
	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1 AND is_deleted = \\$2$").
		WithArgs(id.String(), false).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRow(id, date, domain.StatusPending)...))

	b, err := repo.GetByID(context.Background(), id, false)
	require.NoError(t, err)
	assert.Equal(t, id, b.ID)
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Nil(t, b.CustomerPhone)
	require.NotNil(t, b.PaymentInfo)
	assert.Equal(t, "cs_test_1", b.PaymentInfo.SessionID)
	assert.Nil(t, b.DeletedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM bookings").WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), uuid.New(), true)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetActiveByDate_LocksInTransaction(t *testing.T) {
	repo, db, mock, cleanup := newRepoMock(t)
	defer cleanup()

	date := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE date = \\$1 AND is_deleted = \\$2 AND status IN \\(\\$3,\\$4\\) ORDER BY created_at ASC FOR UPDATE").
		WithArgs(date, false, "pending", "confirmed").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRow(uuid.New(), date, domain.StatusConfirmed)...))
	mock.ExpectRollback()

	tx, err := db.BeginTx(context.Background(), nil)
	require.NoError(t, err)

	bookings, err := repo.GetActiveByDate(dbmetrics.WithTx(context.Background(), tx), date)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)

	require.NoError(t, tx.Rollback())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveByDate_NoLockOutsideTransaction(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("ORDER BY created_at ASC$").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := repo.GetActiveByDate(context.Background(), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, bookings)
}

func TestRepository_GetActiveByDate_KeepsDriverError(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("FROM bookings").
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access"})

	_, err := repo.GetActiveByDate(context.Background(), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrExecQuery)

	var pqErr *pq.Error
	require.True(t, errors.As(err, &pqErr))
	assert.Equal(t, "40001", string(pqErr.Code))
}

func TestRepository_List_Filter(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	from := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	status := domain.StatusConfirmed

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE date >= \\$1 AND date <= \\$2 AND status = \\$3 AND is_deleted = \\$4 ORDER BY date DESC, created_at DESC").
		WithArgs(from, to, "confirmed", false).
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(bookingRow(uuid.New(), from, status)...))

	bookings, err := repo.List(context.Background(), domain.BookingsFilter{From: &from, To: &to, Status: &status})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE bookings SET status = \\$1, updated_at = NOW\\(\\), payment_info = \\$2 WHERE id = \\$3 AND status = \\$4 AND is_deleted = \\$5").
		WithArgs("confirmed", sqlmock.AnyArg(), id.String(), "pending", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), id, domain.StatusPending, domain.StatusConfirmed,
		&domain.PaymentInfo{Provider: "stripe", SessionID: "cs_test_1"})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus_Changed(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec("UPDATE bookings SET status = \\$1, updated_at = NOW\\(\\) WHERE").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), uuid.New(), domain.StatusPending, domain.StatusCancelled, nil)
	assert.ErrorIs(t, err, ErrStatusChanged)
}

func TestRepository_SoftDelete(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("UPDATE bookings SET is_deleted = \\$1, deleted_at = NOW\\(\\), updated_at = NOW\\(\\) WHERE id = \\$2 AND is_deleted = \\$3").
		WithArgs(true, id.String(), false).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.SoftDelete(context.Background(), id))

	mock.ExpectExec("UPDATE bookings SET is_deleted").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.SoftDelete(context.Background(), id), ErrBookingNotFound)
}

func TestRepository_Create_SerializationFailure(t *testing.T) {
	repo, _, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("INSERT INTO bookings").WillReturnError(&pq.Error{Code: "40001"})

	_, err := repo.Create(context.Background(), newBooking())
	assert.ErrorIs(t, err, ErrDateAlreadyBooked)
}
