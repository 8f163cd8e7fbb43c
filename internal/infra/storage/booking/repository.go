package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/psqlbuilder"
)

const (
	uniqueViolation      = "23505"
	serializationFailure = "40001"
	activeDateIndex      = "bookings_one_active_per_date"
	bookingsTableName    = "bookings"
)

var bookingColumns = []string{
	"id",
	"tour_id",
	"shift_id",
	"date",
	"status",
	"tour_title",
	"total_price",
	"currency",
	"customer_name",
	"customer_email",
	"customer_phone",
	"participants",
	"payment_info",
	"additional_info",
	"is_deleted",
	"deleted_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её.
//
// Второе активное бронирование на ту же дату отсекается уникальным индексом,
// а в SERIALIZABLE транзакции гонку может прервать сам postgres (40001).
// Оба случая означают, что дату заняли параллельно: ErrDateAlreadyBooked
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(bookingsTableName).
		Columns(
			"id",
			"tour_id",
			"shift_id",
			"date",
			"status",
			"tour_title",
			"total_price",
			"currency",
			"customer_name",
			"customer_email",
			"customer_phone",
			"participants",
			"payment_info",
			"additional_info",
		).
		Values(
			booking.ID,
			booking.TourID,
			booking.ShiftID,
			domain.DateOnly(booking.Date),
			booking.Status,
			booking.TourTitle,
			booking.TotalPrice,
			booking.Currency,
			booking.CustomerName,
			booking.CustomerEmail,
			booking.CustomerPhone,
			booking.Participants,
			booking.PaymentInfo,
			booking.AdditionalInfo,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&booking.CreatedAt, &booking.UpdatedAt)
	if err != nil {
		if isDateTaken(err) {
			return nil, ErrDateAlreadyBooked
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return booking, nil
}

// GetByID получает бронирование по ID
// Мягко удаленные бронирования возвращаются только при includeDeleted
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID, includeDeleted bool) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTableName).
		Where(squirrel.Eq{"id": id})

	if !includeDeleted {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_deleted": false})
	}

	// В транзакции блокируем строку, чтобы смена статуса шла последовательно
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetActiveByDate возвращает бронирования, которые занимают дату
// Внутри транзакции строки блокируются FOR UPDATE
func (r *Repository) GetActiveByDate(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTableName).
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		Where(squirrel.Eq{"is_deleted": false}).
		Where(squirrel.Eq{"status": domain.ActiveStatusStrings()}).
		OrderBy("created_at ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %w", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// List получает бронирования для админки, новые даты первыми
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(bookingsTableName)

	// Фильтрация по периоду
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"date": domain.DateOnly(*filter.From)})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"date": domain.DateOnly(*filter.To)})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}

	if !filter.IncludeDeleted {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"is_deleted": false})
	}

	query, args, err := selectBuilder.OrderBy("date DESC", "created_at DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpdateStatus переводит бронирование из статуса from в статус to
// Если payment не nil, сохраняет данные платежа в том же обновлении.
// Ноль затронутых строк означает, что статус уже сменился: ErrStatusChanged
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, from, to domain.BookingStatus, payment *domain.PaymentInfo) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(bookingsTableName).
		Set("status", to).
		Set("updated_at", squirrel.Expr("NOW()"))

	if payment != nil {
		updateBuilder = updateBuilder.Set("payment_info", payment)
	}

	query, args, err := updateBuilder.
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": from}).
		Where(squirrel.Eq{"is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrStatusChanged
	}

	return nil
}

// SoftDelete помечает бронирование удаленным, дата при этом освобождается
func (r *Repository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(bookingsTableName).
		Set("is_deleted", true).
		Set("deleted_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"is_deleted": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: SoftDelete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var deletedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.TourID,
		&booking.ShiftID,
		&booking.Date,
		&booking.Status,
		&booking.TourTitle,
		&booking.TotalPrice,
		&booking.Currency,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.Participants,
		&booking.PaymentInfo,
		&booking.AdditionalInfo,
		&booking.IsDeleted,
		&deletedAt,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	booking.Date = domain.DateOnly(booking.Date)
	if deletedAt.Valid {
		booking.DeletedAt = &deletedAt.Time
	}

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %w", ErrScanRow, err)
	}

	return bookings, nil
}

// isDateTaken распознает нарушение уникального индекса активных дат
// и отмену сериализуемой транзакции
func isDateTaken(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch string(pqErr.Code) {
	case uniqueViolation:
		return pqErr.Constraint == "" || pqErr.Constraint == activeDateIndex
	case serializationFailure:
		return true
	}
	return false
}
