package availability

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/psqlbuilder"
)

const tableName = "availability"

// Атомарное переключение: первая запись создаёт недоступную дату,
// повторная инвертирует флаг, а при открытии даты причина стирается
const toggleConflictClause = "ON CONFLICT (date) DO UPDATE SET " +
	"unavailable = NOT availability.unavailable, " +
	"reason = CASE WHEN availability.unavailable THEN NULL ELSE availability.reason END, " +
	"updated_at = NOW() " +
	"RETURNING date, unavailable, reason, updated_at"

const upsertConflictClause = "ON CONFLICT (date) DO UPDATE SET " +
	"unavailable = EXCLUDED.unavailable, " +
	"reason = EXCLUDED.reason, " +
	"updated_at = NOW() " +
	"RETURNING date, unavailable, reason, updated_at"

// Repository репозиторий явных отметок доступности дат
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByDate возвращает явную отметку для даты
// Если записи нет, возвращает ErrOverrideNotFound: дата считается доступной
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.AvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "unavailable", "reason", "updated_at").
		From(tableName).
		Where(squirrel.Eq{"date": domain.DateOnly(date)}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %w", ErrScanRow, err)
	}

	return override, nil
}

// GetUnavailableInRange возвращает недоступные даты в интервале [from, to] по возрастанию
func (r *Repository) GetUnavailableInRange(ctx context.Context, from, to time.Time) ([]time.Time, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From(tableName).
		Where(squirrel.Eq{"unavailable": true}).
		Where(squirrel.GtOrEq{"date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"date": domain.DateOnly(to)}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnavailableInRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetUnavailableInRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: GetUnavailableInRange - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, domain.DateOnly(date))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetUnavailableInRange - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// Upsert записывает отметку для даты, заменяя существующую
func (r *Repository) Upsert(ctx context.Context, date time.Time, unavailable bool, reason *string) (*domain.AvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("date", "unavailable", "reason").
		Values(domain.DateOnly(date), unavailable, reason).
		Suffix(upsertConflictClause).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	return override, nil
}

// Toggle инвертирует доступность даты одним запросом
func (r *Repository) Toggle(ctx context.Context, date time.Time) (*domain.AvailabilityOverride, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableName).
		Columns("date", "unavailable").
		Values(domain.DateOnly(date), true).
		Suffix(toggleConflictClause).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Toggle - build insert query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err != nil {
		return nil, fmt.Errorf("%w: Toggle - execute upsert: %v", ErrExecQuery, err)
	}

	return override, nil
}

func scanOverride(row *sql.Row) (*domain.AvailabilityOverride, error) {
	var override domain.AvailabilityOverride
	var reason sql.NullString

	if err := row.Scan(&override.Date, &override.Unavailable, &reason, &override.UpdatedAt); err != nil {
		return nil, err
	}

	override.Date = domain.DateOnly(override.Date)
	if reason.Valid {
		override.Reason = &reason.String
	}

	return &override, nil
}
