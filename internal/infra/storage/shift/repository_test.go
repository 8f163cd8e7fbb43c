package shift

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobaato-technical/KnowALocal-sub000/internal/domain"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"
	"github.com/dobaato-technical/KnowALocal-sub000/pkg/types"
)

var shiftColumns = []string{"id", "name", "start_time", "end_time", "type", "is_active", "created_at"}

func newRepoMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return NewRepository(dbmetrics.Wrap(db, nil)), mock, func() { db.Close() }
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("SELECT id, name, start_time, end_time, type, is_active, created_at FROM shifts WHERE id = \\$1").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows(shiftColumns).
			AddRow(id.String(), "Full day", "08:00:00", "18:00:00", "whole_day", true, time.Now()))

	s, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, id, s.ID)
	assert.Equal(t, domain.ShiftTypeWholeDay, s.Type)
	assert.Equal(t, "08:00", s.StartTime.String())
	assert.True(t, s.IsActive)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM shifts").WillReturnRows(sqlmock.NewRows(shiftColumns))

	_, err := repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrShiftNotFound)
}

func TestRepository_List_ActiveOnly(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectQuery("SELECT (.+) FROM shifts WHERE is_active = \\$1 ORDER BY start_time ASC, name ASC").
		WithArgs(true).
		WillReturnRows(sqlmock.NewRows(shiftColumns).
			AddRow(uuid.NewString(), "Morning", "09:00", "12:00", "hourly", true, time.Now()).
			AddRow(uuid.NewString(), "Afternoon", "13:00", "17:00", "hourly", true, time.Now()))

	shifts, err := repo.List(context.Background(), true)
	require.NoError(t, err)
	require.Len(t, shifts, 2)
	assert.Equal(t, "Morning", shifts[0].Name)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	start, _ := types.NewTimeStringFromString("09:00")
	end, _ := types.NewTimeStringFromString("12:00")
	s := &domain.Shift{ID: uuid.New(), Name: "Morning", StartTime: start, EndTime: end, Type: domain.ShiftTypeHourly, IsActive: true}

	createdAt := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO shifts").
		WithArgs(s.ID.String(), "Morning", "09:00", "12:00", "hourly", true).
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	created, err := repo.Create(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, createdAt, created.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetActive_NotFound(t *testing.T) {
	repo, mock, cleanup := newRepoMock(t)
	defer cleanup()

	mock.ExpectExec("UPDATE shifts SET is_active = \\$1 WHERE id = \\$2").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.SetActive(context.Background(), uuid.New(), false)
	assert.ErrorIs(t, err, ErrShiftNotFound)
}
