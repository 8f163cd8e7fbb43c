package tour

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dobaato-technical/KnowALocal-sub000/pkg/dbmetrics"
)

func TestRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(dbmetrics.Wrap(db, nil))
	id := uuid.New()

	mock.ExpectQuery("SELECT id, title, slug, price, is_active FROM tours WHERE id = \\$1").
		WithArgs(id.String()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "price", "is_active"}).
			AddRow(id.String(), "Old Town Walk", "old-town-walk", 45.5, true))

	tour, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Old Town Walk", tour.Title)
	assert.Equal(t, 45.5, tour.Price)

	mock.ExpectQuery("SELECT (.+) FROM tours").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "slug", "price", "is_active"}))

	_, err = repo.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrTourNotFound)
}
