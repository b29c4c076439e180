package capacity

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/dbmetrics"
)

var limitColumns = []string{"id", "category", "max_places", "updated_at"}

func TestRepository_GetByCategory(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	updated := time.Date(2027, time.March, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("FROM capacity_limits WHERE category = $1") + "$").
		WithArgs("tent").
		WillReturnRows(sqlmock.NewRows(limitColumns).AddRow(1, "tent", 40, updated))

	limit, err := NewRepository(db).GetByCategory(context.Background(), domain.CategoryTent)

	require.NoError(t, err)
	assert.Equal(t, domain.CategoryTent, limit.Category)
	assert.Equal(t, 40, limit.MaxPlaces)
	assert.Equal(t, updated, limit.UpdatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCategory_LocksInTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta("FROM capacity_limits WHERE category = $1 FOR UPDATE")).
		WithArgs("camping_car").
		WillReturnRows(sqlmock.NewRows(limitColumns).AddRow(3, "camping_car", 20, nil))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	limit, err := NewRepository(db).GetByCategory(ctx, domain.CategoryCampingCar)

	require.NoError(t, err)
	assert.Equal(t, 20, limit.MaxPlaces)
	assert.True(t, limit.UpdatedAt.IsZero())
	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCategory_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM capacity_limits").
		WithArgs("other").
		WillReturnRows(sqlmock.NewRows(limitColumns))

	_, err = NewRepository(db).GetByCategory(context.Background(), domain.CategoryOther)

	assert.ErrorIs(t, err, ErrCapacityNotFound)
}

func TestRepository_GetByCategory_DriverErrorIsKept(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	driverErr := errors.New("could not serialize access")
	mock.ExpectQuery("FROM capacity_limits").WillReturnError(driverErr)

	_, err = NewRepository(db).GetByCategory(context.Background(), domain.CategoryTent)

	assert.ErrorIs(t, err, ErrScanRow)
	assert.ErrorIs(t, err, driverErr)
}

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM capacity_limits ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows(limitColumns).
			AddRow(1, "tent", 40, nil).
			AddRow(2, "caravan", 25, nil))

	limits, err := NewRepository(db).GetAll(context.Background())

	require.NoError(t, err)
	require.Len(t, limits, 2)
	assert.Equal(t, domain.CategoryCaravan, limits[1].Category)
	assert.Equal(t, 25, limits[1].MaxPlaces)
}
