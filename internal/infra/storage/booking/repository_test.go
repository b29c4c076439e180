package booking

import (
	"context"
	"database/sql/driver"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

func TestRepository_GetByFilter_OverlapPredicate(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	start := time.Date(2027, time.August, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2027, time.August, 14, 0, 0, 0, 0, time.UTC)

	row := []driver.Value{
		int64(5), "4b1c6f0e-0d4e-4f55-9a55-2f4d1d7f3a10", int64(42), "tent", "car_tent", false,
		start, end, true,
		3, 0, 1, 0, 0, 0,
		"3.0", "4.0", nil, "20.0",
		"high", 4, 2, "140.00", "21.00", "119.00", false, "pending",
		"Martin", "Camille", "camille.martin@example.com", "+33600000000",
		nil, nil, nil, nil,
	}
	mock.ExpectQuery(regexp.QuoteMeta(
		"WHERE category = $1 AND start_date < $2 AND end_date >= $3 AND status NOT IN ($4) ORDER BY start_date ASC, id ASC",
	)).
		WithArgs("tent", end, start, "cancelled").
		WillReturnRows(sqlmock.NewRows(bookingColumns).AddRow(row...))

	bookings, err := NewRepository(db).GetByFilter(context.Background(), domain.BookingsFilter{
		Category:     domain.CategoryTent,
		OverlapStart: &start,
		OverlapEnd:   &end,
	})

	require.NoError(t, err)
	require.Len(t, bookings, 1)

	b := bookings[0]
	assert.Equal(t, int64(5), b.ID)
	assert.Equal(t, domain.SubtypeCarTent, b.Subtype)
	assert.Equal(t, domain.SeasonHigh, b.Season)
	assert.Equal(t, types.Euros(140), b.TotalPrice)
	assert.Equal(t, types.Euros(21), b.Deposit)
	require.NotNil(t, b.TentWidth)
	assert.Equal(t, 3.0, *b.TentWidth)
	assert.Nil(t, b.VehicleLength)
	assert.Nil(t, b.Notes)
	assert.True(t, b.IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByFilter_IncludeInactive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("FROM bookings WHERE category = $1 ORDER BY start_date ASC, id ASC")).
		WithArgs("caravan").
		WillReturnRows(sqlmock.NewRows(bookingColumns))

	bookings, err := NewRepository(db).GetByFilter(context.Background(), domain.BookingsFilter{
		Category:        domain.CategoryCaravan,
		IncludeInactive: true,
	})

	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_DuplicateReference(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: uniqueViolation})

	_, err = NewRepository(db).Create(context.Background(), &domain.Booking{
		Reference: "4b1c6f0e-0d4e-4f55-9a55-2f4d1d7f3a10",
		Category:  domain.CategoryTent,
		Subtype:   domain.SubtypeTent,
		Status:    domain.StatusPending,
	})

	assert.ErrorIs(t, err, ErrDuplicateReference)
	assert.NotErrorIs(t, err, ErrExecQuery)
}

func TestRepository_MarkDepositPaid(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "updated", affected: 1},
		{name: "unknown id", affected: 0, wantErr: ErrBookingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET deposit_paid = $1, status = $2")).
				WithArgs(true, "confirmed", int64(9)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err = NewRepository(db).MarkDepositPaid(context.Background(), 9)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_Cancel(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings SET status = $1, cancelled_at = NOW()")).
		WithArgs("cancelled", int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRepository(db).Cancel(context.Background(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}
