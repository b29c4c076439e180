package bookings

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/events"
	bookingRepo "github.com/maineblanc/camping-booking/internal/infra/storage/booking"
	"github.com/maineblanc/camping-booking/internal/service/bookings/models"
	"github.com/maineblanc/camping-booking/pkg/logger"
	"github.com/maineblanc/camping-booking/pkg/ptr"
	"github.com/maineblanc/camping-booking/pkg/types"
)

type repoMock struct {
	mock.Mock
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *repoMock) GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, userID, status)
	list, _ := args.Get(0).([]*domain.Booking)
	return list, args.Error(1)
}

func (m *repoMock) MarkDepositPaid(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *repoMock) Cancel(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type publisherMock struct {
	mock.Mock
}

func (m *publisherMock) Publish(ctx context.Context, event events.BookingEvent) error {
	return m.Called(ctx, event).Error(0)
}

// inlineTx выполняет функцию без реальной транзакции
type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestService(repo *repoMock, pub *publisherMock) *Service {
	s := NewService(repo, inlineTx{}, pub, logger.NewWithWriter(io.Discard, logger.LevelError))
	s.timeProvider = fixedTime{now: time.Date(2027, time.June, 1, 12, 0, 0, 0, time.UTC)}
	return s
}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:               10,
		Reference:        "ref-10",
		UserID:           7,
		Category:         domain.CategoryTent,
		Subtype:          domain.SubtypeCarTent,
		StartDate:        time.Date(2027, time.July, 10, 0, 0, 0, 0, time.UTC),
		EndDate:          time.Date(2027, time.July, 12, 0, 0, 0, 0, time.UTC),
		TotalPrice:       types.Euros(20),
		Deposit:          types.Euros(3),
		RemainingBalance: types.Euros(17),
		Status:           domain.StatusPending,
	}
}

func TestService_GetByID(t *testing.T) {
	t.Run("owner sees booking", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)

		resp, err := newTestService(repo, &publisherMock{}).GetByID(context.Background(), 10, 7)

		require.NoError(t, err)
		assert.Equal(t, "Voiture tente", resp.AccommodationLabel)
		assert.Equal(t, "2027-07-10", resp.StartDate)
	})

	t.Run("other user is denied", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)

		_, err := newTestService(repo, &publisherMock{}).GetByID(context.Background(), 10, 8)

		assert.ErrorIs(t, err, ErrAccessDenied)
	})

	t.Run("not found", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(nil, bookingRepo.ErrBookingNotFound)

		_, err := newTestService(repo, &publisherMock{}).GetByID(context.Background(), 10, 7)

		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(nil, errors.New("db down"))

		_, err := newTestService(repo, &publisherMock{}).GetByID(context.Background(), 10, 7)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetUserBookings(t *testing.T) {
	repo := &repoMock{}
	confirmed := domain.StatusConfirmed
	repo.On("GetByUserID", mock.Anything, int64(7), &confirmed).Return([]*domain.Booking{pendingBooking()}, nil)

	resp, err := newTestService(repo, &publisherMock{}).GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: ptr.Ptr("confirmed"),
	})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)

	_, err = newTestService(repo, &publisherMock{}).GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		UserID: 7,
		Status: ptr.Ptr("archived"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestService_Cancel(t *testing.T) {
	t.Run("cancels and publishes", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)
		repo.On("Cancel", mock.Anything, int64(10)).Return(nil)
		pub := &publisherMock{}
		pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.BookingEvent) bool {
			return e.Type == events.TypeBookingCancelled && e.BookingID == 10
		})).Return(nil)

		resp, err := newTestService(repo, pub).Cancel(context.Background(), 10, 7)

		require.NoError(t, err)
		assert.Equal(t, "cancelled", resp.Status)
		assert.NotNil(t, resp.CancelledAt)
		pub.AssertExpectations(t)
	})

	t.Run("already cancelled", func(t *testing.T) {
		b := pendingBooking()
		b.Status = domain.StatusCancelled
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(b, nil)

		_, err := newTestService(repo, &publisherMock{}).Cancel(context.Background(), 10, 7)

		assert.ErrorIs(t, err, ErrCannotCancel)
		repo.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything)
	})

	t.Run("publish failure does not fail cancellation", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)
		repo.On("Cancel", mock.Anything, int64(10)).Return(nil)
		pub := &publisherMock{}
		pub.On("Publish", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		_, err := newTestService(repo, pub).Cancel(context.Background(), 10, 7)

		assert.NoError(t, err)
	})
}

func TestService_MarkDepositPaid(t *testing.T) {
	t.Run("confirms booking", func(t *testing.T) {
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(pendingBooking(), nil)
		repo.On("MarkDepositPaid", mock.Anything, int64(10)).Return(nil)
		pub := &publisherMock{}
		pub.On("Publish", mock.Anything, mock.MatchedBy(func(e events.BookingEvent) bool {
			return e.Type == events.TypeDepositPaid && e.DepositPaid && e.Deposit == types.Euros(3)
		})).Return(nil)

		resp, err := newTestService(repo, pub).MarkDepositPaid(context.Background(), 10, 7)

		require.NoError(t, err)
		assert.True(t, resp.DepositPaid)
		assert.Equal(t, "confirmed", resp.Status)
		pub.AssertExpectations(t)
	})

	t.Run("already paid", func(t *testing.T) {
		b := pendingBooking()
		b.DepositPaid = true
		b.Status = domain.StatusConfirmed
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(b, nil)

		_, err := newTestService(repo, &publisherMock{}).MarkDepositPaid(context.Background(), 10, 7)

		assert.ErrorIs(t, err, ErrAlreadyPaid)
	})

	t.Run("cancelled booking", func(t *testing.T) {
		b := pendingBooking()
		b.Status = domain.StatusCancelled
		repo := &repoMock{}
		repo.On("GetByID", mock.Anything, int64(10)).Return(b, nil)

		_, err := newTestService(repo, &publisherMock{}).MarkDepositPaid(context.Background(), 10, 7)

		assert.ErrorIs(t, err, ErrBookingCancelled)
	})
}
