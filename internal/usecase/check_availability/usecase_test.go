package check_availability

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maineblanc/camping-booking/internal/capacity"
	"github.com/maineblanc/camping-booking/internal/domain"
	capacityRepo "github.com/maineblanc/camping-booking/internal/infra/storage/capacity"
	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/logger"
)

type limits map[domain.Category]int

func (l limits) GetByCategory(_ context.Context, category domain.Category) (*domain.CapacityLimit, error) {
	maxPlaces, ok := l[category]
	if !ok {
		return nil, capacityRepo.ErrCapacityNotFound
	}
	return &domain.CapacityLimit{Category: category, MaxPlaces: maxPlaces}, nil
}

type bookingStore struct {
	items []*domain.Booking
	err   error
}

func (s *bookingStore) GetByFilter(_ context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	if s.err != nil {
		return nil, s.err
	}
	var result []*domain.Booking
	for _, b := range s.items {
		if b.Category == filter.Category {
			result = append(result, b)
		}
	}
	return result, nil
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func day(d int) time.Time {
	return time.Date(2027, time.July, d, 0, 0, 0, 0, time.UTC)
}

func tent(id int64, start, end int, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		Category:  domain.CategoryTent,
		Subtype:   domain.SubtypeTent,
		StartDate: day(start),
		EndDate:   day(end),
		Status:    status,
	}
}

func newUseCase(l limits, store *bookingStore) *UseCase {
	log := logger.NewWithWriter(io.Discard, logger.LevelError)
	uc := NewUseCase(capacity.NewGuard(l, store, log), store, validation.New(), log)
	uc.timeProvider = fixedTime{now: day(1)}
	return uc
}

func TestUseCase_Execute(t *testing.T) {
	store := &bookingStore{items: []*domain.Booking{
		tent(1, 8, 11, domain.StatusPending),
		tent(2, 11, 13, domain.StatusConfirmed),
		tent(3, 10, 12, domain.StatusCancelled),
		{ID: 4, Category: domain.CategoryCaravan, StartDate: day(10), EndDate: day(12), Status: domain.StatusPending},
	}}

	resp, err := newUseCase(limits{domain.CategoryTent: 3}, store).Execute(context.Background(), &Request{
		Subtype:   domain.SubtypeCarTent,
		StartDate: day(10),
		EndDate:   day(13),
	})

	require.NoError(t, err)
	assert.Equal(t, "tent", resp.Category)
	assert.Equal(t, 3, resp.MaxPlaces)
	assert.Equal(t, 2, resp.OccupiedPlaces)
	assert.Equal(t, 1, resp.AvailablePlaces)
	assert.True(t, resp.Bookable)
	assert.InDelta(t, 66.67, resp.OccupancyRate, 0.01)

	require.Len(t, resp.Nights, 3)
	assert.Equal(t, day(10), resp.Nights[0].Date)
	assert.Equal(t, 1, resp.Nights[0].OccupiedPlaces) // бронь 1
	assert.Equal(t, 1, resp.Nights[1].OccupiedPlaces) // бронь 2, бронь 1 уже выехала
	assert.Equal(t, 1, resp.Nights[2].OccupiedPlaces)
	assert.Equal(t, 2, resp.Nights[2].AvailablePlaces)
}

func TestUseCase_Execute_Full(t *testing.T) {
	store := &bookingStore{items: []*domain.Booking{
		tent(1, 10, 12, domain.StatusPending),
		tent(2, 10, 12, domain.StatusPending),
	}}

	resp, err := newUseCase(limits{domain.CategoryTent: 2}, store).Execute(context.Background(), &Request{
		Subtype:   domain.SubtypeTent,
		StartDate: day(11),
		EndDate:   day(12),
	})

	require.NoError(t, err)
	assert.False(t, resp.Bookable)
	assert.Equal(t, 0, resp.AvailablePlaces)
	assert.Equal(t, 100.0, resp.OccupancyRate)
}

func TestUseCase_Execute_Errors(t *testing.T) {
	tests := []struct {
		name    string
		limits  limits
		store   *bookingStore
		req     *Request
		wantErr error
	}{
		{
			name:    "unknown subtype",
			limits:  limits{domain.CategoryTent: 2},
			store:   &bookingStore{},
			req:     &Request{Subtype: "yacht", StartDate: day(10), EndDate: day(12)},
			wantErr: ErrInvalidInput,
		},
		{
			name:    "end before start",
			limits:  limits{domain.CategoryTent: 2},
			store:   &bookingStore{},
			req:     &Request{Subtype: domain.SubtypeTent, StartDate: day(12), EndDate: day(10)},
			wantErr: ErrInvalidDateRange,
		},
		{
			name:    "too long",
			limits:  limits{domain.CategoryTent: 2},
			store:   &bookingStore{},
			req:     &Request{Subtype: domain.SubtypeTent, StartDate: day(10), EndDate: day(10).AddDate(0, 6, 0)},
			wantErr: ErrRangeTooLong,
		},
		{
			name:    "capacity undefined",
			limits:  limits{},
			store:   &bookingStore{},
			req:     &Request{Subtype: domain.SubtypeTent, StartDate: day(10), EndDate: day(12)},
			wantErr: ErrCapacityUndefined,
		},
		{
			name:    "repository error",
			limits:  limits{domain.CategoryTent: 2},
			store:   &bookingStore{err: errors.New("db down")},
			req:     &Request{Subtype: domain.SubtypeTent, StartDate: day(10), EndDate: day(12)},
			wantErr: ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newUseCase(tt.limits, tt.store).Execute(context.Background(), tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
