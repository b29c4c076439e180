package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBooking_Overlaps(t *testing.T) {
	n := date(2027, time.July, 10)
	existing := &Booking{StartDate: n, EndDate: n.AddDate(0, 0, 5)}

	tests := []struct {
		name       string
		start, end time.Time
		want       bool
	}{
		{name: "check-in on checkout day", start: n.AddDate(0, 0, 5), end: n.AddDate(0, 0, 8), want: false},
		{name: "checkout on check-in day", start: n.AddDate(0, 0, -3), end: n, want: false},
		{name: "partial overlap", start: n.AddDate(0, 0, 3), end: n.AddDate(0, 0, 8), want: true},
		{name: "contained", start: n.AddDate(0, 0, 1), end: n.AddDate(0, 0, 2), want: true},
		{name: "containing", start: n.AddDate(0, 0, -1), end: n.AddDate(0, 0, 9), want: true},
		{name: "identical", start: n, end: n.AddDate(0, 0, 5), want: true},
		{name: "far before", start: n.AddDate(0, 0, -10), end: n.AddDate(0, 0, -8), want: false},
		{name: "same day inside", start: n.AddDate(0, 0, 2), end: n.AddDate(0, 0, 2), want: true},
		{name: "same day on checkout", start: n.AddDate(0, 0, 5), end: n.AddDate(0, 0, 5), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, existing.Overlaps(tt.start, tt.end))
		})
	}
}

func TestBooking_Status(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeUpdated())

	b.Status = StatusConfirmed
	b.DepositPaid = true
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.False(t, b.CanBeUpdated())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.CanBeUpdated())
}

func TestAvailability(t *testing.T) {
	a := NewAvailability(CategoryTent, 4, 3)
	assert.Equal(t, 1, a.AvailablePlaces)
	assert.False(t, a.IsFull())
	assert.InDelta(t, 75.0, a.OccupancyRate(), 0.001)

	over := NewAvailability(CategoryTent, 2, 3)
	assert.Equal(t, 0, over.AvailablePlaces)
	assert.True(t, over.IsFull())

	assert.Zero(t, NewAvailability(CategoryOther, 0, 0).OccupancyRate())
}

func TestBooking_Overlaps_SameDayBooking(t *testing.T) {
	n := date(2027, time.July, 10)
	sameDay := &Booking{StartDate: n, EndDate: n}

	assert.True(t, sameDay.Overlaps(n, n.AddDate(0, 0, 1)))
	assert.False(t, sameDay.Overlaps(n.AddDate(0, 0, 1), n.AddDate(0, 0, 3)))
	assert.False(t, sameDay.Overlaps(n.AddDate(0, 0, -2), n))
}
