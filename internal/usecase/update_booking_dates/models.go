package update_booking_dates

import (
	"time"

	"github.com/maineblanc/camping-booking/pkg/types"
)

// Request новые даты бронирования
type Request struct {
	BookingID int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
}

// Response бронирование с пересчитанной стоимостью
type Response struct {
	ID                 int64
	Reference          string
	Category           string
	AccommodationLabel string
	StartDate          time.Time
	EndDate            time.Time
	Season             string
	Nights             int
	Status             string

	TotalPrice       types.Money
	Deposit          types.Money
	RemainingBalance types.Money

	UpdatedAt time.Time
}
