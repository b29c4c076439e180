package update_booking_dates

import (
	"context"

	updateDates "github.com/maineblanc/camping-booking/internal/usecase/update_booking_dates"
)

type UpdateBookingDatesUseCase interface {
	Execute(ctx context.Context, req *updateDates.Request) (*updateDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
