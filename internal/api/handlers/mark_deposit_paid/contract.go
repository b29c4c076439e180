package mark_deposit_paid

import (
	"context"

	"github.com/maineblanc/camping-booking/internal/service/bookings/models"
)

type BookingService interface {
	MarkDepositPaid(ctx context.Context, bookingID int64, userID int64) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
