package update_booking_dates

import (
	"errors"
	"fmt"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/pricing"
	"github.com/maineblanc/camping-booking/internal/validation"
)

// validateRequest валидирует входные данные запроса
func validateRequest(v DateValidator, req *Request, now time.Time) error {
	if req.BookingID <= 0 {
		return fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if err := v.ValidateDates(req.StartDate, req.EndDate, now); err != nil {
		if errors.Is(err, validation.ErrInvalidDateRange) {
			return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return nil
}

// stayOf параметры проживания существующего бронирования с новыми датами
func stayOf(b *domain.Booking, start, end time.Time) pricing.Stay {
	return pricing.Stay{
		Category:       b.Category,
		IsWorker:       b.IsWorker,
		StartDate:      start,
		EndDate:        end,
		Electricity:    b.Electricity,
		Adults:         b.Adults,
		ChildrenOver8:  b.ChildrenOver8,
		ChildrenUnder8: b.ChildrenUnder8,
		Pets:           b.Pets,
		ExtraVehicles:  b.ExtraVehicles,
		ExtraTents:     b.ExtraTents,
	}
}
