package check_availability

import (
	"errors"
	"fmt"
	"time"

	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// maxCalendarNights ограничение длины календаря по ночам
const maxCalendarNights = 92

// validateRequest валидирует входные данные запроса
func validateRequest(v DateValidator, req *Request, now time.Time) error {
	if !req.Subtype.IsValid() {
		return fmt.Errorf("%w: unknown subtype %q", ErrInvalidInput, req.Subtype)
	}

	if err := v.ValidateDates(req.StartDate, req.EndDate, now); err != nil {
		if errors.Is(err, validation.ErrInvalidDateRange) {
			return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if nights := types.DaysBetween(req.StartDate, req.EndDate); nights > maxCalendarNights {
		return fmt.Errorf("%w: %d nights requested, at most %d", ErrRangeTooLong, nights, maxCalendarNights)
	}

	return nil
}
