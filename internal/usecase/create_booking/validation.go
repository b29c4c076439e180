package create_booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/pricing"
	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// validateRequest валидирует входные данные запроса
// Даты проверяются до остальных полей
func validateRequest(v RequestValidator, req *Request, now time.Time) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if err := v.ValidateStay(req.Stay, now); err != nil {
		if errors.Is(err, validation.ErrInvalidDateRange) {
			return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if err := v.Struct(req.Contact); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	if req.Notes != nil && len([]rune(*req.Notes)) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must be at most %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}

// toPricingStay нормализует даты и подставляет категорию
func toPricingStay(stay validation.Stay, category domain.Category) pricing.Stay {
	return pricing.Stay{
		Category:       category,
		IsWorker:       stay.IsWorker,
		StartDate:      types.DateOnly(stay.StartDate),
		EndDate:        types.DateOnly(stay.EndDate),
		Electricity:    stay.Electricity,
		Adults:         stay.Adults,
		ChildrenOver8:  stay.ChildrenOver8,
		ChildrenUnder8: stay.ChildrenUnder8,
		Pets:           stay.Pets,
		ExtraVehicles:  stay.ExtraVehicles,
		ExtraTents:     stay.ExtraTents,
	}
}

// newBooking собирает бронирование с рассчитанными полями
func newBooking(req *Request, category domain.Category, quote *pricing.Quote, reference string) *domain.Booking {
	return &domain.Booking{
		Reference:        reference,
		UserID:           req.UserID,
		Category:         category,
		Subtype:          req.Subtype,
		IsWorker:         req.IsWorker,
		StartDate:        types.DateOnly(req.StartDate),
		EndDate:          types.DateOnly(req.EndDate),
		Electricity:      req.Electricity,
		Adults:           req.Adults,
		ChildrenOver8:    req.ChildrenOver8,
		ChildrenUnder8:   req.ChildrenUnder8,
		Pets:             req.Pets,
		ExtraVehicles:    req.ExtraVehicles,
		ExtraTents:       req.ExtraTents,
		TentWidth:        req.TentWidth,
		TentLength:       req.TentLength,
		VehicleLength:    req.VehicleLength,
		CableLength:      req.CableLength,
		Season:           quote.Season,
		Nights:           quote.Nights,
		IncludedPeople:   quote.IncludedPeople,
		TotalPrice:       quote.Total,
		Deposit:          quote.Deposit,
		RemainingBalance: quote.RemainingBalance,
		DepositPaid:      false,
		Status:           domain.StatusPending,
		Contact: domain.Contact{
			LastName:  req.Contact.LastName,
			FirstName: req.Contact.FirstName,
			Email:     req.Contact.Email,
			Phone:     req.Contact.Phone,
		},
		Notes: req.Notes,
	}
}
