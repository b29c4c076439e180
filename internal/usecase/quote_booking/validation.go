package quote_booking

import (
	"errors"
	"fmt"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/pricing"
	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// mapValidationError переводит ошибку валидатора в ошибки usecase
func mapValidationError(err error) error {
	if errors.Is(err, validation.ErrInvalidDateRange) {
		return fmt.Errorf("%w: %v", ErrInvalidDateRange, err)
	}
	return fmt.Errorf("%w: %w", ErrInvalidInput, err)
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
