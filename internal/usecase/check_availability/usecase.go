package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/maineblanc/camping-booking/internal/capacity"
	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// UseCase use case для получения свободных мест
type UseCase struct {
	guard        CapacityGuard
	bookingRepo  BookingRepository
	validator    DateValidator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(guard CapacityGuard, bookingRepo BookingRepository, validator DateValidator, logger Logger) *UseCase {
	return &UseCase{
		guard:        guard,
		bookingRepo:  bookingRepo,
		validator:    validator,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения свободных мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: subtype=%s, dates=%s..%s",
		req.Subtype, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(uc.validator, req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	category, err := domain.CategoryOf(req.Subtype)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start := types.DateOnly(req.StartDate)
	end := types.DateOnly(req.EndDate)

	// 2. Итог по тому же правилу, что и при создании бронирования
	availability, err := uc.guard.Availability(ctx, category, start, end, nil)
	if err != nil {
		if errors.Is(err, capacity.ErrCapacityUndefined) {
			return nil, fmt.Errorf("%w: %v", ErrCapacityUndefined, err)
		}
		uc.logger.Error("CheckAvailability: failed to count places: %v", err)
		return nil, fmt.Errorf("%w: failed to count places: %v", ErrInternal, err)
	}

	// 3. Календарь по ночам
	bookings, err := uc.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		Category:     category,
		OverlapStart: &start,
		OverlapEnd:   &end,
	})
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	nights := calculateNights(start, end, bookings, availability.MaxPlaces)

	uc.logger.Info("CheckAvailability: category=%s, max=%d, occupied=%d, available=%d",
		category, availability.MaxPlaces, availability.OccupiedPlaces, availability.AvailablePlaces)

	return &Response{
		Category:           string(category),
		AccommodationLabel: req.Subtype.Label(),
		StartDate:          start,
		EndDate:            end,
		MaxPlaces:          availability.MaxPlaces,
		OccupiedPlaces:     availability.OccupiedPlaces,
		AvailablePlaces:    availability.AvailablePlaces,
		Bookable:           !availability.IsFull(),
		OccupancyRate:      availability.OccupancyRate(),
		Nights:             nights,
	}, nil
}
