package capacity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	capacityRepo "github.com/maineblanc/camping-booking/internal/infra/storage/capacity"
)

// Guard проверяет наличие свободных мест категории на период
//
// Сам по себе Guard не атомарен: вызывающий код выполняет Check и вставку
// бронирования в одной сериализуемой транзакции. Лимит категории читается
// с FOR UPDATE, поэтому конкурирующие запросы одной категории ждут друг друга.
type Guard struct {
	limitRepo   LimitRepository
	bookingRepo BookingRepository
	logger      Logger
}

// NewGuard создает проверку вместимости
func NewGuard(limitRepo LimitRepository, bookingRepo BookingRepository, logger Logger) *Guard {
	return &Guard{
		limitRepo:   limitRepo,
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Availability считает занятые места категории на [start, end)
// excluding - ID бронирования, которое не учитывается (при изменении дат)
func (g *Guard) Availability(
	ctx context.Context,
	category domain.Category,
	start, end time.Time,
	excluding *int64,
) (*domain.Availability, error) {
	limit, err := g.limitRepo.GetByCategory(ctx, category)
	if err != nil {
		if errors.Is(err, capacityRepo.ErrCapacityNotFound) {
			g.logger.Error("Capacity: capacity limit is not configured for category=%s", category)
			return nil, fmt.Errorf("%w: category=%s", ErrCapacityUndefined, category)
		}
		return nil, fmt.Errorf("%w: Availability - get capacity limit: %w", ErrInternal, err)
	}

	occupiedEnd := domain.OccupiedEnd(start, end)
	bookings, err := g.bookingRepo.GetByFilter(ctx, domain.BookingsFilter{
		Category:     category,
		OverlapStart: &start,
		OverlapEnd:   &occupiedEnd,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: Availability - get bookings: %w", ErrInternal, err)
	}

	occupied := countOverlapping(bookings, start, end, excluding)

	return domain.NewAvailability(category, limit.MaxPlaces, occupied), nil
}

// Check возвращает ErrCapacityExceeded, если мест на период не осталось
func (g *Guard) Check(
	ctx context.Context,
	category domain.Category,
	start, end time.Time,
	excluding *int64,
) (*domain.Availability, error) {
	availability, err := g.Availability(ctx, category, start, end, excluding)
	if err != nil {
		return nil, err
	}

	if availability.IsFull() {
		g.logger.Warn("Capacity: category=%s is full for %s..%s, %d/%d places taken",
			category, start.Format(domain.DateFormat), end.Format(domain.DateFormat),
			availability.OccupiedPlaces, availability.MaxPlaces)
		return availability, ErrCapacityExceeded
	}

	g.logger.Info("Capacity: category=%s %d/%d places taken for %s..%s",
		category, availability.OccupiedPlaces, availability.MaxPlaces,
		start.Format(domain.DateFormat), end.Format(domain.DateFormat))

	return availability, nil
}

// countOverlapping считает активные бронирования, пересекающиеся с [start, end)
func countOverlapping(bookings []*domain.Booking, start, end time.Time, excluding *int64) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if excluding != nil && b.ID == *excluding {
			continue
		}
		if b.Overlaps(start, end) {
			count++
		}
	}
	return count
}
