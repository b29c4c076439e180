package check_availability

import (
	"context"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
)

// CapacityGuard подсчет свободных мест категории
type CapacityGuard interface {
	Availability(ctx context.Context, category domain.Category, start, end time.Time, excluding *int64) (*domain.Availability, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetByFilter бронирования категории, пересекающиеся с периодом
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// DateValidator проверка диапазона дат
type DateValidator interface {
	ValidateDates(start, end, now time.Time) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
