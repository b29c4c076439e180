package capacity

import (
	"context"

	"github.com/maineblanc/camping-booking/internal/domain"
)

// LimitRepository интерфейс репозитория лимитов мест
type LimitRepository interface {
	GetByCategory(ctx context.Context, category domain.Category) (*domain.CapacityLimit, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
