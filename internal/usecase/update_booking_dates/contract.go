package update_booking_dates

import (
	"context"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/events"
	"github.com/maineblanc/camping-booking/internal/pricing"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateDates(ctx context.Context, booking *domain.Booking) error
}

// TariffProvider загружает тарифную сетку
type TariffProvider interface {
	Load(ctx context.Context) (*domain.Tariffs, error)
}

// PriceCalculator калькулятор стоимости
type PriceCalculator interface {
	Price(stay pricing.Stay, tariffs *domain.Tariffs) (*pricing.Quote, error)
}

// CapacityGuard проверка свободных мест категории
type CapacityGuard interface {
	Check(ctx context.Context, category domain.Category, start, end time.Time, excluding *int64) (*domain.Availability, error)
}

// DateValidator проверка диапазона дат
type DateValidator interface {
	ValidateDates(start, end, now time.Time) error
}

// EventPublisher публикует события для уведомлений клиента
type EventPublisher interface {
	Publish(ctx context.Context, event events.BookingEvent) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
