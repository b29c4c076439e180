package quote_booking

import (
	"context"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/pricing"
	"github.com/maineblanc/camping-booking/internal/validation"
)

// TariffProvider загружает тарифную сетку
type TariffProvider interface {
	Load(ctx context.Context) (*domain.Tariffs, error)
}

// PriceCalculator калькулятор стоимости
type PriceCalculator interface {
	Price(stay pricing.Stay, tariffs *domain.Tariffs) (*pricing.Quote, error)
}

// StayValidator проверка параметров проживания
type StayValidator interface {
	ValidateStay(stay validation.Stay, now time.Time) error
}

// Metrics счетчики расчетов
type Metrics interface {
	IncQuote(category string, worker bool)
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
