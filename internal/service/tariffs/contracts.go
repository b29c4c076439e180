package tariffs

import (
	"context"

	"github.com/maineblanc/camping-booking/internal/domain"
)

// TariffRepository интерфейс репозитория тарифов
type TariffRepository interface {
	GetRates(ctx context.Context, category *domain.Category) ([]*domain.RateRow, error)
	GetSupplements(ctx context.Context) (*domain.SupplementSet, error)
}

// CapacityRepository интерфейс репозитория лимитов мест
type CapacityRepository interface {
	GetAll(ctx context.Context) ([]*domain.CapacityLimit, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
