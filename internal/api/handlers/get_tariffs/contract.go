package get_tariffs

import (
	"context"

	"github.com/maineblanc/camping-booking/internal/service/tariffs/models"
)

type TariffService interface {
	GetSheet(ctx context.Context) (*models.TariffSheetResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
