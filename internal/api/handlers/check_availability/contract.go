package check_availability

import (
	"context"

	checkAvailability "github.com/maineblanc/camping-booking/internal/usecase/check_availability"
)

type CheckAvailabilityUseCase interface {
	Execute(ctx context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
