package quote_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/pricing"
)

// UseCase use case расчета стоимости без сохранения бронирования
type UseCase struct {
	tariffs      TariffProvider
	calculator   PriceCalculator
	validator    StayValidator
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	tariffs TariffProvider,
	calculator PriceCalculator,
	validator StayValidator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		tariffs:      tariffs,
		calculator:   calculator,
		validator:    validator,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет расчет стоимости
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteBooking: subtype=%s, worker=%t, dates=%s..%s, adults=%d",
		req.Subtype, req.IsWorker, req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat), req.Adults)

	// 1. Валидация входных данных, даты проверяются первыми
	if err := uc.validator.ValidateStay(req.Stay, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("QuoteBooking: validation failed: %v", err)
		return nil, mapValidationError(err)
	}

	// 2. Категория по подтипу
	category, err := domain.CategoryOf(req.Subtype)
	if err != nil {
		uc.logger.Warn("QuoteBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Тарифная сетка
	tariffs, err := uc.tariffs.Load(ctx)
	if err != nil {
		uc.logger.Error("QuoteBooking: failed to load tariffs: %v", err)
		return nil, fmt.Errorf("%w: failed to load tariffs: %v", ErrInternal, err)
	}

	// 4. Расчет
	quote, err := uc.calculator.Price(toPricingStay(req.Stay, category), tariffs)
	if err != nil {
		if errors.Is(err, pricing.ErrRateNotFound) {
			uc.logger.Warn("QuoteBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRateNotFound, err)
		}
		uc.logger.Error("QuoteBooking: failed to price stay: %v", err)
		return nil, fmt.Errorf("%w: failed to price stay: %v", ErrInternal, err)
	}

	uc.metrics.IncQuote(string(category), req.IsWorker)

	uc.logger.Info("QuoteBooking: category=%s, season=%s, nights=%d, total=%s, deposit=%s",
		category, quote.Season, quote.Nights, quote.Total, quote.Deposit)

	return &Response{
		Category:           string(category),
		Subtype:            string(req.Subtype),
		AccommodationLabel: req.Subtype.Label(),
		IsWorker:           req.IsWorker,
		StartDate:          req.StartDate,
		EndDate:            req.EndDate,
		Season:             string(quote.Season),
		Nights:             quote.Nights,
		IncludedPeople:     quote.IncludedPeople,
		BaseTotal:          quote.BaseTotal,
		SupplementsTotal:   quote.SupplementsTotal,
		Total:              quote.Total,
		Deposit:            quote.Deposit,
		RemainingBalance:   quote.RemainingBalance,
		WorkerWeekdays:     quote.WorkerWeekdays,
		WorkerWeekends:     quote.WorkerWeekends,
	}, nil
}
