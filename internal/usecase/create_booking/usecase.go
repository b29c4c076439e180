package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/maineblanc/camping-booking/internal/capacity"
	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/events"
	"github.com/maineblanc/camping-booking/internal/pricing"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	tariffs      TariffProvider
	calculator   PriceCalculator
	guard        CapacityGuard
	validator    RequestValidator
	publisher    EventPublisher
	metrics      Metrics
	txManager    TransactionManager
	newReference ReferenceGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tariffs TariffProvider,
	calculator PriceCalculator,
	guard CapacityGuard,
	validator RequestValidator,
	publisher EventPublisher,
	metrics Metrics,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		tariffs:      tariffs,
		calculator:   calculator,
		guard:        guard,
		validator:    validator,
		publisher:    publisher,
		metrics:      metrics,
		txManager:    txManager,
		newReference: uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка мест и вставка выполняются в одной сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, subtype=%s, worker=%t, dates=%s..%s",
		req.UserID, req.Subtype, req.IsWorker,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	now := uc.timeProvider.Now()

	// 1. Валидация входных данных
	if err := validateRequest(uc.validator, req, now); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Категория по подтипу
	category, err := domain.CategoryOf(req.Subtype)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Тарифная сетка
	tariffs, err := uc.tariffs.Load(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to load tariffs: %v", err)
		return nil, fmt.Errorf("%w: failed to load tariffs: %v", ErrInternal, err)
	}

	// 4. Расчет стоимости
	quote, err := uc.calculator.Price(toPricingStay(req.Stay, category), tariffs)
	if err != nil {
		if errors.Is(err, pricing.ErrRateNotFound) {
			uc.logger.Warn("CreateBooking: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRateNotFound, err)
		}
		uc.logger.Error("CreateBooking: failed to price stay: %v", err)
		return nil, fmt.Errorf("%w: failed to price stay: %v", ErrInternal, err)
	}

	booking := newBooking(req, category, quote, uc.newReference())

	var (
		result       *domain.Booking
		availability *domain.Availability
	)

	// 5. Резервируем место, если оно есть
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Лимит категории блокируется до конца транзакции
		avail, err := uc.guard.Check(txCtx, category, booking.StartDate, booking.EndDate, nil)
		if err != nil {
			switch {
			case errors.Is(err, capacity.ErrCapacityExceeded):
				return ErrCapacityExceeded
			case errors.Is(err, capacity.ErrCapacityUndefined):
				return fmt.Errorf("%w: %v", ErrCapacityUndefined, err)
			}
			uc.logger.Error("CreateBooking: capacity check failed: %v", err)
			return fmt.Errorf("%w: capacity check: %w", ErrInternal, err)
		}

		// 5.2. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrInternal, err)
		}

		result = created
		availability = avail
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrCapacityExceeded):
			uc.metrics.IncCapacityRejection(string(category))
			uc.logger.Warn("CreateBooking: no places left for category=%s", category)
		case errors.Is(err, ErrCapacityUndefined):
			uc.logger.Error("CreateBooking: configuration error: %v", err)
		}
		return nil, err
	}

	uc.metrics.IncBookingCreated(string(category), string(result.Season), result.TotalPrice.Float64())

	// 6. Уведомление клиента
	event := events.NewBookingEvent(events.TypeBookingCreated, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("CreateBooking: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, reference=%s, total=%s, deposit=%s",
		result.ID, result.Reference, result.TotalPrice, result.Deposit)

	// Текущая бронь заняла одно из свободных мест
	placesLeft := availability.AvailablePlaces - 1
	if placesLeft < 0 {
		placesLeft = 0
	}

	return &Response{
		ID:                 result.ID,
		Reference:          result.Reference,
		UserID:             result.UserID,
		Category:           string(result.Category),
		Subtype:            string(result.Subtype),
		AccommodationLabel: result.AccommodationLabel(),
		IsWorker:           result.IsWorker,
		StartDate:          result.StartDate,
		EndDate:            result.EndDate,
		Electricity:        result.Electricity,
		Season:             string(result.Season),
		Nights:             result.Nights,
		IncludedPeople:     result.IncludedPeople,
		Status:             string(result.Status),
		TotalPrice:         result.TotalPrice,
		Deposit:            result.Deposit,
		RemainingBalance:   result.RemainingBalance,
		DepositPaid:        result.DepositPaid,
		PlacesLeft:         placesLeft,
		CreatedAt:          result.CreatedAt,
	}, nil
}
