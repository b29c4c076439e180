package update_booking_dates

import (
	"context"
	"errors"
	"fmt"

	"github.com/maineblanc/camping-booking/internal/capacity"
	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/events"
	bookingRepo "github.com/maineblanc/camping-booking/internal/infra/storage/booking"
	"github.com/maineblanc/camping-booking/internal/pricing"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// UseCase use case для переноса дат бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	tariffs      TariffProvider
	calculator   PriceCalculator
	guard        CapacityGuard
	validator    DateValidator
	publisher    EventPublisher
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	tariffs TariffProvider,
	calculator PriceCalculator,
	guard CapacityGuard,
	validator DateValidator,
	publisher EventPublisher,
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
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute переносит даты и пересчитывает стоимость
// Само бронирование не учитывается при проверке мест
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateBookingDates: booking=%d, user=%d, dates=%s..%s",
		req.BookingID, req.UserID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(uc.validator, req, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("UpdateBookingDates: validation failed: %v", err)
		return nil, err
	}

	start := types.DateOnly(req.StartDate)
	end := types.DateOnly(req.EndDate)

	// 2. Тарифная сетка
	tariffs, err := uc.tariffs.Load(ctx)
	if err != nil {
		uc.logger.Error("UpdateBookingDates: failed to load tariffs: %v", err)
		return nil, fmt.Errorf("%w: failed to load tariffs: %v", ErrInternal, err)
	}

	var result *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3. Бронирование блокируется до конца транзакции
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: failed to get booking: %w", ErrInternal, err)
		}

		if booking.UserID != req.UserID {
			return ErrAccessDenied
		}

		if !booking.CanBeUpdated() {
			return fmt.Errorf("%w: status=%s, depositPaid=%t", ErrCannotUpdate, booking.Status, booking.DepositPaid)
		}

		// 4. Пересчет стоимости на новые даты
		quote, err := uc.calculator.Price(stayOf(booking, start, end), tariffs)
		if err != nil {
			if errors.Is(err, pricing.ErrRateNotFound) {
				return fmt.Errorf("%w: %v", ErrRateNotFound, err)
			}
			return fmt.Errorf("%w: failed to price stay: %v", ErrInternal, err)
		}

		// 5. Проверка мест без учета самого бронирования
		if _, err := uc.guard.Check(txCtx, booking.Category, start, end, &booking.ID); err != nil {
			switch {
			case errors.Is(err, capacity.ErrCapacityExceeded):
				return ErrCapacityExceeded
			case errors.Is(err, capacity.ErrCapacityUndefined):
				return fmt.Errorf("%w: %v", ErrCapacityUndefined, err)
			}
			return fmt.Errorf("%w: capacity check: %w", ErrInternal, err)
		}

		booking.StartDate = start
		booking.EndDate = end
		booking.Season = quote.Season
		booking.Nights = quote.Nights
		booking.IncludedPeople = quote.IncludedPeople
		booking.TotalPrice = quote.Total
		booking.Deposit = quote.Deposit
		booking.RemainingBalance = quote.RemainingBalance
		booking.UpdatedAt = uc.timeProvider.Now()

		// 6. Сохраняем
		if err := uc.bookingRepo.UpdateDates(txCtx, booking); err != nil {
			return fmt.Errorf("%w: failed to update booking: %w", ErrInternal, err)
		}

		result = booking
		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrBookingNotFound),
			errors.Is(err, ErrAccessDenied),
			errors.Is(err, ErrCannotUpdate),
			errors.Is(err, ErrRateNotFound),
			errors.Is(err, ErrCapacityExceeded):
			uc.logger.Warn("UpdateBookingDates: booking=%d rejected: %v", req.BookingID, err)
		default:
			uc.logger.Error("UpdateBookingDates: booking=%d failed: %v", req.BookingID, err)
		}
		return nil, err
	}

	event := events.NewBookingEvent(events.TypeDatesChanged, result, uc.timeProvider.Now())
	if err := uc.publisher.Publish(ctx, event); err != nil {
		uc.logger.Error("UpdateBookingDates: failed to publish event for booking id=%d: %v", result.ID, err)
	}

	uc.logger.Info("UpdateBookingDates: booking id=%d moved, total=%s, deposit=%s",
		result.ID, result.TotalPrice, result.Deposit)

	return &Response{
		ID:                 result.ID,
		Reference:          result.Reference,
		Category:           string(result.Category),
		AccommodationLabel: result.AccommodationLabel(),
		StartDate:          result.StartDate,
		EndDate:            result.EndDate,
		Season:             string(result.Season),
		Nights:             result.Nights,
		Status:             string(result.Status),
		TotalPrice:         result.TotalPrice,
		Deposit:            result.Deposit,
		RemainingBalance:   result.RemainingBalance,
		UpdatedAt:          result.UpdatedAt,
	}, nil
}
