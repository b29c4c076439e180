package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/internal/events"
	bookingRepo "github.com/maineblanc/camping-booking/internal/infra/storage/booking"
	"github.com/maineblanc/camping-booking/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo  BookingRepository
	txManager    TransactionManager
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	publisher EventPublisher,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		publisher:    publisher,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает бронирование по ID
// Пользователь может видеть только своё бронирование
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.getOwned(ctx, "GetByID", id, userID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование владельца, место освобождается
// Задаток невозвратный, отметка об оплате сохраняется
func (s *Service) Cancel(ctx context.Context, bookingID int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, userID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getOwned(txCtx, "Cancel", bookingID, userID)
		if err != nil {
			return err
		}

		if !booking.CanBeCancelled() {
			s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
			return ErrCannotCancel
		}

		if err := s.bookingRepo.Cancel(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
				return ErrBookingNotFound
			}
			s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		now := s.timeProvider.Now()
		booking.Status = domain.StatusCancelled
		booking.CancelledAt = &now
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeBookingCancelled, result)

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// MarkDepositPaid отмечает оплату задатка (15%) и подтверждает бронирование
func (s *Service) MarkDepositPaid(ctx context.Context, bookingID int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("MarkDepositPaid: booking id=%d by user=%d", bookingID, userID)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getOwned(txCtx, "MarkDepositPaid", bookingID, userID)
		if err != nil {
			return err
		}

		if !booking.IsActive() {
			s.logger.Warn("MarkDepositPaid: booking id=%d is cancelled", bookingID)
			return ErrBookingCancelled
		}
		if booking.DepositPaid {
			s.logger.Warn("MarkDepositPaid: deposit for booking id=%d already paid", bookingID)
			return ErrAlreadyPaid
		}

		if err := s.bookingRepo.MarkDepositPaid(txCtx, bookingID); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("MarkDepositPaid: repository error for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: MarkDepositPaid - repository error: %v", ErrInternal, err)
		}

		booking.DepositPaid = true
		booking.Status = domain.StatusConfirmed
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.TypeDepositPaid, result)

	s.logger.Info("MarkDepositPaid: booking id=%d confirmed, deposit=%s, remaining=%s",
		bookingID, result.Deposit, result.RemainingBalance)
	return models.FromDomainBooking(result), nil
}

// Вспомогательные методы

// getOwned получает бронирование и проверяет, что оно принадлежит пользователю
func (s *Service) getOwned(ctx context.Context, op string, id int64, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%d not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if booking.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to booking id=%d", op, userID, id)
		return nil, ErrAccessDenied
	}

	return booking, nil
}

// publish отправляет событие после фиксации транзакции
// Ошибка публикации не отменяет операцию
func (s *Service) publish(ctx context.Context, eventType events.Type, booking *domain.Booking) {
	event := events.NewBookingEvent(eventType, booking, s.timeProvider.Now())
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Error("publish: failed to publish %s for booking id=%d: %v", eventType, booking.ID, err)
	}
}
