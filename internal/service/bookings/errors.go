package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking not found")

	// ErrAccessDenied возвращается, когда у пользователя нет прав доступа
	ErrAccessDenied = errors.New("access denied")

	// ErrCannotCancel возвращается, когда бронирование не может быть отменено
	ErrCannotCancel = errors.New("booking cannot be cancelled")

	// ErrAlreadyPaid возвращается при повторной оплате задатка
	ErrAlreadyPaid = errors.New("deposit already paid")

	// ErrBookingCancelled возвращается при оплате отмененного бронирования
	ErrBookingCancelled = errors.New("booking is cancelled")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
