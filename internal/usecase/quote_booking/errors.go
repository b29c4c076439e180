package quote_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("quote_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда или заезд в прошлом
	ErrInvalidDateRange = errors.New("quote_booking: invalid date range")

	// ErrRateNotFound возвращается, когда для размещения и сезона нет тарифа
	ErrRateNotFound = errors.New("quote_booking: rate not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("quote_booking: internal error")
)
