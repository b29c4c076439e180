package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда или заезд в прошлом
	ErrInvalidDateRange = errors.New("create_booking: invalid date range")

	// ErrRateNotFound возвращается, когда для размещения и сезона нет тарифа
	ErrRateNotFound = errors.New("create_booking: rate not found")

	// ErrCapacityExceeded возвращается, когда на выбранные даты нет мест
	ErrCapacityExceeded = errors.New("create_booking: no places left for these dates")

	// ErrCapacityUndefined возвращается, когда для категории не задано число мест
	ErrCapacityUndefined = errors.New("create_booking: capacity undefined")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
