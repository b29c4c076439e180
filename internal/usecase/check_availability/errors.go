package check_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_availability: invalid input data")

	// ErrInvalidDateRange возвращается, когда выезд не позже заезда или заезд в прошлом
	ErrInvalidDateRange = errors.New("check_availability: invalid date range")

	// ErrRangeTooLong возвращается, когда период длиннее календаря доступности
	ErrRangeTooLong = errors.New("check_availability: date range is too long")

	// ErrCapacityUndefined возвращается, когда для категории не задано число мест
	ErrCapacityUndefined = errors.New("check_availability: capacity undefined")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_availability: internal error")
)
