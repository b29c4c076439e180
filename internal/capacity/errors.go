package capacity

import "errors"

var (
	// ErrCapacityUndefined для категории не задано число мест - ошибка конфигурации
	ErrCapacityUndefined = errors.New("capacity: capacity undefined for category")

	// ErrCapacityExceeded на выбранные даты нет свободных мест
	ErrCapacityExceeded = errors.New("capacity: no places left for these dates")

	// ErrInternal ошибка чтения данных
	ErrInternal = errors.New("capacity: internal error")
)
