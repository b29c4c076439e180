package pricing

import "errors"

var (
	// ErrRateNotFound нет строки тарифа или в ней не заполнена нужная цена
	ErrRateNotFound = errors.New("pricing: rate not found")

	// ErrInvalidStay некорректные параметры проживания
	ErrInvalidStay = errors.New("pricing: invalid stay")
)
