package tariffs

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("tariffs: internal error")
)
