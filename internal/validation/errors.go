package validation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidDateRange дата выезда не позже даты заезда или заезд в прошлом
var ErrInvalidDateRange = errors.New("validation: invalid date range")

// FieldError ошибка одного поля запроса
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// FieldErrors все ошибки полей запроса
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	messages := make([]string, 0, len(e))
	for _, err := range e {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(e), strings.Join(messages, "; "))
}
