package handlers

import (
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
)

// ParseDate разбирает дату формата YYYY-MM-DD
func ParseDate(value string) (time.Time, error) {
	return time.Parse(domain.DateFormat, value)
}

// FormatDate форматирует дату в YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(domain.DateFormat)
}

// FormatTimestamp форматирует момент времени в RFC3339
func FormatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
