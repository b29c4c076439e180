package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDaysBetween(t *testing.T) {
	start := time.Date(2026, 8, 1, 15, 30, 0, 0, time.UTC)
	end := time.Date(2026, 8, 5, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, 4, DaysBetween(start, end))
	assert.Equal(t, 0, DaysBetween(start, start))
	assert.Equal(t, -4, DaysBetween(end, start))
}

func TestIsWeekend(t *testing.T) {
	// 2026-08-01 - суббота
	assert.True(t, IsWeekend(time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, IsWeekend(time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, IsWeekend(time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)))
}
