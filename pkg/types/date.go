package types

import "time"

const hoursPerDay = 24

// DateOnly отбрасывает время и приводит дату к полуночи UTC
// Все даты заезда/выезда хранятся и сравниваются в таком виде
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween количество календарных дней от start до end (может быть отрицательным)
func DaysBetween(start, end time.Time) int {
	return int(DateOnly(end).Sub(DateOnly(start)).Hours() / hoursPerDay)
}

// IsWeekend true для субботы и воскресенья
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
