package check_availability

import (
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
)

// calculateNights занятость категории для каждой ночи периода [start, end)
func calculateNights(start, end time.Time, bookings []*domain.Booking, maxPlaces int) []Night {
	result := make([]Night, 0)

	for night := start; night.Before(end); night = night.AddDate(0, 0, 1) {
		occupied := countOccupying(night, bookings)

		available := maxPlaces - occupied
		if available < 0 {
			available = 0
		}

		result = append(result, Night{
			Date:            night,
			OccupiedPlaces:  occupied,
			AvailablePlaces: available,
		})
	}

	return result
}

// countOccupying сколько активных бронирований занимают место в ночь night
//
// Примеры для ночи 10→11:
// - бронь 09→11 → занимает
// - бронь 08→10 → не занимает (выезд утром 10-го)
// - бронь 11→12 → не занимает (заезд вечером 11-го)
func countOccupying(night time.Time, bookings []*domain.Booking) int {
	count := 0
	for _, b := range bookings {
		if !b.IsActive() {
			continue
		}
		if b.Overlaps(night, night.AddDate(0, 0, 1)) {
			count++
		}
	}
	return count
}
