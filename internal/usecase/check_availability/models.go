package check_availability

import (
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
)

// Request модель запроса свободных мест
type Request struct {
	Subtype   domain.Subtype // Вид размещения
	StartDate time.Time      // Дата заезда
	EndDate   time.Time      // Дата выезда
}

// Response свободные места категории на период
type Response struct {
	Category           string
	AccommodationLabel string
	StartDate          time.Time
	EndDate            time.Time

	// Итог по правилу приема бронирований: считаются все брони, пересекающие период
	MaxPlaces       int
	OccupiedPlaces  int
	AvailablePlaces int
	Bookable        bool
	OccupancyRate   float64 // Заполненность в процентах

	Nights []Night // Занятость по ночам
}

// Night занятость категории в одну ночь
type Night struct {
	Date            time.Time // Ночь с Date на Date+1
	OccupiedPlaces  int
	AvailablePlaces int
}
