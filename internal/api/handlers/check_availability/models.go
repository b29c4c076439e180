package check_availability

import (
	"math"

	"github.com/maineblanc/camping-booking/internal/api/handlers"
	checkAvailability "github.com/maineblanc/camping-booking/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Category           string          `json:"category"`
	AccommodationLabel string          `json:"accommodationLabel"`
	StartDate          string          `json:"startDate"`
	EndDate            string          `json:"endDate"`
	MaxPlaces          int             `json:"maxPlaces"`
	OccupiedPlaces     int             `json:"occupiedPlaces"`
	AvailablePlaces    int             `json:"availablePlaces"`
	Bookable           bool            `json:"bookable"`
	OccupancyRate      float64         `json:"occupancyRate"`
	Nights             []NightResponse `json:"nights"`
}

// NightResponse HTTP response model
type NightResponse struct {
	Date            string `json:"date"`
	OccupiedPlaces  int    `json:"occupiedPlaces"`
	AvailablePlaces int    `json:"availablePlaces"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	nights := make([]NightResponse, len(resp.Nights))
	for i, n := range resp.Nights {
		nights[i] = NightResponse{
			Date:            handlers.FormatDate(n.Date),
			OccupiedPlaces:  n.OccupiedPlaces,
			AvailablePlaces: n.AvailablePlaces,
		}
	}

	return &AvailabilityResponse{
		Category:           resp.Category,
		AccommodationLabel: resp.AccommodationLabel,
		StartDate:          handlers.FormatDate(resp.StartDate),
		EndDate:            handlers.FormatDate(resp.EndDate),
		MaxPlaces:          resp.MaxPlaces,
		OccupiedPlaces:     resp.OccupiedPlaces,
		AvailablePlaces:    resp.AvailablePlaces,
		Bookable:           resp.Bookable,
		OccupancyRate:      math.Round(resp.OccupancyRate*10) / 10,
		Nights:             nights,
	}
}
