package update_booking_dates

import (
	"github.com/maineblanc/camping-booking/internal/api/handlers"
	updateDates "github.com/maineblanc/camping-booking/internal/usecase/update_booking_dates"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// UpdateDatesRequest HTTP request model
type UpdateDatesRequest struct {
	StartDate string `json:"startDate"` // "2027-08-10"
	EndDate   string `json:"endDate"`
}

// BookingDatesResponse HTTP response model
type BookingDatesResponse struct {
	ID                 int64       `json:"id"`
	Reference          string      `json:"reference"`
	Category           string      `json:"category"`
	AccommodationLabel string      `json:"accommodationLabel"`
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Season             string      `json:"season"`
	Nights             int         `json:"nights"`
	Status             string      `json:"status"`
	TotalPrice         types.Money `json:"totalPrice"`
	Deposit            types.Money `json:"deposit"`
	RemainingBalance   types.Money `json:"remainingBalance"`
	UpdatedAt          string      `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateDatesRequest) ToUseCaseRequest(bookingID, userID int64) (*updateDates.Request, error) {
	start, err := handlers.ParseDate(r.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseDate(r.EndDate)
	if err != nil {
		return nil, err
	}

	return &updateDates.Request{
		BookingID: bookingID,
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateDates.Response) *BookingDatesResponse {
	return &BookingDatesResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		Category:           resp.Category,
		AccommodationLabel: resp.AccommodationLabel,
		StartDate:          handlers.FormatDate(resp.StartDate),
		EndDate:            handlers.FormatDate(resp.EndDate),
		Season:             resp.Season,
		Nights:             resp.Nights,
		Status:             resp.Status,
		TotalPrice:         resp.TotalPrice,
		Deposit:            resp.Deposit,
		RemainingBalance:   resp.RemainingBalance,
		UpdatedAt:          handlers.FormatTimestamp(resp.UpdatedAt),
	}
}
