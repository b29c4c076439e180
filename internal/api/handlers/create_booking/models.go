package create_booking

import (
	"github.com/maineblanc/camping-booking/internal/api/handlers"
	createBooking "github.com/maineblanc/camping-booking/internal/usecase/create_booking"
	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	handlers.StayRequest
	LastName  string  `json:"lastName"`
	FirstName string  `json:"firstName"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID                 int64       `json:"id"`
	Reference          string      `json:"reference"`
	UserID             int64       `json:"userId"`
	Category           string      `json:"category"`
	Subtype            string      `json:"subtype"`
	AccommodationLabel string      `json:"accommodationLabel"`
	IsWorker           bool        `json:"isWorker"`
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Electricity        bool        `json:"electricity"`
	Season             string      `json:"season"`
	Nights             int         `json:"nights"`
	IncludedPeople     int         `json:"includedPeople"`
	Status             string      `json:"status"`
	TotalPrice         types.Money `json:"totalPrice"`
	Deposit            types.Money `json:"deposit"`
	RemainingBalance   types.Money `json:"remainingBalance"`
	DepositPaid        bool        `json:"depositPaid"`
	PlacesLeft         int         `json:"placesLeft"`
	CreatedAt          string      `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом дат)
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	stay, err := r.ToStay()
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID: userID,
		Stay:   stay,
		Contact: validation.Contact{
			LastName:  r.LastName,
			FirstName: r.FirstName,
			Email:     r.Email,
			Phone:     r.Phone,
		},
		Notes: r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:                 resp.ID,
		Reference:          resp.Reference,
		UserID:             resp.UserID,
		Category:           resp.Category,
		Subtype:            resp.Subtype,
		AccommodationLabel: resp.AccommodationLabel,
		IsWorker:           resp.IsWorker,
		StartDate:          handlers.FormatDate(resp.StartDate),
		EndDate:            handlers.FormatDate(resp.EndDate),
		Electricity:        resp.Electricity,
		Season:             resp.Season,
		Nights:             resp.Nights,
		IncludedPeople:     resp.IncludedPeople,
		Status:             resp.Status,
		TotalPrice:         resp.TotalPrice,
		Deposit:            resp.Deposit,
		RemainingBalance:   resp.RemainingBalance,
		DepositPaid:        resp.DepositPaid,
		PlacesLeft:         resp.PlacesLeft,
		CreatedAt:          handlers.FormatTimestamp(resp.CreatedAt),
	}
}
