package quote_booking

import (
	"github.com/maineblanc/camping-booking/internal/api/handlers"
	quoteBooking "github.com/maineblanc/camping-booking/internal/usecase/quote_booking"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Category           string      `json:"category"`
	Subtype            string      `json:"subtype"`
	AccommodationLabel string      `json:"accommodationLabel"`
	IsWorker           bool        `json:"isWorker"`
	StartDate          string      `json:"startDate"`
	EndDate            string      `json:"endDate"`
	Season             string      `json:"season"`
	Nights             int         `json:"nights"`
	IncludedPeople     int         `json:"includedPeople"`
	BaseTotal          types.Money `json:"baseTotal"`
	SupplementsTotal   types.Money `json:"supplementsTotal"`
	TotalPrice         types.Money `json:"totalPrice"`
	Deposit            types.Money `json:"deposit"`
	RemainingBalance   types.Money `json:"remainingBalance"`
	WorkerWeekdays     int         `json:"workerWeekdays,omitempty"`
	WorkerWeekends     int         `json:"workerWeekends,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteBooking.Response) *QuoteResponse {
	return &QuoteResponse{
		Category:           resp.Category,
		Subtype:            resp.Subtype,
		AccommodationLabel: resp.AccommodationLabel,
		IsWorker:           resp.IsWorker,
		StartDate:          handlers.FormatDate(resp.StartDate),
		EndDate:            handlers.FormatDate(resp.EndDate),
		Season:             resp.Season,
		Nights:             resp.Nights,
		IncludedPeople:     resp.IncludedPeople,
		BaseTotal:          resp.BaseTotal,
		SupplementsTotal:   resp.SupplementsTotal,
		TotalPrice:         resp.Total,
		Deposit:            resp.Deposit,
		RemainingBalance:   resp.RemainingBalance,
		WorkerWeekdays:     resp.WorkerWeekdays,
		WorkerWeekends:     resp.WorkerWeekends,
	}
}
