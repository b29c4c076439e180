package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// Type тип события бронирования
type Type string

const (
	TypeBookingCreated   Type = "booking.created"
	TypeDepositPaid      Type = "booking.deposit_paid"
	TypeBookingCancelled Type = "booking.cancelled"
	TypeDatesChanged     Type = "booking.dates_changed"
)

// Заголовки сообщений
const (
	HeaderEventID   = "event-id"
	HeaderEventType = "event-type"
)

// BookingEvent данные для писем клиенту: суммы и название размещения
type BookingEvent struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	OccurredAt time.Time `json:"occurredAt"`

	BookingID          int64  `json:"bookingId"`
	Reference          string `json:"reference"`
	UserID             int64  `json:"userId"`
	Category           string `json:"category"`
	Subtype            string `json:"subtype"`
	AccommodationLabel string `json:"accommodationLabel"`
	IsWorker           bool   `json:"isWorker"`
	StartDate          string `json:"startDate"`
	EndDate            string `json:"endDate"`
	Nights             int    `json:"nights"`

	TotalPrice       types.Money `json:"totalPrice"`
	Deposit          types.Money `json:"deposit"`
	RemainingBalance types.Money `json:"remainingBalance"`
	DepositPaid      bool        `json:"depositPaid"`
	Status           string      `json:"status"`

	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// NewBookingEvent собирает событие из бронирования
func NewBookingEvent(eventType Type, b *domain.Booking, occurredAt time.Time) BookingEvent {
	return BookingEvent{
		ID:                 uuid.NewString(),
		Type:               eventType,
		OccurredAt:         occurredAt.UTC(),
		BookingID:          b.ID,
		Reference:          b.Reference,
		UserID:             b.UserID,
		Category:           string(b.Category),
		Subtype:            string(b.Subtype),
		AccommodationLabel: b.AccommodationLabel(),
		IsWorker:           b.IsWorker,
		StartDate:          b.StartDate.Format(domain.DateFormat),
		EndDate:            b.EndDate.Format(domain.DateFormat),
		Nights:             b.Nights,
		TotalPrice:         b.TotalPrice,
		Deposit:            b.Deposit,
		RemainingBalance:   b.RemainingBalance,
		DepositPaid:        b.DepositPaid,
		Status:             string(b.Status),
		Email:              b.Contact.Email,
		FirstName:          b.Contact.FirstName,
		LastName:           b.Contact.LastName,
	}
}
