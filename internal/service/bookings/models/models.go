package models

import (
	"errors"
	"slices"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	UserID int64   `json:"userId"`
	Status *string `json:"status,omitempty"`
}

// Response модели

// ContactResponse контактные данные клиента
type ContactResponse struct {
	LastName  string `json:"lastName"`
	FirstName string `json:"firstName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID                 int64  `json:"id"`
	Reference          string `json:"reference"`
	UserID             int64  `json:"userId"`
	Category           string `json:"category"`
	Subtype            string `json:"subtype"`
	AccommodationLabel string `json:"accommodationLabel"`
	IsWorker           bool   `json:"isWorker"`
	StartDate          string `json:"startDate"` // "2027-08-10"
	EndDate            string `json:"endDate"`
	Electricity        bool   `json:"electricity"`

	Adults         int `json:"adults"`
	ChildrenOver8  int `json:"childrenOver8"`
	ChildrenUnder8 int `json:"childrenUnder8"`
	Pets           int `json:"pets"`
	ExtraVehicles  int `json:"extraVehicles"`
	ExtraTents     int `json:"extraTents"`

	TentWidth     *float64 `json:"tentWidth,omitempty"`
	TentLength    *float64 `json:"tentLength,omitempty"`
	VehicleLength *float64 `json:"vehicleLength,omitempty"`
	CableLength   *float64 `json:"cableLength,omitempty"`

	Season           string      `json:"season"`
	Nights           int         `json:"nights"`
	IncludedPeople   int         `json:"includedPeople"`
	TotalPrice       types.Money `json:"totalPrice"`
	Deposit          types.Money `json:"deposit"`
	RemainingBalance types.Money `json:"remainingBalance"`
	DepositPaid      bool        `json:"depositPaid"`
	Status           string      `json:"status"`

	Contact ContactResponse `json:"contact"`
	Notes   *string         `json:"notes,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		UserID:             b.UserID,
		Category:           string(b.Category),
		Subtype:            string(b.Subtype),
		AccommodationLabel: b.AccommodationLabel(),
		IsWorker:           b.IsWorker,
		StartDate:          b.StartDate.Format(domain.DateFormat),
		EndDate:            b.EndDate.Format(domain.DateFormat),
		Electricity:        b.Electricity,
		Adults:             b.Adults,
		ChildrenOver8:      b.ChildrenOver8,
		ChildrenUnder8:     b.ChildrenUnder8,
		Pets:               b.Pets,
		ExtraVehicles:      b.ExtraVehicles,
		ExtraTents:         b.ExtraTents,
		TentWidth:          b.TentWidth,
		TentLength:         b.TentLength,
		VehicleLength:      b.VehicleLength,
		CableLength:        b.CableLength,
		Season:             string(b.Season),
		Nights:             b.Nights,
		IncludedPeople:     b.IncludedPeople,
		TotalPrice:         b.TotalPrice,
		Deposit:            b.Deposit,
		RemainingBalance:   b.RemainingBalance,
		DepositPaid:        b.DepositPaid,
		Status:             string(b.Status),
		Contact: ContactResponse{
			LastName:  b.Contact.LastName,
			FirstName: b.Contact.FirstName,
			Email:     b.Contact.Email,
			Phone:     b.Contact.Phone,
		},
		Notes:     b.Notes,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}

	// Конвертируем CancelledAt в строку ISO 8601
	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(status)

	if slices.Contains(domain.ActiveStatuses, s) || slices.Contains(domain.InactiveStatuses, s) {
		return s, nil
	}

	return "", ErrInvalidStatus
}
