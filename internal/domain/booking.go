package domain

import (
	"time"

	"github.com/maineblanc/camping-booking/pkg/types"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"   // создано, задаток не оплачен
	StatusConfirmed BookingStatus = "confirmed" // задаток оплачен
	StatusCancelled BookingStatus = "cancelled"
)

// Contact контактные данные клиента
type Contact struct {
	LastName  string
	FirstName string
	Email     string
	Phone     string
}

// Booking сохраненное бронирование места
type Booking struct {
	ID        int64
	Reference string // публичный номер (UUID) для писем и оплаты
	UserID    int64

	// Category всегда нормализована из Subtype перед сохранением
	Category Category
	Subtype  Subtype
	IsWorker bool

	StartDate   time.Time
	EndDate     time.Time
	Electricity bool

	Adults         int
	ChildrenOver8  int
	ChildrenUnder8 int
	Pets           int
	ExtraVehicles  int
	ExtraTents     int

	TentWidth     *float64
	TentLength    *float64
	VehicleLength *float64
	CableLength   *float64

	// Производные поля, рассчитанные калькулятором
	Season           Season
	Nights           int
	IncludedPeople   int
	TotalPrice       types.Money
	Deposit          types.Money
	RemainingBalance types.Money
	DepositPaid      bool

	Status  BookingStatus
	Contact Contact
	Notes   *string

	CancelledAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsActive true, если бронирование занимает место
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled отменить можно только активное бронирование
func (b *Booking) CanBeCancelled() bool {
	return b.IsActive()
}

// CanBeUpdated менять даты можно только до оплаты задатка
// После оплаты сумма задатка зафиксирована
func (b *Booking) CanBeUpdated() bool {
	return b.Status == StatusPending && !b.DepositPaid
}

// Overlaps проверяет пересечение полуоткрытых интервалов [StartDate, EndDate) и [start, end)
// Выезд в день N и заезд в день N не пересекаются
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartDate.Before(OccupiedEnd(start, end)) && OccupiedEnd(b.StartDate, b.EndDate).After(start)
}

// OccupiedEnd дата освобождения места
// Заезд и выезд в один день занимают место на одну ночь, как и оплачиваются
func OccupiedEnd(start, end time.Time) time.Time {
	if !end.After(start) {
		return start.AddDate(0, 0, MinNights)
	}
	return end
}

// AccommodationLabel название размещения для уведомлений
func (b *Booking) AccommodationLabel() string {
	return b.Subtype.Label()
}

// BookingsFilter фильтр выборки бронирований категории
type BookingsFilter struct {
	Category        Category
	OverlapStart    *time.Time // бронирования, заканчивающиеся после этой даты
	OverlapEnd      *time.Time // бронирования, начинающиеся до этой даты
	IncludeInactive bool
}
