package domain

// Бизнес-правила расчета
const (
	// DepositPercent задаток - фиксированные 15% от стоимости, невозвратный
	DepositPercent = 15

	// MinNights бронирование на один день оплачивается как одна ночь
	MinNights = 1
)

// Ограничения формы бронирования
const (
	MinAdults         = 1
	MaxAdults         = 10
	MaxChildren       = 10
	MaxPets           = 2
	MaxExtraVehicles  = 5
	MaxExtraTents     = 5
	MaxNotesLength    = 1000
	MaxDimensionMeter = 30
)

// Форматы дат
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses статусы, не занимающие место
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses статусы, занимающие место
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
