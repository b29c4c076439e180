package domain

// Availability состояние вместимости категории на период
type Availability struct {
	Category        Category
	MaxPlaces       int
	OccupiedPlaces  int
	AvailablePlaces int
}

// NewAvailability считает свободные места, не уходя в минус
func NewAvailability(category Category, maxPlaces, occupied int) *Availability {
	available := maxPlaces - occupied
	if available < 0 {
		available = 0
	}
	return &Availability{
		Category:        category,
		MaxPlaces:       maxPlaces,
		OccupiedPlaces:  occupied,
		AvailablePlaces: available,
	}
}

// IsFull true, если свободных мест нет
func (a *Availability) IsFull() bool {
	return a.AvailablePlaces <= 0
}

// OccupancyRate заполненность в процентах (0-100)
func (a *Availability) OccupancyRate() float64 {
	if a.MaxPlaces == 0 {
		return 0
	}
	return float64(a.OccupiedPlaces) / float64(a.MaxPlaces) * 100
}
