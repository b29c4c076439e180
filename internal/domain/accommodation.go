package domain

import "errors"

// ErrUnknownSubtype возвращается для подтипа, отсутствующего в таблице соответствия
var ErrUnknownSubtype = errors.New("domain: unknown accommodation subtype")

// Category тарифная категория размещения - определяет строку тарифа
type Category string

const (
	CategoryTent       Category = "tent"
	CategoryCaravan    Category = "caravan"
	CategoryCampingCar Category = "camping_car"
	CategoryOther      Category = "other"
)

// Categories все категории в порядке вывода тарифной сетки
var Categories = []Category{
	CategoryTent,
	CategoryCaravan,
	CategoryCampingCar,
	CategoryOther,
}

// IsValid true для известной категории
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label название категории для тарифной сетки
func (c Category) Label() string {
	switch c {
	case CategoryTent:
		return "Tente / Voiture tente"
	case CategoryCaravan:
		return "Caravane / Fourgon"
	case CategoryCampingCar:
		return "Camping-car"
	case CategoryOther:
		return "Autre"
	default:
		return string(c)
	}
}

// Subtype вид размещения, который выбирает клиент
type Subtype string

const (
	SubtypeTent       Subtype = "tent"
	SubtypeCarTent    Subtype = "car_tent"
	SubtypeCaravan    Subtype = "caravan"
	SubtypeFourgon    Subtype = "fourgon"
	SubtypeVan        Subtype = "van"
	SubtypeCampingCar Subtype = "camping_car"
	SubtypeMobilHome  Subtype = "mobil_home"
)

// subtypeCategories единственная таблица подтип -> категория
// Используется валидацией, расчетом цены и проверкой вместимости
var subtypeCategories = map[Subtype]Category{
	SubtypeTent:       CategoryTent,
	SubtypeCarTent:    CategoryTent,
	SubtypeCaravan:    CategoryCaravan,
	SubtypeFourgon:    CategoryCaravan,
	SubtypeVan:        CategoryCaravan,
	SubtypeCampingCar: CategoryCampingCar,
	SubtypeMobilHome:  CategoryOther,
}

var subtypeLabels = map[Subtype]string{
	SubtypeTent:       "Tente",
	SubtypeCarTent:    "Voiture tente",
	SubtypeCaravan:    "Caravane",
	SubtypeFourgon:    "Fourgon",
	SubtypeVan:        "Van",
	SubtypeCampingCar: "Camping-car",
	SubtypeMobilHome:  "Mobil-home",
}

// CategoryOf возвращает тарифную категорию подтипа
func CategoryOf(s Subtype) (Category, error) {
	c, ok := subtypeCategories[s]
	if !ok {
		return "", ErrUnknownSubtype
	}
	return c, nil
}

// IsValid true для подтипа из таблицы соответствия
func (s Subtype) IsValid() bool {
	_, ok := subtypeCategories[s]
	return ok
}

// Label человекочитаемое название для писем и ответов API
func (s Subtype) Label() string {
	if l, ok := subtypeLabels[s]; ok {
		return l
	}
	return string(s)
}

// IsTentLike для таких подтипов обязательны размеры палатки
func (s Subtype) IsTentLike() bool {
	return s == SubtypeTent || s == SubtypeCarTent
}

// IsVehicleLike для таких подтипов обязательна длина транспортного средства
// camping-car в список не входит
func (s Subtype) IsVehicleLike() bool {
	switch s {
	case SubtypeCaravan, SubtypeFourgon, SubtypeVan:
		return true
	default:
		return false
	}
}
