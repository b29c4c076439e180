package domain

import (
	"time"

	"github.com/maineblanc/camping-booking/pkg/types"
)

// RateRow строка тарифной сетки
// Для обычного тарифа задан сезон, для тарифа рабочих Season == nil и IsWorker == true.
// На пару (категория, сезон) ровно одна обычная строка, на категорию - одна строка рабочих.
type RateRow struct {
	ID       int64
	Category Category
	Season   *Season
	IsWorker bool

	Price1PersonWithElectricity     *types.Money
	Price2PersonsWithElectricity    *types.Money
	Price1PersonWithoutElectricity  *types.Money
	Price2PersonsWithoutElectricity *types.Money

	// Тариф рабочих: будни (электричество включено) и выходные
	WorkerWeekdayPrice              *types.Money
	WorkerWeekendWithElectricity    *types.Money
	WorkerWeekendWithoutElectricity *types.Money

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IncludedPeople количество человек, входящих в базовую цену строки
// Не вводится администратором: 2 для кемпера или если задана цена на двоих, иначе 1
func (r *RateRow) IncludedPeople() int {
	if r.Category == CategoryCampingCar ||
		r.Price2PersonsWithElectricity != nil ||
		r.Price2PersonsWithoutElectricity != nil {
		return 2
	}
	return 1
}

// SupplementSet единые доплаты, не зависящие от сезона и категории
type SupplementSet struct {
	ID int64

	ExtraAdultPrice  types.Money
	ChildOver8Price  types.Money
	ChildUnder8Price types.Money
	PetPrice         types.Money

	ExtraVehiclePrice       *types.Money
	ExtraTentPrice          *types.Money
	VisitorPriceWithoutPool *types.Money
	VisitorPriceWithPool    *types.Money

	// Залог за выдаваемое оборудование (адаптер, фен...), к стоимости не прибавляется
	Deposit *types.Money
}

// CapacityLimit максимальное число одновременно занятых мест категории
type CapacityLimit struct {
	ID        int64
	Category  Category
	MaxPlaces int
	UpdatedAt time.Time
}

// Tariffs явная конфигурация для калькулятора цены
// Загружается один раз на запрос и передается в расчет целиком
type Tariffs struct {
	Rates       []*RateRow
	Supplements *SupplementSet // nil - доплаты считаются нулевыми
}

// Rate ищет обычный тариф для категории и сезона
func (t *Tariffs) Rate(category Category, season Season) (*RateRow, bool) {
	for _, r := range t.Rates {
		if r.IsWorker || r.Category != category || r.Season == nil {
			continue
		}
		if *r.Season == season {
			return r, true
		}
	}
	return nil, false
}

// WorkerRate ищет тариф рабочих для категории
func (t *Tariffs) WorkerRate(category Category) (*RateRow, bool) {
	for _, r := range t.Rates {
		if r.IsWorker && r.Category == category {
			return r, true
		}
	}
	return nil, false
}
