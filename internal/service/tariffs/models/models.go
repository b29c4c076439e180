package models

import (
	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// TariffSheetResponse тарифная сетка для страницы информации
type TariffSheetResponse struct {
	Categories     []CategoryTariffs    `json:"categories"`
	Supplements    *SupplementsResponse `json:"supplements,omitempty"`
	DepositPercent int                  `json:"depositPercent"`
}

// CategoryTariffs тарифы одной категории
type CategoryTariffs struct {
	Category  string        `json:"category"`
	Label     string        `json:"label"`
	MaxPlaces *int          `json:"maxPlaces,omitempty"`
	Seasons   []SeasonRate  `json:"seasons"`
	Worker    *WorkerTariff `json:"worker,omitempty"`
}

// SeasonRate цены за ночь в сезон
type SeasonRate struct {
	Season                          string       `json:"season"`
	Label                           string       `json:"label"`
	IncludedPeople                  int          `json:"includedPeople"`
	Price1PersonWithElectricity     *types.Money `json:"price1PersonWithElectricity,omitempty"`
	Price2PersonsWithElectricity    *types.Money `json:"price2PersonsWithElectricity,omitempty"`
	Price1PersonWithoutElectricity  *types.Money `json:"price1PersonWithoutElectricity,omitempty"`
	Price2PersonsWithoutElectricity *types.Money `json:"price2PersonsWithoutElectricity,omitempty"`
}

// WorkerTariff цены для рабочих
type WorkerTariff struct {
	WeekdayPrice              *types.Money `json:"weekdayPrice,omitempty"`
	WeekendWithElectricity    *types.Money `json:"weekendWithElectricity,omitempty"`
	WeekendWithoutElectricity *types.Money `json:"weekendWithoutElectricity,omitempty"`
}

// SupplementsResponse доплаты за ночь
type SupplementsResponse struct {
	ExtraAdult              types.Money  `json:"extraAdult"`
	ChildOver8              types.Money  `json:"childOver8"`
	ChildUnder8             types.Money  `json:"childUnder8"`
	Pet                     types.Money  `json:"pet"`
	ExtraVehicle            *types.Money `json:"extraVehicle,omitempty"`
	ExtraTent               *types.Money `json:"extraTent,omitempty"`
	VisitorWithoutPool      *types.Money `json:"visitorWithoutPool,omitempty"`
	VisitorWithPool         *types.Money `json:"visitorWithPool,omitempty"`
	EquipmentSecurityAmount *types.Money `json:"equipmentSecurityAmount,omitempty"`
}

// FromDomain собирает сетку в порядке категорий и сезонов
func FromDomain(t *domain.Tariffs, limits []*domain.CapacityLimit) *TariffSheetResponse {
	resp := &TariffSheetResponse{
		Categories:     make([]CategoryTariffs, 0, len(domain.Categories)),
		DepositPercent: domain.DepositPercent,
	}

	maxPlaces := make(map[domain.Category]int, len(limits))
	for _, l := range limits {
		maxPlaces[l.Category] = l.MaxPlaces
	}

	for _, c := range domain.Categories {
		ct := CategoryTariffs{
			Category: string(c),
			Label:    c.Label(),
			Seasons:  make([]SeasonRate, 0, len(domain.Seasons)),
		}
		if m, ok := maxPlaces[c]; ok {
			ct.MaxPlaces = &m
		}

		for _, s := range domain.Seasons {
			rate, ok := t.Rate(c, s)
			if !ok {
				continue
			}
			ct.Seasons = append(ct.Seasons, SeasonRate{
				Season:                          string(s),
				Label:                           s.Label(),
				IncludedPeople:                  rate.IncludedPeople(),
				Price1PersonWithElectricity:     rate.Price1PersonWithElectricity,
				Price2PersonsWithElectricity:    rate.Price2PersonsWithElectricity,
				Price1PersonWithoutElectricity:  rate.Price1PersonWithoutElectricity,
				Price2PersonsWithoutElectricity: rate.Price2PersonsWithoutElectricity,
			})
		}

		if w, ok := t.WorkerRate(c); ok {
			ct.Worker = &WorkerTariff{
				WeekdayPrice:              w.WorkerWeekdayPrice,
				WeekendWithElectricity:    w.WorkerWeekendWithElectricity,
				WeekendWithoutElectricity: w.WorkerWeekendWithoutElectricity,
			}
		}

		// Категории без единого тарифа не показываем
		if len(ct.Seasons) == 0 && ct.Worker == nil {
			continue
		}
		resp.Categories = append(resp.Categories, ct)
	}

	if s := t.Supplements; s != nil {
		resp.Supplements = &SupplementsResponse{
			ExtraAdult:              s.ExtraAdultPrice,
			ChildOver8:              s.ChildOver8Price,
			ChildUnder8:             s.ChildUnder8Price,
			Pet:                     s.PetPrice,
			ExtraVehicle:            s.ExtraVehiclePrice,
			ExtraTent:               s.ExtraTentPrice,
			VisitorWithoutPool:      s.VisitorPriceWithoutPool,
			VisitorWithPool:         s.VisitorPriceWithPool,
			EquipmentSecurityAmount: s.Deposit,
		}
	}

	return resp
}
