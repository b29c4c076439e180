package pricing

import (
	"fmt"
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// Calculator считает стоимость проживания по переданной тарифной сетке
// Не обращается к хранилищу, все тарифы приходят аргументом
type Calculator struct {
	depositPercent int64
}

// NewCalculator создает калькулятор с фиксированным задатком 15%
func NewCalculator() *Calculator {
	return &Calculator{depositPercent: domain.DepositPercent}
}

// Nights число оплачиваемых ночей: заезд и выезд в один день считается одной ночью
func Nights(start, end time.Time) int {
	n := types.DaysBetween(start, end)
	if n < domain.MinNights {
		return domain.MinNights
	}
	return n
}

// IncludedPeople число человек, входящих в базовую цену
func IncludedPeople(category domain.Category, adults int) int {
	if category == domain.CategoryCampingCar || adults >= 2 {
		return 2
	}
	return 1
}

// Price рассчитывает стоимость, задаток и остаток к оплате
func (c *Calculator) Price(stay Stay, tariffs *domain.Tariffs) (*Quote, error) {
	if !stay.Category.IsValid() {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidStay, stay.Category)
	}
	if stay.EndDate.Before(stay.StartDate) {
		return nil, fmt.Errorf("%w: end date before start date", ErrInvalidStay)
	}
	if tariffs == nil {
		tariffs = &domain.Tariffs{}
	}

	quote := &Quote{
		Season:         domain.SeasonOf(stay.StartDate),
		Nights:         Nights(stay.StartDate, stay.EndDate),
		IncludedPeople: IncludedPeople(stay.Category, stay.Adults),
	}

	if stay.IsWorker {
		if err := c.priceWorker(stay, tariffs, quote); err != nil {
			return nil, err
		}
	} else {
		if err := c.priceRegular(stay, tariffs, quote); err != nil {
			return nil, err
		}
		quote.SupplementsTotal = supplements(stay, tariffs.Supplements, quote.IncludedPeople).Mul(int64(quote.Nights))
	}

	// Суммы в центах, дополнительное округление итога не требуется
	quote.Total = quote.BaseTotal.Add(quote.SupplementsTotal)
	quote.Deposit = quote.Total.Percent(c.depositPercent)
	quote.RemainingBalance = quote.Total.Sub(quote.Deposit)

	return quote, nil
}

// priceRegular базовая цена по сезонному тарифу
func (c *Calculator) priceRegular(stay Stay, tariffs *domain.Tariffs, quote *Quote) error {
	rate, ok := tariffs.Rate(stay.Category, quote.Season)
	if !ok {
		return fmt.Errorf("%w: category=%s, season=%s", ErrRateNotFound, stay.Category, quote.Season)
	}

	// Кемпер всегда по цене на двоих, независимо от числа взрослых
	twoPersons := stay.Category == domain.CategoryCampingCar || stay.Adults >= 2

	var price *types.Money
	switch {
	case twoPersons && stay.Electricity:
		price = rate.Price2PersonsWithElectricity
	case twoPersons:
		price = rate.Price2PersonsWithoutElectricity
	case stay.Electricity:
		price = rate.Price1PersonWithElectricity
	default:
		price = rate.Price1PersonWithoutElectricity
	}
	if price == nil {
		return fmt.Errorf("%w: rate id=%d has no price for persons=%d, electricity=%t",
			ErrRateNotFound, rate.ID, quote.IncludedPeople, stay.Electricity)
	}

	quote.BaseTotal = price.Mul(int64(quote.Nights))
	return nil
}

// priceWorker тариф рабочих: каждый день [start, start+nights) по цене будней или выходных
// Электричество в будни всегда включено в цену
func (c *Calculator) priceWorker(stay Stay, tariffs *domain.Tariffs, quote *Quote) error {
	rate, ok := tariffs.WorkerRate(stay.Category)
	if !ok {
		return fmt.Errorf("%w: worker rate for category=%s", ErrRateNotFound, stay.Category)
	}

	weekend := rate.WorkerWeekendWithoutElectricity
	if stay.Electricity {
		weekend = rate.WorkerWeekendWithElectricity
	}

	day := types.DateOnly(stay.StartDate)
	for i := 0; i < quote.Nights; i++ {
		price := rate.WorkerWeekdayPrice
		if types.IsWeekend(day) {
			price = weekend
			quote.WorkerWeekends++
		} else {
			quote.WorkerWeekdays++
		}
		if price == nil {
			return fmt.Errorf("%w: worker rate id=%d has no price for %s",
				ErrRateNotFound, rate.ID, day.Format(domain.DateFormat))
		}
		quote.BaseTotal = quote.BaseTotal.Add(*price)
		day = day.AddDate(0, 0, 1)
	}

	return nil
}

// supplements доплаты за одну ночь
// Отсутствующий набор доплат и незаполненные поля считаются нулевыми
func supplements(stay Stay, set *domain.SupplementSet, includedPeople int) types.Money {
	if set == nil {
		return 0
	}

	extraAdults := stay.Adults - includedPeople
	if extraAdults < 0 {
		extraAdults = 0
	}

	total := set.ExtraAdultPrice.Mul(int64(extraAdults)).
		Add(set.ChildOver8Price.Mul(int64(stay.ChildrenOver8))).
		Add(set.ChildUnder8Price.Mul(int64(stay.ChildrenUnder8))).
		Add(set.PetPrice.Mul(int64(stay.Pets)))

	if set.ExtraVehiclePrice != nil {
		total = total.Add(set.ExtraVehiclePrice.Mul(int64(stay.ExtraVehicles)))
	}
	if set.ExtraTentPrice != nil {
		total = total.Add(set.ExtraTentPrice.Mul(int64(stay.ExtraTents)))
	}

	return total
}
