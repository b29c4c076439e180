package pricing

import (
	"time"

	"github.com/maineblanc/camping-booking/internal/domain"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// Stay параметры проживания, от которых зависит цена
// Категория уже нормализована из подтипа, даты без времени
type Stay struct {
	Category    domain.Category
	IsWorker    bool
	StartDate   time.Time
	EndDate     time.Time
	Electricity bool

	Adults         int
	ChildrenOver8  int
	ChildrenUnder8 int
	Pets           int
	ExtraVehicles  int
	ExtraTents     int
}

// Quote результат расчета
type Quote struct {
	Season         domain.Season
	Nights         int
	IncludedPeople int

	BaseTotal        types.Money
	SupplementsTotal types.Money
	Total            types.Money
	Deposit          types.Money
	RemainingBalance types.Money

	// Разбивка для тарифа рабочих
	WorkerWeekdays int
	WorkerWeekends int
}
