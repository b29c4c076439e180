package quote_booking

import (
	"time"

	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// Request модель запроса на расчет стоимости
type Request struct {
	validation.Stay
}

// Response модель ответа с расчетом
type Response struct {
	Category           string    // Тарифная категория
	Subtype            string    // Выбранный вид размещения
	AccommodationLabel string    // Название для клиента
	IsWorker           bool      // Тариф рабочих
	StartDate          time.Time // Дата заезда
	EndDate            time.Time // Дата выезда
	Season             string    // Сезон по дате заезда
	Nights             int       // Оплачиваемые ночи
	IncludedPeople     int       // Человек в базовой цене

	BaseTotal        types.Money // Базовая цена за все ночи
	SupplementsTotal types.Money // Доплаты за все ночи
	Total            types.Money // Итого
	Deposit          types.Money // Задаток 15%
	RemainingBalance types.Money // Остаток к оплате

	WorkerWeekdays int // Будни по тарифу рабочих
	WorkerWeekends int // Выходные по тарифу рабочих
}
