package create_booking

import (
	"time"

	"github.com/maineblanc/camping-booking/internal/validation"
	"github.com/maineblanc/camping-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64 // ID пользователя
	validation.Stay
	Contact validation.Contact
	Notes   *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID                 int64     // ID созданного бронирования
	Reference          string    // Публичный номер
	UserID             int64     // ID пользователя
	Category           string    // Тарифная категория
	Subtype            string    // Вид размещения
	AccommodationLabel string    // Название для клиента
	IsWorker           bool      // Тариф рабочих
	StartDate          time.Time // Дата заезда
	EndDate            time.Time // Дата выезда
	Electricity        bool      // С электричеством
	Season             string    // Сезон
	Nights             int       // Оплачиваемые ночи
	IncludedPeople     int       // Человек в базовой цене
	Status             string    // Статус бронирования

	TotalPrice       types.Money // Итого
	Deposit          types.Money // Задаток 15%
	RemainingBalance types.Money // Остаток к оплате
	DepositPaid      bool        // Задаток оплачен

	PlacesLeft int // Свободных мест категории после бронирования

	CreatedAt time.Time // Время создания
}
