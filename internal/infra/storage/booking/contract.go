package booking

import (
	"github.com/maineblanc/camping-booking/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}
