package tariff

import "errors"

var (
	// ErrSupplementsNotFound возвращается, когда набор доплат не заведен
	ErrSupplementsNotFound = errors.New("tariff.repository: supplement set not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("tariff.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("tariff.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("tariff.repository: failed to scan row")
)
