package collections

import "errors"

var (
	// ErrCollectionNotFound возвращается, когда коллекция ещё ни разу не сохранялась
	ErrCollectionNotFound = errors.New("collections.repository: collection not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("collections.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения запроса
	ErrExecQuery = errors.New("collections.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("collections.repository: failed to scan row")

	// ErrInvalidPayload возвращается, когда снимок коллекции не является JSON
	ErrInvalidPayload = errors.New("collections.repository: payload is not valid JSON")
)
