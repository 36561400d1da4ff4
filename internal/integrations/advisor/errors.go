package advisor

import "errors"

var (
	// ErrNotConfigured возвращается, когда не задан API-ключ
	ErrNotConfigured = errors.New("advisor client: api key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("advisor client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("advisor client: invalid response")

	// ErrEmptyAnswer возвращается, когда модель не вернула текста
	ErrEmptyAnswer = errors.New("advisor client: empty answer")
)
