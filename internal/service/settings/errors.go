package settings

import "errors"

var (
	// ErrInvalidHours возвращается, когда рабочие часы не удовлетворяют 0 <= start < end <= 24
	ErrInvalidHours = errors.New("invalid business hours")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
