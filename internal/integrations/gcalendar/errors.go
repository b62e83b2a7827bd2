package gcalendar

import "errors"

var (
	// ErrUnauthorized возвращается при истёкшем или отозванном токене
	ErrUnauthorized = errors.New("gcalendar client: unauthorized")

	// ErrRateLimited возвращается, когда провайдер календаря ограничил частоту запросов
	ErrRateLimited = errors.New("gcalendar client: rate limited")

	// ErrUnavailable возвращается при недоступности провайдера календаря
	ErrUnavailable = errors.New("gcalendar client: calendar provider unavailable")

	// ErrInvalidResponse возвращается при некорректном ответе провайдера
	ErrInvalidResponse = errors.New("gcalendar client: invalid response")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("gcalendar client: internal error")
)
