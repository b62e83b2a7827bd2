package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате запроса
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("get_available_slots: date is too far in the future")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrCalendarUnavailable возвращается, когда не удалось получить занятость
	// календаря. Отличает "нет свободных слотов" от "не удалось определить
	// занятость" - ошибка провайдера сохраняется в цепочке без изменений.
	ErrCalendarUnavailable = errors.New("get_available_slots: failed to fetch calendar busy intervals")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
