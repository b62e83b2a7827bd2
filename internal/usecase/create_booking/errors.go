package create_booking

import "errors"

var (
	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение advanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrInvalidTimeSlot возвращается, когда слот не помещается в рабочие часы
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда попытка забронировать слот нарушает minBookingNoticeMinutes
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот занят
	// (календарём или другой бронью)
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrTravelBufferViolated возвращается, когда бронирование несовместимо
	// по travel buffer с соседними съёмками дня
	ErrTravelBufferViolated = errors.New("create_booking: travel buffer violated")

	// ErrCalendarUnavailable возвращается, когда не удалось проверить занятость календаря
	ErrCalendarUnavailable = errors.New("create_booking: failed to fetch calendar busy intervals")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
