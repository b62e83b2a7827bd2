package get_available_slots

import (
	"fmt"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// generateTimeSlots генерирует список всех возможных временных слотов на день.
// Слоты генерируются от начала рабочего дня с фиксированным шагом slotDuration.
// Чистая функция от своих аргументов: повторный вызов с теми же входными
// данными дает тот же результат.
//
// Каждый слот имеет ровно slotDuration минут - неполный хвостовой слот не
// эмитится, а отбрасывается (слот либо целиком помещается в рабочие часы,
// либо его нет).
func generateTimeSlots(
	businessStart types.TimeString,
	businessEnd types.TimeString,
	slotDuration int,
	requestDate time.Time,
	now time.Time,
	minBookingNoticeMinutes int,
) ([]domain.AvailableSlot, error) {
	// Проверяем, что дата не в прошлом
	if isDateInPast(requestDate, now) {
		return []domain.AvailableSlot{}, nil
	}

	if err := businessStart.Validate(); err != nil {
		return nil, err
	}
	if err := businessEnd.Validate(); err != nil {
		return nil, err
	}

	// Шаг 1: Генерируем ВСЕ слоты от начала рабочего дня до конца
	allSlots := make([]domain.AvailableSlot, 0)
	cursor := businessStart

	for cursor.IsBefore(businessEnd) {
		// Проверяем, что слот не выходит за конец рабочего дня
		slotEnd, err := cursor.AddMinutes(slotDuration)
		if err != nil {
			return nil, err
		}
		if slotEnd.IsAfter(businessEnd) {
			break
		}
		// AddMinutes заворачивается через полночь: если конец "раньше"
		// начала, слот вышел за сутки
		if slotEnd.IsBefore(cursor) {
			break
		}

		allSlots = append(allSlots, domain.AvailableSlot{
			StartTime:       cursor,
			EndTime:         slotEnd,
			DurationMinutes: slotDuration,
			Available:       true,
			DisplayLabel:    fmt.Sprintf("%s–%s", cursor, slotEnd),
		})

		cursor = slotEnd
	}

	// Шаг 2: Если дата запроса НЕ сегодня - возвращаем все слоты
	if !isSameDay(requestDate, now) {
		return allSlots, nil
	}

	// Шаг 3: Для сегодняшней даты фильтруем слоты по минимальному
	// времени до начала съёмки
	currentTime := types.NewTimeString(now)
	minAllowedTime, err := currentTime.AddMinutes(minBookingNoticeMinutes)
	if err != nil {
		return nil, err
	}

	availableSlots := make([]domain.AvailableSlot, 0)
	for _, slot := range allSlots {
		if !slot.StartTime.IsBefore(minAllowedTime) {
			availableSlots = append(availableSlots, slot)
		}
	}

	return availableSlots, nil
}

// filterByBusyIntervals отбрасывает слоты, пересекающиеся с занятыми
// интервалами внешнего календаря.
//
// Пересечение полуоткрытое: слот блокируется при любом ненулевом
// пересечении (частичном, полном, вложенном), но НЕ при точном
// примыкании границ. Порядок слотов сохраняется, слоты не изменяются -
// только отбрасываются.
func filterByBusyIntervals(
	date time.Time,
	slots []domain.AvailableSlot,
	busyIntervals []domain.BusyInterval,
) ([]domain.AvailableSlot, error) {
	if len(busyIntervals) == 0 {
		return slots, nil
	}

	result := make([]domain.AvailableSlot, 0, len(slots))

	for _, slot := range slots {
		slotStart, err := domain.CombineDateTime(date, slot.StartTime)
		if err != nil {
			return nil, err
		}
		slotEnd, err := domain.CombineDateTime(date, slot.EndTime)
		if err != nil {
			return nil, err
		}

		blocked := false
		for _, busy := range busyIntervals {
			if busy.Overlaps(slotStart, slotEnd) {
				blocked = true
				break
			}
		}

		if !blocked {
			result = append(result, slot)
		}
	}

	return result, nil
}

// isSameDay проверяет, что две даты относятся к одному и тому же дню
func isSameDay(date1, date2 time.Time) bool {
	y1, m1, d1 := date1.Date()
	y2, m2, d2 := date2.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	// Обнуляем время, чтобы сравнивать только даты
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
