package travelbuffer

import (
	"fmt"
	"sort"
	"time"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
)

// Validator проверяет совместимость бронирований по travel buffer:
// между двумя съёмками в разных местах экипажу нужно время на дорогу.
//
// Проверка сравнивает кандидата только с ближайшими по времени соседями
// (предыдущая и следующая съёмка дня), а не со всем маршрутом - это
// осознанное ограничение: сервис не занимается оптимизацией маршрута
// и не переставляет существующие брони.
type Validator struct {
	policy Policy
	logger Logger
}

// NewValidator создает валидатор с заданной политикой буферов
func NewValidator(policy Policy, logger Logger) *Validator {
	return &Validator{
		policy: policy,
		logger: logger,
	}
}

// Result результат проверки одного кандидата
type Result struct {
	Valid  bool
	Reason string // человекочитаемая причина отказа, пустая при Valid
}

// shootStop существующая съёмка дня, приведённая к инстантам
type shootStop struct {
	start      time.Time
	end        time.Time
	coordinate domain.Coordinate
}

// FilterSlots отфильтровывает слоты, несовместимые по travel buffer с
// существующими съёмками дня относительно предполагаемого места съёмки.
//
// Если место не геокодировано (proposed невалиден), слоты возвращаются
// без изменений: без координат проверка буфера невозможна и единственным
// ограничением остаётся занятость календаря.
func (v *Validator) FilterSlots(
	date time.Time,
	slots []domain.AvailableSlot,
	proposed domain.Coordinate,
	sameDayBookings []*domain.Booking,
) []domain.AvailableSlot {
	if !proposed.Valid() {
		return slots
	}

	stops := v.buildStops(date, sameDayBookings)
	if len(stops) == 0 {
		return slots
	}

	result := make([]domain.AvailableSlot, 0, len(slots))
	for _, slot := range slots {
		slotStart, err := domain.CombineDateTime(date, slot.StartTime)
		if err != nil {
			continue
		}
		slotEnd, err := domain.CombineDateTime(date, slot.EndTime)
		if err != nil {
			continue
		}

		if res := v.check(slotStart, slotEnd, proposed, stops); res.Valid {
			result = append(result, slot)
		}
	}

	return result
}

// ValidateCandidate проверяет одно предлагаемое бронирование против
// существующих съёмок дня. Используется как последняя проверка перед
// записью брони.
//
// Кандидат без валидных координат всегда проходит: проверка буфера
// включается наличием данных, а не флагом вызывающего кода.
func (v *Validator) ValidateCandidate(candidate *domain.Booking, sameDayBookings []*domain.Booking) Result {
	coordinate := candidate.Coordinate()
	if !coordinate.Valid() {
		return Result{Valid: true}
	}

	candidateStart, err := domain.CombineDateTime(candidate.BookingDate, candidate.StartTime)
	if err != nil {
		// Некорректное время кандидата отлавливается валидацией запроса
		// раньше; здесь просто не мешаем
		return Result{Valid: true}
	}
	candidateEnd := candidateStart.Add(time.Duration(candidate.DurationMinutes) * time.Minute)

	stops := v.buildStops(candidate.BookingDate, sameDayBookings)

	res := v.check(candidateStart, candidateEnd, coordinate, stops)
	if !res.Valid {
		v.logger.Info("TravelBuffer: candidate at %s rejected: %s",
			candidate.StartTime, res.Reason)
	}
	return res
}

// check выполняет проверку интервала [start, end) против соседей.
// Общее ядро для пакетного и одиночного режимов.
func (v *Validator) check(start, end time.Time, proposed domain.Coordinate, stops []shootStop) Result {
	// Ближайшая предыдущая съёмка: конец <= start, самый поздний конец
	var preceding *shootStop
	// Ближайшая следующая съёмка: начало >= end, самое раннее начало
	var following *shootStop

	for i := range stops {
		stop := &stops[i]
		if !stop.end.After(start) {
			if preceding == nil || stop.end.After(preceding.end) {
				preceding = stop
			}
		}
		if !stop.start.Before(end) {
			if following == nil || stop.start.Before(following.start) {
				following = stop
			}
		}
	}

	if preceding != nil && preceding.coordinate.Valid() {
		distanceKm := Distance(preceding.coordinate, proposed)
		buffer := v.policy.BufferMinutes(distanceKm)
		earliestStart := preceding.end.Add(time.Duration(buffer) * time.Minute)
		if start.Before(earliestStart) {
			return Result{
				Valid: false,
				Reason: fmt.Sprintf(
					"previous shoot ends at %s and is %.1f km away (requires %d min travel buffer), earliest possible start is %s",
					preceding.end.Format(domain.TimeFormat), distanceKm, buffer,
					earliestStart.Format(domain.TimeFormat),
				),
			}
		}
	}

	if following != nil && following.coordinate.Valid() {
		distanceKm := Distance(following.coordinate, proposed)
		buffer := v.policy.BufferMinutes(distanceKm)
		latestEnd := following.start.Add(-time.Duration(buffer) * time.Minute)
		if end.After(latestEnd) {
			return Result{
				Valid: false,
				Reason: fmt.Sprintf(
					"next shoot starts at %s and is %.1f km away (requires %d min travel buffer), latest possible end is %s",
					following.start.Format(domain.TimeFormat), distanceKm, buffer,
					latestEnd.Format(domain.TimeFormat),
				),
			}
		}
	}

	return Result{Valid: true}
}

// buildStops приводит брони дня к инстантам, отбрасывая те, что не
// участвуют в проверке буфера (отменённые, завершённые, некорректные)
func (v *Validator) buildStops(date time.Time, bookings []*domain.Booking) []shootStop {
	stops := make([]shootStop, 0, len(bookings))

	for _, booking := range bookings {
		if !booking.CountsForTravelBuffer() {
			continue
		}

		start, err := domain.CombineDateTime(date, booking.StartTime)
		if err != nil {
			// Брони с некорректным временем пропускаем, проверка не
			// должна падать из-за грязных данных
			continue
		}

		stops = append(stops, shootStop{
			start:      start,
			end:        start.Add(time.Duration(booking.DurationMinutes) * time.Minute),
			coordinate: booking.Coordinate(),
		})
	}

	sort.Slice(stops, func(i, j int) bool {
		return stops[i].start.Before(stops[j].start)
	})

	return stops
}
