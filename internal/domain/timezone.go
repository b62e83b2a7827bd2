package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// BusinessZone фиксированное смещение UTC-7 (стандартное время региона,
// БЕЗ перехода на летнее время).
//
// Известное ограничение: летом интерпретация гражданского времени
// расходится с настенными часами на час. Менять смещение или
// подключать tz-базу можно только вместе с миграцией сохранённых броней,
// иначе исторические данные перестанут быть сравнимыми с новыми.
// Все вычисления инстантов в сервисе обязаны проходить через этот пакет.
var BusinessZone = time.FixedZone("MST", -7*60*60)

var (
	// ErrMalformedDate возвращается при некорректной строке даты
	ErrMalformedDate = errors.New("domain: malformed date, expected YYYY-MM-DD")

	// ErrMalformedTime возвращается при некорректной строке времени
	ErrMalformedTime = errors.New("domain: malformed time, expected HH:MM")
)

// ParseDate разбирает гражданскую дату "YYYY-MM-DD" в полночь BusinessZone
func ParseDate(dateStr string) (time.Time, error) {
	d, err := time.ParseInLocation(DateFormat, dateStr, BusinessZone)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedDate, dateStr)
	}
	return d, nil
}

// ToInstant превращает пару (гражданская дата, гражданское время) в инстант
// в BusinessZone. Единственная точка нормализации времени в сервисе:
// слоты, брони и busy-интервалы сравниваются только через неё.
func ToInstant(dateStr string, timeStr string) (time.Time, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}

	ts, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, timeStr)
	}

	return CombineDateTime(date, ts)
}

// CombineDateTime строит инстант из даты и времени HH:MM в BusinessZone
func CombineDateTime(date time.Time, ts types.TimeString) (time.Time, error) {
	if err := ts.Validate(); err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTime, ts.String())
	}

	parsed, _ := time.Parse(TimeFormat, ts.String())
	return time.Date(
		date.Year(), date.Month(), date.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0,
		BusinessZone,
	), nil
}

// DayWindow возвращает границы суток [00:00, 24:00) даты в BusinessZone.
// Используется как окно запроса busy-интервалов календаря.
func DayWindow(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, BusinessZone)
	return start, start.AddDate(0, 0, 1)
}
