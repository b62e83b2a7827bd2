package get_available_slots

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	UserID          int64     // ID пользователя (для логирования, не влияет на результат)
	PhotographerID  *int64    // ID фотографа (опционально, nil - вся команда)
	Date            time.Time // Дата для получения слотов (без времени)
	DurationMinutes *int      // Желаемая длительность (опционально, иначе из конфигурации)

	// Координаты места съёмки (опционально). Если заданы, слоты дополнительно
	// фильтруются по travel buffer относительно других съёмок дня.
	Latitude  *float64
	Longitude *float64
}

// Response модель ответа со списком доступных слотов
type Response struct {
	Date            time.Time // Дата, на которую запрашивались слоты
	DurationMinutes int       // Длительность слотов
	Slots           []Slot    // Список доступных слотов
}

// Slot модель временного слота
type Slot struct {
	StartTime       types.TimeString // Время начала слота (например, "10:00")
	EndTime         types.TimeString // Время конца слота
	DurationMinutes int              // Длительность слота в минутах
	DisplayLabel    string           // Подпись для UI, например "10:00–11:30"
}
