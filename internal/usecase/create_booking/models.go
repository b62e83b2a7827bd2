package create_booking

import (
	"time"

	"github.com/pixelvan/PhotoBookingService/pkg/types"
)

// Request модель запроса на создание бронирования съёмки
type Request struct {
	UserID         int64            // ID пользователя
	PhotographerID int64            // ID фотографа
	PackageID      int64            // ID пакета съёмки
	Date           time.Time        // Дата бронирования (без времени)
	StartTime      types.TimeString // Время начала слота (например, "10:00")

	// Место съёмки. Координаты опциональны: негеокодированный адрес
	// отключает проверку travel buffer для этой брони
	Address   string
	Latitude  *float64
	Longitude *float64

	// Денормализованные данные пакета (каталог пакетов принадлежит
	// админской части платформы, сюда приходит снимок на момент брони)
	PackageName  string
	PackagePrice float64

	Notes *string // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              int64            // ID созданного бронирования
	UserID          int64            // ID пользователя
	PhotographerID  int64            // ID фотографа
	PackageID       int64            // ID пакета
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	DurationMinutes int              // Длительность в минутах
	Status          string           // Статус бронирования

	Address   string   // Адрес места съёмки
	Latitude  *float64 // Широта (если геокодирован)
	Longitude *float64 // Долгота (если геокодирован)

	PackageName  string  // Название пакета
	PackagePrice float64 // Цена пакета
	Notes        *string // Заметки

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
