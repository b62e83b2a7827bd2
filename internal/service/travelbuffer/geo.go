package travelbuffer

import (
	"math"

	"github.com/pixelvan/PhotoBookingService/internal/domain"
)

// earthRadiusKm радиус сферы для haversine-формулы
const earthRadiusKm = 6371

// Distance возвращает расстояние по дуге большого круга между двумя
// точками в километрах (haversine).
//
// Это расстояние по прямой, не по дорогам - осознанное упрощение:
// буферы считаются с запасом относительно порогов, а не по реальному
// времени в пути.
func Distance(a, b domain.Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180)
	dLng := (b.Longitude - a.Longitude) * (math.Pi / 180)
	latARad := a.Latitude * (math.Pi / 180)
	latBRad := b.Latitude * (math.Pi / 180)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latARad)*math.Cos(latBRad)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
