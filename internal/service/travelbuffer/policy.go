package travelbuffer

// Policy пороги travel buffer. Это бизнес-политика, а не физическая
// модель: значения задаются в config.toml, дефолты ниже.
type Policy struct {
	NearRadiusKm     float64 // до этого расстояния включительно буфер не нужен
	FarRadiusKm      float64 // с этого расстояния включительно нужен полный буфер
	MidBufferMinutes int     // буфер между NearRadiusKm и FarRadiusKm
	FarBufferMinutes int     // буфер от FarRadiusKm и дальше
}

// DefaultPolicy возвращает действующую политику буферов:
// ≤10 км - 0 мин, 10-20 км - 15 мин, ≥20 км - 30 мин
func DefaultPolicy() Policy {
	return Policy{
		NearRadiusKm:     10,
		FarRadiusKm:      20,
		MidBufferMinutes: 15,
		FarBufferMinutes: 30,
	}
}

// BufferMinutes возвращает требуемый буфер в минутах для расстояния.
// Ступенчатая функция, монотонно неубывающая по расстоянию.
func (p Policy) BufferMinutes(distanceKm float64) int {
	switch {
	case distanceKm <= p.NearRadiusKm:
		return 0
	case distanceKm < p.FarRadiusKm:
		return p.MidBufferMinutes
	default:
		return p.FarBufferMinutes
	}
}
