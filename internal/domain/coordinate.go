package domain

import "math"

// Coordinate represents a geographic point in degrees
type Coordinate struct {
	Latitude  float64
	Longitude float64

	hasLat bool
	hasLng bool
}

// NewCoordinate creates a coordinate with both components present
func NewCoordinate(lat, lng float64) Coordinate {
	return Coordinate{Latitude: lat, Longitude: lng, hasLat: true, hasLng: true}
}

// CoordinateFromPointers creates a coordinate from optional components.
// Nil components leave the coordinate invalid.
func CoordinateFromPointers(lat, lng *float64) Coordinate {
	c := Coordinate{}
	if lat != nil {
		c.Latitude = *lat
		c.hasLat = true
	}
	if lng != nil {
		c.Longitude = *lng
		c.hasLng = true
	}
	return c
}

// Valid returns true if both components are present and finite.
// Invalid coordinates are a normal state (not every address is geocoded)
// and simply disable travel buffer checks.
func (c Coordinate) Valid() bool {
	if !c.hasLat || !c.hasLng {
		return false
	}
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) {
		return false
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) {
		return false
	}
	return true
}
