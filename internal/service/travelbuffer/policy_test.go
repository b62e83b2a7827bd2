package travelbuffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_BufferMinutes(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		name       string
		distanceKm float64
		want       int
	}{
		{name: "same location", distanceKm: 0, want: 0},
		{name: "within near radius", distanceKm: 5, want: 0},
		{name: "exactly near radius", distanceKm: 10, want: 0},
		{name: "just over near radius", distanceKm: 10.0001, want: 15},
		{name: "middle of mid band", distanceKm: 15, want: 15},
		{name: "just under far radius", distanceKm: 19.999, want: 15},
		{name: "exactly far radius", distanceKm: 20, want: 30},
		{name: "far away", distanceKm: 100, want: 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.BufferMinutes(tt.distanceKm))
		})
	}
}

func TestPolicy_BufferMinutes_Monotonic(t *testing.T) {
	policy := DefaultPolicy()

	prev := 0
	for km := 0.0; km <= 50; km += 0.5 {
		buffer := policy.BufferMinutes(km)
		assert.GreaterOrEqual(t, buffer, prev, "buffer must not decrease with distance (km=%.1f)", km)
		prev = buffer
	}
}
