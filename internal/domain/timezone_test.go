package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 15, d.Day())
	assert.Equal(t, BusinessZone, d.Location())

	_, offset := d.Zone()
	assert.Equal(t, -7*60*60, offset)

	for _, input := range []string{"15-03-2026", "2026/03/15", "2026-13-01", "garbage", ""} {
		_, err := ParseDate(input)
		assert.ErrorIs(t, err, ErrMalformedDate, "input %q", input)
	}
}

func TestToInstant(t *testing.T) {
	instant, err := ToInstant("2026-03-15", "10:00")
	require.NoError(t, err)

	assert.Equal(t, 10, instant.Hour())
	assert.Equal(t, 0, instant.Minute())

	// 10:00 UTC-7 соответствует 17:00 UTC
	assert.Equal(t, 17, instant.UTC().Hour())

	_, err = ToInstant("bad", "10:00")
	assert.ErrorIs(t, err, ErrMalformedDate)

	_, err = ToInstant("2026-03-15", "10:00:00")
	assert.ErrorIs(t, err, ErrMalformedTime)

	_, err = ToInstant("2026-03-15", "25:00")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestCombineDateTime(t *testing.T) {
	date, err := ParseDate("2026-07-01")
	require.NoError(t, err)

	instant, err := CombineDateTime(date, "14:30")
	require.NoError(t, err)
	assert.Equal(t, 14, instant.Hour())
	assert.Equal(t, 30, instant.Minute())

	// Фиксированное смещение: летом тот же -07, без DST сдвига
	_, offset := instant.Zone()
	assert.Equal(t, -7*60*60, offset)

	_, err = CombineDateTime(date, "bad")
	assert.ErrorIs(t, err, ErrMalformedTime)
}

func TestDayWindow(t *testing.T) {
	date, err := ParseDate("2026-03-15")
	require.NoError(t, err)

	start, end := DayWindow(date)
	assert.Equal(t, 0, start.Hour())
	assert.Equal(t, 15, start.Day())
	assert.Equal(t, 24*time.Hour, end.Sub(start))
}
