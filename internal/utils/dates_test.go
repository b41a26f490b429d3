package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidDate(t *testing.T) {
	assert.True(t, ValidDate("2026-08-31"))
	assert.True(t, ValidDate("")) // Optional fields may be empty
	assert.False(t, ValidDate("31-08-2026"))
	assert.False(t, ValidDate("2026-13-01"))
	assert.False(t, ValidDate("not a date"))
}

func TestToday(t *testing.T) {
	got := Today()
	parsed, err := time.Parse(ISODate, got)
	assert.NoError(t, err)
	assert.Equal(t, got, parsed.Format(ISODate))
}

func TestFirstOfMonth(t *testing.T) {
	got := FirstOfMonth()
	parsed, err := time.Parse(ISODate, got)
	assert.NoError(t, err)
	assert.Equal(t, 1, parsed.Day())
	// Same month and year as today
	assert.Equal(t, time.Now().Month(), parsed.Month())
	assert.Equal(t, time.Now().Year(), parsed.Year())
}

func TestStartOfDayMillis(t *testing.T) {
	midnight := StartOfDayMillis()
	now := time.Now().UnixMilli()

	assert.LessOrEqual(t, midnight, now)
	assert.Less(t, now-midnight, int64(24*time.Hour/time.Millisecond))
}
