package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSlotKey(t *testing.T) {
	t.Run("Lowercases And Trims Every Part", func(t *testing.T) {
		key := BuildSlotKey(" Jane ", " Smith ", "2026-09-15", " 10:00 AM ")
		assert.Equal(t, "jane|smith|2026-09-15|10:00 am", key)
	})

	t.Run("Same Slot Different Casing Collides", func(t *testing.T) {
		first := BuildSlotKey("Jane", "Smith", "2026-09-15", "10:00 AM")
		second := BuildSlotKey("JANE", "smith", "2026-09-15", "10:00 am")
		assert.Equal(t, first, second)
	})

	t.Run("Different Doctor Does Not Collide", func(t *testing.T) {
		first := BuildSlotKey("Jane", "Smith", "2026-09-15", "10:00 AM")
		second := BuildSlotKey("Michael", "Johnson", "2026-09-15", "10:00 AM")
		assert.NotEqual(t, first, second)
	})
}

func TestParseAppointmentDate(t *testing.T) {
	_, err := ParseAppointmentDate("2026-09-15")
	assert.NoError(t, err)

	_, err = ParseAppointmentDate("15-09-2026")
	assert.Error(t, err)
}

func TestParseStartTime(t *testing.T) {
	_, err := ParseStartTime("10:00 AM")
	assert.NoError(t, err)

	_, err = ParseStartTime(" 3:30 PM ")
	assert.NoError(t, err, "surrounding whitespace should be tolerated")

	_, err = ParseStartTime("25:00")
	assert.Error(t, err)
}

func TestFormatConfirmationDate(t *testing.T) {
	assert.Equal(t, "Tuesday, September 15, 2026", FormatConfirmationDate("2026-09-15"))
	assert.Equal(t, "not-a-date", FormatConfirmationDate("not-a-date"), "invalid input falls back to the raw value")
}
