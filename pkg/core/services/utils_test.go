package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapToWeekStart(t *testing.T) {
	saturday := time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)

	t.Run("returns the date unchanged when it is the week start", func(t *testing.T) {
		assert.Equal(t, saturday, SnapToWeekStart(saturday, time.Saturday))
	})

	t.Run("snaps a mid-week date back to the preceding week start", func(t *testing.T) {
		wednesday := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, saturday, SnapToWeekStart(wednesday, time.Saturday))
	})

	t.Run("snaps the last day of the week back to its start", func(t *testing.T) {
		friday := time.Date(2024, 3, 22, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, saturday, SnapToWeekStart(friday, time.Saturday))
	})

	t.Run("discards any time-of-day component", func(t *testing.T) {
		instant := time.Date(2024, 3, 20, 14, 30, 12, 0, time.UTC)
		assert.Equal(t, saturday, SnapToWeekStart(instant, time.Saturday))
	})
}

func TestParseDate(t *testing.T) {
	t.Run("parses a calendar day in UTC", func(t *testing.T) {
		date, err := ParseDate("2024-03-16")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC), date)
	})

	t.Run("rejects other formats", func(t *testing.T) {
		_, err := ParseDate("16/03/2024")
		assert.Error(t, err)
	})
}
