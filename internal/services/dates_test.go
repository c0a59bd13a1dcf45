package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	day, err := ParseDay("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, 2024, day.Year())
	assert.Equal(t, time.March, day.Month())
	assert.Equal(t, 15, day.Day())

	for _, bad := range []string{"", "15-03-2024", "2024/03/15", "2024-3-15", "not-a-date"} {
		_, err := ParseDay(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

func TestIsFutureDay(t *testing.T) {
	now := time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

	past, _ := ParseDay("2023-12-31")
	today, _ := ParseDay("2024-01-01")
	future, _ := ParseDay("2024-06-01")

	assert.False(t, IsFutureDay(past, now))
	assert.False(t, IsFutureDay(today, now), "today is not future even if the day has hours left")
	assert.True(t, IsFutureDay(future, now))
	assert.True(t, IsFutureDay(today.AddDate(0, 0, 1), now), "tomorrow is future")
}
