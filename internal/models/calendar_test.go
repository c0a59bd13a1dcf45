package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthGrid(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     time.Month
		weeks     int
		firstWeek []int
		lastWeek  []int
	}{
		{
			name:      "March 2024 starts on a Friday",
			year:      2024,
			month:     time.March,
			weeks:     5,
			firstWeek: []int{0, 0, 0, 0, 1, 2, 3},
			lastWeek:  []int{25, 26, 27, 28, 29, 30, 31},
		},
		{
			name:      "February 2024 leap year",
			year:      2024,
			month:     time.February,
			weeks:     5,
			firstWeek: []int{0, 0, 0, 1, 2, 3, 4},
			lastWeek:  []int{26, 27, 28, 29, 0, 0, 0},
		},
		{
			name:      "February 2021 fits exactly four weeks",
			year:      2021,
			month:     time.February,
			weeks:     4,
			firstWeek: []int{1, 2, 3, 4, 5, 6, 7},
			lastWeek:  []int{22, 23, 24, 25, 26, 27, 28},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weeks := MonthGrid(tt.year, tt.month)
			require.Len(t, weeks, tt.weeks)
			assert.Equal(t, tt.firstWeek, weeks[0])
			assert.Equal(t, tt.lastWeek, weeks[len(weeks)-1])
			for _, week := range weeks {
				assert.Len(t, week, 7)
			}
		})
	}
}

func TestMonthGridCoversEveryDayOnce(t *testing.T) {
	weeks := MonthGrid(2024, time.March)
	seen := map[int]int{}
	for _, week := range weeks {
		for _, day := range week {
			if day != 0 {
				seen[day]++
			}
		}
	}
	require.Len(t, seen, 31)
	for day := 1; day <= 31; day++ {
		assert.Equal(t, 1, seen[day], "day %d", day)
	}
}

func TestMonthNavigationRollover(t *testing.T) {
	assert.Equal(t, MonthRef{Year: 2025, Month: time.January}, NextMonth(2024, time.December))
	assert.Equal(t, MonthRef{Year: 2023, Month: time.December}, PrevMonth(2024, time.January))
	assert.Equal(t, MonthRef{Year: 2024, Month: time.April}, NextMonth(2024, time.March))
	assert.Equal(t, MonthRef{Year: 2024, Month: time.February}, PrevMonth(2024, time.March))
}

func TestMonthNavigationRoundTrip(t *testing.T) {
	for year := 2020; year <= 2030; year++ {
		for month := time.January; month <= time.December; month++ {
			next := NextMonth(year, month)
			back := PrevMonth(next.Year, next.Month)
			assert.Equal(t, MonthRef{Year: year, Month: month}, back)
		}
	}
}

func TestIsFutureMonth(t *testing.T) {
	now := time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)

	assert.False(t, IsFutureMonth(2024, time.March, now), "current month is not future")
	assert.False(t, IsFutureMonth(2024, time.February, now))
	assert.False(t, IsFutureMonth(2023, time.December, now))
	assert.True(t, IsFutureMonth(2024, time.April, now))
	assert.True(t, IsFutureMonth(2025, time.January, now))
}
