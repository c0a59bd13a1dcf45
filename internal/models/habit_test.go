package models

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityRank(t *testing.T) {
	assert.Equal(t, 1, PriorityRank("High"))
	assert.Equal(t, 2, PriorityRank("Medium"))
	assert.Equal(t, 3, PriorityRank("Low"))

	// Matching is case-insensitive
	assert.Equal(t, 1, PriorityRank("high"))
	assert.Equal(t, 2, PriorityRank("MEDIUM"))
	assert.Equal(t, 3, PriorityRank("lOw"))

	// Unrecognized values sort last instead of erroring
	assert.Equal(t, 4, PriorityRank("Urgent"))
	assert.Equal(t, 4, PriorityRank(""))
}

func TestNormalizePriority(t *testing.T) {
	assert.Equal(t, "High", NormalizePriority("HIGH"))
	assert.Equal(t, "Medium", NormalizePriority("medium"))
	assert.Equal(t, "Low", NormalizePriority(" low "))
	assert.Equal(t, "", NormalizePriority("  "))
}

func TestPrioritySortOrder(t *testing.T) {
	habits := []Habit{
		{Name: "Stretch", Priority: "Low"},
		{Name: "Run", Priority: "High"},
		{Name: "Read", Priority: "Medium"},
		{Name: "Misc", Priority: "Whenever"},
	}

	sort.SliceStable(habits, func(i, j int) bool {
		return PriorityRank(habits[i].Priority) < PriorityRank(habits[j].Priority)
	})

	names := make([]string, len(habits))
	for i, h := range habits {
		names[i] = h.Name
	}
	assert.Equal(t, []string{"Run", "Read", "Stretch", "Misc"}, names)
}

func TestPrioritySortIsStable(t *testing.T) {
	habits := []Habit{
		{Name: "A", Priority: "High"},
		{Name: "B", Priority: "High"},
		{Name: "C", Priority: "High"},
	}

	sort.SliceStable(habits, func(i, j int) bool {
		return PriorityRank(habits[i].Priority) < PriorityRank(habits[j].Priority)
	})

	assert.Equal(t, "A", habits[0].Name)
	assert.Equal(t, "B", habits[1].Name)
	assert.Equal(t, "C", habits[2].Name)
}

func TestColorPaletteHasTwentyUniqueEntries(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range ColorPalette {
		require.False(t, seen[c], "duplicate palette color %s", c)
		seen[c] = true
	}
	assert.Len(t, seen, 20)
}

func TestNextColor(t *testing.T) {
	// No habits yet: first palette entry
	assert.Equal(t, ColorPalette[0], NextColor(nil))

	// First N colors used: palette[N]
	for n := 1; n < len(ColorPalette); n++ {
		assert.Equal(t, ColorPalette[n], NextColor(ColorPalette[:n]), "n=%d", n)
	}

	// All 20 used: falls back to palette[0], collision accepted
	assert.Equal(t, ColorPalette[0], NextColor(ColorPalette[:]))
}

func TestNextColorSkipsHoles(t *testing.T) {
	used := []string{ColorPalette[0], ColorPalette[2], ColorPalette[3]}
	assert.Equal(t, ColorPalette[1], NextColor(used))
}

func TestNextColorMatchesCaseInsensitively(t *testing.T) {
	used := []string{"#E6194B"} // palette[0] uppercased (manual entry)
	assert.Equal(t, ColorPalette[1], NextColor(used))
}
