package parsing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractExperience_GroupsByHeaderBoundary(t *testing.T) {
	lines := []string{
		"Senior Engineer — Acme Inc.",
		"2021 - Present",
		"- Led a team of 5",
		"- Shipped the billing platform",
		"Staff Engineer — Beta Corp",
		"2018 - 2021",
		"- Built the data pipeline",
	}

	entries := ExtractExperience(lines)

	require.Len(t, entries, 2)

	assert.Equal(t, "Senior Engineer", entries[0].Title)
	assert.Equal(t, "Acme Inc.", entries[0].Subtitle)
	assert.Equal(t, "2021", entries[0].StartDate)
	assert.Equal(t, "Present", entries[0].EndDate)
	assert.Equal(t, []string{"Led a team of 5", "Shipped the billing platform"}, entries[0].Bullets)

	assert.Equal(t, "Staff Engineer", entries[1].Title)
	assert.Equal(t, "Beta Corp", entries[1].Subtitle)
	assert.Equal(t, "2018", entries[1].StartDate)
	assert.Equal(t, "2021", entries[1].EndDate)
	assert.Equal(t, []string{"Built the data pipeline"}, entries[1].Bullets)
}

func TestExtractExperience_DateAndBulletLinesNeverStartEntries(t *testing.T) {
	lines := []string{
		"Senior Engineer — Acme Inc.",
		"2021 - Present",
		"- Led a team of 5",
	}

	entries := ExtractExperience(lines)

	require.Len(t, entries, 1)
}

func TestExtractExperience_DiscardsEmptyEntries(t *testing.T) {
	// A block yielding no title, no subtitle, and no bullets never surfaces.
	entries := ExtractExperience([]string{"—"})
	assert.Empty(t, entries)
	assert.NotNil(t, entries)
}

func TestExtractExperience_EmptyInputReturnsEmptySlice(t *testing.T) {
	entries := ExtractExperience(nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestExtractExperience_ForceFlushesAtBlockCap(t *testing.T) {
	lines := []string{"Senior Engineer — Acme Inc."}
	for i := 0; i < 11; i++ {
		lines = append(lines, fmt.Sprintf("- achievement number %d", i))
	}

	entries := ExtractExperience(lines)

	// 12 lines with no header boundary still split at the cap.
	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Bullets, 8)
}

func TestExtractProjects_UsesTighterCap(t *testing.T) {
	lines := []string{"Side Project — CLI tool"}
	for i := 0; i < 7; i++ {
		lines = append(lines, fmt.Sprintf("- feature number %d", i))
	}

	entries := ExtractProjects(lines)

	require.Len(t, entries, 2)
	assert.Len(t, entries[0].Bullets, 5)
}

func TestSplitEntryHeader_SeparatorPriority(t *testing.T) {
	cases := []struct {
		header   string
		title    string
		subtitle string
	}{
		{"Senior Engineer — Acme Inc.", "Senior Engineer", "Acme Inc."},
		{"Senior Engineer — Acme | Platform", "Senior Engineer", "Acme | Platform"},
		{"Role: Team - Acme", "Role: Team", "Acme"},
		{"Engineer | Acme", "Engineer", "Acme"},
		{"Engineer: Backend", "Engineer", "Backend"},
		{"Senior Engineer - Acme Inc.", "Senior Engineer", "Acme Inc."},
		{"Just a Title", "Just a Title", ""},
	}
	for _, tc := range cases {
		title, subtitle := splitEntryHeader(tc.header)
		assert.Equal(t, tc.title, title, "header %q", tc.header)
		assert.Equal(t, tc.subtitle, subtitle, "header %q", tc.header)
	}
}

func TestIsNewHeaderLine(t *testing.T) {
	assert.True(t, isNewHeaderLine("Staff Engineer — Beta Corp"))
	assert.False(t, isNewHeaderLine("- Led a team"))
	assert.False(t, isNewHeaderLine("2021 - Present"))
	assert.False(t, isNewHeaderLine("worked on lowercase things"))
	assert.False(t, isNewHeaderLine("This line is far too long to be an entry header because it keeps rambling on and on"))
}
