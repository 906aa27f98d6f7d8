package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractEducation_SeparatedHeader(t *testing.T) {
	lines := []string{
		"Example University — BSc Computer Science",
		"2015 - 2019",
		"- Dean's list",
	}

	entries := ExtractEducation(lines, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "Example University", entries[0].Title)
	assert.Equal(t, "BSc Computer Science", entries[0].Subtitle)
	assert.Equal(t, "2015", entries[0].StartDate)
	assert.Equal(t, "2019", entries[0].EndDate)
	assert.Equal(t, []string{"Dean's list"}, entries[0].Bullets)
}

func TestExtractEducation_ShortSecondLineBecomesDegree(t *testing.T) {
	lines := []string{
		"Example University",
		"BSc Computer Science",
		"2015 - 2019",
		"- Graduated with honors",
	}

	entries := ExtractEducation(lines, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "Example University", entries[0].Title)
	assert.Equal(t, "BSc Computer Science", entries[0].Subtitle)
	assert.Equal(t, "2015", entries[0].StartDate)
	assert.Equal(t, "2019", entries[0].EndDate)
	assert.Equal(t, []string{"Graduated with honors"}, entries[0].Bullets)
}

func TestExtractEducation_SingleYearFillsBothDates(t *testing.T) {
	entries := ExtractEducation([]string{"Example University — BSc, 2019"}, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, "2019", entries[0].StartDate)
	assert.Equal(t, "2019", entries[0].EndDate)
}

func TestExtractEducation_ChunksIntoFixedBlocks(t *testing.T) {
	lines := []string{
		"First University — BSc",
		"2010 - 2014",
		"- Thesis on distributed systems",
		"- Teaching assistant",
		"- Student council",
		"- Exchange semester",
		"Second University — MSc",
	}

	entries := ExtractEducation(lines, nil)

	require.Len(t, entries, 2)
	assert.Equal(t, "First University", entries[0].Title)
	assert.Equal(t, "Second University", entries[1].Title)
	assert.Equal(t, "MSc", entries[1].Subtitle)
}

func TestExtractEducation_SynthesizesFromHeaderWithYear(t *testing.T) {
	header := []string{"Example University, Class of 2015"}

	entries := ExtractEducation(nil, header)

	require.Len(t, entries, 1)
	assert.Equal(t, "Example University, Class of 2015", entries[0].Title)
	assert.Equal(t, "2015", entries[0].StartDate)
	assert.Equal(t, "2015", entries[0].EndDate)
	assert.Empty(t, entries[0].Bullets)
}

func TestExtractEducation_NoSynthesisWithoutYear(t *testing.T) {
	entries := ExtractEducation(nil, []string{"Jane Doe", "jane@x.com"})

	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}
