package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntry_IsEmpty(t *testing.T) {
	assert.True(t, Entry{}.IsEmpty())
	assert.True(t, Entry{StartDate: "2021", EndDate: "2023"}.IsEmpty())
	assert.False(t, Entry{Title: "Senior Engineer"}.IsEmpty())
	assert.False(t, Entry{Subtitle: "Acme Inc."}.IsEmpty())
	assert.False(t, Entry{Bullets: []string{"Led a team"}}.IsEmpty())
}

func TestEntry_Description(t *testing.T) {
	entry := Entry{Bullets: []string{"Led a team of 5", "Shipped the platform"}}

	assert.Equal(t, "Led a team of 5\nShipped the platform", entry.Description())
	assert.Equal(t, "", Entry{}.Description())
}

func TestNewResume_CollectionsInitialized(t *testing.T) {
	resume := NewResume()

	assert.NotNil(t, resume.Experience)
	assert.NotNil(t, resume.Projects)
	assert.NotNil(t, resume.Education)
	assert.NotNil(t, resume.Skills)
	assert.NotNil(t, resume.Certifications)
	assert.NotNil(t, resume.Conferences)
	assert.NotNil(t, resume.Publications)
	assert.NotNil(t, resume.Keywords)
}

func TestNewResume_MarshalsWithEmptyArrays(t *testing.T) {
	data, err := json.Marshal(NewResume())
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))

	for _, field := range []string{"experience", "projects", "education", "skills", "certifications", "conferences", "publications", "keywords"} {
		value, ok := doc[field]
		require.True(t, ok, "field %s missing", field)
		assert.IsType(t, []any{}, value, "field %s should be an array, not null", field)
	}
}

func TestResume_JSONFieldNames(t *testing.T) {
	resume := NewResume()
	resume.Personal = PersonalInfo{FullName: "Jane Doe", Email: "jane@x.com"}
	resume.Experience = []Entry{{Title: "Senior Engineer", StartDate: "2021", EndDate: "Present", Bullets: []string{"Led a team"}}}

	data, err := json.Marshal(resume)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"full_name":"Jane Doe"`)
	assert.Contains(t, body, `"start_date":"2021"`)
	assert.Contains(t, body, `"end_date":"Present"`)
}
