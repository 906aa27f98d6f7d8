package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-parser/internal/types"
)

func sampleResume() *types.Resume {
	resume := types.NewResume()
	resume.Personal = types.PersonalInfo{FullName: "Jane Doe", Email: "jane@x.com", Phone: "555-123-4567"}
	resume.Language = "en"
	resume.Experience = []types.Entry{{Title: "Senior Engineer", Subtitle: "Acme Inc.", StartDate: "2021", EndDate: "Present"}}
	resume.Skills = []string{"Go", "SQL", "Docker", "Kubernetes", "Terraform", "Postgres", "Redis"}
	resume.Keywords = []string{"golang", "kubernetes"}
	return resume
}

func TestPrintResume_ContainsSummaryFields(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(sampleResume())

	out := buf.String()
	assert.Contains(t, out, "Parsed Resume")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "jane@x.com")
	assert.Contains(t, out, "Senior Engineer")
	assert.Contains(t, out, "(+2 more)")
}

func TestPrintResume_NilResumeWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(nil)

	assert.Zero(t, buf.Len())
}

func TestPrintResume_DrawsBoxBorders(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintResume(sampleResume())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, "┌"+strings.Repeat("─", boxWidth-2)+"┐", lines[0])
	assert.Equal(t, "└"+strings.Repeat("─", boxWidth-2)+"┘", lines[len(lines)-1])
}

func TestPrintScore_ListsFeedback(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScore(types.ScoreResult{
		Value:    73,
		Feedback: []string{"List 5+ relevant skills."},
	})

	out := buf.String()
	assert.Contains(t, out, "ATS Score")
	assert.Contains(t, out, "73 / 100")
	assert.Contains(t, out, "List 5+ relevant skills.")
}
