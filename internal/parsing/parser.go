package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// Parse converts raw resume text into a normalized Resume record.
//
// Parsing is a pure function of its input and never fails: every extractor
// degrades to empty values on unmatched patterns, so once raw text exists a
// record always comes back, however sparse. Only the file-to-text boundary
// surfaces hard errors.
func Parse(raw string) *types.Resume {
	sections := SplitSections(raw)

	resume := types.NewResume()
	resume.Language = DetectLanguage(raw)
	resume.Personal = ExtractPersonal(raw, sections[SectionHeader])
	resume.Summary = strings.TrimSpace(strings.Join(sections[SectionSummary], " "))
	resume.Experience = ExtractExperience(sections[SectionExperience])
	resume.Projects = ExtractProjects(sections[SectionProjects])
	resume.Education = ExtractEducation(sections[SectionEducation], sections[SectionHeader])
	resume.Skills = ExtractSkills(sections[SectionSkills])
	resume.Certifications = ListItems(sections[SectionCertifications])
	resume.Conferences = ListItems(sections[SectionConferences])
	resume.Publications = ListItems(sections[SectionPublications])
	resume.Keywords = ExtractKeywords(raw)

	return resume
}
