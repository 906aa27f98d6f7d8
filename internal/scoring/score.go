// Package scoring computes an ATS-style completeness and quality score for a
// normalized resume record.
package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// actionVerbs is the fixed list checked (as substrings) against the summary
// and entry descriptions.
var actionVerbs = []string{
	"led", "built", "delivered", "created", "designed", "implemented",
	"optimized", "launched", "improved", "reduced", "increased", "developed",
}

// Rubric weights. Each check is additive and independent of the others.
const (
	pointsPersonal    = 25
	pointsSummary     = 10
	pointsExperience  = 15
	pointsSkills      = 10
	pointsActionVerbs = 15
	pointsPerSection  = 3
	sectionPointsCap  = 20
	pointsConcise     = 5

	minSummaryChars   = 80
	minSkills         = 5
	minActionVerbs    = 3
	maxAvgBulletChars = 160
)

// Score evaluates a resume record against the completeness, keyword, and
// readability rubric. Pure function: same record, same result, feedback in
// check order. The value is always an integer in [0, 100].
func Score(resume *types.Resume) types.ScoreResult {
	score := 0
	feedback := []string{}

	if missing := missingPersonalFields(resume.Personal); len(missing) == 0 {
		score += pointsPersonal
	} else {
		feedback = append(feedback, fmt.Sprintf("Add missing personal info: %s.", strings.Join(missing, ", ")))
	}

	if len(resume.Summary) > minSummaryChars {
		score += pointsSummary
	} else {
		feedback = append(feedback, fmt.Sprintf("Write a concise professional summary (%d+ chars).", minSummaryChars))
	}

	if countTitled(resume.Experience) > 0 {
		score += pointsExperience
	} else {
		feedback = append(feedback, "Include at least one work experience.")
	}

	if countNonEmpty(resume.Skills) >= minSkills {
		score += pointsSkills
	} else {
		feedback = append(feedback, fmt.Sprintf("List %d+ relevant skills.", minSkills))
	}

	corpus := buildCorpus(resume)
	if countVerbs(corpus) >= minActionVerbs {
		score += pointsActionVerbs
	} else {
		feedback = append(feedback, "Use more action verbs (e.g., led, built, delivered...).")
	}

	sectionPoints := countPresentSections(resume) * pointsPerSection
	if sectionPoints > sectionPointsCap {
		sectionPoints = sectionPointsCap
	}
	score += sectionPoints

	if bullets := nonEmptyLines(corpus); len(bullets) > 0 {
		if averageLength(bullets) < maxAvgBulletChars {
			score += pointsConcise
		} else {
			feedback = append(feedback, "Make bullet points more concise.")
		}
	} else {
		feedback = append(feedback, "Add bullet points to describe achievements.")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	// Independent of the section cap: an empty keyword list always earns a
	// nudge, even on an otherwise full score.
	if len(resume.Keywords) == 0 {
		feedback = append(feedback, "Include role-specific keywords to match job descriptions.")
	}

	return types.ScoreResult{Value: score, Feedback: feedback}
}

// missingPersonalFields lists the required contact fields that are empty,
// named as they appear in the record's JSON shape.
func missingPersonalFields(p types.PersonalInfo) []string {
	var missing []string
	if p.FullName == "" {
		missing = append(missing, "full_name")
	}
	if p.Email == "" {
		missing = append(missing, "email")
	}
	if p.Phone == "" {
		missing = append(missing, "phone")
	}
	return missing
}

func countTitled(entries []types.Entry) int {
	count := 0
	for _, e := range entries {
		if e.Title != "" {
			count++
		}
	}
	return count
}

func countNonEmpty(items []string) int {
	count := 0
	for _, s := range items {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	return count
}

// buildCorpus joins the summary with every experience and project
// description into one lowercased blob. Descriptions keep their internal
// newlines so the readability check can recover bullet lines.
func buildCorpus(resume *types.Resume) string {
	parts := make([]string, 0, 1+len(resume.Experience)+len(resume.Projects))
	if resume.Summary != "" {
		parts = append(parts, resume.Summary)
	}
	for _, e := range resume.Experience {
		if d := e.Description(); d != "" {
			parts = append(parts, d)
		}
	}
	for _, p := range resume.Projects {
		if d := p.Description(); d != "" {
			parts = append(parts, d)
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

func countVerbs(corpus string) int {
	count := 0
	for _, verb := range actionVerbs {
		if strings.Contains(corpus, verb) {
			count++
		}
	}
	return count
}

// countPresentSections applies each section's own presence predicate:
// summary by text, experience/projects by a titled entry, education by its
// first entry's title, the list sections by any non-empty item.
func countPresentSections(resume *types.Resume) int {
	count := 0
	if resume.Summary != "" {
		count++
	}
	if countTitled(resume.Experience) > 0 {
		count++
	}
	if countTitled(resume.Projects) > 0 {
		count++
	}
	if len(resume.Education) > 0 && resume.Education[0].Title != "" {
		count++
	}
	if countNonEmpty(resume.Skills) > 0 {
		count++
	}
	if countNonEmpty(resume.Certifications) > 0 {
		count++
	}
	if countNonEmpty(resume.Conferences) > 0 {
		count++
	}
	if countNonEmpty(resume.Publications) > 0 {
		count++
	}
	return count
}

func nonEmptyLines(corpus string) []string {
	var lines []string
	for _, line := range strings.Split(corpus, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func averageLength(lines []string) int {
	total := 0
	for _, line := range lines {
		total += len(line)
	}
	return total / len(lines)
}
