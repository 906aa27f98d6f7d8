package parsing

import (
	"regexp"
	"strings"
)

var (
	// skillsDelimiterPattern splits a skills blob on list punctuation. Slash
	// is included on purpose: "React/Redux" reads as two skills.
	skillsDelimiterPattern = regexp.MustCompile(`[,|;/•·●\n]`)

	// leadingMarkerPattern strips residual bullet markers from a split item.
	leadingMarkerPattern = regexp.MustCompile(`^[-–—•·●▪◦*]+\s*`)
)

// ExtractSkills flattens the skills bucket into individual skill strings.
// Document order is preserved and duplicates are kept; deduplication is the
// keyword extractor's job, not this one's.
func ExtractSkills(lines []string) []string {
	joined := strings.Join(lines, "\n")

	parts := skillsDelimiterPattern.Split(joined, -1)
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		part = leadingMarkerPattern.ReplaceAllString(strings.TrimSpace(part), "")
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		skills = append(skills, part)
	}
	return skills
}

// ListItems turns a simple section bucket (certifications, conferences,
// publications) into one item per line with bullet markers stripped.
func ListItems(lines []string) []string {
	items := make([]string, 0, len(lines))
	for _, line := range lines {
		item := leadingMarkerPattern.ReplaceAllString(strings.TrimSpace(line), "")
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		items = append(items, item)
	}
	return items
}
