package parsing

import "strings"

// SectionMap buckets the trimmed, non-empty lines of a document by canonical
// section. Line order within a bucket mirrors document order.
type SectionMap map[Section][]string

// Lines normalizes line endings and returns the trimmed, non-empty lines of
// the text in document order.
func Lines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lines = append(lines, trimmed)
	}
	return lines
}

// SplitSections walks the line sequence once, switching the current bucket
// whenever a line normalizes to a canonical heading. Heading lines themselves
// are consumed, not bucketed. Lines before the first heading land in "header".
func SplitSections(text string) SectionMap {
	sections := SectionMap{SectionHeader: {}}
	current := SectionHeader

	for _, line := range Lines(text) {
		if section, ok := NormalizeHeading(line); ok {
			current = section
			if _, exists := sections[current]; !exists {
				sections[current] = []string{}
			}
			continue
		}
		sections[current] = append(sections[current], line)
	}

	return sections
}
