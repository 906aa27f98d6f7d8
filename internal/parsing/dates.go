package parsing

import (
	"regexp"
	"strings"
)

var (
	// yearPattern matches plausible 4-digit resume years (19xx/20xx).
	yearPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

	// rangeSeparatorPattern splits a date line into its start and end halves.
	// Covers dashes plus localized "to" equivalents.
	rangeSeparatorPattern = regexp.MustCompile(`(?i)\s*(?:–|—|-|\bto\b|\bhasta\b|\bbis\b|\baté\b|\bjusqu'à\b|\btot\b|\bdo\b)\s*`)
)

// ContainsYear reports whether the line holds a 4-digit year.
func ContainsYear(line string) bool {
	return yearPattern.MatchString(line)
}

// ExtractDates pulls a (start, end) pair out of one line. When the line holds
// a year and a range separator, the line is split on the separator and both
// halves pass through as-is, so free-form text like "Jan 2021 - Present"
// yields ("Jan 2021", "Present"). A lone bare year yields (year, ""). Lines
// without any year yield ("", ""). Lossy by design: month names are never
// normalized, only carried along when the range split succeeds.
func ExtractDates(line string) (string, string) {
	years := yearPattern.FindAllString(line, -1)
	if len(years) == 0 {
		return "", ""
	}

	if parts := rangeSeparatorPattern.Split(line, 2); len(parts) == 2 {
		start := strings.TrimSpace(parts[0])
		end := strings.TrimSpace(parts[1])
		if start != "" || end != "" {
			return start, end
		}
	}

	if len(years) >= 2 {
		return years[0], years[1]
	}
	return years[0], ""
}
