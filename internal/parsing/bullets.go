package parsing

import (
	"regexp"
	"strings"
	"unicode"
)

// bulletMarkerPattern recognizes explicit bullet markers at line start:
// dashes, bullet glyphs, asterisks, and numbered forms like "1.", "2)", "(3)".
var bulletMarkerPattern = regexp.MustCompile(`^\s*(?:[-–—•·●▪◦*]\s*|\(?\d{1,2}[.)]\s+)(.+)$`)

// minBulletRunes: shorter fragments are leftover punctuation, not content.
const minBulletRunes = 3

// IsBulletLine reports whether the line starts with an explicit bullet marker.
func IsBulletLine(line string) bool {
	return bulletMarkerPattern.MatchString(line)
}

// BulletsFrom converts free text lines into bullet strings. Lines with
// explicit markers win; when none exist anywhere in the input, the joined
// text is sentence-split instead. Identical bullets (after whitespace
// normalization) are deduplicated and tiny fragments dropped.
func BulletsFrom(lines []string) []string {
	bullets := make([]string, 0, len(lines))
	for _, line := range lines {
		if m := bulletMarkerPattern.FindStringSubmatch(line); m != nil {
			bullets = append(bullets, strings.TrimSpace(m[1]))
		}
	}

	if len(bullets) == 0 {
		joined := strings.TrimSpace(strings.Join(lines, " "))
		if joined != "" {
			bullets = splitSentences(joined)
		}
	}

	seen := make(map[string]bool, len(bullets))
	out := make([]string, 0, len(bullets))
	for _, b := range bullets {
		key := strings.Join(strings.Fields(b), " ")
		if len([]rune(key)) < minBulletRunes || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, b)
	}
	return out
}

// splitSentences cuts text after terminal punctuation followed by whitespace,
// and after semicolons. Written by hand because RE2 has no lookbehind.
func splitSentences(text string) []string {
	var parts []string
	var current strings.Builder

	flush := func() {
		if s := strings.TrimSpace(current.String()); s != "" {
			parts = append(parts, s)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		switch r {
		case '.', '!', '?':
			if i+1 < len(runes) && unicode.IsSpace(runes[i+1]) {
				flush()
			}
		case ';':
			flush()
		}
	}
	flush()

	return parts
}
