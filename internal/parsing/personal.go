package parsing

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+\d{1,3}[\s-]?)?(\(?\d{2,4}\)?[\s.-]?)?\d{3,4}[\s.-]?\d{4}`)
	urlPattern   = regexp.MustCompile(`(?i)(https?://[^\s)]+|www\.[^\s)]+)`)

	// locationPattern targets "City, REGION" shapes such as "Austin, TX" or
	// "San Francisco, California". Best-effort; often empty on real documents.
	locationPattern = regexp.MustCompile(`\b([A-ZÀ-Þ][a-zà-ÿ]+(?:[ -][A-ZÀ-Þ][a-zà-ÿ]+)*),\s*([A-Z]{2,3}|[A-ZÀ-Þ][a-zà-ÿ]+)\b`)

	// nameDecorations are separator glyphs replaced with spaces inside the
	// candidate name line.
	nameDecorations = regexp.MustCompile(`[|•·●]+`)

	// titleSeparatorPattern splits "Name — Title" / "Name | Title" header lines.
	titleSeparatorPattern = regexp.MustCompile(`\s*[—–|]\s*`)
)

// maxNameRunes: a longer first line is a paragraph, not a name.
const maxNameRunes = 80

// headerLinesInspected bounds the title/location scan to the top of the
// header bucket, where contact lines live.
const headerLinesInspected = 4

// ExtractPersonal pulls contact fields out of the raw text and the header
// bucket. Fields are independent pattern matches; any of them may stay empty
// and a single line may feed several fields.
func ExtractPersonal(text string, header []string) types.PersonalInfo {
	info := types.PersonalInfo{
		Email:   emailPattern.FindString(text),
		Phone:   strings.TrimSpace(phonePattern.FindString(text)),
		Website: urlPattern.FindString(text),
	}

	lines := Lines(text)
	if len(lines) > 0 {
		first := lines[0]
		if len([]rune(first)) < maxNameRunes {
			info.FullName = strings.TrimSpace(strings.Join(strings.Fields(nameDecorations.ReplaceAllString(first, " ")), " "))
		}
	}

	info.Title = extractTitle(header)
	info.Location = extractLocation(header)

	return info
}

// extractTitle looks for a "Name — Title" separator in the first header
// lines and takes the right-hand side, unless that side is really a contact
// field sharing the line.
func extractTitle(header []string) string {
	for i, line := range header {
		if i >= headerLinesInspected {
			break
		}
		parts := titleSeparatorPattern.Split(line, 2)
		if len(parts) != 2 {
			continue
		}
		candidate := strings.TrimSpace(parts[1])
		if candidate == "" || len([]rune(candidate)) >= maxNameRunes {
			continue
		}
		if emailPattern.MatchString(candidate) || phonePattern.MatchString(candidate) || urlPattern.MatchString(candidate) {
			continue
		}
		return candidate
	}
	return ""
}

// extractLocation scans the top header lines for a capitalized
// "City, REGION" pair.
func extractLocation(header []string) string {
	for i, line := range header {
		if i >= headerLinesInspected {
			break
		}
		if m := locationPattern.FindString(line); m != "" {
			return m
		}
	}
	return ""
}
