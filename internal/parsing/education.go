package parsing

import (
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

// educationBlockSize: education sections rarely exceed a handful of lines
// per institution, so grouping is fixed-size rather than boundary-driven.
const educationBlockSize = 6

// ExtractEducation groups the education bucket into entries of up to six
// lines each: school and degree from the leading line(s), every year in the
// block harvested for dates, the rest turned into highlight bullets. An
// empty bucket falls back to synthesizing one entry from the header lines
// when they carry a graduation year.
func ExtractEducation(lines, header []string) []types.Entry {
	if len(lines) == 0 {
		return synthesizeEducation(header)
	}

	var entries []types.Entry
	for offset := 0; offset < len(lines); offset += educationBlockSize {
		end := offset + educationBlockSize
		if end > len(lines) {
			end = len(lines)
		}
		if entry, ok := educationEntry(lines[offset:end]); ok {
			entries = append(entries, entry)
		}
	}

	if entries == nil {
		return []types.Entry{}
	}
	return entries
}

// educationEntry builds one entry from a block of lines.
func educationEntry(block []string) (types.Entry, bool) {
	school, degree := splitEntryHeader(block[0])
	rest := block[1:]

	// Without a separator on the first line, a short second line is taken as
	// the degree ("Example University" / "BSc Computer Science").
	if degree == "" && len(rest) > 0 {
		second := rest[0]
		if !isDateLine(second) && !IsBulletLine(second) && len([]rune(second)) < maxHeaderRunes {
			degree = second
			rest = rest[1:]
		}
	}

	years := yearPattern.FindAllString(strings.Join(block, " "), -1)
	start, end := "", ""
	if len(years) > 0 {
		start = years[0]
		end = start
		if len(years) > 1 {
			end = years[1]
		}
	}

	entry := types.Entry{
		Title:     school,
		Subtitle:  degree,
		StartDate: start,
		EndDate:   end,
		Bullets:   BulletsFrom(rest),
	}
	if entry.IsEmpty() {
		return types.Entry{}, false
	}
	return entry, true
}

// synthesizeEducation builds a best-effort entry from the header bucket when
// the document has no recognizable education section. Only attempted when a
// year appears there; otherwise the section stays empty.
func synthesizeEducation(header []string) []types.Entry {
	years := yearPattern.FindAllString(strings.Join(header, " "), -1)
	if len(years) == 0 || len(header) == 0 {
		return []types.Entry{}
	}

	school, degree := splitEntryHeader(header[0])
	if len([]rune(school)) >= maxHeaderRunes {
		return []types.Entry{}
	}

	end := years[0]
	if len(years) > 1 {
		end = years[1]
	}
	return []types.Entry{{
		Title:     school,
		Subtitle:  degree,
		StartDate: years[0],
		EndDate:   end,
		Bullets:   []string{},
	}}
}
