package parsing

import (
	"strings"
	"unicode"

	"github.com/jonathan/resume-parser/internal/types"
)

// Soft caps on block size. Entries on badly structured documents are
// force-flushed at the cap so one runaway block cannot swallow the section.
const (
	experienceBlockCap = 9
	projectBlockCap    = 6
)

// maxHeaderRunes: longer lines are prose, never an entry header.
const maxHeaderRunes = 80

// headerSeparators are tried in priority order when splitting an entry
// header into (title, subtitle). The first separator present wins.
var headerSeparators = []string{"—", "–", "|", "•", " - ", ": "}

// ExtractExperience groups the experience bucket into typed entries.
func ExtractExperience(lines []string) []types.Entry {
	return groupEntries(lines, experienceBlockCap)
}

// ExtractProjects groups the projects bucket into typed entries. Projects use
// a tighter cap; project blurbs run shorter than job histories.
func ExtractProjects(lines []string) []types.Entry {
	return groupEntries(lines, projectBlockCap)
}

// entryAccumulator is the block-grouping state machine: lines accumulate
// into the in-progress block until a new-header boundary or the size cap
// flushes it into a finished entry.
type entryAccumulator struct {
	block    []string
	blockCap int
	entries  []types.Entry
}

// groupEntries runs the accumulator over a section's line bucket.
//
// The new-header boundary is a heuristic and can misfire on short one-line
// job titles directly followed by a capitalized achievement list; that is an
// accepted limitation of marker-free input, not something stricter rules can
// fix without breaking other documents.
func groupEntries(lines []string, blockCap int) []types.Entry {
	acc := &entryAccumulator{blockCap: blockCap}

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		if len(acc.block) > 0 && isNewHeaderLine(line) {
			acc.flush()
		}
		acc.block = append(acc.block, line)

		if acc.isOverCapacity() {
			acc.flush()
		}
	}
	acc.flush()

	if acc.entries == nil {
		return []types.Entry{}
	}
	return acc.entries
}

// isNewHeaderLine is the entry-boundary guard: a short line starting with a
// capital letter that is neither a bullet nor a date line reads as the
// header of the next role or project.
func isNewHeaderLine(line string) bool {
	if IsBulletLine(line) || isDateLine(line) {
		return false
	}
	runes := []rune(line)
	if len(runes) == 0 || len(runes) >= maxHeaderRunes {
		return false
	}
	return unicode.IsUpper(runes[0])
}

// isDateLine guard: any line carrying a 4-digit year belongs to the current
// block as its date line.
func isDateLine(line string) bool {
	return ContainsYear(line)
}

func (a *entryAccumulator) isOverCapacity() bool {
	return len(a.block) >= a.blockCap
}

// flush finalizes the in-progress block: header split into (title, subtitle),
// the first year line mined for dates, and the remaining lines turned into
// bullets. Blocks that produce no title, subtitle, or bullets are dropped.
func (a *entryAccumulator) flush() {
	if len(a.block) == 0 {
		return
	}

	title, subtitle := splitEntryHeader(a.block[0])

	var start, end string
	for _, line := range a.block {
		if isDateLine(line) {
			start, end = ExtractDates(line)
			break
		}
	}

	entry := types.Entry{
		Title:     title,
		Subtitle:  subtitle,
		StartDate: start,
		EndDate:   end,
		Bullets:   BulletsFrom(a.block[1:]),
	}
	if !entry.IsEmpty() {
		a.entries = append(a.entries, entry)
	}

	a.block = nil
}

// splitEntryHeader cuts an entry header like "Senior Engineer — Acme Inc."
// into its title and subtitle halves.
func splitEntryHeader(header string) (string, string) {
	for _, sep := range headerSeparators {
		if idx := strings.Index(header, sep); idx >= 0 {
			title := strings.TrimSpace(header[:idx])
			subtitle := strings.TrimSpace(header[idx+len(sep):])
			return title, subtitle
		}
	}
	return strings.TrimSpace(header), ""
}
