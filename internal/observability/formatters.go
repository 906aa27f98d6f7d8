// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-parser/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResume outputs a human-readable summary of a parsed resume record.
func (p *Printer) PrintResume(resume *types.Resume) {
	if resume == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Name:     %s\n", resume.Personal.FullName))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", resume.Personal.Email))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", resume.Personal.Phone))
	sb.WriteString(fmt.Sprintf("Language: %s\n", resume.Language))
	sb.WriteString("\n")

	if len(resume.Experience) > 0 {
		sb.WriteString(fmt.Sprintf("Experience (%d):\n", len(resume.Experience)))
		count := min(len(resume.Experience), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := resume.Experience[i]
			sb.WriteString(fmt.Sprintf("  • %s", entry.Title))
			if entry.Subtitle != "" {
				sb.WriteString(fmt.Sprintf(" — %s", entry.Subtitle))
			}
			if entry.StartDate != "" {
				sb.WriteString(fmt.Sprintf(" (%s–%s)", entry.StartDate, entry.EndDate))
			}
			sb.WriteString("\n")
		}
		if len(resume.Experience) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(resume.Experience)-maxItemsToShow))
		}
	}

	if len(resume.Skills) > 0 {
		count := min(len(resume.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills:   %s", strings.Join(resume.Skills[:count], ", ")))
		if len(resume.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" (+%d more)", len(resume.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(resume.Keywords) > 0 {
		count := min(len(resume.Keywords), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Keywords: %s\n", strings.Join(resume.Keywords[:count], ", ")))
	}

	p.printBox("Parsed Resume", strings.TrimRight(sb.String(), "\n"))
}

// PrintScore outputs a human-readable summary of an ATS score.
func (p *Printer) PrintScore(result types.ScoreResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score: %d / 100\n", result.Value))
	if len(result.Feedback) > 0 {
		sb.WriteString("\nFeedback:\n")
		for _, f := range result.Feedback {
			sb.WriteString(fmt.Sprintf("  • %s\n", f))
		}
	}

	p.printBox("ATS Score", strings.TrimRight(sb.String(), "\n"))
}
