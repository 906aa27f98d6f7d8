// Package types provides type definitions for structured data used throughout the resume-parser system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import "strings"

// PersonalInfo holds contact and identity fields extracted from a resume.
// Every field is optional; extraction defaults to the empty string.
type PersonalInfo struct {
	FullName string `json:"full_name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	Website  string `json:"website"`
}

// Entry is the shared shape for experience, project, and education items.
// For education entries Title holds the school and Subtitle the degree.
type Entry struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	StartDate string   `json:"start_date"`
	EndDate   string   `json:"end_date"`
	Bullets   []string `json:"bullets"`
}

// IsEmpty reports whether the entry carries no usable content.
// Empty entries are filler produced by misgrouped lines and are discarded.
func (e Entry) IsEmpty() bool {
	return e.Title == "" && e.Subtitle == "" && len(e.Bullets) == 0
}

// Description returns the entry bullets joined as newline-separated text,
// the shape the scoring engine consumes.
func (e Entry) Description() string {
	return strings.Join(e.Bullets, "\n")
}

// Resume is the normalized record produced by the parsing pipeline and
// consumed by editing, export, and scoring tools.
type Resume struct {
	Personal       PersonalInfo `json:"personal"`
	Summary        string       `json:"summary"`
	Experience     []Entry      `json:"experience"`
	Projects       []Entry      `json:"projects"`
	Education      []Entry      `json:"education"`
	Skills         []string     `json:"skills"`
	Certifications []string     `json:"certifications"`
	Conferences    []string     `json:"conferences"`
	Publications   []string     `json:"publications"`
	Keywords       []string     `json:"keywords"`
	Language       string       `json:"language"`
}

// NewResume returns a Resume with every collection initialized, so callers
// never need to branch on nil slices.
func NewResume() *Resume {
	return &Resume{
		Experience:     []Entry{},
		Projects:       []Entry{},
		Education:      []Entry{},
		Skills:         []string{},
		Certifications: []string{},
		Conferences:    []string{},
		Publications:   []string{},
		Keywords:       []string{},
	}
}
